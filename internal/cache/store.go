package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TTL is how long an entry is served after it was set
const TTL = 3600 * time.Second

// Store is the process-wide response cache. Expired entries are never
// returned by Get but stay visible to Status until overwritten or cleared.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, payload json.RawMessage) error
	InvalidateAll(ctx context.Context) error
	Status(ctx context.Context) (map[string]EntryStatus, error)
}

// EntryStatus describes one cached key
type EntryStatus struct {
	Timestamp  float64 `json:"timestamp"`
	AgeSeconds float64 `json:"age_seconds"`
	Valid      bool    `json:"valid"`
}

// Clock returns the current time; stores take one so tests can move time
type Clock func() time.Time

func isValid(insertedAt, now time.Time) bool {
	return now.Sub(insertedAt) < TTL
}

func entryStatus(insertedAt, now time.Time) EntryStatus {
	return EntryStatus{
		Timestamp:  float64(insertedAt.UnixNano()) / float64(time.Second),
		AgeSeconds: now.Sub(insertedAt).Seconds(),
		Valid:      isValid(insertedAt, now),
	}
}

// Keys for the cached resources. Each resource has its own prefix ending
// in ':', which usernames and author ids cannot contain.
func ScholarKey(authorID string) string  { return "scholar:" + authorID }
func GitHubKey(username string) string   { return "github:profile:" + username }
func StarredKey(username string) string  { return "github:starred:" + username }
func PinnedKey(username string) string   { return "github:pinned:" + username }
func LinkedInKey(username string) string { return "linkedin:" + username }

// New builds the store selected by backend ("memory" or "sqlite")
func New(backend, dsn string) (Store, error) {
	switch backend {
	case "", "memory":
		return NewMemoryStore(time.Now), nil
	case "sqlite":
		return OpenSQLiteStore(dsn, time.Now)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
