package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/omaratef3221/omaratef3221.github.io/internal/cache"
	"github.com/omaratef3221/omaratef3221.github.io/internal/gateway"
	"github.com/omaratef3221/omaratef3221.github.io/internal/normalize"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Page sizes and ordering requested from the repository host
const (
	profileReposPerPage = 20
	pinnedReposPerPage  = 100
	starredPerPage      = 20
	reposSort           = "updated"
)

// PortfolioService serves normalized profile data. Each call reads the
// cache first and, on a miss, fetches from the upstream, normalizes the
// result and stores it. Upstream failures are returned to the caller and
// never cached.
type PortfolioService struct {
	cache    cache.Store
	github   gateway.GitHubGateway
	scholar  gateway.ScholarGateway
	linkedin gateway.LinkedInGateway
	now      func() time.Time
}

func NewPortfolioService(store cache.Store, github gateway.GitHubGateway, scholar gateway.ScholarGateway, linkedin gateway.LinkedInGateway) *PortfolioService {
	return &PortfolioService{
		cache:    store,
		github:   github,
		scholar:  scholar,
		linkedin: linkedin,
		now:      time.Now,
	}
}

// GetScholar returns {profile, top_publications, total_publications}
func (s *PortfolioService) GetScholar(ctx context.Context, authorID string) (json.RawMessage, error) {
	return s.cached(ctx, cache.ScholarKey(authorID), func(ctx context.Context) (interface{}, error) {
		raw, err := s.scholar.GetAuthor(ctx, authorID)
		if err != nil {
			return nil, err
		}
		return normalize.NormalizeScholar(authorID, raw), nil
	})
}

// GetGitHub returns {profile, repositories}
func (s *PortfolioService) GetGitHub(ctx context.Context, username string) (json.RawMessage, error) {
	return s.cached(ctx, cache.GitHubKey(username), func(ctx context.Context) (interface{}, error) {
		user, err := s.github.GetUser(ctx, username)
		if err != nil {
			return nil, err
		}
		repos, err := s.github.ListRepositories(ctx, username, profileReposPerPage, reposSort)
		if err != nil {
			return nil, err
		}
		return normalize.NormalizeGitHub(user, repos), nil
	})
}

// GetStarred returns {starred_repositories, total_starred}
func (s *PortfolioService) GetStarred(ctx context.Context, username string) (json.RawMessage, error) {
	return s.cached(ctx, cache.StarredKey(username), func(ctx context.Context) (interface{}, error) {
		starred, err := s.github.ListStarred(ctx, username, starredPerPage)
		if err != nil {
			return nil, err
		}
		return normalize.NormalizeGitHubStarred(starred), nil
	})
}

// GetPinned returns {pinned_repositories, total_pinned}. The repository
// host has no pinned list over REST, so the top starred own repositories
// stand in for it.
func (s *PortfolioService) GetPinned(ctx context.Context, username string) (json.RawMessage, error) {
	return s.cached(ctx, cache.PinnedKey(username), func(ctx context.Context) (interface{}, error) {
		repos, err := s.github.ListRepositories(ctx, username, pinnedReposPerPage, reposSort)
		if err != nil {
			return nil, err
		}
		return normalize.NormalizeGitHubPinned(repos), nil
	})
}

// GetLinkedIn returns the normalized professional-network profile
func (s *PortfolioService) GetLinkedIn(ctx context.Context, username string) (json.RawMessage, error) {
	return s.cached(ctx, cache.LinkedInKey(username), func(ctx context.Context) (interface{}, error) {
		raw, err := s.linkedin.GetProfile(ctx, username)
		if err != nil {
			return nil, err
		}
		return normalize.NormalizeLinkedIn(raw, s.now()), nil
	})
}

func (s *PortfolioService) ClearCache(ctx context.Context) error {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	logger.Info("Cache cleared")
	return nil
}

func (s *PortfolioService) CacheStatus(ctx context.Context) (map[string]cache.EntryStatus, error) {
	status, err := s.cache.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache status: %w", err)
	}
	return status, nil
}

func (s *PortfolioService) cached(ctx context.Context, key string, fetch func(context.Context) (interface{}, error)) (json.RawMessage, error) {
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		// a broken cache degrades to a live fetch
		logger.WithField("key", key).WithError(err).Warn("Cache read failed")
	} else if ok {
		logger.WithField("key", key).Debug("Cache hit")
		return payload, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		logUpstreamFailure(key, err)
		return nil, err
	}

	payload, err = json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.cache.Set(ctx, key, payload); err != nil {
		logger.WithField("key", key).WithError(err).Warn("Cache write failed")
	}
	return payload, nil
}

func logUpstreamFailure(key string, err error) {
	fields := logrus.Fields{"key": key}

	var ue *gateway.UpstreamError
	if errors.As(err, &ue) {
		fields["source"] = ue.Source
		fields["status"] = ue.StatusCode
	}

	entry := logger.WithFields(fields).WithError(err)
	if gateway.Unavailable(err) {
		entry.Debug("Upstream integration disabled, serving fallback")
		return
	}
	entry.Warn("Upstream request failed, serving fallback")
}
