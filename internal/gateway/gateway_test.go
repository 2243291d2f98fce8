package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func requireUpstreamError(t *testing.T, err error, source string, status int) *UpstreamError {
	t.Helper()
	require.Error(t, err)
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue), "expected *UpstreamError, got %T", err)
	assert.Equal(t, source, ue.Source)
	assert.Equal(t, status, ue.StatusCode)
	return ue
}

func TestGitHubClient(t *testing.T) {
	var gotAuth string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/octocat":
			w.Write([]byte(`{"login":"octocat","name":"The Octocat","public_repos":8}`))
		case "/users/octocat/repos":
			assert.Equal(t, "20", r.URL.Query().Get("per_page"))
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			w.Write([]byte(`[{"name":"hello-world","stargazers_count":3,"fork":false}]`))
		case "/users/octocat/starred":
			assert.Equal(t, "20", r.URL.Query().Get("per_page"))
			w.Write([]byte(`[{"starred_at":"2024-05-01T10:00:00Z","repo":{"name":"linguist","owner":{"login":"github"}}}]`))
		case "/users/ghost":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	client, err := NewGitHubClient(NewHTTPClient(2*time.Second), "secret", srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("user", func(t *testing.T) {
		user, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)
		assert.Equal(t, "The Octocat", user.GetName())
		assert.Equal(t, 8, user.GetPublicRepos())
		assert.Equal(t, "Bearer secret", gotAuth)
	})

	t.Run("repositories", func(t *testing.T) {
		repos, err := client.ListRepositories(ctx, "octocat", 20, "updated")
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.Equal(t, "hello-world", repos[0].GetName())
		assert.Equal(t, 3, repos[0].GetStargazersCount())
	})

	t.Run("starred", func(t *testing.T) {
		starred, err := client.ListStarred(ctx, "octocat", 20)
		require.NoError(t, err)
		require.Len(t, starred, 1)
		assert.Equal(t, "linguist", starred[0].GetRepository().GetName())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.GetUser(ctx, "ghost")
		ue := requireUpstreamError(t, err, SourceGitHub, http.StatusNotFound)
		assert.Equal(t, "Not Found", ue.Message)
		assert.False(t, Unavailable(err))
	})
}

func TestGitHubClientWithoutToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"login":"octocat"}`))
	})

	client, err := NewGitHubClient(NewHTTPClient(2*time.Second), "", srv.URL)
	require.NoError(t, err)

	_, err = client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestGitHubClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewGitHubClient(NewHTTPClient(time.Second), "", url)
	require.NoError(t, err)

	_, err = client.GetUser(context.Background(), "octocat")
	requireUpstreamError(t, err, SourceGitHub, 0)
}

func TestScholarClient(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "google_scholar_author", q.Get("engine"))
		assert.Equal(t, "100", q.Get("num"))
		assert.Equal(t, "key", q.Get("api_key"))

		switch q.Get("author_id") {
		case "abc":
			w.Write([]byte(`{
				"author": {"name": "Ada", "affiliations": "Analytical Engines"},
				"articles": [{"title": "Notes", "cited_by": {"value": 12}}],
				"cited_by": {"table": [{"citations": {"all": 40}}, {"h_index": {"all": 3}}]}
			}`))
		case "missing":
			w.Write([]byte(`{"error": "Google hasn't returned any results for this query."}`))
		case "quota":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Invalid API key."}`))
		}
	})

	client := NewScholarClient(NewHTTPClient(2*time.Second), srv.URL, "key")
	ctx := context.Background()

	resp, err := client.GetAuthor(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.Author.Name)
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, 12, resp.Articles[0].CitedBy.Value)
	assert.Equal(t, 40, resp.CitedBy.Metric("citations"))

	_, err = client.GetAuthor(ctx, "missing")
	ue := requireUpstreamError(t, err, SourceScholar, http.StatusOK)
	assert.Contains(t, ue.Message, "any results")

	_, err = client.GetAuthor(ctx, "quota")
	ue = requireUpstreamError(t, err, SourceScholar, http.StatusUnauthorized)
	assert.Equal(t, "Invalid API key.", ue.Message)
}

func TestScholarClientTimeout(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	client := NewScholarClient(NewHTTPClient(100*time.Millisecond), srv.URL, "key")
	_, err := client.GetAuthor(context.Background(), "abc")
	requireUpstreamError(t, err, SourceScholar, 0)
}

func TestResponseBodyIsBounded(t *testing.T) {
	limit := maxResponseBody
	maxResponseBody = 64
	t.Cleanup(func() { maxResponseBody = limit })

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("author_id") == "small" {
			w.Write([]byte(`{"author": {"name": "Ada"}}`))
			return
		}
		w.Write([]byte(`{"author": {"name": "` + strings.Repeat("a", 1024) + `"}}`))
	})

	client := NewScholarClient(NewHTTPClient(2*time.Second), srv.URL, "key")

	_, err := client.GetAuthor(context.Background(), "huge")
	ue := requireUpstreamError(t, err, SourceScholar, http.StatusOK)
	assert.Contains(t, ue.Message, "exceeds 64 bytes")

	resp, err := client.GetAuthor(context.Background(), "small")
	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.Author.Name)
}

func TestLinkedInClient(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "linkedin.example", r.Header.Get("X-RapidAPI-Host"))

		switch r.URL.Query().Get("username") {
		case "ada":
			w.Write([]byte(`{"success": true, "data": {"firstName": "Ada", "lastName": "Lovelace"}}`))
		case "private":
			w.Write([]byte(`{"success": false, "message": "profile is private"}`))
		default:
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}
	})

	client := NewLinkedInClient(NewHTTPClient(2*time.Second), srv.URL+"/", "key", "linkedin.example")
	ctx := context.Background()

	payload, err := client.GetProfile(ctx, "ada")
	require.NoError(t, err)
	require.NotNil(t, payload.Profile)
	assert.Equal(t, "Lovelace", payload.Profile.LastName)

	_, err = client.GetProfile(ctx, "private")
	ue := requireUpstreamError(t, err, SourceLinkedIn, http.StatusOK)
	assert.Equal(t, "profile is private", ue.Message)

	_, err = client.GetProfile(ctx, "other")
	ue = requireUpstreamError(t, err, SourceLinkedIn, http.StatusBadGateway)
	assert.Equal(t, "bad gateway", ue.Message)
}

func TestDisabledGateways(t *testing.T) {
	_, err := DisabledScholar{}.GetAuthor(context.Background(), "abc")
	requireUpstreamError(t, err, SourceScholar, 0)
	assert.True(t, Unavailable(err))

	_, err = DisabledLinkedIn{}.GetProfile(context.Background(), "ada")
	requireUpstreamError(t, err, SourceLinkedIn, 0)
	assert.True(t, Unavailable(err))
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Source: "github", StatusCode: 403, Message: "rate limited"}
	assert.Equal(t, "github: upstream returned 403: rate limited", err.Error())

	err = &UpstreamError{Source: "scholar", Message: "dial tcp: refused"}
	assert.Equal(t, "scholar: dial tcp: refused", err.Error())
}
