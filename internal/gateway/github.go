package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubGateway reads public profile data from the repository host
type GitHubGateway interface {
	GetUser(ctx context.Context, username string) (*github.User, error)
	ListRepositories(ctx context.Context, username string, perPage int, sort string) ([]*github.Repository, error)
	ListStarred(ctx context.Context, username string, perPage int) ([]*github.StarredRepository, error)
}

type GitHubClient struct {
	client *github.Client
}

// NewGitHubClient builds a go-github client on top of httpClient. A token is
// optional; anonymous calls work with a lower rate limit. baseURL overrides
// the public API root (used by tests and GitHub Enterprise).
func NewGitHubClient(httpClient *http.Client, token, baseURL string) (*GitHubClient, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = httpClient.Timeout
		httpClient = tc
	}

	client := github.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &GitHubClient{client: client}, nil
}

func (c *GitHubClient) GetUser(ctx context.Context, username string) (*github.User, error) {
	user, resp, err := c.client.Users.Get(ctx, username)
	if err != nil {
		return nil, githubError(resp, err)
	}
	return user, nil
}

func (c *GitHubClient) ListRepositories(ctx context.Context, username string, perPage int, sort string) ([]*github.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort:        sort,
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	repos, resp, err := c.client.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, githubError(resp, err)
	}
	return repos, nil
}

func (c *GitHubClient) ListStarred(ctx context.Context, username string, perPage int) ([]*github.StarredRepository, error) {
	opts := &github.ActivityListStarredOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	starred, resp, err := c.client.Activity.ListStarred(ctx, username, opts)
	if err != nil {
		return nil, githubError(resp, err)
	}
	return starred, nil
}

func githubError(resp *github.Response, err error) error {
	ue := &UpstreamError{Source: SourceGitHub, Message: err.Error(), Err: err}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Message != "" {
		ue.Message = errResp.Message
	}
	if resp != nil && resp.Response != nil {
		ue.StatusCode = resp.StatusCode
	}
	return ue
}
