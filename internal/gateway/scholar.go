package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

// ScholarGateway reads an author's citation profile
type ScholarGateway interface {
	GetAuthor(ctx context.Context, authorID string) (*models.ScholarAuthorResponse, error)
}

// scholarPageSize is the single page of articles requested per author
const scholarPageSize = 100

// ScholarClient talks to the SerpAPI google_scholar_author engine
type ScholarClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewScholarClient(httpClient *http.Client, baseURL, apiKey string) *ScholarClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ScholarClient{client: httpClient, baseURL: baseURL, apiKey: apiKey}
}

func (c *ScholarClient) GetAuthor(ctx context.Context, authorID string) (*models.ScholarAuthorResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &UpstreamError{Source: SourceScholar, Message: fmt.Sprintf("invalid API URL: %v", err), Err: err}
	}
	q := u.Query()
	q.Set("engine", "google_scholar_author")
	q.Set("author_id", authorID)
	q.Set("num", fmt.Sprint(scholarPageSize))
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &UpstreamError{Source: SourceScholar, Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	var payload models.ScholarAuthorResponse
	status, err := getJSON(ctx, c.client, SourceScholar, req, &payload)
	if err != nil {
		return nil, err
	}
	// SerpAPI reports some failures (unknown author, exhausted plan) in a 200 body
	if payload.Error != "" {
		return nil, &UpstreamError{Source: SourceScholar, StatusCode: status, Message: payload.Error}
	}
	if payload.Author == nil {
		return nil, &UpstreamError{Source: SourceScholar, StatusCode: status, Message: "author not found"}
	}
	return &payload, nil
}
