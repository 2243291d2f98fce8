package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

// LinkedInGateway reads a professional-network profile
type LinkedInGateway interface {
	GetProfile(ctx context.Context, username string) (*models.LinkedInPayload, error)
}

// LinkedInClient calls a RapidAPI hosted LinkedIn profile endpoint
type LinkedInClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	apiHost string
}

func NewLinkedInClient(httpClient *http.Client, baseURL, apiKey, apiHost string) *LinkedInClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &LinkedInClient{client: httpClient, baseURL: baseURL, apiKey: apiKey, apiHost: apiHost}
}

func (c *LinkedInClient) GetProfile(ctx context.Context, username string) (*models.LinkedInPayload, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &UpstreamError{Source: SourceLinkedIn, Message: fmt.Sprintf("invalid API URL: %v", err), Err: err}
	}
	q := u.Query()
	q.Set("username", username)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &UpstreamError{Source: SourceLinkedIn, Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	var payload models.LinkedInPayload
	status, err := getJSON(ctx, c.client, SourceLinkedIn, req, &payload)
	if err != nil {
		return nil, err
	}
	if payload.Error != "" {
		return nil, &UpstreamError{Source: SourceLinkedIn, StatusCode: status, Message: payload.Error}
	}
	return &payload, nil
}
