package gateway

import (
	"context"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

// DisabledScholar stands in for the Scholar client when no API key is set
type DisabledScholar struct{}

func (DisabledScholar) GetAuthor(context.Context, string) (*models.ScholarAuthorResponse, error) {
	return nil, &UpstreamError{Source: SourceScholar, Message: "Google Scholar API not available", Err: ErrUnavailable}
}

// DisabledLinkedIn stands in for the LinkedIn client when no API key is set
type DisabledLinkedIn struct{}

func (DisabledLinkedIn) GetProfile(context.Context, string) (*models.LinkedInPayload, error) {
	return nil, &UpstreamError{Source: SourceLinkedIn, Message: "LinkedIn API not available", Err: ErrUnavailable}
}
