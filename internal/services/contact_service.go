package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ContactRecorder stores or forwards an accepted contact submission
type ContactRecorder interface {
	Record(ctx context.Context, submissionID string, msg *models.ContactMessage) error
}

// LogRecorder writes submissions to the structured log. Nothing is delivered.
type LogRecorder struct{}

func (LogRecorder) Record(_ context.Context, submissionID string, msg *models.ContactMessage) error {
	logger.WithFields(logrus.Fields{
		"submission_id": submissionID,
		"name":          msg.Name,
		"email":         msg.Email,
		"subject":       msg.Subject,
		"message":       msg.Message,
	}).Info("New contact form submission")
	return nil
}

type ContactService struct {
	recorder ContactRecorder
}

func NewContactService(recorder ContactRecorder) *ContactService {
	if recorder == nil {
		recorder = LogRecorder{}
	}
	return &ContactService{recorder: recorder}
}

// Submit validates msg and hands it to the recorder. Validation failures are
// returned as *models.ValidationError.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	submissionID := uuid.New().String()
	if err := s.recorder.Record(ctx, submissionID, msg); err != nil {
		return "", fmt.Errorf("failed to record contact message: %w", err)
	}
	return submissionID, nil
}
