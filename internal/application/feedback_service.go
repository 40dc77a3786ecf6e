package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"quotidepense-be/internal/domain/entity"
	repo "quotidepense-be/internal/domain/repository"
)

var (
	ErrInvalidFeedbackType = errors.New("invalid feedback type")
	ErrEmptyFeedback       = errors.New("feedback message is required")
)

// Publisher is the minimal capability needed to fan out feedback events.
// *helpers.RabbitPublisher satisfies it; a nil publisher disables fan-out.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// FeedbackEvent is the JSON payload put on the feedback queue for the
// forwarding worker.
type FeedbackEvent struct {
	FeedbackID string `json:"feedbackId"`
	UserID     string `json:"userId"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	CreatedAt  string `json:"createdAt"`
}

// FeedbackService owns the append-only feedback intake.
type FeedbackService struct {
	Repo   repo.FeedbackRepository
	Pub    Publisher
	Logger *logrus.Logger
}

func NewFeedbackService(r repo.FeedbackRepository, pub Publisher, logger *logrus.Logger) *FeedbackService {
	return &FeedbackService{Repo: r, Pub: pub, Logger: logger}
}

// Submit stores the note and, best effort, publishes it for forwarding.
// A publish failure is logged and never surfaced to the caller.
func (s *FeedbackService) Submit(ctx context.Context, ownerID, ftype, message string) (*entity.Feedback, error) {
	if !entity.ValidFeedbackType(ftype) {
		return nil, ErrInvalidFeedbackType
	}
	if message == "" {
		return nil, ErrEmptyFeedback
	}
	f := &entity.Feedback{UserID: ownerID, Type: ftype, Message: message}
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, err
	}
	if s.Pub != nil {
		ev := FeedbackEvent{
			FeedbackID: f.ID,
			UserID:     f.UserID,
			Type:       f.Type,
			Message:    f.Message,
			CreatedAt:  f.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := s.Pub.PublishJSON(ctx, ev); err != nil {
			s.Logger.WithError(err).WithField("feedback_id", f.ID).Warn("feedback publish failed")
		}
	}
	return f, nil
}

// List returns the caller's feedback, newest first.
func (s *FeedbackService) List(ctx context.Context, ownerID string) ([]entity.Feedback, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}
