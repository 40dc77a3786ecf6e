package repository

import (
	"context"

	"quotidepense-be/internal/domain/entity"
)

// FeedbackRepository is append-only: feedback rows are created and listed,
// never mutated.
type FeedbackRepository interface {
	Create(ctx context.Context, f *entity.Feedback) error
	// ListByOwner returns the owner's feedback, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Feedback, error)
}
