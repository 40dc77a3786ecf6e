package repository

import (
	"context"

	"quotidepense-be/internal/domain/entity"
)

// ExpenseRepository defines expense persistence. Every read and write is
// scoped by owner; a row that exists under another owner behaves exactly
// like a missing row (ErrNotFound).
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	// ListByOwner returns the owner's expenses ordered by event date descending.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Expense, error)
	// Update replaces amount, category, description and date of the row
	// matching (e.ID, e.UserID) and fills in the stored CreatedAt.
	Update(ctx context.Context, e *entity.Expense) error
	Delete(ctx context.Context, ownerID, id string) error
}
