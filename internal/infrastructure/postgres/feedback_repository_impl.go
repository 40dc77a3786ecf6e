package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"quotidepense-be/internal/domain/entity"
	"quotidepense-be/internal/domain/repository"
)

type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO feedback (user_id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, f.UserID, f.Type, f.Message)

	return row.Scan(&f.ID, &f.CreatedAt)
}

func (r *FeedbackRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, message, created_at
		FROM feedback
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Feedback{}
	for rows.Next() {
		var f entity.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Type, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

var _ repository.FeedbackRepository = (*FeedbackRepository)(nil)
