package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quotidepense-be/internal/domain/entity"
	"quotidepense-be/internal/domain/repository"
)

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (user_id, amount, category, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, e.UserID, e.Amount, e.Category, e.Description, e.Date)

	return row.Scan(&e.ID, &e.CreatedAt)
}

func (r *ExpenseRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, amount, category, description, date, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Expense{}
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of the row owned by (e.ID, e.UserID).
// A row owned by someone else is indistinguishable from a missing one.
func (r *ExpenseRepository) Update(ctx context.Context, e *entity.Expense) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE expenses
		SET amount = $1, category = $2, description = $3, date = $4
		WHERE id = $5 AND user_id = $6
		RETURNING created_at
	`, e.Amount, e.Category, e.Description, e.Date, e.ID, e.UserID)

	if err := row.Scan(&e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM expenses
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
