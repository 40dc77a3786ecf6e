package application

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"quotidepense-be/internal/domain/entity"
	repo "quotidepense-be/internal/domain/repository"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
)

// ExpenseService owns the CRUD lifecycle and aggregation over expense
// records, always scoped to the calling user.
type ExpenseService struct {
	Repo   repo.ExpenseRepository
	Logger *logrus.Logger
}

func NewExpenseService(r repo.ExpenseRepository, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{Repo: r, Logger: logger}
}

type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        *time.Time
}

// Stats is the aggregation over one user's expenses.
type Stats struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"byCategory"`
	Count      int                `json:"count"`
}

func validAmount(a float64) bool {
	return a > 0 && !math.IsInf(a, 0) && !math.IsNaN(a)
}

// Create records a new expense. The event date defaults to submission time.
func (s *ExpenseService) Create(ctx context.Context, ownerID string, in ExpenseInput) (*entity.Expense, error) {
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	e := &entity.Expense{
		UserID:      ownerID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns the owner's expenses, most recent event date first.
func (s *ExpenseService) List(ctx context.Context, ownerID string) ([]entity.Expense, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Update fully replaces the four mutable fields. A record owned by another
// user fails with ErrExpenseNotFound, same as a missing one.
func (s *ExpenseService) Update(ctx context.Context, ownerID, id string, in ExpenseInput) (*entity.Expense, error) {
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	e := &entity.Expense{
		ID:          id,
		UserID:      ownerID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
	}
	if err := s.Repo.Update(ctx, e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}
	return nil
}

// Stats recomputes total, per-category totals and count from the current
// records on every call; there is no cached aggregate. Summation follows
// list order (date descending), which keeps repeated calls identical when
// nothing was written in between.
func (s *ExpenseService) Stats(ctx context.Context, ownerID string) (*Stats, error) {
	expenses, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	st := &Stats{ByCategory: map[string]float64{}, Count: len(expenses)}
	for _, e := range expenses {
		st.Total += e.Amount
		st.ByCategory[e.Category] += e.Amount
	}
	return st, nil
}
