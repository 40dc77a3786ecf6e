package application_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"quotidepense-be/internal/domain/entity"
	"quotidepense-be/internal/domain/repository"
)

// In-memory repositories substituting the postgres implementations.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdateName(_ context.Context, id, name string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Name = name
	r.users[id] = u
	return &u, nil
}

type memExpenseRepo struct {
	mu       sync.Mutex
	expenses map[string]entity.Expense
	seq      int
}

func newMemExpenseRepo() *memExpenseRepo {
	return &memExpenseRepo{expenses: map[string]entity.Expense{}}
}

func (r *memExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	e.ID = fmt.Sprintf("exp-%d", r.seq)
	e.CreatedAt = time.Now()
	r.expenses[e.ID] = *e
	return nil
}

func (r *memExpenseRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Expense{}
	for _, e := range r.expenses {
		if e.UserID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.expenses[e.ID]
	if !ok || existing.UserID != e.UserID {
		return repository.ErrNotFound
	}
	e.CreatedAt = existing.CreatedAt
	r.expenses[e.ID] = *e
	return nil
}

func (r *memExpenseRepo) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.expenses[id]
	if !ok || existing.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

type memFeedbackRepo struct {
	mu    sync.Mutex
	items []entity.Feedback
	seq   int
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{}
}

func (r *memFeedbackRepo) Create(_ context.Context, f *entity.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	f.ID = fmt.Sprintf("fb-%d", r.seq)
	f.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	r.items = append(r.items, *f)
	return nil
}

func (r *memFeedbackRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Feedback{}
	for _, f := range r.items {
		if f.UserID == ownerID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memPublisher struct {
	mu     sync.Mutex
	events []any
}

func (p *memPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, body)
	return nil
}
