// Package inmem is an in-memory submission repo used by tests and as a
// stand-in when no durable store is wired up.
package inmem

import (
	"context"
	"sync"

	"github.com/digiserv/backend/subm"
)

type InMemRepo struct {
	mu    sync.Mutex
	subms []subm.Submission
}

func New() *InMemRepo {
	return &InMemRepo{}
}

func (r *InMemRepo) Store(ctx context.Context, s *subm.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms = append(r.subms, *s)
	return nil
}

func (r *InMemRepo) List(ctx context.Context) ([]subm.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reversed := make([]subm.Submission, 0, len(r.subms))
	for i := len(r.subms) - 1; i >= 0; i-- {
		reversed = append(reversed, r.subms[i])
	}
	return reversed, nil
}

func (r *InMemRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subms), nil
}

func (r *InMemRepo) UpdateStatus(ctx context.Context, id string, status subm.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subms {
		if r.subms[i].ID == id {
			r.subms[i].Status = status
			return nil
		}
	}
	return subm.ErrNotFound
}

func (r *InMemRepo) MarkEmailSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subms {
		if r.subms[i].ID == id {
			r.subms[i].EmailSent = true
			return nil
		}
	}
	return subm.ErrNotFound
}
