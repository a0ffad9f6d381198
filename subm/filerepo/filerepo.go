// Package filerepo stores submissions in a single flat JSON file, the
// storage layout of the legacy intake path. The whole array is read and
// rewritten on every mutation; a mutex serializes writers so concurrent
// requests cannot lose updates.
package filerepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/digiserv/backend/subm"
)

type FileRepo struct {
	path string
	mu   sync.Mutex
}

// New creates the data directory and an empty submissions file if they
// do not exist yet.
func New(path string) (*FileRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to create submissions file: %w", err)
		}
	}
	return &FileRepo{path: path}, nil
}

func (r *FileRepo) Store(ctx context.Context, s *subm.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subms, err := r.readAll()
	if err != nil {
		return err
	}
	subms = append(subms, *s)
	return r.writeAll(subms)
}

// List returns all submissions newest first (reverse append order).
func (r *FileRepo) List(ctx context.Context) ([]subm.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subms, err := r.readAll()
	if err != nil {
		return nil, err
	}
	reversed := make([]subm.Submission, 0, len(subms))
	for i := len(subms) - 1; i >= 0; i-- {
		reversed = append(reversed, subms[i])
	}
	return reversed, nil
}

func (r *FileRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subms, err := r.readAll()
	if err != nil {
		return 0, err
	}
	return len(subms), nil
}

func (r *FileRepo) MarkEmailSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subms, err := r.readAll()
	if err != nil {
		return err
	}
	for i := range subms {
		if subms[i].ID == id {
			subms[i].EmailSent = true
			return r.writeAll(subms)
		}
	}
	return subm.ErrNotFound
}

func (r *FileRepo) readAll() ([]subm.Submission, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions file: %w", err)
	}
	var subms []subm.Submission
	if err := json.Unmarshal(data, &subms); err != nil {
		return nil, fmt.Errorf("failed to parse submissions file: %w", err)
	}
	return subms, nil
}

func (r *FileRepo) writeAll(subms []subm.Submission) error {
	data, err := json.MarshalIndent(subms, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write submissions file: %w", err)
	}
	return nil
}
