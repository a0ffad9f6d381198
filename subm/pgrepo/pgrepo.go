// Package pgrepo stores submissions in the hosted Postgres table
// consumed by the admin console. Inserts are single-row transactions,
// so concurrent submitters cannot lose updates.
package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiserv/backend/logger"
	"github.com/digiserv/backend/subm"
)

type PgRepo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *PgRepo {
	return &PgRepo{pool: pool}
}

// Store inserts one row. The repo assigns the id and creation time;
// status defaults to pending when unset.
func (r *PgRepo) Store(ctx context.Context, s *subm.Submission) error {
	log := logger.FromContext(ctx)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = subm.StatusPending
	}
	if s.CreatedAt == "" {
		s.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	insertQuery := `
		INSERT INTO submissions (
			id, name, email, phone, problem, message, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		s.ID,
		s.Name,
		s.Email,
		s.Phone,
		s.Problem,
		s.Message,
		string(s.Status),
		s.CreatedAt,
	)
	if err != nil {
		log.Debug("failed to insert submission", "error", err)
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	log.Debug("stored submission", "subm_id", s.ID)
	return nil
}

// List returns all rows ordered by creation time descending.
func (r *PgRepo) List(ctx context.Context) ([]subm.Submission, error) {
	selectQuery := `
		SELECT id, name, email, phone, problem, message, status, created_at
		FROM submissions
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, selectQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subms []subm.Submission
	for rows.Next() {
		var s subm.Submission
		var status string
		var createdAt time.Time
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone,
			&s.Problem, &s.Message, &status, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		s.Status = subm.Status(status)
		s.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		subms = append(subms, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return subms, nil
}

func (r *PgRepo) UpdateStatus(ctx context.Context, id string, status subm.Status) error {
	log := logger.FromContext(ctx)

	updateQuery := `UPDATE submissions SET status = $1 WHERE id = $2`
	tag, err := r.pool.Exec(ctx, updateQuery, string(status), id)
	if err != nil {
		log.Debug("failed to update submission status", "error", err, "subm_id", id)
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return subm.ErrNotFound
	}
	return nil
}
