package subm

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repos when no submission has the given id.
var ErrNotFound = errors.New("submission not found")

// Status is the lifecycle state of a submission. It is assigned
// "pending" at creation and only ever toggled by the admin console.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusResolved
}

// Submission is a single contact-form record.
//
// The JSON tags match the legacy flat-file layout and the public API
// wire shape. EmailSent is meaningful only on the server (SMTP) path;
// it reflects the actual outcome of the send attempt.
type Submission struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Problem   string `json:"problem"`
	Message   string `json:"message"`
	Status    Status `json:"status"`
	CreatedAt string `json:"timestamp"`
	EmailSent bool   `json:"emailSent"`
}

// Subject returns the submission's subject line, defaulting to
// "General Inquiry" when the visitor left the problem field blank.
func (s *Submission) Subject() string {
	if s.Problem == "" {
		return "General Inquiry"
	}
	return s.Problem
}

// Repo stores submissions and lists them newest first.
type Repo interface {
	Store(ctx context.Context, subm *Submission) error
	List(ctx context.Context) ([]Submission, error)
}

// StatusUpdater toggles a stored submission between pending and resolved.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// EmailSentMarker records that the notification emails for a stored
// submission were actually delivered.
type EmailSentMarker interface {
	MarkEmailSent(ctx context.Context, id string) error
}
