// Package intake implements both delivery pipelines for contact-form
// submissions: the legacy single-sink path (flat file, then best-effort
// SMTP) and the client dual-sink path (hosted table and email relay in
// parallel).
package intake

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/digiserv/backend/email"
	"github.com/digiserv/backend/logger"
	"github.com/digiserv/backend/subm"
)

// LegacyStore is the durable sink of the legacy path.
type LegacyStore interface {
	Store(ctx context.Context, s *subm.Submission) error
	MarkEmailSent(ctx context.Context, id string) error
}

type LegacyPipeline struct {
	store  LegacyStore
	mailer email.Mailer // nil when SMTP is not configured
}

func NewLegacyPipeline(store LegacyStore, mailer email.Mailer) *LegacyPipeline {
	return &LegacyPipeline{store: store, mailer: mailer}
}

// EmailConfigured reports whether the pipeline has an email transport.
func (p *LegacyPipeline) EmailConfigured() bool {
	return p.mailer != nil
}

// Submit validates the form, persists the submission, and then sends
// the notification emails if a transport is configured. Persistence is
// the source of truth: it must settle before any email attempt, and an
// email failure never fails the submission or rolls the record back.
func (p *LegacyPipeline) Submit(ctx context.Context, f subm.Form) (*subm.Submission, error) {
	log := logger.FromContext(ctx)

	fieldErrs := subm.Validate(f, false)
	if !fieldErrs.OK() {
		if len(fieldErrs) == 1 && fieldErrs["email"] == subm.MsgEmailInvalid {
			return nil, subm.NewErrInvalidEmailFormat()
		}
		return nil, subm.NewErrMissingRequiredFields()
	}

	s := &subm.Submission{
		ID:        newSubmissionID(),
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Problem:   f.Problem,
		Message:   f.Message,
		Status:    subm.StatusPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		EmailSent: false,
	}

	if err := p.store.Store(ctx, s); err != nil {
		log.Error("failed to persist submission", "error", err)
		return nil, subm.NewErrPersistenceFailed().SetDebug(err)
	}
	log.Info("new submission stored", "subm_id", s.ID, "name", s.Name, "email", s.Email)

	if p.mailer != nil {
		if err := p.mailer.SendSubmissionNotifications(ctx, s); err != nil {
			// Best-effort: the record is already saved.
			log.Warn("email delivery failed", "error", err, "subm_id", s.ID)
		} else {
			s.EmailSent = true
			if err := p.store.MarkEmailSent(ctx, s.ID); err != nil {
				log.Warn("failed to record email delivery", "error", err, "subm_id", s.ID)
			}
		}
	}

	return s, nil
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newSubmissionID builds a time-based id with a random suffix, the
// legacy id scheme (base36 millis plus six base36 characters).
func newSubmissionID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + string(suffix)
}
