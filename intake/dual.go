package intake

import (
	"context"

	"github.com/digiserv/backend/logger"
	"github.com/digiserv/backend/subm"
)

// TableSink inserts a submission row into the hosted table.
type TableSink interface {
	Store(ctx context.Context, s *subm.Submission) error
}

// EmailSink dispatches a templated notification for the form.
type EmailSink interface {
	Send(ctx context.Context, f subm.Form) error
}

// DualPipeline fans a submission out to two independent sinks and joins
// on both settling. A slow or down email relay never blocks or fails
// the table insert, and vice versa.
type DualPipeline struct {
	table TableSink
	email EmailSink // nil when the relay is not configured
}

func NewDualPipeline(table TableSink, email EmailSink) *DualPipeline {
	return &DualPipeline{table: table, email: email}
}

// Submit fires both sinks concurrently, waits for both, and resolves a
// single outcome via the decision table. Callers validate the form
// before invoking Submit; no network activity happens for invalid
// input.
func (p *DualPipeline) Submit(ctx context.Context, f subm.Form) Decision {
	log := logger.FromContext(ctx)

	tableCh := make(chan SinkResult, 1)
	emailCh := make(chan SinkResult, 1)

	go func() {
		s := &subm.Submission{
			Name:    f.Name,
			Email:   f.Email,
			Phone:   f.Phone,
			Problem: f.Problem,
			Message: f.Message,
			Status:  subm.StatusPending,
		}
		if err := p.table.Store(ctx, s); err != nil {
			tableCh <- SinkResult{Status: SinkFailed, Err: err}
			return
		}
		tableCh <- SinkResult{Status: SinkSucceeded}
	}()

	go func() {
		if p.email == nil {
			emailCh <- SinkResult{Status: SinkSkipped}
			return
		}
		if err := p.email.Send(ctx, f); err != nil {
			emailCh <- SinkResult{Status: SinkFailed, Err: err}
			return
		}
		emailCh <- SinkResult{Status: SinkSucceeded}
	}()

	table := <-tableCh
	email := <-emailCh

	// Sink failures are diagnostics only; they never alter the
	// user-visible outcome beyond the decision table.
	if table.Err != nil {
		log.Warn("table insert failed", "error", table.Err)
	}
	if email.Err != nil {
		log.Warn("email relay dispatch failed", "error", email.Err)
	}

	return Decide(table, email)
}
