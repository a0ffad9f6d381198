package intake_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiserv/backend/intake"
	"github.com/digiserv/backend/subm"
	"github.com/digiserv/backend/subm/inmem"
)

type failingTable struct {
	err error
}

func (s *failingTable) Store(ctx context.Context, _ *subm.Submission) error {
	return s.err
}

type fakeEmailSink struct {
	mu    sync.Mutex
	err   error
	delay time.Duration
	calls int
}

func (s *fakeEmailSink) Send(ctx context.Context, _ subm.Form) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.err
}

func testForm() subm.Form {
	return subm.Form{
		Name:    "Anil",
		Email:   "anil@test.com",
		Problem: "Router issue",
		Message: "Router not working",
	}
}

func TestDualInsertSucceedsEmailFails(t *testing.T) {
	table := inmem.New()
	email := &fakeEmailSink{err: errors.New("relay down")}
	pipeline := intake.NewDualPipeline(table, email)

	dec := pipeline.Submit(context.Background(), testForm())

	assert.True(t, dec.Delivered)
	assert.Equal(t, intake.MsgReceived, dec.Message)

	subms, err := table.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subms, 1)
	assert.Equal(t, subm.StatusPending, subms[0].Status)
}

func TestDualInsertFailsEmailSucceeds(t *testing.T) {
	table := &failingTable{err: errors.New("insert rejected")}
	email := &fakeEmailSink{}
	pipeline := intake.NewDualPipeline(table, email)

	dec := pipeline.Submit(context.Background(), testForm())

	assert.True(t, dec.Delivered)
	assert.Equal(t, intake.MsgEmailOnly, dec.Message)
	assert.Equal(t, 1, email.calls)
}

func TestDualBothFailSurfacesInsertError(t *testing.T) {
	insertErr := errors.New("insert rejected")
	pipeline := intake.NewDualPipeline(
		&failingTable{err: insertErr},
		&fakeEmailSink{err: errors.New("relay down")},
	)

	dec := pipeline.Submit(context.Background(), testForm())

	assert.False(t, dec.Delivered)
	assert.Equal(t, insertErr, dec.Err)
}

func TestDualInsertFailsEmailUnconfigured(t *testing.T) {
	insertErr := errors.New("insert rejected")
	pipeline := intake.NewDualPipeline(&failingTable{err: insertErr}, nil)

	dec := pipeline.Submit(context.Background(), testForm())

	assert.False(t, dec.Delivered)
	assert.Equal(t, insertErr, dec.Err)
}

func TestDualUnconfiguredEmailIsSkippedNotFailed(t *testing.T) {
	table := inmem.New()
	pipeline := intake.NewDualPipeline(table, nil)

	dec := pipeline.Submit(context.Background(), testForm())

	assert.True(t, dec.Delivered)
	assert.Equal(t, intake.MsgReceived, dec.Message)
}

func TestDualSlowEmailDoesNotBlockOutcomeObservation(t *testing.T) {
	// Both sinks must settle, but a slow relay runs concurrently with
	// the insert rather than after it.
	table := inmem.New()
	email := &fakeEmailSink{delay: 50 * time.Millisecond}
	pipeline := intake.NewDualPipeline(table, email)

	start := time.Now()
	dec := pipeline.Submit(context.Background(), testForm())
	elapsed := time.Since(start)

	assert.True(t, dec.Delivered)
	assert.Equal(t, 1, email.calls)
	assert.Less(t, elapsed, 500*time.Millisecond)
}
