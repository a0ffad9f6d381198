package intake_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiserv/backend/intake"
	"github.com/digiserv/backend/srvcerror"
	"github.com/digiserv/backend/subm"
	"github.com/digiserv/backend/subm/inmem"
)

type fakeMailer struct {
	err   error
	calls int
}

func (m *fakeMailer) SendSubmissionNotifications(ctx context.Context, _ *subm.Submission) error {
	m.calls++
	return m.err
}

type failingStore struct{}

func (failingStore) Store(ctx context.Context, _ *subm.Submission) error {
	return errors.New("disk full")
}

func (failingStore) MarkEmailSent(ctx context.Context, _ string) error {
	return errors.New("disk full")
}

func TestLegacySubmitPersistsWithoutMailer(t *testing.T) {
	store := inmem.New()
	pipeline := intake.NewLegacyPipeline(store, nil)

	s, err := pipeline.Submit(context.Background(), subm.Form{
		Name:    "Anil",
		Email:   "anil@test.com",
		Phone:   "",
		Problem: "Router issue",
		Message: "Router not working",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.EmailSent)
	assert.Equal(t, subm.StatusPending, s.Status)
	assert.NotEmpty(t, s.CreatedAt)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLegacySubmitMissingFieldsStoresNothing(t *testing.T) {
	store := inmem.New()
	pipeline := intake.NewLegacyPipeline(store, nil)

	for _, f := range []subm.Form{
		{Email: "anil@test.com", Message: "help"},
		{Name: "Anil", Message: "help"},
		{Name: "Anil", Email: "anil@test.com"},
	} {
		_, err := pipeline.Submit(context.Background(), f)
		require.Error(t, err)

		srvcErr := &srvcerror.Error{}
		require.ErrorAs(t, err, &srvcErr)
		assert.Equal(t, subm.ErrCodeMissingRequiredFields, srvcErr.ErrorCode())
		assert.Equal(t, 400, srvcErr.HttpStatusCode())
		assert.Equal(t, "Name, email, and message are required.", srvcErr.Error())
	}

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLegacySubmitMalformedEmailStoresNothing(t *testing.T) {
	store := inmem.New()
	pipeline := intake.NewLegacyPipeline(store, nil)

	_, err := pipeline.Submit(context.Background(), subm.Form{
		Name:    "Anil",
		Email:   "not-an-email",
		Message: "help",
	})
	require.Error(t, err)

	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, subm.ErrCodeInvalidEmailFormat, srvcErr.ErrorCode())
	assert.Equal(t, "Invalid email format.", srvcErr.Error())

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLegacySubmitValidationNeverTouchesMailer(t *testing.T) {
	mailer := &fakeMailer{}
	pipeline := intake.NewLegacyPipeline(inmem.New(), mailer)

	_, err := pipeline.Submit(context.Background(), subm.Form{})
	require.Error(t, err)
	assert.Equal(t, 0, mailer.calls)
}

func TestLegacySubmitEmailFailureIsNonFatal(t *testing.T) {
	store := inmem.New()
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	pipeline := intake.NewLegacyPipeline(store, mailer)

	s, err := pipeline.Submit(context.Background(), subm.Form{
		Name:    "Anil",
		Email:   "anil@test.com",
		Message: "Router not working",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, mailer.calls)

	// The stored record keeps emailSent false.
	subms, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subms, 1)
	assert.False(t, subms[0].EmailSent)
}

func TestLegacySubmitRecordsSuccessfulDelivery(t *testing.T) {
	store := inmem.New()
	mailer := &fakeMailer{}
	pipeline := intake.NewLegacyPipeline(store, mailer)

	s, err := pipeline.Submit(context.Background(), subm.Form{
		Name:    "Anil",
		Email:   "anil@test.com",
		Message: "Router not working",
	})
	require.NoError(t, err)
	assert.True(t, s.EmailSent)

	subms, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subms, 1)
	assert.True(t, subms[0].EmailSent)
}

func TestLegacySubmitPersistenceFailure(t *testing.T) {
	mailer := &fakeMailer{}
	pipeline := intake.NewLegacyPipeline(failingStore{}, mailer)

	_, err := pipeline.Submit(context.Background(), subm.Form{
		Name:    "Anil",
		Email:   "anil@test.com",
		Message: "help",
	})
	require.Error(t, err)

	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, subm.ErrCodePersistenceFailed, srvcErr.ErrorCode())
	assert.Equal(t, 500, srvcErr.HttpStatusCode())

	// Persistence failed, so no email may be attempted.
	assert.Equal(t, 0, mailer.calls)
}
