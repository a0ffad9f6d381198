package intake_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digiserv/backend/intake"
)

func TestDecideTableSucceeded(t *testing.T) {
	// The persisted variant wins regardless of what the email sink did.
	emailOutcomes := []intake.SinkResult{
		{Status: intake.SinkSucceeded},
		{Status: intake.SinkFailed, Err: errors.New("relay down")},
		{Status: intake.SinkSkipped},
	}
	for _, email := range emailOutcomes {
		dec := intake.Decide(intake.SinkResult{Status: intake.SinkSucceeded}, email)
		assert.True(t, dec.Delivered, "email outcome %v", email.Status)
		assert.Equal(t, intake.MsgReceived, dec.Message)
		assert.NoError(t, dec.Err)
	}
}

func TestDecideEmailOnly(t *testing.T) {
	insertErr := errors.New("insert rejected")
	dec := intake.Decide(
		intake.SinkResult{Status: intake.SinkFailed, Err: insertErr},
		intake.SinkResult{Status: intake.SinkSucceeded},
	)
	assert.True(t, dec.Delivered)
	assert.Equal(t, intake.MsgEmailOnly, dec.Message)
}

func TestDecideBothFailedPrefersTableError(t *testing.T) {
	insertErr := errors.New("insert rejected")
	dec := intake.Decide(
		intake.SinkResult{Status: intake.SinkFailed, Err: insertErr},
		intake.SinkResult{Status: intake.SinkFailed, Err: errors.New("relay down")},
	)
	assert.False(t, dec.Delivered)
	assert.Equal(t, insertErr, dec.Err)
}

func TestDecideTableFailedEmailSkipped(t *testing.T) {
	insertErr := errors.New("insert rejected")
	dec := intake.Decide(
		intake.SinkResult{Status: intake.SinkFailed, Err: insertErr},
		intake.SinkResult{Status: intake.SinkSkipped},
	)
	assert.False(t, dec.Delivered)
	assert.Equal(t, insertErr, dec.Err)
}

func TestDecideGenericErrorWhenNoTableErrorText(t *testing.T) {
	dec := intake.Decide(
		intake.SinkResult{Status: intake.SinkFailed},
		intake.SinkResult{Status: intake.SinkSkipped},
	)
	assert.False(t, dec.Delivered)
	assert.EqualError(t, dec.Err, "Failed to send message")
}

func TestSinkStatusString(t *testing.T) {
	assert.Equal(t, "succeeded", intake.SinkSucceeded.String())
	assert.Equal(t, "failed", intake.SinkFailed.String())
	assert.Equal(t, "skipped", intake.SinkSkipped.String())
}
