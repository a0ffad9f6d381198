package intake

import "errors"

// SinkStatus is the three-valued outcome of one delivery sink.
type SinkStatus int

const (
	// SinkSkipped means the sink was never attempted (not configured).
	SinkSkipped SinkStatus = iota
	SinkSucceeded
	SinkFailed
)

func (s SinkStatus) String() string {
	switch s {
	case SinkSucceeded:
		return "succeeded"
	case SinkFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// SinkResult is what one sink reported after settling.
type SinkResult struct {
	Status SinkStatus
	Err    error
}

// Decision is the single user-visible outcome resolved from both sinks.
type Decision struct {
	Delivered bool
	Message   string
	Err       error
}

const (
	// MsgReceived asserts persisted receipt.
	MsgReceived = "Your message has been received! We'll get back to you soon."
	// MsgEmailOnly asserts email-only receipt: the message reached the
	// relay but was not durably stored.
	MsgEmailOnly = "Message sent via email! We'll get back to you soon."
)

var errDeliveryFailed = errors.New("Failed to send message")

// Decide combines the two sink results. The submission is delivered if
// the table insert succeeded, or failing that, if the email dispatch
// was attempted and succeeded. Only when both sinks are unavailable or
// failed does the pipeline report failure, preferring the table
// operation's error text.
func Decide(table, email SinkResult) Decision {
	if table.Status == SinkSucceeded {
		return Decision{Delivered: true, Message: MsgReceived}
	}
	if email.Status == SinkSucceeded {
		return Decision{Delivered: true, Message: MsgEmailOnly}
	}
	err := table.Err
	if err == nil {
		err = errDeliveryFailed
	}
	return Decision{Delivered: false, Err: err}
}
