package subm

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	MsgFieldRequired = "This field is required"
	MsgEmailInvalid  = "Please enter a valid email address"
)

// FieldErrors maps form field names to human-readable messages for
// inline rendering next to the offending inputs.
type FieldErrors map[string]string

func (fe FieldErrors) OK() bool {
	return len(fe) == 0
}

// Form carries the raw contact-form field values before validation.
type Form struct {
	Name    string
	Email   string
	Phone   string
	Problem string
	Message string
}

// Validate checks that the required fields are non-blank and the email
// is well-formed. It is pure: identical input yields identical output.
//
// The server path requires name, email, and message. The contact form
// additionally marks problem as required; requireProblem selects that
// stricter variant.
func Validate(f Form, requireProblem bool) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = MsgFieldRequired
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = MsgFieldRequired
	} else if !emailRegex.MatchString(f.Email) {
		errs["email"] = MsgEmailInvalid
	}
	if requireProblem && strings.TrimSpace(f.Problem) == "" {
		errs["problem"] = MsgFieldRequired
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = MsgFieldRequired
	}
	return errs
}

// EmailIsValid reports whether the address matches the basic
// local@domain.tld shape accepted everywhere in the system.
func EmailIsValid(email string) bool {
	return emailRegex.MatchString(email)
}
