package subm

import (
	"net/http"

	"github.com/digiserv/backend/srvcerror"
)

const ErrCodeMissingRequiredFields = "missing_required_fields"

func NewErrMissingRequiredFields() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingRequiredFields,
		"Name, email, and message are required.",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidEmailFormat = "invalid_email_format"

func NewErrInvalidEmailFormat() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidEmailFormat,
		"Invalid email format.",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePersistenceFailed = "persistence_failed"

func NewErrPersistenceFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePersistenceFailed,
		"Something went wrong. Please try again later.",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

const ErrCodeInvalidStatus = "invalid_status"

func NewErrInvalidStatus() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStatus,
		"Status must be either pending or resolved.",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func NewErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"The requested submission was not found.",
	).SetHttpStatusCode(http.StatusNotFound)
}
