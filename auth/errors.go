package auth

import (
	"net/http"

	"github.com/digiserv/backend/srvcerror"
)

const ErrCodeInvalidCredentials = "invalid_credentials"

func NewErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"Email or password is incorrect.",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeUnauthorized = "unauthorized"

func NewErrUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"You must be signed in to access this resource.",
	).SetHttpStatusCode(http.StatusUnauthorized)
}
