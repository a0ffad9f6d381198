package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/digiserv/backend/auth"
)

func (httpserver *HttpServer) adminLogin(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received admin login request", "email", request.Email)

	if !httpserver.creds.Verify(request.Email, request.Password) {
		handleJsonSrvcError(logger, w, auth.NewErrInvalidCredentials())
		return
	}

	token, err := auth.GenerateJWT(httpserver.creds.Email, uuid.New(), httpserver.jwtKey)
	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		writeJsonInternalServerError(w)
		return
	}

	writeJsonSuccessResponse(w, token)
}
