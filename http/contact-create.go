package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/digiserv/backend/logger"
	"github.com/digiserv/backend/srvcerror"
	"github.com/digiserv/backend/subm"
)

// Legacy wire shapes. These are fixed: the public site's form client
// depends on them.

type contactSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type legacyErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeLegacyError(w http.ResponseWriter, statusCode int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(legacyErrorResponse{Success: false, Error: errMsg})
}

func (httpserver *HttpServer) createContact(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())

	type contactRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Problem string `json:"problem"`
		Message string `json:"message"`
	}

	var request contactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeLegacyError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx := logger.WithLogger(r.Context(), log)
	s, err := httpserver.intake.Submit(ctx, subm.Form{
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Problem: request.Problem,
		Message: request.Message,
	})
	if err != nil {
		srvcErr := &srvcerror.Error{}
		if errors.As(err, &srvcErr) {
			writeLegacyError(w, srvcErr.HttpStatusCode(), srvcErr.Error())
			return
		}
		log.Error("failed to process contact form", "error", err)
		writeLegacyError(w, http.StatusInternalServerError,
			"Something went wrong. Please try again later.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(contactSuccessResponse{
		Success: true,
		Message: "Your message has been received! We'll get back to you soon.",
		ID:      s.ID,
	})
}
