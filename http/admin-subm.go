package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/digiserv/backend/auth"
	"github.com/digiserv/backend/logger"
	"github.com/digiserv/backend/subm"
)

// requireAdmin writes a 401 and returns nil when the request carries no
// valid session.
func (httpserver *HttpServer) requireAdmin(w http.ResponseWriter, r *http.Request) *auth.JwtClaims {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		log := httplog.LogEntry(r.Context())
		handleJsonSrvcError(log, w, auth.NewErrUnauthorized())
		return nil
	}
	return claims
}

// requireAdminRepo writes a 503 and returns false when no hosted table
// is configured.
func (httpserver *HttpServer) requireAdminRepo(w http.ResponseWriter) bool {
	if httpserver.adminRepo == nil {
		writeJsonErrorResponse(w,
			"The admin API is not available: no database is configured.",
			http.StatusServiceUnavailable,
			"admin_api_disabled")
		return false
	}
	return true
}

func (httpserver *HttpServer) adminWhoami(w http.ResponseWriter, r *http.Request) {
	claims := httpserver.requireAdmin(w, r)
	if claims == nil {
		return
	}
	writeJsonSuccessResponse(w, map[string]string{
		"email": claims.Email,
		"uuid":  claims.UUID,
	})
}

func (httpserver *HttpServer) adminListSubmissions(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())

	if httpserver.requireAdmin(w, r) == nil {
		return
	}
	if !httpserver.requireAdminRepo(w) {
		return
	}

	subms, err := httpserver.adminRepo.List(logger.WithLogger(r.Context(), log))
	if err != nil {
		log.Error("failed to list submissions for admin", "error", err)
		writeJsonInternalServerError(w)
		return
	}
	if subms == nil {
		subms = []subm.Submission{}
	}

	writeJsonSuccessResponse(w, subms)
}

func (httpserver *HttpServer) adminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())

	if httpserver.requireAdmin(w, r) == nil {
		return
	}
	if !httpserver.requireAdminRepo(w) {
		return
	}

	type statusRequest struct {
		Status string `json:"status"`
	}

	var request statusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	status := subm.Status(request.Status)
	if !status.IsValid() {
		handleJsonSrvcError(log, w, subm.NewErrInvalidStatus())
		return
	}

	id := chi.URLParam(r, "id")
	ctx := logger.WithLogger(r.Context(), log)
	if err := httpserver.adminRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, subm.ErrNotFound) {
			handleJsonSrvcError(log, w, subm.NewErrSubmissionNotFound())
			return
		}
		log.Error("failed to update submission status", "error", err, "subm_id", id)
		writeJsonInternalServerError(w)
		return
	}

	writeJsonSuccessResponse(w, map[string]string{
		"id":     id,
		"status": string(status),
	})
}
