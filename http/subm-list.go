package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/digiserv/backend/subm"
)

// listSubmissions serves the legacy read-all endpoint: every stored
// submission, newest first, no pagination.
func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())

	type submissionsResponse struct {
		Success     bool              `json:"success"`
		Count       int               `json:"count"`
		Submissions []subm.Submission `json:"submissions"`
	}

	subms, err := httpserver.legacyList.List(r.Context())
	if err != nil {
		log.Error("failed to list submissions", "error", err)
		writeLegacyError(w, http.StatusInternalServerError,
			"Something went wrong. Please try again later.")
		return
	}
	if subms == nil {
		subms = []subm.Submission{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(submissionsResponse{
		Success:     true,
		Count:       len(subms),
		Submissions: subms,
	})
}
