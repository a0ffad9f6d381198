package http

import (
	"encoding/json"
	"net/http"
	"time"
)

func (httpserver *HttpServer) getHealth(w http.ResponseWriter, r *http.Request) {
	type healthResponse struct {
		Status          string `json:"status"`
		Timestamp       string `json:"timestamp"`
		EmailConfigured bool   `json:"emailConfigured"`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{
		Status:          "ok",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		EmailConfigured: httpserver.intake.EmailConfigured(),
	})
}
