// Package handlers wires the HTTP surface: the public events API, the admin
// CRUD panel, and authentication.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/amokewustl/belong-chivent/pkg/models"
)

// Helper functions shared by all handlers.

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[handlers] error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		log.Printf("[handlers] error: %s - %v", message, err)
	}

	respondJSON(w, status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
