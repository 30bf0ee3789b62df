package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/devconnect/backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.NewErrorResponse(msg))
}

func writeValidationErrors(w http.ResponseWriter, errors map[string]string) {
	writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
}

func contextWithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
