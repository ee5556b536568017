package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// ErrorResponse is the body returned for not-found and generic failures.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Path      string    `json:"path"`
}

// ValidationErrorResponse is the body returned when request validation fails.
// Errors maps each violated field to a human-readable reason.
type ValidationErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors"`
}

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondError writes an ErrorResponse for the given status and message.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     message,
		Path:      r.URL.Path,
	})
}

// RespondValidationErrors writes a 400 ValidationErrorResponse carrying the
// full set of violated fields.
func RespondValidationErrors(w http.ResponseWriter, r *http.Request, logger *slog.Logger, fieldErrors map[string]string) {
	RespondJSON(w, logger, http.StatusBadRequest, ValidationErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Path:      r.URL.Path,
		Errors:    fieldErrors,
	})
}

// ParseID extracts and validates the numeric ID from the request path.
// Returns the ID and a boolean indicating success.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	pathValueID := r.PathValue("id")
	id, err := strconv.ParseInt(pathValueID, 10, 64)
	if err != nil || id <= 0 {
		RespondError(w, r, logger, http.StatusBadRequest, fmt.Sprintf("Invalid ID: %s", pathValueID))
		return 0, false
	}
	return id, true
}
