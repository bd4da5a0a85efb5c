package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
)

const internalErrorMessage = "Internal server error"

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// WriteAppError logs err under op and writes the matching error envelope.
// Errors outside the apperr taxonomy are reported as a generic 500.
func WriteAppError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error(op+": unexpected error", slog.String("error", err.Error()))
		WriteError(w, http.StatusInternalServerError, internalErrorMessage, nil)
		return
	}

	status := appErr.Kind.Status()
	if appErr.Kind == apperr.KindInternal {
		log.Error(op+": "+appErr.Message, slog.String("error", err.Error()))
		WriteError(w, status, internalErrorMessage, nil)
		return
	}

	log.Warn(op+": "+appErr.Kind.String(), slog.String("error", appErr.Message))
	WriteError(w, status, appErr.Message, appErr.Details)
}
