package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteAppErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, discardLogger(), "chat", apperr.Validation("validation error", map[string]string{"message": "required"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeError(t, rec)
	assert.Equal(t, "validation error", body.Error)
	assert.Equal(t, "required", body.Details["message"])
}

func TestWriteAppErrorHidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, discardLogger(), "lawyers", apperr.Internal("database error", errors.New("socket closed")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Error)
}

func TestWriteAppErrorUnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, discardLogger(), "lawyers", errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Error)
}
