package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/cardvault/catalogsync/internal/domain"
	"github.com/cardvault/catalogsync/internal/tcgapi"
)

// bufferPool recycles encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidRequest        = "Invalid request. Please check your inputs."
	ErrMsgUnauthorizedError     = "Missing or invalid credential"
	ErrMsgForbiddenError        = "Admin access required"
	ErrMsgUpstreamError         = "Upstream catalog request failed"
	ErrMsgInvalidRequestSummary = "Validation failed"
)

// mapServiceErrorToStatus maps service errors to HTTP status codes and
// user-facing messages. Upstream catalog failures surface as 502 so callers
// can tell a broken catalog from a broken service.
func mapServiceErrorToStatus(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	var upstreamErr *tcgapi.UpstreamError

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, domain.ErrSyncFailed):
		return http.StatusInternalServerError, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the failure and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), opName+" failed", "error", err, "status", status)
	}
	respondError(w, status, message)
}
