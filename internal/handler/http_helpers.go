// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"pdf-processing-api/internal/domain"
	apperrors "pdf-processing-api/pkg/errors"
)

// writeJSON serializes v and writes it with the given status. The body is
// marshalled before any header is written so a marshal failure can still
// propagate to the fault interceptor as a clean error response.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewInternalError("failed to serialize response", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
	return nil
}

// writeError writes the translated error envelope. The envelope is built
// from plain fields and cannot fail to marshal; a static body is the final
// fallback regardless.
func writeError(w http.ResponseWriter, payload *domain.ErrorResponse, statusCode int) {
	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte(`{"statusCode":500,"message":"An unexpected error occurred"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
