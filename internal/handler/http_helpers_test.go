package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-processing-api/internal/domain"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := writeJSON(rr, http.StatusOK, map[string]string{"key": "value"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"key":"value"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()

	err := writeJSON(rr, http.StatusOK, make(chan int))
	if err == nil {
		t.Fatalf("expected error for unserializable value")
	}
	if rr.Code != http.StatusOK || rr.Body.Len() != 0 {
		t.Fatalf("expected no response to be written, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := &domain.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    "nope",
		Timestamp:  "2025-11-15T10:30:00Z",
		Path:       "/api/greeting",
	}

	writeError(rr, payload, http.StatusBadRequest)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if !strings.Contains(rr.Body.String(), `"statusCode":400`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"message":"nope"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}
