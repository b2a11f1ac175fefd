package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pdf-processing-api/internal/domain"
)

// Mock config used by handler package tests.
type mockConfig struct {
	serviceName    string
	serviceVersion string
}

func (c *mockConfig) GetServerPort() string       { return "8080" }
func (c *mockConfig) GetLogLevel() string         { return "info" }
func (c *mockConfig) GetServiceName() string      { return c.serviceName }
func (c *mockConfig) GetServiceVersion() string   { return c.serviceVersion }
func (c *mockConfig) GetAllowedOrigins() []string { return []string{"http://localhost:3000"} }

func TestPdfHandler_GetHealth(t *testing.T) {
	cfg := &mockConfig{serviceName: "PDF Processing API", serviceVersion: "1.0.0"}
	h := NewPdfHandler(cfg, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pdf/health", nil)
	rr := httptest.NewRecorder()

	if err := h.GetHealth(rr, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var health domain.HealthStatus
	if err := json.Unmarshal(rr.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if health.Status != domain.StatusUp {
		t.Fatalf("expected status %s, got %s", domain.StatusUp, health.Status)
	}
	if health.Service != "PDF Processing API" {
		t.Fatalf("unexpected service name: %s", health.Service)
	}
	if health.Version != "1.0.0" {
		t.Fatalf("unexpected version: %s", health.Version)
	}
}

func TestPdfHandler_GetHealth_WireFieldNames(t *testing.T) {
	cfg := &mockConfig{serviceName: "PDF Processing API", serviceVersion: "1.0.0"}
	h := NewPdfHandler(cfg, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pdf/health", nil)
	rr := httptest.NewRecorder()

	if err := h.GetHealth(rr, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	for _, field := range []string{"status", "service", "version"} {
		if _, ok := raw[field]; !ok {
			t.Fatalf("expected field %q in response body %s", field, rr.Body.String())
		}
	}
	if len(raw) != 3 {
		t.Fatalf("expected exactly 3 fields, got %v", raw)
	}
}
