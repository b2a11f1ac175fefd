package domain

import "testing"

func TestNewHealthStatus(t *testing.T) {
	health := NewHealthStatus("PDF Processing API", "1.0.0")

	if health.Status != StatusUp {
		t.Fatalf("expected status %s, got %s", StatusUp, health.Status)
	}
	if health.Service != "PDF Processing API" {
		t.Fatalf("unexpected service name: %s", health.Service)
	}
	if health.Version != "1.0.0" {
		t.Fatalf("unexpected version: %s", health.Version)
	}
}

func TestNewGreeting(t *testing.T) {
	greeting := NewGreeting()

	if greeting.Message != "Hare Krishna" {
		t.Fatalf("unexpected greeting message: %s", greeting.Message)
	}
}
