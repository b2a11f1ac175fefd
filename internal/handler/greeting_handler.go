package handler

import (
	"net/http"

	"pdf-processing-api/internal/domain"
)

// GreetingHandler handles greeting-related HTTP requests
type GreetingHandler struct {
	logger domain.Logger
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(logger domain.Logger) *GreetingHandler {
	return &GreetingHandler{logger: logger}
}

// GetGreeting returns the fixed greeting message. The wire body is the bare
// JSON string, not the wrapping object.
func (h *GreetingHandler) GetGreeting(w http.ResponseWriter, r *http.Request) error {
	greeting := domain.NewGreeting()
	return writeJSON(w, http.StatusOK, greeting.Message)
}
