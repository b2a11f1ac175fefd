package handler

import (
	"net/http"

	"pdf-processing-api/internal/domain"
)

// PdfHandler handles requests under the /api/v1/pdf surface
type PdfHandler struct {
	config domain.Config
	logger domain.Logger
}

// NewPdfHandler creates a new PDF API handler
func NewPdfHandler(config domain.Config, logger domain.Logger) *PdfHandler {
	return &PdfHandler{
		config: config,
		logger: logger,
	}
}

// GetHealth reports service status. The service performs no dependency
// checks, so the report is always UP; the documented 503/DOWN branch exists
// only as contract shape.
func (h *PdfHandler) GetHealth(w http.ResponseWriter, r *http.Request) error {
	health := domain.NewHealthStatus(h.config.GetServiceName(), h.config.GetServiceVersion())
	return writeJSON(w, http.StatusOK, health)
}
