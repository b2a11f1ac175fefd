// Package openapi builds the machine-readable API description served at
// /api/docs.
package openapi

import (
	"net/http"

	"pdf-processing-api/internal/domain"
	apperrors "pdf-processing-api/pkg/errors"

	"github.com/getkin/kin-openapi/openapi3"
)

// Tag names used to group operations in the generated documentation.
const (
	TagPdfProcessing = "PDF Processing"
	TagGreeting      = "Greeting"
)

// Document assembles the OpenAPI 3 description of the API: global metadata,
// tags, per-endpoint operations, and the shared response schemas. It is
// built once from static configuration; nothing is introspected at runtime.
func Document(config domain.Config) *openapi3.T {
	errorSchema := errorResponseSchema()
	healthSchema := healthStatusSchema()
	greetingSchema := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:    &openapi3.Types{"string"},
			Example: domain.GreetingMessage,
		},
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       config.GetServiceName(),
			Version:     config.GetServiceVersion(),
			Description: "REST API for PDF document processing. Provides endpoints for service health reporting and connectivity checks.",
			Contact: &openapi3.Contact{
				Name:  "PDF Processing Team",
				URL:   "https://example.com",
				Email: "support@example.com",
			},
			License: &openapi3.License{
				Name: "Apache License 2.0",
				URL:  "https://www.apache.org/licenses/LICENSE-2.0.html",
			},
		},
		Tags: openapi3.Tags{
			{Name: TagPdfProcessing, Description: "Endpoints for PDF document processing"},
			{Name: TagGreeting, Description: "Endpoints for greeting operations"},
		},
		Paths: &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: map[string]*openapi3.SchemaRef{
				"ErrorResponse": errorSchema,
				"HealthStatus":  healthSchema,
			},
		},
	}

	greetingOp := &openapi3.Operation{
		Summary:     "Get a greeting message",
		OperationID: "getGreeting",
		Tags:        []string{TagGreeting},
		Responses:   &openapi3.Responses{},
	}
	greetingOp.Responses.Set("200", jsonResponse("Greeting message retrieved successfully", greetingSchema))
	greetingOp.Responses.Set("500", jsonResponse("Internal Server Error", errorSchema))
	spec.Paths.Set("/api/greeting", &openapi3.PathItem{Get: greetingOp})

	healthOp := &openapi3.Operation{
		Summary:     "Check API health status",
		OperationID: "getHealth",
		Tags:        []string{TagPdfProcessing},
		Responses:   &openapi3.Responses{},
	}
	healthOp.Responses.Set("200", jsonResponse("API is healthy and operational", healthSchema))
	// Documented contract only: no code path produces the DOWN report.
	healthOp.Responses.Set("503", jsonResponse("API is unavailable", healthSchema))
	healthOp.Responses.Set("500", jsonResponse("Internal Server Error", errorSchema))
	spec.Paths.Set("/api/v1/pdf/health", &openapi3.PathItem{Get: healthOp})

	docsOp := &openapi3.Operation{
		Summary:     "Get the API description",
		OperationID: "getApiDocs",
		Tags:        []string{TagPdfProcessing},
		Responses:   &openapi3.Responses{},
	}
	docsOp.Responses.Set("200", jsonResponse("OpenAPI document retrieved successfully", &openapi3.SchemaRef{
		Value: &openapi3.Schema{Type: &openapi3.Types{"object"}},
	}))
	docsOp.Responses.Set("500", jsonResponse("Internal Server Error", errorSchema))
	spec.Paths.Set("/api/docs", &openapi3.PathItem{Get: docsOp})

	return spec
}

func errorResponseSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:        &openapi3.Types{"object"},
			Description: "Error response containing error details and HTTP status information",
			Properties: map[string]*openapi3.SchemaRef{
				"statusCode": {
					Value: &openapi3.Schema{
						Type:        &openapi3.Types{"integer"},
						Description: "HTTP status code",
						Example:     400,
					},
				},
				"message": {
					Value: &openapi3.Schema{
						Type:        &openapi3.Types{"string"},
						Description: "Error message describing the issue",
						Example:     "Invalid argument provided",
					},
				},
				"timestamp": {
					Value: &openapi3.Schema{
						Type:        &openapi3.Types{"string"},
						Description: "Timestamp of when the error occurred (ISO 8601 format)",
						Example:     "2025-11-15T10:30:00Z",
					},
				},
				"path": {
					Value: &openapi3.Schema{
						Type:        &openapi3.Types{"string"},
						Description: "API path that resulted in the error",
						Example:     "/api/v1/pdf/health",
					},
				},
			},
			Required: []string{"statusCode", "message", "timestamp"},
		},
	}
}

func healthStatusSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:        &openapi3.Types{"object"},
			Description: "Health check response containing service status and version information",
			Properties: map[string]*openapi3.SchemaRef{
				"status": {
					Value: &openapi3.Schema{
						Type:        &openapi3.Types{"string"},
						Description: "Current health status of the service",
						Enum:        []interface{}{string(domain.StatusUp), string(domain.StatusDown)},
						Example:     string(domain.StatusUp),
					},
				},
				"service": {
					Value: &openapi3.Schema{
						Type:        &openapi3.Types{"string"},
						Description: "Name of the service",
						Example:     "PDF Processing API",
					},
				},
				"version": {
					Value: &openapi3.Schema{
						Type:        &openapi3.Types{"string"},
						Description: "Current version of the API",
						Example:     "1.0.0",
					},
				},
			},
			Required: []string{"status", "service", "version"},
		},
	}
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content: map[string]*openapi3.MediaType{
				"application/json": {
					Schema: schema,
				},
			},
		},
	}
}

// DocsHandler serves the generated API description
type DocsHandler struct {
	document *openapi3.T
}

// NewDocsHandler builds the document once and serves it for every request
func NewDocsHandler(config domain.Config) *DocsHandler {
	return &DocsHandler{document: Document(config)}
}

// GetDocument writes the OpenAPI document as JSON
func (h *DocsHandler) GetDocument(w http.ResponseWriter, r *http.Request) error {
	body, err := h.document.MarshalJSON()
	if err != nil {
		return apperrors.NewInternalError("failed to serialize API description", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	return nil
}
