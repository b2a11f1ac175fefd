package handler

import (
	"net/http"

	"pdf-processing-api/internal/config"
	"pdf-processing-api/internal/openapi"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()
	logger := container.GetLogger()

	router.Use(LoggingMiddleware(logger))
	router.Use(RecoveryMiddleware(logger))

	// Initialize handlers
	greetingHandler := NewGreetingHandler(logger)
	pdfHandler := NewPdfHandler(container.GetConfig(), logger)
	docsHandler := openapi.NewDocsHandler(container.GetConfig())

	// API surface; every route goes through the fault interceptor
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/greeting", faultInterceptor(logger, greetingHandler.GetGreeting)).Methods("GET")
	api.HandleFunc("/v1/pdf/health", faultInterceptor(logger, pdfHandler.GetHealth)).Methods("GET")
	api.HandleFunc("/docs", faultInterceptor(logger, docsHandler.GetDocument)).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.GetConfig().GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
