package handler

import (
	"fmt"
	"net/http"
	"time"

	"pdf-processing-api/internal/domain"
	apperrors "pdf-processing-api/pkg/errors"
)

// apiHandler is a request handler that reports faults instead of writing
// error responses itself. Handlers never catch faults; every error they
// return reaches the fault interceptor.
type apiHandler func(http.ResponseWriter, *http.Request) error

// faultInterceptor adapts an apiHandler to http.HandlerFunc. It is the
// single point where faults become error responses: every route passes
// through it, so no handler can leak an untranslated failure.
func faultInterceptor(logger domain.Logger, fn apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		payload, status := apperrors.Translate(err, r.URL.Path)
		logger.Error("Request failed", err, "path", r.URL.Path, "status", status)
		writeError(w, payload, status)
	}
}

// RecoveryMiddleware converts panics escaping any handler into a translated
// error response instead of dropping the connection.
func RecoveryMiddleware(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}

					payload, status := apperrors.Translate(err, r.URL.Path)
					logger.Error("Panic recovered", err, "path", r.URL.Path)
					writeError(w, payload, status)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder captures the status code written by downstream handlers
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs one line per completed request
func LoggingMiddleware(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			logger.Info("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}
