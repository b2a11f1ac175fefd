package domain

// ErrorResponse is the envelope returned to callers for every failed request.
// StatusCode always matches the transport-level response status; internal
// details beyond the message string are never included.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path,omitempty"`
}
