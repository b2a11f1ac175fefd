package domain

// HealthState represents the reported health of the service
type HealthState string

const (
	StatusUp HealthState = "UP"
	// StatusDown is part of the published contract (documented 503) but the
	// service performs no dependency checks, so nothing ever reports it.
	StatusDown HealthState = "DOWN"
)

// HealthStatus is the response body of the health check endpoint
type HealthStatus struct {
	Status  HealthState `json:"status"`
	Service string      `json:"service"`
	Version string      `json:"version"`
}

// NewHealthStatus builds a fresh health report for the given service identity
func NewHealthStatus(service, version string) *HealthStatus {
	return &HealthStatus{
		Status:  StatusUp,
		Service: service,
		Version: version,
	}
}
