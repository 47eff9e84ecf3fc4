package types

type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "UP"
	HealthStatusDown     HealthStatus = "DOWN"
	HealthStatusDegraded HealthStatus = "DEGRADED"
)

// Component names reported by the health check.
const (
	HealthComponentDelivery = "delivery"
	HealthComponentSessions = "sessions"
)

func (s HealthStatus) severity() int {
	switch s {
	case HealthStatusDown:
		return 2
	case HealthStatusDegraded:
		return 1
	default:
		return 0
	}
}

// Worse returns whichever of s and other is more severe.
func (s HealthStatus) Worse(other HealthStatus) HealthStatus {
	if other.severity() > s.severity() {
		return other
	}
	return s
}

type HealthComponent struct {
	Status  HealthStatus `json:"status"`
	Details string       `json:"details,omitempty"`
}

// HealthCheck is the body of the health endpoints. DeliveryMode echoes the
// configured contact delivery channel; Reason explains a DOWN status.
type HealthCheck struct {
	Status       HealthStatus               `json:"status"`
	Reason       string                     `json:"reason,omitempty"`
	Components   map[string]HealthComponent `json:"components"`
	DeliveryMode string                     `json:"delivery_mode"`
	Version      string                     `json:"version"`
	Timestamp    string                     `json:"timestamp"`
	Uptime       string                     `json:"uptime"`
}

// Ready reports whether the contact pipeline can accept submissions.
func (h HealthCheck) Ready() bool {
	return h.Status != HealthStatusDown
}
