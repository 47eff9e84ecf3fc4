package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lumbunggroup/lumbung-backend/config"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/types"
	"go.uber.org/zap"
)

// SessionCounter reports session registry occupancy.
type SessionCounter interface {
	Count() int
	MaxSessions() int
}

// sessionDegradedRatio is the occupancy above which sessions report DEGRADED.
const sessionDegradedRatio = 0.9

type HealthService struct {
	deliveryMode config.DeliveryMode
	emailReady   bool
	sessions     SessionCounter
	version      string
	log          *zap.SugaredLogger
	startTime    time.Time
}

// NewHealthService builds the health checker. emailReady tells whether the
// Resend credentials are present; it only matters in email delivery mode.
func NewHealthService(mode config.DeliveryMode, emailReady bool, sessions SessionCounter, version string) *HealthService {
	return &HealthService{
		deliveryMode: mode,
		emailReady:   emailReady,
		sessions:     sessions,
		version:      version,
		log:          logger.GetLogger(),
		startTime:    time.Now(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	deliveryStatus := h.checkDelivery()
	components[types.HealthComponentDelivery] = deliveryStatus
	overallStatus = overallStatus.Worse(deliveryStatus.Status)

	if h.sessions != nil {
		sessionStatus := h.checkSessions()
		components[types.HealthComponentSessions] = sessionStatus
		overallStatus = overallStatus.Worse(sessionStatus.Status)
	}

	if ctx.Err() != nil {
		overallStatus = overallStatus.Worse(types.HealthStatusDegraded)
	}

	var reason string
	if deliveryStatus.Status == types.HealthStatusDown {
		reason = fmt.Sprintf("contact form cannot send messages (%s delivery): %s", h.deliveryMode, deliveryStatus.Details)
	}

	return types.HealthCheck{
		Status:       overallStatus,
		Reason:       reason,
		Components:   components,
		DeliveryMode: string(h.deliveryMode),
		Version:      h.version,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkDelivery() types.HealthComponent {
	switch h.deliveryMode {
	case config.DeliverySimulated:
		return types.HealthComponent{
			Status:  types.HealthStatusUp,
			Details: "Simulated delivery, messages are not sent",
		}
	case config.DeliveryEmail:
		if !h.emailReady {
			h.log.Errorw("Email delivery is not configured")
			return types.HealthComponent{
				Status:  types.HealthStatusDown,
				Details: "Email delivery is missing credentials",
			}
		}
		return types.HealthComponent{Status: types.HealthStatusUp}
	default:
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: fmt.Sprintf("Unknown delivery mode %q", h.deliveryMode),
		}
	}
}

func (h *HealthService) checkSessions() types.HealthComponent {
	count, max := h.sessions.Count(), h.sessions.MaxSessions()
	details := fmt.Sprintf("%d open", count)
	if max > 0 {
		details = fmt.Sprintf("%d/%d open", count, max)
		if float64(count) >= float64(max)*sessionDegradedRatio {
			return types.HealthComponent{
				Status:  types.HealthStatusDegraded,
				Details: details + ", near capacity",
			}
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp, Details: details}
}
