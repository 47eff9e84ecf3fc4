package services

import (
	"context"
	"testing"
	"time"

	"github.com/lumbunggroup/lumbung-backend/config"
	"github.com/lumbunggroup/lumbung-backend/types"
	"github.com/stretchr/testify/assert"
)

type staticSessionCounter struct {
	count, max int
}

func (s staticSessionCounter) Count() int       { return s.count }
func (s staticSessionCounter) MaxSessions() int { return s.max }

func TestNewHealthService(t *testing.T) {
	service := NewHealthService(config.DeliverySimulated, false, nil, "1.0.0")

	assert.NotNil(t, service)
	assert.Equal(t, "1.0.0", service.version)
	assert.NotNil(t, service.log)
	assert.True(t, time.Since(service.startTime) < time.Second)
}

func TestHealthService_CheckHealth(t *testing.T) {
	tests := []struct {
		name           string
		mode           config.DeliveryMode
		emailReady     bool
		sessions       SessionCounter
		expectedStatus types.HealthStatus
		expectedComps  map[string]types.HealthStatus
	}{
		{
			name:           "simulated delivery",
			mode:           config.DeliverySimulated,
			sessions:       staticSessionCounter{count: 1, max: 100},
			expectedStatus: types.HealthStatusUp,
			expectedComps: map[string]types.HealthStatus{
				types.HealthComponentDelivery: types.HealthStatusUp,
				types.HealthComponentSessions: types.HealthStatusUp,
			},
		},
		{
			name:           "email delivery ready",
			mode:           config.DeliveryEmail,
			emailReady:     true,
			sessions:       staticSessionCounter{},
			expectedStatus: types.HealthStatusUp,
			expectedComps: map[string]types.HealthStatus{
				types.HealthComponentDelivery: types.HealthStatusUp,
			},
		},
		{
			name:           "email delivery missing credentials",
			mode:           config.DeliveryEmail,
			sessions:       staticSessionCounter{},
			expectedStatus: types.HealthStatusDown,
			expectedComps: map[string]types.HealthStatus{
				types.HealthComponentDelivery: types.HealthStatusDown,
			},
		},
		{
			name:           "sessions near capacity",
			mode:           config.DeliverySimulated,
			sessions:       staticSessionCounter{count: 95, max: 100},
			expectedStatus: types.HealthStatusDegraded,
			expectedComps: map[string]types.HealthStatus{
				types.HealthComponentSessions: types.HealthStatusDegraded,
			},
		},
		{
			name:           "unknown delivery mode",
			mode:           config.DeliveryMode("fax"),
			sessions:       staticSessionCounter{count: 95, max: 100},
			expectedStatus: types.HealthStatusDown,
			expectedComps: map[string]types.HealthStatus{
				types.HealthComponentDelivery: types.HealthStatusDown,
				types.HealthComponentSessions: types.HealthStatusDegraded,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHealthService(tt.mode, tt.emailReady, tt.sessions, "1.0.0")

			result := service.CheckHealth(context.Background())

			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, "1.0.0", result.Version)
			assert.Equal(t, string(tt.mode), result.DeliveryMode)
			assert.NotEmpty(t, result.Timestamp)
			assert.NotEmpty(t, result.Uptime)
			for comp, expectedStatus := range tt.expectedComps {
				assert.Equal(t, expectedStatus, result.Components[comp].Status, comp)
			}
		})
	}
}

func TestHealthService_CheckHealth_WithContext(t *testing.T) {
	service := NewHealthService(config.DeliverySimulated, false, nil, "1.0.0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := service.CheckHealth(ctx)

	assert.Equal(t, types.HealthStatusDegraded, result.Status)
	_, hasSessions := result.Components[types.HealthComponentSessions]
	assert.False(t, hasSessions)
}

func TestHealthService_Sessions(t *testing.T) {
	service := NewHealthService(config.DeliverySimulated, false, staticSessionCounter{count: 3}, "1.0.0")

	comp := service.checkSessions()

	assert.Equal(t, types.HealthStatusUp, comp.Status)
	assert.Equal(t, "3 open", comp.Details)
}

func TestHealthService_ReasonNamesDeliveryMode(t *testing.T) {
	down := NewHealthService(config.DeliveryEmail, false, nil, "1.0.0").CheckHealth(context.Background())
	assert.Equal(t, "contact form cannot send messages (email delivery): Email delivery is missing credentials", down.Reason)

	up := NewHealthService(config.DeliverySimulated, false, nil, "1.0.0").CheckHealth(context.Background())
	assert.Empty(t, up.Reason)
}
