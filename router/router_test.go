package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/config"
	"github.com/lumbunggroup/lumbung-backend/handlers"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/lumbunggroup/lumbung-backend/services"
	"github.com/lumbunggroup/lumbung-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDependencies(t *testing.T, env config.Environment) Dependencies {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:    env,
			Port:           "8080",
			AllowedOrigins: []string{"*"},
			Version:        "test",
		},
		Contact: config.ContactConfig{DeliveryMode: config.DeliverySimulated},
	}

	deliverer := contact.DeliverFunc(func(ctx context.Context, values contact.FormValues) error {
		return nil
	})
	schema := contact.ContactSchema()
	sessions := services.NewContactSessionService(schema, deliverer, services.ContactSessionConfig{TTL: time.Hour}, nil)
	t.Cleanup(sessions.Close)

	return Dependencies{
		Config:                cfg,
		HealthHandler:         handlers.NewHealthHandler(services.NewHealthService(cfg.Contact.DeliveryMode, false, sessions, "test")),
		SiteHandler:           handlers.NewSiteHandler(types.DefaultSiteInfo("test", "")),
		ContactHandler:        handlers.NewContactHandler(schema, deliverer, nil, time.Second),
		ContactSessionHandler: handlers.NewContactSessionHandler(sessions),
	}
}

func TestSetupRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testDependencies(t, config.EnvDevelopment))

	tests := []struct {
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/health/liveness", "", http.StatusOK},
		{http.MethodGet, "/health/readiness", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{http.MethodGet, "/v1/site", "", http.StatusOK},
		{http.MethodGet, "/v1/contact/schema", "", http.StatusOK},
		{http.MethodPost, "/v1/contact", `{"name":""}`, http.StatusUnprocessableEntity},
		{http.MethodPost, "/v1/contact/sessions", "", http.StatusCreated},
		{http.MethodGet, "/v1/contact/sessions/missing", "", http.StatusNotFound},
		{http.MethodGet, "/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestSetupRouter_OneShotSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testDependencies(t, config.EnvDevelopment))

	body, err := json.Marshal(map[string]string{
		"name":     "Siti Rahayu",
		"email":    "siti@example.co.id",
		"category": "career",
		"subject":  "Lowongan kerja",
		"message":  "Saya ingin melamar posisi analis.",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRouter_NoSwaggerInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testDependencies(t, config.EnvProduction))

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
}
