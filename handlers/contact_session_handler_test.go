package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/middleware"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/lumbunggroup/lumbung-backend/services"
	"github.com/lumbunggroup/lumbung-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionRouter(t *testing.T, deliverer contact.Deliverer, cfg services.ContactSessionConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := services.NewContactSessionService(contact.ContactSchema(), deliverer, cfg, nil)
	t.Cleanup(sessions.Close)
	h := NewContactSessionHandler(sessions)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	g := r.Group("/v1/contact/sessions")
	g.POST("", h.CreateSession)
	g.GET("/:id", h.GetSession)
	g.DELETE("/:id", h.DeleteSession)
	g.PUT("/:id/fields/:key", h.EditField)
	g.POST("/:id/submit", h.SubmitSession)
	g.POST("/:id/acknowledge", h.AcknowledgeSession)
	return r
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) types.ContactSessionResponse {
	t.Helper()
	var resp types.ContactSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestContactSessionHandler_Flow(t *testing.T) {
	r := setupSessionRouter(t, contact.DeliverFunc(func(ctx context.Context, values contact.FormValues) error {
		return nil
	}), services.ContactSessionConfig{TTL: time.Hour})

	w := doJSON(r, http.MethodPost, "/v1/contact/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	session := decodeSession(t, w)
	require.NotEmpty(t, session.ID)
	base := "/v1/contact/sessions/" + session.ID

	// Invalid submit keeps the session idle with errors.
	w = doJSON(r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	invalid := decodeSession(t, w)
	assert.Equal(t, "idle", invalid.State)
	assert.Equal(t, "Name is required", invalid.Errors["name"])

	// Editing clears the errors.
	w = doJSON(r, http.MethodPut, base+"/fields/name", map[string]string{"value": "Budi Santoso"})
	require.Equal(t, http.StatusOK, w.Code)
	edited := decodeSession(t, w)
	assert.Empty(t, edited.Errors)
	assert.Equal(t, "Budi Santoso", edited.Values["name"])

	w = doJSON(r, http.MethodPost, base+"/submit", validSubmission())
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		w := doJSON(r, http.MethodGet, base, nil)
		var view types.ContactSessionResponse
		return w.Code == http.StatusOK &&
			json.Unmarshal(w.Body.Bytes(), &view) == nil &&
			view.State == "success"
	}, 2*time.Second, 5*time.Millisecond)

	w = doJSON(r, http.MethodPost, base+"/acknowledge", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "idle", decodeSession(t, w).State)

	w = doJSON(r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactSessionHandler_Errors(t *testing.T) {
	r := setupSessionRouter(t, contact.DeliverFunc(func(ctx context.Context, values contact.FormValues) error {
		return nil
	}), services.ContactSessionConfig{MaxSessions: 1})

	w := doJSON(r, http.MethodPost, "/v1/contact/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/v1/contact/sessions/" + decodeSession(t, w).ID

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		expectedStatus int
		expectedType   string
	}{
		{"session cap", http.MethodPost, "/v1/contact/sessions", nil, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"unknown session", http.MethodGet, "/v1/contact/sessions/missing", nil, http.StatusNotFound, "NOT_FOUND"},
		{"unknown field", http.MethodPut, base + "/fields/fax", map[string]string{"value": "1"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing value", http.MethodPut, base + "/fields/name", map[string]string{}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown submit key", http.MethodPost, base + "/submit", map[string]string{"fax": "1"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"delete unknown", http.MethodDelete, "/v1/contact/sessions/missing", nil, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedType, decodeError(t, w).Type)
		})
	}
}
