package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/lumbunggroup/lumbung-backend/errors"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// blockingDeliverer holds every delivery until release is closed.
type blockingDeliverer struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func newBlockingDeliverer() *blockingDeliverer {
	return &blockingDeliverer{release: make(chan struct{})}
}

func (d *blockingDeliverer) Deliver(ctx context.Context, values contact.FormValues) error {
	d.calls.Add(1)
	select {
	case <-d.release:
		return d.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newTestSessionService(deliverer contact.Deliverer, cfg ContactSessionConfig) (*ContactSessionService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)}
	service := NewContactSessionService(contact.ContactSchema(), deliverer, cfg, NewContactMetricsWithRegistry(prometheus.NewRegistry()))
	service.now = clock.Now
	return service, clock
}

func requireAppError(t *testing.T, err error, status int) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, status, appErr.HTTPStatus)
	return appErr
}

func TestContactSessionService_Lifecycle(t *testing.T) {
	deliverer := newBlockingDeliverer()
	service, _ := newTestSessionService(deliverer, ContactSessionConfig{TTL: 30 * time.Minute})
	defer service.Close()

	created, err := service.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "idle", created.State)
	assert.Equal(t, "Send Message", created.ButtonLabel)
	assert.Equal(t, time.Date(2025, 1, 6, 9, 30, 0, 0, time.UTC), created.ExpiresAt)

	for key, value := range validContactValues() {
		_, err := service.Edit(created.ID, key, value)
		require.NoError(t, err)
	}

	submitted, err := service.Submit(created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "submitting", submitted.State)
	assert.True(t, submitted.Busy)
	assert.Equal(t, "Sending...", submitted.ButtonLabel)

	_, err = service.Edit(created.ID, contact.FieldName, "Other")
	requireAppError(t, err, http.StatusConflict)

	close(deliverer.release)
	require.Eventually(t, func() bool {
		view, err := service.Get(created.ID)
		return err == nil && view.State == "success"
	}, 2*time.Second, 5*time.Millisecond)

	view, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Your message has been sent successfully!", view.Notice)
	assert.Empty(t, view.Values[contact.FieldName])

	acked, err := service.Acknowledge(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "idle", acked.State)
	assert.Equal(t, int32(1), deliverer.calls.Load())
}

func TestContactSessionService_SubmitWithValues(t *testing.T) {
	service, _ := newTestSessionService(contact.DeliverFunc(func(ctx context.Context, values contact.FormValues) error {
		return nil
	}), ContactSessionConfig{})
	defer service.Close()

	created, err := service.Create()
	require.NoError(t, err)

	invalid, err := service.Submit(created.ID, map[string]string{"name": "A"})
	require.NoError(t, err)
	assert.Equal(t, "idle", invalid.State)
	assert.Equal(t, "Name must be at least 2 characters", invalid.Errors["name"])
	assert.Equal(t, "Email is required", invalid.Errors["email"])
	assert.Equal(t, "A", invalid.Values["name"])

	_, err = service.Submit(created.ID, map[string]string{"fax": "123"})
	requireAppError(t, err, http.StatusBadRequest)

	_, err = service.Submit(created.ID, validContactValues())
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		view, _ := service.Get(created.ID)
		return view.State == "success"
	}, 2*time.Second, 5*time.Millisecond)
}

func TestContactSessionService_FailurePreservesValues(t *testing.T) {
	deliverer := newBlockingDeliverer()
	deliverer.err = assert.AnError
	close(deliverer.release)
	service, _ := newTestSessionService(deliverer, ContactSessionConfig{})
	defer service.Close()

	created, err := service.Create()
	require.NoError(t, err)
	_, err = service.Submit(created.ID, validContactValues())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		view, _ := service.Get(created.ID)
		return view.State == "failed"
	}, 2*time.Second, 5*time.Millisecond)

	view, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, assert.AnError.Error(), view.Reason)
	assert.Equal(t, "An error occurred. Please try again.", view.Notice)
	assert.Equal(t, "Budi Santoso", view.Values[contact.FieldName])
}

func TestContactSessionService_DeliveryTimeout(t *testing.T) {
	deliverer := newBlockingDeliverer()
	service, _ := newTestSessionService(deliverer, ContactSessionConfig{DeliveryTimeout: 20 * time.Millisecond})
	defer service.Close()

	created, err := service.Create()
	require.NoError(t, err)
	_, err = service.Submit(created.ID, validContactValues())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		view, _ := service.Get(created.ID)
		return view.State == "failed"
	}, 2*time.Second, 5*time.Millisecond)

	view, _ := service.Get(created.ID)
	assert.Equal(t, context.DeadlineExceeded.Error(), view.Reason)
}

func TestContactSessionService_NotFound(t *testing.T) {
	service, _ := newTestSessionService(newBlockingDeliverer(), ContactSessionConfig{})
	defer service.Close()

	_, err := service.Get("missing")
	requireAppError(t, err, http.StatusNotFound)
	_, err = service.Edit("missing", "name", "x")
	requireAppError(t, err, http.StatusNotFound)
	_, err = service.Submit("missing", nil)
	requireAppError(t, err, http.StatusNotFound)
	_, err = service.Acknowledge("missing")
	requireAppError(t, err, http.StatusNotFound)
	requireAppError(t, service.Delete("missing"), http.StatusNotFound)
}

func TestContactSessionService_UnknownField(t *testing.T) {
	service, _ := newTestSessionService(newBlockingDeliverer(), ContactSessionConfig{})
	defer service.Close()

	created, err := service.Create()
	require.NoError(t, err)

	_, err = service.Edit(created.ID, "fax", "123")
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestContactSessionService_MaxSessions(t *testing.T) {
	service, _ := newTestSessionService(newBlockingDeliverer(), ContactSessionConfig{MaxSessions: 2})
	defer service.Close()

	first, err := service.Create()
	require.NoError(t, err)
	_, err = service.Create()
	require.NoError(t, err)

	_, err = service.Create()
	requireAppError(t, err, http.StatusServiceUnavailable)

	require.NoError(t, service.Delete(first.ID))
	_, err = service.Create()
	assert.NoError(t, err)
	assert.Equal(t, 2, service.Count())
	assert.Equal(t, 2.0, gaugeValue(t, service.metrics.activeSessions))
}

func TestContactSessionService_Sweep(t *testing.T) {
	deliverer := newBlockingDeliverer()
	service, clock := newTestSessionService(deliverer, ContactSessionConfig{TTL: 10 * time.Minute})
	defer service.Close()

	stale, err := service.Create()
	require.NoError(t, err)
	_, err = service.Submit(stale.ID, validContactValues())
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	fresh, err := service.Create()
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 1, service.Sweep())
	assert.Equal(t, 1, service.Count())

	_, err = service.Get(stale.ID)
	requireAppError(t, err, http.StatusNotFound)
	_, err = service.Get(fresh.ID)
	assert.NoError(t, err)

	// The abandoned delivery resolves without reviving the session.
	close(deliverer.release)
	assert.Equal(t, 1, service.Count())
}

func TestContactSessionService_SweepDisabledWithoutTTL(t *testing.T) {
	service, clock := newTestSessionService(newBlockingDeliverer(), ContactSessionConfig{})
	defer service.Close()

	_, err := service.Create()
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)

	assert.Zero(t, service.Sweep())
	assert.Equal(t, 1, service.Count())
}

func TestContactSessionService_RunClosesOnCancel(t *testing.T) {
	deliverer := newBlockingDeliverer()
	service, _ := newTestSessionService(deliverer, ContactSessionConfig{SweepInterval: time.Millisecond, TTL: time.Hour})

	created, err := service.Create()
	require.NoError(t, err)
	_, err = service.Submit(created.ID, validContactValues())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		service.Run(ctx)
		close(stopped)
	}()
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.Zero(t, service.Count())
	_, err = service.Create()
	requireAppError(t, err, http.StatusServiceUnavailable)
	require.Eventually(t, func() bool { return deliverer.calls.Load() == 1 }, time.Second, time.Millisecond)
}
