package services

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/lumbunggroup/lumbung-backend/errors"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/lumbunggroup/lumbung-backend/types"
	"go.uber.org/zap"
)

// ContactSessionConfig bounds the session registry.
type ContactSessionConfig struct {
	TTL             time.Duration
	SweepInterval   time.Duration
	MaxSessions     int
	DeliveryTimeout time.Duration
}

type contactSession struct {
	id         string
	controller *contact.Controller
	lastSeen   time.Time
}

// ContactSessionService keeps one form controller per browser session so a
// form can be edited, submitted and polled across requests. Sessions idle
// longer than the TTL are disposed by Sweep.
type ContactSessionService struct {
	schema    *contact.FormSchema
	deliverer contact.Deliverer
	cfg       ContactSessionConfig
	metrics   *ContactMetrics
	log       *zap.SugaredLogger
	now       func() time.Time

	// base outlives individual requests; deliveries started from a session
	// run under it so Close can abort them.
	base   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*contactSession
	closed   bool
}

// NewContactSessionService creates an empty registry. metrics may be nil.
func NewContactSessionService(schema *contact.FormSchema, deliverer contact.Deliverer, cfg ContactSessionConfig, metrics *ContactMetrics) *ContactSessionService {
	base, cancel := context.WithCancel(context.Background())
	return &ContactSessionService{
		schema:    schema,
		deliverer: deliverer,
		cfg:       cfg,
		metrics:   metrics,
		log:       logger.GetLogger(),
		now:       time.Now,
		base:      base,
		cancel:    cancel,
		sessions:  make(map[string]*contactSession),
	}
}

// Create opens a new session and returns its initial view.
func (s *ContactSessionService) Create() (types.ContactSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ContactSessionResponse{}, apperrors.ServiceUnavailable("Contact sessions are shutting down")
	}
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.log.Warnw("Contact session limit reached", "max_sessions", s.cfg.MaxSessions)
		return types.ContactSessionResponse{}, apperrors.ServiceUnavailable("Too many open contact forms, please try again later")
	}

	opts := []contact.ControllerOption{contact.WithLogger(s.log)}
	if s.metrics != nil {
		opts = append(opts, contact.WithTransitionHook(s.metrics.Hook()))
	}

	sess := &contactSession{
		id:         uuid.NewString(),
		controller: contact.NewController(s.schema, s.deliverer, opts...),
		lastSeen:   s.now(),
	}
	s.sessions[sess.id] = sess
	s.reportCountLocked()

	s.log.Debugw("Contact session created", "session_id", sess.id)
	return s.viewLocked(sess), nil
}

// Get returns the current view of a session.
func (s *ContactSessionService) Get(id string) (types.ContactSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.touchLocked(id)
	if err != nil {
		return types.ContactSessionResponse{}, err
	}
	return s.viewLocked(sess), nil
}

// Edit replaces one field value.
func (s *ContactSessionService) Edit(id, key, value string) (types.ContactSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.touchLocked(id)
	if err != nil {
		return types.ContactSessionResponse{}, err
	}
	if err := sess.controller.Edit(key, value); err != nil {
		return types.ContactSessionResponse{}, translateControllerError(err)
	}
	return s.viewLocked(sess), nil
}

// Submit starts an attempt. When values is non-nil it replaces the session
// values first. The call returns without waiting for delivery; callers poll
// Get for the outcome.
func (s *ContactSessionService) Submit(id string, values map[string]string) (types.ContactSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.touchLocked(id)
	if err != nil {
		return types.ContactSessionResponse{}, err
	}

	ctx, cancel := s.deliveryContext()
	var done <-chan struct{}
	if values != nil {
		done, err = sess.controller.SubmitValues(ctx, values)
		if err != nil {
			cancel()
			return types.ContactSessionResponse{}, translateControllerError(err)
		}
	} else {
		done = sess.controller.Submit(ctx)
	}
	go func() {
		<-done
		cancel()
	}()

	return s.viewLocked(sess), nil
}

// Acknowledge returns a finished session to idle.
func (s *ContactSessionService) Acknowledge(id string) (types.ContactSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.touchLocked(id)
	if err != nil {
		return types.ContactSessionResponse{}, err
	}
	sess.controller.Acknowledge()
	return s.viewLocked(sess), nil
}

// Delete disposes a session. Unknown ids are reported as not found.
func (s *ContactSessionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return apperrors.NotFound("Contact session", id)
	}
	s.removeLocked(sess)
	return nil
}

// Count returns the number of open sessions.
func (s *ContactSessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// MaxSessions returns the configured cap, zero when unbounded.
func (s *ContactSessionService) MaxSessions() int {
	return s.cfg.MaxSessions
}

// Sweep disposes every session idle longer than the TTL and returns how many
// were removed. A delivery still running in an expired session is abandoned.
func (s *ContactSessionService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.TTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.cfg.TTL)
	removed := 0
	for _, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			s.removeLocked(sess)
			removed++
		}
	}
	if removed > 0 {
		s.log.Infow("Expired contact sessions", "count", removed, "remaining", len(s.sessions))
	}
	return removed
}

// Run sweeps on the configured interval until ctx is done, then closes the
// service.
func (s *ContactSessionService) Run(ctx context.Context) {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close disposes every session and aborts running deliveries. Later Create
// calls fail with 503.
func (s *ContactSessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, sess := range s.sessions {
		s.removeLocked(sess)
	}
	s.cancel()
}

func (s *ContactSessionService) touchLocked(id string) (*contactSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NotFound("Contact session", id)
	}
	sess.lastSeen = s.now()
	return sess, nil
}

func (s *ContactSessionService) removeLocked(sess *contactSession) {
	sess.controller.Dispose()
	delete(s.sessions, sess.id)
	s.reportCountLocked()
}

func (s *ContactSessionService) reportCountLocked() {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(len(s.sessions))
	}
}

func (s *ContactSessionService) deliveryContext() (context.Context, context.CancelFunc) {
	if s.cfg.DeliveryTimeout > 0 {
		return context.WithTimeout(s.base, s.cfg.DeliveryTimeout)
	}
	return context.WithCancel(s.base)
}

func (s *ContactSessionService) viewLocked(sess *contactSession) types.ContactSessionResponse {
	view := types.NewContactSessionResponse(sess.id, sess.controller.State(), sess.controller.Errors(), sess.controller.Values())
	if s.cfg.TTL > 0 {
		view.ExpiresAt = sess.lastSeen.Add(s.cfg.TTL).UTC()
	}
	return view
}

func translateControllerError(err error) error {
	switch {
	case stderrors.Is(err, contact.ErrUnknownField):
		return apperrors.ValidationFailed("Unknown form field", err.Error())
	case stderrors.Is(err, contact.ErrSubmissionInFlight):
		return apperrors.NewConflictError("Message is being sent", "wait for the current submission to finish")
	default:
		return apperrors.Wrap(err, apperrors.ServerError, "Contact form error")
	}
}
