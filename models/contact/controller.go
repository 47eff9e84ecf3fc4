package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrSubmissionInFlight is returned by Edit while an attempt is validating or
// submitting.
var ErrSubmissionInFlight = errors.New("submission in flight")

// Deliverer transmits validated values. It is called at most once per
// submission attempt and may block for as long as ctx allows.
type Deliverer interface {
	Deliver(ctx context.Context, values FormValues) error
}

// DeliverFunc adapts a function to Deliverer.
type DeliverFunc func(ctx context.Context, values FormValues) error

// Deliver calls f.
func (f DeliverFunc) Deliver(ctx context.Context, values FormValues) error {
	return f(ctx, values)
}

// Transition describes one state change. Errors is the validation result
// current after the change; it is empty on entering validating.
type Transition struct {
	From   SubmissionState
	To     SubmissionState
	Errors ValidationResult
}

// TransitionHook observes state changes. Hooks run while the controller is
// locked and must not call back into it.
type TransitionHook func(Transition)

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithTransitionHook registers a hook called on every state change.
func WithTransitionHook(hook TransitionHook) ControllerOption {
	return func(c *Controller) {
		if hook != nil {
			c.hooks = append(c.hooks, hook)
		}
	}
}

// WithLogger sets the logger used for delivery outcomes.
func WithLogger(log *zap.SugaredLogger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// Controller owns the values and lifecycle of one form instance. At most one
// delivery runs at a time; submits while busy are dropped, not queued.
type Controller struct {
	schema    *FormSchema
	deliverer Deliverer
	hooks     []TransitionHook
	log       *zap.SugaredLogger

	mu       sync.Mutex
	values   FormValues
	state    SubmissionState
	errors   ValidationResult
	inflight chan struct{}
	disposed bool
}

// NewController creates an idle controller with all-empty values.
func NewController(schema *FormSchema, deliverer Deliverer, opts ...ControllerOption) *Controller {
	c := &Controller{
		schema:    schema,
		deliverer: deliverer,
		log:       zap.NewNop().Sugar(),
		values:    schema.EmptyValues(),
		state:     Idle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schema returns the schema the controller validates against.
func (c *Controller) Schema() *FormSchema { return c.schema }

// Edit replaces the value of one field and discards any shown validation
// errors. A terminal state returns to idle first. Edits during an attempt are
// dropped with ErrSubmissionInFlight. After Dispose, Edit does nothing.
func (c *Controller) Edit(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil
	}
	if !c.schema.Has(key) {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if c.state.Busy() {
		return ErrSubmissionInFlight
	}
	c.leaveTerminalLocked()
	c.values[key] = value
	c.errors = ValidationResult{}
	return nil
}

// Submit starts an attempt with the current values. The returned channel is
// closed once the attempt resolves: immediately when validation fails, after
// delivery otherwise. A submit while busy is dropped and returns the channel
// of the attempt already in flight.
func (c *Controller) Submit(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitLocked(ctx)
}

// SubmitValues replaces all values at once and submits them. Unknown keys
// are rejected before anything changes. While busy the call is dropped like
// Submit and the values are left untouched.
func (c *Controller) SubmitValues(ctx context.Context, raw map[string]string) (<-chan struct{}, error) {
	values, err := c.schema.NewValues(raw)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.disposed && !c.state.Busy() {
		c.values = values
		c.errors = ValidationResult{}
	}
	return c.submitLocked(ctx), nil
}

func (c *Controller) submitLocked(ctx context.Context) <-chan struct{} {
	if c.disposed {
		return closedChan()
	}
	if c.state.Busy() {
		return c.inflight
	}
	c.leaveTerminalLocked()

	c.errors = ValidationResult{}
	c.transitionLocked(SubmissionState{Phase: PhaseValidating})
	c.errors = Validate(c.schema, c.values)
	if !c.errors.Valid() {
		c.transitionLocked(Idle())
		return closedChan()
	}

	done := make(chan struct{})
	c.inflight = done
	c.transitionLocked(SubmissionState{Phase: PhaseSubmitting})
	go c.deliver(ctx, c.values.Clone(), done)
	return done
}

func (c *Controller) deliver(ctx context.Context, values FormValues, done chan struct{}) {
	defer close(done)

	err := c.callDeliverer(ctx, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	if err != nil {
		reason := err.Error()
		if reason == "" {
			reason = "delivery failed"
		}
		c.log.Warnw("Contact delivery failed", "reason", reason)
		c.transitionLocked(Failed(reason))
		return
	}
	c.values = c.schema.EmptyValues()
	c.errors = ValidationResult{}
	c.transitionLocked(SubmissionState{Phase: PhaseSuccess})
}

func (c *Controller) callDeliverer(ctx context.Context, values FormValues) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("Contact deliverer panicked", "panic", r)
			err = fmt.Errorf("delivery panicked: %v", r)
		}
	}()
	return c.deliverer.Deliver(ctx, values)
}

// Acknowledge returns a terminal state to idle once its feedback was shown.
func (c *Controller) Acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.leaveTerminalLocked()
}

// Dispose tears the controller down. A pending delivery result is dropped
// and every later call is a no-op.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.values = c.schema.EmptyValues()
	c.errors = ValidationResult{}
}

// Disposed reports whether Dispose was called.
func (c *Controller) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// State returns the current state.
func (c *Controller) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Errors returns the validation result of the latest submit, or an empty
// result once the form was edited since.
func (c *Controller) Errors() ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ValidationResult{Issues: append([]FieldError(nil), c.errors.Issues...)}
}

// Values returns a copy of the current values.
func (c *Controller) Values() FormValues {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

func (c *Controller) leaveTerminalLocked() {
	switch c.state.Phase {
	case PhaseSuccess, PhaseFailed:
		c.transitionLocked(Idle())
	}
}

func (c *Controller) transitionLocked(to SubmissionState) {
	from := c.state
	c.state = to
	for _, hook := range c.hooks {
		hook(Transition{From: from, To: to, Errors: c.errors})
	}
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
