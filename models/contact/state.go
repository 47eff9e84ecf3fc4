package contact

// Phase is the lifecycle position of a submission.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseFailed     Phase = "failed"
)

// SubmissionState is the controller's current state. Reason is only set in
// PhaseFailed and carries the delivery failure as reported by the deliverer.
type SubmissionState struct {
	Phase  Phase  `json:"phase"`
	Reason string `json:"reason,omitempty"`
}

// Idle is the initial state.
func Idle() SubmissionState { return SubmissionState{Phase: PhaseIdle} }

// Failed builds the failure state for reason.
func Failed(reason string) SubmissionState {
	return SubmissionState{Phase: PhaseFailed, Reason: reason}
}

// Busy reports whether a submission attempt is running.
func (s SubmissionState) Busy() bool {
	return s.Phase == PhaseValidating || s.Phase == PhaseSubmitting
}

func (s SubmissionState) String() string {
	if s.Phase == PhaseFailed && s.Reason != "" {
		return string(s.Phase) + "(" + s.Reason + ")"
	}
	return string(s.Phase)
}

// Notice is the user-facing feedback for terminal states.
func (s SubmissionState) Notice() string {
	switch s.Phase {
	case PhaseSuccess:
		return "Your message has been sent successfully!"
	case PhaseFailed:
		return "An error occurred. Please try again."
	default:
		return ""
	}
}

// ButtonLabel is the submit button text for the state.
func (s SubmissionState) ButtonLabel() string {
	if s.Busy() {
		return "Sending..."
	}
	return "Send Message"
}
