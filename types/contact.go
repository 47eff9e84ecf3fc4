package types

import (
	"time"

	"github.com/lumbunggroup/lumbung-backend/models/contact"
)

// ContactOption is one choice of a select field.
type ContactOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ContactField describes one form field for rendering.
type ContactField struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Kind        string          `json:"kind"`
	Required    bool            `json:"required"`
	Placeholder string          `json:"placeholder,omitempty"`
	Options     []ContactOption `json:"options,omitempty"`
}

// ContactSchemaResponse is returned by GET /v1/contact/schema.
type ContactSchemaResponse struct {
	Fields      []ContactField `json:"fields"`
	SubmitLabel string         `json:"submit_label"`
	BusyLabel   string         `json:"busy_label"`
}

// ContactSubmission is the body of POST /v1/contact and of the session
// submit endpoint. Missing keys are treated as empty.
type ContactSubmission map[string]string

// ContactFieldEdit is the body of PUT /v1/contact/sessions/:id/fields/:key.
type ContactFieldEdit struct {
	Value *string `json:"value" binding:"required"`
}

// ContactSessionResponse is the observable state of a form session.
type ContactSessionResponse struct {
	ID          string            `json:"id"`
	State       string            `json:"state"`
	Reason      string            `json:"reason,omitempty"`
	Notice      string            `json:"notice,omitempty"`
	ButtonLabel string            `json:"button_label"`
	Busy        bool              `json:"busy"`
	Errors      map[string]string `json:"errors,omitempty"`
	Values      map[string]string `json:"values"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

// NewContactSchemaResponse renders schema for the front end.
func NewContactSchemaResponse(schema *contact.FormSchema) ContactSchemaResponse {
	fields := schema.Fields()
	resp := ContactSchemaResponse{
		Fields:      make([]ContactField, 0, len(fields)),
		SubmitLabel: contact.Idle().ButtonLabel(),
		BusyLabel:   contact.SubmissionState{Phase: contact.PhaseSubmitting}.ButtonLabel(),
	}
	for _, f := range fields {
		field := ContactField{
			Key:         f.Key,
			Label:       f.Label,
			Kind:        string(f.Kind),
			Required:    f.Required,
			Placeholder: f.Placeholder,
		}
		for _, opt := range f.Options {
			field.Options = append(field.Options, ContactOption{Value: opt.Value, Label: opt.Label})
		}
		resp.Fields = append(resp.Fields, field)
	}
	return resp
}

// NewContactSessionResponse builds the session view from controller
// snapshots.
func NewContactSessionResponse(id string, state contact.SubmissionState, result contact.ValidationResult, values contact.FormValues) ContactSessionResponse {
	return ContactSessionResponse{
		ID:          id,
		State:       string(state.Phase),
		Reason:      state.Reason,
		Notice:      state.Notice(),
		ButtonLabel: state.ButtonLabel(),
		Busy:        state.Busy(),
		Errors:      result.Errors(),
		Values:      values,
	}
}
