// Package contact holds the contact form core: the declarative field schema,
// the validator and the submission controller. It has no HTTP, storage or
// rendering dependencies; presentation layers read controller state and call
// Edit/Submit.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// FieldKind tells presentation layers which input to render for a field.
type FieldKind string

const (
	KindText       FieldKind = "text"
	KindEmail      FieldKind = "email"
	KindPhone      FieldKind = "phone"
	KindEnumSelect FieldKind = "select"
	KindLongText   FieldKind = "textarea"
)

// IsValid reports whether k is one of the declared kinds.
func (k FieldKind) IsValid() bool {
	switch k {
	case KindText, KindEmail, KindPhone, KindEnumSelect, KindLongText:
		return true
	default:
		return false
	}
}

var (
	// ErrInvalidSchema is wrapped by every schema construction failure.
	ErrInvalidSchema = errors.New("invalid form schema")
	// ErrUnknownField is returned when a value targets an undeclared key.
	ErrUnknownField = errors.New("unknown form field")
)

// Option is one allowed value of an EnumSelect field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldDefinition describes one input of the form.
type FieldDefinition struct {
	Key             string
	Label           string
	Kind            FieldKind
	Required        bool
	RequiredMessage string
	Placeholder     string
	Options         []Option
	// InvalidOptionMessage is used by the membership constraint appended for
	// EnumSelect fields.
	InvalidOptionMessage string
	Constraints          []Constraint
}

// MissingMessage returns the message recorded when a required field is empty.
func (f FieldDefinition) MissingMessage() string {
	if msg := strings.TrimSpace(f.RequiredMessage); msg != "" {
		return msg
	}
	label := f.Label
	if label == "" {
		label = f.Key
	}
	return label + " is required"
}

// OptionLabel returns the display label for an EnumSelect value, or the value
// itself when no option matches.
func (f FieldDefinition) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// FormSchema is an ordered, immutable set of field definitions.
type FormSchema struct {
	fields []FieldDefinition
	index  map[string]int
}

// NewFormSchema validates the definitions and builds a schema. An empty
// schema, a blank or duplicate key, an unknown kind or an EnumSelect field
// without options are programming errors and abort construction.
func NewFormSchema(fields ...FieldDefinition) (*FormSchema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields declared", ErrInvalidSchema)
	}

	schema := &FormSchema{
		fields: make([]FieldDefinition, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			return nil, fmt.Errorf("%w: field %d has an empty key", ErrInvalidSchema, i)
		}
		if key != field.Key {
			return nil, fmt.Errorf("%w: field key %q has surrounding whitespace", ErrInvalidSchema, field.Key)
		}
		if _, dup := schema.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate field key %q", ErrInvalidSchema, key)
		}
		if !field.Kind.IsValid() {
			return nil, fmt.Errorf("%w: field %q has unknown kind %q", ErrInvalidSchema, key, field.Kind)
		}

		constraints := make([]Constraint, 0, len(field.Constraints)+1)
		for _, c := range field.Constraints {
			if c.Check == nil {
				return nil, fmt.Errorf("%w: field %q has a constraint without a check", ErrInvalidSchema, key)
			}
			constraints = append(constraints, c)
		}

		if field.Kind == KindEnumSelect {
			if len(field.Options) == 0 {
				return nil, fmt.Errorf("%w: select field %q declares no options", ErrInvalidSchema, key)
			}
			msg := field.InvalidOptionMessage
			if msg == "" {
				msg = "Please select a valid " + strings.ToLower(field.Label)
			}
			constraints = append(constraints, OneOf(field.Options, msg))
		}

		field.Options = append([]Option(nil), field.Options...)
		field.Constraints = constraints
		schema.index[key] = len(schema.fields)
		schema.fields = append(schema.fields, field)
	}
	return schema, nil
}

// MustFormSchema is like NewFormSchema but panics on a malformed schema.
// It is meant for schemas declared once at package or program start.
func MustFormSchema(fields ...FieldDefinition) *FormSchema {
	schema, err := NewFormSchema(fields...)
	if err != nil {
		panic(err)
	}
	return schema
}

// Fields returns the definitions in declaration order.
func (s *FormSchema) Fields() []FieldDefinition {
	out := make([]FieldDefinition, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a definition by key.
func (s *FormSchema) Field(key string) (FieldDefinition, bool) {
	i, ok := s.index[key]
	if !ok {
		return FieldDefinition{}, false
	}
	return s.fields[i], true
}

// Has reports whether key is declared.
func (s *FormSchema) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Keys returns the declared keys in order.
func (s *FormSchema) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key
	}
	return keys
}
