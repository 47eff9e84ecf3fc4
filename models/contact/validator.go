package contact

import "strings"

// FieldError is the single message recorded for an invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult lists field errors in schema order. A field appears at
// most once; absence means the field is valid.
type ValidationResult struct {
	Issues []FieldError `json:"issues,omitempty"`
}

// Valid reports whether no field produced an error.
func (r ValidationResult) Valid() bool {
	return len(r.Issues) == 0
}

// Message returns the error recorded for field, if any.
func (r ValidationResult) Message(field string) (string, bool) {
	for _, issue := range r.Issues {
		if issue.Field == field {
			return issue.Message, true
		}
	}
	return "", false
}

// Errors returns the issues keyed by field.
func (r ValidationResult) Errors() map[string]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Field] = issue.Message
	}
	return out
}

// Validate checks values against the schema. For each field in order: a
// required field that is empty after trimming gets its required message; an
// optional empty field is skipped; otherwise constraints run in declared
// order and the first failure is recorded. Validate has no side effects.
func Validate(schema *FormSchema, values FormValues) ValidationResult {
	var result ValidationResult
	for _, field := range schema.fields {
		value := strings.TrimSpace(values[field.Key])
		if value == "" {
			if field.Required {
				result.Issues = append(result.Issues, FieldError{
					Field:   field.Key,
					Message: field.MissingMessage(),
				})
			}
			continue
		}
		for _, c := range field.Constraints {
			if !c.Check(value) {
				result.Issues = append(result.Issues, FieldError{
					Field:   field.Key,
					Message: c.Message,
				})
				break
			}
		}
	}
	return result
}
