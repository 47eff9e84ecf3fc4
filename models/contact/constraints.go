package contact

import (
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Constraint is a single pass/fail rule with its user-facing message. Check
// receives the trimmed, non-empty value.
type Constraint struct {
	Message string
	Check   func(value string) bool
}

// MinLength passes when value has at least n code points.
func MinLength(n int, message string) Constraint {
	return Constraint{
		Message: message,
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) >= n
		},
	}
}

// MaxLength passes when value has at most n code points.
func MaxLength(n int, message string) Constraint {
	return Constraint{
		Message: message,
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) <= n
		},
	}
}

var (
	emailValidateOnce sync.Once
	emailValidate     *validator.Validate
)

func emailValidator() *validator.Validate {
	emailValidateOnce.Do(func() {
		emailValidate = validator.New()
	})
	return emailValidate
}

// EmailShape passes for values accepted by the validator "email" rule, the
// same rule gin applies to `binding:"email"`.
func EmailShape(message string) Constraint {
	return Constraint{
		Message: message,
		Check: func(value string) bool {
			return emailValidator().Var(value, "required,email") == nil
		},
	}
}

// OneOf passes when value equals one of the option values.
func OneOf(options []Option, message string) Constraint {
	allowed := make(map[string]struct{}, len(options))
	for _, opt := range options {
		allowed[opt.Value] = struct{}{}
	}
	return Constraint{
		Message: message,
		Check: func(value string) bool {
			_, ok := allowed[value]
			return ok
		},
	}
}
