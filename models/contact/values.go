package contact

import (
	"fmt"
	"maps"
	"sort"
)

// FormValues maps field keys to raw input. Values built through a schema
// carry every declared key; unfilled fields hold "".
type FormValues map[string]string

// Get returns the raw value for key.
func (v FormValues) Get(key string) string {
	return v[key]
}

// Clone returns an independent copy.
func (v FormValues) Clone() FormValues {
	if v == nil {
		return nil
	}
	return maps.Clone(v)
}

// NewValues builds FormValues for the schema. Keys not declared by the schema
// are rejected; declared keys missing from raw default to "".
func (s *FormSchema) NewValues(raw map[string]string) (FormValues, error) {
	var unknown []string
	for key := range raw {
		if !s.Has(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %v", ErrUnknownField, unknown)
	}

	values := s.EmptyValues()
	for key, value := range raw {
		values[key] = value
	}
	return values, nil
}

// EmptyValues returns the all-empty value set for the schema.
func (s *FormSchema) EmptyValues() FormValues {
	values := make(FormValues, len(s.fields))
	for _, f := range s.fields {
		values[f.Key] = ""
	}
	return values
}
