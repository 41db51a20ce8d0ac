package wizard

import (
	"errors"
	"fmt"
	"maps"
)

// ErrUnknownField is returned when a Form is updated with a key it was not
// created with.
var ErrUnknownField = errors.New("unknown form field")

// Form is the state a wizard accumulates. It holds a fixed set of keys,
// each value nil until a step sets it. Forms are never modified in place;
// With returns a changed copy.
type Form struct {
	keys   []string
	values map[string]any
}

// NewForm creates a form with the given fields, all unset.
func NewForm(fields ...string) Form {
	f := Form{
		keys:   make([]string, 0, len(fields)),
		values: make(map[string]any, len(fields)),
	}
	for _, k := range fields {
		if _, dup := f.values[k]; dup {
			continue
		}
		f.keys = append(f.keys, k)
		f.values[k] = nil
	}
	return f
}

// With returns a copy of the form with key set to value.
func (f Form) With(key string, value any) (Form, error) {
	if _, ok := f.values[key]; !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	next := Form{keys: f.keys, values: maps.Clone(f.values)}
	next.values[key] = value
	return next, nil
}

// Get returns the value of key, or nil.
func (f Form) Get(key string) any {
	return f.values[key]
}

// Has reports whether key is set to a non-nil value.
func (f Form) Has(key string) bool {
	return f.values[key] != nil
}

// String returns the value of key if it is a string.
func (f Form) String(key string) string {
	s, _ := f.values[key].(string)
	return s
}

// Keys returns the field names in construction order.
func (f Form) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Missing returns the given keys that are unset or set to an empty string.
func (f Form) Missing(keys ...string) []string {
	var missing []string
	for _, k := range keys {
		v := f.values[k]
		if v == nil {
			missing = append(missing, k)
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// Value returns the value of key as T.
func Value[T any](f Form, key string) (T, bool) {
	v, ok := f.values[key].(T)
	return v, ok
}
