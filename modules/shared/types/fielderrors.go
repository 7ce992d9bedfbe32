// Package types provides shared value objects and type definitions
// used across multiple modules (Shared Kernel pattern).
package types

// FieldErrors accumulates validation messages keyed by field name.
// Validation rules and the patch interpreter report violations into
// the same accumulator, so a single unprocessable-entity response can
// carry everything that went wrong.
type FieldErrors map[string][]string

// NewFieldErrors returns an empty, ready-to-use accumulator.
func NewFieldErrors() FieldErrors {
	return FieldErrors{}
}

// Add appends a message to the named field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Merge copies all messages from other into f.
func (f FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		f[field] = append(f[field], messages...)
	}
}

// Empty reports whether no violations were recorded.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}
