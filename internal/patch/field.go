// Package patch provides a three-state JSON field wrapper for partial
// updates. A field in a patch body is either absent (keep the current
// value), explicitly null (clear the value), or present with a value
// (replace). Plain pointers cannot represent the first distinction, so
// every patchable request field uses Field uniformly.
package patch

import "encoding/json"

// Field is a three-state wrapper for a patchable JSON field.
//
// Set reports whether the field appeared in the request body at all;
// Null reports whether it was an explicit JSON null. Value is only
// meaningful when Set && !Null.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// field is present in the body, which is what makes absence observable:
// an untouched Field has Set == false.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON implements json.Marshaler, round-tripping null and value
// states. Absent fields should be omitted by the caller.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// ValueOf returns a Field in the "present with value" state.
func ValueOf[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a Field in the "explicitly cleared" state.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}
