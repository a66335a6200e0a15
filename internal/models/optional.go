package models

import (
	"encoding/json"
)

// Optional is a field of a partial update. It distinguishes a key that was
// absent from the request (not set) from one that was sent as null (set,
// no value) and one that carries a value.
type Optional[T any] struct {
	set   bool
	value *T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: &v}
}

// Null returns a set Optional holding no value, i.e. an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true}
}

// IsSet reports whether the field was present in the request.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present and explicitly null.
func (o Optional[T]) IsNull() bool { return o.set && o.value == nil }

// Get returns the value, or nil when unset or null.
func (o Optional[T]) Get() *T { return o.value }

// Any returns the value boxed for use as a query argument; nil stands for NULL.
func (o Optional[T]) Any() any {
	if o.value == nil {
		return nil
	}
	return *o.value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.value)
}

// validationValue feeds the validator: unset and null yield nil, which
// "omitempty" rules skip.
func (o Optional[T]) validationValue() any {
	if o.value == nil {
		return nil
	}
	return *o.value
}

// Assignment is one "column = value" pair of an UPDATE statement.
type Assignment struct {
	Column string
	Value  any
}

// assign appends the column when the optional was set.
func assign[T any](dst []Assignment, column string, o Optional[T]) []Assignment {
	if !o.set {
		return dst
	}
	return append(dst, Assignment{Column: column, Value: o.Any()})
}
