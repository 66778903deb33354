package botschema

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// Optional holds a value that is either present or absent. The zero value is
// absent. Absent values are never serialized, not even as null.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool { return o.present }

// OrElse returns the value if present and def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// MarshalJSON encodes the held value. Encoders skip absent values before
// reaching this method; an absent value encodes as null only when embedded
// in a plain struct.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return j.Marshal(o.value)
}

// UnmarshalJSON makes o present with the decoded value. A null leaves o
// absent; response shapes report null for non-nullable members instead.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := j.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Nullable distinguishes three states: absent, explicitly null, and present
// with a value. Only fields whose descriptor opts into null semantics use it.
type Nullable[T any] struct {
	value T
	state nullState
}

type nullState uint8

const (
	nullAbsent nullState = iota
	nullNull
	nullValue
)

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] { return Nullable[T]{value: v, state: nullValue} }

// Null returns a Nullable that serializes as an explicit null.
func Null[T any]() Nullable[T] { return Nullable[T]{state: nullNull} }

// Get returns the value and whether a non-null value is present.
func (n Nullable[T]) Get() (T, bool) { return n.value, n.state == nullValue }

// IsPresent reports whether the field is emitted (as a value or as null).
func (n Nullable[T]) IsPresent() bool { return n.state != nullAbsent }

// IsNull reports whether the field is explicitly null.
func (n Nullable[T]) IsNull() bool { return n.state == nullNull }

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.state != nullValue {
		return []byte("null"), nil
	}
	return j.Marshal(n.value)
}

// UnmarshalJSON decodes a value or an explicit null. Members missing from the
// input leave n absent.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := j.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Value(v)
	return nil
}

func isNull(data []byte) bool { return string(bytes.TrimSpace(data)) == "null" }

// Into is the conversion policy of optional fields declared with `into`:
// setters accept any value that converts totally into T. Conversions must
// not fail; fallible inputs are validated by the caller before insertion.
type Into[T any] interface {
	Into() T
}
