package botschema

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
)

// OptionalValue is implemented by Optional and Nullable.
type OptionalValue interface {
	IsPresent() bool
	MarshalJSON() ([]byte, error)
}

// ObjectEncoder writes a JSON object whose members appear in call order.
// Generated payloads call Field for required members in descriptor order and
// then Optional for optional members in descriptor order, which keeps wire
// output reproducible.
type ObjectEncoder struct {
	buf bytes.Buffer
	n   int
	err error
}

// NewObjectEncoder returns an encoder positioned at an empty object.
func NewObjectEncoder() *ObjectEncoder {
	e := &ObjectEncoder{}
	e.buf.WriteByte('{')
	return e
}

// Field writes a member unconditionally.
func (e *ObjectEncoder) Field(wire string, v any) *ObjectEncoder {
	if e.err != nil {
		return e
	}
	raw, err := j.Marshal(v)
	if err != nil {
		e.err = fmt.Errorf("botschema: encode %q: %w", wire, err)
		return e
	}
	e.member(wire, raw)
	return e
}

// Optional writes a member only when v is present.
func (e *ObjectEncoder) Optional(wire string, v OptionalValue) *ObjectEncoder {
	if e.err != nil || !v.IsPresent() {
		return e
	}
	raw, err := v.MarshalJSON()
	if err != nil {
		e.err = fmt.Errorf("botschema: encode %q: %w", wire, err)
		return e
	}
	e.member(wire, raw)
	return e
}

func (e *ObjectEncoder) member(wire string, raw []byte) {
	if e.n > 0 {
		e.buf.WriteByte(',')
	}
	key, _ := j.Marshal(wire)
	e.buf.Write(key)
	e.buf.WriteByte(':')
	e.buf.Write(raw)
	e.n++
}

// Bytes closes the object and returns the encoded bytes or the first error.
func (e *ObjectEncoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([]byte, 0, e.buf.Len()+1)
	out = append(out, e.buf.Bytes()...)
	return append(out, '}'), nil
}
