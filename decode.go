package botschema

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	j "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/reoring/botschema/i18n"
	js "github.com/reoring/botschema/jsonschema"
)

// regime is the absence policy of a response field.
type regime int

const (
	regimeRequired regime = iota // absence is a missing_field issue
	regimeLenient                // absence substitutes the sentinel
	regimeOptional               // absence leaves Optional absent
)

// FieldRule binds one wire member of a response object to a field of T.
// Construct it with Required, Lenient or OptionalField.
type FieldRule[T any] struct {
	wire     string
	regime   regime
	kind     string
	sentinel any
	decode   func(raw gjson.Result, dst *T, at PathRef) Issues
	absent   func(dst *T)
}

// Required declares a strictly required member: absence fails with
// missing_field.
func Required[T, F any](wire string, field func(*T) *F) FieldRule[T] {
	return FieldRule[T]{
		wire:   wire,
		regime: regimeRequired,
		kind:   kindOf(reflect.TypeFor[F]()),
		decode: func(raw gjson.Result, dst *T, at PathRef) Issues {
			return decodeValue(raw, field(dst), at)
		},
	}
}

// Lenient declares a member the live API may omit although its schema marks
// it mandatory. Absence substitutes sentinel instead of failing; a present
// value of the wrong kind still fails. The sentinel is exported as the JSON
// Schema default and must be documented on the field.
func Lenient[T, F any](wire string, field func(*T) *F, sentinel F) FieldRule[T] {
	return FieldRule[T]{
		wire:     wire,
		regime:   regimeLenient,
		kind:     kindOf(reflect.TypeFor[F]()),
		sentinel: sentinel,
		decode: func(raw gjson.Result, dst *T, at PathRef) Issues {
			return decodeValue(raw, field(dst), at)
		},
		absent: func(dst *T) { *field(dst) = sentinel },
	}
}

// OptionalField declares a member that is optional on the wire.
func OptionalField[T, F any](wire string, field func(*T) *Optional[F]) FieldRule[T] {
	return FieldRule[T]{
		wire:   wire,
		regime: regimeOptional,
		kind:   kindOf(reflect.TypeFor[F]()),
		decode: func(raw gjson.Result, dst *T, at PathRef) Issues {
			var v F
			if iss := decodeValue(raw, &v, at); len(iss) > 0 {
				return iss
			}
			*field(dst) = Some(v)
			return nil
		},
		absent: func(dst *T) { *field(dst) = None[F]() },
	}
}

type objectBuilder[T any] struct {
	name    string
	rules   []FieldRule[T]
	unknown UnknownPolicy
}

// ObjectOf starts a response shape for T with safe defaults (UnknownStrip).
func ObjectOf[T any](rules ...FieldRule[T]) *objectBuilder[T] {
	return &objectBuilder[T]{
		name:    reflect.TypeFor[T]().Name(),
		rules:   append([]FieldRule[T](nil), rules...),
		unknown: UnknownStrip,
	}
}

// UnknownStrict reports unknown keys as unknown_key issues.
func (b *objectBuilder[T]) UnknownStrict() *objectBuilder[T] {
	b.unknown = UnknownStrict
	return b
}

// UnknownStrip drops unknown keys.
func (b *objectBuilder[T]) UnknownStrip() *objectBuilder[T] {
	b.unknown = UnknownStrip
	return b
}

// Build validates the rules and returns a Shape.
func (b *objectBuilder[T]) Build() (*Shape[T], error) {
	index := make(map[string]int, len(b.rules))
	var iss Issues
	for i, r := range b.rules {
		p := Root().Field(r.wire)
		if r.wire == "" || r.decode == nil {
			iss = append(iss, Root().Index(i).Issue(CodeInvalidDescriptor, i18n.T(CodeInvalidDescriptor, nil)))
			continue
		}
		if _, dup := index[r.wire]; dup {
			iss = append(iss, p.Issue(CodeDuplicateField, i18n.T(CodeDuplicateField, map[string]string{"key": r.wire})))
			continue
		}
		index[r.wire] = i
	}
	if len(iss) > 0 {
		return nil, &SchemaError{Name: b.name, Issues: iss}
	}
	return &Shape[T]{name: b.name, rules: b.rules, index: index, unknown: b.unknown}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder[T]) MustBuild() *Shape[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Shape decodes JSON objects into T applying each field's absence regime.
// A Shape is immutable after Build and safe for concurrent use.
type Shape[T any] struct {
	name    string
	rules   []FieldRule[T]
	index   map[string]int
	unknown UnknownPolicy
}

// Decode decodes data into a new T.
func (s *Shape[T]) Decode(data []byte) (T, error) {
	var out T
	if err := s.DecodeInto(data, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeInto decodes data into dst. dst is left untouched on failure.
func (s *Shape[T]) DecodeInto(data []byte, dst *T) error {
	raw, iss := parseDocument(data)
	if len(iss) > 0 {
		return iss
	}
	if iss := s.decode(raw, dst, Root(), nil); len(iss) > 0 {
		return iss
	}
	return nil
}

// DecodeWithMeta decodes data and reports, per member pointer, whether the
// member was seen, null, or substituted by its sentinel.
func (s *Shape[T]) DecodeWithMeta(data []byte) (Decoded[T], error) {
	raw, iss := parseDocument(data)
	if len(iss) > 0 {
		return Decoded[T]{}, iss
	}
	dm := Decoded[T]{Presence: PresenceMap{"/": PresenceSeen}}
	if iss := s.decode(raw, &dm.Value, Root(), dm.Presence); len(iss) > 0 {
		return dm, iss
	}
	return dm, nil
}

func (s *Shape[T]) decode(raw gjson.Result, dst *T, at PathRef, pm PresenceMap) Issues {
	if !raw.IsObject() {
		return Issues{mismatchAt(at, KindObject, resultKind(raw))}
	}
	var (
		tmp     T
		iss     Issues
		unknown []string
		seen    = make([]bool, len(s.rules))
	)
	raw.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		i, ok := s.index[key]
		if !ok {
			if s.unknown == UnknownStrict {
				unknown = append(unknown, key)
			}
			return true
		}
		fp := at.Field(key)
		if seen[i] {
			iss = append(iss, fp.Issue(CodeDuplicateKey, i18n.T(CodeDuplicateKey, nil)))
			return true
		}
		seen[i] = true
		if pm != nil {
			pm[fp.Pointer()] |= PresenceSeen
			if v.Type == gjson.Null {
				pm[fp.Pointer()] |= PresenceWasNull
			}
		}
		iss = append(iss, s.rules[i].decode(v, &tmp, fp)...)
		return true
	})
	for i, r := range s.rules {
		if seen[i] {
			continue
		}
		fp := at.Field(r.wire)
		switch r.regime {
		case regimeRequired:
			iss = append(iss, fp.Issue(CodeMissingField, i18n.T(CodeMissingField, nil)))
		case regimeLenient:
			r.absent(&tmp)
			if pm != nil {
				pm[fp.Pointer()] |= PresenceDefaultApplied
			}
		case regimeOptional:
			r.absent(&tmp)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		iss = append(iss, at.Field(key).Issue(CodeUnknownKey, i18n.T(CodeUnknownKey, nil)))
	}
	if len(iss) > 0 {
		return iss
	}
	*dst = tmp
	return nil
}

// JSONSchema projects the shape. Strict members are listed as required and
// lenient members carry their sentinel as default.
func (s *Shape[T]) JSONSchema() *js.Schema {
	out := &js.Schema{Type: KindObject, Title: s.name, Properties: make(map[string]*js.Schema, len(s.rules))}
	if s.unknown == UnknownStrict {
		out.AdditionalProperties = false
	}
	for _, r := range s.rules {
		ps := &js.Schema{Type: r.kind}
		switch r.regime {
		case regimeRequired:
			out.Required = append(out.Required, r.wire)
		case regimeLenient:
			ps.Default = r.sentinel
			ps.Description = fmt.Sprintf("defaults to %v when absent", r.sentinel)
		}
		out.Properties[r.wire] = ps
	}
	return out
}

// DecodeResult decodes a method result into R. Types with their own
// UnmarshalJSON (shaped response types) are decoded through it; other types
// are checked for JSON kind before being unmarshaled.
func DecodeResult[R any](data []byte) (R, error) {
	var out R
	raw, iss := parseDocument(data)
	if len(iss) > 0 {
		return out, iss
	}
	if iss := decodeValue(raw, &out, Root()); len(iss) > 0 {
		var zero R
		return zero, iss
	}
	return out, nil
}

// NewTypeMismatch reports a root-level type_mismatch for data. Custom
// UnmarshalJSON implementations use it so the enclosing shape can rebase the
// issue under the member that holds the value.
func NewTypeMismatch(expected string, data []byte) Issues {
	return Issues{mismatchAt(Root(), expected, resultKind(gjson.ParseBytes(data)))}
}

type unmarshaler interface {
	UnmarshalJSON([]byte) error
}

var unmarshalerType = reflect.TypeFor[unmarshaler]()

func parseDocument(data []byte) (gjson.Result, Issues) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, Issues{Root().Issue(CodeParseError, i18n.T(CodeParseError, nil))}
	}
	return gjson.ParseBytes(data), nil
}

// member looks key up without interpreting gjson path syntax. A repeated key
// yields its first occurrence, as Shape.decode does.
func member(obj gjson.Result, key string) (gjson.Result, bool) {
	var (
		out   gjson.Result
		found bool
	)
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			out, found = v, true
		}
		return !found
	})
	return out, found
}

func decodeValue(raw gjson.Result, dst any, at PathRef) Issues {
	if u, ok := dst.(unmarshaler); ok {
		if err := u.UnmarshalJSON([]byte(raw.Raw)); err != nil {
			if iss, ok := AsIssues(err); ok {
				return at.rebase(iss)
			}
			it := at.Issue(CodeParseError, i18n.T(CodeParseError, nil))
			it.Cause = err
			return Issues{it}
		}
		return nil
	}

	rv := reflect.ValueOf(dst).Elem()
	if rv.Kind() == reflect.Pointer {
		nv := reflect.New(rv.Type().Elem())
		if iss := decodeValue(raw, nv.Interface(), at); len(iss) > 0 {
			return iss
		}
		rv.Set(nv)
		return nil
	}

	want, got := kindOf(rv.Type()), resultKind(raw)
	if !kindCompatible(want, got) {
		return Issues{mismatchAt(at, want, got)}
	}
	if rv.Kind() == reflect.Slice && got == KindArray {
		items := raw.Array()
		out := reflect.MakeSlice(rv.Type(), len(items), len(items))
		var iss Issues
		for i, it := range items {
			iss = append(iss, decodeValue(it, out.Index(i).Addr().Interface(), at.Index(i))...)
		}
		if len(iss) > 0 {
			return iss
		}
		rv.Set(out)
		return nil
	}
	if want == KindInteger {
		if err := setInteger(rv, raw.Raw); err != nil {
			it := mismatchAt(at, want, got)
			it.Cause = err
			return Issues{it}
		}
		return nil
	}
	if err := j.Unmarshal([]byte(raw.Raw), dst); err != nil {
		it := mismatchAt(at, want, got)
		it.Cause = err
		return Issues{it}
	}
	return nil
}

// setInteger parses a JSON number into an integer kind, rejecting fractions
// and values outside the type's range.
func setInteger(rv reflect.Value, num string) error {
	bits := rv.Type().Bits()
	if rv.CanUint() {
		u, err := strconv.ParseUint(num, 10, bits)
		if err != nil {
			return err
		}
		rv.SetUint(u)
		return nil
	}
	n, err := strconv.ParseInt(num, 10, bits)
	if err != nil {
		return err
	}
	rv.SetInt(n)
	return nil
}

func mismatchAt(at PathRef, expected, actual string) Issue {
	it := at.Issue(CodeTypeMismatch, i18n.T(CodeTypeMismatch, map[string]string{"expected": expected, "actual": actual}))
	it.Expected = expected
	it.Actual = actual
	return it
}

// kindOf returns the JSON kind a Go type decodes from, or "" when the type
// decides for itself.
func kindOf(t reflect.Type) string {
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return ""
	}
	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Struct, reflect.Map:
		return KindObject
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindString
		}
		return KindArray
	case reflect.Pointer:
		return kindOf(t.Elem())
	}
	return ""
}

func kindCompatible(want, got string) bool {
	switch {
	case want == "":
		return true
	case want == KindInteger && got == KindNumber:
		// setInteger rejects fractions and out-of-range values
		return true
	}
	return want == got
}

func resultKind(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return KindNull
	case gjson.False, gjson.True:
		return KindBoolean
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if r.IsArray() {
			return KindArray
		}
		return KindObject
	}
	return KindNull
}
