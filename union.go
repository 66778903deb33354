package botschema

import (
	"reflect"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/reoring/botschema/i18n"
	js "github.com/reoring/botschema/jsonschema"
)

type unionBuilder[T any] struct {
	name          string
	discriminator string
	variants      map[string]*Shape[T]
	dups          []string
}

// UnionOf starts a discriminated union over T. Each variant is a Shape that
// decodes the whole object, discriminator included.
func UnionOf[T any](discriminator string) *unionBuilder[T] {
	return &unionBuilder[T]{
		name:          reflect.TypeFor[T]().Name(),
		discriminator: discriminator,
		variants:      map[string]*Shape[T]{},
	}
}

// Variant registers the shape used when the discriminator equals tag.
func (b *unionBuilder[T]) Variant(tag string, s *Shape[T]) *unionBuilder[T] {
	if _, dup := b.variants[tag]; dup {
		b.dups = append(b.dups, tag)
	}
	b.variants[tag] = s
	return b
}

// Build validates the union and returns it.
func (b *unionBuilder[T]) Build() (*Union[T], error) {
	var iss Issues
	if b.discriminator == "" {
		iss = append(iss, Root().Issue(CodeInvalidDescriptor, i18n.T(CodeInvalidDescriptor, nil)))
	}
	if len(b.variants) == 0 {
		it := Root().Issue(CodeInvalidDescriptor, i18n.T(CodeInvalidDescriptor, nil))
		it.Hint = "no variants"
		iss = append(iss, it)
	}
	for _, tag := range b.dups {
		iss = append(iss, Root().Field(b.discriminator).Issue(CodeDuplicateField, i18n.T(CodeDuplicateField, map[string]string{"key": tag})))
	}
	for tag, s := range b.variants {
		if s == nil {
			it := Root().Field(b.discriminator).Issue(CodeInvalidDescriptor, i18n.T(CodeInvalidDescriptor, nil))
			it.Hint = "nil shape for variant " + tag
			iss = append(iss, it)
		}
	}
	if len(iss) > 0 {
		return nil, &SchemaError{Name: b.name, Issues: iss}
	}
	tags := make([]string, 0, len(b.variants))
	for tag := range b.variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return &Union[T]{name: b.name, discriminator: b.discriminator, variants: b.variants, tags: tags}, nil
}

// MustBuild is like Build but panics on error.
func (b *unionBuilder[T]) MustBuild() *Union[T] {
	u, err := b.Build()
	if err != nil {
		panic(err)
	}
	return u
}

// Union decodes a discriminated union of object shapes into T.
type Union[T any] struct {
	name          string
	discriminator string
	variants      map[string]*Shape[T]
	tags          []string
}

// Decode decodes data into a new T.
func (u *Union[T]) Decode(data []byte) (T, error) {
	var out T
	if err := u.DecodeInto(data, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeInto decodes data into dst. dst is left untouched on failure.
func (u *Union[T]) DecodeInto(data []byte, dst *T) error {
	raw, iss := parseDocument(data)
	if len(iss) > 0 {
		return iss
	}
	s, iss := u.pick(raw)
	if len(iss) > 0 {
		return iss
	}
	if iss := s.decode(raw, dst, Root(), nil); len(iss) > 0 {
		return iss
	}
	return nil
}

func (u *Union[T]) pick(raw gjson.Result) (*Shape[T], Issues) {
	if !raw.IsObject() {
		return nil, Issues{mismatchAt(Root(), KindObject, resultKind(raw))}
	}
	at := Root().Field(u.discriminator)
	dv, found := member(raw, u.discriminator)
	if !found {
		return nil, Issues{at.Issue(CodeDiscriminatorMissing, i18n.T(CodeDiscriminatorMissing, nil))}
	}
	if dv.Type != gjson.String {
		return nil, Issues{mismatchAt(at, KindString, resultKind(dv))}
	}
	s, ok := u.variants[dv.Str]
	if !ok {
		it := at.Issue(CodeDiscriminatorUnknown, i18n.T(CodeDiscriminatorUnknown, map[string]string{"key": dv.Str}))
		it.Hint = "unknown variant: '" + dv.Str + "'"
		return nil, Issues{it}
	}
	return s, nil
}

// Tags returns the registered discriminator values in sorted order.
func (u *Union[T]) Tags() []string { return append([]string(nil), u.tags...) }

// JSONSchema projects the union as oneOf over its variants in tag order.
func (u *Union[T]) JSONSchema() *js.Schema {
	out := &js.Schema{Title: u.name, OneOf: make([]*js.Schema, 0, len(u.tags))}
	for _, tag := range u.tags {
		out.OneOf = append(out.OneOf, u.variants[tag].JSONSchema())
	}
	return out
}
