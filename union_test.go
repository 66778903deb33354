package botschema_test

import (
	"errors"
	"testing"

	"github.com/reoring/botschema"
)

type button struct {
	Type string
	Text string
	URL  string
}

var buttonUnion = botschema.UnionOf[button]("type").
	Variant("plain", botschema.ObjectOf(
		botschema.Required("type", func(b *button) *string { return &b.Type }),
	).MustBuild()).
	Variant("link", botschema.ObjectOf(
		botschema.Required("type", func(b *button) *string { return &b.Type }),
		botschema.Required("text", func(b *button) *string { return &b.Text }),
		botschema.Required("url", func(b *button) *string { return &b.URL }),
	).MustBuild()).
	MustBuild()

func TestUnion_SelectsVariant(t *testing.T) {
	b, err := buttonUnion.Decode([]byte(`{"type":"link","text":"go","url":"https://example.com"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Type != "link" || b.URL != "https://example.com" {
		t.Fatalf("unexpected: %+v", b)
	}
	b, err = buttonUnion.Decode([]byte(`{"type":"plain","text":"ignored"}`))
	if err != nil || b.Type != "plain" || b.Text != "" {
		t.Fatalf("plain: %+v %v", b, err)
	}
}

func TestUnion_VariantFieldsAreStrict(t *testing.T) {
	_, err := buttonUnion.Decode([]byte(`{"type":"link","text":"go"}`))
	if !botschema.IsMissingField(err, "url") {
		t.Fatalf("expected missing url, got %v", err)
	}
}

func TestUnion_RepeatedDiscriminatorUsesFirst(t *testing.T) {
	_, err := buttonUnion.Decode([]byte(`{"type":"plain","type":"link"}`))
	iss, ok := botschema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != botschema.CodeDuplicateKey || iss[0].Path != "/type" {
		t.Fatalf("expected only duplicate_key at /type, got %v", err)
	}
}

func TestUnion_DiscriminatorErrors(t *testing.T) {
	cases := []struct {
		input string
		code  string
	}{
		{`{"text":"x"}`, botschema.CodeDiscriminatorMissing},
		{`{"type":"nope"}`, botschema.CodeDiscriminatorUnknown},
		{`{"type":3}`, botschema.CodeTypeMismatch},
		{`"plain"`, botschema.CodeTypeMismatch},
	}
	for _, tc := range cases {
		_, err := buttonUnion.Decode([]byte(tc.input))
		iss, ok := botschema.AsIssues(err)
		if !ok || iss[0].Code != tc.code {
			t.Fatalf("%s: expected %s, got %v", tc.input, tc.code, err)
		}
	}
}

func TestUnion_BuildErrors(t *testing.T) {
	s := botschema.ObjectOf(
		botschema.Required("type", func(b *button) *string { return &b.Type }),
	).MustBuild()
	_, err := botschema.UnionOf[button]("type").Variant("a", s).Variant("a", s).Build()
	var se *botschema.SchemaError
	if !errors.As(err, &se) || se.Issues[0].Code != botschema.CodeDuplicateField {
		t.Fatalf("expected duplicate variant, got %v", err)
	}
	if _, err := botschema.UnionOf[button]("type").Build(); err == nil {
		t.Fatalf("a union without variants must not build")
	}
}

func TestUnion_TagsAndSchema(t *testing.T) {
	tags := buttonUnion.Tags()
	if len(tags) != 2 || tags[0] != "link" || tags[1] != "plain" {
		t.Fatalf("tags: %v", tags)
	}
	s := buttonUnion.JSONSchema()
	if len(s.OneOf) != 2 || len(s.OneOf[0].Required) != 3 {
		t.Fatalf("schema: %+v", s)
	}
}
