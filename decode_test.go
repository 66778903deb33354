package botschema_test

import (
	"errors"
	"math"
	"testing"

	"github.com/reoring/botschema"
)

type photo struct {
	ID      string
	Size    uint32
	Caption string
	Width   botschema.Optional[int]
	Tags    []string
}

var photoShape = botschema.ObjectOf(
	botschema.Required("id", func(p *photo) *string { return &p.ID }),
	botschema.Lenient("size", func(p *photo) *uint32 { return &p.Size }, math.MaxUint32),
	botschema.Lenient("caption", func(p *photo) *string { return &p.Caption }, ""),
	botschema.OptionalField("width", func(p *photo) *botschema.Optional[int] { return &p.Width }),
	botschema.Lenient("tags", func(p *photo) *[]string { return &p.Tags }, nil),
).MustBuild()

func TestShape_LenientAbsence(t *testing.T) {
	p, err := photoShape.Decode([]byte(`{"id":"a"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != "a" || p.Size != math.MaxUint32 || p.Caption != "" || p.Width.IsPresent() || p.Tags != nil {
		t.Fatalf("unexpected value: %+v", p)
	}
}

func TestShape_AllPresent(t *testing.T) {
	p, err := photoShape.Decode([]byte(`{"id":"a","size":42,"caption":"c","width":640,"tags":["x","y"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w, _ := p.Width.Get(); p.Size != 42 || p.Caption != "c" || w != 640 || len(p.Tags) != 2 {
		t.Fatalf("unexpected value: %+v", p)
	}
}

func TestShape_MissingRequired(t *testing.T) {
	_, err := photoShape.Decode([]byte(`{"size":1}`))
	if !botschema.IsMissingField(err, "id") {
		t.Fatalf("expected missing_field for id, got %v", err)
	}
	iss, _ := botschema.AsIssues(err)
	if iss[0].Path != "/id" {
		t.Fatalf("path: %q", iss[0].Path)
	}
}

func TestShape_LeniencyNeverCoversMalformedPresence(t *testing.T) {
	cases := []struct {
		input    string
		field    string
		expected string
		actual   string
	}{
		{`{"id":"a","size":"big"}`, "size", "integer", "string"},
		{`{"id":"a","size":null}`, "size", "integer", "null"},
		{`{"id":1}`, "id", "string", "number"},
		{`{"id":"a","width":true}`, "width", "integer", "boolean"},
		{`{"id":"a","caption":{}}`, "caption", "string", "object"},
	}
	for _, tc := range cases {
		_, err := photoShape.Decode([]byte(tc.input))
		if !botschema.IsTypeMismatch(err, tc.field) {
			t.Fatalf("%s: expected type_mismatch for %s, got %v", tc.input, tc.field, err)
		}
		iss, _ := botschema.AsIssues(err)
		if iss[0].Expected != tc.expected || iss[0].Actual != tc.actual {
			t.Fatalf("%s: got expected=%s actual=%s", tc.input, iss[0].Expected, iss[0].Actual)
		}
	}
}

func TestShape_OutOfRangeNumber(t *testing.T) {
	for _, in := range []string{`{"id":"a","size":-1}`, `{"id":"a","size":1.5}`, `{"id":"a","size":4294967296}`} {
		_, err := photoShape.Decode([]byte(in))
		if !botschema.IsTypeMismatch(err, "size") {
			t.Fatalf("%s: expected type_mismatch, got %v", in, err)
		}
	}
}

func TestShape_ArrayElementPath(t *testing.T) {
	_, err := photoShape.Decode([]byte(`{"id":"a","tags":["x",2]}`))
	iss, ok := botschema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Path != "/tags/1" || iss[0].Field != "tags" {
		t.Fatalf("issue location: %+v", iss[0])
	}
}

func TestShape_CollectsAllIssues(t *testing.T) {
	_, err := photoShape.Decode([]byte(`{"size":"x","width":"y"}`))
	iss, _ := botschema.AsIssues(err)
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %v", err)
	}
}

func TestShape_NotAnObject(t *testing.T) {
	_, err := photoShape.Decode([]byte(`[1]`))
	iss, ok := botschema.AsIssues(err)
	if !ok || iss[0].Code != botschema.CodeTypeMismatch || iss[0].Path != "/" || iss[0].Actual != "array" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestShape_ParseError(t *testing.T) {
	_, err := photoShape.Decode([]byte(`{"id":`))
	iss, ok := botschema.AsIssues(err)
	if !ok || iss[0].Code != botschema.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestShape_DecodeIntoKeepsDestinationOnFailure(t *testing.T) {
	dst := photo{ID: "keep"}
	if err := photoShape.DecodeInto([]byte(`{"id":"new","size":"x"}`), &dst); err == nil {
		t.Fatalf("expected error")
	}
	if dst.ID != "keep" {
		t.Fatalf("destination modified: %+v", dst)
	}
}

func TestShape_UnknownKeys(t *testing.T) {
	if _, err := photoShape.Decode([]byte(`{"id":"a","extra":1}`)); err != nil {
		t.Fatalf("unknown keys are stripped by default: %v", err)
	}

	strict := botschema.ObjectOf(
		botschema.Required("id", func(p *photo) *string { return &p.ID }),
	).UnknownStrict().MustBuild()
	_, err := strict.Decode([]byte(`{"id":"a","zeta":1,"alpha":2}`))
	iss, ok := botschema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two unknown_key issues, got %v", err)
	}
	if iss[0].Path != "/alpha" || iss[1].Path != "/zeta" || iss[0].Code != botschema.CodeUnknownKey {
		t.Fatalf("unknown keys must be reported in sorted order: %+v", iss)
	}
}

func TestShape_DecodeWithMeta(t *testing.T) {
	dm, err := photoShape.DecodeWithMeta([]byte(`{"id":"a","size":4294967295}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dm.Value.Size != math.MaxUint32 {
		t.Fatalf("size: %d", dm.Value.Size)
	}
	if dm.Defaulted("/size") || !dm.Seen("/size") {
		t.Fatalf("a genuine sentinel value must be reported as seen")
	}
	if !dm.Defaulted("/caption") || dm.Seen("/caption") {
		t.Fatalf("absent lenient field must be reported as defaulted")
	}
	if dm.Defaulted("/width") || dm.Seen("/width") {
		t.Fatalf("absent optional field carries no flags")
	}
}

func TestObjectOf_BuildRejectsDuplicates(t *testing.T) {
	_, err := botschema.ObjectOf(
		botschema.Required("id", func(p *photo) *string { return &p.ID }),
		botschema.Lenient("id", func(p *photo) *string { return &p.Caption }, ""),
	).Build()
	var se *botschema.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if se.Name != "photo" || se.Issues[0].Code != botschema.CodeDuplicateField || se.Issues[0].Field != "id" {
		t.Fatalf("unexpected issues: %+v", se.Issues)
	}
}

func TestShape_JSONSchema(t *testing.T) {
	s := photoShape.JSONSchema()
	if len(s.Required) != 1 || s.Required[0] != "id" {
		t.Fatalf("only strict fields are required: %v", s.Required)
	}
	if s.Properties["size"].Default != uint32(math.MaxUint32) {
		t.Fatalf("lenient sentinel must be exported as default: %v", s.Properties["size"].Default)
	}
	if s.Properties["width"].Type != "integer" || s.Properties["tags"].Type != "array" {
		t.Fatalf("kinds: %+v", s.Properties)
	}
}

type album struct {
	Title string
	Cover photo
}

var albumShape = botschema.ObjectOf(
	botschema.Required("title", func(a *album) *string { return &a.Title }),
	botschema.Required("cover", func(a *album) *photo { return &a.Cover }),
).MustBuild()

func (p *photo) UnmarshalJSON(data []byte) error { return photoShape.DecodeInto(data, p) }

func TestShape_NestedIssuesAreRebased(t *testing.T) {
	_, err := albumShape.Decode([]byte(`{"title":"t","cover":{"size":"x"}}`))
	iss, ok := botschema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two nested issues, got %v", err)
	}
	paths := map[string]string{}
	for _, it := range iss {
		paths[it.Path] = it.Code
	}
	if paths["/cover/size"] != botschema.CodeTypeMismatch || paths["/cover/id"] != botschema.CodeMissingField {
		t.Fatalf("nested paths: %+v", iss)
	}
}

func TestShape_NestedNonObject(t *testing.T) {
	_, err := albumShape.Decode([]byte(`{"title":"t","cover":"x"}`))
	iss, _ := botschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/cover" || iss[0].Field != "cover" || iss[0].Code != botschema.CodeTypeMismatch {
		t.Fatalf("unexpected: %+v", iss)
	}
}

func TestDecodeResult(t *testing.T) {
	ok, err := botschema.DecodeResult[bool]([]byte(`true`))
	if err != nil || !ok {
		t.Fatalf("bool: %v %v", ok, err)
	}
	if _, err := botschema.DecodeResult[bool]([]byte(`"true"`)); err == nil {
		t.Fatalf("string must not decode as bool")
	}
	list, err := botschema.DecodeResult[[]photo]([]byte(`[{"id":"a"},{"id":"b","size":3}]`))
	if err != nil || len(list) != 2 || list[0].Size != math.MaxUint32 || list[1].Size != 3 {
		t.Fatalf("list: %+v %v", list, err)
	}
	_, err = botschema.DecodeResult[[]photo]([]byte(`[{"id":"a"},{}]`))
	iss, _ := botschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/1/id" {
		t.Fatalf("element path: %+v", iss)
	}
}

func TestShape_DuplicateKey(t *testing.T) {
	_, err := photoShape.Decode([]byte(`{"id":"a","size":1,"size":2}`))
	iss, ok := botschema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != botschema.CodeDuplicateKey || iss[0].Path != "/size" {
		t.Fatalf("expected duplicate_key at /size, got %v", err)
	}
}
