package types_test

import (
	"testing"

	j "github.com/goccy/go-json"

	"github.com/reoring/botschema"
	"github.com/reoring/botschema/types"
)

func TestMenuButton_Marshal(t *testing.T) {
	cases := []struct {
		in   types.MenuButton
		want string
	}{
		{types.MenuButtonCommands(), `{"type":"commands"}`},
		{types.MenuButtonDefault(), `{"type":"default"}`},
		{
			types.MenuButtonWebApp("Open", types.WebAppInfo{URL: "https://example.com/app"}),
			`{"type":"web_app","text":"Open","web_app":{"url":"https://example.com/app"}}`,
		},
	}
	for _, tc := range cases {
		b, err := j.Marshal(tc.in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != tc.want {
			t.Fatalf("got %s want %s", b, tc.want)
		}
	}
}

func TestMenuButton_RoundTrip(t *testing.T) {
	for _, in := range []types.MenuButton{
		types.MenuButtonCommands(),
		types.MenuButtonDefault(),
		types.MenuButtonWebApp("Open", types.WebAppInfo{URL: "https://example.com/app"}),
	} {
		b, _ := j.Marshal(in)
		var out types.MenuButton
		if err := out.UnmarshalJSON(b); err != nil {
			t.Fatalf("%s: %v", b, err)
		}
		if out != in {
			t.Fatalf("got %+v want %+v", out, in)
		}
	}
}

func TestMenuButton_DecodeErrors(t *testing.T) {
	var m types.MenuButton
	err := m.UnmarshalJSON([]byte(`{"type":"web_app","text":"Open","web_app":{}}`))
	iss, ok := botschema.AsIssues(err)
	if !ok || iss[0].Path != "/web_app/url" || iss[0].Code != botschema.CodeMissingField {
		t.Fatalf("nested: %v", err)
	}
	err = m.UnmarshalJSON([]byte(`{"type":"mini_app"}`))
	iss, ok = botschema.AsIssues(err)
	if !ok || iss[0].Code != botschema.CodeDiscriminatorUnknown {
		t.Fatalf("unknown kind: %v", err)
	}
}
