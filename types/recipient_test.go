package types_test

import (
	"testing"

	j "github.com/goccy/go-json"

	"github.com/reoring/botschema"
	"github.com/reoring/botschema/types"
)

func TestRecipient_Into(t *testing.T) {
	cases := []struct {
		in   botschema.Into[types.Recipient]
		want string
	}{
		{types.ChatID(-1001234), `-1001234`},
		{types.Username("channel"), `"@channel"`},
		{types.Username("@channel"), `"@channel"`},
		{types.Recipient{ID: 7}, `7`},
	}
	for _, tc := range cases {
		b, err := j.Marshal(tc.in.Into())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != tc.want {
			t.Fatalf("got %s want %s", b, tc.want)
		}
	}
}

func TestRecipient_Unmarshal(t *testing.T) {
	var r types.Recipient
	if err := r.UnmarshalJSON([]byte(`42`)); err != nil || r.ID != 42 {
		t.Fatalf("number: %+v %v", r, err)
	}
	if err := r.UnmarshalJSON([]byte(`"@me"`)); err != nil || r.Username != "@me" || r.ID != 0 {
		t.Fatalf("string: %+v %v", r, err)
	}
	err := r.UnmarshalJSON([]byte(`true`))
	iss, ok := botschema.AsIssues(err)
	if !ok || iss[0].Code != botschema.CodeTypeMismatch || iss[0].Actual != "boolean" || iss[0].Expected != "integer|string" {
		t.Fatalf("bool: %v", err)
	}
	if err := r.UnmarshalJSON([]byte(`1.5`)); err == nil {
		t.Fatalf("fractional id must fail")
	}
}

func TestRecipient_String(t *testing.T) {
	if s := types.ChatID(5).Into().String(); s != "5" {
		t.Fatalf("got %q", s)
	}
	if s := types.Username("x").Into().String(); s != "@x" {
		t.Fatalf("got %q", s)
	}
}
