package botschema_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/reoring/botschema"
)

func TestObjectEncoder_OrderAndAbsence(t *testing.T) {
	b, err := botschema.NewObjectEncoder().
		Field("chat_id", 42).
		Field("text", "hi").
		Optional("parse_mode", botschema.None[string]()).
		Optional("disable_notification", botschema.Some(false)).
		Optional("reply_markup", botschema.Nullable[int]{}).
		Optional("protect_content", botschema.Null[bool]()).
		Bytes()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"chat_id":42,"text":"hi","disable_notification":false,"protect_content":null}`
	if string(b) != want {
		t.Fatalf("got %s\nwant %s", b, want)
	}
}

func TestObjectEncoder_Empty(t *testing.T) {
	b, err := botschema.NewObjectEncoder().Optional("x", botschema.None[int]()).Bytes()
	if err != nil || string(b) != "{}" {
		t.Fatalf("got %s %v", b, err)
	}
}

func TestObjectEncoder_EscapesWireName(t *testing.T) {
	b, err := botschema.NewObjectEncoder().Field(`a"b`, 1).Bytes()
	if err != nil || string(b) != `{"a\"b":1}` {
		t.Fatalf("got %s %v", b, err)
	}
}

type failing struct{}

func (failing) MarshalJSON() ([]byte, error) { return nil, errors.New("boom") }

func TestObjectEncoder_FirstErrorWins(t *testing.T) {
	_, err := botschema.NewObjectEncoder().
		Field("a", failing{}).
		Field("b", math.Inf(1)).
		Bytes()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), `"a"`) {
		t.Fatalf("error should name the first failing member: %v", err)
	}
}
