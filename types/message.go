package types

import "github.com/reoring/botschema"

// Message is a message sent to or by the bot. Only the members needed by the
// generated methods are modelled; others are stripped.
type Message struct {
	MessageID       int64
	MessageThreadID botschema.Optional[int64]
	Date            int64
	Chat            Chat
	Text            botschema.Optional[string]
}

var messageShape = botschema.ObjectOf(
	botschema.Required("message_id", func(m *Message) *int64 { return &m.MessageID }),
	botschema.OptionalField("message_thread_id", func(m *Message) *botschema.Optional[int64] { return &m.MessageThreadID }),
	botschema.Required("date", func(m *Message) *int64 { return &m.Date }),
	botschema.Required("chat", func(m *Message) *Chat { return &m.Chat }),
	botschema.OptionalField("text", func(m *Message) *botschema.Optional[string] { return &m.Text }),
).MustBuild()

func (m *Message) UnmarshalJSON(data []byte) error { return messageShape.DecodeInto(data, m) }

// MarshalJSON writes the wire form accepted by UnmarshalJSON.
func (m Message) MarshalJSON() ([]byte, error) {
	return botschema.NewObjectEncoder().
		Field("message_id", m.MessageID).
		Optional("message_thread_id", m.MessageThreadID).
		Field("date", m.Date).
		Field("chat", m.Chat).
		Optional("text", m.Text).
		Bytes()
}
