package types

import "github.com/reoring/botschema"

// Chat is a private chat, group, supergroup or channel.
type Chat struct {
	ID       int64
	Type     string // "private", "group", "supergroup" or "channel".
	Title    botschema.Optional[string]
	Username botschema.Optional[string]
}

var chatShape = botschema.ObjectOf(
	botschema.Required("id", func(c *Chat) *int64 { return &c.ID }),
	botschema.Required("type", func(c *Chat) *string { return &c.Type }),
	botschema.OptionalField("title", func(c *Chat) *botschema.Optional[string] { return &c.Title }),
	botschema.OptionalField("username", func(c *Chat) *botschema.Optional[string] { return &c.Username }),
).MustBuild()

func (c *Chat) UnmarshalJSON(data []byte) error { return chatShape.DecodeInto(data, c) }

func (c Chat) MarshalJSON() ([]byte, error) {
	return botschema.NewObjectEncoder().
		Field("id", c.ID).
		Field("type", c.Type).
		Optional("title", c.Title).
		Optional("username", c.Username).
		Bytes()
}

// Recipient addresses c by id.
func (c Chat) Recipient() Recipient { return Recipient{ID: c.ID} }
