package types

import "github.com/reoring/botschema"

// BotCommand is a bot command shown in the command menu.
type BotCommand struct {
	// Text of the command; 1-32 characters of lowercase letters, digits and
	// underscores.
	Command string `json:"command"`
	// Description of the command; 1-256 characters.
	Description string `json:"description"`
}

var botCommandShape = botschema.ObjectOf(
	botschema.Required("command", func(c *BotCommand) *string { return &c.Command }),
	botschema.Required("description", func(c *BotCommand) *string { return &c.Description }),
).MustBuild()

func (c *BotCommand) UnmarshalJSON(data []byte) error { return botCommandShape.DecodeInto(data, c) }
