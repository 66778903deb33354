package types

import (
	"github.com/reoring/botschema"
)

// Menu button kinds.
const (
	MenuButtonKindCommands = "commands"
	MenuButtonKindWebApp   = "web_app"
	MenuButtonKindDefault  = "default"
)

// MenuButton is the bot's menu button in a private chat. Text and WebApp are
// set only for MenuButtonKindWebApp.
type MenuButton struct {
	Type   string
	Text   string
	WebApp WebAppInfo
}

// MenuButtonCommands opens the bot's list of commands.
func MenuButtonCommands() MenuButton { return MenuButton{Type: MenuButtonKindCommands} }

// MenuButtonDefault means no specific button is set.
func MenuButtonDefault() MenuButton { return MenuButton{Type: MenuButtonKindDefault} }

// MenuButtonWebApp launches a Web App.
func MenuButtonWebApp(text string, app WebAppInfo) MenuButton {
	return MenuButton{Type: MenuButtonKindWebApp, Text: text, WebApp: app}
}

func menuButtonType(m *MenuButton) *string { return &m.Type }

var menuButtonUnion = botschema.UnionOf[MenuButton]("type").
	Variant(MenuButtonKindCommands, botschema.ObjectOf(
		botschema.Required("type", menuButtonType),
	).MustBuild()).
	Variant(MenuButtonKindDefault, botschema.ObjectOf(
		botschema.Required("type", menuButtonType),
	).MustBuild()).
	Variant(MenuButtonKindWebApp, botschema.ObjectOf(
		botschema.Required("type", menuButtonType),
		botschema.Required("text", func(m *MenuButton) *string { return &m.Text }),
		botschema.Required("web_app", func(m *MenuButton) *WebAppInfo { return &m.WebApp }),
	).MustBuild()).
	MustBuild()

func (m *MenuButton) UnmarshalJSON(data []byte) error { return menuButtonUnion.DecodeInto(data, m) }

// MarshalJSON writes only the members of the button's kind.
func (m MenuButton) MarshalJSON() ([]byte, error) {
	e := botschema.NewObjectEncoder().Field("type", m.Type)
	if m.Type == MenuButtonKindWebApp {
		e.Field("text", m.Text).Field("web_app", m.WebApp)
	}
	return e.Bytes()
}

// WebAppInfo describes a Web App.
type WebAppInfo struct {
	// An HTTPS URL of the Web App to be opened.
	URL string `json:"url"`
}

var webAppInfoShape = botschema.ObjectOf(
	botschema.Required("url", func(w *WebAppInfo) *string { return &w.URL }),
).MustBuild()

func (w *WebAppInfo) UnmarshalJSON(data []byte) error { return webAppInfoShape.DecodeInto(data, w) }
