package types

// ParseMode selects how message text entities are parsed.
type ParseMode string

const (
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
	ParseModeHTML       ParseMode = "HTML"
	// Deprecated: kept for backward compatibility; use ParseModeMarkdownV2.
	ParseModeMarkdown ParseMode = "Markdown"
)
