package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "actual" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "missing_field":
			msg = "必須フィールドが不足しています"
		case "type_mismatch":
			msg = "型が不正です（期待: {expected}、実際: {actual}）"
		case "unknown_key":
			msg = "未知のキーです"
		case "parse_error":
			msg = "解析エラー"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "discriminator_missing":
			msg = "判別キーがありません"
		case "discriminator_unknown":
			msg = "未知のバリアントです: {key}"
		case "duplicate_field":
			msg = "フィールド名が重複しています: {key}"
		case "conflicting_role":
			msg = "フィールドの役割が矛盾しています"
		case "invalid_descriptor":
			msg = "定義が不正です"
		}
	default: // "en"
		switch code {
		case "missing_field":
			msg = "required field missing"
		case "type_mismatch":
			msg = "invalid type: expected {expected}, got {actual}"
		case "unknown_key":
			msg = "unknown key"
		case "parse_error":
			msg = "parse error"
		case "duplicate_key":
			msg = "duplicate key"
		case "discriminator_missing":
			msg = "discriminator missing"
		case "discriminator_unknown":
			msg = "unknown variant: {key}"
		case "duplicate_field":
			msg = "duplicate field: {key}"
		case "conflicting_role":
			msg = "conflicting field role"
		case "invalid_descriptor":
			msg = "invalid descriptor"
		}
	}
	if msg == "" {
		return code
	}
	return fill(msg, data)
}

func fill(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
