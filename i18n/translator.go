package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "pattern").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "null_not_allowed":
			return "null は許可されていません"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "pattern":
			return "パターンに一致しません"
		case "too_small":
			return "小さすぎます"
		case "too_big":
			return "大きすぎます"
		case "not_multiple_of":
			return "倍数ではありません"
		case "invalid_enum":
			return "許可された値のいずれでもありません"
		case "const_mismatch":
			return "期待された定数と一致しません"
		case "unknown_key":
			return "未知のキーです"
		case "no_variant_matched":
			return "一致するバリアントがありません"
		case "union_ambiguous":
			return "複数のバリアントに一致しました"
		case "forbidden_value":
			return "禁止されたスキーマに一致しました"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "null_not_allowed":
			return "null is not allowed"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "pattern":
			return "does not match pattern"
		case "too_small":
			return "too small"
		case "too_big":
			return "too big"
		case "not_multiple_of":
			return "not a multiple of the divisor"
		case "invalid_enum":
			return "not one of the allowed values"
		case "const_mismatch":
			return "does not equal the expected constant"
		case "unknown_key":
			return "unknown key"
		case "no_variant_matched":
			return "no variant matched"
		case "union_ambiguous":
			return "more than one variant matched"
		case "forbidden_value":
			return "value matches a forbidden schema"
		case "parse_error":
			return "parse error"
		}
	}
	return code
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
