package textwall

// Script identifies the writing system of a single character for width
// resolution and line-break decisions.
type Script uint8

// Script constants, in detection priority order. Categories with exact
// uniform glyph widths on the target hardware come first.
const (
	// ScriptCJK is used for Han ideographs (Chinese, Japanese Kanji).
	ScriptCJK Script = iota
	// ScriptHiragana is used for Japanese Hiragana.
	ScriptHiragana
	// ScriptKatakana is used for Japanese Katakana, including halfwidth forms.
	ScriptKatakana
	// ScriptKorean is used for Hangul syllables and jamo.
	ScriptKorean
	// ScriptCyrillic is used for Cyrillic (Russian, Ukrainian, etc.)
	ScriptCyrillic
	// ScriptNumber is used for ASCII digits.
	ScriptNumber
	// ScriptPunctuation is used for punctuation shared across scripts.
	ScriptPunctuation
	// ScriptArabic is used for Arabic script characters.
	ScriptArabic
	// ScriptHebrew is used for Hebrew script characters.
	ScriptHebrew
	// ScriptThai is used for Thai script characters.
	ScriptThai
	// ScriptEmoji is used for emoji and pictographic symbols.
	ScriptEmoji
	// ScriptUnsupported is used for control characters the displays
	// cannot render.
	ScriptUnsupported
	// ScriptLatin is the default for everything else.
	ScriptLatin
)

// scriptNames maps Script values to their string names.
var scriptNames = [...]string{
	ScriptCJK:         "CJK",
	ScriptHiragana:    "Hiragana",
	ScriptKatakana:    "Katakana",
	ScriptKorean:      "Korean",
	ScriptCyrillic:    "Cyrillic",
	ScriptNumber:      "Number",
	ScriptPunctuation: "Punctuation",
	ScriptArabic:      "Arabic",
	ScriptHebrew:      "Hebrew",
	ScriptThai:        "Thai",
	ScriptEmoji:       "Emoji",
	ScriptUnsupported: "Unsupported",
	ScriptLatin:       "Latin",
}

// String returns the name of the script.
func (s Script) String() string {
	if int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return "Unknown"
}

// BreaksFreely returns true if lines may break between any two characters
// of this script without a hyphen. East Asian scripts that do not separate
// words with spaces break freely; Korean does not, since Hangul text uses
// inter-word spaces.
func (s Script) BreaksFreely() bool {
	return s == ScriptCJK || s == ScriptHiragana || s == ScriptKatakana
}

// Uniform returns true if every character of this script renders at one
// exact width on the target hardware.
func (s Script) Uniform() bool {
	switch s {
	case ScriptCJK, ScriptHiragana, ScriptKatakana, ScriptKorean, ScriptCyrillic:
		return true
	default:
		return false
	}
}

// DetectScript classifies a single character by Unicode range membership,
// checked in priority order: CJK, Hiragana, Katakana, Korean, Cyrillic,
// numbers, punctuation, Arabic/Hebrew/Thai/Emoji, then Latin by default.
//
// The ranges are hardcoded rather than pulled from a Unicode library so that
// classification matches the native firmware implementations exactly; any
// divergence changes line-break points visibly on hardware. Classification
// operates on code points, so characters outside the BMP (emoji, CJK
// Extension B) are inspected whole, never as surrogate halves.
func DetectScript(r rune) Script {
	// ASCII fast path covers the overwhelmingly common case.
	if r < 0x0080 {
		return detectASCII(r)
	}
	if isCJK(r) {
		return ScriptCJK
	}
	if isHiragana(r) {
		return ScriptHiragana
	}
	if isKatakana(r) {
		return ScriptKatakana
	}
	if isKorean(r) {
		return ScriptKorean
	}
	if isCyrillic(r) {
		return ScriptCyrillic
	}
	if isWidePunctuation(r) {
		return ScriptPunctuation
	}
	switch {
	case isArabic(r):
		return ScriptArabic
	case isHebrew(r):
		return ScriptHebrew
	case isThai(r):
		return ScriptThai
	case isEmoji(r):
		return ScriptEmoji
	}
	if r >= 0x0080 && r <= 0x009F {
		return ScriptUnsupported // C1 controls
	}
	return ScriptLatin
}

// detectASCII handles the ASCII range (0x0000-0x007F).
func detectASCII(r rune) Script {
	switch {
	case r >= '0' && r <= '9':
		return ScriptNumber
	case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
		return ScriptLatin
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return ScriptPunctuation
	case r < 0x20 || r == 0x7F:
		return ScriptUnsupported // C0 controls
	default:
		return ScriptPunctuation
	}
}

// isCJK reports whether r is a Han ideograph.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0xF900 && r <= 0xFAFF) || // CJK Compatibility Ideographs
		(r >= 0x2E80 && r <= 0x2EFF) || // CJK Radicals Supplement
		(r >= 0x2F00 && r <= 0x2FDF) || // Kangxi Radicals
		(r >= 0x20000 && r <= 0x2A6DF) // CJK Extension B
}

// isHiragana reports whether r is Hiragana.
func isHiragana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x1B000 && r <= 0x1B0FF) // Kana Supplement
}

// isKatakana reports whether r is Katakana, including halfwidth forms.
func isKatakana(r rune) bool {
	return (r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0x31F0 && r <= 0x31FF) || // Katakana Phonetic Extensions
		(r >= 0xFF65 && r <= 0xFF9F) // Halfwidth Katakana
}

// isKorean reports whether r is Hangul.
func isKorean(r rune) bool {
	return (r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0x1100 && r <= 0x11FF) || // Hangul Jamo
		(r >= 0x3130 && r <= 0x318F) || // Hangul Compatibility Jamo
		(r >= 0xA960 && r <= 0xA97F) || // Hangul Jamo Extended-A
		(r >= 0xD7B0 && r <= 0xD7FF) // Hangul Jamo Extended-B
}

// isCyrillic reports whether r is Cyrillic.
func isCyrillic(r rune) bool {
	return (r >= 0x0400 && r <= 0x04FF) ||
		(r >= 0x0500 && r <= 0x052F) // Cyrillic Supplement
}

// isWidePunctuation reports whether r is non-ASCII punctuation shared
// across scripts (general punctuation, CJK symbols, fullwidth forms).
func isWidePunctuation(r rune) bool {
	return (r >= 0x2000 && r <= 0x206F) || // General Punctuation
		(r >= 0x3000 && r <= 0x303F) || // CJK Symbols and Punctuation
		(r >= 0xFF01 && r <= 0xFF0F) || // Fullwidth punctuation
		(r >= 0xFF1A && r <= 0xFF20) ||
		(r >= 0xFF3B && r <= 0xFF40) ||
		(r >= 0xFF5B && r <= 0xFF64)
}

// isArabic reports whether r is Arabic.
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) || // Arabic Supplement
		(r >= 0xFB50 && r <= 0xFDFF) || // Arabic Presentation Forms-A
		(r >= 0xFE70 && r <= 0xFEFF) // Arabic Presentation Forms-B
}

// isHebrew reports whether r is Hebrew.
func isHebrew(r rune) bool {
	return r >= 0x0590 && r <= 0x05FF
}

// isThai reports whether r is Thai.
func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}

// isEmoji reports whether r is an emoji or pictographic symbol.
func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1FAFF) || // Pictographs through Symbols Extended-A
		(r >= 0x2600 && r <= 0x26FF) || // Miscellaneous Symbols
		(r >= 0x2700 && r <= 0x27BF) || // Dingbats
		(r >= 0x1F000 && r <= 0x1F0FF) // Mahjong/domino/playing cards
}

// trailingBreakers are characters after which a mid-word break needs no
// hyphen: the break point is already visually marked.
const trailingBreakers = "-–—/\\|"

// NeedsHyphenForBreak reports whether breaking a line between before and
// after requires inserting a visible hyphen. Breaks inside or adjacent to
// free-breaking scripts need none, breaks around whitespace need none, and
// breaks after an existing dash or slash need none. Everything else is a
// mid-word Latin break and must be marked.
func NeedsHyphenForBreak(before, after rune) bool {
	if DetectScript(before).BreaksFreely() || DetectScript(after).BreaksFreely() {
		return false
	}
	if isBreakSpace(before) || isBreakSpace(after) {
		return false
	}
	for _, b := range trailingBreakers {
		if before == b {
			return false
		}
	}
	return true
}

// isBreakSpace reports whether r is whitespace for break decisions.
func isBreakSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '　'
}
