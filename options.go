package textwall

// BreakMode specifies how lines break when text exceeds the maximum width.
type BreakMode uint8

const (
	// BreakDefault selects the wrapper's configured mode
	// (zero value so a partially filled WrapOptions inherits it).
	BreakDefault BreakMode = iota

	// BreakCharacter breaks anywhere and inserts a hyphen at mid-word
	// breaks, filling every line as far as the width allows.
	BreakCharacter

	// BreakCharacterNoHyphen breaks anywhere without inserting characters.
	// Used for live captions, where inserted hyphens would flicker as
	// interim transcripts are rewritten.
	BreakCharacterNoHyphen

	// BreakWord breaks at spaces; a single word wider than the line is
	// hyphenated internally.
	BreakWord

	// BreakStrictWord breaks at spaces only. A single word wider than the
	// line is placed alone and allowed to overflow visually.
	BreakStrictWord
)

// String returns the string representation of the break mode.
func (m BreakMode) String() string {
	switch m {
	case BreakDefault:
		return "Default"
	case BreakCharacter:
		return "Character"
	case BreakCharacterNoHyphen:
		return "CharacterNoHyphen"
	case BreakWord:
		return "Word"
	case BreakStrictWord:
		return "StrictWord"
	default:
		return "Unknown"
	}
}

// Unlimited disables a line or byte budget when assigned to
// WrapOptions.MaxLines or WrapOptions.MaxBytes.
const Unlimited = -1

// WrapOptions controls a single Wrap call. Zero-valued fields are filled
// from the wrapper's profile, so callers patch only what they need:
//
//	res := w.Wrap(text, textwall.WrapOptions{MaxLines: 3})
//
// The two booleans are taken as given; use DefaultOptions for the profile
// defaults (both true) and override from there.
type WrapOptions struct {
	// MaxWidthPx is the line width budget. 0 means the profile's
	// display width.
	MaxWidthPx int

	// MaxLines caps emitted lines. 0 means the profile's line budget;
	// Unlimited disables the cap.
	MaxLines int

	// MaxBytes caps the total payload, charging each line's UTF-8 length
	// plus one newline byte. 0 means the profile's payload budget;
	// Unlimited disables the cap.
	MaxBytes int

	// Mode selects the break policy. BreakDefault means the wrapper's
	// configured mode.
	Mode BreakMode

	// HyphenChar is inserted at mid-word breaks. 0 means the profile's
	// hyphen character.
	HyphenChar rune

	// MinCharsBeforeHyphen is the minimum line length before a trailing
	// hyphen may be inserted. 0 means the profile's value.
	MinCharsBeforeHyphen int

	// TrimLines strips trailing spaces from emitted lines.
	TrimLines bool

	// PreserveNewlines wraps each \n-separated paragraph independently.
	// When false, newlines are treated as plain spaces.
	PreserveNewlines bool
}
