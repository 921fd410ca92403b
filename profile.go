package textwall

// RenderFormula converts a glyph-unit value from the device font table into
// rendered pixels. It must be pure and monotonic: a larger glyph-unit value
// never produces a smaller pixel width.
type RenderFormula func(glyphUnits int) int

// UniformWidths holds the exact rendered pixel width of every character in
// each uniform-width script. These are hardware-measured constants, not
// statistical averages: every character of the script renders at the listed
// width, which is what makes wrapped CJK text pixel-predictable.
type UniformWidths struct {
	CJK      int
	Hiragana int
	Katakana int
	Korean   int
	Cyrillic int
}

// FontMetrics describes the device font: a glyph-unit table for individually
// measured characters, uniform per-script widths for the rest, and the
// fallback width for anything unmapped.
type FontMetrics struct {
	// GlyphWidths maps a character to its width in glyph units.
	// Pixel width is Render(GlyphWidths[r]).
	GlyphWidths map[rune]int

	// DefaultGlyphWidth is a representative glyph-unit value used only for
	// rough capacity estimates, never in the measurement path.
	DefaultGlyphWidth int

	// Render converts glyph units to rendered pixels.
	Render RenderFormula

	// Uniform holds exact per-script pixel widths.
	Uniform UniformWidths

	// LatinMaxWidth is the pixel width of the widest known Latin glyph.
	// Unmapped characters outside uniform scripts resolve to this width,
	// so the engine over-estimates rather than overflows.
	LatinMaxWidth int
}

// BreakConstraints holds line-break policy constants for a device.
type BreakConstraints struct {
	// NoBreakBefore lists characters that must not start a line
	// (closing punctuation, kinsoku line-start prohibitions).
	NoBreakBefore string

	// NoBreakAfter lists characters that must not end a line
	// (opening punctuation, kinsoku line-end prohibitions).
	NoBreakAfter string

	// MinCharsBeforeHyphen is the minimum number of characters a line must
	// carry before a trailing hyphen may be inserted.
	MinCharsBeforeHyphen int

	// HyphenChar is inserted at mid-word breaks in character and word modes.
	HyphenChar rune
}

// DisplayProfile is an immutable description of one hardware target.
// Profiles are constructed once in code (never parsed from files) and are
// safe to share between goroutines; multiple profiles coexist in a process.
type DisplayProfile struct {
	// Name identifies the hardware model, e.g. "g1".
	Name string

	// DisplayWidthPx is the usable text area width in pixels.
	DisplayWidthPx int

	// DisplayHeightPx is the display height in pixels. Zero when unknown;
	// the engine only budgets by MaxLines.
	DisplayHeightPx int

	// MaxLines is the number of text rows the display can show.
	MaxLines int

	// MaxPayloadBytes bounds a full display payload on the transport.
	MaxPayloadBytes int

	// BLEChunkSize bounds a single BLE write.
	BLEChunkSize int

	// Metrics is the device font description.
	Metrics FontMetrics

	// Constraints holds break policy constants.
	Constraints BreakConstraints
}

// Validate checks the profile for construction-time misconfiguration.
// A host should call this once at startup and fail loudly; all per-call
// engine operations on a validated profile are infallible.
func (p *DisplayProfile) Validate() error {
	if p == nil {
		return ErrNilProfile
	}
	if p.DisplayWidthPx <= 0 {
		return ErrZeroWidth
	}
	if p.MaxLines <= 0 {
		return ErrZeroLines
	}
	if p.BLEChunkSize <= 0 {
		return ErrZeroChunkSize
	}
	if p.Metrics.Render == nil {
		return ErrNilRenderFormula
	}
	if p.Metrics.LatinMaxWidth <= 0 {
		return ErrNoFallbackWidth
	}
	return nil
}

// uniformWidth returns the exact pixel width for a uniform-width script,
// or 0 if the script has none.
func (p *DisplayProfile) uniformWidth(s Script) int {
	switch s {
	case ScriptCJK:
		return p.Metrics.Uniform.CJK
	case ScriptHiragana:
		return p.Metrics.Uniform.Hiragana
	case ScriptKatakana:
		return p.Metrics.Uniform.Katakana
	case ScriptKorean:
		return p.Metrics.Uniform.Korean
	case ScriptCyrillic:
		return p.Metrics.Uniform.Cyrillic
	default:
		return 0
	}
}

// noBreakBefore reports whether r must not start a line on this device.
func (p *DisplayProfile) noBreakBefore(r rune) bool {
	for _, c := range p.Constraints.NoBreakBefore {
		if c == r {
			return true
		}
	}
	return false
}

// noBreakAfter reports whether r must not end a line on this device.
func (p *DisplayProfile) noBreakAfter(r rune) bool {
	for _, c := range p.Constraints.NoBreakAfter {
		if c == r {
			return true
		}
	}
	return false
}
