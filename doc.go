// Package textwall provides pixel-accurate text measurement, wrapping, and
// multi-column composition for small monochrome smart-glasses displays.
//
// The engine never draws pixels. It computes exact rendered widths from
// per-device glyph tables, decides line-break points deterministically, and
// produces output the host renderer can display row by row:
//
//   - DisplayProfile: Immutable hardware description (width, line budget,
//     glyph-unit table, render formula, BLE chunk size)
//   - Measurer: Exact per-character pixel widths with a memoized cache
//   - Wrapper: Width/line/byte-bounded wrapping under four break modes
//   - Composer: Two independently wrapped columns merged with pixel-exact
//     space padding
//   - ScrollView: A clamped, auto-following viewport over wrapped content
//
// # Example usage
//
//	profile := textwall.ProfileG1()
//	m, err := textwall.NewMeasurer(profile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	w := textwall.NewWrapper(m, textwall.BreakWord)
//	res := w.Wrap("Hello from the HUD", w.DefaultOptions())
//	for _, line := range res.Lines {
//	    send(line) // one display row per entry
//	}
//
// # Width resolution
//
// A character's width is resolved in priority order: exact glyph-table lookup
// passed through the profile's render formula, then the exact uniform width of
// its script (CJK, kana, Hangul, Cyrillic), then the widest known Latin glyph.
// The fallback over-estimates rather than under-estimates, so a line accepted
// by the wrapper can never overflow the physical display.
//
// All operations are pure computations over immutable profile data plus a
// mutex-guarded per-measurer cache; instances are cheap and safe to reuse.
package textwall
