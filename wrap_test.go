package textwall

import (
	"strings"
	"testing"
)

// newG1Wrapper creates a wrapper on the standard G1 profile.
func newG1Wrapper(t testing.TB, mode BreakMode) *Wrapper {
	t.Helper()
	return NewWrapper(newG1Measurer(t), mode)
}

// TestBreakModeString tests BreakMode.String method.
func TestBreakModeString(t *testing.T) {
	tests := []struct {
		mode BreakMode
		want string
	}{
		{BreakDefault, "Default"},
		{BreakCharacter, "Character"},
		{BreakCharacterNoHyphen, "CharacterNoHyphen"},
		{BreakWord, "Word"},
		{BreakStrictWord, "StrictWord"},
		{BreakMode(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("BreakMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

// TestWrap_Empty tests that empty input yields a single empty line with
// zeroed metrics.
func TestWrap_Empty(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	res := w.Wrap("", w.DefaultOptions())

	if len(res.Lines) != 1 || res.Lines[0] != "" {
		t.Fatalf("Lines = %q, want one empty line", res.Lines)
	}
	if res.Truncated {
		t.Error("empty input should not be truncated")
	}
	if res.TotalBytes != 0 || res.MaxLineWidthPx != 0 {
		t.Errorf("metrics not zeroed: bytes=%d width=%d", res.TotalBytes, res.MaxLineWidthPx)
	}
	if len(res.LineMetrics) != 1 || res.LineMetrics[0] != (LineMetrics{}) {
		t.Errorf("LineMetrics = %+v, want one zero entry", res.LineMetrics)
	}
}

// TestWrap_SingleLineShortCircuit tests that fitting input passes through
// unchanged.
func TestWrap_SingleLineShortCircuit(t *testing.T) {
	w := newG1Wrapper(t, BreakCharacter)
	res := w.Wrap("Hi", w.DefaultOptions())

	if len(res.Lines) != 1 || res.Lines[0] != "Hi" {
		t.Fatalf("Lines = %q, want [Hi]", res.Lines)
	}
	if res.MaxLineWidthPx != 30 { // H=22 + i=8
		t.Errorf("MaxLineWidthPx = %d, want 30", res.MaxLineWidthPx)
	}
	if res.Truncated {
		t.Error("fitting input should not be truncated")
	}
}

// TestWrap_G1Hyphenation tests the character-mode hyphen backoff on the
// G1 profile: at a 96px budget "intern" plus the 10px hyphen fits exactly,
// so the first break emits a trailing hyphen and carries the rest forward.
func TestWrap_G1Hyphenation(t *testing.T) {
	w := newG1Wrapper(t, BreakCharacter)
	res := w.Wrap("internationalization", WrapOptions{
		MaxWidthPx:       96,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	want := []string{"intern-", "ation-", "alizat-", "ion"}
	if len(res.Lines) != len(want) {
		t.Fatalf("Lines = %q, want %q", res.Lines, want)
	}
	for i := range want {
		if res.Lines[i] != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, res.Lines[i], want[i])
		}
	}

	for i, lm := range res.LineMetrics {
		hyphenated := strings.HasSuffix(res.Lines[i], "-")
		if lm.EndsWithHyphen != hyphenated {
			t.Errorf("LineMetrics[%d].EndsWithHyphen = %v for line %q",
				i, lm.EndsWithHyphen, res.Lines[i])
		}
	}

	// Stripping inserted hyphens restores the original word.
	var rebuilt strings.Builder
	for _, line := range res.Lines {
		rebuilt.WriteString(strings.TrimSuffix(line, "-"))
	}
	if rebuilt.String() != "internationalization" {
		t.Errorf("rebuilt = %q, want original", rebuilt.String())
	}
}

// TestWrap_CJKNoHyphen tests that breaks adjacent to CJK characters never
// insert a hyphen, even in hyphenating character mode.
func TestWrap_CJKNoHyphen(t *testing.T) {
	w := newG1Wrapper(t, BreakCharacter)
	res := w.Wrap("abc中文def", WrapOptions{
		MaxWidthPx:       60,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	want := []string{"abc", "中文", "def"}
	if len(res.Lines) != len(want) {
		t.Fatalf("Lines = %q, want %q", res.Lines, want)
	}
	for i := range want {
		if res.Lines[i] != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, res.Lines[i], want[i])
		}
	}
	for i, lm := range res.LineMetrics {
		if lm.EndsWithHyphen {
			t.Errorf("line %d %q should not be hyphenated", i, res.Lines[i])
		}
	}
}

// TestWrap_CharacterNoHyphen tests clean breaks without inserted
// characters, the live-caption mode.
func TestWrap_CharacterNoHyphen(t *testing.T) {
	w := newG1Wrapper(t, BreakCharacterNoHyphen)
	res := w.Wrap("abcdef", WrapOptions{
		MaxWidthPx:       40,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	want := []string{"ab", "cd", "ef"}
	if len(res.Lines) != len(want) {
		t.Fatalf("Lines = %q, want %q", res.Lines, want)
	}
	joined := strings.Join(res.Lines, "")
	if joined != "abcdef" {
		t.Errorf("no-hyphen mode must not insert characters: %q", joined)
	}
}

// TestWrap_BackoffUncoversSpace tests the load-bearing backoff rule: when
// removing characters exposes a space, the line breaks at that natural
// boundary without a hyphen.
func TestWrap_BackoffUncoversSpace(t *testing.T) {
	w := newG1Wrapper(t, BreakCharacter)
	// "to y" = 12+18+6+16 = 52; adding 'e' (18) overflows a 60px budget.
	// Backing off for the hyphen (52+10 > 60) pops 'y' and exposes the
	// space, so the line must end "to" with no hyphen.
	res := w.Wrap("to yes", WrapOptions{
		MaxWidthPx:       60,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	if len(res.Lines) != 2 {
		t.Fatalf("Lines = %q, want 2 lines", res.Lines)
	}
	if res.Lines[0] != "to" {
		t.Errorf("Lines[0] = %q, want %q (no hyphen across an uncovered space)", res.Lines[0], "to")
	}
	if res.Lines[1] != "yes" {
		t.Errorf("Lines[1] = %q, want %q", res.Lines[1], "yes")
	}
}

// TestWrap_Word tests greedy word packing.
func TestWrap_Word(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	res := w.Wrap("hello world", WrapOptions{
		MaxWidthPx:       100,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	want := []string{"hello", "world"}
	if len(res.Lines) != 2 || res.Lines[0] != want[0] || res.Lines[1] != want[1] {
		t.Fatalf("Lines = %q, want %q", res.Lines, want)
	}
}

// TestWrap_WordLongWord tests that word mode hyphenates a single word
// wider than the line using the character-mode backoff.
func TestWrap_WordLongWord(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	res := w.Wrap("internationalization", WrapOptions{
		MaxWidthPx:       96,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	if len(res.Lines) < 2 {
		t.Fatalf("long word should span lines, got %q", res.Lines)
	}
	if res.Lines[0] != "intern-" {
		t.Errorf("Lines[0] = %q, want %q", res.Lines[0], "intern-")
	}
	if last := res.Lines[len(res.Lines)-1]; strings.HasSuffix(last, "-") {
		t.Errorf("final line %q should not end with a hyphen", last)
	}
}

// TestWrap_StrictWord tests that strict mode overflows an unbreakable word
// instead of hyphenating it.
func TestWrap_StrictWord(t *testing.T) {
	w := newG1Wrapper(t, BreakStrictWord)
	m := w.Measurer()
	res := w.Wrap("hi internationalization yo", WrapOptions{
		MaxWidthPx:       100,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	want := []string{"hi", "internationalization", "yo"}
	if len(res.Lines) != 3 {
		t.Fatalf("Lines = %q, want %q", res.Lines, want)
	}
	for i := range want {
		if res.Lines[i] != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, res.Lines[i], want[i])
		}
	}
	if m.MeasureText(res.Lines[1]) <= 100 {
		t.Error("the unbreakable word should overflow the width budget")
	}
}

// TestWrap_WordCJK tests that each CJK character forms its own token so
// East Asian text packs densely in word mode.
func TestWrap_WordCJK(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	res := w.Wrap("中文中文中", WrapOptions{
		MaxWidthPx:       50, // two 22px cells per line
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	want := []string{"中文", "中文", "中"}
	if len(res.Lines) != 3 {
		t.Fatalf("Lines = %q, want %q", res.Lines, want)
	}
	for i := range want {
		if res.Lines[i] != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, res.Lines[i], want[i])
		}
	}
}

// TestWrap_NoOverflowInvariant tests that every emitted line measures
// within the width budget for all break modes except strict-word.
func TestWrap_NoOverflowInvariant(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"internationalization and localization",
		"中文テキストと English の mixed content です",
		"Привет мир and some latin",
		"nospacesatallinthisverylongrunoftext",
	}
	modes := []BreakMode{BreakCharacter, BreakCharacterNoHyphen, BreakWord}
	widths := []int{60, 96, 150, 300}

	w := newG1Wrapper(t, BreakCharacter)
	m := w.Measurer()

	for _, mode := range modes {
		for _, width := range widths {
			for _, text := range texts {
				res := w.Wrap(text, WrapOptions{
					MaxWidthPx:       width,
					MaxLines:         Unlimited,
					MaxBytes:         Unlimited,
					Mode:             mode,
					TrimLines:        true,
					PreserveNewlines: true,
				})
				for i, line := range res.Lines {
					if got := m.MeasureText(line); got > width {
						t.Errorf("%v width=%d line %d %q measures %dpx",
							mode, width, i, line, got)
					}
				}
			}
		}
	}
}

// TestWrap_LineCountInvariant tests lines ≤ maxLines for all budgets.
func TestWrap_LineCountInvariant(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	text := strings.Repeat("hello world ", 30)

	for n := 1; n <= 8; n++ {
		res := w.Wrap(text, WrapOptions{
			MaxWidthPx:       100,
			MaxLines:         n,
			MaxBytes:         Unlimited,
			TrimLines:        true,
			PreserveNewlines: true,
		})
		if len(res.Lines) > n {
			t.Errorf("maxLines=%d produced %d lines", n, len(res.Lines))
		}
		if !res.Truncated {
			t.Errorf("maxLines=%d should truncate this text", n)
		}
	}
}

// TestWrap_MaxBytes tests the byte budget: each line charges its UTF-8
// length plus one newline byte.
func TestWrap_MaxBytes(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	opts := WrapOptions{
		MaxWidthPx:       100,
		MaxLines:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	}

	// Wraps to ["hello","world","hello"]: 6 bytes charged per line.
	opts.MaxBytes = 18
	res := w.Wrap("hello world hello", opts)
	if len(res.Lines) != 3 || res.Truncated {
		t.Fatalf("18-byte budget: lines=%q truncated=%v, want 3 lines untruncated",
			res.Lines, res.Truncated)
	}
	if res.TotalBytes != 18 {
		t.Errorf("TotalBytes = %d, want 18", res.TotalBytes)
	}

	opts.MaxBytes = 17
	res = w.Wrap("hello world hello", opts)
	if len(res.Lines) != 2 || !res.Truncated {
		t.Errorf("17-byte budget: lines=%q truncated=%v, want 2 lines truncated",
			res.Lines, res.Truncated)
	}
}

// TestWrap_PreserveNewlines tests paragraph handling and the FromNewline
// marker.
func TestWrap_PreserveNewlines(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	opts := w.DefaultOptions()

	res := w.Wrap("ab\ncd", opts)
	if len(res.Lines) != 2 || res.Lines[0] != "ab" || res.Lines[1] != "cd" {
		t.Fatalf("Lines = %q, want [ab cd]", res.Lines)
	}
	if res.LineMetrics[0].FromNewline {
		t.Error("first line should not be marked FromNewline")
	}
	if !res.LineMetrics[1].FromNewline {
		t.Error("second paragraph's first line should be marked FromNewline")
	}

	opts.PreserveNewlines = false
	res = w.Wrap("ab\ncd", opts)
	if len(res.Lines) != 1 || res.Lines[0] != "ab cd" {
		t.Errorf("without PreserveNewlines: Lines = %q, want [\"ab cd\"]", res.Lines)
	}
}

// TestWrap_BlankParagraph tests that consecutive newlines keep their blank
// line.
func TestWrap_BlankParagraph(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)
	res := w.Wrap("ab\n\ncd", w.DefaultOptions())

	want := []string{"ab", "", "cd"}
	if len(res.Lines) != 3 {
		t.Fatalf("Lines = %q, want %q", res.Lines, want)
	}
	for i := range want {
		if res.Lines[i] != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, res.Lines[i], want[i])
		}
	}
}

// TestWrap_Utilization tests the rounded per-line utilization percent.
func TestWrap_Utilization(t *testing.T) {
	w := newG1Wrapper(t, BreakCharacter)
	res := w.Wrap("internationalization", WrapOptions{
		MaxWidthPx:       96,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	// "intern-" measures exactly 96px: 100% utilization.
	if got := res.LineMetrics[0].UtilizationPercent; got != 100 {
		t.Errorf("UtilizationPercent = %d, want 100", got)
	}
}

// TestNeedsWrap tests the fast single-line check.
func TestNeedsWrap(t *testing.T) {
	w := newG1Wrapper(t, BreakWord)

	tests := []struct {
		name       string
		text       string
		maxWidthPx int
		want       bool
	}{
		{"fits exactly", "Hi", 30, false},
		{"one px short", "Hi", 29, true},
		{"newline forces wrap", "a\nb", 1000, true},
		{"empty", "", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.NeedsWrap(tt.text, tt.maxWidthPx); got != tt.want {
				t.Errorf("NeedsWrap(%q, %d) = %v, want %v",
					tt.text, tt.maxWidthPx, got, tt.want)
			}
		})
	}
}

// TestWrap_ModeOverride tests per-call mode selection over the wrapper
// default.
func TestWrap_ModeOverride(t *testing.T) {
	w := newG1Wrapper(t, BreakStrictWord)
	res := w.Wrap("internationalization", WrapOptions{
		MaxWidthPx:       96,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		Mode:             BreakCharacter,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	if res.Mode != BreakCharacter {
		t.Errorf("Mode = %v, want BreakCharacter", res.Mode)
	}
	if !strings.HasSuffix(res.Lines[0], "-") {
		t.Errorf("override to character mode should hyphenate, got %q", res.Lines[0])
	}
}

// BenchmarkWrap_Character benchmarks the hyphenating character mode.
func BenchmarkWrap_Character(b *testing.B) {
	w := newG1Wrapper(b, BreakCharacter)
	opts := w.DefaultOptions()
	opts.MaxLines = Unlimited
	opts.MaxBytes = Unlimited
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Wrap(text, opts)
	}
}

// BenchmarkWrap_WordCJK benchmarks word mode over mixed CJK text.
func BenchmarkWrap_WordCJK(b *testing.B) {
	w := newG1Wrapper(b, BreakWord)
	opts := w.DefaultOptions()
	opts.MaxLines = Unlimited
	opts.MaxBytes = Unlimited
	text := strings.Repeat("中文テキスト mixed with English words ", 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Wrap(text, opts)
	}
}
