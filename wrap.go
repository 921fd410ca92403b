package textwall

import (
	"strings"
)

// LineMetrics describes one emitted display line.
type LineMetrics struct {
	// Text is the line content.
	Text string
	// WidthPx is the measured rendered width.
	WidthPx int
	// Bytes is the UTF-8 length of Text.
	Bytes int
	// UtilizationPercent is WidthPx relative to the width budget,
	// rounded to the nearest percent.
	UtilizationPercent int
	// EndsWithHyphen is true when the wrapper inserted a trailing hyphen.
	EndsWithHyphen bool
	// FromNewline is true when the line starts a paragraph that followed
	// an explicit newline in the input.
	FromNewline bool
}

// WrapResult is the outcome of one Wrap call.
type WrapResult struct {
	// Lines holds the display lines in order, one per display row.
	Lines []string
	// Truncated is true when the line or byte budget cut content off.
	Truncated bool
	// MaxLineWidthPx is the widest measured line.
	MaxLineWidthPx int
	// TotalBytes is the payload size: each line's UTF-8 length plus one
	// newline byte.
	TotalBytes int
	// LineMetrics holds per-line measurements parallel to Lines.
	LineMetrics []LineMetrics
	// OriginalText is the input text, kept for callers that re-wrap.
	OriginalText string
	// Mode is the break mode that produced this result.
	Mode BreakMode
}

// wrappedLine is an internal line before metrics are attached.
type wrappedLine struct {
	text        string
	hyphenated  bool
	fromNewline bool
}

// Wrapper turns arbitrary text into display lines honoring width, line, and
// byte budgets under a selectable break policy.
//
// A Wrapper is stateless apart from the shared measurer cache; it is cheap
// to construct and safe to reuse concurrently. The break mode is an
// immutable value: to wrap with a different policy, pass a Mode override in
// WrapOptions or create another Wrapper.
type Wrapper struct {
	m       *Measurer
	profile *DisplayProfile
	mode    BreakMode
}

// NewWrapper creates a wrapper using the measurer's profile for defaults.
// mode is the break policy used when WrapOptions leaves Mode unset;
// BreakDefault selects BreakCharacter.
func NewWrapper(m *Measurer, mode BreakMode) *Wrapper {
	if mode == BreakDefault {
		mode = BreakCharacter
	}
	return &Wrapper{m: m, profile: m.Profile(), mode: mode}
}

// Measurer returns the measurer this wrapper shares.
func (w *Wrapper) Measurer() *Measurer { return w.m }

// DefaultOptions returns the profile's wrap defaults: full display width,
// the profile's line and byte budgets, the wrapper's break mode, trimmed
// lines, and preserved newlines.
func (w *Wrapper) DefaultOptions() WrapOptions {
	return WrapOptions{
		MaxWidthPx:           w.profile.DisplayWidthPx,
		MaxLines:             w.profile.MaxLines,
		MaxBytes:             w.profile.MaxPayloadBytes,
		Mode:                 w.mode,
		HyphenChar:           w.profile.Constraints.HyphenChar,
		MinCharsBeforeHyphen: w.profile.Constraints.MinCharsBeforeHyphen,
		TrimLines:            true,
		PreserveNewlines:     true,
	}
}

// fillDefaults patches zero-valued numeric fields from the profile.
func (w *Wrapper) fillDefaults(opts WrapOptions) WrapOptions {
	if opts.MaxWidthPx <= 0 {
		opts.MaxWidthPx = w.profile.DisplayWidthPx
	}
	if opts.MaxLines == 0 {
		opts.MaxLines = w.profile.MaxLines
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = w.profile.MaxPayloadBytes
	}
	if opts.Mode == BreakDefault {
		opts.Mode = w.mode
	}
	if opts.HyphenChar == 0 {
		opts.HyphenChar = w.profile.Constraints.HyphenChar
		if opts.HyphenChar == 0 {
			opts.HyphenChar = '-'
		}
	}
	if opts.MinCharsBeforeHyphen <= 0 {
		opts.MinCharsBeforeHyphen = w.profile.Constraints.MinCharsBeforeHyphen
		if opts.MinCharsBeforeHyphen <= 0 {
			opts.MinCharsBeforeHyphen = 2
		}
	}
	return opts
}

// NeedsWrap reports whether text needs the full wrapper at all: it is a
// fast single-line check so callers can skip Wrap for short content.
// maxWidthPx 0 means the profile's display width.
func (w *Wrapper) NeedsWrap(text string, maxWidthPx int) bool {
	if maxWidthPx <= 0 {
		maxWidthPx = w.profile.DisplayWidthPx
	}
	if strings.ContainsRune(text, '\n') {
		return true
	}
	return !w.m.FitsInWidth(text, maxWidthPx)
}

// Wrap turns text into an ordered sequence of display lines.
//
// Paragraphs (split on \n when PreserveNewlines is set) wrap independently
// under the selected break mode; lines accumulate until the line or byte
// budget is hit, which sets Truncated. Empty input yields a single empty
// line with zeroed metrics.
func (w *Wrapper) Wrap(text string, opts WrapOptions) WrapResult {
	opts = w.fillDefaults(opts)

	if text == "" {
		return WrapResult{
			Lines:       []string{""},
			LineMetrics: []LineMetrics{{}},
			Mode:        opts.Mode,
		}
	}

	// Short-circuit: already a single fitting line.
	if !strings.ContainsRune(text, '\n') &&
		w.m.FitsInWidth(text, opts.MaxWidthPx) &&
		(opts.MaxBytes < 0 || len(text)+1 <= opts.MaxBytes) &&
		(opts.MaxLines < 0 || opts.MaxLines >= 1) {
		line := text
		if opts.TrimLines {
			line = strings.TrimRight(line, " \t")
		}
		return w.buildResult(text, []wrappedLine{{text: line}}, false, opts)
	}

	var paragraphs []string
	if opts.PreserveNewlines {
		paragraphs = strings.Split(text, "\n")
	} else {
		paragraphs = []string{strings.ReplaceAll(text, "\n", " ")}
	}

	var lines []wrappedLine
	truncated := false
	bytesUsed := 0

outer:
	for pi, para := range paragraphs {
		paraLines := w.wrapParagraph(para, opts)
		if pi > 0 && len(paraLines) > 0 {
			paraLines[0].fromNewline = true
		}
		for _, ln := range paraLines {
			if opts.MaxLines >= 0 && len(lines) >= opts.MaxLines {
				truncated = true
				break outer
			}
			cost := len(ln.text) + 1 // trailing newline byte on the wire
			if opts.MaxBytes >= 0 && bytesUsed+cost > opts.MaxBytes {
				truncated = true
				break outer
			}
			bytesUsed += cost
			lines = append(lines, ln)
		}
	}

	if truncated {
		Logger().Debug("wrap truncated",
			"mode", opts.Mode.String(),
			"lines", len(lines),
			"maxLines", opts.MaxLines,
			"bytes", bytesUsed,
			"maxBytes", opts.MaxBytes)
	}

	return w.buildResult(text, lines, truncated, opts)
}

// wrapParagraph wraps one paragraph (no hard line breaks) per break mode.
func (w *Wrapper) wrapParagraph(para string, opts WrapOptions) []wrappedLine {
	switch opts.Mode {
	case BreakCharacterNoHyphen:
		return w.wrapCharacter(para, opts, false)
	case BreakWord:
		return w.wrapWord(para, opts, false)
	case BreakStrictWord:
		return w.wrapWord(para, opts, true)
	default:
		return w.wrapCharacter(para, opts, true)
	}
}

// buildResult attaches per-line metrics and aggregates.
func (w *Wrapper) buildResult(original string, lines []wrappedLine, truncated bool, opts WrapOptions) WrapResult {
	res := WrapResult{
		Lines:        make([]string, len(lines)),
		LineMetrics:  make([]LineMetrics, len(lines)),
		Truncated:    truncated,
		OriginalText: original,
		Mode:         opts.Mode,
	}
	for i, ln := range lines {
		widthPx := w.m.MeasureText(ln.text)
		util := 0
		if opts.MaxWidthPx > 0 {
			util = (widthPx*100 + opts.MaxWidthPx/2) / opts.MaxWidthPx
		}
		res.Lines[i] = ln.text
		res.LineMetrics[i] = LineMetrics{
			Text:               ln.text,
			WidthPx:            widthPx,
			Bytes:              len(ln.text),
			UtilizationPercent: util,
			EndsWithHyphen:     ln.hyphenated,
			FromNewline:        ln.fromNewline,
		}
		if widthPx > res.MaxLineWidthPx {
			res.MaxLineWidthPx = widthPx
		}
		res.TotalBytes += len(ln.text) + 1
	}
	if len(lines) == 0 {
		res.TotalBytes = 0
	}
	return res
}

// wrapCharacter implements the character break modes: accumulate characters
// until the next one would overflow, then decide how to break. With hyphens
// enabled, a mid-word break inserts the hyphen character, backing off
// characters until it fits; uncovering a space during backoff means a
// natural word boundary was found and the line is emitted without a hyphen.
func (w *Wrapper) wrapCharacter(para string, opts WrapOptions, withHyphen bool) []wrappedLine {
	runes := []rune(para)
	if len(runes) == 0 {
		return []wrappedLine{{}}
	}

	hyphenWidth := w.m.MeasureChar(opts.HyphenChar)
	var lines []wrappedLine

	i := 0
	for i < len(runes) {
		line := make([]rune, 0, 32)
		lineWidth := 0
		hyphenated := false

		for i < len(runes) {
			r := runes[i]
			rw := w.m.MeasureChar(r)

			// A line always carries at least one character so a width
			// narrower than a single glyph cannot stall the wrapper.
			if lineWidth+rw <= opts.MaxWidthPx || len(line) == 0 {
				line = append(line, r)
				lineWidth += rw
				i++
				continue
			}

			// Overflow: break before r.
			last := line[len(line)-1]

			if !withHyphen || !NeedsHyphenForBreak(last, r) {
				line, i = w.applyKinsoku(runes, line, i)
				break
			}

			// Mid-word break: a visible hyphen is required. Back off
			// until the hyphen fits or a space is uncovered.
			line, lineWidth, i, hyphenated = w.backOffForHyphen(
				line, lineWidth, i, hyphenWidth, opts)
			break
		}

		text := string(line)
		if opts.TrimLines {
			text = strings.TrimRight(text, " \t")
		}
		lines = append(lines, wrappedLine{text: text, hyphenated: hyphenated})

		// A wrapped line never carries its break space forward.
		for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
			i++
		}
	}

	return lines
}

// applyKinsoku pulls characters back from the end of line when the break
// would strand prohibited punctuation: a line may not end with an opening
// bracket and the next line may not start with closing punctuation.
// Returns the adjusted line and resume index.
func (w *Wrapper) applyKinsoku(runes []rune, line []rune, i int) ([]rune, int) {
	for len(line) >= 2 {
		next := runes[i]
		last := line[len(line)-1]
		if !w.profile.noBreakBefore(next) && !w.profile.noBreakAfter(last) {
			break
		}
		line = line[:len(line)-1]
		i--
	}
	return line, i
}

// backOffForHyphen removes trailing characters until line plus a hyphen
// fits within the width budget. Reaching a space mid-backoff means a
// natural word boundary was exposed: the line is emitted without a hyphen
// and wrapping resumes after the space. Characters removed during backoff
// return to the stream, so the resume index moves with them.
func (w *Wrapper) backOffForHyphen(line []rune, lineWidth, i, hyphenWidth int, opts WrapOptions) ([]rune, int, int, bool) {
	origLine, origWidth, origI := line, lineWidth, i
	for {
		if lineWidth+hyphenWidth <= opts.MaxWidthPx && len(line) >= opts.MinCharsBeforeHyphen {
			line = append(line, opts.HyphenChar)
			return line, lineWidth + hyphenWidth, i, true
		}
		if len(line) <= 1 {
			// Backoff found neither a hyphen fit nor a space: restore
			// the full line and break bare at the overflow point.
			return origLine, origWidth, origI, false
		}
		popped := line[len(line)-1]
		line = line[:len(line)-1]
		lineWidth -= w.m.MeasureChar(popped)
		i-- // popped character returns to the stream

		if line[len(line)-1] == ' ' {
			// Natural word boundary uncovered: never hyphenate across
			// a space the backoff just exposed.
			line = line[:len(line)-1]
			lineWidth -= w.m.MeasureChar(' ')
			return line, lineWidth, i, false
		}
	}
}

// token is one unbreakable unit in word mode. Each free-breaking character
// (CJK, kana) forms its own token so East Asian text wraps anywhere.
type token struct {
	text         string
	width        int
	followsSpace bool
}

// tokenize splits a paragraph into word-mode tokens.
func (w *Wrapper) tokenize(para string) []token {
	var toks []token
	var word []rune
	wordWidth := 0
	pendingSpace := false

	flush := func() {
		if len(word) > 0 {
			toks = append(toks, token{
				text:         string(word),
				width:        wordWidth,
				followsSpace: pendingSpace,
			})
			word = word[:0]
			wordWidth = 0
			pendingSpace = false
		}
	}

	for _, r := range para {
		switch {
		case r == ' ' || r == '\t':
			flush()
			pendingSpace = true
		case DetectScript(r).BreaksFreely():
			flush()
			toks = append(toks, token{
				text:         string(r),
				width:        w.m.MeasureChar(r),
				followsSpace: pendingSpace,
			})
			pendingSpace = false
		default:
			word = append(word, r)
			wordWidth += w.m.MeasureChar(r)
		}
	}
	flush()
	return toks
}

// wrapWord implements word and strict-word modes: greedy token packing with
// a single inter-word space charged between spaced tokens. An over-wide
// token is hyphenated internally with the character-mode backoff, or in
// strict mode placed alone and allowed to overflow.
func (w *Wrapper) wrapWord(para string, opts WrapOptions, strict bool) []wrappedLine {
	toks := w.tokenize(para)
	if len(toks) == 0 {
		return []wrappedLine{{}}
	}

	spaceWidth := w.m.spaceWidth()
	var lines []wrappedLine
	var cur strings.Builder
	curWidth := 0

	flush := func(hyphenated bool) {
		lines = append(lines, wrappedLine{text: cur.String(), hyphenated: hyphenated})
		cur.Reset()
		curWidth = 0
	}

	for _, tok := range toks {
		joinWidth := 0
		if cur.Len() > 0 && tok.followsSpace {
			joinWidth = spaceWidth
		}

		if curWidth+joinWidth+tok.width <= opts.MaxWidthPx {
			if joinWidth > 0 {
				cur.WriteByte(' ')
			}
			cur.WriteString(tok.text)
			curWidth += joinWidth + tok.width
			continue
		}

		if tok.width > opts.MaxWidthPx {
			if cur.Len() > 0 {
				flush(false)
			}
			if strict {
				// Deliberate overflow: the policy trades clipping for
				// never splitting a word.
				cur.WriteString(tok.text)
				curWidth = tok.width
				continue
			}
			pieces := w.wrapCharacter(tok.text, opts, true)
			for _, p := range pieces[:len(pieces)-1] {
				lines = append(lines, p)
			}
			tail := pieces[len(pieces)-1]
			cur.WriteString(tail.text)
			curWidth = w.m.MeasureText(tail.text)
			continue
		}

		flush(false)
		cur.WriteString(tok.text)
		curWidth = tok.width
	}

	if cur.Len() > 0 || len(lines) == 0 {
		flush(false)
	}
	return lines
}
