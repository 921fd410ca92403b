package textwall

import "strings"

// ColumnConfig describes dual-column geometry. Zero-valued fields derive
// from the profile: left column half the display wide, right column
// starting at 55% of the display width.
type ColumnConfig struct {
	// LeftWidthPx is the left column's wrap width.
	LeftWidthPx int

	// RightStartPx is the pixel position where the right column begins,
	// measured from line start.
	RightStartPx int

	// RightWidthPx is the right column's wrap width.
	RightWidthPx int

	// MaxLines caps the merged output. 0 means the profile's line budget.
	MaxLines int

	// LeftMarginPx shifts the left column right by a fixed pixel amount,
	// padded with spaces.
	LeftMarginPx int
}

// ComposeResult is the merged dual-column output. The per-column line
// arrays are retained for debugging; the host renders ComposedText.
type ComposeResult struct {
	// ComposedText is the newline-joined merged output, ready for native
	// line splitting.
	ComposedText string

	// LeftLines and RightLines are the independently wrapped columns,
	// each padded to the line budget.
	LeftLines  []string
	RightLines []string
}

// maxPadSpaces caps per-row alignment padding so a mismeasured line can
// never emit a runaway run of spaces.
const maxPadSpaces = 100

// Composer merges two independently wrapped text streams into a single
// dual-column string with pixel-exact alignment. A fixed-character pad
// cannot align columns under a proportional font; the composer instead
// measures the left text of every row and pads with however many spaces
// reach the right column's pixel position.
type Composer struct {
	m       *Measurer
	w       *Wrapper
	profile *DisplayProfile
}

// NewComposer creates a composer sharing the measurer's cache.
func NewComposer(m *Measurer) *Composer {
	return &Composer{
		m:       m,
		w:       NewWrapper(m, BreakWord),
		profile: m.Profile(),
	}
}

// defaultColumnConfig fills zero-valued geometry from the profile.
func (c *Composer) defaultColumnConfig(cfg *ColumnConfig) ColumnConfig {
	out := ColumnConfig{}
	if cfg != nil {
		out = *cfg
	}
	if out.LeftWidthPx <= 0 {
		out.LeftWidthPx = c.profile.DisplayWidthPx / 2
	}
	if out.RightStartPx <= 0 {
		// ceil(width * 55 / 100)
		out.RightStartPx = (c.profile.DisplayWidthPx*55 + 99) / 100
	}
	if out.RightWidthPx <= 0 {
		out.RightWidthPx = c.profile.DisplayWidthPx - out.RightStartPx
	}
	if out.MaxLines <= 0 {
		out.MaxLines = c.profile.MaxLines
	}
	return out
}

// ComposeDoubleTextWall wraps leftText and rightText independently and
// merges them row by row into one string. Each side wraps within its own
// width and line budget; rows are padded with ASCII spaces so the right
// column always starts at or after RightStartPx, identically on every call.
func (c *Composer) ComposeDoubleTextWall(leftText, rightText string, cfg *ColumnConfig) ComposeResult {
	conf := c.defaultColumnConfig(cfg)

	left := c.wrapColumn(leftText, conf.LeftWidthPx, conf.MaxLines)
	right := c.wrapColumn(rightText, conf.RightWidthPx, conf.MaxLines)

	spaceWidth := c.m.spaceWidth()
	margin := ""
	if conf.LeftMarginPx > 0 && spaceWidth > 0 {
		margin = strings.Repeat(" ", ceilDiv(conf.LeftMarginPx, spaceWidth))
	}

	rows := make([]string, conf.MaxLines)
	for i := 0; i < conf.MaxLines; i++ {
		l := margin + left[i]
		r := right[i]
		if r == "" {
			rows[i] = l
			continue
		}
		pad := c.padToColumn(l, conf.RightStartPx, spaceWidth)
		rows[i] = l + pad + r
	}

	return ComposeResult{
		ComposedText: strings.Join(rows, "\n"),
		LeftLines:    left,
		RightLines:   right,
	}
}

// wrapColumn wraps one side and pads its line array to exactly maxLines
// entries. Stray en-space artifacts left over from wrapping are stripped so
// they cannot distort the row's measured width.
func (c *Composer) wrapColumn(text string, widthPx, maxLines int) []string {
	res := c.w.Wrap(text, WrapOptions{
		MaxWidthPx:       widthPx,
		MaxLines:         maxLines,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	lines := make([]string, maxLines)
	for i := 0; i < maxLines; i++ {
		if i < len(res.Lines) {
			lines[i] = strings.ReplaceAll(res.Lines[i], "\u2002", "")
		}
	}
	return lines
}

// padToColumn returns the ASCII space run that moves the cursor from the
// end of leftLine to targetPx: ceil((target-current)/spaceWidth) spaces,
// at least one so columns never touch, capped at maxPadSpaces.
func (c *Composer) padToColumn(leftLine string, targetPx, spaceWidth int) string {
	current := c.m.MeasureText(leftLine)
	spaces := 1
	if spaceWidth > 0 && targetPx > current {
		spaces = ceilDiv(targetPx-current, spaceWidth)
		if spaces < 1 {
			spaces = 1
		}
	}
	if spaces > maxPadSpaces {
		spaces = maxPadSpaces
	}
	return strings.Repeat(" ", spaces)
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int { return (a + b - 1) / b }
