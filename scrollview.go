package textwall

// Align positions a target line within the viewport for ScrollToLine.
type Align uint8

const (
	// AlignTop puts the target line at the top of the viewport.
	AlignTop Align = iota
	// AlignCenter centers the target line.
	AlignCenter
	// AlignBottom puts the target line at the bottom.
	AlignBottom
)

// ScrollView is a continuous viewport over wrapped content, distinct from
// pagination: it holds the full wrapped line list (wrapped with no line
// cap) and a clamped scroll offset.
//
// Appending while the view sits at the bottom keeps it pinned there, which
// is what streaming captions need; any explicit upward scroll releases the
// pin until the user returns to the bottom.
type ScrollView struct {
	w            *Wrapper
	viewportSize int
	maxWidthPx   int

	content string
	lines   []string
	offset  int
}

// NewScrollView creates a viewport of viewportSize rows over content
// wrapped at maxWidthPx (0 means the profile's display width) under the
// given break mode.
func NewScrollView(m *Measurer, viewportSize, maxWidthPx int, mode BreakMode) *ScrollView {
	if viewportSize <= 0 {
		viewportSize = m.Profile().MaxLines
	}
	if maxWidthPx <= 0 {
		maxWidthPx = m.Profile().DisplayWidthPx
	}
	return &ScrollView{
		w:            NewWrapper(m, mode),
		viewportSize: viewportSize,
		maxWidthPx:   maxWidthPx,
	}
}

// SetContent replaces the content, re-wraps it, and scrolls to the top.
func (v *ScrollView) SetContent(text string) {
	v.content = text
	v.rewrap()
	v.offset = 0
}

// AppendContent appends text, re-wraps, and auto-scrolls to the bottom if
// the viewport was already at the bottom before the append.
func (v *ScrollView) AppendContent(text string) {
	follow := v.IsAtBottom()
	v.content += text
	v.rewrap()
	if follow {
		v.offset = v.maxOffset()
	} else {
		v.offset = v.clamp(v.offset)
	}
}

// rewrap rebuilds the full line list with no line or byte cap.
func (v *ScrollView) rewrap() {
	res := v.w.Wrap(v.content, WrapOptions{
		MaxWidthPx:       v.maxWidthPx,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})
	v.lines = res.Lines
}

// Viewport returns exactly viewportSize lines starting at the scroll
// offset, padded with empty strings when content is shorter.
func (v *ScrollView) Viewport() []string {
	out := make([]string, v.viewportSize)
	for i := 0; i < v.viewportSize; i++ {
		if idx := v.offset + i; idx < len(v.lines) {
			out[i] = v.lines[idx]
		}
	}
	return out
}

// Offset returns the current scroll offset in lines.
func (v *ScrollView) Offset() int { return v.offset }

// TotalLines returns the number of wrapped content lines.
func (v *ScrollView) TotalLines() int { return len(v.lines) }

// ViewportSize returns the viewport height in lines.
func (v *ScrollView) ViewportSize() int { return v.viewportSize }

// IsAtTop reports whether the viewport shows the first line.
func (v *ScrollView) IsAtTop() bool { return v.offset == 0 }

// IsAtBottom reports whether the viewport shows the last line.
func (v *ScrollView) IsAtBottom() bool { return v.offset >= v.maxOffset() }

// ScrollPercent returns the offset as a percentage of the scrollable
// range: 0 at the top, 100 at the bottom, 100 when nothing scrolls.
func (v *ScrollView) ScrollPercent() int {
	m := v.maxOffset()
	if m == 0 {
		return 100
	}
	return v.offset * 100 / m
}

// ScrollTo sets the offset, clamped to the scrollable range.
func (v *ScrollView) ScrollTo(offset int) { v.offset = v.clamp(offset) }

// ScrollUp moves the viewport up by n lines.
func (v *ScrollView) ScrollUp(n int) { v.offset = v.clamp(v.offset - n) }

// ScrollDown moves the viewport down by n lines.
func (v *ScrollView) ScrollDown(n int) { v.offset = v.clamp(v.offset + n) }

// PageUp moves up by one viewport height.
func (v *ScrollView) PageUp() { v.ScrollUp(v.viewportSize) }

// PageDown moves down by one viewport height.
func (v *ScrollView) PageDown() { v.ScrollDown(v.viewportSize) }

// ScrollToTop jumps to the first line.
func (v *ScrollView) ScrollToTop() { v.offset = 0 }

// ScrollToBottom jumps so the last line is visible.
func (v *ScrollView) ScrollToBottom() { v.offset = v.maxOffset() }

// ScrollToPercent scrolls to a position in the scrollable range,
// 0 through 100.
func (v *ScrollView) ScrollToPercent(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	v.offset = v.clamp(v.maxOffset() * percent / 100)
}

// ScrollToLine scrolls so line index is visible at the requested viewport
// position.
func (v *ScrollView) ScrollToLine(index int, align Align) {
	switch align {
	case AlignCenter:
		v.offset = v.clamp(index - v.viewportSize/2)
	case AlignBottom:
		v.offset = v.clamp(index - v.viewportSize + 1)
	default:
		v.offset = v.clamp(index)
	}
}

// maxOffset is the largest valid scroll offset.
func (v *ScrollView) maxOffset() int {
	m := len(v.lines) - v.viewportSize
	if m < 0 {
		return 0
	}
	return m
}

// clamp bounds an offset to [0, maxOffset].
func (v *ScrollView) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if m := v.maxOffset(); offset > m {
		return m
	}
	return offset
}
