package textwall

import "strings"

// TruncateResult is the outcome of TruncateWithEllipsis.
type TruncateResult struct {
	// Text is the possibly truncated output.
	Text string
	// Truncated is true when characters were removed.
	Truncated bool
	// OriginalLen and ResultLen count characters, not bytes.
	OriginalLen int
	ResultLen   int
}

// TruncateWithEllipsis shortens text to fit maxWidthPx on one line,
// appending ellipsis when anything was cut. Trailing whitespace before the
// ellipsis is trimmed so the marker hugs the content. maxWidthPx 0 means
// the profile's display width; ellipsis "" means "...".
func TruncateWithEllipsis(m *Measurer, text string, maxWidthPx int, ellipsis string) TruncateResult {
	if maxWidthPx <= 0 {
		maxWidthPx = m.Profile().DisplayWidthPx
	}
	if ellipsis == "" {
		ellipsis = "..."
	}

	runes := []rune(text)
	if m.FitsInWidth(text, maxWidthPx) {
		return TruncateResult{
			Text:        text,
			OriginalLen: len(runes),
			ResultLen:   len(runes),
		}
	}

	budget := maxWidthPx - m.MeasureText(ellipsis)
	kept := make([]rune, 0, len(runes))
	widthSoFar := 0
	for _, r := range runes {
		w := m.MeasureChar(r)
		if widthSoFar+w > budget {
			break
		}
		widthSoFar += w
		kept = append(kept, r)
	}

	out := strings.TrimRight(string(kept), " \t")
	return TruncateResult{
		Text:        out + ellipsis,
		Truncated:   true,
		OriginalLen: len(runes),
		ResultLen:   len([]rune(out)) + len([]rune(ellipsis)),
	}
}

// EstimateLineCount approximates how many display lines text will occupy
// without running the wrapper: total width divided by line width, rounded
// up, plus one extra line per explicit newline. Useful for UI budgeting;
// the real wrapper may differ slightly at break boundaries.
func EstimateLineCount(m *Measurer, text string, maxWidthPx int) int {
	if maxWidthPx <= 0 {
		maxWidthPx = m.Profile().DisplayWidthPx
	}
	if text == "" {
		return 1
	}

	count := 0
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			count++
			continue
		}
		count += ceilDiv(m.MeasureText(para), maxWidthPx)
	}
	return count
}

// Page is one fixed-size slice of wrapped lines.
type Page struct {
	Lines   []string
	Number  int // 1-based
	Total   int
	IsFirst bool
	IsLast  bool
}

// PaginateOptions controls Paginate. Zero-valued fields derive from the
// profile: LinesPerPage from MaxLines, MaxWidthPx from the display width,
// Mode from BreakWord.
type PaginateOptions struct {
	LinesPerPage int
	MaxWidthPx   int
	Mode         BreakMode
}

// Paginate wraps text without a line cap and slices the full line list
// into fixed-size pages. Empty input yields exactly one empty page.
func Paginate(m *Measurer, text string, opts PaginateOptions) []Page {
	profile := m.Profile()
	if opts.LinesPerPage <= 0 {
		opts.LinesPerPage = profile.MaxLines
	}
	if opts.MaxWidthPx <= 0 {
		opts.MaxWidthPx = profile.DisplayWidthPx
	}
	mode := opts.Mode
	if mode == BreakDefault {
		mode = BreakWord
	}

	w := NewWrapper(m, mode)
	res := w.Wrap(text, WrapOptions{
		MaxWidthPx:       opts.MaxWidthPx,
		MaxLines:         Unlimited,
		MaxBytes:         Unlimited,
		TrimLines:        true,
		PreserveNewlines: true,
	})

	lines := res.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}

	total := ceilDiv(len(lines), opts.LinesPerPage)
	pages := make([]Page, 0, total)
	for start := 0; start < len(lines); start += opts.LinesPerPage {
		end := start + opts.LinesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		n := len(pages) + 1
		pages = append(pages, Page{
			Lines:   lines[start:end],
			Number:  n,
			Total:   total,
			IsFirst: n == 1,
			IsLast:  n == total,
		})
	}
	return pages
}

// UtilizationStats aggregates line-fill statistics over a wrap result.
type UtilizationStats struct {
	// MinPercent, AvgPercent, MaxPercent summarize per-line utilization.
	MinPercent int
	AvgPercent int
	MaxPercent int
	// WastedPx is the total unused width across all lines.
	WastedPx int
}

// CalculateUtilization summarizes how well a wrap result fills its width
// budget. Returns zeroes for a result with no line metrics.
func CalculateUtilization(res WrapResult, maxWidthPx int) UtilizationStats {
	if len(res.LineMetrics) == 0 {
		return UtilizationStats{}
	}

	stats := UtilizationStats{MinPercent: res.LineMetrics[0].UtilizationPercent}
	sum := 0
	for _, lm := range res.LineMetrics {
		if lm.UtilizationPercent < stats.MinPercent {
			stats.MinPercent = lm.UtilizationPercent
		}
		if lm.UtilizationPercent > stats.MaxPercent {
			stats.MaxPercent = lm.UtilizationPercent
		}
		sum += lm.UtilizationPercent
		if maxWidthPx > lm.WidthPx {
			stats.WastedPx += maxWidthPx - lm.WidthPx
		}
	}
	stats.AvgPercent = sum / len(res.LineMetrics)
	return stats
}
