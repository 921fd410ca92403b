package textwall

import (
	"sync"
	"sync/atomic"

	"golang.org/x/text/width"
)

// Measurer converts text into exact rendered pixel widths for one display
// profile. Results are memoized per character; the cache is owned by the
// instance so multiple profiles can coexist in a process.
//
// Measurer is safe for concurrent use. The cache is the only mutable state
// and its writes are idempotent: a width, once computed, never changes.
type Measurer struct {
	profile *DisplayProfile

	mu    sync.Mutex
	cache map[rune]int

	stats MeasureStats
}

// MeasureStats holds cache counters for diagnostics.
type MeasureStats struct {
	Hits   atomic.Uint64
	Misses atomic.Uint64
}

// NewMeasurer creates a measurer for the given profile. The width cache is
// pre-populated from the profile's glyph table, so table characters never
// take the miss path. Returns an error if the profile fails validation.
func NewMeasurer(profile *DisplayProfile) (*Measurer, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	cache := make(map[rune]int, len(profile.Metrics.GlyphWidths)+64)
	for r, units := range profile.Metrics.GlyphWidths {
		cache[r] = profile.Metrics.Render(units)
	}

	return &Measurer{
		profile: profile,
		cache:   cache,
	}, nil
}

// Profile returns the display profile this measurer was built for.
func (m *Measurer) Profile() *DisplayProfile { return m.profile }

// MeasureChar returns the exact rendered pixel width of a single character.
//
// Resolution order: the glyph table (through the render formula), then the
// exact uniform width of the character's script, then the widest known
// Latin glyph. The fallback guarantees the engine never under-estimates a
// width, so it can cause under-filled lines but never a visual overflow.
func (m *Measurer) MeasureChar(r rune) int {
	m.mu.Lock()
	if w, ok := m.cache[r]; ok {
		m.mu.Unlock()
		m.stats.Hits.Add(1)
		return w
	}
	m.mu.Unlock()

	w := m.resolveWidth(r)

	m.mu.Lock()
	m.cache[r] = w
	m.mu.Unlock()
	m.stats.Misses.Add(1)
	return w
}

// resolveWidth computes the width of a character absent from the cache.
func (m *Measurer) resolveWidth(r rune) int {
	script := DetectScript(r)
	if script.Uniform() {
		if w := m.profile.uniformWidth(script); w > 0 {
			return w
		}
	}

	// Fullwidth and wide forms outside the uniform scripts (fullwidth
	// Latin, fullwidth digits, ideographic punctuation) occupy the CJK
	// cell on the display grid. Emoji are excluded: Unicode tags them
	// wide, but the displays substitute them, so they take the fallback.
	if script != ScriptEmoji {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			if w := m.profile.Metrics.Uniform.CJK; w > 0 {
				return w
			}
		}
	}

	return m.profile.Metrics.LatinMaxWidth
}

// MeasureText returns the total rendered pixel width of s. Widths are
// additive per character; the device fonts have no kerning.
func (m *Measurer) MeasureText(s string) int {
	total := 0
	for _, r := range s {
		total += m.MeasureChar(r)
	}
	return total
}

// CharsThatFit returns how many characters of s, starting at rune index
// start, fit within maxWidthPx.
func (m *Measurer) CharsThatFit(s string, maxWidthPx, start int) int {
	if maxWidthPx <= 0 {
		return 0
	}
	count := 0
	idx := 0
	widthSoFar := 0
	for _, r := range s {
		if idx < start {
			idx++
			continue
		}
		w := m.MeasureChar(r)
		if widthSoFar+w > maxWidthPx {
			break
		}
		widthSoFar += w
		count++
	}
	return count
}

// FitsInWidth reports whether s fits within maxWidthPx as a single line.
func (m *Measurer) FitsInWidth(s string, maxWidthPx int) bool {
	widthSoFar := 0
	for _, r := range s {
		widthSoFar += m.MeasureChar(r)
		if widthSoFar > maxWidthPx {
			return false
		}
	}
	return true
}

// ByteSize returns the UTF-8 encoded length of s in bytes.
func (m *Measurer) ByteSize(s string) int { return len(s) }

// ClearCache discards all memoized widths and re-seeds the cache from the
// profile's glyph table. Callers never need this for correctness; it exists
// to bound memory after measuring pathological input.
func (m *Measurer) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[rune]int, len(m.profile.Metrics.GlyphWidths)+64)
	for r, units := range m.profile.Metrics.GlyphWidths {
		m.cache[r] = m.profile.Metrics.Render(units)
	}
}

// CacheStats returns the cumulative cache hit and miss counts.
func (m *Measurer) CacheStats() (hits, misses uint64) {
	return m.stats.Hits.Load(), m.stats.Misses.Load()
}

// spaceWidth returns the rendered width of an ASCII space.
func (m *Measurer) spaceWidth() int { return m.MeasureChar(' ') }
