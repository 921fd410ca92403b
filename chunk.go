package textwall

import "unicode/utf8"

// Chunk is a byte-bounded slice of a larger string, cut only at UTF-8-safe
// boundaries and ready for sequential BLE transmission.
type Chunk struct {
	Text  string
	Index int // 0-based position in the sequence
	Total int // total chunks in the sequence
	Bytes int // UTF-8 length of Text
}

// SplitIntoChunks cuts text into chunks of at most chunkSize bytes.
// chunkSize 0 means the profile's BLE chunk size.
//
// Each cut backs off from the size boundary to the nearest UTF-8 lead byte
// so no chunk splits a multi-byte character, then prefers the last space or
// newline within the back half of the window so chunks tend to break at
// word boundaries. A window with no whitespace (a long URL, base64 run)
// falls back to the hard UTF-8-safe cut.
func SplitIntoChunks(m *Measurer, text string, chunkSize int) []Chunk {
	if chunkSize <= 0 {
		chunkSize = m.Profile().BLEChunkSize
	}

	data := []byte(text)
	if len(data) <= chunkSize {
		return []Chunk{{Text: text, Index: 0, Total: 1, Bytes: len(data)}}
	}

	var parts []string
	start := 0
	for start < len(data) {
		remaining := len(data) - start
		if remaining <= chunkSize {
			parts = append(parts, string(data[start:]))
			break
		}

		cut := start + chunkSize

		// Back off to a UTF-8 lead byte so no rune is split.
		for cut > start && !utf8.RuneStart(data[cut]) {
			cut--
		}
		if cut == start {
			// chunkSize smaller than one rune; emit the rune whole
			// rather than stall.
			_, size := utf8.DecodeRune(data[start:])
			cut = start + size
		}

		// Prefer whitespace within the back half of the window.
		if ws := lastWhitespace(data, start+chunkSize/2, cut); ws > start {
			cut = ws + 1 // keep the space with the leading chunk
		} else {
			Logger().Debug("chunk hard cut",
				"offset", cut,
				"chunkSize", chunkSize)
		}

		parts = append(parts, string(data[start:cut]))
		start = cut
	}

	chunks := make([]Chunk, len(parts))
	for i, p := range parts {
		chunks[i] = Chunk{Text: p, Index: i, Total: len(parts), Bytes: len(p)}
	}
	return chunks
}

// lastWhitespace returns the index of the last space or newline byte in
// data[lo:hi], or -1 if there is none. Space and newline are single-byte
// in UTF-8, so a byte scan cannot land inside a multi-byte character.
func lastWhitespace(data []byte, lo, hi int) int {
	if lo < 0 {
		lo = 0
	}
	for i := hi - 1; i >= lo; i-- {
		if data[i] == ' ' || data[i] == '\n' {
			return i
		}
	}
	return -1
}
