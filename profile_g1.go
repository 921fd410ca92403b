package textwall

// g1GlyphWidths is the glyph-unit table of the G1 HUD font, covering
// printable ASCII. Values were read back from the firmware font pack;
// rendered pixel width is (units+1)*2. Characters absent here resolve
// through the uniform-script table or the Latin-max fallback.
var g1GlyphWidths = map[rune]int{
	' ': 2, '!': 3, '"': 5, '#': 9, '$': 8, '%': 12, '&': 10, '\'': 3,
	'(': 5, ')': 5, '*': 7, '+': 8, ',': 3, '-': 4, '.': 3, '/': 6,
	'0': 8, '1': 8, '2': 8, '3': 8, '4': 8, '5': 8, '6': 8, '7': 8,
	'8': 8, '9': 8,
	':': 3, ';': 3, '<': 8, '=': 8, '>': 8, '?': 7, '@': 13,
	'A': 10, 'B': 9, 'C': 10, 'D': 10, 'E': 8, 'F': 8, 'G': 10, 'H': 10,
	'I': 4, 'J': 6, 'K': 9, 'L': 8, 'M': 12, 'N': 10, 'O': 11, 'P': 9,
	'Q': 11, 'R': 9, 'S': 9, 'T': 9, 'U': 10, 'V': 10, 'W': 13, 'X': 9,
	'Y': 9, 'Z': 9,
	'[': 5, '\\': 6, ']': 5, '^': 7, '_': 8, '`': 4,
	'a': 8, 'b': 8, 'c': 7, 'd': 8, 'e': 8, 'f': 5, 'g': 8, 'h': 8,
	'i': 3, 'j': 3, 'k': 7, 'l': 3, 'm': 12, 'n': 8, 'o': 8, 'p': 8,
	'q': 8, 'r': 5, 's': 7, 't': 5, 'u': 8, 'v': 7, 'w': 11, 'x': 7,
	'y': 7, 'z': 7,
	'{': 5, '|': 3, '}': 5, '~': 8,
}

// g1Render is the G1 glyph-unit to pixel formula. It must match the native
// iOS/Android implementations exactly: any divergence moves line breaks
// visibly on hardware.
func g1Render(glyphUnits int) int { return (glyphUnits + 1) * 2 }

// g1Constraints are the shared break-policy constants of the G1 family.
func g1Constraints() BreakConstraints {
	return BreakConstraints{
		NoBreakBefore:        "、。，．・！？：；ー）」』｝〉》!?,.;:)]}",
		NoBreakAfter:         "（「『｛〈《([{",
		MinCharsBeforeHyphen: 2,
		HyphenChar:           '-',
	}
}

// ProfileG1 returns the standard profile for the Even Realities G1:
// 576 px usable width, 5 text rows, 390-byte display payloads sent in
// 176-byte BLE chunks.
func ProfileG1() *DisplayProfile {
	return &DisplayProfile{
		Name:            "g1",
		DisplayWidthPx:  576,
		DisplayHeightPx: 136,
		MaxLines:        5,
		MaxPayloadBytes: 390,
		BLEChunkSize:    176,
		Metrics: FontMetrics{
			GlyphWidths:       g1GlyphWidths,
			DefaultGlyphWidth: 8,
			Render:            g1Render,
			Uniform: UniformWidths{
				CJK:      22,
				Hiragana: 22,
				Katakana: 22,
				Korean:   22,
				Cyrillic: 16,
			},
			LatinMaxWidth: 28, // 'W' and '@' at 13 units
		},
		Constraints: g1Constraints(),
	}
}

// ProfileG1Legacy returns the G1 profile with the narrower width used by
// older firmware. Content wrapped for this width re-wraps cleanly on the
// standard width, which keeps mixed-version sessions from double-wrapping.
func ProfileG1Legacy() *DisplayProfile {
	p := ProfileG1()
	p.Name = "g1-legacy"
	p.DisplayWidthPx = 488
	return p
}

// ProfileZ100 returns the profile for the Z100 monocular display. Its font
// stores pixel advances directly, so the render formula is the identity.
func ProfileZ100() *DisplayProfile {
	return &DisplayProfile{
		Name:            "z100",
		DisplayWidthPx:  640,
		DisplayHeightPx: 200,
		MaxLines:        7,
		MaxPayloadBytes: 512,
		BLEChunkSize:    192,
		Metrics: FontMetrics{
			GlyphWidths:       z100GlyphWidths,
			DefaultGlyphWidth: 10,
			Render:            func(glyphUnits int) int { return glyphUnits },
			Uniform: UniformWidths{
				CJK:      24,
				Hiragana: 24,
				Katakana: 24,
				Korean:   24,
				Cyrillic: 14,
			},
			LatinMaxWidth: 24,
		},
		Constraints: g1Constraints(),
	}
}

// z100GlyphWidths is the Z100 advance table in pixels. The Z100 font is
// close to monospaced: every printable ASCII glyph advances 10 px except
// the listed narrow and wide exceptions.
var z100GlyphWidths = buildZ100GlyphWidths()

func buildZ100GlyphWidths() map[rune]int {
	widths := make(map[rune]int, 95)
	for r := rune(0x20); r <= 0x7E; r++ {
		widths[r] = 10
	}
	for r, w := range map[rune]int{
		' ': 6, '!': 5, '\'': 4, ',': 5, '.': 5, ':': 5, ';': 5,
		'i': 5, 'j': 5, 'l': 5, '|': 4,
		'-': 8, 'f': 8, 'r': 8, 't': 8,
		'm': 16, 'w': 15, 'M': 16, 'W': 18, '@': 24,
	} {
		widths[r] = w
	}
	return widths
}
