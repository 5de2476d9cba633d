package textfont

// Measure returns the total horizontal advance of s at fontSize with
// spacing pixels between glyphs, per §4.5 "Measurement". It is Layout
// invoked with no emit callback and an unbounded line width — the same
// code path WrapText and the batcher's DrawText share.
func Measure(src GlyphSource, s string, fontSize, spacing float32) float32 {
	return Layout(src, s, fontSize, spacing, 0, nil).Width
}

// WrapText splits s into lines no wider than maxWidth at fontSize,
// breaking at whitespace (§4.5 "Wrapping"). A single word wider than
// maxWidth is placed alone on its own line rather than split, since
// Layout only rewinds to a whitespace boundary.
func WrapText(src GlyphSource, s string, fontSize, spacing, maxWidth float32) []string {
	return Layout(src, s, fontSize, spacing, maxWidth, nil).Lines
}

// MeasureShaped is Measure for runs that need real shaping rather than
// Layout's context-free per-rune advance sum: ligatures (run of glyphs
// collapsing to fewer positions), kerning pairs, and complex scripts
// (Arabic, Devanagari, Thai) all change a glyph's advance based on its
// neighbors, which only a HarfbuzzShaper pass over the whole run can
// account for. It shapes text once via shaper and sums the resulting
// XAdvance/YAdvance plus spacing between glyphs, the same additive
// spacing rule Layout applies.
func MeasureShaped(shaper *Shaper, src *FontSource, face *Face, text string, spacing float32, dir Direction) float32 {
	glyphs := shaper.Shape(text, src, face.Size(), dir)
	if len(glyphs) == 0 {
		return 0
	}
	var total float32
	vertical := dir == DirectionTTB || dir == DirectionBTT
	for i, g := range glyphs {
		if i > 0 {
			total += spacing
		}
		if vertical {
			total += g.YAdvance
		} else {
			total += g.XAdvance
		}
	}
	return total
}
