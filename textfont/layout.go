package textfont

import "unicode"

// GlyphSource abstracts the two font backends textfont supports — an
// outline Face rasterized through golang.org/x/image/font/opentype,
// and a BitmapFont extracted by color-key scanning — behind the one
// shape Layout needs: a per-rune advance and a nominal base pixel size
// to scale against. Measure, WrapText, and batch.DrawText/DrawTextRec
// all drive the same Layout regardless of which GlyphSource they're
// given.
type GlyphSource interface {
	// AdvanceRune returns r's horizontal advance at the source's base
	// size, and whether r is known to the source at all.
	AdvanceRune(r rune) (advance float32, ok bool)
	// BaseSize returns the pixel size AdvanceRune's return value is
	// expressed in; Layout scales by fontSize/BaseSize().
	BaseSize() float32
}

// GlyphEmit is invoked once per drawn codepoint by Layout's state B,
// with the rune and its pen position (relative to the layout origin,
// already scaled). A nil GlyphEmit makes Layout measure-only.
type GlyphEmit func(r rune, penX, penY float32)

// LayoutResult is Layout's measurement output (§8 scenarios 1 and 6).
type LayoutResult struct {
	Width  float32
	Height float32
	Lines  []string
}

// Layout runs the §4.5 "Wrapping" two-state machine over s at fontSize
// with spacing pixels between consecutive glyphs (unscaled, per
// font.Advance's additive "spacing parameter"). maxWidth of 0 means
// unbounded (used by Measure); a positive maxWidth wraps at the last
// whitespace before the line would overflow it (used by WrapText and
// the batcher's DrawTextRec).
//
// State A (accumulate): advances a running width per rune, remembering
// the index of the last whitespace seen. When the running width would
// exceed maxWidth, it rewinds to that whitespace and switches to state
// B. State B (emit): walks from the line's start to its end, calling
// emit for each rune if non-nil, then resumes state A at the next
// rune. Because state B is driven by the exact same rune indices state
// A computed, measuring (emit == nil) and drawing (emit != nil) can
// never disagree about where a line breaks.
func Layout(src GlyphSource, s string, fontSize, spacing, maxWidth float32, emit GlyphEmit) LayoutResult {
	base := src.BaseSize()
	scale := float32(1)
	if base > 0 {
		scale = fontSize / base
	}
	lineHeight := 1.5 * base * scale

	runes := []rune(s)
	var lines []string
	var maxX float32
	var penY float32
	var x float32
	lineStart := 0
	lastWhitespace := -1

	emitLine := func(from, to int) {
		if emit == nil {
			return
		}
		var px float32
		for i := from; i < to; i++ {
			r := runes[i]
			adv, ok := src.AdvanceRune(r)
			if i > from {
				px += spacing
			}
			emit(r, px, penY)
			if ok {
				px += adv * scale
			}
		}
	}

	flushLine := func(end int) {
		lines = append(lines, string(runes[lineStart:end]))
		emitLine(lineStart, end)
		if x > maxX {
			maxX = x
		}
		penY += lineHeight
		lineStart = end + 1
		lastWhitespace = -1
		x = 0
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flushLine(i)
			continue
		}

		adv, ok := src.AdvanceRune(r)
		if !ok {
			adv = 0
		}

		next := x + adv*scale
		if i > lineStart {
			next += spacing
		}

		if maxWidth > 0 && next > maxWidth && lastWhitespace >= lineStart {
			flushLine(lastWhitespace)
			i = lineStart - 1
			continue
		}

		x = next
		if unicode.IsSpace(r) {
			lastWhitespace = i
		}
	}

	lines = append(lines, string(runes[lineStart:]))
	emitLine(lineStart, len(runes))
	if x > maxX {
		maxX = x
	}

	return LayoutResult{Width: maxX, Height: penY + base*scale, Lines: lines}
}
