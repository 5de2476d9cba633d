package textfont

import "testing"

// TestMeasureShapedEmptyTextReturnsZero exercises MeasureShaped's
// no-shaping guard without needing real TTF bytes: NewShaper/Shape's
// HarfBuzz pass is only reachable with a parsed font, but the empty
// string short-circuit in Shape (and thus MeasureShaped) is real
// production code on the measure pipeline's fast path.
func TestMeasureShapedEmptyTextReturnsZero(t *testing.T) {
	shaper := NewShaper()
	src := NewFontSource(nil)
	face := &Face{size: 10}

	if got := MeasureShaped(shaper, src, face, "", 1, DirectionLTR); got != 0 {
		t.Fatalf("MeasureShaped(\"\") = %v, want 0", got)
	}
}

// TestMeasureShapedNilSourceReturnsZero covers Shape's other early
// return: a nil FontSource (no font bound yet) measures as empty
// rather than panicking.
func TestMeasureShapedNilSourceReturnsZero(t *testing.T) {
	shaper := NewShaper()
	face := &Face{size: 10}

	if got := MeasureShaped(shaper, nil, face, "Hi", 1, DirectionLTR); got != 0 {
		t.Fatalf("MeasureShaped with nil source = %v, want 0", got)
	}
}
