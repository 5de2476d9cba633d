package batch

import "testing"

func TestNewDashNilForAllZero(t *testing.T) {
	if NewDash(0, 0) != nil {
		t.Fatal("expected nil Dash for all-zero lengths")
	}
	if NewDash() != nil {
		t.Fatal("expected nil Dash for no lengths")
	}
}

func TestNewDashNormalizesNegative(t *testing.T) {
	d := NewDash(-5, 3)
	if d.Array[0] != 5 {
		t.Fatalf("expected negative length normalized to 5, got %v", d.Array[0])
	}
}

func TestPatternLengthDuplicatesOddArray(t *testing.T) {
	d := NewDash(5)
	if got := d.PatternLength(); got != 10 {
		t.Fatalf("expected odd-length pattern to double to 10, got %v", got)
	}
}

func TestIsDashedFalseForNil(t *testing.T) {
	var d *Dash
	if d.IsDashed() {
		t.Fatal("expected nil Dash to not be dashed")
	}
}

func TestSegmentsSolidWhenNotDashed(t *testing.T) {
	segs := (*Dash)(nil).Segments(10)
	if len(segs) != 1 || segs[0] != [2]float32{0, 10} {
		t.Fatalf("expected single full-length segment for solid line, got %v", segs)
	}
}

func TestSegmentsAlternatesOnOff(t *testing.T) {
	d := NewDash(2, 2)
	segs := d.Segments(8)
	// Expect on-segments at [0,2) and [4,6), each length 2.
	if len(segs) != 2 {
		t.Fatalf("expected 2 dash-on segments over length 8 with period 4, got %d: %v", len(segs), segs)
	}
}
