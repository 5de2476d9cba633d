package batch

// Dash defines a dash pattern applied to the line-with-thickness
// shape decomposition (§4.6): alternating dash and gap lengths, the
// same semantics as the teacher's dash.go adapted to float32.
type Dash struct {
	// Array holds alternating dash/gap lengths. An odd-length array is
	// logically duplicated to form an even-length pattern (e.g. [5]
	// behaves as [5, 5]).
	Array []float32

	// Offset is the starting offset into the pattern.
	Offset float32
}

// NewDash builds a Dash from alternating dash/gap lengths, taking the
// absolute value of any negative length. Returns nil if no lengths are
// given or all are zero.
func NewDash(lengths ...float32) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	allZero := true
	for _, l := range lengths {
		if l != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil
	}
	normalized := make([]float32, len(lengths))
	for i, l := range lengths {
		if l < 0 {
			l = -l
		}
		normalized[i] = l
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float32 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}
	var total float32
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether d represents an actual dash pattern rather
// than a solid line.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// NormalizedOffset returns Offset reduced into [0, PatternLength()).
func (d *Dash) NormalizedOffset() float32 {
	if d == nil {
		return 0
	}
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	off := mod32(d.Offset, patternLen)
	if off < 0 {
		off += patternLen
	}
	return off
}

func mod32(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	n := int32(a / b)
	return a - float32(n)*b
}

// Segments walks pathLength of solid path at the pattern's current
// phase and returns the [start, end) ranges that should be drawn
// (dash-on) rather than skipped (dash-off), per §4.6's line-with-
// thickness shape decomposition.
func (d *Dash) Segments(pathLength float32) [][2]float32 {
	if !d.IsDashed() {
		return [][2]float32{{0, pathLength}}
	}
	pattern := d.Array
	if len(pattern)%2 != 0 {
		pattern = append(append([]float32{}, pattern...), pattern...)
	}

	pos := d.NormalizedOffset()
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}

	var segments [][2]float32
	cursor := float32(0)
	on := idx%2 == 0
	remaining := pattern[idx] - pos
	var segStart float32
	if on {
		segStart = 0
	}
	for cursor < pathLength {
		step := remaining
		if cursor+step > pathLength {
			step = pathLength - cursor
		}
		if on {
			segments = append(segments, [2]float32{segStart, cursor + step})
		}
		cursor += step
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
		on = !on
		if on {
			segStart = cursor
		}
	}
	return segments
}
