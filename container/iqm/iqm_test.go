package iqm

import (
	"encoding/binary"
	"math"
	"testing"
)

// buildMinimalIQM constructs a tiny valid IQM buffer with one triangle, no
// vertex arrays, and two joints (root + child), to exercise header
// parsing, triangle winding reversal, and bind-pose composition.
func buildMinimalIQM(t *testing.T) []byte {
	t.Helper()
	le := binary.LittleEndian

	putF32 := func(dst []byte, v float32) { le.PutUint32(dst, math.Float32bits(v)) }

	// Layout offsets are computed manually and kept in a fixed order:
	// header(16+headerSize) | triangles(1*12) | joints(2*jointStride)
	const hdrTotal = 16 + headerSize
	triOff := hdrTotal
	triSize := 1 * 12
	jointOff := triOff + triSize
	jointSize := 2 * jointStride

	buf := make([]byte, jointOff+jointSize)
	copy(buf[0:16], magic)
	p := buf[16:]
	le.PutUint32(p[0:4], 2) // version
	le.PutUint32(p[52:56], 2) // numJoints
	le.PutUint32(p[56:60], uint32(jointOff)) // ofsJoints
	le.PutUint32(p[40:44], 1) // numTriangles
	le.PutUint32(p[44:48], uint32(triOff)) // ofsTriangles

	// Triangle (0,1,2) -> after winding reversal becomes (2,1,0).
	le.PutUint32(buf[triOff:triOff+4], 0)
	le.PutUint32(buf[triOff+4:triOff+8], 1)
	le.PutUint32(buf[triOff+8:triOff+12], 2)

	// Root joint: identity rotation, translation (0,1,0), scale 1.
	rootOff := jointOff
	le.PutUint32(buf[rootOff:rootOff+4], 0)                    // name offset
	le.PutUint32(buf[rootOff+4:rootOff+8], uint32(0xFFFFFFFF)) // parent = -1
	putF32(buf[rootOff+8:rootOff+12], 0)
	putF32(buf[rootOff+12:rootOff+16], 1)
	putF32(buf[rootOff+16:rootOff+20], 0)
	putF32(buf[rootOff+20:rootOff+24], 0) // rot x
	putF32(buf[rootOff+24:rootOff+28], 0) // rot y
	putF32(buf[rootOff+28:rootOff+32], 0) // rot z
	putF32(buf[rootOff+32:rootOff+36], 1) // rot w
	putF32(buf[rootOff+36:rootOff+40], 1) // scale x
	putF32(buf[rootOff+40:rootOff+44], 1)
	putF32(buf[rootOff+44:rootOff+48], 1)

	// Child joint: zero local translation, identity rotation, parent=0.
	childOff := jointOff + jointStride
	le.PutUint32(buf[childOff:childOff+4], 0)
	le.PutUint32(buf[childOff+4:childOff+8], 0) // parent = 0
	putF32(buf[childOff+8:childOff+12], 0)
	putF32(buf[childOff+12:childOff+16], 0)
	putF32(buf[childOff+16:childOff+20], 0)
	putF32(buf[childOff+20:childOff+24], 0)
	putF32(buf[childOff+24:childOff+28], 0)
	putF32(buf[childOff+28:childOff+32], 0)
	putF32(buf[childOff+32:childOff+36], 1)
	putF32(buf[childOff+36:childOff+40], 1)
	putF32(buf[childOff+40:childOff+44], 1)
	putF32(buf[childOff+44:childOff+48], 1)

	return buf
}

func TestDecodeReversesTriangleWinding(t *testing.T) {
	buf := buildMinimalIQM(t)
	m := Decode(buf)
	if !m.Valid {
		t.Fatal("expected valid model")
	}
	mesh := m.Meshes[0]
	want := []uint16{2, 1, 0}
	for i, w := range want {
		if mesh.Indices[i] != w {
			t.Fatalf("index %d: got %d want %d", i, mesh.Indices[i], w)
		}
	}
}

func TestDecodeBindPoseChildInheritsParentTranslation(t *testing.T) {
	buf := buildMinimalIQM(t)
	m := Decode(buf)
	if len(m.BindPose) != 2 {
		t.Fatalf("expected 2 bones, got %d", len(m.BindPose))
	}
	root := m.BindPose[0]
	child := m.BindPose[1]
	if root.Translation.Y != 1 {
		t.Fatalf("expected root translation y=1, got %v", root.Translation)
	}
	// Child has zero local translation, so its world translation must
	// equal the parent's, per §8 scenario 5.
	if child.Translation != root.Translation {
		t.Fatalf("expected child world translation to equal root's: got %v want %v", child.Translation, root.Translation)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	buf := make([]byte, 200)
	m := Decode(buf)
	if m.Valid {
		t.Fatal("expected invalid model for bad magic")
	}
}
