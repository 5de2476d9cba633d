package pkm

import (
	"encoding/binary"
	"testing"

	"github.com/rayfork/rayfork-go/pixelformat"
)

func buildPKM(format, width, height, origW, origH uint16) []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], magic)
	be := binary.BigEndian
	be.PutUint16(buf[6:8], format)
	be.PutUint16(buf[8:10], width)
	be.PutUint16(buf[10:12], height)
	be.PutUint16(buf[12:14], origW)
	be.PutUint16(buf[14:16], origH)
	return buf
}

func TestDecodeETC1(t *testing.T) {
	hdr := buildPKM(0, 8, 8, 5, 5)
	payload := make([]byte, 8*8*4/8)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	buf := append(hdr, payload...)

	size := ComputeSize(buf)
	if size != len(payload) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}
	img := DecodeToBuffer(make([]byte, size), buf)
	if !img.Valid {
		t.Fatal("expected valid decode")
	}
	if img.Format != pixelformat.CompressedETC1RGB {
		t.Fatalf("expected ETC1RGB, got %v", img.Format)
	}
	if img.Width != 5 || img.Height != 5 {
		t.Fatalf("expected original dims 5x5, got %dx%d", img.Width, img.Height)
	}
}

func TestDecodeETC2EACRGBA8bpp(t *testing.T) {
	hdr := buildPKM(3, 4, 4, 4, 4)
	payload := make([]byte, 4*4*8/8)
	buf := append(hdr, payload...)

	size := ComputeSize(buf)
	if size != 16 {
		t.Fatalf("expected 8bpp size 16, got %d", size)
	}
	img := DecodeToBuffer(make([]byte, size), buf)
	if img.Format != pixelformat.CompressedETC2EACRGBA {
		t.Fatalf("expected ETC2EACRGBA, got %v", img.Format)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	buf := make([]byte, 32)
	copy(buf, "NOPE")
	img := DecodeToBuffer(make([]byte, 16), buf)
	if img.Valid {
		t.Fatal("expected invalid image for bad magic")
	}
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	hdr := buildPKM(9, 4, 4, 4, 4)
	img := DecodeToBuffer(make([]byte, 16), hdr)
	if img.Valid {
		t.Fatal("expected invalid image for unrecognized format code")
	}
}
