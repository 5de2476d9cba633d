package dds

import (
	"encoding/binary"
	"testing"

	"github.com/rayfork/rayfork-go/pixelformat"
)

// buildHeader constructs a minimal 128-byte DDS header (4-byte magic +
// 124-byte DDS_HEADER) for the given dimensions/format parameters.
func buildHeader(width, height, mipCount, pitchOrLinear uint32, fourCC string, pfFlags, rgbBitCount, aMask uint32) []byte {
	buf := make([]byte, 4+124)
	copy(buf[0:4], magic)
	le := binary.LittleEndian
	le.PutUint32(buf[4+4:4+8], 0)            // flags
	le.PutUint32(buf[4+8:4+12], height)
	le.PutUint32(buf[4+12:4+16], width)
	le.PutUint32(buf[4+16:4+20], pitchOrLinear)
	le.PutUint32(buf[4+24:4+28], mipCount)
	le.PutUint32(buf[4+76:4+80], pfFlags)
	if fourCC != "" {
		copy(buf[4+80:4+84], fourCC)
	}
	le.PutUint32(buf[4+84:4+88], rgbBitCount)
	le.PutUint32(buf[4+100:4+104], aMask)
	return buf
}

func TestDecodeDXT1ComputesSizeFromPitchTimesMips(t *testing.T) {
	hdr := buildHeader(64, 64, 2, 2048, "DXT1", ddpfFourCC, 0, 0)
	payload := make([]byte, 2048*2)
	for i := range payload {
		payload[i] = byte(i)
	}
	buf := append(hdr, payload...)

	size := ComputeSize(buf)
	if size != 2048*2 {
		t.Fatalf("expected size %d, got %d", 2048*2, size)
	}

	img := DecodeToBuffer(make([]byte, size), buf)
	if !img.Valid {
		t.Fatal("expected valid decode")
	}
	if img.Format != pixelformat.CompressedDXT1RGB {
		t.Fatalf("expected CompressedDXT1RGB, got %v", img.Format)
	}
	if img.Mipmaps != 2 {
		t.Fatalf("expected 2 mipmaps, got %d", img.Mipmaps)
	}
	if img.Data[0] != 0 || img.Data[len(img.Data)-1] != payload[len(payload)-1] {
		t.Fatal("compressed payload should pass through untouched")
	}
}

func TestDecode32BitARGBSwapsToRGBA(t *testing.T) {
	hdr := buildHeader(1, 1, 1, 0, "", ddpfRGB|ddpfAlphaPixels, 32, 0xFF000000)
	// One ARGB pixel in memory order B,G,R,A = (10, 20, 30, 255).
	payload := []byte{10, 20, 30, 255}
	buf := append(hdr, payload...)

	img := DecodeToBuffer(make([]byte, ComputeSize(buf)), buf)
	if !img.Valid {
		t.Fatal("expected valid decode")
	}
	if img.Data[0] != 30 || img.Data[1] != 20 || img.Data[2] != 10 || img.Data[3] != 255 {
		t.Fatalf("expected RGBA (30,20,10,255), got %v", img.Data)
	}
}

func TestDecodeMissingMagicIsInvalid(t *testing.T) {
	buf := make([]byte, 200)
	copy(buf, "NOPE")
	img := DecodeToBuffer(make([]byte, 64), buf)
	if img.Valid {
		t.Fatal("expected invalid image for bad magic")
	}
}

func TestMipCountDefaultsToOne(t *testing.T) {
	hdr := buildHeader(4, 4, 0, 0, "", ddpfRGB, 24, 0)
	payload := make([]byte, 4*4*3)
	buf := append(hdr, payload...)
	img := DecodeToBuffer(make([]byte, ComputeSize(buf)), buf)
	if !img.Valid || img.Mipmaps != 1 {
		t.Fatalf("expected 1 mipmap by default, got valid=%v mipmaps=%d", img.Valid, img.Mipmaps)
	}
}
