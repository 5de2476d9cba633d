package ktx

import (
	"encoding/binary"
	"testing"

	"github.com/rayfork/rayfork-go/pixelformat"
)

func buildKTX(internalFormat, width, height uint32, keyValueBytes uint32, payload []byte) []byte {
	buf := make([]byte, headerSize)
	copy(buf[6:12], magicSuffix)
	le := binary.LittleEndian
	p := buf[12:]
	le.PutUint32(p[16:20], internalFormat)
	le.PutUint32(p[24:28], width)
	le.PutUint32(p[28:32], height)
	le.PutUint32(p[44:48], 1)
	le.PutUint32(p[48:52], keyValueBytes)

	buf = append(buf, make([]byte, keyValueBytes)...)
	sizeWord := make([]byte, 4)
	le.PutUint32(sizeWord, uint32(len(payload)))
	buf = append(buf, sizeWord...)
	buf = append(buf, payload...)
	return buf
}

func TestDecodeETC2RGB(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf := buildKTX(glCompressedRGB8ETC2, 16, 16, 0, payload)

	size := ComputeSize(buf)
	if size != len(payload) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}
	img := DecodeToBuffer(make([]byte, size), buf)
	if !img.Valid {
		t.Fatal("expected valid decode")
	}
	if img.Format != pixelformat.CompressedETC2RGB {
		t.Fatalf("expected ETC2RGB, got %v", img.Format)
	}
	if img.Width != 16 || img.Height != 16 {
		t.Fatalf("expected 16x16, got %dx%d", img.Width, img.Height)
	}
	for i, b := range payload {
		if img.Data[i] != b {
			t.Fatalf("payload mismatch at %d", i)
		}
	}
}

func TestDecodeWithKeyValueBlockSkipsIt(t *testing.T) {
	payload := []byte{9, 9, 9, 9}
	buf := buildKTX(glETC1RGB8OES, 4, 4, 8, payload)
	img := DecodeToBuffer(make([]byte, ComputeSize(buf)), buf)
	if !img.Valid {
		t.Fatal("expected valid decode with nonzero key-value block")
	}
	if img.Data[0] != 9 {
		t.Fatalf("expected payload to start with 9, got %d", img.Data[0])
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	buf := make([]byte, headerSize+8)
	img := DecodeToBuffer(make([]byte, 8), buf)
	if img.Valid {
		t.Fatal("expected invalid image for bad magic")
	}
}
