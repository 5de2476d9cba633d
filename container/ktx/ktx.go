// Package ktx implements the KTX 1.1 container decoder (§4.4).
package ktx

import (
	"encoding/binary"

	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rferr"
	"github.com/rayfork/rayfork-go/rfimage"
)

// magicSuffix is the tail of the 12-byte KTX identifier this decoder
// recognizes, per §4.4.
const magicSuffix = "KTX 11"

// Fixed KTX 1.1 header layout, all fields little-endian, after the
// 12-byte identifier:
// endianness, glType, glTypeSize, glFormat, glInternalFormat,
// glBaseInternalFormat, pixelWidth, pixelHeight, pixelDepth,
// numberOfArrayElements, numberOfFaces, numberOfMipmapLevels,
// bytesOfKeyValueData — 13 uint32 fields, 52 bytes.
const headerSize = 12 + 13*4

type header struct {
	glInternalFormat uint32
	pixelWidth       uint32
	pixelHeight      uint32
	mipmapLevels     uint32
	keyValueBytes    uint32
}

func parseHeader(b []byte) (header, bool) {
	if len(b) < headerSize || string(b[12-len(magicSuffix):12]) != magicSuffix {
		return header{}, false
	}
	le := binary.LittleEndian
	p := b[12:]
	return header{
		glInternalFormat: le.Uint32(p[16:20]),
		pixelWidth:       le.Uint32(p[24:28]),
		pixelHeight:      le.Uint32(p[28:32]),
		mipmapLevels:     le.Uint32(p[44:48]),
		keyValueBytes:    le.Uint32(p[48:52]),
	}, true
}

// Khronos GL internal-format tokens for the ETC1/ETC2/EAC family this
// decoder maps, per §4.4.
const (
	glETC1RGB8OES            = 0x8D64
	glCompressedRGB8ETC2     = 0x9274
	glCompressedRGBA8ETC2EAC = 0x9278
)

func resolveFormat(token uint32) (pixelformat.Format, bool) {
	switch token {
	case glETC1RGB8OES:
		return pixelformat.CompressedETC1RGB, true
	case glCompressedRGB8ETC2:
		return pixelformat.CompressedETC2RGB, true
	case glCompressedRGBA8ETC2EAC:
		return pixelformat.CompressedETC2EACRGBA, true
	default:
		return 0, false
	}
}

// levelImageSize reads the 4-byte little-endian imageSize word
// immediately following the header and key-value block, per §4.4.
func levelImageSize(b []byte, h header) (int, bool) {
	off := headerSize + int(h.keyValueBytes)
	if len(b) < off+4 {
		return 0, false
	}
	return int(binary.LittleEndian.Uint32(b[off : off+4])), true
}

// ComputeSize skips the fixed header and key-value blob and reads the
// level-0 imageSize word, per §4.4.
func ComputeSize(b []byte) int {
	h, ok := parseHeader(b)
	if !ok {
		rferr.Log(rferr.BadFormat, "ktx: missing magic or truncated header")
		return 0
	}
	if _, ok := resolveFormat(h.glInternalFormat); !ok {
		rferr.Log(rferr.Unsupported, "ktx: unrecognized internal format", "token", h.glInternalFormat)
		return 0
	}
	size, ok := levelImageSize(b, h)
	if !ok {
		rferr.Log(rferr.BadFormat, "ktx: truncated key-value block")
		return 0
	}
	return size
}

// DecodeToBuffer copies the level-0 compressed payload into dst, per
// §4.4.
func DecodeToBuffer(dst []byte, b []byte) rfimage.Image {
	h, ok := parseHeader(b)
	if !ok {
		rferr.Log(rferr.BadFormat, "ktx: missing magic or truncated header")
		return rfimage.Invalid()
	}
	format, ok := resolveFormat(h.glInternalFormat)
	if !ok {
		rferr.Log(rferr.Unsupported, "ktx: unrecognized internal format", "token", h.glInternalFormat)
		return rfimage.Invalid()
	}
	size, ok := levelImageSize(b, h)
	if !ok || size == 0 || len(dst) < size {
		rferr.Log(rferr.BadSize, "ktx: destination buffer too small or missing level size")
		return rfimage.Invalid()
	}

	payloadOff := headerSize + int(h.keyValueBytes) + 4
	if len(b) < payloadOff+size {
		rferr.Log(rferr.BadIO, "ktx: truncated payload")
		return rfimage.Invalid()
	}
	copy(dst[:size], b[payloadOff:payloadOff+size])

	return rfimage.Image{Data: dst[:size], Width: int(h.pixelWidth), Height: int(h.pixelHeight), Format: format, Valid: true}
}
