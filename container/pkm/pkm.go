// Package pkm implements the PKM (ETC1/ETC2) container decoder (§4.4).
package pkm

import (
	"encoding/binary"

	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rferr"
	"github.com/rayfork/rayfork-go/rfimage"
)

const magic = "PKM "

const headerSize = 16

type header struct {
	format        uint16
	width         uint16 // encoded (padded) width
	height        uint16
	origWidth     uint16
	origHeight    uint16
}

// parseHeader reads the fixed 16-byte PKM header. Every 16-bit field is
// big-endian and must be byte-swapped, per §4.4.
func parseHeader(b []byte) (header, bool) {
	if len(b) < headerSize || string(b[0:4]) != magic {
		return header{}, false
	}
	be := binary.BigEndian
	return header{
		format:     be.Uint16(b[6:8]),
		width:      be.Uint16(b[8:10]),
		height:     be.Uint16(b[10:12]),
		origWidth:  be.Uint16(b[12:14]),
		origHeight: be.Uint16(b[14:16]),
	}, true
}

func resolveFormat(code uint16) (pixelformat.Format, bool) {
	switch code {
	case 0:
		return pixelformat.CompressedETC1RGB, true
	case 1:
		return pixelformat.CompressedETC2RGB, true
	case 3:
		return pixelformat.CompressedETC2EACRGBA, true
	default:
		return 0, false
	}
}

// ComputeSize inspects only the PKM header and returns the encoded
// payload size: 4 bpp for ETC1/ETC2 RGB (format codes 0 and 1), 8 bpp for
// ETC2 EAC RGBA (format code 3), per §4.4.
func ComputeSize(b []byte) int {
	h, ok := parseHeader(b)
	if !ok {
		rferr.Log(rferr.BadFormat, "pkm: missing magic or truncated header")
		return 0
	}
	format, ok := resolveFormat(h.format)
	if !ok {
		rferr.Log(rferr.Unsupported, "pkm: unrecognized format code", "code", h.format)
		return 0
	}
	return (int(h.width) * int(h.height) * pixelformat.BitsPerPixel(format)) / 8
}

// DecodeToBuffer copies the PKM payload (already ETC-compressed, passed
// through opaque) into dst, reporting the image's original (unpadded)
// dimensions per the header, per §4.4.
func DecodeToBuffer(dst []byte, b []byte) rfimage.Image {
	h, ok := parseHeader(b)
	if !ok {
		rferr.Log(rferr.BadFormat, "pkm: missing magic or truncated header")
		return rfimage.Invalid()
	}
	format, ok := resolveFormat(h.format)
	if !ok {
		rferr.Log(rferr.Unsupported, "pkm: unrecognized format code", "code", h.format)
		return rfimage.Invalid()
	}
	want := ComputeSize(b)
	if want == 0 || len(dst) < want {
		rferr.Log(rferr.BadSize, "pkm: destination buffer too small")
		return rfimage.Invalid()
	}
	payload := b[headerSize:]
	if n := copy(dst[:want], payload); n < want {
		rferr.Log(rferr.BadIO, "pkm: truncated payload")
		return rfimage.Invalid()
	}
	return rfimage.Image{Data: dst[:want], Width: int(h.origWidth), Height: int(h.origHeight), Format: format, Valid: true}
}
