// Package dds implements the DDS container decoder (§4.4): the two-phase
// ComputeSize/DecodeToBuffer contract shared by every container decoder,
// grounded on gogpu-gg's internal/image format-header readers (same
// "inspect header, then decode into caller buffer" shape as buf.go/io.go)
// and adapted to DDS's own pixelformat-header layout.
package dds

import (
	"encoding/binary"

	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rferr"
	"github.com/rayfork/rayfork-go/rfimage"
)

const magic = "DDS "

// DDPF (pixel format) flags, from the DDS header's ddspf.dwFlags.
const (
	ddpfAlphaPixels = 0x1
	ddpfFourCC      = 0x4
	ddpfRGB         = 0x40
)

// header mirrors the fixed 124-byte DDS_HEADER (after the 4-byte magic).
type header struct {
	size            uint32
	flags           uint32
	height          uint32
	width           uint32
	pitchOrLinear   uint32
	depth           uint32
	mipMapCount     uint32
	reserved1       [11]uint32
	pfSize          uint32
	pfFlags         uint32
	pfFourCC        [4]byte
	pfRGBBitCount   uint32
	pfRBitMask      uint32
	pfGBitMask      uint32
	pfBBitMask      uint32
	pfABitMask      uint32
	caps            uint32
	caps2           uint32
	caps3           uint32
	caps4           uint32
	reserved2       uint32
}

func parseHeader(b []byte) (header, bool) {
	if len(b) < 4+124 || string(b[0:4]) != magic {
		return header{}, false
	}
	h := header{}
	p := b[4:]
	h.size = binary.LittleEndian.Uint32(p[0:4])
	h.flags = binary.LittleEndian.Uint32(p[4:8])
	h.height = binary.LittleEndian.Uint32(p[8:12])
	h.width = binary.LittleEndian.Uint32(p[12:16])
	h.pitchOrLinear = binary.LittleEndian.Uint32(p[16:20])
	h.depth = binary.LittleEndian.Uint32(p[20:24])
	h.mipMapCount = binary.LittleEndian.Uint32(p[24:28])
	h.pfSize = binary.LittleEndian.Uint32(p[72:76])
	h.pfFlags = binary.LittleEndian.Uint32(p[76:80])
	copy(h.pfFourCC[:], p[80:84])
	h.pfRGBBitCount = binary.LittleEndian.Uint32(p[84:88])
	h.pfRBitMask = binary.LittleEndian.Uint32(p[88:92])
	h.pfGBitMask = binary.LittleEndian.Uint32(p[92:96])
	h.pfBBitMask = binary.LittleEndian.Uint32(p[96:100])
	h.pfABitMask = binary.LittleEndian.Uint32(p[100:104])
	return h, true
}

// resolveFormat maps a DDS pixel-format descriptor to a rayfork
// pixelformat.Format, per §4.4's supported-paths list.
func resolveFormat(h header) (pixelformat.Format, bool) {
	if h.pfFlags&ddpfFourCC != 0 {
		switch string(h.pfFourCC[:]) {
		case "DXT1":
			if h.pfFlags&ddpfAlphaPixels != 0 {
				return pixelformat.CompressedDXT1RGBA, true
			}
			return pixelformat.CompressedDXT1RGB, true
		case "DXT3":
			return pixelformat.CompressedDXT3RGBA, true
		case "DXT5":
			return pixelformat.CompressedDXT5RGBA, true
		}
		return 0, false
	}
	if h.pfFlags&ddpfRGB != 0 {
		switch h.pfRGBBitCount {
		case 16:
			if h.pfFlags&ddpfAlphaPixels != 0 {
				if h.pfABitMask == 0xF000 {
					return pixelformat.R4G4B4A4, true
				}
				return pixelformat.R5G5B5A1, true
			}
			return pixelformat.R5G6B5, true
		case 24:
			return pixelformat.R8G8B8, true
		case 32:
			return pixelformat.R8G8B8A8, true
		}
	}
	return 0, false
}

func mipCount(h header) int {
	if h.mipMapCount == 0 {
		return 1
	}
	return int(h.mipMapCount)
}

// ComputeSize inspects only the DDS header and returns the required
// destination buffer size: compressed formats use pitchOrLinearSize times
// the mipmap count (§8 scenario 2); uncompressed formats use the
// pixel-format engine's per-level size summed across the chain.
func ComputeSize(b []byte) int {
	h, ok := parseHeader(b)
	if !ok {
		rferr.Log(rferr.BadFormat, "dds: missing magic or truncated header")
		return 0
	}
	format, ok := resolveFormat(h)
	if !ok {
		rferr.Log(rferr.Unsupported, "dds: unrecognized pixel format")
		return 0
	}
	levels := mipCount(h)

	if format.IsCompressed() {
		return int(h.pitchOrLinear) * levels
	}
	return rfimage.MipChainSize(int(h.width), int(h.height), levels, format)
}

// DecodeToBuffer parses b's DDS header and payload and writes the decoded
// pixels into dst, per §4.4: 16-bit uncompressed paths reorder ARGB into
// RGBA, 32-bit ARGB swaps bytes 0 and 2, and compressed blobs pass
// through untouched.
func DecodeToBuffer(dst []byte, b []byte) rfimage.MipmapsImage {
	h, ok := parseHeader(b)
	if !ok {
		rferr.Log(rferr.BadFormat, "dds: missing magic or truncated header")
		return rfimage.MipmapsImage{}
	}
	format, ok := resolveFormat(h)
	if !ok {
		rferr.Log(rferr.Unsupported, "dds: unrecognized pixel format")
		return rfimage.MipmapsImage{}
	}
	levels := mipCount(h)
	want := ComputeSize(b)
	if want == 0 || len(dst) < want {
		rferr.Log(rferr.BadSize, "dds: destination buffer too small")
		return rfimage.MipmapsImage{}
	}

	payload := b[4+124:]

	if format.IsCompressed() {
		n := copy(dst[:want], payload)
		if n < want {
			rferr.Log(rferr.BadIO, "dds: truncated compressed payload")
			return rfimage.MipmapsImage{}
		}
		return rfimage.MipmapsImage{
			Image:   rfimage.Image{Data: dst[:want], Width: int(h.width), Height: int(h.height), Format: format, Valid: true},
			Mipmaps: levels,
		}
	}

	bpp := pixelformat.BytesPerPixel(format)
	switch bpp {
	case 2:
		decode16(dst[:want], payload, format)
	case 3:
		n := copy(dst[:want], payload)
		if n < want {
			rferr.Log(rferr.BadIO, "dds: truncated payload")
			return rfimage.MipmapsImage{}
		}
	case 4:
		decodeARGB32(dst[:want], payload)
	default:
		rferr.Log(rferr.Unsupported, "dds: unsupported bit depth")
		return rfimage.MipmapsImage{}
	}

	return rfimage.MipmapsImage{
		Image:   rfimage.Image{Data: dst[:want], Width: int(h.width), Height: int(h.height), Format: format, Valid: true},
		Mipmaps: levels,
	}
}

// decode16 reorders each 16-bit pixel from DDS's ARGB-style bit layout
// into rayfork's RGBA-style layout (§4.4). For R5G6B5 there is no alpha
// bit to move, so the value passes through unchanged.
func decode16(dst, src []byte, format pixelformat.Format) {
	n := len(dst) / 2
	if len(src) < len(dst) {
		n = len(src) / 2
	}
	for i := 0; i < n; i++ {
		off := i * 2
		px := binary.LittleEndian.Uint16(src[off : off+2])

		switch format {
		case pixelformat.R5G5B5A1:
			a := (px >> 15) & 0x1
			r := (px >> 10) & 0x1F
			g := (px >> 5) & 0x1F
			b := px & 0x1F
			reordered := r<<11 | g<<6 | b<<1 | a
			binary.LittleEndian.PutUint16(dst[off:off+2], reordered)
		case pixelformat.R4G4B4A4:
			a := (px >> 12) & 0xF
			r := (px >> 8) & 0xF
			g := (px >> 4) & 0xF
			b := px & 0xF
			reordered := r<<12 | g<<8 | b<<4 | a
			binary.LittleEndian.PutUint16(dst[off:off+2], reordered)
		default:
			binary.LittleEndian.PutUint16(dst[off:off+2], px)
		}
	}
}

// decodeARGB32 swaps bytes 0 and 2 of every 4-byte pixel, converting DDS's
// ARGB little-endian byte order (B,G,R,A in memory) to RGBA (§4.4).
func decodeARGB32(dst, src []byte) {
	n := len(dst) / 4
	if len(src) < len(dst) {
		n = len(src) / 4
	}
	for i := 0; i < n; i++ {
		off := i * 4
		dst[off+0] = src[off+2]
		dst[off+1] = src[off+1]
		dst[off+2] = src[off+0]
		dst[off+3] = src[off+3]
	}
}
