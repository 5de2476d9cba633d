package textfont

import (
	"bytes"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is one glyph positioned by a Shaper: a pen-relative
// offset plus the advance to apply before the next glyph.
type ShapedGlyph struct {
	GID      GlyphID
	Cluster  int
	X, Y     float32
	XAdvance float32
	YAdvance float32
}

// Direction is a shaping run's text flow direction.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
	DirectionTTB
	DirectionBTT
)

// Shaper converts text into positioned glyphs through go-text/typesetting's
// HarfBuzz shaper: complex scripts (Arabic, Hebrew, Devanagari,
// Thai), ligatures, and kerning all require the full HarfBuzz-level
// shaping go-text/typesetting provides — there is no simplified
// fallback path, since every glyph placed by textfont eventually needs
// the same atlas-entry lookup a shaped run produces.
//
// Grounded on the teacher's text/shaper_gotext.go, which wraps the same
// library the same way; Shaper keeps its font-cache/shaper-pool
// structure since multiple Face values can share one FontSource.
type Shaper struct {
	shaperPool sync.Pool
	mu         sync.RWMutex
	fontCache  map[*FontSource]*gotextfont.Font
}

// NewShaper creates a Shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
		fontCache:  make(map[*FontSource]*gotextfont.Font),
	}
}

// Shape shapes text using src's font at sizePx pixels and dir's flow
// direction, detecting the Unicode script from the first non-space
// rune.
func (s *Shaper) Shape(text string, src *FontSource, sizePx float64, dir Direction) []ShapedGlyph {
	if text == "" || src == nil {
		return nil
	}

	gf, err := s.getOrCreateFont(src)
	if err != nil {
		return nil
	}
	face := gotextfont.NewFace(gf)

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      face,
		Size:      fixed.Int26_6(sizePx * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(out.Glyphs, mapDirection(dir))
}

func (s *Shaper) getOrCreateFont(src *FontSource) (*gotextfont.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[src]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}

	face, err := gotextfont.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[src] = face.Font
	return face.Font, nil
}

func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func convertGlyphs(glyphs []shaping.Glyph, dir di.Direction) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	var x, y float32
	for i, g := range glyphs {
		xOff := fixedToFloat32(g.XOffset)
		yOff := fixedToFloat32(g.YOffset)
		result[i] = ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)),
			Cluster: g.TextIndex(),
			X:       x + xOff,
			Y:       y + yOff,
		}
		adv := fixedToFloat32(g.Advance)
		if dir.IsVertical() {
			result[i].YAdvance = adv
			y += adv
		} else {
			result[i].XAdvance = adv
			x += adv
		}
	}
	return result
}
