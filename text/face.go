package text

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/fbdraw/gfx"
)

// Face binds a Source to a pixel size. It satisfies gfx.Face, so a
// shaped run and the face it came from can go straight to ShowGlyphs.
//
// A Face keeps per-face glyph caches and is not safe for concurrent
// use. Create one Face per goroutine; the Source behind them can be
// shared freely.
type Face struct {
	source *Source
	face   *font.Face
	size   float64

	// scale converts font units to pixels at this size.
	scale float64
}

var _ gfx.Face = (*Face)(nil)

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source {
	return f.source
}

// GlyphAdvance returns the horizontal advance of a glyph in pixels at
// the face size, and false when the font has no such glyph.
func (f *Face) GlyphAdvance(id uint32) (float64, bool) {
	gid := font.GID(id)
	if _, ok := f.face.GlyphExtents(gid); !ok {
		return 0, false
	}
	return float64(f.face.HorizontalAdvance(gid)) * f.scale, true
}
