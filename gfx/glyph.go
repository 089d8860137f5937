package gfx

// Glyph is one positioned glyph of a text run. X and Y are the glyph
// origin in device coordinates.
type Glyph struct {
	ID   uint32
	X, Y float64
}

// Face provides the metrics a glyph renderer needs from a font face.
type Face interface {
	// Size returns the nominal face size in pixels.
	Size() float64

	// GlyphAdvance returns the horizontal advance of the glyph in
	// pixels, and false if the face has no such glyph.
	GlyphAdvance(id uint32) (float64, bool)
}
