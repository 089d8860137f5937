package text

import (
	"errors"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbdraw/gfx"
)

// ErrNilFace is returned by Shape when no face is given.
var ErrNilFace = errors.New("text: nil face")

// shaperPool recycles HarfbuzzShaper instances. The shaper carries
// scratch buffers and is not safe for concurrent use, but reuse
// across calls avoids reallocating them.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape turns a string into positioned glyphs for ShowGlyphs. Glyph
// origins sit on the baseline starting at (0, 0), in pixels with y
// growing downward. The string is split into direction and script
// runs and each run is shaped by HarfBuzz, so kerning, ligatures and
// right-to-left scripts come out the way the font intends.
func Shape(s string, face *Face) ([]gfx.Glyph, error) {
	if s == "" {
		return nil, nil
	}
	if face == nil {
		return nil, ErrNilFace
	}
	runes := []rune(s)
	runs := splitRuns(s, runes)

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer shaperPool.Put(hb)

	glyphs := make([]gfx.Glyph, 0, len(runes))
	var p pen
	for _, run := range runs {
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  run.Start,
			RunEnd:    run.End,
			Direction: run.Direction,
			Face:      face.face,
			Size:      floatToFixed(face.size),
			Script:    run.Script,
			Language:  language.NewLanguage("en"),
		})
		glyphs = p.place(glyphs, out.Glyphs, run.Direction)
	}
	return glyphs, nil
}

// pen tracks the baseline position while glyph runs are laid out.
type pen struct {
	x, y float64
}

// place appends run glyphs to dst at the current pen position and
// advances the pen. Offsets and advances arrive in font space where y
// grows upward; device y grows downward, so both flip sign.
func (p *pen) place(dst []gfx.Glyph, glyphs []shaping.Glyph, dir di.Direction) []gfx.Glyph {
	for _, g := range glyphs {
		dst = append(dst, gfx.Glyph{
			ID: uint32(g.GlyphID),
			X:  p.x + fixedToFloat(g.XOffset),
			Y:  p.y - fixedToFloat(g.YOffset),
		})
		if dir.IsVertical() {
			p.y -= fixedToFloat(g.Advance)
		} else {
			p.x += fixedToFloat(g.Advance)
		}
	}
	return dst
}

// floatToFixed converts a pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
