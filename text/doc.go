// Package text shapes strings into positioned glyph runs.
//
// The package is the thin layer between a font file and ShowGlyphs:
//
//   - Source: a parsed font, shared across the application
//   - Face: a Source bound to a pixel size, implements gfx.Face
//   - Shape: string in, baseline-positioned gfx.Glyph slice out
//
// Shaping is HarfBuzz by way of go-text/typesetting. Before a string
// reaches the shaper it is split into runs of uniform direction and
// script, with bidirectional ordering from x/text/unicode/bidi, so
// mixed Latin and Hebrew text lays out in visual order.
//
// # Example usage
//
//	source, err := text.NewSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := source.Face(24)
//
//	glyphs, err := text.Shape("Hello", face)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = surface.ShowGlyphs(gfx.OpOver, pattern, glyphs, face, nil)
//
// The package does not rasterize. Turning glyphs into pixels is the
// renderer's business; Shape only decides which glyphs appear and
// where their origins sit.
package text
