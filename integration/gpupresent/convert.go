// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpupresent

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/fbdraw"
	"github.com/gogpu/fbdraw/pix"
)

// surfaceBytes reads a surface back into tightly packed 4-byte pixels
// in the byte order the given texture format wants. Any format other
// than TextureFormatBGRA8Unorm packs as RGBA.
//
// The surface is flushed before mapping, so an open CPU view is
// written back first, and flushed again afterwards so it leaves in its
// device-owned identity.
func surfaceBytes(s *fbdraw.Surface, format gputypes.TextureFormat) ([]byte, error) {
	if err := s.Flush(0); err != nil {
		return nil, fmt.Errorf("gpupresent: flushing surface: %w", err)
	}

	width, height := s.Size()
	view, err := s.MapToImage(image.Rect(0, 0, width, height))
	if err != nil {
		return nil, fmt.Errorf("gpupresent: mapping surface: %w", err)
	}
	data := packPixels(view, format == gputypes.TextureFormatBGRA8Unorm)
	if err := s.UnmapImage(view); err != nil {
		return nil, fmt.Errorf("gpupresent: unmapping surface: %w", err)
	}

	if err := s.Flush(0); err != nil {
		return nil, fmt.Errorf("gpupresent: flushing surface: %w", err)
	}
	return data, nil
}

// packPixels converts a pixel view to tightly packed RGBA or BGRA
// bytes. The 32-bit device formats already hold one of the two byte
// orders in memory, so they pack row by row; everything else goes
// through the per-pixel lookup.
func packPixels(view *pix.Image, bgra bool) []byte {
	bounds := view.Bounds()
	out := make([]byte, bounds.Dx()*bounds.Dy()*4)

	switch view.Format {
	case pix.ARGB32:
		// Rows hold b,g,r,a per pixel, which is BGRA byte order.
		packRows(view, out, !bgra)
	case pix.ABGR32:
		// Rows hold r,g,b,a per pixel, which is RGBA byte order.
		packRows(view, out, bgra)
	default:
		packGeneric(view, out, bgra)
	}
	return out
}

// packRows copies 4-byte pixels row by row, optionally swapping the
// first and third byte of each pixel.
func packRows(view *pix.Image, out []byte, swap bool) {
	bounds := view.Bounds()
	rowLen := bounds.Dx() * 4
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dst := out[(y-bounds.Min.Y)*rowLen:]
		src := view.Row(y)
		if !swap {
			copy(dst[:rowLen], src)
			continue
		}
		for x := 0; x+3 < rowLen; x += 4 {
			dst[x] = src[x+2]
			dst[x+1] = src[x+1]
			dst[x+2] = src[x]
			dst[x+3] = src[x+3]
		}
	}
}

// packGeneric converts pixel by pixel through the canonical color
// lookup. Formats without alpha come out opaque; alpha-only formats
// come out as black with coverage.
func packGeneric(view *pix.Image, out []byte, bgra bool) {
	bounds := view.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := view.PremulRGBAAt(x, y)
			if bgra {
				r, b = b, r
			}
			out[i] = r
			out[i+1] = g
			out[i+2] = b
			out[i+3] = a
			i += 4
		}
	}
}
