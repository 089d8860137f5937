// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pix

import (
	"errors"
	"image"

	"github.com/gogpu/fbdraw/internal/blend"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pix: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pix: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pix: data buffer too small")
)

// Image is a CPU-side pixel buffer in one of the canonical formats.
//
// The layout follows the standard library image types: Pix holds the
// pixels, Stride is the distance in bytes between vertically adjacent
// pixels, and Rect is the image's bounds. Pix[0] addresses the pixel at
// Rect.Min. Sub-images share the backing slice with their parent.
//
// Image is not safe for concurrent writes.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
	Format Format
}

// New allocates an image of the given size. The backing slice is zeroed,
// which is transparent black for alpha formats.
func New(width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Image{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
		Format: format,
	}, nil
}

// FromRaw wraps existing pixel data without copying. The caller must keep
// data valid for the lifetime of the Image. Stride must be at least
// format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	minStride := format.RowBytes(width)
	if stride < minStride {
		return nil, ErrInvalidStride
	}

	// The final row does not need trailing stride padding.
	requiredSize := (height-1)*stride + minStride
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &Image{
		Pix:    data,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
		Format: format,
	}, nil
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// SubImage returns an image representing the portion of p visible through
// r. The returned image shares pixels with p.
func (p *Image) SubImage(r image.Rectangle) *Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Image{Format: p.Format}
	}
	return &Image{
		Pix:    p.Pix[p.PixOffset(r.Min.X, r.Min.Y):],
		Stride: p.Stride,
		Rect:   r,
		Format: p.Format,
	}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
// It returns -1 for sub-byte and planar formats, which are not byte
// addressable.
func (p *Image) PixOffset(x, y int) int {
	bpp := p.Format.BytesPerPixel()
	if bpp == 0 {
		return -1
	}
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*bpp
}

// Row returns the pixel bytes of row y, without stride padding.
// Returns nil if y is outside the bounds or the format is not byte
// addressable.
func (p *Image) Row(y int) []byte {
	if y < p.Rect.Min.Y || y >= p.Rect.Max.Y {
		return nil
	}
	start := p.PixOffset(p.Rect.Min.X, y)
	if start < 0 {
		return nil
	}
	return p.Pix[start : start+p.Format.RowBytes(p.Rect.Dx())]
}

// Clear sets every pixel to zero.
func (p *Image) Clear() {
	rowLen := p.Format.RowBytes(p.Rect.Dx())
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		start := (y - p.Rect.Min.Y) * p.Stride
		clear(p.Pix[start : start+rowLen])
	}
}

// AcquireImage returns the image itself with a no-op release. This
// satisfies the source-acquisition contract for pixel sources that
// already live in CPU memory.
func (p *Image) AcquireImage() (*Image, func(), error) {
	return p, func() {}, nil
}

// PremulRGBAAt returns the premultiplied color at (x, y) in 0-255 range.
// Formats without alpha report a=255; alpha-only formats report black.
// Out-of-bounds coordinates and non-addressable formats return zeros.
func (p *Image) PremulRGBAAt(x, y int) (r, g, b, a uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0, 0, 0, 0
	}
	i := p.PixOffset(x, y)
	if i < 0 {
		return 0, 0, 0, 0
	}

	switch p.Format {
	case ARGB32:
		return p.Pix[i+2], p.Pix[i+1], p.Pix[i], p.Pix[i+3]
	case ABGR32:
		return p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]
	case RGB32:
		return p.Pix[i+2], p.Pix[i+1], p.Pix[i], 255
	case RGB24:
		return p.Pix[i+2], p.Pix[i+1], p.Pix[i], 255
	case RGB16:
		w := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		return expand5(byte(w >> 11)), expand6(byte(w >> 5 & 0x3f)), expand5(byte(w & 0x1f)), 255
	case ARGB1555:
		w := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		a := byte(0)
		if w&0x8000 != 0 {
			a = 255
		}
		return expand5(byte(w >> 10 & 0x1f)), expand5(byte(w >> 5 & 0x1f)), expand5(byte(w & 0x1f)), a
	case RGB555:
		w := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		return expand5(byte(w >> 10 & 0x1f)), expand5(byte(w >> 5 & 0x1f)), expand5(byte(w & 0x1f)), 255
	case BGR555:
		w := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		return expand5(byte(w & 0x1f)), expand5(byte(w >> 5 & 0x1f)), expand5(byte(w >> 10 & 0x1f)), 255
	case ARGB4444:
		w := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		return expand4(byte(w >> 8 & 0xf)), expand4(byte(w >> 4 & 0xf)), expand4(byte(w & 0xf)), expand4(byte(w >> 12))
	case RGB444:
		w := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		return expand4(byte(w >> 8 & 0xf)), expand4(byte(w >> 4 & 0xf)), expand4(byte(w & 0xf)), 255
	case RGB332:
		v := p.Pix[i]
		return expand3(v >> 5), expand3(v >> 2 & 0x7), expand2(v & 0x3), 255
	case A8:
		return 0, 0, 0, p.Pix[i]
	default:
		return 0, 0, 0, 0
	}
}

// SetPremulRGBA stores the premultiplied color at (x, y), truncating
// channels to the format's bit depth. Formats without alpha drop a;
// alpha-only formats keep only a. Out-of-bounds coordinates and
// non-addressable formats are ignored.
func (p *Image) SetPremulRGBA(x, y int, r, g, b, a uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	if i < 0 {
		return
	}

	switch p.Format {
	case ARGB32:
		p.Pix[i] = b
		p.Pix[i+1] = g
		p.Pix[i+2] = r
		p.Pix[i+3] = a
	case ABGR32:
		p.Pix[i] = r
		p.Pix[i+1] = g
		p.Pix[i+2] = b
		p.Pix[i+3] = a
	case RGB32:
		p.Pix[i] = b
		p.Pix[i+1] = g
		p.Pix[i+2] = r
		p.Pix[i+3] = 0
	case RGB24:
		p.Pix[i] = b
		p.Pix[i+1] = g
		p.Pix[i+2] = r
	case RGB16:
		w := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		p.Pix[i] = byte(w)
		p.Pix[i+1] = byte(w >> 8)
	case ARGB1555:
		w := uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
		if a >= 128 {
			w |= 0x8000
		}
		p.Pix[i] = byte(w)
		p.Pix[i+1] = byte(w >> 8)
	case RGB555:
		w := uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
		p.Pix[i] = byte(w)
		p.Pix[i+1] = byte(w >> 8)
	case BGR555:
		w := uint16(b>>3)<<10 | uint16(g>>3)<<5 | uint16(r>>3)
		p.Pix[i] = byte(w)
		p.Pix[i+1] = byte(w >> 8)
	case ARGB4444:
		w := uint16(a>>4)<<12 | uint16(r>>4)<<8 | uint16(g>>4)<<4 | uint16(b>>4)
		p.Pix[i] = byte(w)
		p.Pix[i+1] = byte(w >> 8)
	case RGB444:
		w := uint16(r>>4)<<8 | uint16(g>>4)<<4 | uint16(b>>4)
		p.Pix[i] = byte(w)
		p.Pix[i+1] = byte(w >> 8)
	case RGB332:
		p.Pix[i] = r&0xe0 | g>>3&0x1c | b>>6
	case A8:
		p.Pix[i] = a
	}
}

// Premultiply multiplies the color channels by alpha in place. It has
// effect only on the 32-bit alpha formats; other formats are assumed to
// already hold device-ready values.
func (p *Image) Premultiply() {
	if p.Format != ARGB32 && p.Format != ABGR32 {
		return
	}
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		row := p.Row(y)
		for i := 0; i+3 < len(row); i += 4 {
			a := row[i+3]
			if a == 255 {
				continue
			}
			row[i] = blend.MulDiv255(row[i], a)
			row[i+1] = blend.MulDiv255(row[i+1], a)
			row[i+2] = blend.MulDiv255(row[i+2], a)
		}
	}
}

// expand5 widens a 5-bit channel to 8 bits by bit replication.
func expand5(v byte) byte {
	return v<<3 | v>>2
}

// expand6 widens a 6-bit channel to 8 bits by bit replication.
func expand6(v byte) byte {
	return v<<2 | v>>4
}

// expand4 widens a 4-bit channel to 8 bits by bit replication.
func expand4(v byte) byte {
	return v<<4 | v
}

// expand3 widens a 3-bit channel to 8 bits by bit replication.
func expand3(v byte) byte {
	return v<<5 | v<<2 | v>>1
}

// expand2 widens a 2-bit channel to 8 bits by bit replication.
func expand2(v byte) byte {
	return v<<6 | v<<4 | v<<2 | v
}
