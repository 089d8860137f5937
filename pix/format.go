// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pix provides canonical CPU-side pixel images.
//
// A pix.Image is the software view of a framebuffer: a byte slice with
// stride, addressed in a fixed set of storage formats. The formats mirror
// what blitting hardware actually stores, including packed 16-bit and
// sub-byte variants. Color channels of alpha formats are premultiplied.
//
// Multi-byte pixels are stored as little-endian words, so ARGB32 is the
// byte sequence B, G, R, A and ABGR32 is R, G, B, A.
package pix

// Format identifies a canonical pixel storage format.
type Format uint8

const (
	// Invalid is the zero Format. No storage layout is defined for it;
	// lookups that cannot map a device format produce Invalid.
	Invalid Format = iota

	// ARGB1555 is 16-bit packed: alpha 1@15, red 5@10, green 5@5, blue 5@0.
	ARGB1555

	// RGB16 is 16-bit packed: red 5@11, green 6@5, blue 5@0.
	RGB16

	// RGB24 is 24-bit with 3 bytes per pixel: blue, green, red.
	RGB24

	// RGB32 is 32-bit with the alpha byte unused: red 8@16, green 8@8,
	// blue 8@0.
	RGB32

	// ARGB32 is 32-bit premultiplied: alpha 8@24, red 8@16, green 8@8,
	// blue 8@0.
	ARGB32

	// A8 is 8-bit alpha only.
	A8

	// YUY2 is 16-bit packed YUV 4:2:2. It cannot be composited into.
	YUY2

	// RGB332 is 8-bit packed: red 3@5, green 3@2, blue 2@0.
	RGB332

	// YV12 is 12-bit planar YUV 4:2:0. It cannot be composited into.
	YV12

	// ARGB4444 is 16-bit packed: alpha 4@12, red 4@8, green 4@4, blue 4@0.
	ARGB4444

	// A4 is 4-bit alpha only, two pixels per byte.
	A4

	// RGB444 is 16-bit packed: red 4@8, green 4@4, blue 4@0.
	RGB444

	// RGB555 is 16-bit packed: red 5@10, green 5@5, blue 5@0.
	RGB555

	// BGR555 is 16-bit packed: blue 5@10, green 5@5, red 5@0.
	BGR555

	// ABGR32 is 32-bit premultiplied: alpha 8@24, blue 8@16, green 8@8,
	// red 8@0. In memory this is the R, G, B, A byte order GPU image
	// libraries exchange.
	ABGR32

	// A1 is 1-bit alpha only, eight pixels per byte.
	A1

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BitsPerPixel is the storage size of one pixel in bits.
	BitsPerPixel int

	// Depth is the number of significant bits per pixel.
	Depth int

	// HasAlpha indicates if the format carries an alpha channel.
	HasAlpha bool

	// HasColor indicates if the format carries color channels.
	HasColor bool

	// Renderable indicates if the format can be a compositing
	// destination. YUV formats are exchange-only.
	Renderable bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	Invalid:  {},
	ARGB1555: {BitsPerPixel: 16, Depth: 16, HasAlpha: true, HasColor: true, Renderable: true},
	RGB16:    {BitsPerPixel: 16, Depth: 16, HasAlpha: false, HasColor: true, Renderable: true},
	RGB24:    {BitsPerPixel: 24, Depth: 24, HasAlpha: false, HasColor: true, Renderable: true},
	RGB32:    {BitsPerPixel: 32, Depth: 24, HasAlpha: false, HasColor: true, Renderable: true},
	ARGB32:   {BitsPerPixel: 32, Depth: 32, HasAlpha: true, HasColor: true, Renderable: true},
	A8:       {BitsPerPixel: 8, Depth: 8, HasAlpha: true, HasColor: false, Renderable: true},
	YUY2:     {BitsPerPixel: 16, Depth: 16, HasAlpha: false, HasColor: true, Renderable: false},
	RGB332:   {BitsPerPixel: 8, Depth: 8, HasAlpha: false, HasColor: true, Renderable: true},
	YV12:     {BitsPerPixel: 12, Depth: 12, HasAlpha: false, HasColor: true, Renderable: false},
	ARGB4444: {BitsPerPixel: 16, Depth: 16, HasAlpha: true, HasColor: true, Renderable: true},
	A4:       {BitsPerPixel: 4, Depth: 4, HasAlpha: true, HasColor: false, Renderable: true},
	RGB444:   {BitsPerPixel: 16, Depth: 12, HasAlpha: false, HasColor: true, Renderable: true},
	RGB555:   {BitsPerPixel: 16, Depth: 15, HasAlpha: false, HasColor: true, Renderable: true},
	BGR555:   {BitsPerPixel: 16, Depth: 15, HasAlpha: false, HasColor: true, Renderable: true},
	ABGR32:   {BitsPerPixel: 32, Depth: 32, HasAlpha: true, HasColor: true, Renderable: true},
	A1:       {BitsPerPixel: 1, Depth: 1, HasAlpha: true, HasColor: false, Renderable: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BitsPerPixel returns the storage size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// Depth returns the number of significant bits per pixel.
func (f Format) Depth() int {
	return f.Info().Depth
}

// HasAlpha returns true if this format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// HasColor returns true if this format carries color channels.
func (f Format) HasColor() bool {
	return f.Info().HasColor
}

// BytesPerPixel returns the storage size of one pixel in whole bytes.
// Sub-byte and planar formats, which are not independently byte
// addressable, return 0.
func (f Format) BytesPerPixel() int {
	switch f {
	case A1, A4, YUY2, YV12, Invalid:
		return 0
	default:
		return f.BitsPerPixel() / 8
	}
}

// CanRenderTo returns true if this format can be a compositing
// destination, which makes it usable for software rendering views.
func (f Format) CanRenderTo() bool {
	return f.Info().Renderable
}

// IsValid returns true if the format is a known format other than Invalid.
func (f Format) IsValid() bool {
	return f > Invalid && f < formatCount
}

// RowBytes returns the number of bytes needed for a row of the given
// width, rounding sub-byte formats up to whole bytes.
func (f Format) RowBytes(width int) int {
	return (width*f.BitsPerPixel() + 7) / 8
}

// ImageBytes returns the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case ARGB1555:
		return "ARGB1555"
	case RGB16:
		return "RGB16"
	case RGB24:
		return "RGB24"
	case RGB32:
		return "RGB32"
	case ARGB32:
		return "ARGB32"
	case A8:
		return "A8"
	case YUY2:
		return "YUY2"
	case RGB332:
		return "RGB332"
	case YV12:
		return "YV12"
	case ARGB4444:
		return "ARGB4444"
	case A4:
		return "A4"
	case RGB444:
		return "RGB444"
	case RGB555:
		return "RGB555"
	case BGR555:
		return "BGR555"
	case ABGR32:
		return "ABGR32"
	case A1:
		return "A1"
	default:
		return "Invalid"
	}
}
