// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hw

// PixelFormat identifies a device surface format. The set mirrors what
// framebuffer hardware advertises; a compositing layer maps the formats
// it can work with to its own canonical representations and rejects the
// rest at construction time.
type PixelFormat uint32

const (
	// Unknown is the zero PixelFormat.
	Unknown PixelFormat = iota

	// ARGB1555 is 16-bit with 1-bit alpha.
	ARGB1555
	// RGB16 is 16-bit 5-6-5.
	RGB16
	// RGB24 is 24-bit packed, 3 bytes per pixel.
	RGB24
	// RGB32 is 32-bit with the high byte unused.
	RGB32
	// ARGB is 32-bit with 8-bit alpha.
	ARGB
	// A8 is 8-bit alpha only.
	A8
	// YUY2 is packed YUV 4:2:2.
	YUY2
	// RGB332 is 8-bit 3-3-2.
	RGB332
	// UYVY is packed YUV 4:2:2, swapped byte order.
	UYVY
	// I420 is planar YUV 4:2:0.
	I420
	// YV12 is planar YUV 4:2:0 with swapped chroma planes.
	YV12
	// LUT8 is 8-bit palette indexed.
	LUT8
	// ALUT44 is 4-bit alpha with 4-bit palette index.
	ALUT44
	// AiRGB is 32-bit with inverted alpha.
	AiRGB
	// A1 is 1-bit alpha only.
	A1
	// NV12 is planar luma with interleaved chroma, 4:2:0.
	NV12
	// NV16 is planar luma with interleaved chroma, 4:2:2.
	NV16
	// ARGB4444 is 16-bit 4-4-4-4.
	ARGB4444
	// AYUV is packed YUV with alpha.
	AYUV
	// A4 is 4-bit alpha only.
	A4
	// RGB444 is 16-bit 4-4-4 with the high nibble unused.
	RGB444
	// RGB555 is 16-bit 5-5-5 with the high bit unused.
	RGB555
	// BGR555 is 16-bit 5-5-5 with red and blue swapped.
	BGR555
	// ABGR is 32-bit with 8-bit alpha and the R, G, B memory order GPU
	// image libraries exchange.
	ABGR
)

// String returns a human-readable name for the format.
func (f PixelFormat) String() string {
	switch f {
	case ARGB1555:
		return "ARGB1555"
	case RGB16:
		return "RGB16"
	case RGB24:
		return "RGB24"
	case RGB32:
		return "RGB32"
	case ARGB:
		return "ARGB"
	case A8:
		return "A8"
	case YUY2:
		return "YUY2"
	case RGB332:
		return "RGB332"
	case UYVY:
		return "UYVY"
	case I420:
		return "I420"
	case YV12:
		return "YV12"
	case LUT8:
		return "LUT8"
	case ALUT44:
		return "ALUT44"
	case AiRGB:
		return "AiRGB"
	case A1:
		return "A1"
	case NV12:
		return "NV12"
	case NV16:
		return "NV16"
	case ARGB4444:
		return "ARGB4444"
	case AYUV:
		return "AYUV"
	case A4:
		return "A4"
	case RGB444:
		return "RGB444"
	case RGB555:
		return "RGB555"
	case BGR555:
		return "BGR555"
	case ABGR:
		return "ABGR"
	default:
		return "Unknown"
	}
}
