// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

// formatToCanonical maps a device pixel format to its canonical image
// format. Device formats with no canonical representation map to
// pix.Invalid and cannot back a surface.
func formatToCanonical(f hw.PixelFormat) pix.Format {
	switch f {
	case hw.ARGB1555:
		return pix.ARGB1555
	case hw.RGB16:
		return pix.RGB16
	case hw.RGB24:
		return pix.RGB24
	case hw.RGB32:
		return pix.RGB32
	case hw.ARGB:
		return pix.ARGB32
	case hw.A8:
		return pix.A8
	case hw.YUY2:
		return pix.YUY2
	case hw.RGB332:
		return pix.RGB332
	case hw.YV12:
		return pix.YV12
	case hw.ARGB4444:
		return pix.ARGB4444
	case hw.A4:
		return pix.A4
	case hw.RGB444:
		return pix.RGB444
	case hw.RGB555:
		return pix.RGB555
	case hw.BGR555:
		return pix.BGR555
	case hw.ABGR:
		return pix.ABGR32
	default:
		return pix.Invalid
	}
}

// formatFromCanonical maps a canonical image format back to the device
// format used when creating upload buffers. Formats the upload path
// never produces report false.
func formatFromCanonical(f pix.Format) (hw.PixelFormat, bool) {
	switch f {
	case pix.ARGB32:
		return hw.ARGB, true
	case pix.RGB32:
		return hw.RGB32, true
	case pix.RGB24:
		return hw.RGB24, true
	case pix.A8:
		return hw.A8, true
	case pix.A1:
		return hw.A1, true
	case pix.RGB16:
		return hw.RGB16, true
	case pix.ABGR32:
		return hw.ABGR, true
	default:
		return hw.Unknown, false
	}
}

// contentForFormat reports which channels a canonical format stores.
// A format with neither color nor alpha cannot exist here; reaching
// one is a programming error.
func contentForFormat(f pix.Format) gfx.Content {
	info := f.Info()
	var c gfx.Content
	if info.HasColor {
		c |= gfx.ContentColor
	}
	if info.HasAlpha {
		c |= gfx.ContentAlpha
	}
	if c == 0 {
		panic("fbdraw: pixel format has neither color nor alpha channels")
	}
	return c
}

// contentOf reports which channels a device format stores.
func contentOf(f hw.PixelFormat) gfx.Content {
	return contentForFormat(formatToCanonical(f))
}
