// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"image"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/pix"
)

// FlushFlags modify the behavior of Flush.
type FlushFlags uint32

const (
	// FlushHint marks the flush as advisory. Pending CPU views stay
	// open and nothing is written back.
	FlushHint FlushFlags = 1 << 0
)

// Target is a drawing destination: a surface that compositing
// operations can be issued against. It is implemented by *Surface
// (device-backed) and *ImageTarget (plain memory).
type Target interface {
	// Size returns the target extents in pixels.
	Size() (width, height int)

	// Format returns the canonical pixel format of the target.
	Format() pix.Format

	// Content reports which channels the target stores.
	Content() gfx.Content

	// CreateSimilar creates a compatible target for intermediate
	// results.
	CreateSimilar(content gfx.Content, width, height int) (Target, error)

	// Finish releases the target's resources. Finish is idempotent;
	// other operations fail after it.
	Finish() error

	// MapToImage exposes the pixels inside region for CPU access.
	MapToImage(region image.Rectangle) (*pix.Image, error)

	// UnmapImage releases a view returned by MapToImage.
	UnmapImage(view *pix.Image) error

	// Flush synchronizes CPU-visible pixel state with the target.
	Flush(flags FlushFlags) error

	// Fill composites pattern inside path onto the target.
	Fill(op gfx.Operator, pattern gfx.Pattern, path *gfx.Path, fillRule gfx.FillRule, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error

	// Paint composites source over the whole clipped target.
	Paint(op gfx.Operator, source gfx.Pattern, clip *gfx.Clip) error

	// Mask composites source through the alpha of mask.
	Mask(op gfx.Operator, source gfx.Pattern, mask gfx.Pattern, clip *gfx.Clip) error

	// Stroke composites source along the stroked outline of path.
	Stroke(op gfx.Operator, source gfx.Pattern, path *gfx.Path, style *gfx.StrokeStyle, matrix gfx.Matrix, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error

	// ShowGlyphs composites source through the coverage of glyphs.
	ShowGlyphs(op gfx.Operator, source gfx.Pattern, glyphs []gfx.Glyph, face gfx.Face, clip *gfx.Clip) error
}

// Mappable is the destination contract a software engine draws
// through: enough of a target to address its pixels directly.
type Mappable interface {
	Size() (width, height int)
	Format() pix.Format
	Content() gfx.Content
	MapToImage(region image.Rectangle) (*pix.Image, error)
	UnmapImage(view *pix.Image) error
	Flush(flags FlushFlags) error
}

// Fallback is a general-purpose software compositing engine. The
// adapter hands it every operation the device cannot execute, with the
// original arguments, so native and delegated rendering stay
// pixel-compatible.
type Fallback interface {
	Fill(dst Mappable, op gfx.Operator, pattern gfx.Pattern, path *gfx.Path, fillRule gfx.FillRule, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error
	Paint(dst Mappable, op gfx.Operator, source gfx.Pattern, clip *gfx.Clip) error
	Mask(dst Mappable, op gfx.Operator, source gfx.Pattern, mask gfx.Pattern, clip *gfx.Clip) error
	Stroke(dst Mappable, op gfx.Operator, source gfx.Pattern, path *gfx.Path, style *gfx.StrokeStyle, matrix gfx.Matrix, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error
	ShowGlyphs(dst Mappable, op gfx.Operator, source gfx.Pattern, glyphs []gfx.Glyph, face gfx.Face, clip *gfx.Clip) error
}

// SourceAcquirer resolves a pattern's image source to CPU pixels for
// upload. The release func must be called when the pixels are no
// longer needed.
type SourceAcquirer interface {
	AcquireSource(src gfx.ImageSource) (*pix.Image, func(), error)
}

// acquireDirect is the default SourceAcquirer: it asks the source
// itself.
type acquireDirect struct{}

func (acquireDirect) AcquireSource(src gfx.ImageSource) (*pix.Image, func(), error) {
	return src.AcquireImage()
}
