// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/pix"
)

// ImageTarget is a plain-memory drawing target. CreateSimilar produces
// one when a device buffer is not warranted; applications can also use
// it directly as a headless destination. All compositing goes through
// the fallback engine; mapping hands out views of the owned image with
// no locking involved.
type ImageTarget struct {
	img           *pix.Image
	content       gfx.Content
	width, height int
	finished      bool
	fallback      Fallback
	log           *slog.Logger
}

var (
	_ Target   = (*ImageTarget)(nil)
	_ Mappable = (*ImageTarget)(nil)
)

// NewImageTarget creates a memory target holding the given channels.
// Non-positive dimensions are reported as zero size but backed by a
// single-pixel image so the target stays mappable.
func NewImageTarget(content gfx.Content, width, height int, opts ...Option) (*ImageTarget, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var format pix.Format
	switch content {
	case gfx.ContentColorAlpha:
		format = pix.ARGB32
	case gfx.ContentColor:
		format = pix.RGB32
	case gfx.ContentAlpha:
		format = pix.A8
	default:
		return nil, fmt.Errorf("fbdraw: invalid target content %v", content)
	}

	width = max(width, 0)
	height = max(height, 0)
	img, err := pix.New(max(width, 1), max(height, 1), format)
	if err != nil {
		return nil, fmt.Errorf("fbdraw: creating target image: %w", err)
	}
	return &ImageTarget{
		img:      img,
		content:  content,
		width:    width,
		height:   height,
		fallback: o.fallback,
		log:      o.logger,
	}, nil
}

// Size returns the target extents in pixels.
func (t *ImageTarget) Size() (width, height int) { return t.width, t.height }

// Format returns the canonical pixel format of the target.
func (t *ImageTarget) Format() pix.Format { return t.img.Format }

// Content reports which channels the target stores.
func (t *ImageTarget) Content() gfx.Content { return t.content }

// Image returns the backing image.
func (t *ImageTarget) Image() *pix.Image { return t.img }

// CreateSimilar creates another memory target.
func (t *ImageTarget) CreateSimilar(content gfx.Content, width, height int) (Target, error) {
	if t.finished {
		return nil, ErrSurfaceFinished
	}
	return NewImageTarget(content, width, height,
		WithLogger(t.log), WithFallback(t.fallback))
}

// Finish marks the target finished. It is idempotent; every other
// operation fails with ErrSurfaceFinished afterwards.
func (t *ImageTarget) Finish() error {
	t.finished = true
	return nil
}

// MapToImage returns a view of the pixels inside region. No locking is
// involved; the view stays valid until Finish.
func (t *ImageTarget) MapToImage(region image.Rectangle) (*pix.Image, error) {
	if t.finished {
		return nil, ErrSurfaceFinished
	}
	return t.img.SubImage(region), nil
}

// UnmapImage releases a view returned by MapToImage.
func (t *ImageTarget) UnmapImage(view *pix.Image) error {
	if t.finished {
		return ErrSurfaceFinished
	}
	return nil
}

// Flush is a no-op; the image is always current.
func (t *ImageTarget) Flush(flags FlushFlags) error {
	if t.finished {
		return ErrSurfaceFinished
	}
	return nil
}

// Fill composites pattern inside path onto the target.
func (t *ImageTarget) Fill(op gfx.Operator, pattern gfx.Pattern, path *gfx.Path, fillRule gfx.FillRule, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error {
	if t.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if t.fallback == nil {
		return ErrNoFallback
	}
	return t.fallback.Fill(t, op, pattern, path, fillRule, tolerance, antialias, clip)
}

// Paint composites source over the whole clipped target.
func (t *ImageTarget) Paint(op gfx.Operator, source gfx.Pattern, clip *gfx.Clip) error {
	if t.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if t.fallback == nil {
		return ErrNoFallback
	}
	return t.fallback.Paint(t, op, source, clip)
}

// Mask composites source through the alpha channel of mask.
func (t *ImageTarget) Mask(op gfx.Operator, source gfx.Pattern, mask gfx.Pattern, clip *gfx.Clip) error {
	if t.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if t.fallback == nil {
		return ErrNoFallback
	}
	return t.fallback.Mask(t, op, source, mask, clip)
}

// Stroke composites source along the stroked outline of path.
func (t *ImageTarget) Stroke(op gfx.Operator, source gfx.Pattern, path *gfx.Path, style *gfx.StrokeStyle, matrix gfx.Matrix, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error {
	if t.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if t.fallback == nil {
		return ErrNoFallback
	}
	return t.fallback.Stroke(t, op, source, path, style, matrix, tolerance, antialias, clip)
}

// ShowGlyphs composites source through the coverage of glyphs.
func (t *ImageTarget) ShowGlyphs(op gfx.Operator, source gfx.Pattern, glyphs []gfx.Glyph, face gfx.Face, clip *gfx.Clip) error {
	if t.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if t.fallback == nil {
		return ErrNoFallback
	}
	return t.fallback.ShowGlyphs(t, op, source, glyphs, face, clip)
}
