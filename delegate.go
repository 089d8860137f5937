// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"log/slog"

	"github.com/gogpu/fbdraw/gfx"
)

// The device exposes rectangle fills and blits only. Whole-surface
// painting, masking, stroking and glyph rendering have no native
// equivalent, so these operations always delegate to the fallback
// engine with their original arguments.

// Paint composites source over the whole clipped surface.
func (s *Surface) Paint(op gfx.Operator, source gfx.Pattern, clip *gfx.Clip) error {
	if s.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if s.fallback == nil {
		return ErrNoFallback
	}
	s.log.Debug("paint delegated", slog.String("op", op.String()))
	return s.fallback.Paint(s, op, source, clip)
}

// Mask composites source through the alpha channel of mask.
func (s *Surface) Mask(op gfx.Operator, source gfx.Pattern, mask gfx.Pattern, clip *gfx.Clip) error {
	if s.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if s.fallback == nil {
		return ErrNoFallback
	}
	s.log.Debug("mask delegated", slog.String("op", op.String()))
	return s.fallback.Mask(s, op, source, mask, clip)
}

// Stroke composites source along the stroked outline of path.
func (s *Surface) Stroke(op gfx.Operator, source gfx.Pattern, path *gfx.Path, style *gfx.StrokeStyle, matrix gfx.Matrix, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error {
	if s.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if s.fallback == nil {
		return ErrNoFallback
	}
	s.log.Debug("stroke delegated", slog.String("op", op.String()))
	return s.fallback.Stroke(s, op, source, path, style, matrix, tolerance, antialias, clip)
}

// ShowGlyphs composites source through the coverage of glyphs.
func (s *Surface) ShowGlyphs(op gfx.Operator, source gfx.Pattern, glyphs []gfx.Glyph, face gfx.Face, clip *gfx.Clip) error {
	if s.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if s.fallback == nil {
		return ErrNoFallback
	}
	s.log.Debug("glyphs delegated",
		slog.String("op", op.String()),
		slog.Int("count", len(glyphs)))
	return s.fallback.ShowGlyphs(s, op, source, glyphs, face, clip)
}
