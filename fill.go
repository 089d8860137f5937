// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/hw"
)

// Fill composites pattern inside path onto the surface.
//
// Fills the device can express run natively: a structurally
// rectangular path, a solid color or an uploadable surface pattern,
// and an operator the blend unit implements. Everything else is
// retried through the fallback engine with the original arguments, so
// a fill is always executed whole by exactly one engine.
func (s *Surface) Fill(op gfx.Operator, pattern gfx.Pattern, path *gfx.Path, fillRule gfx.FillRule, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error {
	if s.finished {
		return ErrSurfaceFinished
	}
	if clip != nil && clip.AllClipped {
		return nil
	}
	if !operatorSupported(op) {
		s.log.Debug("fill delegated",
			slog.String("reason", "operator"),
			slog.String("op", op.String()))
		return s.fallbackFill(op, pattern, path, fillRule, tolerance, antialias, clip)
	}
	if err := s.setClip(clip); err != nil {
		return err
	}

	var err error
	switch p := pattern.(type) {
	case gfx.SolidPattern:
		err = s.fillSolid(op, p, path)
	case gfx.SurfacePattern:
		err = s.fillSurface(op, p, path)
	default:
		err = ErrUnsupported
	}
	if errors.Is(err, ErrUnsupported) {
		s.log.Debug("fill delegated", slog.String("reason", "not native"))
		return s.fallbackFill(op, pattern, path, fillRule, tolerance, antialias, clip)
	}
	return err
}

// fillSolid draws a solid rectangle through the device's fill
// primitive. Anything it cannot express exactly reports
// ErrUnsupported.
func (s *Surface) fillSolid(op gfx.Operator, pattern gfx.SolidPattern, path *gfx.Path) error {
	box, ok := path.IsRectangle()
	if !ok {
		return ErrUnsupported
	}
	pair, ok := operatorBlendPair(op)
	if !ok {
		return ErrUnsupported
	}
	if pattern.Color.IsOpaque() {
		pair = pair.collapseOpaque()
	}

	if pair.isReplace() {
		if err := s.buf.SetDrawingFlags(hw.DrawNoFX); err != nil {
			return err
		}
	} else {
		if err := s.buf.SetDrawingFlags(hw.DrawBlend); err != nil {
			return err
		}
		if err := s.buf.SetBlendFunctions(pair.src, pair.dst); err != nil {
			return err
		}
	}

	var r, g, b, a uint8
	if s.premultiplied {
		r, g, b, a = pattern.Color.PremulRGBA8()
	} else {
		r, g, b, a = pattern.Color.RGBA8()
	}
	if err := s.buf.SetColor(r, g, b, a); err != nil {
		return err
	}

	x, y, w, h := box.Rect()
	s.log.Debug("native solid fill",
		slog.Int("x", x), slog.Int("y", y),
		slog.Int("w", w), slog.Int("h", h),
		slog.String("op", op.String()))
	return s.buf.FillRectangle(hw.Rect{X: x, Y: y, W: w, H: h})
}

// fillSurface draws a surface-pattern rectangle by uploading the
// source pixels into a temporary device buffer and blitting it onto
// the surface. The upload path is restricted to opaque, none- or
// repeat-extended sources; everything else reports ErrUnsupported.
func (s *Surface) fillSurface(op gfx.Operator, pattern gfx.SurfacePattern, path *gfx.Path) error {
	box, ok := path.IsRectangle()
	if !ok {
		return ErrUnsupported
	}
	if pattern.Extend != gfx.ExtendNone && pattern.Extend != gfx.ExtendRepeat {
		return ErrUnsupported
	}

	src, release, err := s.acquire.AcquireSource(pattern.Source)
	if err != nil {
		// A source that cannot produce pixels here may still work
		// through the fallback engine.
		s.log.Debug("source acquire failed", slog.String("error", err.Error()))
		return ErrUnsupported
	}
	defer release()

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return ErrUnsupported
	}
	if contentForFormat(src.Format)&gfx.ContentAlpha != 0 {
		// The upload blit assumes opaque source content.
		return ErrUnsupported
	}
	hwFormat, ok := formatFromCanonical(src.Format)
	if !ok {
		return ErrUnsupported
	}

	var caps hw.Caps
	if s.premultiplied {
		caps |= hw.CapPremultiplied
	}
	tmp, err := s.dev.CreateBuffer(hw.BufferDescription{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: hwFormat,
		Caps:   caps,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoMemory, err)
	}
	defer tmp.Release()

	full := hw.Rect{W: bounds.Dx(), H: bounds.Dy()}
	if err := tmp.Write(full, src.Pix, src.Stride); err != nil {
		return err
	}

	if err := s.buf.SetDrawingFlags(hw.DrawBlend); err != nil {
		return err
	}
	rule, ok := operatorPorterDuff(op)
	if !ok {
		return ErrUnsupported
	}
	if err := s.buf.SetPorterDuff(rule); err != nil {
		return err
	}

	m := pattern.Matrix
	if m == (gfx.Matrix{}) {
		m = gfx.Identity() // zero value reads as "no transform"
	}
	dx, dy, dw, dh := box.Rect()
	srcRect := translatedRect(box, m)

	s.log.Debug("native surface fill",
		slog.Int("x", dx), slog.Int("y", dy),
		slog.Int("w", dw), slog.Int("h", dh),
		slog.String("op", op.String()),
		slog.String("extend", pattern.Extend.String()))
	if pattern.Extend == gfx.ExtendNone {
		return s.buf.Blit(tmp, &srcRect, dx, dy)
	}
	return s.tileBlit(tmp, srcRect, dx, dy, dw, dh)
}

// tileBlit repeats srcRect over the fill box. Tiling hardware covers
// the whole clip region, so the box is imposed as a narrowed clip for
// the duration of the blit and the caller's clip restored after.
func (s *Surface) tileBlit(tmp hw.Buffer, srcRect hw.Rect, dx, dy, dw, dh int) error {
	bound := hw.RegionFromRect(hw.Rect{X: dx, Y: dy, W: dw, H: dh})
	if s.clipRegion != nil {
		bound = bound.Intersect(*s.clipRegion)
	}
	if bound.Empty() {
		return nil
	}
	if err := s.buf.SetClip(&bound); err != nil {
		return err
	}
	err := s.buf.TileBlit(tmp, &srcRect, dx, dy)
	if rerr := s.buf.SetClip(s.clipRegion); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

// translatedRect maps the fill box through the pattern matrix into
// source space. Coordinates truncate to device pixels; a flipping
// matrix still yields a min-cornered rectangle.
func translatedRect(box gfx.Box, m gfx.Matrix) hw.Rect {
	x1, y1 := m.Apply(float64(box.P1.X)/64, float64(box.P1.Y)/64)
	x2, y2 := m.Apply(float64(box.P2.X)/64, float64(box.P2.Y)/64)
	ix1, iy1 := int(x1), int(y1)
	ix2, iy2 := int(x2), int(y2)
	if ix2 < ix1 {
		ix1, ix2 = ix2, ix1
	}
	if iy2 < iy1 {
		iy1, iy2 = iy2, iy1
	}
	return hw.Rect{X: ix1, Y: iy1, W: ix2 - ix1, H: iy2 - iy1}
}

// fallbackFill retries a fill through the software engine.
func (s *Surface) fallbackFill(op gfx.Operator, pattern gfx.Pattern, path *gfx.Path, fillRule gfx.FillRule, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error {
	if s.fallback == nil {
		return ErrNoFallback
	}
	return s.fallback.Fill(s, op, pattern, path, fillRule, tolerance, antialias, clip)
}
