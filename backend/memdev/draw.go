// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memdev

import (
	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/internal/blend"
)

// FillRectangle fills r with the current color, clipped and blended
// per the current draw state.
func (b *buffer) FillRectangle(r hw.Rect) error {
	if err := b.drawable(); err != nil {
		return err
	}
	area := hw.RegionFromRect(r).Intersect(b.clip)
	if area.Empty() {
		return nil
	}
	cr, cg, cb, ca := b.color[0], b.color[1], b.color[2], b.color[3]
	blending := b.flags&hw.DrawBlend != 0
	for y := area.Y1; y < area.Y2; y++ {
		for x := area.X1; x < area.X2; x++ {
			if blending {
				dr, dg, db, da := b.img.PremulRGBAAt(x, y)
				nr, ng, nb, na := blend.Pixel(b.srcFactor, b.dstFactor, cr, cg, cb, ca, dr, dg, db, da)
				b.img.SetPremulRGBA(x, y, nr, ng, nb, na)
			} else {
				b.img.SetPremulRGBA(x, y, cr, cg, cb, ca)
			}
		}
	}
	return nil
}

// Blit copies srcRect from src to (dx, dy), clipped and blended per
// the current draw state. A nil srcRect copies the whole source.
func (b *buffer) Blit(src hw.Buffer, srcRect *hw.Rect, dx, dy int) error {
	if err := b.drawable(); err != nil {
		return err
	}
	sb, sr, dx, dy, err := b.resolveSource(src, srcRect, dx, dy)
	if err != nil {
		return err
	}
	if sr.Empty() {
		return nil
	}
	b.blitRect(sb, sr, dx, dy)
	return nil
}

// TileBlit repeats srcRect across the clip region with the tile phase
// anchored at (dx, dy). The rectangle is clamped against the source
// first, so an oversized rect tiles with the source's real extent.
func (b *buffer) TileBlit(src hw.Buffer, srcRect *hw.Rect, dx, dy int) error {
	if err := b.drawable(); err != nil {
		return err
	}
	sb, sr, dx, dy, err := b.resolveSource(src, srcRect, dx, dy)
	if err != nil {
		return err
	}
	if sr.Empty() || b.clip.Empty() {
		return nil
	}
	startX := dx + floorDiv(b.clip.X1-dx, sr.W)*sr.W
	startY := dy + floorDiv(b.clip.Y1-dy, sr.H)*sr.H
	for ty := startY; ty < b.clip.Y2; ty += sr.H {
		for tx := startX; tx < b.clip.X2; tx += sr.W {
			b.blitRect(sb, sr, tx, ty)
		}
	}
	return nil
}

// Write stores raw pixel rows into r without blending. The rectangle
// must lie inside the buffer; data rows are stride bytes apart.
func (b *buffer) Write(r hw.Rect, data []byte, stride int) error {
	if err := b.drawable(); err != nil {
		return err
	}
	if r.Empty() {
		return nil
	}
	w, h := b.Size()
	if r.X < 0 || r.Y < 0 || r.X+r.W > w || r.Y+r.H > h {
		return ErrOutOfBounds
	}
	rowBytes := b.img.Format.RowBytes(r.W)
	if stride < rowBytes {
		return ErrShortData
	}
	if (r.H-1)*stride+rowBytes > len(data) {
		return ErrShortData
	}
	for row := 0; row < r.H; row++ {
		off := b.img.PixOffset(r.X, r.Y+row)
		copy(b.img.Pix[off:off+rowBytes], data[row*stride:])
	}
	return nil
}

// resolveSource checks that src is a live buffer of this device,
// resolves a nil srcRect to the whole source, and clamps the rectangle
// against the source bounds. The destination anchor shifts with the
// clamped origin so pixels keep their placement.
func (b *buffer) resolveSource(src hw.Buffer, srcRect *hw.Rect, dx, dy int) (*buffer, hw.Rect, int, int, error) {
	sb, ok := src.(*buffer)
	if !ok {
		return nil, hw.Rect{}, 0, 0, ErrForeignSource
	}
	if sb.freed() {
		return nil, hw.Rect{}, 0, 0, ErrBufferFreed
	}
	w, h := sb.Size()
	sr := hw.Rect{X: 0, Y: 0, W: w, H: h}
	if srcRect != nil {
		sr = *srcRect
	}
	area := hw.RegionFromRect(sr).Intersect(hw.Region{X1: 0, Y1: 0, X2: w, Y2: h})
	if area.Empty() {
		return sb, hw.Rect{}, dx, dy, nil
	}
	dx += area.X1 - sr.X
	dy += area.Y1 - sr.Y
	sr = hw.Rect{X: area.X1, Y: area.Y1, W: area.X2 - area.X1, H: area.Y2 - area.Y1}
	return sb, sr, dx, dy, nil
}

// blitRect copies one placement of sr to (dx, dy). Pixels outside the
// destination clip are skipped; sr is already inside the source.
func (b *buffer) blitRect(src *buffer, sr hw.Rect, dx, dy int) {
	blending := b.flags&hw.DrawBlend != 0
	for j := 0; j < sr.H; j++ {
		y := dy + j
		if y < b.clip.Y1 || y >= b.clip.Y2 {
			continue
		}
		for i := 0; i < sr.W; i++ {
			x := dx + i
			if x < b.clip.X1 || x >= b.clip.X2 {
				continue
			}
			cr, cg, cb, ca := src.img.PremulRGBAAt(sr.X+i, sr.Y+j)
			if blending {
				dr, dg, db, da := b.img.PremulRGBAAt(x, y)
				cr, cg, cb, ca = blend.Pixel(b.srcFactor, b.dstFactor, cr, cg, cb, ca, dr, dg, db, da)
			}
			b.img.SetPremulRGBA(x, y, cr, cg, cb, ca)
		}
	}
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
