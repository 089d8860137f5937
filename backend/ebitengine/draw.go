// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ebitengine

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
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

	if b.flags&hw.DrawBlend == 0 {
		rect := image.Rect(area.X1, area.Y1, area.X2, area.Y2)
		c := color.RGBA{R: b.color[0], G: b.color[1], B: b.color[2], A: b.color[3]}
		b.img.SubImage(rect).(*ebiten.Image).Fill(c)
		return nil
	}

	op := &ebiten.DrawImageOptions{Blend: b.blend}
	op.GeoM.Scale(float64(area.X2-area.X1), float64(area.Y2-area.Y1))
	op.GeoM.Translate(float64(area.X1), float64(area.Y1))
	op.ColorScale.Scale(
		float32(b.color[0])/255,
		float32(b.color[1])/255,
		float32(b.color[2])/255,
		float32(b.color[3])/255,
	)
	b.target().DrawImage(whiteSub, op)
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
	b.drawBlit(sb, sr, dx, dy)
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
			b.drawBlit(sb, sr, tx, ty)
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
	if r.X < 0 || r.Y < 0 || r.X+r.W > b.width || r.Y+r.H > b.height {
		return ErrOutOfBounds
	}
	rowBytes := b.canonical.RowBytes(r.W)
	if stride < rowBytes {
		return ErrShortData
	}
	if (r.H-1)*stride+rowBytes > len(data) {
		return ErrShortData
	}

	staged, err := pix.FromRaw(data, r.W, r.H, b.canonical, stride)
	if err != nil {
		return fmt.Errorf("ebitengine: staging write: %w", err)
	}
	rgba := make([]byte, 4*r.W*r.H)
	for y := 0; y < r.H; y++ {
		row := rgba[4*y*r.W:]
		for x := 0; x < r.W; x++ {
			cr, cg, cb, ca := staged.PremulRGBAAt(x, y)
			row[4*x], row[4*x+1], row[4*x+2], row[4*x+3] = cr, cg, cb, ca
		}
	}
	rect := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	b.img.SubImage(rect).(*ebiten.Image).WritePixels(rgba)
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
	sr := hw.Rect{X: 0, Y: 0, W: sb.width, H: sb.height}
	if srcRect != nil {
		sr = *srcRect
	}
	area := hw.RegionFromRect(sr).Intersect(hw.Region{X1: 0, Y1: 0, X2: sb.width, Y2: sb.height})
	if area.Empty() {
		return sb, hw.Rect{}, dx, dy, nil
	}
	dx += area.X1 - sr.X
	dy += area.Y1 - sr.Y
	sr = hw.Rect{X: area.X1, Y: area.Y1, W: area.X2 - area.X1, H: area.Y2 - area.Y1}
	return sb, sr, dx, dy, nil
}

// drawBlit issues one placement of sr at (dx, dy) through the blend
// stage, or as a plain copy when blending is off.
func (b *buffer) drawBlit(src *buffer, sr hw.Rect, dx, dy int) {
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy}
	if b.flags&hw.DrawBlend != 0 {
		op.Blend = b.blend
	}
	op.GeoM.Translate(float64(dx), float64(dy))
	part := src.img.SubImage(image.Rect(sr.X, sr.Y, sr.X+sr.W, sr.Y+sr.H)).(*ebiten.Image)
	b.target().DrawImage(part, op)
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
