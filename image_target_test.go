// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/pix"
)

func TestNewImageTarget(t *testing.T) {
	tests := []struct {
		content  gfx.Content
		expected pix.Format
	}{
		{gfx.ContentColorAlpha, pix.ARGB32},
		{gfx.ContentColor, pix.RGB32},
		{gfx.ContentAlpha, pix.A8},
	}

	for _, tt := range tests {
		t.Run(tt.content.String(), func(t *testing.T) {
			target, err := NewImageTarget(tt.content, 32, 16)
			if err != nil {
				t.Fatalf("NewImageTarget() error: %v", err)
			}
			if got := target.Format(); got != tt.expected {
				t.Errorf("Format() = %v, want %v", got, tt.expected)
			}
			if got := target.Content(); got != tt.content {
				t.Errorf("Content() = %v, want %v", got, tt.content)
			}
			w, h := target.Size()
			if w != 32 || h != 16 {
				t.Errorf("Size() = (%d, %d), want (32, 16)", w, h)
			}
		})
	}
}

func TestNewImageTargetInvalidContent(t *testing.T) {
	if _, err := NewImageTarget(gfx.Content(0), 8, 8); err == nil {
		t.Error("NewImageTarget(0) succeeded, want error")
	}
}

func TestNewImageTargetZeroSize(t *testing.T) {
	target, err := NewImageTarget(gfx.ContentColorAlpha, 0, -5)
	if err != nil {
		t.Fatalf("NewImageTarget() error: %v", err)
	}
	w, h := target.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size() = (%d, %d), want (0, 0)", w, h)
	}
	// Still mappable: the backing image is at least one pixel.
	if target.Image() == nil {
		t.Fatal("no backing image")
	}
	if _, err := target.MapToImage(image.Rect(0, 0, 1, 1)); err != nil {
		t.Errorf("MapToImage() error: %v", err)
	}
}

func TestImageTargetMapUnmapFlush(t *testing.T) {
	target, err := NewImageTarget(gfx.ContentColorAlpha, 8, 8)
	if err != nil {
		t.Fatalf("NewImageTarget() error: %v", err)
	}

	view, err := target.MapToImage(image.Rect(2, 2, 6, 6))
	if err != nil {
		t.Fatalf("MapToImage() error: %v", err)
	}
	if got := view.Bounds(); got != image.Rect(2, 2, 6, 6) {
		t.Errorf("view bounds = %v, want (2,2)-(6,6)", got)
	}

	// Writes land in the backing image directly.
	view.SetPremulRGBA(3, 3, 10, 20, 30, 255)
	if r, g, b, _ := target.Image().PremulRGBAAt(3, 3); r != 10 || g != 20 || b != 30 {
		t.Errorf("backing image pixel = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}

	if err := target.UnmapImage(view); err != nil {
		t.Errorf("UnmapImage() error: %v", err)
	}
	if err := target.Flush(0); err != nil {
		t.Errorf("Flush(0) error: %v", err)
	}
	if err := target.Flush(FlushHint); err != nil {
		t.Errorf("Flush(FlushHint) error: %v", err)
	}
}

func TestImageTargetDelegates(t *testing.T) {
	fb := &mockFallback{}
	target, err := NewImageTarget(gfx.ContentColorAlpha, 16, 16, WithFallback(fb))
	if err != nil {
		t.Fatalf("NewImageTarget() error: %v", err)
	}
	red := gfx.SolidPattern{Color: gfx.Red}

	rule, tol, aa := fillArgs()
	if err := target.Fill(gfx.OpOver, red, rectPath(), rule, tol, aa, nil); err != nil {
		t.Fatalf("Fill() error: %v", err)
	}
	if fb.fills != 1 {
		t.Fatalf("fallback Fill called %d times, want 1", fb.fills)
	}
	if fb.lastDst != Mappable(target) {
		t.Error("fallback destination is not the target")
	}

	if err := target.Paint(gfx.OpOver, red, nil); err != nil {
		t.Fatalf("Paint() error: %v", err)
	}
	if fb.paints != 1 {
		t.Errorf("fallback Paint called %d times, want 1", fb.paints)
	}
}

func TestImageTargetNoFallback(t *testing.T) {
	target, err := NewImageTarget(gfx.ContentColor, 8, 8)
	if err != nil {
		t.Fatalf("NewImageTarget() error: %v", err)
	}
	rule, tol, aa := fillArgs()
	red := gfx.SolidPattern{Color: gfx.Red}
	if err := target.Fill(gfx.OpOver, red, rectPath(), rule, tol, aa, nil); !errors.Is(err, ErrNoFallback) {
		t.Errorf("Fill() = %v, want ErrNoFallback", err)
	}
}

func TestImageTargetFinish(t *testing.T) {
	target, err := NewImageTarget(gfx.ContentColor, 8, 8)
	if err != nil {
		t.Fatalf("NewImageTarget() error: %v", err)
	}
	if err := target.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	if err := target.Finish(); err != nil {
		t.Fatalf("second Finish() error: %v", err)
	}
	if _, err := target.MapToImage(image.Rect(0, 0, 1, 1)); !errors.Is(err, ErrSurfaceFinished) {
		t.Errorf("MapToImage after Finish = %v, want ErrSurfaceFinished", err)
	}
}

func TestImageTargetCreateSimilar(t *testing.T) {
	target, err := NewImageTarget(gfx.ContentColorAlpha, 16, 16)
	if err != nil {
		t.Fatalf("NewImageTarget() error: %v", err)
	}
	similar, err := target.CreateSimilar(gfx.ContentAlpha, 4, 4)
	if err != nil {
		t.Fatalf("CreateSimilar() error: %v", err)
	}
	st, ok := similar.(*ImageTarget)
	if !ok {
		t.Fatalf("CreateSimilar() = %T, want *ImageTarget", similar)
	}
	if got := st.Format(); got != pix.A8 {
		t.Errorf("similar format = %v, want A8", got)
	}
}
