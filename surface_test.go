// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

func newTestSurface(t *testing.T, format hw.PixelFormat, caps hw.Caps, opts ...Option) (*Surface, *mockBuffer, *mockDevice) {
	t.Helper()
	dev := &mockDevice{}
	buf := newMockBuffer(64, 48, format, caps)
	s, err := New(dev, buf, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s, buf, dev
}

func TestNew(t *testing.T) {
	s, buf, _ := newTestSurface(t, hw.RGB32, 0)

	if got := buf.called("AddRef"); got != 1 {
		t.Errorf("AddRef called %d times, want 1", got)
	}
	w, h := s.Size()
	if w != 64 || h != 48 {
		t.Errorf("Size() = (%d, %d), want (64, 48)", w, h)
	}
	if got := s.Format(); got != pix.RGB32 {
		t.Errorf("Format() = %v, want RGB32", got)
	}
	if got := s.Content(); got != gfx.ContentColor {
		t.Errorf("Content() = %v, want ContentColor", got)
	}
	if s.Premultiplied() {
		t.Error("Premultiplied() = true for capless buffer")
	}
	if s.Handle() != buf {
		t.Error("Handle() did not return the wrapped buffer")
	}
}

func TestNewPremultiplied(t *testing.T) {
	s, _, _ := newTestSurface(t, hw.ARGB, hw.CapPremultiplied)
	if !s.Premultiplied() {
		t.Error("Premultiplied() = false for premultiplied buffer")
	}
	if got := s.Content(); got != gfx.ContentColorAlpha {
		t.Errorf("Content() = %v, want ContentColorAlpha", got)
	}
}

func TestNewInvalidFormat(t *testing.T) {
	invalid := []hw.PixelFormat{
		hw.Unknown,
		hw.YUY2, // canonical but not a software destination
		hw.YV12,
		hw.LUT8,
		hw.NV12,
	}

	for _, f := range invalid {
		t.Run(f.String(), func(t *testing.T) {
			buf := newMockBuffer(16, 16, f, 0)
			_, err := New(&mockDevice{}, buf)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("New() error = %v, want ErrInvalidFormat", err)
			}
			if got := buf.called("AddRef"); got != 0 {
				t.Errorf("AddRef called %d times on failed construction", got)
			}
		})
	}
}

func TestFinish(t *testing.T) {
	s, buf, _ := newTestSurface(t, hw.RGB32, 0)

	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	if got := buf.called("Release"); got != 1 {
		t.Errorf("Release called %d times, want 1", got)
	}

	// Idempotent: a second Finish must not release again.
	if err := s.Finish(); err != nil {
		t.Fatalf("second Finish() error: %v", err)
	}
	if got := buf.called("Release"); got != 1 {
		t.Errorf("Release called %d times after double Finish, want 1", got)
	}
}

func TestFinishedSurfaceRejectsOperations(t *testing.T) {
	s, _, _ := newTestSurface(t, hw.RGB32, 0)
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}

	if _, err := s.MapToImage(image.Rect(0, 0, 1, 1)); !errors.Is(err, ErrSurfaceFinished) {
		t.Errorf("MapToImage after Finish = %v, want ErrSurfaceFinished", err)
	}
	if err := s.Flush(0); !errors.Is(err, ErrSurfaceFinished) {
		t.Errorf("Flush after Finish = %v, want ErrSurfaceFinished", err)
	}
	err := s.Fill(gfx.OpOver, gfx.SolidPattern{Color: gfx.Black}, gfx.NewPath(),
		gfx.FillRuleWinding, 0.1, gfx.AntialiasDefault, nil)
	if !errors.Is(err, ErrSurfaceFinished) {
		t.Errorf("Fill after Finish = %v, want ErrSurfaceFinished", err)
	}
	if _, err := s.CreateSimilar(gfx.ContentColor, 8, 8); !errors.Is(err, ErrSurfaceFinished) {
		t.Errorf("CreateSimilar after Finish = %v, want ErrSurfaceFinished", err)
	}
}

func TestFinishWhileMapped(t *testing.T) {
	s, buf, _ := newTestSurface(t, hw.RGB32, 0)

	if _, err := s.MapToImage(image.Rect(0, 0, 8, 8)); err != nil {
		t.Fatalf("MapToImage() error: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}

	if got := buf.called("Unlock"); got != 1 {
		t.Errorf("Unlock called %d times, want 1", got)
	}
	if got := buf.called("Release"); got != 1 {
		t.Errorf("Release called %d times, want 1", got)
	}
	if buf.callIndex("Unlock") > buf.callIndex("Release") {
		t.Error("Release happened before Unlock")
	}
}

func TestCreateSimilarZeroSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 32},
		{"zero height", 32, 0},
		{"negative height", 32, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, dev := newTestSurface(t, hw.RGB32, 0)
			similar, err := s.CreateSimilar(gfx.ContentColorAlpha, tt.width, tt.height)
			if err != nil {
				t.Fatalf("CreateSimilar() error: %v", err)
			}
			if _, ok := similar.(*ImageTarget); !ok {
				t.Fatalf("CreateSimilar() = %T, want *ImageTarget", similar)
			}
			if len(dev.created) != 0 {
				t.Errorf("device CreateBuffer called %d times for zero-size similar", len(dev.created))
			}
		})
	}
}

func TestCreateSimilar(t *testing.T) {
	tests := []struct {
		content  gfx.Content
		expected hw.PixelFormat
	}{
		{gfx.ContentColorAlpha, hw.ARGB},
		{gfx.ContentColor, hw.RGB32},
		{gfx.ContentAlpha, hw.A8},
	}

	for _, tt := range tests {
		t.Run(tt.content.String(), func(t *testing.T) {
			s, _, dev := newTestSurface(t, hw.RGB32, hw.CapPremultiplied)
			similar, err := s.CreateSimilar(tt.content, 20, 10)
			if err != nil {
				t.Fatalf("CreateSimilar() error: %v", err)
			}
			if len(dev.created) != 1 {
				t.Fatalf("device created %d buffers, want 1", len(dev.created))
			}

			created := dev.created[0]
			if created.format != tt.expected {
				t.Errorf("created format = %v, want %v", created.format, tt.expected)
			}
			if created.caps&hw.CapPremultiplied == 0 {
				t.Error("created buffer lost the premultiplied cap")
			}
			if created.width != 20 || created.height != 10 {
				t.Errorf("created size = (%d, %d), want (20, 10)", created.width, created.height)
			}

			ss, ok := similar.(*Surface)
			if !ok {
				t.Fatalf("CreateSimilar() = %T, want *Surface", similar)
			}
			// The similar surface holds the only remaining reference:
			// creation's reference was dropped after the adapter took
			// its own.
			if created.refs != 1 {
				t.Errorf("created buffer refs = %d, want 1", created.refs)
			}
			if err := ss.Finish(); err != nil {
				t.Fatalf("Finish() error: %v", err)
			}
			if created.refs != 0 {
				t.Errorf("created buffer refs after Finish = %d, want 0", created.refs)
			}
		})
	}
}
