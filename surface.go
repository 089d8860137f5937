// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

// Surface composites vector drawing operations onto a device buffer.
//
// A surface has two identities: device-owned, where drawing happens
// through the device's fill and blit primitives, and CPU-mapped, where
// the pixels are addressable through a locked image view. MapToImage
// and Flush move between the two.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	dev hw.Device
	buf hw.Buffer

	format        pix.Format
	width, height int
	premultiplied bool

	clipRegion *hw.Region // device clip in effect, nil when unclipped
	mapped     *pix.Image // full-surface CPU view; non-nil while the device lock is held
	finished   bool

	fallback Fallback
	acquire  SourceAcquirer
	log      *slog.Logger
}

var (
	_ Target   = (*Surface)(nil)
	_ Mappable = (*Surface)(nil)
)

// New wraps an existing device buffer as a drawing surface.
//
// The buffer's pixel format must have a canonical image representation
// usable as a software destination; anything else fails with
// ErrInvalidFormat rather than degrading. The surface takes its own
// reference on buf and drops it in Finish; a reference the caller
// holds stays the caller's.
func New(dev hw.Device, buf hw.Buffer, opts ...Option) (*Surface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hwFormat := buf.PixelFormat()
	format := formatToCanonical(hwFormat)
	if format == pix.Invalid || !format.CanRenderTo() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, hwFormat)
	}
	if err := buf.AddRef(); err != nil {
		return nil, fmt.Errorf("fbdraw: adding buffer reference: %w", err)
	}

	width, height := buf.Size()
	s := &Surface{
		dev:           dev,
		buf:           buf,
		format:        format,
		width:         width,
		height:        height,
		premultiplied: buf.Capabilities()&hw.CapPremultiplied != 0,
		fallback:      o.fallback,
		acquire:       o.acquire,
		log:           o.logger,
	}
	s.log.Debug("surface created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("format", format.String()),
		slog.Bool("premultiplied", s.premultiplied))
	return s, nil
}

// Finish releases the surface's buffer reference. An open CPU view is
// force-unlocked first so the device sees a consistent buffer before
// the release. Finish is idempotent; every other operation fails with
// ErrSurfaceFinished afterwards.
func (s *Surface) Finish() error {
	if s.finished {
		return nil
	}
	if s.mapped != nil {
		if err := s.buf.Unlock(); err != nil {
			s.log.Error("unlock during finish", slog.String("error", err.Error()))
		}
		s.mapped = nil
	}
	s.finished = true
	if err := s.buf.Release(); err != nil {
		return fmt.Errorf("fbdraw: releasing buffer: %w", err)
	}
	s.log.Debug("surface finished")
	return nil
}

// CreateSimilar creates a compatible surface for intermediate results.
//
// Non-positive sizes produce a plain memory target without touching
// the device; the source's zero-area intermediates never deserve a
// device round-trip. Otherwise a new device buffer is created with the
// format implied by content and this surface's premultiplication.
func (s *Surface) CreateSimilar(content gfx.Content, width, height int) (Target, error) {
	if s.finished {
		return nil, ErrSurfaceFinished
	}
	if width <= 0 || height <= 0 {
		return NewImageTarget(content, width, height,
			WithLogger(s.log), WithFallback(s.fallback), WithSourceAcquirer(s.acquire))
	}

	var caps hw.Caps
	if s.premultiplied {
		caps |= hw.CapPremultiplied
	}
	buf, err := s.dev.CreateBuffer(hw.BufferDescription{
		Width:  width,
		Height: height,
		Format: similarFormat(content),
		Caps:   caps,
	})
	if err != nil {
		return nil, fmt.Errorf("fbdraw: creating similar buffer: %w", err)
	}

	similar, err := New(s.dev, buf,
		WithLogger(s.log), WithFallback(s.fallback), WithSourceAcquirer(s.acquire))
	if err != nil {
		buf.Release()
		return nil, err
	}
	// The new surface holds its own reference now; drop the creation one.
	if err := buf.Release(); err != nil {
		similar.Finish()
		return nil, fmt.Errorf("fbdraw: releasing creation reference: %w", err)
	}
	return similar, nil
}

// similarFormat picks the device format for an intermediate surface
// holding the given channels.
func similarFormat(content gfx.Content) hw.PixelFormat {
	switch content {
	case gfx.ContentColorAlpha:
		return hw.ARGB
	case gfx.ContentColor:
		return hw.RGB32
	case gfx.ContentAlpha:
		return hw.A8
	default:
		panic("fbdraw: invalid surface content")
	}
}

// Size returns the surface extents in pixels.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Format returns the canonical pixel format of the surface.
func (s *Surface) Format() pix.Format { return s.format }

// Content reports which channels the surface stores.
func (s *Surface) Content() gfx.Content { return contentForFormat(s.format) }

// Premultiplied reports whether color channels are stored
// premultiplied by alpha.
func (s *Surface) Premultiplied() bool { return s.premultiplied }

// Handle returns the underlying device buffer, for callers that need
// device-specific operations. The surface keeps its reference; the
// caller must not release it.
func (s *Surface) Handle() hw.Buffer { return s.buf }
