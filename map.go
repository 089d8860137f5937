// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

// MapToImage exposes the pixels inside region for CPU access.
//
// The first map locks the device buffer for reading and writing and
// builds a full-surface image view over the locked pixels; further
// maps share that view, so sub-views handed to different callers stay
// coherent. The lock is held until a write-back Flush or Finish.
func (s *Surface) MapToImage(region image.Rectangle) (*pix.Image, error) {
	if s.finished {
		return nil, ErrSurfaceFinished
	}
	if s.mapped == nil {
		data, stride, err := s.buf.Lock(hw.LockRead | hw.LockWrite)
		if err != nil {
			return nil, fmt.Errorf("fbdraw: locking buffer: %w", err)
		}
		view, err := pix.FromRaw(data, s.width, s.height, s.format, stride)
		if err != nil {
			// The device handed back a layout the view cannot cover.
			s.buf.Unlock()
			return nil, fmt.Errorf("fbdraw: mapping buffer: %w", err)
		}
		s.mapped = view
		s.log.Debug("surface mapped", slog.Int("stride", stride))
	}
	return s.mapped.SubImage(region), nil
}

// UnmapImage releases a view returned by MapToImage. The device lock
// stays held so other views over the same map remain valid; the
// write-back in Flush ends the lock.
func (s *Surface) UnmapImage(view *pix.Image) error {
	if s.finished {
		return ErrSurfaceFinished
	}
	if s.mapped == nil {
		return ErrNotMapped
	}
	return nil
}

// Flush synchronizes the device with CPU-visible pixel state. A flush
// with FlushHint is advisory and does nothing. A full flush writes
// back an open map by unlocking the buffer and dropping the view,
// returning the surface to its device-owned identity.
func (s *Surface) Flush(flags FlushFlags) error {
	if s.finished {
		return ErrSurfaceFinished
	}
	if flags&FlushHint != 0 {
		return nil
	}
	if s.mapped == nil {
		return nil
	}
	s.mapped = nil
	if err := s.buf.Unlock(); err != nil {
		return fmt.Errorf("fbdraw: unlocking buffer: %w", err)
	}
	s.log.Debug("surface flushed")
	return nil
}
