// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/hw"
)

// setClip applies a drawing clip to the device. Only the bounding
// rectangle of the clip is representable in hardware; callers that
// need the exact clip shape must not come through the native path.
//
// The region in effect is kept on the surface, both to avoid
// resetting an already unclipped device and so drawing paths that
// narrow the clip temporarily can restore it. A fully clipped-out
// state never reaches here; Fill short-circuits it.
func (s *Surface) setClip(clip *gfx.Clip) error {
	if clip == nil {
		if s.clipRegion == nil {
			return nil
		}
		if err := s.buf.SetClip(nil); err != nil {
			return err
		}
		s.clipRegion = nil
		return nil
	}

	r := hw.Region{
		X1: clip.Extents.Min.X,
		Y1: clip.Extents.Min.Y,
		X2: clip.Extents.Max.X,
		Y2: clip.Extents.Max.Y,
	}
	if err := s.buf.SetClip(&r); err != nil {
		return err
	}
	s.clipRegion = &r
	return nil
}
