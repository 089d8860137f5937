// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hw defines the boundary to accelerated framebuffer devices.
//
// A Device hands out Buffers: lockable, blittable pixel surfaces with a
// fixed-function blend unit. The interfaces mirror what 2D blitting
// hardware exposes, so a compositing layer can drive them directly:
// draw state is set call by call (color, clip, drawing flags, blend
// functions) and then consumed by FillRectangle, Blit and TileBlit.
//
// Lock gives CPU access to the raw pixels and excludes hardware drawing
// until Unlock. Buffers are reference counted; Release drops one
// reference and frees the buffer when none remain.
//
// The blend factor vocabulary is github.com/gogpu/wgpu/types.BlendFactor,
// of which implementations must support Zero, One, SrcAlpha,
// OneMinusSrcAlpha, DstAlpha and OneMinusDstAlpha.
package hw
