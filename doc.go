// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fbdraw composites 2D drawing operations onto accelerated
// framebuffer-style device buffers.
//
// # Overview
//
// fbdraw is the glue between a vector drawing model and a
// fixed-function 2D blitter: a device that can fill rectangles, blit
// buffers and blend with configurable factor pairs, but cannot
// rasterize paths. The adapter translates compositing operators and
// pattern types into the device's blend vocabulary, executes the fills
// it can express natively, and hands everything else to a pluggable
// software engine working on mapped pixels.
//
// # Quick Start
//
//	import (
//		"golang.org/x/image/math/fixed"
//
//		"github.com/gogpu/fbdraw"
//		"github.com/gogpu/fbdraw/backend/memdev"
//		"github.com/gogpu/fbdraw/gfx"
//		"github.com/gogpu/fbdraw/hw"
//	)
//
//	dev := memdev.New()
//	buf, _ := dev.CreateBuffer(hw.BufferDescription{
//		Width: 640, Height: 480, Format: hw.RGB32,
//	})
//	defer buf.Release()
//
//	s, _ := fbdraw.New(dev, buf)
//	defer s.Finish()
//
//	red := gfx.SolidPattern{Color: gfx.RGB(1, 0, 0)}
//	rect := gfx.NewRectPath(fixed.I(10), fixed.I(10), fixed.I(100), fixed.I(50))
//	s.Fill(gfx.OpSource, red, rect, gfx.FillRuleWinding, 0.1, gfx.AntialiasDefault, nil)
//
// # Architecture
//
// The module is organized into:
//   - Root: Surface adapter, operator and format tables, fill
//     dispatcher, map/flush state machine, fallback boundary
//   - gfx: drawing-model vocabulary (operators, patterns, paths, clip)
//   - hw: the hardware boundary (Device and Buffer interfaces)
//   - pix: canonical CPU pixel images
//   - backend/memdev: pure software device
//   - backend/ebitengine: device over Ebitengine GPU images
//   - text: glyph-run shaping for ShowGlyphs delegation
//   - integration/gpupresent: presenting a surface via gogpu/gpucontext
//
// # Native versus fallback
//
// A fill runs natively when the path is structurally a rectangle, the
// pattern is a solid color or an uploadable surface image, and the
// operator maps to the device's blend factors. The decision is
// all-or-nothing per fill: fbdraw never splits one fill between the
// device and the software engine.
//
// # Concurrency
//
// Surfaces confine themselves to one goroutine; the adapter adds no
// locking of its own.
package fbdraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
