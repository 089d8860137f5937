// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpupresent displays fbdraw surfaces in GPU-accelerated windows.
//
// The package bridges the device-owned pixel world of fbdraw and the
// texture world of gogpu. The data flow is:
//
//	fbdraw.Surface (draw) -> mapped pixels (CPU) -> GPU texture -> window
//
// # Architecture
//
// Presenter wraps a surface and manages the texture upload pipeline:
//
//   - Drawing happens through the usual surface operations
//   - Flush() reads the surface back and uploads it to a GPU texture
//   - PresentTo() draws the texture into a gogpu window
//
// The package-level Present and PresentEx functions do the same without
// keeping state. They create a texture per call, which suits snapshots
// and tests; frame loops should hold a Presenter so the texture is
// reused across frames.
//
// # Byte Order
//
// Surfaces store pixels in device formats such as ARGB32; swapchains
// want gputypes.TextureFormatRGBA8Unorm or TextureFormatBGRA8Unorm.
// The presenter converts using the provider's surface format, so a
// little-endian ARGB32 surface uploads to a BGRA swapchain as a
// straight row copy.
//
// # Usage
//
// Basic usage with gogpu:
//
//	presenter := gpupresent.MustNew(app.GPUContextProvider(), surface)
//	defer presenter.Close()
//
//	// Draw with the surface operations
//	surface.Paint(gfx.OpSource, sky, nil)
//	presenter.MarkDirty()
//
//	// Render to a gogpu window
//	presenter.PresentTo(dc)
//
// # Thread Safety
//
// Presenter is NOT safe for concurrent use, matching the surfaces it
// presents. Create one Presenter per goroutine, or use external
// synchronization.
package gpupresent
