// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hw

// BufferDescription declares the properties of a buffer to create.
type BufferDescription struct {
	Width  int
	Height int
	Format PixelFormat
	Caps   Caps
}

// Device creates buffers. It is the single entry point a rendering
// surface needs from a hardware backend.
type Device interface {
	// CreateBuffer allocates a buffer with the described extents,
	// format and capabilities. The returned buffer starts with one
	// reference.
	CreateBuffer(desc BufferDescription) (Buffer, error)
}
