// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package memdev implements the hardware device contract in plain
// system memory.
//
// It plays the role a software-rendering core plays behind a real
// framebuffer driver: buffers are ordinary images, fills and blits are
// pixel loops, and the fixed-function blend stage is evaluated in the
// byte domain. The package is useful as a headless device for
// applications and as a truth reference for device-dependent tests.
package memdev

import (
	"errors"
	"fmt"

	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

// Package errors.
var (
	// ErrInvalidSize is returned when creating a buffer without
	// positive dimensions.
	ErrInvalidSize = errors.New("memdev: width and height must be positive")

	// ErrUnsupportedFormat is returned when creating a buffer with a
	// pixel format the device cannot store.
	ErrUnsupportedFormat = errors.New("memdev: unsupported pixel format")

	// ErrBufferFreed is returned by operations on a buffer whose last
	// reference was released.
	ErrBufferFreed = errors.New("memdev: buffer already freed")

	// ErrLocked is returned by drawing operations while the buffer is
	// locked for CPU access, and by a second Lock.
	ErrLocked = errors.New("memdev: buffer is locked")

	// ErrNotLocked is returned by Unlock without a matching Lock.
	ErrNotLocked = errors.New("memdev: buffer is not locked")

	// ErrInvalidLockFlags is returned by Lock without read or write
	// access requested.
	ErrInvalidLockFlags = errors.New("memdev: lock needs read or write access")

	// ErrForeignSource is returned when blitting from a buffer that
	// does not belong to this device.
	ErrForeignSource = errors.New("memdev: source buffer belongs to another device")

	// ErrUnsupportedBlendFactor is returned when a blend function is
	// set to a factor outside the device's fixed-function set.
	ErrUnsupportedBlendFactor = errors.New("memdev: unsupported blend factor")

	// ErrOutOfBounds is returned by Write with a rectangle outside the
	// buffer.
	ErrOutOfBounds = errors.New("memdev: rectangle outside buffer bounds")

	// ErrShortData is returned by Write when the data cannot cover the
	// rectangle.
	ErrShortData = errors.New("memdev: write data too small for rectangle")
)

// Device creates system-memory buffers.
type Device struct{}

var _ hw.Device = (*Device)(nil)

// New creates a memory device.
func New() *Device { return &Device{} }

// CreateBuffer allocates a zeroed buffer. Only byte-addressable
// formats are supported; planar and sub-byte formats fail with
// ErrUnsupportedFormat.
func (d *Device) CreateBuffer(desc hw.BufferDescription) (hw.Buffer, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, desc.Width, desc.Height)
	}
	canonical, ok := canonicalFor(desc.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, desc.Format)
	}
	img, err := pix.New(desc.Width, desc.Height, canonical)
	if err != nil {
		return nil, fmt.Errorf("memdev: allocating buffer: %w", err)
	}
	b := &buffer{
		img:    img,
		format: desc.Format,
		caps:   desc.Caps,
		refs:   1,
	}
	b.resetClip()
	b.resetDrawState()
	return b, nil
}

// canonicalFor maps a device format to the image format the buffer
// stores. The supported set is the byte-addressable one.
func canonicalFor(f hw.PixelFormat) (pix.Format, bool) {
	switch f {
	case hw.ARGB:
		return pix.ARGB32, true
	case hw.ABGR:
		return pix.ABGR32, true
	case hw.RGB32:
		return pix.RGB32, true
	case hw.RGB24:
		return pix.RGB24, true
	case hw.RGB16:
		return pix.RGB16, true
	case hw.ARGB1555:
		return pix.ARGB1555, true
	case hw.RGB555:
		return pix.RGB555, true
	case hw.A8:
		return pix.A8, true
	default:
		return pix.Invalid, false
	}
}
