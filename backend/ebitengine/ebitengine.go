// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitengine implements the hardware device contract on top of
// Ebitengine images.
//
// Buffers live in GPU textures. Fills and blits are draw calls with the
// blend stage translated to an ebiten.Blend, and CPU access stages the
// pixels through ReadPixels and WritePixels in the buffer's declared
// format. Because Ebitengine textures are premultiplied RGBA, every
// buffer reports the premultiplied capability regardless of what was
// asked for.
//
// Image operations must run on the thread Ebitengine owns; the device
// inherits that constraint.
package ebitengine

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

// Package errors.
var (
	// ErrInvalidSize is returned when creating a buffer without
	// positive dimensions.
	ErrInvalidSize = errors.New("ebitengine: width and height must be positive")

	// ErrUnsupportedFormat is returned when creating a buffer with a
	// pixel format that cannot be staged through system memory.
	ErrUnsupportedFormat = errors.New("ebitengine: unsupported pixel format")

	// ErrBufferFreed is returned by operations on a buffer whose last
	// reference was released.
	ErrBufferFreed = errors.New("ebitengine: buffer already freed")

	// ErrLocked is returned by drawing operations while the buffer is
	// locked for CPU access, and by a second Lock.
	ErrLocked = errors.New("ebitengine: buffer is locked")

	// ErrNotLocked is returned by Unlock without a matching Lock.
	ErrNotLocked = errors.New("ebitengine: buffer is not locked")

	// ErrInvalidLockFlags is returned by Lock without read or write
	// access requested.
	ErrInvalidLockFlags = errors.New("ebitengine: lock needs read or write access")

	// ErrForeignSource is returned when blitting from a buffer that
	// does not belong to this device.
	ErrForeignSource = errors.New("ebitengine: source buffer belongs to another device")

	// ErrUnsupportedBlendFactor is returned when a blend function is
	// set to a factor outside the fixed-function set.
	ErrUnsupportedBlendFactor = errors.New("ebitengine: unsupported blend factor")

	// ErrOutOfBounds is returned by Write with a rectangle outside the
	// buffer.
	ErrOutOfBounds = errors.New("ebitengine: rectangle outside buffer bounds")

	// ErrShortData is returned by Write when the data cannot cover the
	// rectangle.
	ErrShortData = errors.New("ebitengine: write data too small for rectangle")
)

// whiteImage backs solid fills drawn with a blend stage. The interior
// sub-image keeps samplers away from the texture edge.
var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() { whiteImage.Fill(color.White) }

// Device creates texture-backed buffers.
type Device struct{}

var _ hw.Device = (*Device)(nil)

// New creates an Ebitengine device.
func New() *Device { return &Device{} }

// CreateBuffer allocates a transparent buffer. The declared format
// governs what Lock and Write speak; the texture itself is always
// premultiplied RGBA.
func (d *Device) CreateBuffer(desc hw.BufferDescription) (hw.Buffer, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, desc.Width, desc.Height)
	}
	canonical, ok := canonicalFor(desc.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, desc.Format)
	}
	b := &buffer{
		img:       ebiten.NewImage(desc.Width, desc.Height),
		format:    desc.Format,
		canonical: canonical,
		caps:      desc.Caps | hw.CapPremultiplied | hw.CapVideoMemory,
		width:     desc.Width,
		height:    desc.Height,
		refs:      1,
	}
	b.resetClip()
	b.resetDrawState()
	return b, nil
}

// canonicalFor maps a device format to the image format CPU access is
// staged in. The supported set is the byte-addressable one.
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
