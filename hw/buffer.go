// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hw

import "github.com/gogpu/wgpu/types"

// Caps is a set of buffer capability bits.
type Caps uint32

const (
	// CapPremultiplied marks buffers whose color channels are stored
	// premultiplied by alpha.
	CapPremultiplied Caps = 1 << iota
	// CapVideoMemory marks buffers resident in video memory.
	CapVideoMemory
	// CapDoubleBuffered marks buffers with a back buffer.
	CapDoubleBuffered
)

// LockFlags selects the access mode of a Lock.
type LockFlags uint32

const (
	// LockRead requests read access to the pixels.
	LockRead LockFlags = 1 << iota
	// LockWrite requests write access to the pixels.
	LockWrite
)

// DrawFlags control how drawing and blitting operations are executed.
type DrawFlags uint32

const (
	// DrawNoFX writes source values straight to the buffer.
	DrawNoFX DrawFlags = 0
	// DrawBlend blends using the current blend functions.
	DrawBlend DrawFlags = 1 << 0
)

// PorterDuffRule names a predefined blend factor pair applied to blits.
type PorterDuffRule uint8

const (
	// RuleNone leaves the blend factors unchanged.
	RuleNone PorterDuffRule = iota
	// RuleClear corresponds to factors (Zero, Zero).
	RuleClear
	// RuleSrc corresponds to factors (One, Zero).
	RuleSrc
	// RuleSrcOver corresponds to factors (One, OneMinusSrcAlpha).
	RuleSrcOver
	// RuleDstOver corresponds to factors (OneMinusDstAlpha, One).
	RuleDstOver
	// RuleSrcIn corresponds to factors (DstAlpha, Zero).
	RuleSrcIn
	// RuleDstIn corresponds to factors (Zero, SrcAlpha).
	RuleDstIn
	// RuleSrcOut corresponds to factors (OneMinusDstAlpha, Zero).
	RuleSrcOut
	// RuleDstOut corresponds to factors (Zero, OneMinusSrcAlpha).
	RuleDstOut
	// RuleSrcAtop corresponds to factors (DstAlpha, OneMinusSrcAlpha).
	RuleSrcAtop
	// RuleDstAtop corresponds to factors (OneMinusDstAlpha, SrcAlpha).
	RuleDstAtop
	// RuleAdd corresponds to factors (One, One).
	RuleAdd
	// RuleXor corresponds to factors (OneMinusDstAlpha, OneMinusSrcAlpha).
	RuleXor
)

// String returns a human-readable name for the rule.
func (r PorterDuffRule) String() string {
	switch r {
	case RuleClear:
		return "Clear"
	case RuleSrc:
		return "Src"
	case RuleSrcOver:
		return "SrcOver"
	case RuleDstOver:
		return "DstOver"
	case RuleSrcIn:
		return "SrcIn"
	case RuleDstIn:
		return "DstIn"
	case RuleSrcOut:
		return "SrcOut"
	case RuleDstOut:
		return "DstOut"
	case RuleSrcAtop:
		return "SrcAtop"
	case RuleDstAtop:
		return "DstAtop"
	case RuleAdd:
		return "Add"
	case RuleXor:
		return "Xor"
	default:
		return "None"
	}
}

// Buffer is one device surface: a pixel buffer that can be drawn into
// by the device's blitter and locked for CPU access.
//
// Draw state set through the Set methods persists on the buffer and is
// consumed by subsequent FillRectangle, Blit and TileBlit calls.
// Implementations are not safe for concurrent use.
type Buffer interface {
	// Size returns the buffer extents in pixels.
	Size() (width, height int)

	// PixelFormat returns the storage format.
	PixelFormat() PixelFormat

	// Capabilities returns the capability bits.
	Capabilities() Caps

	// AddRef adds a reference to the buffer.
	AddRef() error

	// Release drops a reference. The buffer is freed when the last
	// reference goes; using it afterwards is an error.
	Release() error

	// Lock exposes the raw pixels for CPU access and excludes device
	// drawing until Unlock. The returned slice is row-major with the
	// given stride and stays valid until Unlock.
	Lock(flags LockFlags) (data []byte, stride int, err error)

	// Unlock ends CPU access started by Lock.
	Unlock() error

	// SetClip restricts subsequent drawing and blitting to the region.
	// A nil region resets the clip to the full buffer.
	SetClip(region *Region) error

	// SetColor sets the color consumed by FillRectangle. The channel
	// bytes are interpreted in the buffer's storage convention, so
	// premultiplied buffers expect premultiplied values.
	SetColor(r, g, b, a uint8) error

	// SetDrawingFlags selects between plain writes (DrawNoFX) and
	// blending (DrawBlend) for subsequent operations.
	SetDrawingFlags(flags DrawFlags) error

	// SetBlendFunctions sets the source and destination blend factors
	// applied when DrawBlend is set.
	SetBlendFunctions(src, dst types.BlendFactor) error

	// SetPorterDuff sets both blend factors from a predefined rule.
	SetPorterDuff(rule PorterDuffRule) error

	// FillRectangle fills r with the current color, honoring the
	// current clip, drawing flags and blend functions.
	FillRectangle(r Rect) error

	// Blit copies srcRect of src to (dx, dy), honoring the current
	// clip, drawing flags and blend functions. A nil srcRect means the
	// whole source.
	Blit(src Buffer, srcRect *Rect, dx, dy int) error

	// TileBlit repeats srcRect of src across the clipped destination,
	// with tile phase anchored at (dx, dy).
	TileBlit(src Buffer, srcRect *Rect, dx, dy int) error

	// Write uploads raw row-major pixels into r. The data's rows are
	// stride bytes apart and are stored without blending.
	Write(r Rect, data []byte, stride int) error
}
