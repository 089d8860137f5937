// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memdev

import (
	"fmt"

	"github.com/gogpu/wgpu/types"

	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/internal/blend"
	"github.com/gogpu/fbdraw/pix"
)

// buffer is a system-memory surface. Draw state lives on the buffer
// and persists across drawing calls, mirroring how a hardware driver
// keeps state latched on the card.
type buffer struct {
	img    *pix.Image
	format hw.PixelFormat
	caps   hw.Caps

	refs   int
	locked bool

	clip hw.Region

	color     [4]uint8
	flags     hw.DrawFlags
	srcFactor blend.Factor
	dstFactor blend.Factor
}

var _ hw.Buffer = (*buffer)(nil)

func (b *buffer) resetClip() {
	w, h := b.img.Bounds().Dx(), b.img.Bounds().Dy()
	b.clip = hw.Region{X1: 0, Y1: 0, X2: w, Y2: h}
}

func (b *buffer) resetDrawState() {
	b.color = [4]uint8{}
	b.flags = hw.DrawNoFX
	b.srcFactor = blend.One
	b.dstFactor = blend.Zero
}

func (b *buffer) freed() bool { return b.refs <= 0 }

// Image exposes the backing store. Tests and tools use it to observe
// pixels without going through Lock.
func (b *buffer) Image() *pix.Image { return b.img }

func (b *buffer) Size() (width, height int) {
	if b.freed() {
		return 0, 0
	}
	return b.img.Bounds().Dx(), b.img.Bounds().Dy()
}

func (b *buffer) PixelFormat() hw.PixelFormat { return b.format }
func (b *buffer) Capabilities() hw.Caps       { return b.caps }

// AddRef takes another reference. Referencing a freed buffer is a
// refcounting bug in the caller and panics.
func (b *buffer) AddRef() error {
	if b.freed() {
		panic("memdev: AddRef on freed buffer")
	}
	b.refs++
	return nil
}

// Release drops one reference and frees the backing store when the
// count reaches zero. Releasing a freed buffer panics.
func (b *buffer) Release() error {
	if b.freed() {
		panic("memdev: Release on freed buffer")
	}
	b.refs--
	if b.refs == 0 {
		b.img = nil
		b.locked = false
	}
	return nil
}

// Lock grants CPU access to the backing bytes. The buffer stays
// locked, and drawing calls fail, until Unlock.
func (b *buffer) Lock(flags hw.LockFlags) (data []byte, stride int, err error) {
	if b.freed() {
		return nil, 0, ErrBufferFreed
	}
	if flags&(hw.LockRead|hw.LockWrite) == 0 {
		return nil, 0, ErrInvalidLockFlags
	}
	if b.locked {
		return nil, 0, ErrLocked
	}
	b.locked = true
	return b.img.Pix, b.img.Stride, nil
}

func (b *buffer) Unlock() error {
	if b.freed() {
		return ErrBufferFreed
	}
	if !b.locked {
		return ErrNotLocked
	}
	b.locked = false
	return nil
}

// SetClip restricts subsequent drawing to region, intersected with the
// buffer bounds. A nil region restores the full surface.
func (b *buffer) SetClip(region *hw.Region) error {
	if b.freed() {
		return ErrBufferFreed
	}
	b.resetClip()
	if region != nil {
		b.clip = b.clip.Intersect(*region)
	}
	return nil
}

func (b *buffer) SetColor(cr, cg, cb, ca uint8) error {
	if b.freed() {
		return ErrBufferFreed
	}
	b.color = [4]uint8{cr, cg, cb, ca}
	return nil
}

func (b *buffer) SetDrawingFlags(flags hw.DrawFlags) error {
	if b.freed() {
		return ErrBufferFreed
	}
	b.flags = flags
	return nil
}

func (b *buffer) SetBlendFunctions(src, dst types.BlendFactor) error {
	if b.freed() {
		return ErrBufferFreed
	}
	fs, err := factorFor(src)
	if err != nil {
		return err
	}
	fd, err := factorFor(dst)
	if err != nil {
		return err
	}
	b.srcFactor, b.dstFactor = fs, fd
	return nil
}

func (b *buffer) SetPorterDuff(rule hw.PorterDuffRule) error {
	if b.freed() {
		return ErrBufferFreed
	}
	fs, fd, err := ruleFactors(rule)
	if err != nil {
		return err
	}
	b.srcFactor, b.dstFactor = fs, fd
	return nil
}

// drawable reports whether drawing calls may touch the backing store.
func (b *buffer) drawable() error {
	switch {
	case b.freed():
		return ErrBufferFreed
	case b.locked:
		return ErrLocked
	}
	return nil
}

// factorFor translates the wire-level blend factor into the evaluable
// one. The fixed-function set covers the factors Porter-Duff lowering
// produces; color-valued factors are out of range.
func factorFor(f types.BlendFactor) (blend.Factor, error) {
	switch f {
	case types.BlendFactorZero:
		return blend.Zero, nil
	case types.BlendFactorOne:
		return blend.One, nil
	case types.BlendFactorSrcAlpha:
		return blend.SrcAlpha, nil
	case types.BlendFactorOneMinusSrcAlpha:
		return blend.OneMinusSrcAlpha, nil
	case types.BlendFactorDstAlpha:
		return blend.DstAlpha, nil
	case types.BlendFactorOneMinusDstAlpha:
		return blend.OneMinusDstAlpha, nil
	default:
		return blend.Zero, fmt.Errorf("%w: %v", ErrUnsupportedBlendFactor, f)
	}
}

// ruleFactors expands a Porter-Duff rule into its factor pair. RuleNone
// behaves as a plain copy when blending is enabled.
func ruleFactors(rule hw.PorterDuffRule) (src, dst blend.Factor, err error) {
	switch rule {
	case hw.RuleNone, hw.RuleSrc:
		return blend.One, blend.Zero, nil
	case hw.RuleClear:
		return blend.Zero, blend.Zero, nil
	case hw.RuleSrcOver:
		return blend.One, blend.OneMinusSrcAlpha, nil
	case hw.RuleDstOver:
		return blend.OneMinusDstAlpha, blend.One, nil
	case hw.RuleSrcIn:
		return blend.DstAlpha, blend.Zero, nil
	case hw.RuleDstIn:
		return blend.Zero, blend.SrcAlpha, nil
	case hw.RuleSrcOut:
		return blend.OneMinusDstAlpha, blend.Zero, nil
	case hw.RuleDstOut:
		return blend.Zero, blend.OneMinusSrcAlpha, nil
	case hw.RuleSrcAtop:
		return blend.DstAlpha, blend.OneMinusSrcAlpha, nil
	case hw.RuleDstAtop:
		return blend.OneMinusDstAlpha, blend.SrcAlpha, nil
	case hw.RuleAdd:
		return blend.One, blend.One, nil
	case hw.RuleXor:
		return blend.OneMinusDstAlpha, blend.OneMinusSrcAlpha, nil
	default:
		return blend.Zero, blend.Zero, fmt.Errorf("memdev: unknown porter-duff rule %v", rule)
	}
}
