// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ebitengine

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/wgpu/types"

	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

// buffer is a texture-backed surface. Draw state persists on the
// buffer across drawing calls.
type buffer struct {
	img       *ebiten.Image
	format    hw.PixelFormat
	canonical pix.Format
	caps      hw.Caps
	width     int
	height    int

	refs int

	// shadow holds the staged CPU copy while locked; lockFlags decides
	// whether Unlock writes it back.
	shadow    *pix.Image
	lockFlags hw.LockFlags

	clip hw.Region

	color [4]uint8
	flags hw.DrawFlags
	blend ebiten.Blend
}

var _ hw.Buffer = (*buffer)(nil)

func (b *buffer) resetClip() {
	b.clip = hw.Region{X1: 0, Y1: 0, X2: b.width, Y2: b.height}
}

func (b *buffer) resetDrawState() {
	b.color = [4]uint8{}
	b.flags = hw.DrawNoFX
	b.blend = ebiten.BlendCopy
}

func (b *buffer) freed() bool  { return b.refs <= 0 }
func (b *buffer) locked() bool { return b.shadow != nil }

// Image exposes the backing texture, typically to hand the buffer to a
// game's Draw callback.
func (b *buffer) Image() *ebiten.Image { return b.img }

func (b *buffer) Size() (width, height int)   { return b.width, b.height }
func (b *buffer) PixelFormat() hw.PixelFormat { return b.format }
func (b *buffer) Capabilities() hw.Caps       { return b.caps }

// AddRef takes another reference. Referencing a freed buffer is a
// refcounting bug in the caller and panics.
func (b *buffer) AddRef() error {
	if b.freed() {
		panic("ebitengine: AddRef on freed buffer")
	}
	b.refs++
	return nil
}

// Release drops one reference and deallocates the texture when the
// count reaches zero. Releasing a freed buffer panics.
func (b *buffer) Release() error {
	if b.freed() {
		panic("ebitengine: Release on freed buffer")
	}
	b.refs--
	if b.refs == 0 {
		b.img.Deallocate()
		b.img = nil
		b.shadow = nil
	}
	return nil
}

// Lock stages the texture into system memory in the declared format
// and returns the staged bytes. Drawing calls fail until Unlock.
func (b *buffer) Lock(flags hw.LockFlags) (data []byte, stride int, err error) {
	if b.freed() {
		return nil, 0, ErrBufferFreed
	}
	if flags&(hw.LockRead|hw.LockWrite) == 0 {
		return nil, 0, ErrInvalidLockFlags
	}
	if b.locked() {
		return nil, 0, ErrLocked
	}

	shadow, err := pix.New(b.width, b.height, b.canonical)
	if err != nil {
		return nil, 0, fmt.Errorf("ebitengine: staging buffer: %w", err)
	}
	rgba := make([]byte, 4*b.width*b.height)
	b.img.ReadPixels(rgba)
	for y := 0; y < b.height; y++ {
		row := rgba[4*y*b.width:]
		for x := 0; x < b.width; x++ {
			shadow.SetPremulRGBA(x, y, row[4*x], row[4*x+1], row[4*x+2], row[4*x+3])
		}
	}

	b.shadow = shadow
	b.lockFlags = flags
	return shadow.Pix, shadow.Stride, nil
}

// Unlock ends CPU access. A write lock uploads the staged bytes back
// to the texture.
func (b *buffer) Unlock() error {
	if b.freed() {
		return ErrBufferFreed
	}
	if !b.locked() {
		return ErrNotLocked
	}
	if b.lockFlags&hw.LockWrite != 0 {
		rgba := make([]byte, 4*b.width*b.height)
		for y := 0; y < b.height; y++ {
			row := rgba[4*y*b.width:]
			for x := 0; x < b.width; x++ {
				r, g, bl, a := b.shadow.PremulRGBAAt(x, y)
				row[4*x], row[4*x+1], row[4*x+2], row[4*x+3] = r, g, bl, a
			}
		}
		b.img.WritePixels(rgba)
	}
	b.shadow = nil
	b.lockFlags = 0
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
	blend, err := blendFor(src, dst)
	if err != nil {
		return err
	}
	b.blend = blend
	return nil
}

func (b *buffer) SetPorterDuff(rule hw.PorterDuffRule) error {
	if b.freed() {
		return ErrBufferFreed
	}
	blend, err := ruleBlend(rule)
	if err != nil {
		return err
	}
	b.blend = blend
	return nil
}

// drawable reports whether drawing calls may touch the texture.
func (b *buffer) drawable() error {
	switch {
	case b.freed():
		return ErrBufferFreed
	case b.locked():
		return ErrLocked
	}
	return nil
}

// target returns the draw destination with the clip applied. Sub-image
// draws keep the parent's coordinate system.
func (b *buffer) target() *ebiten.Image {
	full := hw.Region{X1: 0, Y1: 0, X2: b.width, Y2: b.height}
	if b.clip == full {
		return b.img
	}
	r := image.Rect(b.clip.X1, b.clip.Y1, b.clip.X2, b.clip.Y2)
	return b.img.SubImage(r).(*ebiten.Image)
}

// factorFor translates the wire-level blend factor into Ebitengine's.
func factorFor(f types.BlendFactor) (ebiten.BlendFactor, error) {
	switch f {
	case types.BlendFactorZero:
		return ebiten.BlendFactorZero, nil
	case types.BlendFactorOne:
		return ebiten.BlendFactorOne, nil
	case types.BlendFactorSrcAlpha:
		return ebiten.BlendFactorSourceAlpha, nil
	case types.BlendFactorOneMinusSrcAlpha:
		return ebiten.BlendFactorOneMinusSourceAlpha, nil
	case types.BlendFactorDstAlpha:
		return ebiten.BlendFactorDestinationAlpha, nil
	case types.BlendFactorOneMinusDstAlpha:
		return ebiten.BlendFactorOneMinusDestinationAlpha, nil
	default:
		return ebiten.BlendFactorZero, fmt.Errorf("%w: %v", ErrUnsupportedBlendFactor, f)
	}
}

// blendFor builds the blend stage for a factor pair. Both channels use
// the same factors with additive combination, which is the fixed
// function the compositing layer targets.
func blendFor(src, dst types.BlendFactor) (ebiten.Blend, error) {
	fs, err := factorFor(src)
	if err != nil {
		return ebiten.Blend{}, err
	}
	fd, err := factorFor(dst)
	if err != nil {
		return ebiten.Blend{}, err
	}
	return ebiten.Blend{
		BlendFactorSourceRGB:        fs,
		BlendFactorSourceAlpha:      fs,
		BlendFactorDestinationRGB:   fd,
		BlendFactorDestinationAlpha: fd,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}, nil
}

// ruleBlend expands a Porter-Duff rule into its blend stage. RuleNone
// behaves as a plain copy when blending is enabled.
func ruleBlend(rule hw.PorterDuffRule) (ebiten.Blend, error) {
	switch rule {
	case hw.RuleNone, hw.RuleSrc:
		return blendFor(types.BlendFactorOne, types.BlendFactorZero)
	case hw.RuleClear:
		return blendFor(types.BlendFactorZero, types.BlendFactorZero)
	case hw.RuleSrcOver:
		return blendFor(types.BlendFactorOne, types.BlendFactorOneMinusSrcAlpha)
	case hw.RuleDstOver:
		return blendFor(types.BlendFactorOneMinusDstAlpha, types.BlendFactorOne)
	case hw.RuleSrcIn:
		return blendFor(types.BlendFactorDstAlpha, types.BlendFactorZero)
	case hw.RuleDstIn:
		return blendFor(types.BlendFactorZero, types.BlendFactorSrcAlpha)
	case hw.RuleSrcOut:
		return blendFor(types.BlendFactorOneMinusDstAlpha, types.BlendFactorZero)
	case hw.RuleDstOut:
		return blendFor(types.BlendFactorZero, types.BlendFactorOneMinusSrcAlpha)
	case hw.RuleSrcAtop:
		return blendFor(types.BlendFactorDstAlpha, types.BlendFactorOneMinusSrcAlpha)
	case hw.RuleDstAtop:
		return blendFor(types.BlendFactorOneMinusDstAlpha, types.BlendFactorSrcAlpha)
	case hw.RuleAdd:
		return blendFor(types.BlendFactorOne, types.BlendFactorOne)
	case hw.RuleXor:
		return blendFor(types.BlendFactorOneMinusDstAlpha, types.BlendFactorOneMinusSrcAlpha)
	default:
		return ebiten.Blend{}, fmt.Errorf("ebitengine: unknown porter-duff rule %v", rule)
	}
}
