// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"github.com/gogpu/wgpu/types"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/hw"
)

// blendPair is a source/destination factor assignment for the device
// blend unit. All factors assume premultiplied pixels.
type blendPair struct {
	src, dst types.BlendFactor
}

// operatorBlendPair returns the factor pair implementing op, or false
// when the blend unit has no equivalent. Exactly the Porter-Duff
// operators and Add resolve; Saturate and the blend modes do not.
func operatorBlendPair(op gfx.Operator) (blendPair, bool) {
	switch op {
	case gfx.OpClear:
		return blendPair{types.BlendFactorZero, types.BlendFactorZero}, true
	case gfx.OpSource:
		return blendPair{types.BlendFactorOne, types.BlendFactorZero}, true
	case gfx.OpOver:
		return blendPair{types.BlendFactorOne, types.BlendFactorOneMinusSrcAlpha}, true
	case gfx.OpIn:
		return blendPair{types.BlendFactorDstAlpha, types.BlendFactorZero}, true
	case gfx.OpOut:
		return blendPair{types.BlendFactorOneMinusDstAlpha, types.BlendFactorZero}, true
	case gfx.OpAtop:
		return blendPair{types.BlendFactorDstAlpha, types.BlendFactorOneMinusSrcAlpha}, true
	case gfx.OpDest:
		return blendPair{types.BlendFactorZero, types.BlendFactorOne}, true
	case gfx.OpDestOver:
		return blendPair{types.BlendFactorOneMinusDstAlpha, types.BlendFactorOne}, true
	case gfx.OpDestIn:
		return blendPair{types.BlendFactorZero, types.BlendFactorSrcAlpha}, true
	case gfx.OpDestOut:
		return blendPair{types.BlendFactorZero, types.BlendFactorOneMinusSrcAlpha}, true
	case gfx.OpDestAtop:
		return blendPair{types.BlendFactorOneMinusDstAlpha, types.BlendFactorSrcAlpha}, true
	case gfx.OpXor:
		return blendPair{types.BlendFactorOneMinusDstAlpha, types.BlendFactorOneMinusSrcAlpha}, true
	case gfx.OpAdd:
		return blendPair{types.BlendFactorOne, types.BlendFactorOne}, true
	default:
		return blendPair{}, false
	}
}

// operatorSupported reports whether the blend unit can execute op at
// all. Unsupported operators go straight to the fallback engine.
func operatorSupported(op gfx.Operator) bool {
	_, ok := operatorBlendPair(op)
	return ok
}

// collapseOpaque simplifies the pair for a fully opaque source, where
// the source alpha factors are constant: SrcAlpha becomes One and
// OneMinusSrcAlpha becomes Zero. This is what turns an opaque Over
// into a plain replace.
func (p blendPair) collapseOpaque() blendPair {
	p.src = collapseFactorOpaque(p.src)
	p.dst = collapseFactorOpaque(p.dst)
	return p
}

func collapseFactorOpaque(f types.BlendFactor) types.BlendFactor {
	switch f {
	case types.BlendFactorSrcAlpha:
		return types.BlendFactorOne
	case types.BlendFactorOneMinusSrcAlpha:
		return types.BlendFactorZero
	default:
		return f
	}
}

// isReplace reports whether the pair writes source values untouched,
// so the draw can skip blending entirely.
func (p blendPair) isReplace() bool {
	return p.src == types.BlendFactorOne && p.dst == types.BlendFactorZero
}

// operatorPorterDuff returns the predefined blit rule implementing op.
// OpDest has no rule in the predefined set; every operator a rule
// exists for must agree with the factor pair table.
func operatorPorterDuff(op gfx.Operator) (hw.PorterDuffRule, bool) {
	switch op {
	case gfx.OpClear:
		return hw.RuleClear, true
	case gfx.OpSource:
		return hw.RuleSrc, true
	case gfx.OpOver:
		return hw.RuleSrcOver, true
	case gfx.OpIn:
		return hw.RuleSrcIn, true
	case gfx.OpOut:
		return hw.RuleSrcOut, true
	case gfx.OpAtop:
		return hw.RuleSrcAtop, true
	case gfx.OpDestOver:
		return hw.RuleDstOver, true
	case gfx.OpDestIn:
		return hw.RuleDstIn, true
	case gfx.OpDestOut:
		return hw.RuleDstOut, true
	case gfx.OpDestAtop:
		return hw.RuleDstAtop, true
	case gfx.OpXor:
		return hw.RuleXor, true
	case gfx.OpAdd:
		return hw.RuleAdd, true
	default:
		return hw.RuleNone, false
	}
}
