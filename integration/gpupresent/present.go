// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpupresent

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/fbdraw"
)

// Presentation errors.
var (
	// ErrNilTarget is returned when the draw target is nil.
	ErrNilTarget = errors.New("gpupresent: nil draw target")

	// ErrInvalidRenderer is returned when the target has no texture
	// creator to upload through.
	ErrInvalidRenderer = errors.New("gpupresent: renderer must implement gpucontext.TextureCreator")

	// ErrInvalidTexture is returned when the created texture cannot be
	// drawn through gpucontext.Texture.
	ErrInvalidTexture = errors.New("gpupresent: texture does not implement gpucontext.Texture")
)

// Options controls how a surface is presented to the target.
type Options struct {
	// X, Y is the position to draw the texture (default: 0, 0).
	X, Y float32

	// Format is the byte order the upload should use. The zero value
	// TextureFormatUndefined takes the format from the provider (or the
	// target, for the package-level functions) and falls back to RGBA.
	Format gputypes.TextureFormat
}

// DefaultOptions returns options with sensible defaults: the origin
// position and the byte order of the target's surface format.
func DefaultOptions() Options {
	return Options{}
}

// Present draws a surface into a gogpu window at the given position.
// This is the one-shot form: the surface is read back, uploaded to a
// fresh texture, and drawn in a single call.
//
// The dst parameter should be obtained from gogpu.Context.AsTextureDrawer().
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    gpupresent.Present(dc.AsTextureDrawer(), surface, 0, 0)
//	})
//
// Frame loops should prefer a Presenter, which reuses one texture
// across frames instead of creating one per call.
func Present(dst gpucontext.TextureDrawer, src *fbdraw.Surface, x, y float32) error {
	return PresentEx(dst, src, Options{X: x, Y: y})
}

// PresentEx is Present with explicit options.
//
// When opts.Format is left undefined the target is probed for a
// SurfaceFormat method; window draw contexts report their swapchain
// format through it. Without one the upload uses RGBA byte order.
func PresentEx(dst gpucontext.TextureDrawer, src *fbdraw.Surface, opts Options) error {
	if dst == nil {
		return ErrNilTarget
	}
	if src == nil {
		return ErrNilSurface
	}

	format := opts.Format
	if format == gputypes.TextureFormatUndefined {
		if fp, ok := dst.(interface{ SurfaceFormat() gputypes.TextureFormat }); ok {
			format = fp.SurfaceFormat()
		}
	}

	data, err := surfaceBytes(src, format)
	if err != nil {
		return err
	}

	creator := dst.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}

	width, height := src.Size()
	tex, err := creator.NewTextureFromRGBA(width, height, data)
	if err != nil {
		return fmt.Errorf("gpupresent: NewTextureFromRGBA failed: %w", err)
	}
	applyPremultiplied(tex, src)

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dst.DrawTexture(gpuTex, opts.X, opts.Y)
}

// PresentTo draws the presenter's surface to a gpucontext.TextureDrawer.
// This is the primary integration method.
//
// The dst parameter should be obtained from gogpu.Context.AsTextureDrawer().
// The surface content is uploaded if dirty and drawn at position (0, 0).
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    presenter.PresentTo(dc.AsTextureDrawer())
//	})
func (p *Presenter) PresentTo(dst gpucontext.TextureDrawer) error {
	return p.PresentToEx(dst, DefaultOptions())
}

// PresentToEx draws the presenter's surface with additional options.
func (p *Presenter) PresentToEx(dst gpucontext.TextureDrawer, opts Options) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if dst == nil {
		return ErrNilTarget
	}

	format := opts.Format
	if format == gputypes.TextureFormatUndefined {
		format = p.provider.SurfaceFormat()
	}

	tex, err := p.flush(format)
	if err != nil {
		return err
	}

	// Staged pixels and a live creator: build the real texture now.
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dst.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gpupresent: NewTextureFromRGBA failed: %w", err)
		}
		applyPremultiplied(realTex, p.surface)

		p.texture = realTex
		tex = realTex

		// Texture creation waits for the device, so a texture retired
		// by an earlier surface swap is no longer referenced by
		// in-flight work and can be destroyed.
		if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		p.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dst.DrawTexture(gpuTex, opts.X, opts.Y)
}

// PresentToPosition is a convenience method for presenting at a
// specific position.
//
//	presenter.PresentToPosition(dc.AsTextureDrawer(), 100, 50)
//
// is equivalent to:
//
//	presenter.PresentToEx(dc.AsTextureDrawer(), gpupresent.Options{X: 100, Y: 50})
func (p *Presenter) PresentToPosition(dst gpucontext.TextureDrawer, x, y float32) error {
	return p.PresentToEx(dst, Options{X: x, Y: y})
}

// applyPremultiplied tells the texture which alpha convention the
// surface pixels use, so the right blend pipeline composites it.
func applyPremultiplied(tex any, src *fbdraw.Surface) {
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(src.Premultiplied())
	}
}
