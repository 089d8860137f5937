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

// Common errors returned by Presenter operations.
var (
	// ErrPresenterClosed is returned when operations are attempted on a
	// closed presenter.
	ErrPresenterClosed = errors.New("gpupresent: presenter is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpupresent: nil DeviceProvider")

	// ErrNilSurface is returned when a nil surface is passed.
	ErrNilSurface = errors.New("gpupresent: nil surface")
)

// textureDestroyer is the interface for eagerly releasing textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Presenter displays an fbdraw surface through a gogpu window.
// It manages the CPU-to-GPU pipeline automatically.
//
// Presenter is NOT safe for concurrent use. Create one Presenter per
// goroutine, or use external synchronization.
type Presenter struct {
	surface  *fbdraw.Surface
	provider gpucontext.DeviceProvider

	texture    any  // lazily created texture (*gogpu.Texture)
	oldTexture any  // previous texture awaiting deferred destruction
	dirty      bool // surface content needs upload

	// sizeChanged marks a surface swap with different dimensions; the
	// texture must be recreated rather than updated in place.
	sizeChanged bool

	width  int
	height int
	closed bool
}

// New creates a Presenter for the given surface.
// The provider should come from gogpu.App.GPUContextProvider(); its
// surface format decides the upload byte order.
//
// The presenter borrows the surface. Drawing on it stays the caller's
// business; call MarkDirty after drawing so the next present uploads
// the new content.
func New(provider gpucontext.DeviceProvider, surface *fbdraw.Surface) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if surface == nil {
		return nil, ErrNilSurface
	}

	width, height := surface.Size()
	return &Presenter{
		surface:  surface,
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true, // first Flush reads the surface and creates the texture
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes.
func MustNew(provider gpucontext.DeviceProvider, surface *fbdraw.Surface) *Presenter {
	p, err := New(provider, surface)
	if err != nil {
		panic(err)
	}
	return p
}

// Surface returns the presented surface.
// Returns nil if the presenter is closed.
func (p *Presenter) Surface() *fbdraw.Surface {
	if p.closed {
		return nil
	}
	return p.surface
}

// Provider returns the DeviceProvider associated with this presenter.
// Returns nil if the presenter is closed.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// Width returns the presented width in pixels.
func (p *Presenter) Width() int {
	return p.width
}

// Height returns the presented height in pixels.
func (p *Presenter) Height() int {
	return p.height
}

// Size returns width and height as a convenience.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// MarkDirty flags the surface content for upload on the next Flush.
// Call this after drawing; the presenter cannot observe surface
// mutations on its own.
func (p *Presenter) MarkDirty() {
	p.dirty = true
}

// IsDirty returns true if the surface has pending changes that need to
// be uploaded to the GPU.
func (p *Presenter) IsDirty() bool {
	return p.dirty
}

// SetSurface switches the presenter to another surface, typically the
// back buffer after a flip. The texture is recreated on the next
// present when the new surface has different dimensions; otherwise the
// existing texture is updated in place.
func (p *Presenter) SetSurface(surface *fbdraw.Surface) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if surface == nil {
		return ErrNilSurface
	}

	width, height := surface.Size()
	if width != p.width || height != p.height {
		p.sizeChanged = true
		p.width = width
		p.height = height
	}
	p.surface = surface
	p.dirty = true
	return nil
}

// Flush uploads the surface content to the GPU texture if dirty.
// Returns the texture for manual drawing if needed.
//
// The texture is created lazily on the first present; until a
// TextureCreator has been seen, Flush returns a placeholder holding
// the converted pixels. Subsequent calls only read the surface back
// when the dirty flag is set.
func (p *Presenter) Flush() (any, error) {
	if p.closed {
		return nil, ErrPresenterClosed
	}
	return p.flush(p.provider.SurfaceFormat())
}

// flush is the format-explicit core of Flush.
func (p *Presenter) flush(format gputypes.TextureFormat) (any, error) {
	// A surface swap with new dimensions retires the texture. The GPU
	// may still read it from queued work, so destruction is deferred
	// until the next texture creation waits for the device.
	if p.sizeChanged {
		if p.texture != nil {
			// Destroy any previously deferred texture first.
			if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			p.oldTexture = p.texture
			p.texture = nil
		}
		p.sizeChanged = false
	}

	if !p.dirty && p.texture != nil {
		return p.texture, nil
	}

	data, err := surfaceBytes(p.surface, format)
	if err != nil {
		return nil, err
	}

	// No creator seen yet: stage the pixels for the next present.
	if p.texture == nil {
		p.texture = &pendingTexture{
			width:  p.width,
			height: p.height,
			data:   data,
		}
		p.dirty = false
		return p.texture, nil
	}
	if pending, ok := p.texture.(*pendingTexture); ok {
		pending.data = data
		p.dirty = false
		return p.texture, nil
	}

	if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gpupresent: texture update failed: %w", err)
		}
	}
	p.dirty = false
	return p.texture, nil
}

// Texture returns the current GPU texture without flushing.
// Returns nil if no texture has been created yet.
func (p *Presenter) Texture() any {
	return p.texture
}

// Close releases the presenter's textures. The surface stays the
// caller's; Close does not finish it.
// Close is idempotent, multiple calls are safe.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	p.oldTexture = nil
	if destroyer, ok := p.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	p.texture = nil

	p.surface = nil
	p.provider = nil
	return nil
}

// pendingTexture stages converted pixels until a present call has a
// TextureCreator to build the real texture with.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
