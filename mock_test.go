// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import (
	"github.com/gogpu/wgpu/types"

	"github.com/gogpu/fbdraw/gfx"
	"github.com/gogpu/fbdraw/hw"
	"github.com/gogpu/fbdraw/pix"
)

// mockBuffer implements hw.Buffer for testing. It records every call
// in order and exposes the draw state the adapter set.
type mockBuffer struct {
	width, height int
	format        hw.PixelFormat
	caps          hw.Caps

	calls []string

	refs     int
	releases int
	locked   bool

	lockData   []byte
	lockStride int

	clip      *hw.Region
	clips     []*hw.Region
	clipSet   int
	color     [4]uint8
	drawFlags hw.DrawFlags
	blendSrc  types.BlendFactor
	blendDst  types.BlendFactor
	rule      hw.PorterDuffRule

	fillRects []hw.Rect
	blits     []mockBlit
	writes    []mockWrite

	errOn map[string]error
}

type mockBlit struct {
	src     hw.Buffer
	srcRect *hw.Rect
	dx, dy  int
	tiled   bool
}

type mockWrite struct {
	rect   hw.Rect
	data   []byte
	stride int
}

func newMockBuffer(width, height int, format hw.PixelFormat, caps hw.Caps) *mockBuffer {
	stride := formatToCanonical(format).RowBytes(width)
	return &mockBuffer{
		width:      width,
		height:     height,
		format:     format,
		caps:       caps,
		refs:       1,
		lockStride: stride,
		lockData:   make([]byte, height*stride),
	}
}

func (m *mockBuffer) call(name string) error {
	m.calls = append(m.calls, name)
	if m.errOn != nil {
		return m.errOn[name]
	}
	return nil
}

func (m *mockBuffer) Size() (int, int)            { return m.width, m.height }
func (m *mockBuffer) PixelFormat() hw.PixelFormat { return m.format }
func (m *mockBuffer) Capabilities() hw.Caps       { return m.caps }

func (m *mockBuffer) AddRef() error {
	if err := m.call("AddRef"); err != nil {
		return err
	}
	m.refs++
	return nil
}

func (m *mockBuffer) Release() error {
	if err := m.call("Release"); err != nil {
		return err
	}
	m.refs--
	m.releases++
	return nil
}

func (m *mockBuffer) Lock(flags hw.LockFlags) ([]byte, int, error) {
	if err := m.call("Lock"); err != nil {
		return nil, 0, err
	}
	m.locked = true
	return m.lockData, m.lockStride, nil
}

func (m *mockBuffer) Unlock() error {
	if err := m.call("Unlock"); err != nil {
		return err
	}
	m.locked = false
	return nil
}

func (m *mockBuffer) SetClip(region *hw.Region) error {
	if err := m.call("SetClip"); err != nil {
		return err
	}
	m.clip = region
	m.clips = append(m.clips, region)
	m.clipSet++
	return nil
}

func (m *mockBuffer) SetColor(r, g, b, a uint8) error {
	if err := m.call("SetColor"); err != nil {
		return err
	}
	m.color = [4]uint8{r, g, b, a}
	return nil
}

func (m *mockBuffer) SetDrawingFlags(flags hw.DrawFlags) error {
	if err := m.call("SetDrawingFlags"); err != nil {
		return err
	}
	m.drawFlags = flags
	return nil
}

func (m *mockBuffer) SetBlendFunctions(src, dst types.BlendFactor) error {
	if err := m.call("SetBlendFunctions"); err != nil {
		return err
	}
	m.blendSrc, m.blendDst = src, dst
	return nil
}

func (m *mockBuffer) SetPorterDuff(rule hw.PorterDuffRule) error {
	if err := m.call("SetPorterDuff"); err != nil {
		return err
	}
	m.rule = rule
	return nil
}

func (m *mockBuffer) FillRectangle(r hw.Rect) error {
	if err := m.call("FillRectangle"); err != nil {
		return err
	}
	m.fillRects = append(m.fillRects, r)
	return nil
}

func (m *mockBuffer) Blit(src hw.Buffer, srcRect *hw.Rect, dx, dy int) error {
	if err := m.call("Blit"); err != nil {
		return err
	}
	m.blits = append(m.blits, mockBlit{src: src, srcRect: srcRect, dx: dx, dy: dy})
	return nil
}

func (m *mockBuffer) TileBlit(src hw.Buffer, srcRect *hw.Rect, dx, dy int) error {
	if err := m.call("TileBlit"); err != nil {
		return err
	}
	m.blits = append(m.blits, mockBlit{src: src, srcRect: srcRect, dx: dx, dy: dy, tiled: true})
	return nil
}

func (m *mockBuffer) Write(r hw.Rect, data []byte, stride int) error {
	if err := m.call("Write"); err != nil {
		return err
	}
	m.writes = append(m.writes, mockWrite{rect: r, data: data, stride: stride})
	return nil
}

// called reports how many times the named method was invoked.
func (m *mockBuffer) called(name string) int {
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}

// callIndex returns the position of the first invocation of name, or
// -1 when it never happened.
func (m *mockBuffer) callIndex(name string) int {
	for i, c := range m.calls {
		if c == name {
			return i
		}
	}
	return -1
}

// mockDevice implements hw.Device for testing.
type mockDevice struct {
	created   []*mockBuffer
	createErr error
}

func (d *mockDevice) CreateBuffer(desc hw.BufferDescription) (hw.Buffer, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	b := newMockBuffer(desc.Width, desc.Height, desc.Format, desc.Caps)
	d.created = append(d.created, b)
	return b, nil
}

// mockFallback implements Fallback for testing, recording the last
// delegated operation and its arguments.
type mockFallback struct {
	fills   int
	paints  int
	masks   int
	strokes int
	glyphs  int

	lastDst       Mappable
	lastOp        gfx.Operator
	lastPattern   gfx.Pattern
	lastPath      *gfx.Path
	lastFillRule  gfx.FillRule
	lastTolerance float64
	lastClip      *gfx.Clip

	err error
}

func (f *mockFallback) Fill(dst Mappable, op gfx.Operator, pattern gfx.Pattern, path *gfx.Path, fillRule gfx.FillRule, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error {
	f.fills++
	f.lastDst = dst
	f.lastOp = op
	f.lastPattern = pattern
	f.lastPath = path
	f.lastFillRule = fillRule
	f.lastTolerance = tolerance
	f.lastClip = clip
	return f.err
}

func (f *mockFallback) Paint(dst Mappable, op gfx.Operator, source gfx.Pattern, clip *gfx.Clip) error {
	f.paints++
	f.lastDst = dst
	f.lastOp = op
	f.lastPattern = source
	f.lastClip = clip
	return f.err
}

func (f *mockFallback) Mask(dst Mappable, op gfx.Operator, source gfx.Pattern, mask gfx.Pattern, clip *gfx.Clip) error {
	f.masks++
	f.lastDst = dst
	f.lastOp = op
	f.lastPattern = source
	f.lastClip = clip
	return f.err
}

func (f *mockFallback) Stroke(dst Mappable, op gfx.Operator, source gfx.Pattern, path *gfx.Path, style *gfx.StrokeStyle, matrix gfx.Matrix, tolerance float64, antialias gfx.Antialias, clip *gfx.Clip) error {
	f.strokes++
	f.lastDst = dst
	f.lastOp = op
	f.lastPattern = source
	f.lastPath = path
	f.lastClip = clip
	return f.err
}

func (f *mockFallback) ShowGlyphs(dst Mappable, op gfx.Operator, source gfx.Pattern, glyphs []gfx.Glyph, face gfx.Face, clip *gfx.Clip) error {
	f.glyphs++
	f.lastDst = dst
	f.lastOp = op
	f.lastPattern = source
	f.lastClip = clip
	return f.err
}

// mockAcquirer implements SourceAcquirer for testing.
type mockAcquirer struct {
	img      *pix.Image
	err      error
	acquired int
	released int
}

func (a *mockAcquirer) AcquireSource(src gfx.ImageSource) (*pix.Image, func(), error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	a.acquired++
	return a.img, func() { a.released++ }, nil
}
