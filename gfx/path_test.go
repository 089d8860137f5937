package gfx

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestPathIsRectangle(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Path
		want  bool
	}{
		{
			"closed rectangle",
			func() *Path { return NewRectPath(fixed.I(10), fixed.I(10), fixed.I(40), fixed.I(30)) },
			true,
		},
		{
			"unclosed rectangle",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(10), fixed.I(10)).
					LineTo(fixed.I(50), fixed.I(10)).
					LineTo(fixed.I(50), fixed.I(40)).
					LineTo(fixed.I(10), fixed.I(40))
			},
			true,
		},
		{
			"vertical first edge",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(10), fixed.I(10)).
					LineTo(fixed.I(10), fixed.I(40)).
					LineTo(fixed.I(50), fixed.I(40)).
					LineTo(fixed.I(50), fixed.I(10))
			},
			true,
		},
		{
			"triangle",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(0), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(10)).
					Close()
			},
			false,
		},
		{
			"pentagon",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(0), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(10)).
					LineTo(fixed.I(5), fixed.I(15)).
					LineTo(fixed.I(0), fixed.I(10))
			},
			false,
		},
		{
			"parallelogram",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(0), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(0)).
					LineTo(fixed.I(15), fixed.I(10)).
					LineTo(fixed.I(5), fixed.I(10))
			},
			false,
		},
		{
			"curve edges rejected even along straight lines",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(0), fixed.I(0)).
					QuadTo(fixed.I(5), fixed.I(0), fixed.I(10), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(10)).
					LineTo(fixed.I(0), fixed.I(10))
			},
			false,
		},
		{
			"sub-pixel coordinate mismatch",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(10), fixed.I(10)).
					LineTo(fixed.I(50), fixed.I(10)+1). // off by 1/64 px
					LineTo(fixed.I(50), fixed.I(40)).
					LineTo(fixed.I(10), fixed.I(40))
			},
			false,
		},
		{
			"close in the middle",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(0), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(0)).
					LineTo(fixed.I(10), fixed.I(10)).
					Close().
					LineTo(fixed.I(0), fixed.I(10))
			},
			false,
		},
		{
			"empty path",
			NewPath,
			false,
		},
		{
			"degenerate zero-size rectangle",
			func() *Path {
				return NewPath().
					MoveTo(fixed.I(5), fixed.I(5)).
					LineTo(fixed.I(5), fixed.I(5)).
					LineTo(fixed.I(5), fixed.I(5)).
					LineTo(fixed.I(5), fixed.I(5))
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := tt.build().IsRectangle()
			if got != tt.want {
				t.Errorf("IsRectangle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathIsRectangle_Box(t *testing.T) {
	p := NewRectPath(fixed.I(10), fixed.I(10), fixed.I(40), fixed.I(30))
	box, ok := p.IsRectangle()
	if !ok {
		t.Fatal("IsRectangle() = false, want true")
	}

	x, y, w, h := box.Rect()
	if x != 10 || y != 10 || w != 40 || h != 30 {
		t.Errorf("Box.Rect() = (%d, %d, %d, %d), want (10, 10, 40, 30)", x, y, w, h)
	}
}

func TestBoxRect(t *testing.T) {
	tests := []struct {
		name       string
		box        Box
		x, y, w, h int
	}{
		{
			"integer corners",
			Box{
				P1: fixed.Point26_6{X: fixed.I(10), Y: fixed.I(10)},
				P2: fixed.Point26_6{X: fixed.I(50), Y: fixed.I(40)},
			},
			10, 10, 40, 30,
		},
		{
			"flipped corners normalize",
			Box{
				P1: fixed.Point26_6{X: fixed.I(50), Y: fixed.I(40)},
				P2: fixed.Point26_6{X: fixed.I(10), Y: fixed.I(10)},
			},
			10, 10, 40, 30,
		},
		{
			"fractional corners round to nearest",
			Box{
				// (10.25, 10.75) to (50.5, 40.5)
				P1: fixed.Point26_6{X: fixed.I(10) + 16, Y: fixed.I(10) + 48},
				P2: fixed.Point26_6{X: fixed.I(50) + 32, Y: fixed.I(40) + 32},
			},
			10, 11, 41, 30,
		},
		{
			"degenerate box",
			Box{
				P1: fixed.Point26_6{X: fixed.I(5), Y: fixed.I(5)},
				P2: fixed.Point26_6{X: fixed.I(5), Y: fixed.I(5)},
			},
			5, 5, 0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.box.Rect()
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("Rect() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestPathBuilder(t *testing.T) {
	p := NewPath().
		MoveTo(fixed.I(1), fixed.I(2)).
		LineTo(fixed.I(3), fixed.I(4))

	if got := p.CurrentPoint(); got.X != fixed.I(3) || got.Y != fixed.I(4) {
		t.Errorf("CurrentPoint() = %v, want (3, 4)", got)
	}

	p.Close()
	if got := p.CurrentPoint(); got.X != fixed.I(1) || got.Y != fixed.I(2) {
		t.Errorf("CurrentPoint() after Close = %v, want (1, 2)", got)
	}

	if len(p.Verbs()) != 3 || len(p.Points()) != 2 {
		t.Errorf("verbs/points = %d/%d, want 3/2", len(p.Verbs()), len(p.Points()))
	}

	p.Reset()
	if !p.Empty() {
		t.Error("Empty() = false after Reset")
	}
}
