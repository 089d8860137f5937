package gfx

import (
	"image"

	"github.com/gogpu/fbdraw/pix"
)

// ImageSource is a pixel source that can expose a CPU image, either for
// upload to a device or for software compositing. The release function
// must be called when the caller is done with the image.
//
// *pix.Image satisfies ImageSource by returning itself.
type ImageSource interface {
	AcquireImage() (*pix.Image, func(), error)
}

// Pattern is the source of pixels for a drawing operation.
//
// Surfaces dispatch on the concrete kind. Only solid colors and surface
// sources have native execution paths on blitting hardware; the other
// kinds exist so dispatch is total and always composite in software.
type Pattern interface {
	isPattern()
}

// SolidPattern paints a single color.
type SolidPattern struct {
	Color Color
}

func (SolidPattern) isPattern() {}

// SurfacePattern paints the pixels of another surface or image.
type SurfacePattern struct {
	// Source provides the pattern's pixels.
	Source ImageSource
	// Extend describes behavior outside the source bounds.
	Extend Extend
	// Matrix maps user space to pattern space.
	Matrix Matrix
}

func (SurfacePattern) isPattern() {}

// GradientStop is one color stop of a gradient pattern.
type GradientStop struct {
	Offset float64
	Color  Color
}

// LinearGradientPattern interpolates color stops along a line.
type LinearGradientPattern struct {
	X0, Y0, X1, Y1 float64
	Stops          []GradientStop
	Extend         Extend
	Matrix         Matrix
}

func (LinearGradientPattern) isPattern() {}

// RadialGradientPattern interpolates color stops between two circles.
type RadialGradientPattern struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []GradientStop
	Extend     Extend
	Matrix     Matrix
}

func (RadialGradientPattern) isPattern() {}

// MeshPatch is one Coons patch of a mesh pattern: four cubic sides with
// a color at each corner.
type MeshPatch struct {
	Path    *Path
	Corners [4]Color
}

// MeshPattern composites Coons patches.
type MeshPattern struct {
	Patches []MeshPatch
}

func (MeshPattern) isPattern() {}

// RasterSourcePattern produces pixels through a user callback each time
// the pattern is used.
type RasterSourcePattern struct {
	// Fetch returns pixels covering bounds. The release function must be
	// called when the pixels are no longer needed.
	Fetch func(bounds image.Rectangle) (*pix.Image, func(), error)
	// Content declares which channels the callback produces.
	Content Content
}

func (RasterSourcePattern) isPattern() {}
