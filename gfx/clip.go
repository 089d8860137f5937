package gfx

import "image"

// Clip restricts drawing to a region of the destination. Only the
// bounding rectangle of the region is representable; callers that track
// finer clip shapes must reduce them to extents before handing them to a
// surface. A nil *Clip means unclipped.
type Clip struct {
	// Extents is the bounding rectangle of the clip region in device
	// coordinates.
	Extents image.Rectangle

	// AllClipped reports that the region is empty: every pixel is
	// clipped away and drawing can be skipped entirely.
	AllClipped bool
}
