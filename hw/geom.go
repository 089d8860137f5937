// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hw

// Rect is a device rectangle given by its top-left corner and extents.
type Rect struct {
	X, Y, W, H int
}

// Empty returns true if the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a device clip region given by two inclusive-exclusive
// corner coordinates: the pixels with X1 <= x < X2 and Y1 <= y < Y2.
type Region struct {
	X1, Y1, X2, Y2 int
}

// RegionFromRect converts a rectangle to the region covering it.
func RegionFromRect(r Rect) Region {
	return Region{X1: r.X, Y1: r.Y, X2: r.X + r.W, Y2: r.Y + r.H}
}

// Intersect returns the intersection of two regions. An empty
// intersection has X2 <= X1 or Y2 <= Y1.
func (g Region) Intersect(o Region) Region {
	if o.X1 > g.X1 {
		g.X1 = o.X1
	}
	if o.Y1 > g.Y1 {
		g.Y1 = o.Y1
	}
	if o.X2 < g.X2 {
		g.X2 = o.X2
	}
	if o.Y2 < g.Y2 {
		g.Y2 = o.Y2
	}
	return g
}

// Empty returns true if the region covers no pixels.
func (g Region) Empty() bool {
	return g.X2 <= g.X1 || g.Y2 <= g.Y1
}
