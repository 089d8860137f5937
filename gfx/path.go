package gfx

import "golang.org/x/image/math/fixed"

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of points this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// Path represents a vector path in 26.6 fixed-point coordinates.
// It stores path commands (verbs) and coordinate data separately.
//
// Fixed-point coordinates make geometric predicates exact: two edges
// share an axis if and only if their coordinates are bit-equal, with no
// epsilon involved.
type Path struct {
	verbs  []PathVerb
	points []fixed.Point26_6
	start  fixed.Point26_6
	cursor fixed.Point26_6
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 8),
		points: make([]fixed.Point26_6, 0, 8),
	}
}

// NewRectPath creates a closed rectangular path with corner (x, y) and
// the given extents.
func NewRectPath(x, y, w, h fixed.Int26_6) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y fixed.Int26_6) *Path {
	pt := fixed.Point26_6{X: x, Y: y}
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, pt)
	p.start = pt
	p.cursor = pt
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y fixed.Int26_6) *Path {
	pt := fixed.Point26_6{X: x, Y: y}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, pt)
	p.cursor = pt
	return p
}

// QuadTo draws a quadratic Bezier curve to (x, y) using (cx, cy) as the
// control point.
func (p *Path) QuadTo(cx, cy, x, y fixed.Int26_6) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points,
		fixed.Point26_6{X: cx, Y: cy},
		fixed.Point26_6{X: x, Y: y})
	p.cursor = fixed.Point26_6{X: x, Y: y}
	return p
}

// CubicTo draws a cubic Bezier curve to (x, y) using two control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y fixed.Int26_6) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points,
		fixed.Point26_6{X: c1x, Y: c1y},
		fixed.Point26_6{X: c2x, Y: c2y},
		fixed.Point26_6{X: x, Y: y})
	p.cursor = fixed.Point26_6{X: x, Y: y}
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = fixed.Point26_6{}
	p.cursor = fixed.Point26_6{}
}

// Empty returns true if the path has no verbs.
func (p *Path) Empty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the path's verbs. The slice must not be modified.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the path's points. The slice must not be modified.
func (p *Path) Points() []fixed.Point26_6 {
	return p.points
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() fixed.Point26_6 {
	return p.cursor
}

// IsRectangle reports whether the path is structurally an axis-aligned
// rectangle: exactly one MoveTo followed by three LineTos, optionally
// closed, whose consecutive edges alternate between horizontal and
// vertical. The closing edge back to the start is implied. Coordinates
// must match exactly; nothing is inferred from curves that happen to
// trace straight lines.
//
// On success the returned Box holds two opposite corners of the
// rectangle, in path order.
func (p *Path) IsRectangle() (Box, bool) {
	n := len(p.verbs)
	if n != 4 && n != 5 {
		return Box{}, false
	}
	if n == 5 && p.verbs[4] != VerbClose {
		return Box{}, false
	}
	if p.verbs[0] != VerbMoveTo ||
		p.verbs[1] != VerbLineTo ||
		p.verbs[2] != VerbLineTo ||
		p.verbs[3] != VerbLineTo {
		return Box{}, false
	}

	p0, p1, p2, p3 := p.points[0], p.points[1], p.points[2], p.points[3]

	// Horizontal-first: p0-p1 shares Y, then edges alternate.
	if p0.Y == p1.Y && p1.X == p2.X && p2.Y == p3.Y && p3.X == p0.X {
		return Box{P1: p0, P2: p2}, true
	}
	// Vertical-first.
	if p0.X == p1.X && p1.Y == p2.Y && p2.X == p3.X && p3.Y == p0.Y {
		return Box{P1: p0, P2: p2}, true
	}
	return Box{}, false
}

// Box is an axis-aligned box given by two opposite corners in 26.6
// fixed-point coordinates. The corners need not be ordered.
type Box struct {
	P1, P2 fixed.Point26_6
}

// Rect returns the integer rectangle covered by the box, rounding each
// corner to the nearest pixel. Flipped boxes yield the same rectangle as
// their normalized form, so extents are never negative.
func (b Box) Rect() (x, y, w, h int) {
	x1, y1 := b.P1.X.Round(), b.P1.Y.Round()
	x2, y2 := b.P2.X.Round(), b.P2.Y.Round()
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return x1, y1, x2 - x1, y2 - y1
}
