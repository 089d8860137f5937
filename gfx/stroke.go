package gfx

// StrokeStyle carries the pen parameters of a stroke operation.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
}

// LineCap selects the shape of stroke endpoints.
type LineCap uint8

const (
	// LineCapButt ends strokes squarely at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends strokes with a semicircle.
	LineCapRound
	// LineCapSquare ends strokes squarely, extended by half the width.
	LineCapSquare
)

// LineJoin selects the shape of stroke corners.
type LineJoin uint8

const (
	// LineJoinMiter joins segments with a sharp corner.
	LineJoinMiter LineJoin = iota
	// LineJoinRound joins segments with an arc.
	LineJoinRound
	// LineJoinBevel joins segments with a flat cut.
	LineJoinBevel
)
