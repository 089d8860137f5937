// Package gfx defines the drawing-model vocabulary shared by compositing
// surfaces: operators, pattern kinds, paths, colors, transforms and clips.
//
// The types here describe what a caller wants drawn. Whether an operation
// runs on blitting hardware or in a software rasterizer is decided by the
// surface implementations that consume this vocabulary.
package gfx

// Operator is a compositing operator. The first thirteen are the
// Porter-Duff operators; the rest are the W3C blend modes plus Saturate,
// which only software rasterizers implement.
type Operator uint8

const (
	// OpClear clears the destination.
	OpClear Operator = iota
	// OpSource replaces the destination with the source.
	OpSource
	// OpOver composites the source over the destination (default).
	OpOver
	// OpIn keeps the source where the destination is opaque.
	OpIn
	// OpOut keeps the source where the destination is transparent.
	OpOut
	// OpAtop composites the source over the destination, keeping the
	// destination's alpha.
	OpAtop
	// OpDest keeps the destination unchanged.
	OpDest
	// OpDestOver composites the destination over the source.
	OpDestOver
	// OpDestIn keeps the destination where the source is opaque.
	OpDestIn
	// OpDestOut keeps the destination where the source is transparent.
	OpDestOut
	// OpDestAtop composites the destination over the source, keeping the
	// source's alpha.
	OpDestAtop
	// OpXor keeps source and destination where they do not overlap.
	OpXor
	// OpAdd sums source and destination.
	OpAdd
	// OpSaturate saturating-adds the source, limited by the destination
	// alpha.
	OpSaturate

	OpMultiply
	OpScreen
	OpOverlay
	OpDarken
	OpLighten
	OpColorDodge
	OpColorBurn
	OpHardLight
	OpSoftLight
	OpDifference
	OpExclusion
	OpHSLHue
	OpHSLSaturation
	OpHSLColor
	OpHSLLuminosity
)

// String returns a human-readable name for the operator.
func (op Operator) String() string {
	switch op {
	case OpClear:
		return "Clear"
	case OpSource:
		return "Source"
	case OpOver:
		return "Over"
	case OpIn:
		return "In"
	case OpOut:
		return "Out"
	case OpAtop:
		return "Atop"
	case OpDest:
		return "Dest"
	case OpDestOver:
		return "DestOver"
	case OpDestIn:
		return "DestIn"
	case OpDestOut:
		return "DestOut"
	case OpDestAtop:
		return "DestAtop"
	case OpXor:
		return "Xor"
	case OpAdd:
		return "Add"
	case OpSaturate:
		return "Saturate"
	case OpMultiply:
		return "Multiply"
	case OpScreen:
		return "Screen"
	case OpOverlay:
		return "Overlay"
	case OpDarken:
		return "Darken"
	case OpLighten:
		return "Lighten"
	case OpColorDodge:
		return "ColorDodge"
	case OpColorBurn:
		return "ColorBurn"
	case OpHardLight:
		return "HardLight"
	case OpSoftLight:
		return "SoftLight"
	case OpDifference:
		return "Difference"
	case OpExclusion:
		return "Exclusion"
	case OpHSLHue:
		return "HSLHue"
	case OpHSLSaturation:
		return "HSLSaturation"
	case OpHSLColor:
		return "HSLColor"
	case OpHSLLuminosity:
		return "HSLLuminosity"
	default:
		return "Unknown"
	}
}
