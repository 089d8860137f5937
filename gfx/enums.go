package gfx

// Content describes which channels a surface carries.
type Content uint8

const (
	// ContentColor marks surfaces with color channels only.
	ContentColor Content = 1 << iota
	// ContentAlpha marks surfaces with an alpha channel only.
	ContentAlpha
	// ContentColorAlpha marks surfaces with both.
	ContentColorAlpha = ContentColor | ContentAlpha
)

// String returns a human-readable name for the content.
func (c Content) String() string {
	switch c {
	case ContentColor:
		return "Color"
	case ContentAlpha:
		return "Alpha"
	case ContentColorAlpha:
		return "ColorAlpha"
	default:
		return "Unknown"
	}
}

// Extend describes how a pattern behaves outside its natural bounds.
type Extend uint8

const (
	// ExtendNone draws nothing outside the pattern.
	ExtendNone Extend = iota
	// ExtendRepeat tiles the pattern.
	ExtendRepeat
	// ExtendReflect tiles the pattern, mirroring at each boundary.
	ExtendReflect
	// ExtendPad continues the edge pixels outward.
	ExtendPad
)

// String returns a human-readable name for the extend mode.
func (e Extend) String() string {
	switch e {
	case ExtendNone:
		return "None"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	case ExtendPad:
		return "Pad"
	default:
		return "Unknown"
	}
}

// FillRule selects how path self-intersections are filled.
type FillRule uint8

const (
	// FillRuleWinding fills by non-zero winding number.
	FillRuleWinding FillRule = iota
	// FillRuleEvenOdd fills by even-odd crossing count.
	FillRuleEvenOdd
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleWinding:
		return "Winding"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// Antialias selects the edge quality of rasterization.
type Antialias uint8

const (
	// AntialiasDefault lets the rasterizer choose.
	AntialiasDefault Antialias = iota
	// AntialiasNone uses hard pixel edges.
	AntialiasNone
	// AntialiasGray uses single-channel coverage.
	AntialiasGray
	// AntialiasSubpixel uses LCD subpixel coverage.
	AntialiasSubpixel
)

// String returns a human-readable name for the antialias mode.
func (a Antialias) String() string {
	switch a {
	case AntialiasDefault:
		return "Default"
	case AntialiasNone:
		return "None"
	case AntialiasGray:
		return "Gray"
	case AntialiasSubpixel:
		return "Subpixel"
	default:
		return "Unknown"
	}
}
