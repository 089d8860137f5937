// Package blend evaluates fixed-function blend stages over premultiplied
// pixels.
//
// A blend stage is described by a pair of factors (source, destination):
// the stage computes S*fs + D*fd per channel, clamped to 255. This is the
// model exposed by blitting hardware, and it is what the compositing
// layer lowers Porter-Duff operators into.
//
// All values are premultiplied alpha in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Factor selects the per-pixel coefficient of one blend stage operand.
type Factor uint8

const (
	Zero             Factor = iota // coefficient 0
	One                            // coefficient 1
	SrcAlpha                       // coefficient Sa
	OneMinusSrcAlpha               // coefficient 1-Sa
	DstAlpha                       // coefficient Da
	OneMinusDstAlpha               // coefficient 1-Da
)

// Coeff returns the coefficient for f on the 0-255 scale, given the source
// and destination alpha of the pixel being composed.
func (f Factor) Coeff(sa, da byte) byte {
	switch f {
	case Zero:
		return 0
	case One:
		return 255
	case SrcAlpha:
		return sa
	case OneMinusSrcAlpha:
		return inv255(sa)
	case DstAlpha:
		return da
	case OneMinusDstAlpha:
		return inv255(da)
	default:
		return 0
	}
}

// Compose applies one blend stage to a single premultiplied channel.
func Compose(s, d, fs, fd byte) byte {
	return ClampAdd(MulDiv255(s, fs), MulDiv255(d, fd))
}

// Pixel applies the (src, dst) factor pair to a full premultiplied RGBA
// pixel. The coefficients depend only on the two alphas, so they are
// evaluated once and shared by all four channels.
func Pixel(src, dst Factor, sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	fs := src.Coeff(sa, da)
	fd := dst.Coeff(sa, da)
	return Compose(sr, dr, fs, fd),
		Compose(sg, dg, fs, fd),
		Compose(sb, db, fs, fd),
		Compose(sa, da, fs, fd)
}
