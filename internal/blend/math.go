package blend

// div255 divides x by 255 using the shift approximation (x + 255) >> 8.
// The result is off by at most +1 for some inputs, which is below the
// quantization error of 8-bit compositing, and it avoids a hardware
// divide on the per-pixel path.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// div255Exact divides x by 255 exactly for all uint16 values, using
// Alvy Ray Smith's two-shift formula. Reference paths and tests use it
// to bound the approximation error of div255.
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two bytes and divides by 255, approximated.
func MulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// MulDiv255Exact multiplies two bytes and divides by 255 exactly.
func MulDiv255Exact(a, b byte) byte {
	return byte(div255Exact(uint16(a) * uint16(b)))
}

// inv255 computes the inverse alpha 255 - x.
func inv255(x byte) byte {
	return 255 - x
}

// ClampAdd sums two bytes, saturating at 255. Blend stages clamp the
// factored sum per channel; without the clamp, additive operators wrap.
func ClampAdd(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
