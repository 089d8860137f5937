package blend

import (
	"testing"
)

// TestFactorCoeff tests coefficient evaluation for every factor.
func TestFactorCoeff(t *testing.T) {
	tests := []struct {
		name     string
		f        Factor
		sa, da   byte
		expected byte
	}{
		{"zero", Zero, 128, 64, 0},
		{"one", One, 128, 64, 255},
		{"src_alpha", SrcAlpha, 128, 64, 128},
		{"one_minus_src_alpha", OneMinusSrcAlpha, 128, 64, 127},
		{"dst_alpha", DstAlpha, 128, 64, 64},
		{"one_minus_dst_alpha", OneMinusDstAlpha, 128, 64, 191},
		{"src_alpha_opaque", SrcAlpha, 255, 0, 255},
		{"one_minus_src_alpha_opaque", OneMinusSrcAlpha, 255, 0, 0},
		{"dst_alpha_transparent", DstAlpha, 0, 0, 0},
		{"one_minus_dst_alpha_transparent", OneMinusDstAlpha, 0, 0, 255},
	}

	for _, tt := range tests {
		got := tt.f.Coeff(tt.sa, tt.da)
		if got != tt.expected {
			t.Errorf("%s: Coeff(%d, %d) = %d, want %d",
				tt.name, tt.sa, tt.da, got, tt.expected)
		}
	}
}

// TestComposeReplace verifies that the (1, 0) factor pair reproduces the
// source channel exactly for all inputs. Replacement must be lossless even
// with the fast div255 approximation.
func TestComposeReplace(t *testing.T) {
	for s := 0; s <= 255; s++ {
		for _, d := range []byte{0, 1, 127, 254, 255} {
			got := Compose(byte(s), d, 255, 0)
			if got != byte(s) {
				t.Fatalf("Compose(%d, %d, 255, 0) = %d, want %d", s, d, got, s)
			}
		}
	}
}

// TestComposeKeep verifies that the (0, 1) factor pair keeps the
// destination channel exactly for all inputs.
func TestComposeKeep(t *testing.T) {
	for d := 0; d <= 255; d++ {
		got := Compose(77, byte(d), 0, 255)
		if got != byte(d) {
			t.Fatalf("Compose(77, %d, 0, 255) = %d, want %d", d, got, d)
		}
	}
}

// TestPixelSourceOver tests the (One, OneMinusSrcAlpha) pair, the default
// compositing stage.
func TestPixelSourceOver(t *testing.T) {
	tests := []struct {
		name           string
		sr, sg, sb, sa byte
		dr, dg, db, da byte
		r, g, b, a     byte
	}{
		// Opaque source replaces the destination outright.
		{"opaque", 200, 100, 50, 255, 10, 20, 30, 40, 200, 100, 50, 255},
		// Fully transparent premultiplied source leaves the destination.
		{"transparent", 0, 0, 0, 0, 10, 20, 30, 40, 10, 20, 30, 40},
	}

	for _, tt := range tests {
		r, g, b, a := Pixel(One, OneMinusSrcAlpha,
			tt.sr, tt.sg, tt.sb, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
		if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
			t.Errorf("%s: Pixel = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tt.name, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
		}
	}
}

// TestPixelDestIn tests the (Zero, SrcAlpha) pair, which scales the
// destination by the source alpha.
func TestPixelDestIn(t *testing.T) {
	// Premultiplied half-transparent source over an opaque destination.
	r, g, b, a := Pixel(Zero, SrcAlpha, 64, 64, 64, 128, 200, 100, 50, 255)

	want := [4]byte{100, 50, 25, 128}
	got := [4]byte{r, g, b, a}
	if got != want {
		t.Errorf("Pixel = %v, want %v", got, want)
	}
}

// TestPixelNearExact compares the fast path against the exact formula for
// a spread of factor pairs and pixel values, allowing the +1 rounding
// difference of div255.
func TestPixelNearExact(t *testing.T) {
	pairs := []struct{ src, dst Factor }{
		{One, OneMinusSrcAlpha},
		{DstAlpha, Zero},
		{OneMinusDstAlpha, One},
		{OneMinusDstAlpha, OneMinusSrcAlpha},
		{One, One},
	}
	pixels := []struct{ s, d, sa, da byte }{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 64, 128, 255},
		{30, 200, 60, 90},
		{1, 254, 2, 253},
	}

	for _, p := range pairs {
		for _, px := range pixels {
			fs := p.src.Coeff(px.sa, px.da)
			fd := p.dst.Coeff(px.sa, px.da)
			got := Compose(px.s, px.d, fs, fd)
			exact := ClampAdd(MulDiv255Exact(px.s, fs), MulDiv255Exact(px.d, fd))

			diff := int(got) - int(exact)
			if diff < 0 || diff > 2 {
				t.Errorf("Compose(%d, %d, %d, %d) = %d, exact %d (pair %d/%d)",
					px.s, px.d, fs, fd, got, exact, p.src, p.dst)
			}
		}
	}
}

// Benchmarks

// BenchmarkPixel_SourceOver benchmarks a full pixel through the default
// blend stage.
func BenchmarkPixel_SourceOver(b *testing.B) {
	var r, g, bl, a byte
	for i := 0; i < b.N; i++ {
		r, g, bl, a = Pixel(One, OneMinusSrcAlpha, 200, 100, 50, 128, 10, 20, 30, 255)
	}
	_, _, _, _ = r, g, bl, a
}
