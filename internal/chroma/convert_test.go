package chroma

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestFromByteToByteRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := ToByte(FromByte(uint8(v)))
		if got != uint8(v) {
			t.Fatalf("round trip of %d: got %d", v, got)
		}
	}
}

func TestQuantizeSnapsToByteSteps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8 // expected step index, i.e. Quantize(in)*255
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half rounds up", 0.5, 128},
		{"quarter", 0.25, 64},
		{"just above zero", 0.001, 0},
		{"just below one", 0.999, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantize(tt.in)
			want := FromByte(tt.want)
			if got != want {
				t.Errorf("Quantize(%v): got %v, want %v", tt.in, got, want)
			}
			// Snapping twice must not move the value.
			if Quantize(got) != got {
				t.Errorf("Quantize(%v) is not idempotent", tt.in)
			}
		})
	}
}

func TestRGBToHSLKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		wantH   float64
		wantS   float64
		wantL   float64
	}{
		{"red", 1, 0, 0, 0, 1, 0.5},
		{"green", 0, 1, 0, 1.0 / 3, 1, 0.5},
		{"blue", 0, 0, 1, 2.0 / 3, 1, 0.5},
		{"yellow", 1, 1, 0, 1.0 / 6, 1, 0.5},
		{"cyan", 0, 1, 1, 0.5, 1, 0.5},
		{"magenta", 1, 0, 1, 5.0 / 6, 1, 0.5},
		{"white", 1, 1, 1, 0, 0, 1},
		{"black", 0, 0, 0, 0, 0, 0},
		{"mid gray", 0.5, 0.5, 0.5, 0, 0, 0.5},
	}

	const tol = 1e-12
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			if math.Abs(h-tt.wantH) > tol {
				t.Errorf("H: got %v, want %v", h, tt.wantH)
			}
			if math.Abs(s-tt.wantS) > tol {
				t.Errorf("S: got %v, want %v", s, tt.wantS)
			}
			if math.Abs(l-tt.wantL) > tol {
				t.Errorf("L: got %v, want %v", l, tt.wantL)
			}
		})
	}
}

func TestRGBToHSLAchromatic(t *testing.T) {
	// Every gray must report hue 0 and saturation 0, whatever its lightness.
	for v := 0; v <= 255; v++ {
		f := FromByte(uint8(v))
		h, s, l := RGBToHSL(f, f, f)
		if h != 0 || s != 0 {
			t.Fatalf("gray %d: got h=%v s=%v, want both 0", v, h, s)
		}
		if l != f {
			t.Fatalf("gray %d: got l=%v, want %v", v, l, f)
		}
	}
}

func TestHSLRoundTripWithinOneStep(t *testing.T) {
	const tol = 1.0/255 + 1e-9
	for ri := 0; ri <= 255; ri += 5 {
		for gi := 0; gi <= 255; gi += 5 {
			for bi := 0; bi <= 255; bi += 5 {
				r := FromByte(uint8(ri))
				g := FromByte(uint8(gi))
				b := FromByte(uint8(bi))

				h, s, l := RGBToHSL(r, g, b)
				r2, g2, b2 := HSLToRGB(h, s, l)

				if math.Abs(r2-r) > tol || math.Abs(g2-g) > tol || math.Abs(b2-b) > tol {
					t.Fatalf("rgb(%d,%d,%d) -> hsl(%v,%v,%v) -> rgb(%v,%v,%v): drift beyond one step",
						ri, gi, bi, h, s, l, r2, g2, b2)
				}
			}
		}
	}
}

func TestRGBToHSLMatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const tol = 1e-9

	for i := 0; i < 2000; i++ {
		r := Quantize(rng.Float64())
		g := Quantize(rng.Float64())
		b := Quantize(rng.Float64())

		h, s, l := RGBToHSL(r, g, b)
		refH, refS, refL := colorful.Color{R: r, G: g, B: b}.Hsl()

		if math.Abs(h*360-refH) > tol || math.Abs(s-refS) > tol || math.Abs(l-refL) > tol {
			t.Fatalf("rgb(%v,%v,%v): got hsl(%v,%v,%v), reference says (%v,%v,%v)",
				r, g, b, h*360, s, l, refH, refS, refL)
		}
	}
}

func TestHSLToRGBMatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const tol = 1e-9

	for i := 0; i < 2000; i++ {
		h := rng.Float64() * 0.999 // keep clear of the 1.0 seam, where conventions differ
		s := rng.Float64()
		l := rng.Float64()

		r, g, b := HSLToRGB(h, s, l)
		ref := colorful.Hsl(h*360, s, l)

		if math.Abs(r-ref.R) > tol || math.Abs(g-ref.G) > tol || math.Abs(b-ref.B) > tol {
			t.Fatalf("hsl(%v,%v,%v): got rgb(%v,%v,%v), reference says (%v,%v,%v)",
				h, s, l, r, g, b, ref.R, ref.G, ref.B)
		}
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       string
		wantAlpha  string
	}{
		{"red", 1, 0, 0, 1, "#ff0000", "#ff0000ff"},
		{"black transparent", 0, 0, 0, 0, "#000000", "#00000000"},
		{"mid gray half alpha", 0.5, 0.5, 0.5, 0.5, "#808080", "#80808080"},
		{"white", 1, 1, 1, 1, "#ffffff", "#ffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHex(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("FormatHex: got %s, want %s", got, tt.want)
			}
			if got := FormatHexAlpha(tt.r, tt.g, tt.b, tt.a); got != tt.wantAlpha {
				t.Errorf("FormatHexAlpha: got %s, want %s", got, tt.wantAlpha)
			}
		})
	}
}

func TestFormatHexMatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 2000; i++ {
		r := Quantize(rng.Float64())
		g := Quantize(rng.Float64())
		b := Quantize(rng.Float64())

		got := FormatHex(r, g, b)
		want := colorful.Color{R: r, G: g, B: b}.Hex()
		if got != want {
			t.Fatalf("rgb(%v,%v,%v): got %s, reference says %s", r, g, b, got, want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name                string
		in                  string
		wantR, wantG, wantB uint8
		wantA               uint8
	}{
		{"lowercase with hash", "#ff8040", 255, 128, 64, 255},
		{"uppercase", "#FF8040", 255, 128, 64, 255},
		{"mixed case", "#Ffff00", 255, 255, 0, 255},
		{"no hash", "ff8040", 255, 128, 64, 255},
		{"with alpha", "#ff804080", 255, 128, 64, 128},
		{"transparent black", "#00000000", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.in, err)
			}
			if r != FromByte(tt.wantR) || g != FromByte(tt.wantG) || b != FromByte(tt.wantB) || a != FromByte(tt.wantA) {
				t.Errorf("ParseHex(%q): got (%v,%v,%v,%v), want bytes (%d,%d,%d,%d)",
					tt.in, r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bare hash", "#"},
		{"too short", "#ff00"},
		{"seven digits", "#ff00001"},
		{"nine digits", "#ff0000ff0"},
		{"not hexadecimal", "#zzzzzz"},
		{"sign prefix", "#-f0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, err := ParseHex(tt.in)
			if err == nil {
				t.Fatalf("ParseHex(%q) should fail", tt.in)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseHex(%q): error %v is not ErrInvalidFormat", tt.in, err)
			}
		})
	}
}

func TestParseHexMatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	// The reference scales by multiplying with 1.0/255.0 where ParseHex
	// divides by 255, so the two can disagree in the last ulp.
	const tol = 1e-9

	for i := 0; i < 500; i++ {
		s := FormatHex(rng.Float64(), rng.Float64(), rng.Float64())

		r, g, b, a, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", s, err)
		}
		if a != 1 {
			t.Fatalf("ParseHex(%q): alpha defaulted to %v, want 1", s, a)
		}

		ref, err := colorful.Hex(s)
		if err != nil {
			t.Fatalf("reference rejected %q: %v", s, err)
		}
		if math.Abs(r-ref.R) > tol || math.Abs(g-ref.G) > tol || math.Abs(b-ref.B) > tol {
			t.Fatalf("ParseHex(%q): got (%v,%v,%v), reference says (%v,%v,%v)",
				s, r, g, b, ref.R, ref.G, ref.B)
		}
	}
}
