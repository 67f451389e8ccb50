package chroma

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	// ErrOutOfRange reports a component or amount outside its legal interval.
	ErrOutOfRange = errors.New("chroma: value out of range")

	// ErrInvalidFormat reports a malformed color string.
	ErrInvalidFormat = errors.New("chroma: invalid color format")
)

// Color is an RGBA color with float64 components in [0,1], each snapped to
// the nearest 1/255 step on every write. Because components only ever hold
// snapped values, == compares the exact 8-bit quadruple and Color can key a
// map directly.
//
// The zero value is fully transparent black.
type Color struct {
	r, g, b, a float64
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// FromRGB builds an opaque Color from normalized components.
func FromRGB(r, g, b float64) (Color, error) {
	return FromRGBA(r, g, b, 1)
}

// FromRGBA builds a Color from normalized components. Every component must
// lie in [0,1].
func FromRGBA(r, g, b, a float64) (Color, error) {
	for _, v := range [4]float64{r, g, b, a} {
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("%w: component %v outside [0,1]", ErrOutOfRange, v)
		}
	}
	return Color{Quantize(r), Quantize(g), Quantize(b), Quantize(a)}, nil
}

// FromRGB255 builds an opaque Color from 8-bit components.
func FromRGB255(r, g, b uint8) Color {
	return Color{FromByte(r), FromByte(g), FromByte(b), 1}
}

// FromRGBA255 builds a Color from 8-bit components including alpha.
func FromRGBA255(r, g, b, a uint8) Color {
	return Color{FromByte(r), FromByte(g), FromByte(b), FromByte(a)}
}

// FromHSL builds an opaque Color from normalized hue, saturation and
// lightness.
func FromHSL(h, s, l float64) (Color, error) {
	return FromHSLA(h, s, l, 1)
}

// FromHSLA builds a Color from normalized HSL components plus alpha. The
// stored RGB triple is derived through HSLToRGB and snapped, so reading the
// HSL view back may differ from the input by up to one 1/255 step.
func FromHSLA(h, s, l, a float64) (Color, error) {
	for _, v := range [4]float64{h, s, l, a} {
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("%w: component %v outside [0,1]", ErrOutOfRange, v)
		}
	}
	r, g, b := HSLToRGB(h, s, l)
	return Color{Quantize(r), Quantize(g), Quantize(b), Quantize(a)}, nil
}

// FromHSL255 builds an opaque Color from 8-bit HSL components.
func FromHSL255(h, s, l uint8) Color {
	c, _ := FromHSLA(FromByte(h), FromByte(s), FromByte(l), 1)
	return c
}

// FromHSLA255 builds a Color from 8-bit HSL components plus alpha.
func FromHSLA255(h, s, l, a uint8) Color {
	c, _ := FromHSLA(FromByte(h), FromByte(s), FromByte(l), FromByte(a))
	return c
}

// FromHex parses "#rrggbb" or "#rrggbbaa" into a Color. Alpha defaults to
// fully opaque for six-digit strings.
func FromHex(s string) (Color, error) {
	r, g, b, a, err := ParseHex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{r, g, b, a}, nil
}

// RGBA returns the normalized components.
func (c Color) RGBA() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// RGBA255 returns the components on the 8-bit scale.
func (c Color) RGBA255() (r, g, b, a uint8) {
	return ToByte(c.r), ToByte(c.g), ToByte(c.b), ToByte(c.a)
}

// HSLA returns the hue, saturation and lightness derived from the stored
// RGB triple, plus alpha.
func (c Color) HSLA() (h, s, l, a float64) {
	h, s, l = RGBToHSL(c.r, c.g, c.b)
	return h, s, l, c.a
}

// HSLA255 returns the HSL view scaled to the 8-bit range.
func (c Color) HSLA255() (h, s, l, a uint8) {
	hf, sf, lf, af := c.HSLA()
	return ToByte(hf), ToByte(sf), ToByte(lf), ToByte(af)
}

// Single component reads.
func (c Color) R() float64     { return c.r }
func (c Color) G() float64     { return c.g }
func (c Color) B() float64     { return c.b }
func (c Color) Alpha() float64 { return c.a }

// Hue returns the normalized hue in [0,1).
func (c Color) Hue() float64 {
	h, _, _ := RGBToHSL(c.r, c.g, c.b)
	return h
}

// Saturation returns the normalized saturation.
func (c Color) Saturation() float64 {
	_, s, _ := RGBToHSL(c.r, c.g, c.b)
	return s
}

// Lightness returns the normalized lightness.
func (c Color) Lightness() float64 {
	_, _, l := RGBToHSL(c.r, c.g, c.b)
	return l
}

// Hex returns the color as lowercase "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return FormatHex(c.r, c.g, c.b)
}

// HexAlpha returns the color as lowercase "#rrggbbaa".
func (c Color) HexAlpha() string {
	return FormatHexAlpha(c.r, c.g, c.b, c.a)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.HexAlpha()
}

// NRGBA returns the color as a straight-alpha stdlib color value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Opaque returns the color with alpha forced fully opaque.
func (c Color) Opaque() Color {
	c.a = 1
	return c
}

// WithRed returns a copy with the red component replaced.
func (c Color) WithRed(v float64) (Color, error) {
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("%w: red %v outside [0,1]", ErrOutOfRange, v)
	}
	c.r = Quantize(v)
	return c, nil
}

// WithGreen returns a copy with the green component replaced.
func (c Color) WithGreen(v float64) (Color, error) {
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("%w: green %v outside [0,1]", ErrOutOfRange, v)
	}
	c.g = Quantize(v)
	return c, nil
}

// WithBlue returns a copy with the blue component replaced.
func (c Color) WithBlue(v float64) (Color, error) {
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("%w: blue %v outside [0,1]", ErrOutOfRange, v)
	}
	c.b = Quantize(v)
	return c, nil
}

// WithAlpha returns a copy with the alpha component replaced.
func (c Color) WithAlpha(v float64) (Color, error) {
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("%w: alpha %v outside [0,1]", ErrOutOfRange, v)
	}
	c.a = Quantize(v)
	return c, nil
}

// WithHue returns a copy with the hue replaced. The RGB triple is rebuilt
// from the updated HSL view; saturation and lightness carry over up to the
// 1/255 snap.
func (c Color) WithHue(v float64) (Color, error) {
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("%w: hue %v outside [0,1]", ErrOutOfRange, v)
	}
	_, s, l := RGBToHSL(c.r, c.g, c.b)
	return c.withHSL(v, s, l), nil
}

// WithSaturation returns a copy with the saturation replaced.
func (c Color) WithSaturation(v float64) (Color, error) {
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("%w: saturation %v outside [0,1]", ErrOutOfRange, v)
	}
	h, _, l := RGBToHSL(c.r, c.g, c.b)
	return c.withHSL(h, v, l), nil
}

// WithLightness returns a copy with the lightness replaced.
func (c Color) WithLightness(v float64) (Color, error) {
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("%w: lightness %v outside [0,1]", ErrOutOfRange, v)
	}
	h, s, _ := RGBToHSL(c.r, c.g, c.b)
	return c.withHSL(h, s, v), nil
}

// Darken scales lightness down by amount: new lightness = l - l*amount.
// Hue, saturation and alpha carry over. amount must lie in [0,1]; 0 is a
// no-op and 1 drops the color to full dark.
func (c Color) Darken(amount float64) (Color, error) {
	if amount < 0 || amount > 1 {
		return Color{}, fmt.Errorf("%w: darken amount %v outside [0,1]", ErrOutOfRange, amount)
	}
	h, s, l := RGBToHSL(c.r, c.g, c.b)
	l = math.Max(0, l-l*amount)
	return c.withHSL(h, s, l), nil
}

// Lighten scales lightness up toward white: new lightness = l + (1-l)*amount.
// The counterpart of Darken; 0 is a no-op and 1 goes fully light.
func (c Color) Lighten(amount float64) (Color, error) {
	if amount < 0 || amount > 1 {
		return Color{}, fmt.Errorf("%w: lighten amount %v outside [0,1]", ErrOutOfRange, amount)
	}
	h, s, l := RGBToHSL(c.r, c.g, c.b)
	l = math.Min(1, l+(1-l)*amount)
	return c.withHSL(h, s, l), nil
}

// Distance measures perceptual difference in HSL space:
//
//	sqrt(2*(h1-h2)^2 + (s1-s2)^2 + (l1-l2)^2)
//
// The doubled hue term biases palette matching toward the same hue family.
// Hue is compared as a plain interval, not a circle, so values on opposite
// sides of the 0/1 seam measure as far apart. Alpha is ignored.
func (c Color) Distance(o Color) float64 {
	h1, s1, l1 := RGBToHSL(c.r, c.g, c.b)
	h2, s2, l2 := RGBToHSL(o.r, o.g, o.b)

	dh := h1 - h2
	ds := s1 - s2
	dl := l1 - l2

	return math.Sqrt(2*dh*dh + ds*ds + dl*dl)
}

func (c Color) withHSL(h, s, l float64) Color {
	r, g, b := HSLToRGB(h, s, l)
	c.r, c.g, c.b = Quantize(r), Quantize(g), Quantize(b)
	return c
}
