package chroma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromByte maps an 8-bit channel value onto the normalized [0,1] scale.
func FromByte(v uint8) float64 {
	return float64(v) / 255
}

// ToByte maps a normalized component back onto the 8-bit scale, rounding
// half away from zero.
func ToByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// Quantize snaps a normalized component to the nearest 1/255 step. A value
// that went through Quantize survives the round trip to 8-bit form and back
// unchanged.
func Quantize(v float64) float64 {
	return math.Round(v*255) / 255
}

// RGBToHSL converts normalized RGB to normalized HSL using the standard
// cylindrical transform. Hue lands in [0,1); achromatic inputs report hue 0
// and saturation 0. Channel ties resolve in red, green, blue order.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	cmax := r
	if g > cmax {
		cmax = g
	}
	if b > cmax {
		cmax = b
	}

	cmin := r
	if g < cmin {
		cmin = g
	}
	if b < cmin {
		cmin = b
	}

	delta := cmax - cmin
	l = (cmax + cmin) / 2

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (cmax + cmin)
	} else {
		s = delta / (2 - cmax - cmin)
	}

	switch cmax {
	case r:
		h = (g - b) / delta
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6
	if h < 0 {
		h++
	}

	return h, s, l
}

// HSLToRGB converts normalized HSL back to normalized RGB. The hue circle
// splits into six sextants; each maps chroma onto a different channel pair.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}

// FormatHex renders normalized RGB as a lowercase "#rrggbb" string.
func FormatHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", ToByte(r), ToByte(g), ToByte(b))
}

// FormatHexAlpha renders normalized RGBA as a lowercase "#rrggbbaa" string.
func FormatHexAlpha(r, g, b, a float64) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", ToByte(r), ToByte(g), ToByte(b), ToByte(a))
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" into normalized components. The
// leading "#" is optional and digits are case insensitive. Alpha defaults to
// fully opaque when the string carries no alpha digits. Anything else is
// ErrInvalidFormat.
func ParseHex(s string) (r, g, b, a float64, err error) {
	hex := strings.TrimPrefix(s, "#")

	var r8, g8, b8 uint8
	a8 := uint8(255)

	switch len(hex) {
	case 6:
		val, perr := strconv.ParseUint(hex, 16, 32)
		if perr != nil {
			return 0, 0, 0, 0, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidFormat, s)
		}
		r8 = uint8(val >> 16)
		g8 = uint8(val >> 8)
		b8 = uint8(val)
	case 8:
		val, perr := strconv.ParseUint(hex, 16, 32)
		if perr != nil {
			return 0, 0, 0, 0, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidFormat, s)
		}
		r8 = uint8(val >> 24)
		g8 = uint8(val >> 16)
		b8 = uint8(val >> 8)
		a8 = uint8(val)
	default:
		return 0, 0, 0, 0, fmt.Errorf("%w: %q must have 6 or 8 hex digits", ErrInvalidFormat, s)
	}

	return FromByte(r8), FromByte(g8), FromByte(b8), FromByte(a8), nil
}
