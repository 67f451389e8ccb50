// Package chroma implements the color model used throughout brixel.
//
// The central type is Color: an RGBA value held as four float64 components
// in [0,1], each snapped to the nearest 1/255 step on every write. That
// snap is the package's core invariant — a Color never stores a value that
// cannot be expressed in 8-bit channels, so conversions to and from byte
// form are lossless, repeated reads and writes are idempotent, and two
// Colors built from the same 8-bit data compare equal with ==. Color is a
// plain comparable value and can key a map directly.
//
// # Color Spaces
//
// Colors are stored as RGB plus alpha. An HSL view (hue, saturation,
// lightness, all normalized to [0,1]) is derived on demand; writing an HSL
// coordinate rebuilds the RGB triple from the updated view. The package
// also converts to and from lowercase hex strings ("#rrggbb" and
// "#rrggbbaa") and 8-bit component tuples.
//
// # Quantization
//
// All rounding uses round-half-away-from-zero (math.Round), consistently
// across byte scaling and the 1/255 snap. The snap happens at construction
// and after every component write, never on read.
//
// # Distance
//
// Distance measures perceptual difference in HSL space with the hue term
// weighted double, so palette matching prefers the right hue family over
// raw channel proximity. Hue is compared as a plain interval: the metric
// does not wrap around the 0/1 seam, so two near-red hues on opposite
// sides of the seam measure as far apart.
//
// # Errors
//
// Constructors and component writes validate their inputs and report
// ErrOutOfRange for components outside [0,1]; hex parsing reports
// ErrInvalidFormat for malformed strings. Both work with errors.Is.
package chroma
