// Package palette provides fixed brick color palettes and the quantizer
// that maps arbitrary image colors onto them.
//
// A Palette is an immutable, ordered list of entries, each carrying the
// vendor catalog id, a display name and the color itself. Order matters:
// when two entries sit at the same distance from a source color, the
// quantizer picks the one declared first.
//
// The Quantizer works in two phases. BuildFilter runs the exhaustive
// nearest-entry search once per distinct source color and caches the
// result; Match afterwards is a plain map lookup and fails for colors the
// filter never saw. Alpha never participates in matching — colors are
// compared fully opaque.
//
// The quantizer also carries usage counters: every filter target starts at
// zero and MarkUsed adds one per stud actually rendered with that entry.
// Counting is safe to call from concurrent renderer goroutines.
package palette
