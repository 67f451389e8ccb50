package mosaic

import "github.com/studworks/brixel/internal/chroma"

// Options configures a single mosaic run.
type Options struct {
	// WidthStuds is the output width in studs. Zero keeps the source
	// pixel width. Values above the source width are rejected, the
	// pipeline never upscales.
	WidthStuds int

	// StudRadius is the tile radius in pixels. Every stud occupies a
	// square tile with a side of twice the radius.
	StudRadius int

	// PaletteOnly matches every stud onto the palette before rendering
	// and records per-color usage.
	PaletteOnly bool

	// Grayscale converts the source to grayscale before any other stage.
	Grayscale bool

	// ReduceColors caps the number of distinct colors ahead of grid
	// extraction. Zero disables the reduction.
	ReduceColors int

	// TransparencyMargin is the alpha cutoff for a source pixel. Pixels
	// at or above the margin render as opaque studs, pixels below it
	// leave an empty cell.
	TransparencyMargin float64

	// KeepTransparentStuds fills cells that fell below the margin with
	// PlaceholderColor instead of leaving them empty.
	KeepTransparentStuds bool

	// PlaceholderColor is the fill for kept transparent cells. A fully
	// transparent placeholder still leaves the cell empty. Placeholder
	// studs are never matched onto the palette and never counted.
	PlaceholderColor chroma.Color

	// Background fills the canvas before any stud is drawn.
	Background chroma.Color

	// Replace maps exact stud colors to substitutes. Ignored when
	// PaletteOnly is set.
	Replace map[chroma.Color]chroma.Color

	// MarkText is stamped across every stud cap. Empty disables the
	// stamp.
	MarkText string

	// GuideEvery draws assembly guide lines every N studs. Zero
	// disables the overlay.
	GuideEvery int

	// GuideColor strokes the guide lines and coordinate labels.
	GuideColor chroma.Color
}

// DefaultOptions returns the defaults used by the command line tool:
// stud radius 96, transparency margin 0.5, transparent background and
// the standard cap mark.
func DefaultOptions() Options {
	return Options{
		StudRadius:         96,
		TransparencyMargin: 0.5,
		PlaceholderColor:   chroma.Transparent,
		Background:         chroma.Transparent,
		MarkText:           "brixel",
		GuideColor:         chroma.FromRGBA255(255, 0, 0, 128),
	}
}
