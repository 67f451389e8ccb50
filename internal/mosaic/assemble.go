package mosaic

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/studworks/brixel/internal/chroma"
	"github.com/studworks/brixel/internal/palette"
)

// Assemble renders one stud per grid cell onto a canvas prefilled with
// the background color. Rows are processed in parallel; each row writes
// a disjoint band of the canvas and the quantizer guards its own state,
// so no further coordination is needed.
//
// Per cell: the transparency margin decides opaque versus empty, empty
// cells optionally take the placeholder color, surviving colors are
// palette-matched (and counted) or substituted via Replace, and the tile
// is composited with alpha so the background shows through empty cells
// and around the discs.
func Assemble(grid [][]chroma.Color, q *palette.Quantizer, renderer *StudRenderer, opts Options) (*image.NRGBA, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, errors.New("mosaic: empty grid")
	}
	if opts.PaletteOnly && q == nil {
		return nil, errors.New("mosaic: palette mode requires a quantizer")
	}

	width, height := len(grid[0]), len(grid)
	d := renderer.Diameter()
	canvas := imaging.New(width*d, height*d, opts.Background.NRGBA())

	var (
		errMu    sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x, c := range grid[y] {
				fill, countID, counted, ok, err := resolveCell(c, q, opts)
				if err != nil {
					fail(err)
					return
				}
				if !ok {
					continue
				}
				if counted {
					q.MarkUsed(countID)
				}

				tile, err := renderer.Tile(fill)
				if err != nil {
					fail(err)
					return
				}

				rect := image.Rect(x*d, y*d, (x+1)*d, (y+1)*d)
				draw.Draw(canvas, rect, tile, tile.Bounds().Min, draw.Over)
			}
		}
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return canvas, nil
}

// resolveCell applies the transparency margin, placeholder, palette and
// replacement rules to one cell. It returns the color to draw, the
// catalog id to count with counted saying whether that id is meaningful
// (ids are caller data, any int is legal), and whether the cell renders
// at all. A palette miss is a caller-ordering bug (filter not built over
// the full grid) and surfaces as palette.ErrNotFound.
func resolveCell(c chroma.Color, q *palette.Quantizer, opts Options) (fill chroma.Color, countID int, counted, ok bool, err error) {
	if c.Alpha() >= opts.TransparencyMargin {
		c = c.Opaque()
	} else {
		if !opts.KeepTransparentStuds {
			return chroma.Color{}, 0, false, false, nil
		}
		// Placeholder studs are synthetic: rendered as-is, never
		// matched, never counted.
		p := opts.PlaceholderColor
		if p.Alpha() == 0 {
			return chroma.Color{}, 0, false, false, nil
		}
		return p, 0, false, true, nil
	}

	if opts.PaletteOnly {
		entry, merr := q.Match(c)
		if merr != nil {
			return chroma.Color{}, 0, false, false, merr
		}
		return entry.Color, entry.ID, true, true, nil
	}

	if sub, found := opts.Replace[c]; found {
		c = sub
	}
	return c, 0, false, true, nil
}

// Result is the output of a full Generate run.
type Result struct {
	// Image is the assembled mosaic canvas.
	Image *image.NRGBA

	// GridW and GridH are the mosaic dimensions in studs.
	GridW, GridH int

	// Distinct is the number of distinct colors in the stud grid.
	Distinct int

	// Usage lists per-palette-color stud counts. Nil unless palette
	// mode was enabled.
	Usage []palette.Usage

	// Stats summarizes quantization fidelity. Zero unless palette
	// mode was enabled.
	Stats QuantizationStats

	// DistinctColors holds the grid colors in first-seen order, for
	// diagnostic dumps.
	DistinctColors []chroma.Color
}

// Generate runs the full pipeline over a decoded source image: optional
// grayscale, downscale to the stud width, optional color reduction, grid
// extraction, optional palette quantization, tile rendering, canvas
// assembly and the optional guide overlay.
func Generate(img image.Image, pal *palette.Palette, opts Options) (*Result, error) {
	if opts.PaletteOnly && pal == nil {
		return nil, errors.New("mosaic: palette mode requires a palette")
	}

	if opts.Grayscale {
		img = GrayscalePass(img)
	}

	scaled, err := Downscale(img, opts.WidthStuds)
	if err != nil {
		return nil, err
	}

	if opts.ReduceColors > 0 {
		scaled, err = ReduceColors(scaled, opts.ReduceColors)
		if err != nil {
			return nil, err
		}
	}

	grid, distinct := PixelGrid(scaled)

	var q *palette.Quantizer
	if opts.PaletteOnly {
		q = palette.NewQuantizer(pal)
		q.BuildFilter(distinct)
	}

	renderer, err := NewStudRenderer(opts.StudRadius, opts.MarkText)
	if err != nil {
		return nil, err
	}

	canvas, err := Assemble(grid, q, renderer, opts)
	if err != nil {
		return nil, fmt.Errorf("mosaic: assemble: %w", err)
	}

	if opts.GuideEvery > 0 {
		DrawGuide(canvas, opts.GuideEvery, renderer.Diameter(), opts.GuideColor, true)
	}

	res := &Result{
		Image:          canvas,
		GridW:          len(grid[0]),
		GridH:          len(grid),
		Distinct:       len(distinct),
		DistinctColors: distinct,
	}
	if q != nil {
		res.Usage = q.Usage()
		res.Stats = Stats(q)
	}
	return res, nil
}
