package mosaic

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/studworks/brixel/internal/chroma"
)

// markAngle is the wordmark rotation in degrees, matching the tilt of
// the embossed logo on a real brick stud.
const markAngle = 15

// StudRenderer rasterizes the circular stud tiles. Tiles are cached per
// color, so an image with few distinct colors renders each tile exactly
// once no matter how many cells use it. Safe for concurrent callers.
type StudRenderer struct {
	radius int
	mark   image.Image

	mu    sync.Mutex
	tiles map[chroma.Color]image.Image
}

// NewStudRenderer prepares a renderer for tiles of the given radius.
// markText is pre-rendered once, scaled to the cap width and rotated;
// an empty string disables the wordmark.
func NewStudRenderer(radius int, markText string) (*StudRenderer, error) {
	if radius < 1 {
		return nil, fmt.Errorf("mosaic: stud radius %d must be positive", radius)
	}

	r := &StudRenderer{
		radius: radius,
		tiles:  make(map[chroma.Color]image.Image),
	}
	if markText != "" {
		r.mark = renderMark(markText, radius*2)
	}
	return r, nil
}

// Diameter returns the tile edge length in pixels.
func (r *StudRenderer) Diameter() int {
	return r.radius * 2
}

// Tile returns the stud tile for c, rendering it on first use. The tile
// is a square of side Diameter with everything outside the base disc
// transparent: the base disc in c, a shadow disc offset toward the lower
// right, and a darkened cap disc carrying the wordmark.
func (r *StudRenderer) Tile(c chroma.Color) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tile, ok := r.tiles[c]; ok {
		return tile, nil
	}

	tile, err := r.render(c)
	if err != nil {
		return nil, err
	}
	r.tiles[c] = tile
	return tile, nil
}

func (r *StudRenderer) render(c chroma.Color) (image.Image, error) {
	d := r.radius * 2
	fr := float64(r.radius)
	fd := float64(d)

	dc := gg.NewContext(d, d)

	// Base disc fills the whole tile.
	dc.SetColor(c.NRGBA())
	dc.DrawCircle(fr, fr, fr)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("mosaic: tile fill: %w", err)
	}

	// Shadow disc, shifted toward the lower right so the cap appears
	// raised.
	dc.SetColor(chroma.Black.NRGBA())
	dc.DrawCircle(fr+fd/15, fr+fd/15, fd/3)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("mosaic: shadow fill: %w", err)
	}

	// Cap disc, centered, 30% darker than the base.
	darker, err := c.Darken(0.3)
	if err != nil {
		return nil, err
	}
	dc.SetColor(darker.NRGBA())
	dc.DrawCircle(fr, fr, 3*fd/10)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("mosaic: cap fill: %w", err)
	}

	tile := imaging.Clone(dc.Image())

	if r.mark != nil {
		mb := r.mark.Bounds()
		offset := image.Pt(r.radius-mb.Dx()/2, r.radius-mb.Dy()/2)
		draw.Draw(tile, mb.Sub(mb.Min).Add(offset), r.mark, mb.Min, draw.Over)
	}

	return tile, nil
}

// renderMark rasterizes the wordmark text, scales it to two fifths of
// the tile width and tilts it by markAngle.
func renderMark(text string, diameter int) image.Image {
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil() + 2
	raw := image.NewNRGBA(image.Rect(0, 0, width, face.Height+2))

	drawer := &font.Drawer{
		Dst:  raw,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 160}),
		Face: face,
		Dot:  fixed.P(1, face.Ascent+1),
	}
	drawer.DrawString(text)

	scaled := imaging.Resize(raw, diameter*2/5, 0, imaging.Lanczos)
	return transform.Rotate(scaled, markAngle, &transform.RotationOptions{ResizeBounds: true})
}
