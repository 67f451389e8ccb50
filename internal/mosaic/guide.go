package mosaic

import (
	"image"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/studworks/brixel/internal/chroma"
)

// DrawGuide overlays an assembly grid onto the canvas: one-pixel lines
// every spacingStuds studs (d is the stud diameter in pixels), plus
// optional stud coordinates along the top and left edges. Builders use
// the guide to count studs when assembling the physical panel.
func DrawGuide(canvas *image.NRGBA, spacingStuds, d int, c chroma.Color, labels bool) {
	if spacingStuds < 1 || d < 1 {
		return
	}

	bounds := canvas.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	step := spacingStuds * d
	src := image.NewUniform(c.NRGBA())

	for x := step; x < width; x += step {
		rect := image.Rect(bounds.Min.X+x, bounds.Min.Y, bounds.Min.X+x+1, bounds.Max.Y)
		draw.Draw(canvas, rect, src, image.Point{}, draw.Over)
	}
	for y := step; y < height; y += step {
		rect := image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+1)
		draw.Draw(canvas, rect, src, image.Point{}, draw.Over)
	}

	if !labels {
		return
	}

	for x := step; x < width; x += step {
		drawLabel(canvas, bounds.Min.X+x+3, bounds.Min.Y+basicfont.Face7x13.Ascent+2, strconv.Itoa(x/d), c)
	}
	for y := step; y < height; y += step {
		drawLabel(canvas, bounds.Min.X+3, bounds.Min.Y+y+basicfont.Face7x13.Ascent+2, strconv.Itoa(y/d), c)
	}
}

func drawLabel(canvas *image.NRGBA, x, y int, text string, c chroma.Color) {
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(c.NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
