package mosaic

import (
	"image"

	"github.com/studworks/brixel/internal/chroma"
)

// PixelGrid reads the downscaled image into a row-major grid of colors,
// one cell per stud, and collects the distinct colors in first-seen
// order. The scan reads straight (non-premultiplied) 8-bit channels, so
// a transparent pixel keeps its RGB and still lands in the distinct set
// even though it may never render.
func PixelGrid(img *image.NRGBA) (grid [][]chroma.Color, distinct []chroma.Color) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	seen := make(map[chroma.Color]bool)
	grid = make([][]chroma.Color, height)

	for y := 0; y < height; y++ {
		row := make([]chroma.Color, width)
		for x := 0; x < width; x++ {
			off := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			c := chroma.FromRGBA255(img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3])
			row[x] = c

			if !seen[c] {
				seen[c] = true
				distinct = append(distinct, c)
			}
		}
		grid[y] = row
	}

	return grid, distinct
}
