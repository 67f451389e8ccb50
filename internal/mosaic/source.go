package mosaic

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
)

// SourceInfo describes a decoded source image.
type SourceInfo struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	HasAlpha bool   `json:"has_alpha"`
}

// Load decodes the source image at path. EXIF orientation is applied so
// photos arrive the way viewers display them.
func Load(path string) (image.Image, *SourceInfo, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}

	name := "unknown"
	if format, err := imaging.FormatFromFilename(path); err == nil {
		name = strings.ToLower(format.String())
	}

	hasAlpha := false
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	info := &SourceInfo{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   name,
		HasAlpha: hasAlpha,
	}
	return img, info, nil
}

// Save encodes the finished mosaic to path. The extension picks the
// format, PNG keeps the alpha channel intact.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// GrayscalePass converts the image to grayscale. Alpha is preserved, so
// the transparency margin still applies afterwards.
func GrayscalePass(img image.Image) image.Image {
	return effect.Grayscale(img)
}

// Downscale fits the image to widthStuds pixels across, preserving the
// aspect ratio, and normalizes the result to straight alpha NRGBA.
// widthStuds zero keeps the source width. Upscaling is refused because a
// stud cannot represent less than one source pixel.
func Downscale(img image.Image, widthStuds int) (*image.NRGBA, error) {
	if widthStuds < 0 {
		return nil, fmt.Errorf("mosaic: width %d studs is negative", widthStuds)
	}
	srcWidth := img.Bounds().Dx()
	if widthStuds > srcWidth {
		return nil, fmt.Errorf("mosaic: width %d studs exceeds the source width %d, upscaling is not supported", widthStuds, srcWidth)
	}
	if widthStuds == 0 || widthStuds == srcWidth {
		return imaging.Clone(img), nil
	}
	return imaging.Resize(img, widthStuds, 0, imaging.Lanczos), nil
}

// ReduceColors redraws the image with at most n distinct colors using a
// median cut palette and Floyd-Steinberg dithering. The alpha channel
// passes through untouched so transparency handling still works on the
// reduced image.
func ReduceColors(img *image.NRGBA, n int) (*image.NRGBA, error) {
	if n < 2 {
		return nil, fmt.Errorf("mosaic: cannot reduce to %d colors", n)
	}
	// image.Paletted indexes with a byte, so anything past 256 colors
	// would silently wrap.
	if n > 256 {
		return nil, fmt.Errorf("mosaic: cannot reduce to %d colors, the limit is 256", n)
	}

	bounds := img.Bounds()
	quantizer := quantize.MedianCutQuantizer{}
	pal := quantizer.Quantize(make(color.Palette, 0, n), img)

	paletted := image.NewPaletted(bounds, pal)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)

	out := imaging.Clone(paletted)
	width, height := bounds.Dx(), bounds.Dy()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			srcOff := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			dstOff := out.PixOffset(x, y)
			out.Pix[dstOff+3] = img.Pix[srcOff+3]
		}
	}
	return out, nil
}
