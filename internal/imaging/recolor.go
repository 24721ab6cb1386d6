package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-operators/colorspace"
)

// Recolor returns a copy of img with fn applied to the color of every pixel.
//
// fn sees un-premultiplied channels and alpha is carried over unchanged.
// Fully transparent pixels are skipped. Rows are processed in parallel, so
// fn must be safe for concurrent use.
func Recolor(img image.Image, fn func(colorspace.RGB) colorspace.RGB) *image.RGBA {
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		if c.A == 0 {
			return c
		}
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		rgb := fn(colorspace.NewRGB(n.R, n.G, n.B))
		out := color.NRGBA{R: rgb.Red(), G: rgb.Green(), B: rgb.Blue(), A: n.A}
		return color.RGBAModel.Convert(out).(color.RGBA)
	})
}

// RotateImageHue rotates the hue of every pixel by degrees, the same way
// colorspace.RGB.RotateHue does for a single color.
func RotateImageHue(img image.Image, degrees float64) *image.RGBA {
	return Recolor(img, func(c colorspace.RGB) colorspace.RGB {
		return c.RotateHue(degrees)
	})
}

// RecolorResult describes an image written by RotateImageHueFile.
type RecolorResult struct {
	Output  string  `json:"output"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Degrees float64 `json:"degrees"`
}

// RotateImageHueFile rotates the hue of img and saves it to output. The
// format follows the output file extension.
func RotateImageHueFile(img image.Image, degrees float64, output string) (*RecolorResult, error) {
	if output == "" {
		return nil, fmt.Errorf("output path is required")
	}
	rotated := RotateImageHue(img, degrees)
	if err := imaging.Save(rotated, output); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", output, err)
	}
	b := rotated.Bounds()
	return &RecolorResult{
		Output:  output,
		Width:   b.Dx(),
		Height:  b.Dy(),
		Degrees: degrees,
	}, nil
}
