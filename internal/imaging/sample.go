package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ironsheep/color-operators/colorspace"
)

// ColorResult contains one color in every model.
//
// The RGB, HSL and HSV fields marshal to the same flat objects the colorspace
// package reads and writes, e.g. {"red":255,"green":128,"blue":64}.
type ColorResult struct {
	Hex   string         `json:"hex"`   // "RRGGBB", no prefix
	RGB   colorspace.RGB `json:"rgb"`   // 8-bit channels
	HSL   colorspace.HSL `json:"hsl"`   // hue 0-360, saturation and lightness 0-1
	HSV   colorspace.HSV `json:"hsv"`   // hue 0-360, saturation and value 0-1
	Alpha uint8          `json:"alpha"` // 255 = opaque
}

// NewColorResult describes c in every model. Alpha is reported as opaque.
func NewColorResult(c colorspace.Model) ColorResult {
	return newColorResult(c.ToRGB(), 0xff)
}

func newColorResult(rgb colorspace.RGB, alpha uint8) ColorResult {
	return ColorResult{
		Hex:   rgb.Hex(),
		RGB:   rgb,
		HSL:   rgb.ToHSL(),
		HSV:   rgb.ToHSV(),
		Alpha: alpha,
	}
}

// SampleColor reads the pixel at (x, y).
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The pixel in every model.
//   - error: Non-nil if the coordinates are outside the image bounds.
//
// Translucent pixels are un-premultiplied first, so the channels describe the
// pixel's own color rather than its blend with black. 16-bit images are
// reduced to 8 bits per channel.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	res := newColorResult(colorspace.NewRGB(n.R, n.G, n.B), n.A)
	return &res, nil
}

// LabeledPoint is a pixel coordinate with an optional label echoed back in
// the results.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult pairs a sample with where it was taken.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point in one call.
//
// Returns an error, and no partial results, if any point is out of bounds.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle within an image; (X1, Y1) inclusive, (X2, Y2) exclusive.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency is one palette entry.
type ColorFrequency struct {
	Percentage float64 `json:"percentage"` // Share of pixels, 0-100
	ColorResult
}

// PaletteResult lists the most common colors, most common first.
type PaletteResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most frequent colors in img, or
// in region when it is non-nil.
//
// # Color Quantization
//
// Similar colors are grouped by clearing the low four bits of each channel:
//
//	quantized = (original / 16) * 16
//
// so #F0F0F0 and #FAFAFA both count as #F0F0F0. Ties are broken by hex so the
// result is deterministic.
func DominantColors(img image.Image, count int, region *Region) (*PaletteResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if r.Empty() || !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds", region.X1, region.Y1, region.X2, region.Y2)
		}
		bounds = r
	}

	counts := make(map[colorspace.RGB]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgb := colorspace.RGBFromColor(img.At(x, y))
			q := colorspace.NewRGB(rgb.Red()/16*16, rgb.Green()/16*16, rgb.Blue()/16*16)
			counts[q]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, cnt := range counts {
		colors = append(colors, ColorFrequency{
			Percentage:  float64(cnt) / float64(total) * 100,
			ColorResult: newColorResult(rgb, 0xff),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &PaletteResult{Colors: colors}, nil
}
