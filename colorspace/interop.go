package colorspace

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color models for use with image.Image conversions.
var (
	RGBModel = color.ModelFunc(func(c color.Color) color.Color { return RGBFromColor(c) })
	HSLModel = color.ModelFunc(func(c color.Color) color.Color { return RGBFromColor(c).ToHSL() })
	HSVModel = color.ModelFunc(func(c color.Color) color.Color { return RGBFromColor(c).ToHSV() })
)

// RGBA implements color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.red, G: c.green, B: c.blue, A: 0xff}.RGBA()
}

// RGBA implements color.Color through the RGB conversion.
func (c HSL) RGBA() (r, g, b, a uint32) { return c.ToRGB().RGBA() }

// RGBA implements color.Color through the RGB conversion.
func (c HSV) RGBA() (r, g, b, a uint32) { return c.ToRGB().RGBA() }

// RGBA implements color.Color through the RGB conversion.
func (c Color) RGBA() (r, g, b, a uint32) { return c.ToRGB().RGBA() }

// RGBFromColor converts any color.Color to RGB.
//
// The color is un-premultiplied to 8-bit straight alpha first and the alpha
// channel is then dropped. An RGB, HSL, HSV or Color argument converts through
// its own ToRGB instead.
func RGBFromColor(c color.Color) RGB {
	if m, ok := c.(Model); ok {
		return m.ToRGB()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewRGB(n.R, n.G, n.B)
}

// Colorful returns c as a go-colorful color with channels in 0-1.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.red) / 255.0,
		G: float64(c.green) / 255.0,
		B: float64(c.blue) / 255.0,
	}
}

// RGBFromColorful converts a go-colorful color, clamping it into gamut first.
func RGBFromColorful(c colorful.Color) RGB {
	return NewRGB(c.Clamped().RGB255())
}

// RGBFromName looks up a CSS/SVG color name such as "cornflowerblue".
//
// Matching ignores case and surrounding whitespace. Unknown names return a
// *NoSuchColorError.
func RGBFromName(name string) (RGB, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return RGB{}, &NoSuchColorError{Name: name}
	}
	return NewRGB(c.R, c.G, c.B), nil
}

// ColorNames returns every name RGBFromName accepts, sorted.
func ColorNames() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}
