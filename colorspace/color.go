package colorspace

import "fmt"

// Color holds exactly one RGB, HSL or HSV value.
//
// Operations forward to the held value. Binary operations convert their right
// hand side into the held model first, so the result always keeps the
// receiver's model:
//
//	c := colorspace.NewHSLColor(0, 1, 0.047058823529411764)
//	sum, _ := c.Add(colorspace.NewRGB(24, 0, 0)) // sum.IsHSL() == true
//
// The zero Color holds RGB(0, 0, 0).
type Color struct {
	model Model
}

// NewRGBColor returns a Color holding NewRGB(red, green, blue).
func NewRGBColor(red, green, blue uint8) Color {
	return Color{model: NewRGB(red, green, blue)}
}

// NewHSLColor returns a Color holding NewHSL(hue, saturation, lightness).
func NewHSLColor(hue, saturation, lightness float64) Color {
	return Color{model: NewHSL(hue, saturation, lightness)}
}

// NewHSVColor returns a Color holding NewHSV(hue, saturation, value).
func NewHSVColor(hue, saturation, value float64) Color {
	return Color{model: NewHSV(hue, saturation, value)}
}

// ColorOf wraps m. A Color argument is returned unchanged.
func ColorOf(m Model) Color {
	switch v := m.(type) {
	case Color:
		return v
	case nil:
		return Color{}
	}
	return Color{model: m}
}

// Model returns the held RGB, HSL or HSV value.
func (c Color) Model() Model {
	if c.model == nil {
		return RGB{}
	}
	return c.model
}

// Kind returns the model held by c.
func (c Color) Kind() Kind { return c.Model().Kind() }

// IsRGB reports whether c holds an RGB value.
func (c Color) IsRGB() bool { return c.Kind() == KindRGB }

// IsHSL reports whether c holds an HSL value.
func (c Color) IsHSL() bool { return c.Kind() == KindHSL }

// IsHSV reports whether c holds an HSV value.
func (c Color) IsHSV() bool { return c.Kind() == KindHSV }

// ToRGB converts the held model to RGB.
func (c Color) ToRGB() RGB { return c.Model().ToRGB() }

// ToHSL converts the held model to HSL.
func (c Color) ToHSL() HSL { return c.Model().ToHSL() }

// ToHSV converts the held model to HSV.
func (c Color) ToHSV() HSV { return c.Model().ToHSV() }

func (Color) isModel() {}

// Get returns the named component of the held model, widened to float64.
func (c Color) Get(name string) (float64, error) {
	switch m := c.Model().(type) {
	case HSL:
		return m.Get(name)
	case HSV:
		return m.Get(name)
	default:
		v, err := m.ToRGB().Get(name)
		return float64(v), err
	}
}

// Add forwards to the held model's Add. The result keeps c's model.
func (c Color) Add(other Model) (Color, error) {
	return c.apply(other, RGB.Add, HSL.Add, HSV.Add)
}

// Sub forwards to the held model's Sub. The result keeps c's model.
func (c Color) Sub(other Model) (Color, error) {
	return c.apply(other, RGB.Sub, HSL.Sub, HSV.Sub)
}

func (c Color) apply(other Model,
	rgbOp func(RGB, Model) (RGB, error),
	hslOp func(HSL, Model) (HSL, error),
	hsvOp func(HSV, Model) (HSV, error),
) (Color, error) {
	var (
		res Model
		err error
	)
	switch m := c.Model().(type) {
	case HSL:
		res, err = hslOp(m, other)
	case HSV:
		res, err = hsvOp(m, other)
	default:
		res, err = rgbOp(m.ToRGB(), other)
	}
	if err != nil {
		return Color{}, err
	}
	return Color{model: res}, nil
}

// RotateHue forwards to the held model's RotateHue.
func (c Color) RotateHue(amount float64) Color {
	switch m := c.Model().(type) {
	case HSL:
		return Color{model: m.RotateHue(amount)}
	case HSV:
		return Color{model: m.RotateHue(amount)}
	default:
		return Color{model: m.ToRGB().RotateHue(amount)}
	}
}

// RotateRGB converts other into the held model and forwards to its
// RotateRGB.
func (c Color) RotateRGB(other Model) Color {
	switch m := c.Model().(type) {
	case HSL:
		return Color{model: m.RotateRGB(other)}
	case HSV:
		return Color{model: m.RotateRGB(other)}
	default:
		return Color{model: m.ToRGB().RotateRGB(other)}
	}
}

// Equal converts other into the held model and compares exactly.
func (c Color) Equal(other Model) bool {
	switch m := c.Model().(type) {
	case HSL:
		return m.Equal(other)
	case HSV:
		return m.Equal(other)
	default:
		return m.ToRGB().Equal(other)
	}
}

// Hex returns the hexadecimal form of the held model.
func (c Color) Hex() string {
	return c.ToRGB().Hex()
}

// String formats the held model.
func (c Color) String() string {
	return fmt.Sprint(c.Model())
}
