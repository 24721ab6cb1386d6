package colorspace

import (
	"fmt"
	"math"
)

// HSV is a color in Hue, Saturation, Value space.
//
// Components are clamped the same way as HSL: hue to 0-360 degrees,
// saturation and value to 0-1.
type HSV struct {
	hue        float64
	saturation float64
	value      float64
}

// NewHSV returns an HSV color with each component clamped into its range.
func NewHSV(hue, saturation, value float64) HSV {
	return HSV{
		hue:        clamp(hue, 0, 360),
		saturation: clamp(saturation, 0, 1),
		value:      clamp(value, 0, 1),
	}
}

// HSVFromArray builds a clamped HSV color from [hue, saturation, value].
func HSVFromArray(a [3]float64) HSV {
	return NewHSV(a[0], a[1], a[2])
}

// HSVFromSlice builds a clamped HSV color from the first three values of s.
func HSVFromSlice(s []float64) (HSV, error) {
	if len(s) < 3 {
		return HSV{}, fmt.Errorf("hsv from %d values: %w", len(s), ErrComponentCount)
	}
	return NewHSV(s[0], s[1], s[2]), nil
}

// Hue returns the hue in degrees, 0-360.
func (c HSV) Hue() float64 { return c.hue }

// Saturation returns the saturation, 0-1.
func (c HSV) Saturation() float64 { return c.saturation }

// Value returns the value, 0-1.
func (c HSV) Value() float64 { return c.value }

// Components returns hue, saturation and value.
func (c HSV) Components() (hue, saturation, value float64) {
	return c.hue, c.saturation, c.value
}

// Array returns [hue, saturation, value].
func (c HSV) Array() [3]float64 {
	return [3]float64{c.hue, c.saturation, c.value}
}

// Component returns the component selected by comp (Hue, Saturation or Value).
func (c HSV) Component(comp Component) (float64, error) {
	switch comp {
	case Hue:
		return c.hue, nil
	case Saturation:
		return c.saturation, nil
	case Value:
		return c.value, nil
	}
	return 0, &NoSuchComponentError{Name: comp.String()}
}

// Get returns the component named "hue", "saturation" or "value".
func (c HSV) Get(name string) (float64, error) {
	comp, err := ParseComponent(name)
	if err != nil {
		return 0, err
	}
	v, err := c.Component(comp)
	if err != nil {
		return 0, &NoSuchComponentError{Name: name}
	}
	return v, nil
}

// Add converts other to HSV, adds both operands as RGB and converts the sum
// back to HSV.
func (c HSV) Add(other Model) (HSV, error) {
	sum, err := c.ToRGB().Add(modelOf(other).ToHSV().ToRGB())
	if err != nil {
		return HSV{}, err
	}
	return sum.ToHSV(), nil
}

// Sub converts other to HSV, subtracts both operands as RGB and converts the
// difference back to HSV.
func (c HSV) Sub(other Model) (HSV, error) {
	diff, err := c.ToRGB().Sub(modelOf(other).ToHSV().ToRGB())
	if err != nil {
		return HSV{}, err
	}
	return diff.ToHSV(), nil
}

// RotateHue adds amount degrees to the hue, wrapping as HSL.RotateHue does.
func (c HSV) RotateHue(amount float64) HSV {
	c.hue = rotateHue(c.hue, amount)
	return c
}

// RotateRGB blends both colors through RGB.RotateRGB.
func (c HSV) RotateRGB(other Model) HSV {
	return c.ToRGB().RotateRGB(modelOf(other).ToHSV().ToRGB()).ToHSV()
}

// Equal converts other to HSV and compares the components exactly.
func (c HSV) Equal(other Model) bool {
	return c == modelOf(other).ToHSV()
}

// Hex returns the hexadecimal form of c converted to RGB.
func (c HSV) Hex() string {
	return c.ToRGB().Hex()
}

// HSVFromHex decodes six hexadecimal digits through RGB.
func HSVFromHex(s string) (HSV, error) {
	rgb, err := RGBFromHex(s)
	if err != nil {
		return HSV{}, err
	}
	return rgb.ToHSV(), nil
}

// ToRGB converts c to RGB through HSL.
func (c HSV) ToRGB() RGB { return c.ToHSL().ToRGB() }

// ToHSL converts c to HSL.
func (c HSV) ToHSL() HSL { return hsvToHSL(c) }

// ToHSV returns c.
func (c HSV) ToHSV() HSV { return c }

// Kind returns KindHSV.
func (c HSV) Kind() Kind { return KindHSV }

func (HSV) isModel() {}

// String formats c as "hue: 120, saturation: 1, value: 1".
func (c HSV) String() string {
	return fmt.Sprintf("hue: %v, saturation: %v, value: %v", c.hue, c.saturation, c.value)
}

// hslToHSV: V = L + S*min(L, 1-L), S_v = 2*(1 - L/V).
func hslToHSV(c HSL) HSV {
	v := c.lightness + float64(c.saturation*math.Min(c.lightness, 1-c.lightness))

	var s float64
	if v != 0 {
		s = 2 * (1 - c.lightness/v)
	}
	return HSV{hue: c.hue, saturation: s, value: v}
}
