package colorspace

import (
	"fmt"
	"math"
)

// HSL is a color in Hue, Saturation, Lightness space.
//
// Components are kept in range by every constructor:
//   - Hue: 0-360 degrees (0=red, 120=green, 240=blue). 0 and 360 are distinct.
//   - Saturation: 0-1 (0=gray, 1=vivid)
//   - Lightness: 0-1 (0=black, 0.5=normal, 1=white)
type HSL struct {
	hue        float64
	saturation float64
	lightness  float64
}

// NewHSL returns an HSL color with each component clamped into its range.
func NewHSL(hue, saturation, lightness float64) HSL {
	return HSL{
		hue:        clamp(hue, 0, 360),
		saturation: clamp(saturation, 0, 1),
		lightness:  clamp(lightness, 0, 1),
	}
}

// HSLFromArray builds a clamped HSL color from [hue, saturation, lightness].
func HSLFromArray(a [3]float64) HSL {
	return NewHSL(a[0], a[1], a[2])
}

// HSLFromSlice builds a clamped HSL color from the first three values of s.
func HSLFromSlice(s []float64) (HSL, error) {
	if len(s) < 3 {
		return HSL{}, fmt.Errorf("hsl from %d values: %w", len(s), ErrComponentCount)
	}
	return NewHSL(s[0], s[1], s[2]), nil
}

// Hue returns the hue in degrees.
func (c HSL) Hue() float64 { return c.hue }

// Saturation returns the saturation.
func (c HSL) Saturation() float64 { return c.saturation }

// Lightness returns the lightness.
func (c HSL) Lightness() float64 { return c.lightness }

// Components returns hue, saturation and lightness.
func (c HSL) Components() (hue, saturation, lightness float64) {
	return c.hue, c.saturation, c.lightness
}

// Array returns [hue, saturation, lightness].
func (c HSL) Array() [3]float64 {
	return [3]float64{c.hue, c.saturation, c.lightness}
}

// Component returns the component selected by comp (Hue, Saturation or
// Lightness).
func (c HSL) Component(comp Component) (float64, error) {
	switch comp {
	case Hue:
		return c.hue, nil
	case Saturation:
		return c.saturation, nil
	case Lightness:
		return c.lightness, nil
	}
	return 0, &NoSuchComponentError{Name: comp.String()}
}

// Get returns the component named "hue", "saturation" or "lightness".
func (c HSL) Get(name string) (float64, error) {
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

// Add converts other to HSL, adds both operands as RGB and converts the sum
// back. Channel overflow is reported as for RGB.Add.
func (c HSL) Add(other Model) (HSL, error) {
	sum, err := c.ToRGB().Add(modelOf(other).ToHSL().ToRGB())
	if err != nil {
		return HSL{}, err
	}
	return sum.ToHSL(), nil
}

// Sub converts other to HSL, subtracts both operands as RGB and converts the
// difference back.
func (c HSL) Sub(other Model) (HSL, error) {
	diff, err := c.ToRGB().Sub(modelOf(other).ToHSL().ToRGB())
	if err != nil {
		return HSL{}, err
	}
	return diff.ToHSL(), nil
}

// RotateHue adds amount degrees to the hue.
//
// Negative amounts have 360 added first. A sum above 360 wraps to
// |sum - 360*round(sum/360)|, which reflects rather than wraps for sums
// closer to the next multiple of 360 (300+300 gives 120).
func (c HSL) RotateHue(amount float64) HSL {
	c.hue = rotateHue(c.hue, amount)
	return c
}

// RotateRGB converts both colors to RGB, blends them with RGB.RotateRGB and
// converts the result back.
func (c HSL) RotateRGB(other Model) HSL {
	return c.ToRGB().RotateRGB(modelOf(other).ToHSL().ToRGB()).ToHSL()
}

// Equal converts other to HSL and compares the components exactly.
func (c HSL) Equal(other Model) bool {
	return c == modelOf(other).ToHSL()
}

// Hex returns the hexadecimal form of c converted to RGB.
func (c HSL) Hex() string {
	return c.ToRGB().Hex()
}

// HSLFromHex decodes six hexadecimal digits through RGB.
func HSLFromHex(s string) (HSL, error) {
	rgb, err := RGBFromHex(s)
	if err != nil {
		return HSL{}, err
	}
	return rgb.ToHSL(), nil
}

// ToRGB converts c to RGB.
func (c HSL) ToRGB() RGB { return hslToRGB(c) }

// ToHSL returns c.
func (c HSL) ToHSL() HSL { return c }

// ToHSV converts c to HSV.
func (c HSL) ToHSV() HSV { return hslToHSV(c) }

// Kind returns KindHSL.
func (c HSL) Kind() Kind { return KindHSL }

func (HSL) isModel() {}

// String formats c as "hue: 120, saturation: 1, lightness: 0.5".
func (c HSL) String() string {
	return fmt.Sprintf("hue: %v, saturation: %v, lightness: %v", c.hue, c.saturation, c.lightness)
}

func rotateHue(hue, amount float64) float64 {
	const turn = 360.0
	if amount < 0 {
		amount += turn
	}
	sum := hue + amount
	if sum > turn {
		return math.Abs(sum - float64(turn*math.Round(sum/turn)))
	}
	return sum
}

// hslToRGB converts through chroma and the 60 degree hue sector.
//
//	C  = (1 - |2L - 1|) * S
//	H' = H / 60
//	X  = C * (1 - |H' mod 2 - 1|)
//	m  = L - C/2
//
// Each channel is round(255 * (v + m)), saturated to 0-255. Products feeding
// a sum are wrapped in float64() so they are never fused into an FMA.
func hslToRGB(c HSL) RGB {
	if math.IsNaN(c.hue) {
		return RGB{}
	}

	chroma := (1 - math.Abs(2*c.lightness-1)) * c.saturation
	hp := c.hue / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp <= 1:
		r, g, b = chroma, x, 0
	case hp <= 2:
		r, g, b = x, chroma, 0
	case hp <= 3:
		r, g, b = 0, chroma, x
	case hp <= 4:
		r, g, b = 0, x, chroma
	case hp <= 5:
		r, g, b = x, 0, chroma
	case hp <= 6:
		r, g, b = chroma, 0, x
	}

	m := c.lightness - float64(chroma*0.5)
	return NewRGB(toChannel(r+m), toChannel(g+m), toChannel(b+m))
}

// toChannel scales a 0-1 value to 0-255, saturating out of range values.
// NaN maps to 0.
func toChannel(v float64) uint8 {
	f := math.Round(255 * v)
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}

// rgbToHSL converts 8-bit RGB values to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Hue based on which component is max (red, then green, then blue)
//  4. Calculate Lightness as (max + min) / 2
//  5. Calculate Saturation as delta / (1 - |2L - 1|)
//
// Achromatic colors (max == min) get hue 0 and saturation 0.
func rgbToHSL(c RGB) HSL {
	rf := float64(c.red) / 255.0
	gf := float64(c.green) / 255.0
	bf := float64(c.blue) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var h float64
	if delta != 0 {
		switch max {
		case rf:
			h = math.Mod(math.Mod((gf-bf)/delta, 6)+6, 6)
		case gf:
			h = (bf-rf)/delta + 2
		case bf:
			h = (rf-gf)/delta + 4
		}
	}
	h *= 60

	l := (min + max) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return NewHSL(h, s, l)
}

// hsvToHSL derives lightness from value and rescales saturation.
func hsvToHSL(c HSV) HSL {
	l := c.value * (1 - c.saturation/2)

	var s float64
	if l != 0 && l != 1 {
		s = (c.value - l) / math.Min(l, 1-l)
	}
	return HSL{hue: c.hue, saturation: s, lightness: l}
}
