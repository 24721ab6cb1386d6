package colorspace

import (
	"encoding/hex"
	"fmt"
)

// RGB is a color with 8-bit red, green and blue channels.
//
// Each channel ranges from 0 (no intensity) to 255 (full intensity). The zero
// value is black. RGB is the hub model: HSL and HSV arithmetic is carried out
// on RGB channels.
type RGB struct {
	red   uint8
	green uint8
	blue  uint8
}

// NewRGB returns an RGB color with the given channels.
//
// Callers holding wider integers must narrow them to 0-255 themselves; this
// constructor does not re-clamp.
func NewRGB(red, green, blue uint8) RGB {
	return RGB{red: red, green: green, blue: blue}
}

// RGBFromArray builds an RGB color from [red, green, blue].
func RGBFromArray(a [3]uint8) RGB {
	return NewRGB(a[0], a[1], a[2])
}

// RGBFromSlice builds an RGB color from the first three values of s.
//
// Values after the third are ignored. Fewer than three values return
// ErrComponentCount.
func RGBFromSlice(s []uint8) (RGB, error) {
	if len(s) < 3 {
		return RGB{}, fmt.Errorf("rgb from %d values: %w", len(s), ErrComponentCount)
	}
	return NewRGB(s[0], s[1], s[2]), nil
}

// Red returns the red channel.
func (c RGB) Red() uint8 { return c.red }

// Green returns the green channel.
func (c RGB) Green() uint8 { return c.green }

// Blue returns the blue channel.
func (c RGB) Blue() uint8 { return c.blue }

// Components returns the red, green and blue channels.
func (c RGB) Components() (red, green, blue uint8) {
	return c.red, c.green, c.blue
}

// Array returns the channels as [red, green, blue].
func (c RGB) Array() [3]uint8 {
	return [3]uint8{c.red, c.green, c.blue}
}

// Component returns the channel selected by comp.
//
// Only Red, Green and Blue are valid; any other selector returns a
// *NoSuchComponentError.
func (c RGB) Component(comp Component) (uint8, error) {
	switch comp {
	case Red:
		return c.red, nil
	case Green:
		return c.green, nil
	case Blue:
		return c.blue, nil
	}
	return 0, &NoSuchComponentError{Name: comp.String()}
}

// Get returns the channel named "red", "green" or "blue".
//
// Any other name returns a *NoSuchComponentError carrying the name.
func (c RGB) Get(name string) (uint8, error) {
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

// Add returns the channel-wise sum of c and other.
//
// The right operand is converted to RGB first. If any exact channel sum
// exceeds 255 an *OverflowError is returned and the RGB result is the zero
// value. Use RotateRGB for an overflow safe blend.
func (c RGB) Add(other Model) (RGB, error) {
	o := modelOf(other).ToRGB()
	return channelOp("add", c, o, func(a, b int) int { return a + b })
}

// Sub returns the channel-wise difference of c and other.
//
// The right operand is converted to RGB first. If any channel difference is
// negative an *OverflowError is returned.
func (c RGB) Sub(other Model) (RGB, error) {
	o := modelOf(other).ToRGB()
	return channelOp("subtract", c, o, func(a, b int) int { return a - b })
}

func channelOp(op string, left, right RGB, f func(a, b int) int) (RGB, error) {
	l := left.Array()
	r := right.Array()
	var out [3]uint8
	for i := range l {
		v := f(int(l[i]), int(r[i]))
		if v < 0 || v > 255 {
			return RGB{}, &OverflowError{Op: op, Component: Red + Component(i), Result: v}
		}
		out[i] = uint8(v)
	}
	return RGBFromArray(out), nil
}

// RotateRGB blends c with other, bleeding overflow back into range.
//
// Channels are summed in a wider integer; a sum above 255 has 255 (not 256)
// subtracted. For example 250 + 50 = 300 becomes 45.
func (c RGB) RotateRGB(other Model) RGB {
	l := c.Array()
	r := modelOf(other).ToRGB().Array()
	var out [3]uint8
	for i := range l {
		sum := uint16(l[i]) + uint16(r[i])
		if sum > 255 {
			sum -= 255
		}
		out[i] = uint8(sum)
	}
	return RGBFromArray(out)
}

// RotateHue rotates the hue by amount degrees through HSL.
func (c RGB) RotateHue(amount float64) RGB {
	return c.ToHSL().RotateHue(amount).ToRGB()
}

// Equal reports whether other, converted to RGB, has the same channels.
func (c RGB) Equal(other Model) bool {
	return c == modelOf(other).ToRGB()
}

// Hex returns the channels as six uppercase hexadecimal digits, e.g. "FF2A5A".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.red, c.green, c.blue)
}

// RGBFromHex decodes six hexadecimal digits into an RGB color.
//
// Input is case-insensitive and must not carry a "#" or "0x" prefix. Anything
// other than exactly three encoded bytes returns a *DecodeError.
func RGBFromHex(s string) (RGB, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return RGB{}, &DecodeError{Input: s, Err: err}
	}
	if len(b) != 3 {
		return RGB{}, &DecodeError{Input: s, Err: fmt.Errorf("decoded %d bytes, want 3", len(b))}
	}
	return RGBFromSlice(b)
}

// ToRGB returns c.
func (c RGB) ToRGB() RGB { return c }

// ToHSL converts c to HSL.
func (c RGB) ToHSL() HSL { return rgbToHSL(c) }

// ToHSV converts c to HSV through HSL.
func (c RGB) ToHSV() HSV { return c.ToHSL().ToHSV() }

// Kind returns KindRGB.
func (c RGB) Kind() Kind { return KindRGB }

func (RGB) isModel() {}

// String formats c as "red: 255, green: 42, blue: 90".
func (c RGB) String() string {
	return fmt.Sprintf("red: %d, green: %d, blue: %d", c.red, c.green, c.blue)
}
