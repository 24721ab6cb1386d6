// Package colorspace converts, compares and performs arithmetic on colors.
//
// Three color models are supported:
//   - RGB: three 8-bit channels (red, green, blue). RGB is the hub every other
//     model converts through.
//   - HSL: hue (0-360 degrees), saturation (0-1) and lightness (0-1).
//   - HSV: hue (0-360 degrees), saturation (0-1) and value (0-1).
//
// Color wraps exactly one of the three models and forwards every operation to
// the wrapped value.
//
// # Construction
//
// Every constructor of a cylindrical model clamps its components into range:
//
//	hsl := colorspace.NewHSL(400, 1.5, -1) // hue: 360, saturation: 1, lightness: 0
//
// Conversions between models build their results directly, so converted
// values carry the exact floating point output of the conversion formulas.
//
// # Arithmetic
//
// Add and Sub accept any Model on the right hand side. The right operand is
// first converted into the receiver's model; cylindrical models then convert
// both operands to RGB, operate on the channels and convert back. The result
// always has the receiver's model:
//
//	sum, err := colorspace.NewRGBColor(24, 0, 0).Add(colorspace.NewHSL(0, 1, 0.047058823529411764))
//	// sum.IsRGB() == true, sum equals RGB(48, 0, 0)
//
// A channel leaving 0-255 fails with ErrArithmeticOverflow. RotateRGB is the
// overflow safe alternative: channel sums above 255 have 255 subtracted.
//
// RotateHue shifts the hue of any model; RGB rotates through HSL.
//
// # Equality
//
// Equal converts its argument into the receiver's model and compares the
// components exactly. No tolerance is applied to floating point components.
//
// # Serialization
//
// Models serialize to flat key/value objects through a Codec (JSON or YAML),
// and to six uppercase hexadecimal digits through the RGB channels:
//
//	colorspace.NewRGB(255, 42, 90).ToJSONString() // {"red":255,"green":42,"blue":90}
//	colorspace.NewRGB(255, 42, 90).Hex()          // FF2A5A
//
// Object decoding is best effort: missing or mistyped keys read as zero and
// malformed input logs a warning and yields the zero value. Hex decoding is
// strict and returns a DecodeError.
//
// # Thread Safety
//
// All values are immutable. Every operation returns a new value, so values may
// be shared between goroutines without synchronization.
package colorspace
