package colorspace

import (
	"encoding/json"
	"log"
	"math"

	"gopkg.in/yaml.v3"
)

// Codec reads and writes the flat key/value objects colors serialize to.
//
// An RGB object has the keys red, green and blue; HSL has hue, saturation and
// lightness; HSV has hue, saturation and value. Encoding always writes exactly
// the three keys of the model, in that order.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	// JSON encodes objects as compact JSON.
	JSON Codec = jsonCodec{}

	// YAML encodes objects as block style YAML mappings.
	YAML Codec = yamlCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// CodecByName returns the codec called "json" or "yaml".
func CodecByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON, true
	case "yaml", "yml":
		return YAML, true
	}
	return nil, false
}

type rgbObject struct {
	Red   uint8 `json:"red" yaml:"red"`
	Green uint8 `json:"green" yaml:"green"`
	Blue  uint8 `json:"blue" yaml:"blue"`
}

type hslObject struct {
	Hue        objectFloat `json:"hue" yaml:"hue"`
	Saturation objectFloat `json:"saturation" yaml:"saturation"`
	Lightness  objectFloat `json:"lightness" yaml:"lightness"`
}

type hsvObject struct {
	Hue        objectFloat `json:"hue" yaml:"hue"`
	Saturation objectFloat `json:"saturation" yaml:"saturation"`
	Value      objectFloat `json:"value" yaml:"value"`
}

// objectFloat is a cylindrical component in object text. JSON has no NaN or
// infinity, so those encode as null, which decodes back to 0.
type objectFloat float64

func (f objectFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (c RGB) object() rgbObject { return rgbObject{c.red, c.green, c.blue} }

func (c HSL) object() hslObject {
	return hslObject{objectFloat(c.hue), objectFloat(c.saturation), objectFloat(c.lightness)}
}

func (c HSV) object() hsvObject {
	return hsvObject{objectFloat(c.hue), objectFloat(c.saturation), objectFloat(c.value)}
}

// Encode writes c as an object with the keys red, green and blue.
func (c RGB) Encode(codec Codec) ([]byte, error) { return codec.Marshal(c.object()) }

// Encode writes c as an object with the keys hue, saturation and lightness.
func (c HSL) Encode(codec Codec) ([]byte, error) { return codec.Marshal(c.object()) }

// Encode writes c as an object with the keys hue, saturation and value.
func (c HSV) Encode(codec Codec) ([]byte, error) { return codec.Marshal(c.object()) }

// Encode writes the held model's object.
func (c Color) Encode(codec Codec) ([]byte, error) {
	switch m := c.Model().(type) {
	case HSL:
		return m.Encode(codec)
	case HSV:
		return m.Encode(codec)
	default:
		return m.ToRGB().Encode(codec)
	}
}

// ToJSONString returns c as a JSON object, e.g. {"red":255,"green":42,"blue":90}.
func (c RGB) ToJSONString() string { return encodeString(c) }

// ToJSONString returns c as a JSON object.
func (c HSL) ToJSONString() string { return encodeString(c) }

// ToJSONString returns c as a JSON object.
func (c HSV) ToJSONString() string { return encodeString(c) }

// ToJSONString returns the held model as a JSON object.
func (c Color) ToJSONString() string { return encodeString(c) }

func encodeString(e interface{ Encode(Codec) ([]byte, error) }) string {
	b, err := e.Encode(JSON)
	if err != nil {
		log.Printf("Warning: failed to encode color -> %v", err)
		return ""
	}
	return string(b)
}

// MarshalJSON writes c as {"red":R,"green":G,"blue":B}.
func (c RGB) MarshalJSON() ([]byte, error) { return json.Marshal(c.object()) }

// MarshalJSON writes c as {"hue":H,"saturation":S,"lightness":L}.
func (c HSL) MarshalJSON() ([]byte, error) { return json.Marshal(c.object()) }

// MarshalJSON writes c as {"hue":H,"saturation":S,"value":V}.
func (c HSV) MarshalJSON() ([]byte, error) { return json.Marshal(c.object()) }

// MarshalJSON writes the held model's object.
func (c Color) MarshalJSON() ([]byte, error) { return c.Encode(JSON) }

// UnmarshalJSON reads an RGB object. Missing or mistyped keys read as 0;
// only syntax errors are returned.
func (c *RGB) UnmarshalJSON(data []byte) error {
	obj, err := readObject(JSON, data)
	if err != nil {
		return err
	}
	*c = rgbFromObject(obj)
	return nil
}

// UnmarshalJSON reads an HSL object, clamping each component.
func (c *HSL) UnmarshalJSON(data []byte) error {
	obj, err := readObject(JSON, data)
	if err != nil {
		return err
	}
	*c = hslFromObject(obj)
	return nil
}

// UnmarshalJSON reads an HSV object, clamping each component.
func (c *HSV) UnmarshalJSON(data []byte) error {
	obj, err := readObject(JSON, data)
	if err != nil {
		return err
	}
	*c = hsvFromObject(obj)
	return nil
}

// UnmarshalJSON reads any model's object, selecting the model from its keys
// as DecodeColor does.
func (c *Color) UnmarshalJSON(data []byte) error {
	obj, err := readObject(JSON, data)
	if err != nil {
		return err
	}
	*c = colorFromObject(obj)
	return nil
}

// DecodeRGB reads an RGB object.
//
// Keys that are missing, not numbers, or not integers in 0-255 read as 0 and
// unknown keys are ignored. Malformed input logs a warning and returns black.
func DecodeRGB(codec Codec, data []byte) RGB {
	obj, ok := decodeObject(codec, data)
	if !ok {
		return RGB{}
	}
	return rgbFromObject(obj)
}

// DecodeHSL reads an HSL object, clamping each component. Missing keys read
// as 0 and malformed input logs a warning and returns HSL(0, 0, 0).
func DecodeHSL(codec Codec, data []byte) HSL {
	obj, ok := decodeObject(codec, data)
	if !ok {
		return HSL{}
	}
	return hslFromObject(obj)
}

// DecodeHSV reads an HSV object, clamping each component. Missing keys read
// as 0 and malformed input logs a warning and returns HSV(0, 0, 0).
func DecodeHSV(codec Codec, data []byte) HSV {
	obj, ok := decodeObject(codec, data)
	if !ok {
		return HSV{}
	}
	return hsvFromObject(obj)
}

// DecodeColor reads an object of any model.
//
// A "lightness" key selects HSL, otherwise a "value" key selects HSV,
// otherwise the object is read as RGB. Malformed input logs a warning and
// returns a Color holding RGB(0, 0, 0).
func DecodeColor(codec Codec, data []byte) Color {
	obj, ok := decodeObject(codec, data)
	if !ok {
		return NewRGBColor(0, 0, 0)
	}
	return colorFromObject(obj)
}

// ParseRGB reads an RGB object like DecodeRGB, but returns malformed input
// as an error instead of logging it.
func ParseRGB(codec Codec, data []byte) (RGB, error) {
	obj, err := readObject(codec, data)
	if err != nil {
		return RGB{}, err
	}
	return rgbFromObject(obj), nil
}

// ParseHSL reads an HSL object like DecodeHSL, returning malformed input as
// an error.
func ParseHSL(codec Codec, data []byte) (HSL, error) {
	obj, err := readObject(codec, data)
	if err != nil {
		return HSL{}, err
	}
	return hslFromObject(obj), nil
}

// ParseHSV reads an HSV object like DecodeHSV, returning malformed input as
// an error.
func ParseHSV(codec Codec, data []byte) (HSV, error) {
	obj, err := readObject(codec, data)
	if err != nil {
		return HSV{}, err
	}
	return hsvFromObject(obj), nil
}

// RGBFromJSONString is DecodeRGB with the JSON codec.
func RGBFromJSONString(s string) RGB { return DecodeRGB(JSON, []byte(s)) }

// HSLFromJSONString is DecodeHSL with the JSON codec.
func HSLFromJSONString(s string) HSL { return DecodeHSL(JSON, []byte(s)) }

// HSVFromJSONString is DecodeHSV with the JSON codec.
func HSVFromJSONString(s string) HSV { return DecodeHSV(JSON, []byte(s)) }

// ColorFromJSONString is DecodeColor with the JSON codec.
func ColorFromJSONString(s string) Color { return DecodeColor(JSON, []byte(s)) }

func decodeObject(codec Codec, data []byte) (map[string]any, bool) {
	obj, err := readObject(codec, data)
	if err != nil {
		log.Printf("Warning: ignoring error -> %v", err)
		return nil, false
	}
	return obj, true
}

func readObject(codec Codec, data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := codec.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func rgbFromObject(obj map[string]any) RGB {
	return NewRGB(uint8Field(obj, "red"), uint8Field(obj, "green"), uint8Field(obj, "blue"))
}

func hslFromObject(obj map[string]any) HSL {
	return NewHSL(floatField(obj, "hue"), floatField(obj, "saturation"), floatField(obj, "lightness"))
}

func hsvFromObject(obj map[string]any) HSV {
	return NewHSV(floatField(obj, "hue"), floatField(obj, "saturation"), floatField(obj, "value"))
}

func colorFromObject(obj map[string]any) Color {
	if _, ok := obj["lightness"]; ok {
		return Color{model: hslFromObject(obj)}
	}
	if _, ok := obj["value"]; ok {
		return Color{model: hsvFromObject(obj)}
	}
	return Color{model: rgbFromObject(obj)}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func floatField(obj map[string]any, key string) float64 {
	f, _ := number(obj[key])
	return f
}

func uint8Field(obj map[string]any, key string) uint8 {
	f, ok := number(obj[key])
	if !ok || f != math.Trunc(f) || f < 0 || f > 255 {
		return 0
	}
	return uint8(f)
}
