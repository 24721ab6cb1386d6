package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-operators/colorspace"
)

var modelKeys = []string{"red", "green", "blue", "hue", "saturation", "lightness", "value"}

// parseColor resolves a color argument.
//
// The argument is an object in one of three forms, checked in this order:
//   - {"hex": "RRGGBB"}: parsed as RGB
//   - {"name": "cornflowerblue"}: looked up as a CSS/SVG color name
//   - the keys of one model: read like any colorspace object, so a
//     "lightness" key selects HSL, a "value" key HSV, and anything else RGB
//
// field names the argument in error messages.
func parseColor(field string, raw json.RawMessage) (colorspace.Color, error) {
	if len(raw) == 0 {
		return colorspace.Color{}, fmt.Errorf("missing %s", field)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return colorspace.Color{}, fmt.Errorf("invalid %s: %w", field, err)
	}

	if hex, ok := keys["hex"]; ok {
		var s string
		if err := json.Unmarshal(hex, &s); err != nil {
			return colorspace.Color{}, fmt.Errorf("invalid %s hex: %w", field, err)
		}
		rgb, err := colorspace.RGBFromHex(s)
		if err != nil {
			return colorspace.Color{}, fmt.Errorf("invalid %s: %w", field, err)
		}
		return colorspace.ColorOf(rgb), nil
	}

	if name, ok := keys["name"]; ok {
		var s string
		if err := json.Unmarshal(name, &s); err != nil {
			return colorspace.Color{}, fmt.Errorf("invalid %s name: %w", field, err)
		}
		rgb, err := colorspace.RGBFromName(s)
		if err != nil {
			return colorspace.Color{}, fmt.Errorf("invalid %s: %w", field, err)
		}
		return colorspace.ColorOf(rgb), nil
	}

	found := false
	for _, k := range modelKeys {
		if _, ok := keys[k]; ok {
			found = true
			break
		}
	}
	if !found {
		return colorspace.Color{}, fmt.Errorf("%s has no color components, hex or name", field)
	}

	var c colorspace.Color
	if err := json.Unmarshal(raw, &c); err != nil {
		return colorspace.Color{}, fmt.Errorf("invalid %s: %w", field, err)
	}
	return c, nil
}
