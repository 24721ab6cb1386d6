package colorspace

// Component selects one component of a color model.
type Component int

const (
	Red Component = iota
	Green
	Blue
	Hue
	Saturation
	Lightness
	Value
)

var componentNames = [...]string{
	Red:        "red",
	Green:      "green",
	Blue:       "blue",
	Hue:        "hue",
	Saturation: "saturation",
	Lightness:  "lightness",
	Value:      "value",
}

// String returns the lowercase name used for the component in object text.
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return "unknown"
	}
	return componentNames[c]
}

// ParseComponent maps a component name to its Component.
//
// Names are matched exactly ("red", not "Red"). Unknown names return a
// *NoSuchComponentError carrying the name.
func ParseComponent(name string) (Component, error) {
	for c, n := range componentNames {
		if n == name {
			return Component(c), nil
		}
	}
	return 0, &NoSuchComponentError{Name: name}
}

// Kind identifies the model held by a Color.
type Kind int

const (
	KindRGB Kind = iota
	KindHSL
	KindHSV
)

func (k Kind) String() string {
	switch k {
	case KindRGB:
		return "rgb"
	case KindHSL:
		return "hsl"
	case KindHSV:
		return "hsv"
	}
	return "unknown"
}

// ParseKind maps "rgb", "hsl" or "hsv" to its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "rgb":
		return KindRGB, true
	case "hsl":
		return KindHSL, true
	case "hsv":
		return KindHSV, true
	}
	return 0, false
}

// Model is implemented by RGB, HSL, HSV and Color.
//
// Binary operations accept a Model on the right hand side and convert it into
// the receiver's model before operating. A nil right hand side reads as
// black. The set of implementations is closed.
type Model interface {
	ToRGB() RGB
	ToHSL() HSL
	ToHSV() HSV
	Kind() Kind

	isModel()
}

// Convert returns m converted to the model identified by k. A nil m reads as
// black.
func Convert(m Model, k Kind) Model {
	m = modelOf(m)
	switch k {
	case KindHSL:
		return m.ToHSL()
	case KindHSV:
		return m.ToHSV()
	default:
		return m.ToRGB()
	}
}

// modelOf maps a nil Model to black, as ColorOf does.
func modelOf(m Model) Model {
	if m == nil {
		return RGB{}
	}
	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
