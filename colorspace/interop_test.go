package colorspace

import (
	"errors"
	"image"
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func within(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestHSL_ToRGB_MatchesColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 15 {
		for s := 0.0; s <= 1; s += 0.125 {
			for l := 0.0; l <= 1; l += 0.125 {
				got := NewHSL(h, s, l).ToRGB()
				r, g, b := colorful.Hsl(h, s, l).RGB255()
				if !within(got.Red(), r, 1) || !within(got.Green(), g, 1) || !within(got.Blue(), b, 1) {
					t.Errorf("HSL(%v, %v, %v): got %v, colorful says %d,%d,%d", h, s, l, got, r, g, b)
				}
			}
		}
	}
}

func TestHSV_ToRGB_MatchesColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 15 {
		for s := 0.0; s <= 1; s += 0.125 {
			for v := 0.0; v <= 1; v += 0.125 {
				got := NewHSV(h, s, v).ToRGB()
				r, g, b := colorful.Hsv(h, s, v).RGB255()
				if !within(got.Red(), r, 1) || !within(got.Green(), g, 1) || !within(got.Blue(), b, 1) {
					t.Errorf("HSV(%v, %v, %v): got %v, colorful says %d,%d,%d", h, s, v, got, r, g, b)
				}
			}
		}
	}
}

func TestRGB_Colorful(t *testing.T) {
	rgb := NewRGB(255, 42, 90)

	cf := rgb.Colorful()
	if cf.Hex() != "#ff2a5a" {
		t.Errorf("Colorful().Hex(): got %s", cf.Hex())
	}
	if got := RGBFromColorful(cf); got != rgb {
		t.Errorf("RGBFromColorful: got %v, want %v", got, rgb)
	}

	// Out of gamut colors clamp rather than wrap.
	if got, want := RGBFromColorful(colorful.Color{R: 1.5, G: -0.2, B: 0.5}), NewRGB(255, 0, 128); got != want {
		t.Errorf("RGBFromColorful(out of gamut): got %v, want %v", got, want)
	}
}

func TestRGBFromName(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"cornflowerblue", NewRGB(100, 149, 237)},
		{"  Red ", NewRGB(255, 0, 0)},
		{"BLACK", NewRGB(0, 0, 0)},
		{"white", NewRGB(255, 255, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := RGBFromName(tt.in)
			if err != nil {
				t.Fatalf("RGBFromName(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("RGBFromName(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	_, err := RGBFromName("notacolor")
	if !errors.Is(err, ErrNoSuchColor) {
		t.Fatalf("RGBFromName(notacolor): got %v, want ErrNoSuchColor", err)
	}
	var nsc *NoSuchColorError
	if !errors.As(err, &nsc) || nsc.Name != "notacolor" {
		t.Errorf("RGBFromName(notacolor): error does not carry name: %v", err)
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	if len(names) == 0 {
		t.Fatal("ColorNames returned nothing")
	}
	for _, n := range names {
		if _, err := RGBFromName(n); err != nil {
			t.Errorf("RGBFromName(%q) failed: %v", n, err)
		}
	}

	names[0] = "mutated"
	if ColorNames()[0] == "mutated" {
		t.Error("ColorNames returned the shared slice")
	}
}

func TestRGBA(t *testing.T) {
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 0xff}
	for _, c := range []color.Color{NewRGB(255, 0, 0), NewHSL(0, 1, 0.5), NewHSV(0, 1, 1), NewHSVColor(0, 1, 1)} {
		got := color.NRGBAModel.Convert(c).(color.NRGBA)
		if got != want {
			t.Errorf("%v: got %v, want %v", c, got, want)
		}
	}
}

func TestRGBFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"rgba", color.RGBA{R: 255, G: 42, B: 90, A: 0xff}, NewRGB(255, 42, 90)},
		{"nrgba translucent", color.NRGBA{R: 200, G: 100, B: 50, A: 0x80}, NewRGB(200, 100, 50)},
		{"gray", color.Gray{Y: 77}, NewRGB(77, 77, 77)},
		{"hsl", NewHSL(120, 1, 0.5), NewRGB(0, 255, 0)},
		{"color", NewHSVColor(240, 1, 1), NewRGB(0, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBFromColor(tt.in); got != tt.want {
				t.Errorf("RGBFromColor(%v): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorModels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 0xff})
	px := img.At(0, 0)

	if got := RGBModel.Convert(px); got != color.Color(NewRGB(255, 0, 0)) {
		t.Errorf("RGBModel: got %v", got)
	}
	if got := HSLModel.Convert(px); got != color.Color(NewHSL(0, 1, 0.5)) {
		t.Errorf("HSLModel: got %v", got)
	}
	if got := HSVModel.Convert(px); got != color.Color(NewHSV(0, 1, 1)) {
		t.Errorf("HSVModel: got %v", got)
	}
}
