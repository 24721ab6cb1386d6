package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/ironsheep/color-operators/colorspace"
)

// DefaultSwatchSize is the side in pixels of the PNG written by --swatch.
const DefaultSwatchSize = 64

// options holds the parsed flags of one conversion command.
type options struct {
	fs *flag.FlagSet

	red, green, blue uint
	hue, saturation  float64
	lightness, value float64

	fromHex, fromJSON, fromYAML, name string
	toHex, toJSON, toYAML             bool

	rotateHue  float64
	swatch     string
	swatchSize int
}

// newOptions registers the flags for a command reading model from.
// Component flags take a long and a one letter form.
func newOptions(name string, from colorspace.Kind, stderr io.Writer) *options {
	o := &options{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	fs := o.fs
	fs.SetOutput(stderr)

	switch from {
	case colorspace.KindRGB:
		uintFlag(fs, &o.red, "red", "r", "red channel, 0-255")
		uintFlag(fs, &o.green, "green", "g", "green channel, 0-255")
		uintFlag(fs, &o.blue, "blue", "b", "blue channel, 0-255")
	case colorspace.KindHSL:
		floatFlag(fs, &o.hue, "hue", "h", "hue in degrees")
		floatFlag(fs, &o.saturation, "saturation", "s", "saturation, 0-1")
		floatFlag(fs, &o.lightness, "lightness", "l", "lightness, 0-1")
	case colorspace.KindHSV:
		floatFlag(fs, &o.hue, "hue", "h", "hue in degrees")
		floatFlag(fs, &o.saturation, "saturation", "s", "saturation, 0-1")
		floatFlag(fs, &o.value, "value", "v", "value, 0-1")
	}

	fs.StringVar(&o.fromHex, "from-hex", "", "read the color as six hex digits, e.g. FF2A5A")
	fs.StringVar(&o.fromJSON, "from-json", "", "read the color as a JSON object")
	fs.StringVar(&o.fromYAML, "from-yaml", "", "read the color as YAML, or from a file with @path")
	fs.StringVar(&o.name, "name", "", "read the color by SVG name, e.g. cornflowerblue")

	fs.BoolVar(&o.toHex, "to-hex", false, "print the result as hex")
	fs.BoolVar(&o.toJSON, "to-json", false, "print the result as a JSON object")
	fs.BoolVar(&o.toYAML, "to-yaml", false, "print the result as YAML")

	fs.Float64Var(&o.rotateHue, "rotate-hue", 0, "rotate the input hue by `degrees` before converting")
	fs.StringVar(&o.swatch, "swatch", "", "also write the result as a PNG swatch to `file`")
	fs.IntVar(&o.swatchSize, "swatch-size", DefaultSwatchSize, "side of the swatch in pixels")

	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: colorops %s [options]\n\n", name)
		fmt.Fprintf(w, "Converts a color from %s to %s. Missing components default to 0.\n", from, commands[name].to)
		fmt.Fprintln(w, "Input precedence: --from-hex, --from-json, --from-yaml, --name, component flags; unparsable JSON or YAML is skipped.")
		fmt.Fprintln(w, "Output precedence: --to-hex, --to-json, --to-yaml, plain text.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		fs.PrintDefaults()
	}
	return o
}

func uintFlag(fs *flag.FlagSet, p *uint, long, short, usage string) {
	fs.UintVar(p, long, 0, usage)
	fs.UintVar(p, short, 0, "shorthand for --"+long)
}

func floatFlag(fs *flag.FlagSet, p *float64, long, short, usage string) {
	fs.Float64Var(p, long, 0, usage)
	fs.Float64Var(p, short, 0, "shorthand for --"+long)
}
