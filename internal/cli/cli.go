package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"fortio.org/safecast"

	"github.com/ironsheep/color-operators/colorspace"
	"github.com/ironsheep/color-operators/internal/imaging"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// command converts from one model to another.
type command struct {
	from, to colorspace.Kind
}

var commands = map[string]command{
	"rgb-to-hsl": {colorspace.KindRGB, colorspace.KindHSL},
	"rgb-to-hsv": {colorspace.KindRGB, colorspace.KindHSV},
	"hsl-to-rgb": {colorspace.KindHSL, colorspace.KindRGB},
	"hsl-to-hsv": {colorspace.KindHSL, colorspace.KindHSV},
	"hsv-to-rgb": {colorspace.KindHSV, colorspace.KindRGB},
	"hsv-to-hsl": {colorspace.KindHSV, colorspace.KindHSL},
}

// CommandNames returns the conversion commands Run accepts, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commands)+1)
	for name := range commands {
		names = append(names, name)
	}
	names = append(names, "names")
	sort.Strings(names)
	return names
}

// IsCommand reports whether Run handles name.
func IsCommand(name string) bool {
	_, ok := commands[name]
	return ok || name == "names"
}

// usageError marks errors caused by bad arguments rather than bad input.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run executes one command line and returns the process exit code.
//
// args[0] is the command name, e.g. "rgb-to-hsl"; the rest are its flags.
// Results go to stdout, diagnostics and usage text to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "colorops: missing command (one of %s)\n", strings.Join(CommandNames(), ", "))
		return ExitUsage
	}

	name := args[0]
	if name == "names" {
		for _, n := range colorspace.ColorNames() {
			fmt.Fprintln(stdout, n)
		}
		return ExitOK
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "colorops: unknown command %q (one of %s)\n", name, strings.Join(CommandNames(), ", "))
		return ExitUsage
	}

	opts := newOptions(name, cmd.from, stderr)
	if err := opts.fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if opts.fs.NArg() > 0 {
		fmt.Fprintf(stderr, "colorops: unexpected arguments: %s\n", strings.Join(opts.fs.Args(), " "))
		opts.fs.Usage()
		return ExitUsage
	}

	if err := cmd.run(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "colorops: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

func (cmd command) run(opts *options, stdout io.Writer) error {
	src, err := opts.source(cmd.from)
	if err != nil {
		return err
	}
	if opts.rotateHue != 0 {
		src = src.RotateHue(opts.rotateHue)
	}

	out := colorspace.ColorOf(colorspace.Convert(src, cmd.to))

	if opts.swatch != "" {
		if err := imaging.SaveSwatch(out, opts.swatchSize, opts.swatchSize, opts.swatch); err != nil {
			return err
		}
	}

	switch {
	case opts.toHex:
		_, err = fmt.Fprintln(stdout, out.Hex())
	case opts.toJSON:
		err = writeEncoded(stdout, out, colorspace.JSON)
	case opts.toYAML:
		err = writeEncoded(stdout, out, colorspace.YAML)
	default:
		_, err = fmt.Fprintln(stdout, out)
	}
	return err
}

func writeEncoded(w io.Writer, c colorspace.Color, codec colorspace.Codec) error {
	b, err := c.Encode(codec)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", codec.Name(), err)
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// source builds the input color in model k. The first input given wins, in
// the order hex, JSON, YAML, name, component flags. JSON or YAML text that
// does not parse is logged and skipped.
func (o *options) source(k colorspace.Kind) (colorspace.Color, error) {
	if o.fromHex != "" {
		return fromHex(k, o.fromHex)
	}
	if o.fromJSON != "" {
		c, err := parse(k, colorspace.JSON, []byte(o.fromJSON))
		if err == nil {
			return c, nil
		}
		log.Printf("Warning: ignoring --from-json -> %v", err)
	}
	if o.fromYAML != "" {
		data, err := readYAML(o.fromYAML)
		if err != nil {
			return colorspace.Color{}, err
		}
		c, err := parse(k, colorspace.YAML, data)
		if err == nil {
			return c, nil
		}
		log.Printf("Warning: ignoring --from-yaml -> %v", err)
	}
	if o.name != "" {
		rgb, err := colorspace.RGBFromName(o.name)
		if err != nil {
			return colorspace.Color{}, err
		}
		return colorspace.ColorOf(colorspace.Convert(rgb, k)), nil
	}

	switch k {
	case colorspace.KindHSL:
		return colorspace.NewHSLColor(o.hue, o.saturation, o.lightness), nil
	case colorspace.KindHSV:
		return colorspace.NewHSVColor(o.hue, o.saturation, o.value), nil
	}

	var ch [3]uint8
	for i, f := range []struct {
		name string
		v    uint
	}{{"red", o.red}, {"green", o.green}, {"blue", o.blue}} {
		v, err := safecast.Conv[uint8](f.v)
		if err != nil {
			return colorspace.Color{}, usageError{fmt.Errorf("--%s %d: must be 0-255: %w", f.name, f.v, err)}
		}
		ch[i] = v
	}
	return colorspace.ColorOf(colorspace.RGBFromArray(ch)), nil
}

func fromHex(k colorspace.Kind, s string) (colorspace.Color, error) {
	var (
		m   colorspace.Model
		err error
	)
	switch k {
	case colorspace.KindHSL:
		m, err = colorspace.HSLFromHex(s)
	case colorspace.KindHSV:
		m, err = colorspace.HSVFromHex(s)
	default:
		m, err = colorspace.RGBFromHex(s)
	}
	if err != nil {
		return colorspace.Color{}, err
	}
	return colorspace.ColorOf(m), nil
}

// parse reads an object in model k.
func parse(k colorspace.Kind, codec colorspace.Codec, data []byte) (colorspace.Color, error) {
	var (
		m   colorspace.Model
		err error
	)
	switch k {
	case colorspace.KindHSL:
		m, err = colorspace.ParseHSL(codec, data)
	case colorspace.KindHSV:
		m, err = colorspace.ParseHSV(codec, data)
	default:
		m, err = colorspace.ParseRGB(codec, data)
	}
	if err != nil {
		return colorspace.Color{}, err
	}
	return colorspace.ColorOf(m), nil
}

// readYAML treats arg as a file path when it starts with '@' and as inline
// YAML otherwise.
func readYAML(arg string) ([]byte, error) {
	path, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return []byte(arg), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML input: %w", err)
	}
	return data, nil
}
