package cli

import (
	"bytes"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// run executes args and returns the exit code with captured output.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Conversions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rgb to hsl", []string{"rgb-to-hsl", "--red", "255"}, "hue: 0, saturation: 1, lightness: 0.5\n"},
		{"short flags", []string{"rgb-to-hsl", "-r", "255", "-g", "0", "-b", "0"}, "hue: 0, saturation: 1, lightness: 0.5\n"},
		{"hsl to rgb hex", []string{"hsl-to-rgb", "-h", "0", "-s", "1", "-l", "0.5", "--to-hex"}, "FF0000\n"},
		{"hex to hsv", []string{"rgb-to-hsv", "--from-hex", "00ff00"}, "hue: 120, saturation: 1, value: 1\n"},
		{"hsv to rgb json", []string{"hsv-to-rgb", "-s", "0", "-v", "1", "--to-json"}, `{"red":255,"green":255,"blue":255}` + "\n"},
		{"name to yaml", []string{"hsl-to-rgb", "--name", "cornflowerblue", "--to-yaml"}, "red: 100\ngreen: 149\nblue: 237\n"},
		{"name to hex", []string{"rgb-to-hsl", "--name", "CornflowerBlue", "--to-hex"}, "6495ED\n"},
		{"json input", []string{"rgb-to-hsv", "--from-json", `{"red":255}`, "--to-hex"}, "FF0000\n"},
		{"yaml input", []string{"hsv-to-hsl", "--from-yaml", "hue: 0\nsaturation: 1\nvalue: 1", "--to-hex"}, "FF0000\n"},
		{"defaults to zero", []string{"hsv-to-rgb"}, "red: 0, green: 0, blue: 0\n"},
		{"rotate hue", []string{"hsl-to-rgb", "-h", "0", "-s", "1", "-l", "0.5", "--rotate-hue", "120", "--to-hex"}, "00FF00\n"},
		{"hex beats other inputs", []string{"rgb-to-hsl", "--from-hex", "0000FF", "--name", "red", "-r", "255", "--to-hex"}, "0000FF\n"},
		{"hex beats other outputs", []string{"rgb-to-hsl", "-g", "255", "--to-json", "--to-hex"}, "00FF00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)
			require.Equal(t, ExitOK, code, stderr)
			require.Equal(t, tt.want, stdout)
		})
	}
}

func TestRun_MalformedJSON(t *testing.T) {
	var logs bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&logs)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})

	code, stdout, _ := run(t, "rgb-to-hsl", "--from-json", "nope", "-r", "255")
	require.Equal(t, ExitOK, code)
	require.Equal(t, "hue: 0, saturation: 1, lightness: 0.5\n", stdout)
	require.Contains(t, logs.String(), "Warning: ignoring --from-json")

	logs.Reset()
	code, stdout, _ = run(t, "hsv-to-rgb", "--from-json", "[]", "--from-yaml", "[1, 2", "--name", "lime", "--to-hex")
	require.Equal(t, ExitOK, code)
	require.Equal(t, "00FF00\n", stdout)
	require.Contains(t, logs.String(), "ignoring --from-json")
	require.Contains(t, logs.String(), "ignoring --from-yaml")

	// Nothing else given: the component flags default to 0.
	code, stdout, _ = run(t, "rgb-to-hsl", "--from-json", "{")
	require.Equal(t, ExitOK, code)
	require.Equal(t, "hue: 0, saturation: 0, lightness: 0\n", stdout)
}

func TestRun_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "color.yaml")
	require.NoError(t, os.WriteFile(path, []byte("red: 1\ngreen: 2\nblue: 3\n"), 0o644))

	code, stdout, stderr := run(t, "rgb-to-hsl", "--from-yaml", "@"+path, "--to-hex")
	require.Equal(t, ExitOK, code, stderr)
	require.Equal(t, "010203\n", stdout)

	code, _, stderr = run(t, "rgb-to-hsl", "--from-yaml", "@"+filepath.Join(t.TempDir(), "missing.yaml"))
	require.Equal(t, ExitError, code)
	require.Contains(t, stderr, "failed to read YAML input")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"no command", nil, ExitUsage, "missing command"},
		{"unknown command", []string{"rgb-to-cmyk"}, ExitUsage, `unknown command "rgb-to-cmyk"`},
		{"unknown flag", []string{"rgb-to-hsl", "--lightness", "1"}, ExitUsage, "flag provided but not defined"},
		{"extra argument", []string{"rgb-to-hsl", "red"}, ExitUsage, "unexpected arguments: red"},
		{"channel out of range", []string{"rgb-to-hsl", "--red", "256"}, ExitUsage, "--red 256"},
		{"prefixed hex", []string{"rgb-to-hsl", "--from-hex", "#FF0000"}, ExitError, "#FF0000"},
		{"short hex", []string{"hsl-to-rgb", "--from-hex", "F00"}, ExitError, "F00"},
		{"unknown name", []string{"rgb-to-hsl", "--name", "notacolor"}, ExitError, "notacolor"},
		{"bad swatch size", []string{"rgb-to-hsl", "--swatch", "out.png", "--swatch-size", "0"}, ExitError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)
			require.Equal(t, tt.wantCode, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, stdout, stderr := run(t, "rgb-to-hsv", "-h")
	require.Equal(t, ExitOK, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Usage: colorops rgb-to-hsv [options]")
	require.Contains(t, stderr, "Converts a color from rgb to hsv")
	require.Contains(t, stderr, "-red")

	// -h means hue for HSL and HSV input.
	code, stdout, _ = run(t, "hsv-to-rgb", "-h", "240", "-s", "1", "-v", "1", "--to-hex")
	require.Equal(t, ExitOK, code)
	require.Equal(t, "0000FF\n", stdout)
}

func TestRun_Swatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")

	code, stdout, stderr := run(t, "hsl-to-rgb", "-s", "1", "-l", "0.5", "--swatch", path, "--swatch-size", "8", "--to-hex")
	require.Equal(t, ExitOK, code, stderr)
	require.Equal(t, "FF0000\n", stdout)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())
	require.Equal(t, color.NRGBA{R: 255, A: 255}, color.NRGBAModel.Convert(img.At(3, 3)))
}

func TestRun_Names(t *testing.T) {
	code, stdout, _ := run(t, "names")
	require.Equal(t, ExitOK, code)
	require.Contains(t, stdout, "cornflowerblue\n")
	require.Contains(t, stdout, "white\n")
}

func TestCommandNames(t *testing.T) {
	require.Equal(t, []string{
		"hsl-to-hsv", "hsl-to-rgb", "hsv-to-hsl", "hsv-to-rgb", "names", "rgb-to-hsl", "rgb-to-hsv",
	}, CommandNames())

	require.True(t, IsCommand("rgb-to-hsl"))
	require.True(t, IsCommand("names"))
	require.False(t, IsCommand("serve"))
}
