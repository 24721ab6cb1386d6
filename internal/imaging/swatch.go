package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-operators/colorspace"
)

// MaxSwatchSide bounds each side of a generated swatch in pixels.
const MaxSwatchSide = 4096

// SwatchResult contains a rendered swatch as base64 PNG data.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Colors      []string `json:"colors"` // Hex of each cell, left to right
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// Swatch fills a width x height image with a single color.
//
// Parameters:
//   - c: The color to fill with. Any model is accepted; it is drawn through
//     its RGB conversion.
//   - width, height: Size in pixels, each between 1 and MaxSwatchSide.
//
// Returns:
//   - *image.NRGBA: The opaque swatch.
//   - error: Non-nil if a side is out of range.
func Swatch(c colorspace.Model, width, height int) (*image.NRGBA, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return imaging.New(width, height, c.ToRGB()), nil
}

// Strip places one cell per color side by side, each cell x height pixels.
//
// Colors are laid out left to right in the order given, so the result is
// len(colors)*cell pixels wide.
func Strip(colors []colorspace.Model, cell, height int) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("strip needs at least one color")
	}
	if err := checkSize(cell*len(colors), height); err != nil {
		return nil, err
	}

	strip := imaging.New(cell*len(colors), height, image.Transparent)
	for i, c := range colors {
		strip = imaging.Paste(strip, imaging.New(cell, height, c.ToRGB()), image.Pt(i*cell, 0))
	}
	return strip, nil
}

// EncodeSwatch renders colors as a strip and returns it as base64 PNG.
//
// A single color produces a plain width x height swatch. With several colors
// each one gets a width x height cell.
func EncodeSwatch(colors []colorspace.Model, width, height int) (*SwatchResult, error) {
	img, err := Strip(colors, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.ToRGB().Hex()
	}

	return &SwatchResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		Colors:      hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveSwatch writes a single color swatch to path. The image format is taken
// from the file extension (.png, .jpg, .gif, .bmp, .tif).
func SaveSwatch(c colorspace.Model, width, height int, path string) error {
	img, err := Swatch(c, width, height)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save swatch %s: %w", path, err)
	}
	return nil
}

func checkSize(width, height int) error {
	if width < 1 || height < 1 || width > MaxSwatchSide || height > MaxSwatchSide {
		return fmt.Errorf("swatch size %dx%d outside 1..%d", width, height, MaxSwatchSide)
	}
	return nil
}
