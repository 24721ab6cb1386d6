// Package cli implements the colorops conversion commands.
//
// Each command converts one color between two models and prints the result:
//
//	colorops rgb-to-hsl --red 255 --green 42 --blue 90
//	colorops hsl-to-rgb -h 348 -s 1 -l 0.58 --to-hex
//	colorops hsv-to-hsl --from-json '{"hue":60,"saturation":1,"value":1}' --to-yaml
//	colorops rgb-to-hsv --name cornflowerblue --swatch cornflowerblue.png
//
// The input color comes from the first of --from-hex, --from-json,
// --from-yaml, --name or the component flags that is given. Unset component
// flags read as 0. Output is hex, JSON, YAML or the plain text form.
//
// Malformed JSON or YAML input is not fatal: a warning is logged and the
// next input in that order is used instead.
package cli
