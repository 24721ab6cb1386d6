// Package imaging connects colorspace values to raster images.
//
// It covers the places where colors meet pixels in this project: reading
// colors out of image files (sampling and palette extraction), writing flat
// color swatches as PNG data, and recoloring whole images pixel by pixel.
// Decoding, encoding and compositing are delegated to
// github.com/disintegration/imaging; per-pixel recoloring runs on
// github.com/anthonynsimon/bild/adjust.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// # Color Representation
//
// Sampled colors are reported in every model at once: a 6-digit uppercase
// hex string without prefix, an RGB object, an HSL object and an HSV object.
// Alpha is reported separately and never enters the color models, which are
// always opaque.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imaging
