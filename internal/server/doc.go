// Package server implements the MCP (Model Context Protocol) server for the
// color operators.
//
// This package exposes the colorspace conversions and arithmetic, plus image
// sampling and swatch rendering, as MCP tools over a JSON-RPC 2.0 connection.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_convert: Convert a color to rgb, hsl or hsv
//
// Arithmetic (results keep the left operand's model):
//   - color_add: Channel-wise RGB addition, fails above 255
//   - color_subtract: Channel-wise RGB subtraction, fails below 0
//   - color_rotate_hue: Rotate the hue by degrees
//   - color_rotate_rgb: Channel-wise RGB blend that wraps by 255
//
// Inspection:
//   - color_equal: Compare two colors in the left operand's model
//   - color_get_component: Read a named component
//
// Images:
//   - color_swatch: Render colors as a base64 PNG strip
//   - color_sample_image: Get the color at a pixel
//   - color_sample_points: Sample multiple pixels
//   - color_palette: Extract the most common colors
//   - color_rotate_image_hue: Rotate the hue of a whole image into a new file
//
// # Color Arguments
//
// A color argument is an object holding either the keys of one model
// ({"red":255,"green":42,"blue":90}, {"hue":60,"saturation":1,"lightness":0.5},
// {"hue":60,"saturation":1,"value":0.5}), a hex string ({"hex":"FF2A5A"}) or a
// color name ({"name":"cornflowerblue"}).
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "add overflows green channel: 256 not in [0, 255]"
//
// # Usage
//
//	srv := server.New(version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
