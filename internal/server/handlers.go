package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-operators/colorspace"
	"github.com/ironsheep/color-operators/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "color_add").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with codeToolFailure.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: jsonrpcVersion,
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Resolves color arguments to colorspace values
//  3. Applies default values for optional parameters
//  4. Calls the colorspace or imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "color_convert":
		return s.handleColorConvert(args)

	// Arithmetic
	case "color_add":
		return s.handleColorArithmetic(args, colorspace.Color.Add)
	case "color_subtract":
		return s.handleColorArithmetic(args, colorspace.Color.Sub)
	case "color_rotate_hue":
		return s.handleColorRotateHue(args)
	case "color_rotate_rgb":
		return s.handleColorRotateRGB(args)

	// Inspection
	case "color_equal":
		return s.handleColorEqual(args)
	case "color_get_component":
		return s.handleColorGetComponent(args)

	// Images
	case "color_swatch":
		return s.handleColorSwatch(args)
	case "color_sample_image":
		return s.handleColorSampleImage(args)
	case "color_sample_points":
		return s.handleColorSamplePoints(args)
	case "color_palette":
		return s.handleColorPalette(args)
	case "color_rotate_image_hue":
		return s.handleColorRotateImageHue(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// colorResult is the common reply for tools that produce a color.
type colorResult struct {
	Model string           `json:"model"`
	Color colorspace.Color `json:"color"`
	Hex   string           `json:"hex"`
	Text  string           `json:"text"`
}

func newColorResult(c colorspace.Color) *colorResult {
	return &colorResult{
		Model: c.Kind().String(),
		Color: c,
		Hex:   c.Hex(),
		Text:  c.String(),
	}
}

// === Conversion Handlers ===

type colorConvertArgs struct {
	Color json.RawMessage `json:"color"`
	To    string          `json:"to"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, ok := colorspace.ParseKind(a.To)
	if !ok {
		return nil, fmt.Errorf("unknown color model: %q", a.To)
	}
	c, err := parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}
	return newColorResult(colorspace.ColorOf(colorspace.Convert(c, kind))), nil
}

// === Arithmetic Handlers ===

type colorPairArgs struct {
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`
}

func (a colorPairArgs) parse() (left, right colorspace.Color, err error) {
	if left, err = parseColor("left", a.Left); err != nil {
		return
	}
	right, err = parseColor("right", a.Right)
	return
}

func (s *Server) handleColorArithmetic(args json.RawMessage, op func(colorspace.Color, colorspace.Model) (colorspace.Color, error)) (interface{}, error) {
	var a colorPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	left, right, err := a.parse()
	if err != nil {
		return nil, err
	}
	res, err := op(left, right)
	if err != nil {
		return nil, err
	}
	return newColorResult(res), nil
}

type colorRotateHueArgs struct {
	Color   json.RawMessage `json:"color"`
	Degrees float64         `json:"degrees"`
}

func (s *Server) handleColorRotateHue(args json.RawMessage) (interface{}, error) {
	var a colorRotateHueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}
	return newColorResult(c.RotateHue(a.Degrees)), nil
}

func (s *Server) handleColorRotateRGB(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	left, right, err := a.parse()
	if err != nil {
		return nil, err
	}
	return newColorResult(left.RotateRGB(right)), nil
}

// === Inspection Handlers ===

func (s *Server) handleColorEqual(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	left, right, err := a.parse()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"equal": left.Equal(right),
		"left":  newColorResult(left),
		"right": newColorResult(colorspace.ColorOf(colorspace.Convert(right, left.Kind()))),
	}, nil
}

type colorGetComponentArgs struct {
	Color     json.RawMessage `json:"color"`
	Component string          `json:"component"`
}

func (s *Server) handleColorGetComponent(args json.RawMessage) (interface{}, error) {
	var a colorGetComponentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}
	v, err := c.Get(a.Component)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"model":     c.Kind().String(),
		"component": a.Component,
		"value":     v,
	}, nil
}

// === Image Handlers ===

type colorSwatchArgs struct {
	Colors []json.RawMessage `json:"colors"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 64
	}
	if a.Height == 0 {
		a.Height = 64
	}

	colors := make([]colorspace.Model, len(a.Colors))
	for i, raw := range a.Colors {
		c, err := parseColor(fmt.Sprintf("colors[%d]", i), raw)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return imaging.EncodeSwatch(colors, a.Width, a.Height)
}

type colorSampleImageArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleColorSampleImage(args json.RawMessage) (interface{}, error) {
	var a colorSampleImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type colorSamplePointsArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleColorSamplePoints(args json.RawMessage) (interface{}, error) {
	var a colorSamplePointsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type colorPaletteArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

type colorRotateImageHueArgs struct {
	Path    string  `json:"path"`
	Degrees float64 `json:"degrees"`
	Output  string  `json:"output"`
}

func (s *Server) handleColorRotateImageHue(args json.RawMessage) (interface{}, error) {
	var a colorRotateImageHueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	result, err := imaging.RotateImageHueFile(img, a.Degrees, a.Output)
	if err != nil {
		return nil, err
	}
	// A cached copy of the output path is now stale.
	s.cache.Evict(a.Output)
	return result, nil
}
