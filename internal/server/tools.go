package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema describes a color argument. Exactly one form is used: the keys
// of one model, a hex string, or a named color.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description + ". Give red/green/blue (0-255), hue/saturation/lightness, hue/saturation/value (hue 0-360, others 0-1), {\"hex\": \"RRGGBB\"} or {\"name\": \"cornflowerblue\"}.",
		"properties": map[string]interface{}{
			"red":        map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
			"green":      map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
			"blue":       map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
			"hue":        map[string]interface{}{"type": "number", "minimum": 0, "maximum": 360},
			"saturation": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
			"lightness":  map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
			"value":      map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
			"hex":        map[string]interface{}{"type": "string", "description": "6 hex digits, no prefix"},
			"name":       map[string]interface{}{"type": "string", "description": "CSS/SVG color name"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_convert",
			Description: "Convert a color to the RGB, HSL or HSV model. Returns the converted components, hex form and description.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to convert"),
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgb", "hsl", "hsv"},
						"description": "Target model",
					},
				},
				"required": []string{"color", "to"},
			},
		},

		// Arithmetic
		{
			Name:        "color_add",
			Description: "Add two colors channel by channel in RGB. The result keeps the left color's model. Fails if any channel exceeds 255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"left":  colorSchema("Left operand"),
					"right": colorSchema("Right operand"),
				},
				"required": []string{"left", "right"},
			},
		},
		{
			Name:        "color_subtract",
			Description: "Subtract the right color from the left channel by channel in RGB. The result keeps the left color's model. Fails if any channel drops below 0.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"left":  colorSchema("Left operand"),
					"right": colorSchema("Right operand"),
				},
				"required": []string{"left", "right"},
			},
		},
		{
			Name:        "color_rotate_hue",
			Description: "Rotate a color's hue by a number of degrees, keeping its model.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to rotate"),
					"degrees": map[string]interface{}{
						"type":        "number",
						"description": "Degrees to rotate by; may be negative",
					},
				},
				"required": []string{"color", "degrees"},
			},
		},
		{
			Name:        "color_rotate_rgb",
			Description: "Blend two colors by adding their RGB channels; a channel sum above 255 wraps by subtracting 255. The result keeps the left color's model.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"left":  colorSchema("Left operand"),
					"right": colorSchema("Right operand"),
				},
				"required": []string{"left", "right"},
			},
		},

		// Inspection
		{
			Name:        "color_equal",
			Description: "Check whether two colors are equal after converting the right one into the left one's model.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"left":  colorSchema("Left operand"),
					"right": colorSchema("Right operand"),
				},
				"required": []string{"left", "right"},
			},
		},
		{
			Name:        "color_get_component",
			Description: "Read one named component of a color in its own model.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to read"),
					"component": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"red", "green", "blue", "hue", "saturation", "lightness", "value"},
						"description": "Component name",
					},
				},
				"required": []string{"color", "component"},
			},
		},

		// Images
		{
			Name:        "color_swatch",
			Description: "Render one or more colors as a flat swatch strip and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       colorSchema("Swatch color"),
						"description": "Colors to render left to right",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of each color cell in pixels (default 64)",
						"default":     64,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels (default 64)",
						"default":     64,
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "color_sample_image",
			Description: "Get the color at a pixel of an image file in every color model.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "color_sample_points",
			Description: "Get colors at multiple pixel coordinates of an image file in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "color_palette",
			Description: "Return the N most common colors of an image file (palette extraction).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "color_rotate_image_hue",
			Description: "Rotate the hue of every pixel of an image file and save the result. Alpha is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image file",
					},
					"degrees": map[string]interface{}{
						"type":        "number",
						"description": "Hue rotation in degrees",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to write; the extension picks the format (png, jpg, gif, bmp, tif)",
					},
				},
				"required": []string{"path", "degrees", "output"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: jsonrpcVersion,
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
