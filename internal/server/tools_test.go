package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_convert",
		"color_add",
		"color_subtract",
		"color_rotate_hue",
		"color_rotate_rgb",
		"color_equal",
		"color_get_component",
		"color_swatch",
		"color_sample_image",
		"color_sample_points",
		"color_palette",
		"color_rotate_image_hue",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %q has no property", r)
				}
			}
		})
	}
}

func TestToolDefinitions_ColorArguments(t *testing.T) {
	colorParams := map[string][]string{
		"color_convert":       {"color"},
		"color_add":           {"left", "right"},
		"color_subtract":      {"left", "right"},
		"color_rotate_hue":    {"color"},
		"color_rotate_rgb":    {"left", "right"},
		"color_equal":         {"left", "right"},
		"color_get_component": {"color"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for name, params := range colorParams {
		t.Run(name, func(t *testing.T) {
			props := toolMap[name].InputSchema["properties"].(map[string]interface{})
			for _, p := range params {
				schema, ok := props[p].(map[string]interface{})
				if !ok {
					t.Fatalf("missing %s schema", p)
				}
				colorProps, ok := schema["properties"].(map[string]interface{})
				if !ok {
					t.Fatalf("%s schema has no properties", p)
				}
				for _, key := range append(modelKeys, "hex", "name") {
					if _, ok := colorProps[key]; !ok {
						t.Errorf("%s schema missing %q", p, key)
					}
				}
			}
		})
	}
}

func TestToolDefinitions_Defaults(t *testing.T) {
	expected := map[string]map[string]int{
		"color_swatch":  {"width": 64, "height": 64},
		"color_palette": {"count": 5},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for toolName, params := range expected {
		props := toolMap[toolName].InputSchema["properties"].(map[string]interface{})
		for paramName, want := range params {
			param := props[paramName].(map[string]interface{})
			if got, ok := param["default"].(int); !ok || got != want {
				t.Errorf("%s.%s: default got %v, want %d", toolName, paramName, param["default"], want)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	resp := New("").handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
