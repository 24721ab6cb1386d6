package server

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New("1.2.3")
	require.NotNil(t, s)
	require.NotNil(t, s.cache)
	require.Equal(t, "1.2.3", s.version)

	require.Equal(t, "dev", New("").version)
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			require.NoError(t, json.Unmarshal([]byte(tt.json), &req))
			require.Equal(t, tt.wantID, req.ID)
			require.Equal(t, tt.wantMethod, req.Method)
			require.Equal(t, "2.0", req.JSONRPC)
		})
	}
}

func TestMCPResponse_WithError(t *testing.T) {
	resp := MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error: &MCPError{
			Code:    -32601,
			Message: "Method not found",
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, string(data), `"result"`)

	var decoded MCPResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Error)
	require.Equal(t, -32601, decoded.Error.Code)
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New("1.2.3")
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "init-1", Method: "initialize"})

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	require.Equal(t, "init-1", resp.ID)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")
	require.Equal(t, "2024-11-05", result["protocolVersion"])

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	require.True(t, ok, "serverInfo should be a map")
	require.Equal(t, "color-operators", serverInfo["name"])
	require.Equal(t, "1.2.3", serverInfo["version"])
}

func TestHandleRequest_Ping(t *testing.T) {
	resp := New("").handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"})

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	require.Equal(t, "ping-1", resp.ID)
}

func TestHandleRequest_Notifications(t *testing.T) {
	s := New("")
	for _, method := range []string{"notifications/initialized", "notifications/cancelled"} {
		t.Run(method, func(t *testing.T) {
			resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: method})
			require.Nil(t, resp, "notifications should not get a response")
		})
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	resp := New("").handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "nonexistent/method"})

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	require.Equal(t, -32601, resp.Error.Code)
	require.Contains(t, resp.Error.Message, "nonexistent/method")
}

func TestServe(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"color_convert","arguments":{"color":{"red":255,"green":0,"blue":0},"to":"hsl"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`,
	}, "\n")

	var out strings.Builder
	require.NoError(t, New("test").Serve(strings.NewReader(input), &out))

	var responses []MCPResponse
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		var resp MCPResponse
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}

	// initialize, parse error, tools/call, ping; the notification gets no reply.
	require.Len(t, responses, 4)
	require.Equal(t, float64(1), responses[0].ID)
	require.NotNil(t, responses[1].Error)
	require.Equal(t, -32700, responses[1].Error.Code)
	require.Nil(t, responses[1].ID)
	require.Equal(t, float64(2), responses[2].ID)
	require.Nil(t, responses[2].Error)
	require.Contains(t, responses[2].Result.(map[string]interface{})["content"].([]interface{})[0].(map[string]interface{})["text"], `"lightness": 0.5`)
	require.Equal(t, float64(3), responses[3].ID)
}
