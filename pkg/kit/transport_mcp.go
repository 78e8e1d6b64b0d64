package kit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPDecoder extracts the typed Endpoint request from MCP tool arguments.
type MCPDecoder func(mcp.CallToolRequest) (any, error)

// RegisterMCPTool registers an Endpoint as an MCP tool on the given server.
// Endpoint errors and decode errors become tool errors, not protocol errors;
// responses are returned as JSON text.
func RegisterMCPTool(srv *server.MCPServer, tool mcp.Tool, endpoint Endpoint, decode MCPDecoder) {
	srv.AddTool(tool, MCPHandler(endpoint, decode))
}

// MCPHandler adapts an Endpoint to an MCP tool handler.
func MCPHandler(endpoint Endpoint, decode MCPDecoder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		request, err := decode(req)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		resp, err := endpoint(ctx, request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.Marshal(resp)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("marshal: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}
