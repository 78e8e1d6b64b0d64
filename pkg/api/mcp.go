package api

import (
	"log/slog"

	"github.com/hazyhaar/sicspell/pkg/kit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer returns an MCP server exposing the sicspell tools for d.
func NewMCPServer(d *Dictionary, version string, logger *slog.Logger) *server.MCPServer {
	srv := server.NewMCPServer("sicspell", version, server.WithToolCapabilities(false))
	RegisterMCPTools(srv, d, logger)
	return srv
}

// RegisterMCPTools registers the three sicspell MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, d *Dictionary, logger *slog.Logger) {
	registerAnnotateText(srv, d, logger)
	registerCheckWord(srv, d, logger)
	registerDictInfo(srv, d, logger)
}

// wrap applies the middleware shared by every tool: failures are logged,
// and a panic comes back as a tool error.
func wrap(logger *slog.Logger, name string, ep kit.Endpoint) kit.Endpoint {
	return kit.Chain(kit.Logging(logger, name), kit.Recover(name))(ep)
}

func registerAnnotateText(srv *server.MCPServer, d *Dictionary, logger *slog.Logger) {
	tool := mcp.NewTool("annotate_text",
		mcp.WithDescription("Copy text unchanged, appending \" [sic]\" after every word not found in the loaded dictionary."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to annotate")),
	)
	kit.RegisterMCPTool(srv, tool, wrap(logger, "annotate_text", annotateEndpoint(d)), decodeAnnotateText)
}

func registerCheckWord(srv *server.MCPServer, d *Dictionary, logger *slog.Logger) {
	tool := mcp.NewTool("check_word",
		mcp.WithDescription("Check one word against the dictionary as typed, with a lowercased tail, and fully lowercased."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to check")),
	)
	kit.RegisterMCPTool(srv, tool, wrap(logger, "check_word", checkWordEndpoint(d)), decodeCheckWord)
}

func registerDictInfo(srv *server.MCPServer, d *Dictionary, logger *slog.Logger) {
	tool := mcp.NewTool("dict_info",
		mcp.WithDescription("Describe the loaded dictionary (source and entry count)."),
	)
	kit.RegisterMCPTool(srv, tool, wrap(logger, "dict_info", dictInfoEndpoint(d)), func(mcp.CallToolRequest) (any, error) {
		return nil, nil
	})
}

func decodeAnnotateText(req mcp.CallToolRequest) (any, error) {
	text, _ := req.GetArguments()["text"].(string)
	return &annotateReq{Text: text}, nil
}

func decodeCheckWord(req mcp.CallToolRequest) (any, error) {
	word, _ := req.GetArguments()["word"].(string)
	return &checkWordReq{Word: word}, nil
}
