package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hazyhaar/sicspell/pkg/api"
	"github.com/mark3labs/mcp-go/server"
)

func cmdMCP(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset, cfgPath, ok := parseArgs("mcp", args, stderr)
	if !ok {
		return 0
	}
	if fset.NArg() != 1 {
		fmt.Fprintln(stderr, "Specify a dictionary")
		usage(stderr)
		return 0
	}

	cfg, logger, err := setup(cfgPath, stderr)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}
	store, err := openDictionary(ctx, fset.Arg(0), cfg, logger)
	if err != nil {
		return 1
	}

	srv := api.NewMCPServer(&api.Dictionary{Source: fset.Arg(0), Store: store}, version, logger)
	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	logger.Info("serving MCP on stdio")
	err = stdio.Listen(ctx, stdin, stdout)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		logger.Error("mcp server error", "error", err)
		return 1
	}
	logger.Info("mcp server stopped")
	return 0
}
