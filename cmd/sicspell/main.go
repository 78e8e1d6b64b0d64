package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hazyhaar/sicspell/pkg/annotate"
	"github.com/hazyhaar/sicspell/pkg/dict"
	"github.com/hazyhaar/sicspell/pkg/source"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches to a subcommand and returns the process exit code.
// Usage errors exit 0; dictionary and stream failures exit 1.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "check":
			return cmdCheck(ctx, args[1:], stdout, stderr)
		case "mcp":
			return cmdMCP(ctx, args[1:], stdin, stdout, stderr)
		}
	}
	return cmdAnnotate(ctx, args, stdin, stdout, stderr)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: sicspell [-config file] <dictionary> < input > output

Commands:
  check <dictionary> <word>...   Report which case policy accepts each word
  mcp <dictionary>               Serve MCP tools over stdio

Dictionary sources (a bare path reads a local file):
`)
	for _, src := range source.All() {
		fmt.Fprintf(w, "  %-8s %s\n", src.Scheme(), src.Description())
	}
}

// parseArgs parses the common flags. ok is false on a usage error, which
// has already been reported.
func parseArgs(name string, args []string, stderr io.Writer) (fset *flag.FlagSet, cfgPath string, ok bool) {
	fset = flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() { usage(stderr) }
	p := fset.String("config", defaultConfigPath, "path to config file")
	if err := fset.Parse(args); err != nil {
		return fset, "", false
	}
	return fset, *p, true
}

// setup loads the config and builds the logger for a subcommand.
func setup(cfgPath string, stderr io.Writer) (config, *slog.Logger, error) {
	cfg, err := loadConfig(cfgPath, newLogger(stderr, "info"))
	if err != nil {
		return cfg, newLogger(stderr, "info"), fmt.Errorf("config %s: %w", cfgPath, err)
	}
	logger := newLogger(stderr, cfg.LogLevel)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func cmdAnnotate(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset, cfgPath, ok := parseArgs("sicspell", args, stderr)
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

	logger.Info("processing stdin")
	stats, err := annotate.New(store).Run(stdin, stdout)
	if err != nil {
		logger.Error("annotation failed", "error", err, "bytes", stats.Bytes)
		return 1
	}
	logger.Info("input processed", "bytes", stats.Bytes, "words", stats.Words, "unknown", stats.Unknown)
	return 0
}

// openDictionary loads ident and logs the outcome. Every failure is fatal
// to the caller.
func openDictionary(ctx context.Context, ident string, cfg config, logger *slog.Logger) (*dict.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	logger.Info("creating dictionary", "size_hint", cfg.Dictionary.SizeHint)
	logger.Info("loading dictionary", "source", ident)
	start := time.Now()
	store, err := dict.Load(ctx, ident, cfg.loadOptions())
	switch {
	case err == nil:
		logger.Info("dictionary loaded", "source", ident, "entries", store.Len(), "elapsed", time.Since(start))
		return store, nil
	case errors.Is(err, fs.ErrNotExist):
		logger.Error("dictionary not found", "source", ident, "error", err)
	case errors.Is(err, dict.ErrEmptyDictionary):
		logger.Error("dictionary has no words", "source", ident)
	default:
		logger.Error("failed to load dictionary", "source", ident, "error", err)
	}
	return nil, err
}
