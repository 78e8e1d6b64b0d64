// CLAUDE:SUMMARY CLI subcommand that reports, per word, which case policy accepted it.
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hazyhaar/sicspell/pkg/annotate"
	"github.com/hazyhaar/sicspell/pkg/dict"
)

func cmdCheck(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fset, cfgPath, ok := parseArgs("check", args, stderr)
	if !ok {
		return 0
	}
	if fset.NArg() < 2 {
		fmt.Fprintln(stderr, "Specify a dictionary and at least one word")
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

	for _, w := range fset.Args()[1:] {
		p, ok := dict.Match(store, []byte(w))
		if !ok {
			fmt.Fprintf(stdout, "%s\t%s\n", w, annotate.Annotation[1:])
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", w, p)
	}
	return 0
}
