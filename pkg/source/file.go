package source

import (
	"context"
	"io"
	"os"
	"strings"
)

func init() {
	Register(&fileSource{})
}

type fileSource struct{}

func (fileSource) Scheme() string      { return "file" }
func (fileSource) Description() string { return "local word list, one word per line" }

func (fileSource) Open(_ context.Context, ident string) (io.ReadCloser, error) {
	return os.Open(strings.TrimPrefix(ident, "file:"))
}
