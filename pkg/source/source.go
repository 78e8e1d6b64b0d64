// Package source opens word lists by identifier. A plain path or file: prefix
// reads a local file, http:// and https:// download the list, and sqlite:
// reads one column of a SQLite table.
package source

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Source opens the word list named by a full identifier, scheme included.
type Source interface {
	// Scheme is the identifier prefix this source handles (e.g. "sqlite").
	Scheme() string
	// Description returns a human-readable description.
	Description() string
	// Open returns a reader over the raw word list.
	Open(ctx context.Context, ident string) (io.ReadCloser, error)
}

var (
	registryMu sync.RWMutex
	sources    = make(map[string]Source)
)

// Register adds a source to the global registry, keyed by scheme.
func Register(s Source) {
	registryMu.Lock()
	defer registryMu.Unlock()
	sources[s.Scheme()] = s
}

// Get returns a registered source by scheme, or an error if not found.
func Get(scheme string) (Source, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := sources[scheme]
	if !ok {
		return nil, fmt.Errorf("unknown source scheme: %q", scheme)
	}
	return s, nil
}

// All returns all registered sources sorted by scheme.
func All() []Source {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Source, 0, len(sources))
	for _, s := range sources {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Scheme() < result[j].Scheme() })
	return result
}

// Resolve picks the source for ident. Identifiers without a registered
// scheme prefix are local file paths.
func Resolve(ident string) (Source, error) {
	if i := strings.Index(ident, ":"); i > 1 {
		if s, err := Get(strings.ToLower(ident[:i])); err == nil {
			return s, nil
		}
	}
	return Get("file")
}

// Open resolves ident and opens it.
func Open(ctx context.Context, ident string) (io.ReadCloser, error) {
	s, err := Resolve(ident)
	if err != nil {
		return nil, err
	}
	return s.Open(ctx, ident)
}
