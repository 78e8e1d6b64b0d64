package source

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		ident  string
		scheme string
	}{
		{"/usr/share/dict/words", "file"},
		{"words.txt", "file"},
		{"file:words.txt", "file"},
		{"http://example.com/words", "http"},
		{"https://example.com/words", "https"},
		{"HTTPS://example.com/words", "https"},
		{"sqlite:words.db", "sqlite"},
		{"sqlite:words.db?table=t&column=c", "sqlite"},
		{`C:\dict\words.txt`, "file"},
		{"odd:name.txt", "file"},
	}
	for _, tt := range tests {
		s, err := Resolve(tt.ident)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.ident, err)
			continue
		}
		if s.Scheme() != tt.scheme {
			t.Errorf("Resolve(%q) = %s, want %s", tt.ident, s.Scheme(), tt.scheme)
		}
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	want := []string{"file", "http", "https", "sqlite"}
	if len(all) != len(want) {
		t.Fatalf("All() = %d sources, want %d", len(all), len(want))
	}
	for i, s := range all {
		if s.Scheme() != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, s.Scheme(), want[i])
		}
		if s.Description() == "" {
			t.Errorf("source %s has no description", s.Scheme())
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("ftp"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, ident := range []string{path, "file:" + path} {
		rc, err := Open(context.Background(), ident)
		if err != nil {
			t.Fatalf("Open(%q): %v", ident, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if string(data) != "one\ntwo\n" {
			t.Errorf("Open(%q) content = %q", ident, data)
		}
	}
}

func TestOpenFile_NotFound(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
