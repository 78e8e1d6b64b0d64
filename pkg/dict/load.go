// CLAUDE:SUMMARY Reads a newline-delimited word list from any registered source into a Store, with optional transcoding.
package dict

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hazyhaar/sicspell/pkg/source"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrEmptyDictionary is returned when a word list yields no usable words.
var ErrEmptyDictionary = errors.New("dictionary contains no words")

// LoadOptions control how a word list is read.
type LoadOptions struct {
	// Encoding of the word list; empty or utf-8 means no transcoding.
	Encoding string
	// KeepCR keeps a trailing '\r' on each line instead of stripping it.
	KeepCR bool
	// SizeHint pre-sizes the store.
	SizeHint int
}

// Load opens the word list named by ident (a path, file:, http(s):// or
// sqlite: identifier) and returns a populated Store.
func Load(ctx context.Context, ident string, opts LoadOptions) (*Store, error) {
	rc, err := source.Open(ctx, ident)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", ident, err)
	}
	defer rc.Close()

	s := NewStore(opts.SizeHint)
	if _, err := ReadWords(rc, s, opts); err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", ident, err)
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("dictionary %s: %w", ident, ErrEmptyDictionary)
	}
	return s, nil
}

// ReadWords splits r on '\n' and inserts every non-empty line into s, case
// preserved. Lines may be of any length. It returns the number of non-empty
// lines read, duplicates included.
func ReadWords(r io.Reader, s *Store, opts LoadOptions) (int, error) {
	br, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return 0, err
	}

	var (
		line []byte
		n    int
	)
	for {
		chunk, err := br.ReadSlice('\n')
		line = append(line, chunk...)
		if err == bufio.ErrBufferFull {
			// Line longer than the reader's buffer: keep accumulating.
			continue
		}
		if err != nil && err != io.EOF {
			return n, fmt.Errorf("read words: %w", err)
		}

		word := bytes.TrimSuffix(line, []byte{'\n'})
		if !opts.KeepCR {
			word = bytes.TrimSuffix(word, []byte{'\r'})
		}
		if len(word) > 0 {
			s.Insert(word)
			n++
		}
		line = line[:0]

		if err == io.EOF {
			return n, nil
		}
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeReader transcodes word lists in a declared non-UTF-8 encoding.
// Otherwise bytes pass through untouched, minus a leading UTF-8 BOM.
func decodeReader(r io.Reader, enc string) (*bufio.Reader, error) {
	if isUTF8(enc) {
		br := bufio.NewReader(r)
		if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
			br.Discard(len(utf8BOM))
		}
		return br, nil
	}
	e, err := htmlindex.Get(enc)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
	}
	return bufio.NewReader(transform.NewReader(r, e.NewDecoder())), nil
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
