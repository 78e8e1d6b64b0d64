// Package annotate copies a byte stream to an output and appends " [sic]"
// after every word the dictionary does not accept. A word is a maximal run
// of ASCII letters; everything else passes through untouched.
package annotate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Annotation is inserted after each unknown word.
const Annotation = " [sic]"

// Matcher decides whether a word is known.
type Matcher interface {
	Matches(word []byte) bool
}

// state is the tokenizer position relative to the current word.
type state int

const (
	notInWord state = iota
	inWord
)

// Stats summarises one Run.
type Stats struct {
	Bytes   int64 `json:"bytes"`
	Words   int64 `json:"words"`
	Unknown int64 `json:"unknown"`
}

// Annotator runs the single-pass filter. It is not safe for concurrent use;
// create one per stream. The Matcher may be shared.
type Annotator struct {
	dict  Matcher
	word  []byte
	stats Stats
}

// New returns an Annotator checking words against d.
func New(d Matcher) *Annotator {
	return &Annotator{dict: d, word: make([]byte, 0, 64)}
}

// Run reads r to EOF, writing every byte to w in order with an Annotation
// after each unknown word. Output is flushed whenever the input has nothing
// buffered, so interactive callers see it before the next blocking read.
func (a *Annotator) Run(r io.Reader, w io.Writer) (Stats, error) {
	a.stats = Stats{}
	a.word = a.word[:0]

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	st := notInWord

	for {
		if br.Buffered() == 0 {
			if err := bw.Flush(); err != nil {
				return a.stats, fmt.Errorf("write output: %w", err)
			}
		}
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return a.stats, fmt.Errorf("read input: %w", err)
		}
		a.stats.Bytes++

		if isAlpha(c) {
			if st == notInWord {
				a.word = a.word[:0]
				st = inWord
			}
			a.word = append(a.word, c)
		} else if st == inWord {
			if err := a.endWord(bw); err != nil {
				return a.stats, err
			}
			st = notInWord
		}

		if err := bw.WriteByte(c); err != nil {
			return a.stats, fmt.Errorf("write output: %w", err)
		}
	}

	if st == inWord {
		if err := a.endWord(bw); err != nil {
			return a.stats, err
		}
	}
	if err := bw.Flush(); err != nil {
		return a.stats, fmt.Errorf("write output: %w", err)
	}
	return a.stats, nil
}

// endWord checks the finished word and writes the annotation if needed.
func (a *Annotator) endWord(bw *bufio.Writer) error {
	a.stats.Words++
	if a.dict.Matches(a.word) {
		return nil
	}
	a.stats.Unknown++
	if _, err := bw.WriteString(Annotation); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// String annotates text held in memory.
func String(d Matcher, text string) (string, Stats, error) {
	var sb strings.Builder
	st, err := New(d).Run(strings.NewReader(text), &sb)
	return sb.String(), st, err
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
