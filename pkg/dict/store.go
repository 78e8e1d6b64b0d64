// CLAUDE:SUMMARY Chained hash set of exact byte-string words; pluggable hash, xxhash by default.
package dict

import "github.com/cespare/xxhash/v2"

// HashFunc maps a word to a bucket hash. Equal byte strings must hash equally.
type HashFunc func([]byte) uint64

const (
	minBuckets = 16
	// maxPresize caps the buckets allocated up front from a size hint;
	// larger dictionaries still grow on insert.
	maxPresize = 1 << 20
	// maxLoad is the average chain length that triggers a resize.
	maxLoad = 1
)

// Store is the in-memory dictionary: a set of words keyed by exact byte
// equality (case-sensitive). It is filled once at startup and only read
// afterwards, so it carries no lock.
type Store struct {
	hash    HashFunc
	buckets [][]string
	count   int
}

// NewStore creates an empty store sized for about sizeHint words.
func NewStore(sizeHint int) *Store {
	return NewStoreWithHash(sizeHint, xxhash.Sum64)
}

// NewStoreWithHash creates an empty store using h as its hash function.
// A poor hash only lengthens chains; lookups stay correct.
func NewStoreWithHash(sizeHint int, h HashFunc) *Store {
	n := minBuckets
	for n < maxPresize && n < sizeHint/maxLoad {
		n <<= 1
	}
	return &Store{
		hash:    h,
		buckets: make([][]string, n),
	}
}

// Insert adds a copy of word. It reports whether the word was new.
func (s *Store) Insert(word []byte) bool {
	if s.Contains(word) {
		return false
	}
	if s.count+1 > len(s.buckets)*maxLoad {
		s.grow()
	}
	i := s.index(word)
	s.buckets[i] = append(s.buckets[i], string(word))
	s.count++
	return true
}

// Contains reports whether word is present, byte for byte.
func (s *Store) Contains(word []byte) bool {
	for _, w := range s.buckets[s.index(word)] {
		if w == string(word) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct words.
func (s *Store) Len() int {
	return s.count
}

func (s *Store) index(word []byte) int {
	return int(s.hash(word) & uint64(len(s.buckets)-1))
}

// grow doubles the bucket array and rehashes every entry.
func (s *Store) grow() {
	old := s.buckets
	s.buckets = make([][]string, len(old)*2)
	for _, chain := range old {
		for _, w := range chain {
			i := s.index([]byte(w))
			s.buckets[i] = append(s.buckets[i], w)
		}
	}
}
