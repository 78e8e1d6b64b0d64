// CLAUDE:SUMMARY Three case policies (exact, lowercase tail, all lowercase) used to accept a word against the Store.
package dict

// Policy identifies which case variant of a word was found in the Store.
type Policy int

const (
	PolicyNone  Policy = iota
	PolicyExact        // word as typed
	PolicyTail         // first byte as typed, the rest lowercased
	PolicyLower        // every byte lowercased
)

func (p Policy) String() string {
	switch p {
	case PolicyExact:
		return "exact"
	case PolicyTail:
		return "lowercase_tail"
	case PolicyLower:
		return "lowercase"
	default:
		return "none"
	}
}

// Match tests word against s under the three case policies in order and
// returns the first one that succeeds. Lowercasing is ASCII only.
// The store is never modified.
func Match(s *Store, word []byte) (Policy, bool) {
	if s.Contains(word) {
		return PolicyExact, true
	}
	if len(word) == 0 {
		return PolicyNone, false
	}

	v := make([]byte, len(word))
	v[0] = word[0]
	for i := 1; i < len(word); i++ {
		v[i] = toLower(word[i])
	}
	if s.Contains(v) {
		return PolicyTail, true
	}

	v[0] = toLower(v[0])
	if s.Contains(v) {
		return PolicyLower, true
	}
	return PolicyNone, false
}

// Matches reports whether any case policy accepts word.
func Matches(s *Store, word []byte) bool {
	_, ok := Match(s, word)
	return ok
}

// Matches is Matches(s, word) as a method, for callers that take an interface.
func (s *Store) Matches(word []byte) bool {
	return Matches(s, word)
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
