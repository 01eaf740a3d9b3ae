package search

import (
	"errors"
	"strings"
)

// NotFound is returned by every searcher when the pattern does not occur
// in the text, or when either of them is empty.
const NotFound = -1

var ErrUnknownSearcher = errors.New("search: unknown searcher")

// symbol is the element type every search algorithm works on. Byte slices
// and strings are searched by byte, rune slices by code point.
type symbol interface {
	~byte | ~rune
}

type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
	FindIndexRunes(text, pattern []rune) int
	String() string
}

// Searchers returns the algorithms under comparison, in report order.
func Searchers() []Searcher {
	return []Searcher{
		NewKnuthMorrisPratt(),
		NewBoyerMoore(),
		NewRabinKarp(DefaultBase, DefaultModulus),
	}
}

// Lookup resolves a searcher by name. Matching ignores case and dashes,
// so "kmp", "boyer-moore" and "RabinKarp" all resolve.
func Lookup(name string) (Searcher, error) {
	key := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	switch key {
	case "kmp", "knuthmorrispratt":
		return NewKnuthMorrisPratt(), nil
	case "bm", "boyermoore":
		return NewBoyerMoore(), nil
	case "rk", "rabinkarp":
		return NewRabinKarp(DefaultBase, DefaultModulus), nil
	case "naive", "bruteforce":
		return NewBruteForce(), nil
	}
	return nil, ErrUnknownSearcher
}

// Boyer-Moore:
// Works by pre-analyzing the pattern and comparing from right-to-left. If a mismatch occurs, the
// shift table is used to determine how far the pattern can be shifted w.r.t. the text being
// searched. Only the bad-character rule is used here, the good-suffix rule is left out. It can be
// sublinear, as you do not need to read every single character of your text, and the length of
// the pattern is the best case skip for a character that does not occur in it.

// Knuth-Morris-Pratt:
// Also works by pre-analyzing the pattern, but re-uses whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. The text cursor never moves
// backwards. Works well when the alphabet is small and patterns contain re-usable sub-patterns.

// Rabin-Karp:
// Compares a rolling hash of each text window against the hash of the pattern, and only does a
// full comparison when the two hashes agree. The default modulus is tiny (101) so collisions
// are frequent, which makes the verification step visible in timings.
