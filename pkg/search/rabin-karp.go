package search

import "fmt"

// RabinKarp algorithm is inferior for single pattern searching to Knuth–Morris–Pratt algorithm or the
// Boyer–Moore string search algorithm (and other faster single pattern string searching algorithms) because
// of its slow worst case behavior. However, it is a useful algorithm for multiple pattern searches.
type RabinKarp struct {
	Base    int64
	Modulus int64
}

// NewRabinKarp returns a RabinKarp searcher. A non-positive base, or a
// modulus outside [2, MaxModulus], falls back to the defaults.
func NewRabinKarp(base, modulus int64) *RabinKarp {
	base, modulus = hashParams(base, modulus)
	return &RabinKarp{
		Base:    base,
		Modulus: modulus,
	}
}

func (rk *RabinKarp) String() string {
	if rk.Base == DefaultBase && rk.Modulus == DefaultModulus {
		return "Rabin-Karp"
	}
	return fmt.Sprintf("Rabin-Karp(%d,%d)", rk.Base, rk.Modulus)
}

func (rk *RabinKarp) FindIndex(text, pattern []byte) int {
	return RabinKarpIndex(text, pattern, rk.Base, rk.Modulus)
}

func (rk *RabinKarp) FindIndexString(text, pattern string) int {
	if len(text) == 0 || len(pattern) == 0 || len(pattern) > len(text) {
		return NotFound
	}
	return RabinKarpIndex([]byte(text), []byte(pattern), rk.Base, rk.Modulus)
}

func (rk *RabinKarp) FindIndexRunes(text, pattern []rune) int {
	return RabinKarpIndex(text, pattern, rk.Base, rk.Modulus)
}

// RabinKarpIndex returns the index of the first occurrence of pattern in
// text, or NotFound. Every hash hit is verified against the text, so the
// result is exact whatever the modulus.
func RabinKarpIndex[E symbol](text, pattern []E, base, modulus int64) int {
	m, n := len(pattern), len(text)
	if m == 0 || n == 0 || m > n {
		return NotFound
	}
	base, modulus = hashParams(base, modulus)
	want := PolynomialHash(pattern, base, modulus)
	window := NewRollingHash(text[:m], base, modulus)
	for i := 0; i <= n-m; i++ {
		if window.Sum() == want && equal(text[i:i+m], pattern) {
			return i
		}
		if i < n-m {
			window.Roll(text[i], text[i+m])
		}
	}
	return NotFound
}

func hashParams(base, modulus int64) (int64, int64) {
	if base < 1 {
		base = DefaultBase
	}
	if modulus < 2 || modulus > MaxModulus {
		modulus = DefaultModulus
	}
	return base, modulus
}

func equal[E symbol](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
