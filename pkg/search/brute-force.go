package search

// BruteForce tries every alignment and compares left to right. It has no
// preprocessing at all and serves as the reference the other searchers are
// checked against.
type BruteForce struct{}

func NewBruteForce() *BruteForce {
	return new(BruteForce)
}

func (bf *BruteForce) String() string {
	return "Brute-Force"
}

func (bf *BruteForce) FindIndex(text, pattern []byte) int {
	return BruteForceIndex(text, pattern)
}

func (bf *BruteForce) FindIndexString(text, pattern string) int {
	if len(text) == 0 || len(pattern) == 0 || len(pattern) > len(text) {
		return NotFound
	}
	return BruteForceIndex([]byte(text), []byte(pattern))
}

func (bf *BruteForce) FindIndexRunes(text, pattern []rune) int {
	return BruteForceIndex(text, pattern)
}

func BruteForceIndex[E symbol](text, pattern []E) int {
	m, n := len(pattern), len(text)
	if m == 0 || n == 0 || m > n {
		return NotFound
	}
	for i := 0; i <= n-m; i++ {
		if equal(text[i:i+m], pattern) {
			return i
		}
	}
	return NotFound
}
