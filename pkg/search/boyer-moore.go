package search

// BoyerMoore is the simplified (bad-character only) variant of the algorithm. It
// is usually the fastest of the three on natural language text with a pattern of
// more than a couple of characters, because most alignments are rejected after
// looking at one character and skipped by the full pattern length.
type BoyerMoore struct{}

func NewBoyerMoore() *BoyerMoore {
	return new(BoyerMoore)
}

func (bm *BoyerMoore) String() string {
	return "Boyer-Moore"
}

func (bm *BoyerMoore) FindIndex(text, pattern []byte) int {
	return BoyerMooreIndex(text, pattern)
}

func (bm *BoyerMoore) FindIndexString(text, pattern string) int {
	if len(text) == 0 || len(pattern) == 0 || len(pattern) > len(text) {
		return NotFound
	}
	return BoyerMooreIndex([]byte(text), []byte(pattern))
}

func (bm *BoyerMoore) FindIndexRunes(text, pattern []rune) int {
	return BoyerMooreIndex(text, pattern)
}

// ShiftTable maps a text character to the distance the pattern may be moved
// when that character is aligned with the last pattern position.
type ShiftTable[E symbol] interface {
	Shift(c E) int
}

// byteShift is used for byte alphabets; every byte has a slot.
type byteShift [256]int

func (t *byteShift) Shift(c byte) int {
	return t[c]
}

// runeShift is used for unbounded alphabets.
type runeShift[E symbol] struct {
	skip map[E]int
	def  int
}

func (t *runeShift[E]) Shift(c E) int {
	if n, ok := t.skip[c]; ok {
		return n
	}
	return t.def
}

// BuildShiftTable builds the bad-character table for a non-empty pattern of
// length m. Every character but the last maps to m-1 minus the index of its
// last occurrence in pattern[:m-1]. The last character, when it does not occur
// earlier, and every character absent from the pattern shift by m.
func BuildShiftTable[E symbol](pattern []E) ShiftTable[E] {
	if p, ok := any(pattern).([]byte); ok {
		return any(newByteShift(p)).(ShiftTable[E])
	}
	m := len(pattern)
	t := &runeShift[E]{
		skip: make(map[E]int, m),
		def:  m,
	}
	for i := 0; i < m-1; i++ {
		t.skip[pattern[i]] = m - 1 - i
	}
	return t
}

func newByteShift(pattern []byte) *byteShift {
	m := len(pattern)
	t := new(byteShift)
	for i := range t {
		t[i] = m
	}
	for i := 0; i < m-1; i++ {
		t[pattern[i]] = m - 1 - i
	}
	return t
}

// BoyerMooreIndex returns the index of the first occurrence of pattern in
// text, or NotFound.
func BoyerMooreIndex[E symbol](text, pattern []E) int {
	m, n := len(pattern), len(text)
	if m == 0 || n == 0 || m > n {
		return NotFound
	}
	shift := BuildShiftTable(pattern)
	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += shift.Shift(text[i+m-1])
	}
	return NotFound
}
