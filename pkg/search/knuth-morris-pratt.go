package search

// KnuthMorrisPratt algorithm is oftentimes only the best performing when it's used on shorter texts or
// if you are pre-computing the search tables beforehand. Otherwise, Boyer-Moore (and even Rabin-Karp) will
// beat it almost out most of the time.
type KnuthMorrisPratt struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPratt {
	return new(KnuthMorrisPratt)
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KMP"
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	return KMPIndex(text, pattern)
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	if len(text) == 0 || len(pattern) == 0 {
		return NotFound
	}
	return KMPIndex([]byte(text), []byte(pattern))
}

func (kmp *KnuthMorrisPratt) FindIndexRunes(text, pattern []rune) int {
	return KMPIndex(text, pattern)
}

// PrefixTable returns the prefix-failure table of pattern. Entry i holds the
// length of the longest proper prefix of pattern[:i+1] that is also a suffix
// of it.
func PrefixTable[E symbol](pattern []E) []int {
	lps := make([]int, len(pattern))
	length, i := 0, 1
	for i < len(pattern) {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
			continue
		}
		if length > 0 {
			// fall back without advancing i
			length = lps[length-1]
			continue
		}
		lps[i] = 0
		i++
	}
	return lps
}

// KMPIndex returns the index of the first occurrence of pattern in text,
// or NotFound.
func KMPIndex[E symbol](text, pattern []E) int {
	m, n := len(pattern), len(text)
	if m == 0 || n == 0 {
		return NotFound
	}
	lps := PrefixTable(pattern)
	i, j := 0, 0
	for i < n {
		switch {
		case text[i] == pattern[j]:
			i++
			j++
		case j > 0:
			j = lps[j-1]
		default:
			i++
		}
		if j == m {
			return i - j
		}
	}
	return NotFound
}
