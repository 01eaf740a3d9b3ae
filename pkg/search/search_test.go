package search

import (
	"strings"
	"testing"

	"github.com/scottcagno/searchbench/pkg/util"
)

func allSearchers() []Searcher {
	return append(Searchers(), NewBruteForce(), NewRabinKarp(31, 1_000_003))
}

var findTests = []struct {
	name    string
	text    string
	pattern string
	want    int
}{
	{"prefix", "needle in a haystack", "needle", 0},
	{"middle", "a haystack with a needle inside", "needle", 18},
	{"suffix", "haystack needle", "needle", 9},
	{"first-of-many", "abc abc abc", "abc", 0},
	{"overlapping", "aaaaaaab", "aaab", 4},
	{"single", "xyz", "z", 2},
	{"whole", "same", "same", 0},
	{"missing", "a haystack with no match", "needle", NotFound},
	{"longer", "short", "shorter", NotFound},
	{"near-miss", "needlf needld", "needle", NotFound},
}

func TestSearchers_FindIndex(t *testing.T) {
	for _, s := range allSearchers() {
		for _, tt := range findTests {
			t.Run(s.String()+"/"+tt.name, func(t *testing.T) {
				util.AssertExpected(t, tt.want, s.FindIndex([]byte(tt.text), []byte(tt.pattern)))
				util.AssertExpected(t, tt.want, s.FindIndexString(tt.text, tt.pattern))
				util.AssertExpected(t, tt.want, s.FindIndexRunes([]rune(tt.text), []rune(tt.pattern)))
			})
		}
	}
}

func TestSearchers_Degenerate(t *testing.T) {
	for _, s := range allSearchers() {
		t.Run(s.String(), func(t *testing.T) {
			util.AssertExpected(t, NotFound, s.FindIndex(nil, nil))
			util.AssertExpected(t, NotFound, s.FindIndex([]byte("text"), nil))
			util.AssertExpected(t, NotFound, s.FindIndex(nil, []byte("p")))
			util.AssertExpected(t, NotFound, s.FindIndex([]byte{}, []byte{}))
			util.AssertExpected(t, NotFound, s.FindIndexString("", ""))
			util.AssertExpected(t, NotFound, s.FindIndexString("text", ""))
			util.AssertExpected(t, NotFound, s.FindIndexString("", "p"))
			util.AssertExpected(t, NotFound, s.FindIndexRunes(nil, []rune("p")))
			util.AssertExpected(t, NotFound, s.FindIndexRunes([]rune("text"), nil))
		})
	}
}

func TestSearchers_Unicode(t *testing.T) {
	text := "Цей алгоритм шукає підрядок у тексті"
	pattern := "алгоритм"
	for _, s := range allSearchers() {
		t.Run(s.String(), func(t *testing.T) {
			util.AssertExpected(t, strings.Index(text, pattern), s.FindIndexString(text, pattern))
			util.AssertExpected(t, 4, s.FindIndexRunes([]rune(text), []rune(pattern)))
			util.AssertExpected(t, NotFound, s.FindIndexRunes([]rune(text), []rune("даних")))
		})
	}
}

func TestSearchers_RandomOccurring(t *testing.T) {
	r := util.NewRand(42)
	for i := 0; i < 1000; i++ {
		text := util.RandString(r, util.DNABytes, util.RandIntn(r, 1, 200))
		pattern, _ := util.RandSubstring(r, text, 16)
		want := strings.Index(text, pattern)
		for _, s := range allSearchers() {
			if got := s.FindIndexString(text, pattern); got != want {
				t.Fatalf("%s: FindIndexString(%q, %q) = %d, want %d", s, text, pattern, got, want)
			}
		}
	}
}

func TestSearchers_RandomEquivalence(t *testing.T) {
	r := util.NewRand(1337)
	ref := NewBruteForce()
	for i := 0; i < 2000; i++ {
		text := []byte(util.RandString(r, "abc", util.RandIntn(r, 0, 64)))
		pattern := []byte(util.RandString(r, "abc", util.RandIntn(r, 0, 8)))
		want := ref.FindIndex(text, pattern)
		for _, s := range Searchers() {
			if got := s.FindIndex(text, pattern); got != want {
				t.Fatalf("%s: FindIndex(%q, %q) = %d, want %d", s, text, pattern, got, want)
			}
		}
	}
}

func TestSearchers_RandomMissing(t *testing.T) {
	r := util.NewRand(9)
	for i := 0; i < 200; i++ {
		text := util.RandString(r, "abc", util.RandIntn(r, 1, 300))
		// 'd' never occurs in text
		pattern := util.RandString(r, "abc", util.RandIntn(r, 0, 5)) + "d"
		for _, s := range allSearchers() {
			util.AssertExpected(t, NotFound, s.FindIndexString(text, pattern))
		}
	}
}

func TestSearchers_Order(t *testing.T) {
	var names []string
	for _, s := range Searchers() {
		names = append(names, s.String())
	}
	util.AssertExpected(t, []string{"KMP", "Boyer-Moore", "Rabin-Karp"}, names)
}

func TestLookup(t *testing.T) {
	for name, want := range map[string]string{
		"kmp":                "KMP",
		"Knuth-Morris-Pratt": "KMP",
		"boyer-moore":        "Boyer-Moore",
		"BM":                 "Boyer-Moore",
		"RabinKarp":          "Rabin-Karp",
		"naive":              "Brute-Force",
	} {
		s, err := Lookup(name)
		if util.AssertNoError(t, err) {
			util.AssertExpected(t, want, s.String())
		}
	}
	_, err := Lookup("aho-corasick")
	util.AssertErrorIs(t, err, ErrUnknownSearcher)
}
