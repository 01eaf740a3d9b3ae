package util

import (
	"math/rand"
	"strings"
)

const (
	LetterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DNABytes    = "ACGT"
)

const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// NewRand returns a deterministic source, so randomized tests can be replayed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandString returns n characters drawn from alphabet, which must hold at
// most 64 bytes. Small alphabets (see DNABytes) make repeated and
// overlapping substrings likely, which is what the search tests want.
func RandString(r *rand.Rand, alphabet string, n int) string {
	sb := strings.Builder{}
	sb.Grow(n)
	// A r.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, r.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = r.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(alphabet) {
			sb.WriteByte(alphabet[idx])
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return sb.String()
}

// RandSubstring returns a random non-empty substring of s, of at most max
// bytes, together with its offset.
func RandSubstring(r *rand.Rand, s string, max int) (string, int) {
	if len(s) == 0 || max < 1 {
		return "", 0
	}
	if max > len(s) {
		max = len(s)
	}
	n := RandIntn(r, 1, max+1)
	off := r.Intn(len(s) - n + 1)
	return s[off : off+n], off
}

func RandIntn(r *rand.Rand, min, max int) int {
	return r.Intn(max-min) + min
}
