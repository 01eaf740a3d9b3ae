package search

const (
	// DefaultBase is the radix of the polynomial hash (one slot per byte value).
	DefaultBase = 256

	// DefaultModulus is deliberately small so that hash collisions happen often.
	DefaultModulus = 101

	// MaxModulus keeps every intermediate product inside an int64.
	MaxModulus = 1<<31 - 1
)

// PolynomialHash returns sum(s[i] * base^(len(s)-1-i)) mod modulus, always
// in [0, modulus). Both base and modulus must be positive and modulus must
// not exceed MaxModulus.
func PolynomialHash[E symbol](s []E, base, modulus int64) int64 {
	base %= modulus
	var h int64
	for _, c := range s {
		h = (h*base + code(c, modulus)) % modulus
	}
	return h
}

// RollingHash is the polynomial hash of a fixed width window that can be
// moved one character to the right in constant time.
type RollingHash[E symbol] struct {
	base    int64
	modulus int64
	high    int64 // base^(width-1) mod modulus
	sum     int64
}

// NewRollingHash hashes the first window. The same limits on base and
// modulus as for PolynomialHash apply.
func NewRollingHash[E symbol](window []E, base, modulus int64) *RollingHash[E] {
	return &RollingHash[E]{
		base:    base % modulus,
		modulus: modulus,
		high:    powMod(base, int64(len(window)-1), modulus),
		sum:     PolynomialHash(window, base, modulus),
	}
}

// Sum returns the hash of the current window.
func (rh *RollingHash[E]) Sum() int64 {
	return rh.sum
}

// Roll drops leaving from the front of the window and appends entering.
func (rh *RollingHash[E]) Roll(leaving, entering E) int64 {
	h := (rh.sum - code(leaving, rh.modulus)*rh.high) % rh.modulus
	if h < 0 {
		h += rh.modulus
	}
	rh.sum = (h*rh.base + code(entering, rh.modulus)) % rh.modulus
	return rh.sum
}

func code[E symbol](c E, modulus int64) int64 {
	r := int64(c) % modulus
	if r < 0 {
		r += modulus
	}
	return r
}

// powMod returns base^exp mod modulus for exp >= 0.
func powMod(base, exp, modulus int64) int64 {
	if exp < 0 {
		exp = 0
	}
	result, sq := int64(1)%modulus, base%modulus
	for ; exp > 0; exp >>= 1 {
		if exp&1 != 0 {
			result = result * sq % modulus
		}
		sq = sq * sq % modulus
	}
	return result
}
