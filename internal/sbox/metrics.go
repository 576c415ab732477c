package sbox

// DifferentialUniformity computes max over nonzero input difference a and
// any output difference b of |{x : S(x^a) ^ S(x) = b}|.
func DifferentialUniformity(s [256]byte) int {
	var count [256]int
	maxCount := 0
	for a := 1; a < 256; a++ {
		for i := range count {
			count[i] = 0
		}
		for x := 0; x < 256; x++ {
			d := s[x^a] ^ s[x]
			count[d]++
		}
		for _, c := range count {
			if c > maxCount {
				maxCount = c
			}
		}
	}
	return maxCount
}

// Nonlinearity computes the nonlinearity of S as a vectorial Boolean
// function: the minimum, over all nonzero linear combinations b of the
// output bits, of the Boolean nonlinearity of x -> parity(popcount(b &
// S(x))). Each component function's nonlinearity is derived from its
// Walsh-Hadamard spectrum via the standard fast transform.
func Nonlinearity(s [256]byte) int {
	minNL := 1 << 30
	for b := 1; b < 256; b++ {
		nl := booleanNonlinearity(componentFunction(s, byte(b)))
		if nl < minNL {
			minNL = nl
		}
	}
	return minNL
}

// componentFunction returns f_b(x) = parity(popcount(b & s[x])) for all
// 256 inputs x, packed one bit per byte.
func componentFunction(s [256]byte, b byte) [256]byte {
	var f [256]byte
	for x := 0; x < 256; x++ {
		f[x] = byte(popcount8(b&s[x]) & 1)
	}
	return f
}

// booleanNonlinearity computes 2^7 - (1/2)*max_a|W_f(a)| via the fast
// Walsh-Hadamard transform over the +/-1 encoding of f.
func booleanNonlinearity(f [256]byte) int {
	var w [256]int
	for x, bit := range f {
		if bit == 0 {
			w[x] = 1
		} else {
			w[x] = -1
		}
	}

	for step := 1; step < 256; step <<= 1 {
		for i := 0; i < 256; i += step * 2 {
			for j := i; j < i+step; j++ {
				x, y := w[j], w[j+step]
				w[j] = x + y
				w[j+step] = x - y
			}
		}
	}

	maxAbs := 0
	for _, v := range w {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	return 128 - maxAbs/2
}
