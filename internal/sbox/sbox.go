// Package sbox builds the bijective 8-bit S-box the SPN substitutes
// through, plus two named variant modes alongside the canonical affine
// construction.
package sbox

import (
	"crypto/sha256"
	"math"

	"golang.org/x/crypto/hkdf"

	"github.com/nyxcrypt/graphcrypto/internal/entropy"
)

// Mode selects which S-box construction to run. ModeAffine is the only
// mode the reproducibility contract and the DU/NL guarantees apply to.
type Mode int

const (
	// ModeAffine is the canonical construction: the standard AES S-box
	// composed with a GF(2)-affine transform, guaranteed bijective with
	// differential uniformity 4 and nonlinearity 112.
	ModeAffine Mode = iota
	// ModeDirect shuffles topo_bytes into a permutation via a
	// Fisher-Yates pass keyed by the hash chain; no DU/NL guarantee.
	ModeDirect
	// ModeHybrid XORs the affine table with an HKDF-expanded mask keyed
	// on topo_bytes; no DU/NL guarantee.
	ModeHybrid
)

func (m Mode) String() string {
	switch m {
	case ModeAffine:
		return "affine"
	case ModeDirect:
		return "direct"
	case ModeHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// BuildAffine constructs S:
//  1. b0 = SHA-256(topo_bytes)[0].
//  2. l[i] = round(255*|lambda[i]|/max(|lambda[0..8]|)) for i=0..7, or 0 if
//     every lambda is 0.
//  3. b = b0 XOR l[0] XOR ... XOR l[7].
//  4. S[x] = pack(A * AESSBox[x]) XOR b.
func BuildAffine(topoBytes [256]byte, firstEigenvalues [8]float64) [256]byte {
	hash := entropy.Sum256(topoBytes[:])
	b0 := hash[0]

	var absValues [8]float64
	maxAbs := 0.0
	for i, lv := range firstEigenvalues {
		a := math.Abs(lv)
		absValues[i] = a
		if a > maxAbs {
			maxAbs = a
		}
	}

	var l [8]byte
	if maxAbs > 0 {
		for i, a := range absValues {
			l[i] = byte(math.Round(255 * a / maxAbs))
		}
	}

	b := b0
	for _, v := range l {
		b ^= v
	}

	var s [256]byte
	for x := 0; x < 256; x++ {
		a := AESSBox[x]
		y := applyAffineMatrix(a)
		s[x] = y ^ b
	}
	return s
}

// BuildDirect produces a permutation by Fisher-Yates shuffling the
// identity permutation, drawing swap indices from a deterministic
// hash-chain expansion of topo_bytes instead of math/rand.Rand. No DU/NL
// guarantee.
func BuildDirect(topoBytes [256]byte) [256]byte {
	var s [256]byte
	for i := range s {
		s[i] = byte(i)
	}

	stream := expandStream(topoBytes[:], []byte("graphcrypto/sbox/direct:v1"), 512)
	cursor := 0
	nextIndex := func(bound int) int {
		// Rejection-free modulo draw from two stream bytes; bound <= 256
		// keeps the modulo bias negligible for this non-canonical mode.
		v := int(stream[cursor])<<8 | int(stream[cursor+1])
		cursor += 2
		return v % bound
	}
	for i := 255; i > 0; i-- {
		j := nextIndex(i + 1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// BuildHybrid XORs the canonical affine table with a single HKDF-SHA256
// derived constant keyed on topo_bytes. Folding the HKDF output down to
// one byte and XORing it uniformly preserves bijectivity (XOR by a fixed
// constant is its own permutation of the output space, so composed with
// the already-bijective affine table the result stays bijective); an
// independent per-index mask would not have that property. Kept one
// layer removed from ModeAffine's byte-exact path so it cannot affect
// that mode's reproducibility contract.
func BuildHybrid(topoBytes [256]byte, firstEigenvalues [8]float64) ([256]byte, error) {
	affine := BuildAffine(topoBytes, firstEigenvalues)

	mask := make([]byte, 32)
	kdf := hkdf.New(sha256.New, topoBytes[:], nil, []byte("graphcrypto/sbox/hybrid:v1"))
	if _, err := kdf.Read(mask); err != nil {
		return [256]byte{}, err
	}

	var c byte
	for _, v := range mask {
		c ^= v
	}

	var s [256]byte
	for i := range s {
		s[i] = affine[i] ^ c
	}
	return s, nil
}

// expandStream derives an arbitrary-length deterministic byte stream from
// seed+label by chaining SHA-512, reusing the same hash-chain idiom the
// graph builder uses, for the non-canonical direct mode.
func expandStream(seed, label []byte, n int) []byte {
	out := make([]byte, 0, n+64)
	prev := append(append([]byte(nil), seed...), label...)
	for len(out) < n {
		next := entropy.ChainStep(prev, len(out)/64)
		out = append(out, next[:]...)
		prev = next[:]
	}
	return out[:n]
}
