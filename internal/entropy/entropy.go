// Package entropy wraps the fixed SHA-512/SHA-256 primitives that the graph
// builder and the round-key schedule both chain from a seed. Named wrappers
// keep call sites reading as domain operations instead of raw hash calls.
package entropy

import (
	"crypto/sha256"
	"crypto/sha512"
)

// ChainStep computes SHA-512(prev || byte(round)), the step the graph
// builder repeats to expand a seed into an edge-sampling hash chain.
func ChainStep(prev []byte, round int) [sha512.Size]byte {
	h := sha512.New()
	h.Write(prev)
	h.Write([]byte{byte(round)})
	var sum [sha512.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Sum256 is SHA-256 over the concatenation of parts, used by both the S-box
// affine constant and the round-key schedule.
func Sum256(parts ...[]byte) [sha256.Size]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
