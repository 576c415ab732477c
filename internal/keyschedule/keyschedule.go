// Package keyschedule derives the 13 round keys the SPN mixes in each
// round.
package keyschedule

import "github.com/nyxcrypt/graphcrypto/internal/entropy"

// Rounds is the number of round keys (RK[0..12]).
const Rounds = 13

// rkLabel is the two-byte ASCII literal "RK" (0x52 0x4B) used as a
// domain separator in the round-key expansion.
var rkLabel = []byte{0x52, 0x4B}

// Derive computes RK[0..12] = SHA-256(anchor || "RK" || byte(r))[0:16],
// where anchor = SHA-256(seed || topoBytes[0:32]).
func Derive(seed []byte, topoBytes [256]byte) [Rounds][16]byte {
	anchor := entropy.Sum256(seed, topoBytes[:32])

	var rk [Rounds][16]byte
	for r := 0; r < Rounds; r++ {
		sum := entropy.Sum256(anchor[:], rkLabel, []byte{byte(r)})
		copy(rk[r][:], sum[:16])
	}
	return rk
}
