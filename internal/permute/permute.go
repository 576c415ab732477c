// Package permute builds the 128-position bit permutation π from
// topo_bytes and applies it to a 128-bit SPN state.
package permute

import "sort"

// Size is the number of bit positions π permutes (one per bit of a 16-byte
// state).
const Size = 128

// Perm is a bijection {0,...,127} -> {0,...,127}.
type Perm [Size]int

// Build takes the first 128 bytes of topoBytes, stable-sorts (value,
// original_index) pairs ascending by value, and sets π[k] to the
// original_index of the k-th sorted pair.
func Build(topoBytes [256]byte) Perm {
	type entry struct {
		value byte
		index int
	}
	entries := make([]entry, Size)
	for i := 0; i < Size; i++ {
		entries[i] = entry{value: topoBytes[i], index: i}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value < entries[j].value
	})

	var pi Perm
	for k, e := range entries {
		pi[k] = e.index
	}
	return pi
}

// Inverse computes π⁻¹ such that Inverse()[π[k]] == k.
func (pi Perm) Inverse() Perm {
	var inv Perm
	for k, orig := range pi {
		inv[orig] = k
	}
	return inv
}

// Apply permutes the 128 bits of state according to π. Bit indexing runs
// byte-0-first across the 16-byte state, LSB-to-MSB within each byte:
// B'[k] = B[π[k]].
func Apply(pi Perm, state [16]byte) [16]byte {
	var out [16]byte
	for k := 0; k < Size; k++ {
		src := pi[k]
		bit := (state[src/8] >> uint(src%8)) & 1
		if bit != 0 {
			out[k/8] |= 1 << uint(k%8)
		}
	}
	return out
}
