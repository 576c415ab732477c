// Package spn implements the 12-round substitution-permutation network
// over a 128-bit state: SubBytes, ShiftRows, BitPermutation, MixColumns,
// AddRoundKey, composed into the forward transform E.
package spn

import (
	"github.com/nyxcrypt/graphcrypto/internal/gf256"
	"github.com/nyxcrypt/graphcrypto/internal/permute"
)

// Rounds is the round count E's main loop runs (1..11 full rounds plus a
// final partial round).
const Rounds = 11

// Cipher holds the immutable derived material E needs: the S-box and the
// bit permutation. Both are read-only after construction and may be
// shared across Cipher values.
type Cipher struct {
	sbox [256]byte
	pi   permute.Perm
}

// New builds a Cipher from a finished S-box and bit permutation.
func New(sbox [256]byte, pi permute.Perm) *Cipher {
	return &Cipher{sbox: sbox, pi: pi}
}

// SubBytes replaces every byte of state with sbox[byte].
func (c *Cipher) SubBytes(state [16]byte) [16]byte {
	var out [16]byte
	for i, b := range state {
		out[i] = c.sbox[b]
	}
	return out
}

// ShiftRows interprets state as 4 rows x 4 columns (row r, col c <-> byte
// index r+4c) and left-rotates row r by r positions.
func ShiftRows(state [16]byte) [16]byte {
	var m, out [4][4]byte
	for idx, b := range state {
		r, c := idx%4, idx/4
		m[r][c] = b
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][(c+r)%4]
		}
	}
	var result [16]byte
	for idx := range result {
		r, c := idx%4, idx/4
		result[idx] = out[r][c]
	}
	return result
}

// BitPermutation applies the π bit permutation to the 128-bit state via
// internal/permute.
func (c *Cipher) BitPermutation(state [16]byte) [16]byte {
	return permute.Apply(c.pi, state)
}

// MixColumns applies the MDS mix step over GF(2^8) to each column of
// state:
//
//	(2c0 ^ 3c1 ^ c2 ^ c3, c0 ^ 2c1 ^ 3c2 ^ c3, c0 ^ c1 ^ 2c2 ^ 3c3, 3c0 ^ c1 ^ c2 ^ 2c3)
func MixColumns(state [16]byte) [16]byte {
	var out [16]byte
	for col := 0; col < 4; col++ {
		base := col * 4
		c0, c1, c2, c3 := state[base], state[base+1], state[base+2], state[base+3]
		out[base+0] = gf256.Mul2Fast(c0) ^ gf256.Mul3Fast(c1) ^ c2 ^ c3
		out[base+1] = c0 ^ gf256.Mul2Fast(c1) ^ gf256.Mul3Fast(c2) ^ c3
		out[base+2] = c0 ^ c1 ^ gf256.Mul2Fast(c2) ^ gf256.Mul3Fast(c3)
		out[base+3] = gf256.Mul3Fast(c0) ^ c1 ^ c2 ^ gf256.Mul2Fast(c3)
	}
	return out
}

// AddRoundKey XORs state with rk.
func AddRoundKey(state, rk [16]byte) [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = state[i] ^ rk[i]
	}
	return out
}

// Encrypt runs the full forward transform E over state using the 13
// round keys:
//
//	state ^= RK[0]
//	for r = 1..11: SubBytes, ShiftRows, BitPermutation, MixColumns, state ^= RK[r]
//	SubBytes, ShiftRows, BitPermutation, state ^= RK[12]
//
// E is invertible as a composition (every stage is), but no decryption
// routine is exposed; the stream/encrypt surface is a one-way keystream
// generator.
func (c *Cipher) Encrypt(state [16]byte, rk [13][16]byte) [16]byte {
	state = AddRoundKey(state, rk[0])
	for r := 1; r <= Rounds; r++ {
		state = c.SubBytes(state)
		state = ShiftRows(state)
		state = c.BitPermutation(state)
		state = MixColumns(state)
		state = AddRoundKey(state, rk[r])
	}
	state = c.SubBytes(state)
	state = ShiftRows(state)
	state = c.BitPermutation(state)
	state = AddRoundKey(state, rk[12])
	return state
}
