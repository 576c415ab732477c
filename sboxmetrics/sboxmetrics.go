// Package sboxmetrics re-exports the S-box cryptanalysis measurements so
// a caller can evaluate an arbitrary 256-entry substitution table without
// reaching into graphcrypto's internal packages.
package sboxmetrics

import "github.com/nyxcrypt/graphcrypto/internal/sbox"

// DifferentialUniformity returns the maximum count over the table's
// difference distribution table, excluding the trivial a=0 row.
func DifferentialUniformity(s [256]byte) int {
	return sbox.DifferentialUniformity(s)
}

// Nonlinearity returns the minimum Boolean nonlinearity over every
// nonzero linear combination of the table's output bits.
func Nonlinearity(s [256]byte) int {
	return sbox.Nonlinearity(s)
}
