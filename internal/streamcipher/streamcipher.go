// Package streamcipher implements the counter-mode driver on top of the
// SPN: block stream, byte stream, and block encryption.
package streamcipher

import (
	"encoding/binary"

	"github.com/nyxcrypt/graphcrypto/internal/spn"
)

// Stream drives the SPN in counter mode. The counter is the only mutable
// state; everything else (cipher, round keys) is immutable and may be
// shared.
type Stream struct {
	cipher  *spn.Cipher
	rk      [13][16]byte
	counter [2]uint64 // 128-bit big-endian counter, high half then low half
}

// New builds a Stream with its counter initialized to 0.
func New(cipher *spn.Cipher, rk [13][16]byte) *Stream {
	return &Stream{cipher: cipher, rk: rk}
}

func (s *Stream) counterBytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], s.counter[0])
	binary.BigEndian.PutUint64(b[8:16], s.counter[1])
	return b
}

// incrementCounter adds 1 modulo 2^128, carrying from the low half to the
// high half.
func (s *Stream) incrementCounter() {
	s.counter[1]++
	if s.counter[1] == 0 {
		s.counter[0]++
	}
}

// GenerateBlock encodes the current counter as a 16-byte big-endian
// integer, runs it through E, advances the counter by 1, and returns the
// resulting 16-byte block.
func (s *Stream) GenerateBlock() [16]byte {
	block := s.cipher.Encrypt(s.counterBytes(), s.rk)
	s.incrementCounter()
	return block
}

// GenerateBytes concatenates ceil(n/16) blocks and truncates to n bytes.
// n == 0 returns an empty, non-nil slice.
func (s *Stream) GenerateBytes(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		block := s.GenerateBlock()
		remaining := n - len(out)
		if remaining >= 16 {
			out = append(out, block[:]...)
		} else {
			out = append(out, block[:remaining]...)
		}
	}
	return out
}

// Encrypt XORs plaintext, zero-padded to a multiple of 16 bytes, with the
// keystream. Output length is always a multiple of 16 and equal to
// ceil(len(plaintext)/16)*16. The original length is not recorded; a
// caller that needs exact-length recovery should use EncryptFramed
// instead.
func (s *Stream) Encrypt(plaintext []byte) []byte {
	n := len(plaintext)
	padded := n
	if rem := n % 16; rem != 0 {
		padded += 16 - rem
	}

	out := make([]byte, padded)
	copy(out, plaintext)

	for off := 0; off < padded; off += 16 {
		block := s.GenerateBlock()
		for i := 0; i < 16; i++ {
			out[off+i] ^= block[i]
		}
	}
	return out
}

// EncryptFramed encrypts plaintext like Encrypt but prefixes the result
// with a 4-byte big-endian original length, so a caller can recover the
// exact plaintext length after decryption-by-XOR.
func (s *Stream) EncryptFramed(plaintext []byte) []byte {
	body := s.Encrypt(plaintext)
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out[:4], uint32(len(plaintext)))
	copy(out[4:], body)
	return out
}

// Rewind resets the counter to an arbitrary 64-bit value (the high 64 bits
// stay 0), letting callers replay blocks to exercise the XOR-round-trip
// property.
func (s *Stream) Rewind(counter uint64) {
	s.counter[0] = 0
	s.counter[1] = counter
}
