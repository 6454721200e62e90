// source.go
//
// Reproducible uniform bit source for the mutation oracle.  The stream is
// the raw ChaCha20 keystream (zero nonce) under a caller-supplied 32-byte
// key, consumed as little-endian 64-bit words.  A block of keystream is
// generated at a time so Uint64 is a bounds-checked load on the hot path.

package oracle

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// bufBlocks is how many 64-byte ChaCha20 blocks are generated per refill.
const bufBlocks = 16

// Source is a deterministic ChaCha20-backed generator.  Not safe for
// concurrent use.
type Source struct {
	c   *chacha20.Cipher
	pos int
	buf [bufBlocks * 64]byte
}

// NewSource keys a ChaCha20 stream with seed.  The 32-bit block counter of
// the IETF variant covers 256 GiB of output before the cipher panics.
func NewSource(seed [32]byte) *Source {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// key and nonce lengths are fixed by the types above
		panic("oracle: " + err.Error())
	}
	s := &Source{c: c}
	s.refill()
	return s
}

// Uint64 returns the next 64 uniformly distributed bits.
func (s *Source) Uint64() uint64 {
	if s.pos == len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

// refill overwrites the buffer with the next run of keystream.
func (s *Source) refill() {
	clear(s.buf[:])
	s.c.XORKeyStream(s.buf[:], s.buf[:])
	s.pos = 0
}
