package random

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"sync/atomic"
)

// CPRNG is a thread-safe deterministic pseudo-random byte stream: AES in counter mode with
// the seed as key and an atomic uint64 as counter. Every Read reserves whole 16-byte blocks,
// so concurrent readers never share keystream.
type CPRNG struct {
	block   cipher.Block
	counter uint64
}

// NewCPRNG returns a generator whose output is fully determined by seed.
func NewCPRNG(seed *[32]byte) (*CPRNG, error) {
	c, err := aes.NewCipher(seed[:])
	if err != nil {
		return nil, err
	}
	return &CPRNG{block: c}, nil
}

// Read fills buf with keystream. It never fails.
func (c *CPRNG) Read(buf []byte) (int, error) {
	n := len(buf)
	if n == 0 {
		return 0, nil
	}

	blocks := uint64((n + aes.BlockSize - 1) / aes.BlockSize)
	ctr := atomic.AddUint64(&c.counter, blocks) - blocks

	var in, out [aes.BlockSize]byte
	for len(buf) > 0 {
		binary.LittleEndian.PutUint64(in[:], ctr)
		ctr++
		if len(buf) >= aes.BlockSize {
			c.block.Encrypt(buf, in[:])
			buf = buf[aes.BlockSize:]
			continue
		}
		// trailing partial block; the rest of it is discarded
		c.block.Encrypt(out[:], in[:])
		copy(buf, out[:])
		buf = nil
	}
	return n, nil
}
