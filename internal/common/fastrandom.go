package common

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync/atomic"
)

// CPRNG is a thread-safe cryptographically secure pseudo-random number
// generator: AES in counter mode, keyed with the seed. Each Read claims a
// contiguous range of counter blocks with a single atomic add, so concurrent
// readers never share keystream.
type CPRNG struct {
	block   cipher.Block
	counter uint64
}

var globalCprng *CPRNG

func init() {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("failed to seed CPRNG: %v", err))
	}
	cprng, err := NewCPRNG(&seed)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize CPRNG: %v", err))
	}
	globalCprng = cprng
}

func NewCPRNG(seed *[32]byte) (*CPRNG, error) {
	block, err := aes.NewCipher(seed[:])
	if err != nil {
		return nil, err
	}
	return &CPRNG{block: block}, nil
}

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
		c.block.Encrypt(out[:], in[:])
		copy(buf, out[:])
		buf = nil
	}
	return n, nil
}

// RandomBelow returns a value chosen uniformly from [0, limit), drawn from a
// generator seeded from crypto/rand when the process starts.
func RandomBelow(limit *big.Int) *big.Int {
	res, err := rand.Int(globalCprng, limit)
	if err != nil {
		panic(fmt.Sprintf("rand.Int failed: %v", err))
	}
	return res
}
