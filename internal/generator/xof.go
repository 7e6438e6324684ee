package generator

import (
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Application-level domain-separation constants, absorbed by each XOF variant
// before any output is produced. Two variants seeded identically still
// generate unrelated streams.
const (
	domainBlake2Xs = "entropykit/xof/blake2xs"
	domainBlake3   = "entropykit/xof/blake3"
	domainKMAC     = "entropykit/xof/kmac"
)

// xofGenerator adapts a primitive's native extendable-output reader to the
// ByteGenerator contract. Reads advance the absorbed-state counter; primitives
// with a hard output limit (BLAKE2Xs) surface it as ErrEntropyExhausted.
type xofGenerator struct {
	name string
	r    io.Reader
}

var _ ByteGenerator = (*xofGenerator)(nil)

func (g *xofGenerator) Next(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrInvalidRequest
	}

	out := make([]byte, n)
	if _, err := io.ReadFull(g.r, out); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrEntropyExhausted
		}
		return nil, fmt.Errorf("%s: read xof: %w", g.name, err)
	}
	return out, nil
}

// NewBlake2XsGenerator builds a generator over the BLAKE2Xs XOF. The seed is
// compressed to the 32-byte BLAKE2s key capacity when longer; the domain
// constant and salt are absorbed before output. BLAKE2Xs with unknown output
// length has a hard 65535-byte limit, after which Next fails with
// ErrEntropyExhausted.
func NewBlake2XsGenerator(seed, salt []byte) (ByteGenerator, error) {
	if len(seed) < MinSeedLen {
		return nil, ErrSeedTooWeak
	}

	key := seed
	if len(key) > blake2s.Size {
		sum := blake2s.Sum256(key)
		key = sum[:]
	}

	xof, err := blake2s.NewXOF(blake2s.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("new blake2xs xof: %w", err)
	}
	xof.Write([]byte(domainBlake2Xs))
	xof.Write(saltOrDefault(salt))
	return &xofGenerator{name: "blake2xs", r: xof}, nil
}

// NewBlake3Generator builds a generator over the keyed BLAKE3 XOF. Seeds that
// are not exactly the 32-byte BLAKE3 key size are compressed down with the
// unkeyed hash; the domain constant and salt are absorbed before output.
func NewBlake3Generator(seed, salt []byte) (ByteGenerator, error) {
	if len(seed) < MinSeedLen {
		return nil, ErrSeedTooWeak
	}

	key := seed
	if len(key) != 32 {
		sum := blake3.Sum256(key)
		key = sum[:]
	}

	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, fmt.Errorf("new keyed blake3: %w", err)
	}
	h.Write([]byte(domainBlake3))
	h.Write(saltOrDefault(salt))
	return &xofGenerator{name: "blake3", r: h.Digest()}, nil
}

// NewKMACGenerator builds a generator over cSHAKE256 in its KMAC role: the
// domain constant is the cSHAKE function name, the salt the customization
// string, and the seed is absorbed as the key. cSHAKE imposes no key
// capacity, so the seed is absorbed whole.
func NewKMACGenerator(seed, salt []byte) (ByteGenerator, error) {
	if len(seed) < MinSeedLen {
		return nil, ErrSeedTooWeak
	}

	xof := sha3.NewCShake256([]byte(domainKMAC), saltOrDefault(salt))
	xof.Write(seed)
	return &xofGenerator{name: "kmac", r: xof}, nil
}
