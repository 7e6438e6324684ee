package generator

import (
	"crypto/hmac"
	"crypto/sha256"
)

const (
	// sp800ChunkLen is the fixed chunk size served by FixedEntropySource,
	// matching the 256-bit security strength of the HMAC-SHA-256 DRBG.
	sp800ChunkLen = 32

	// sp800MaxBytesPerRequest caps a single HMAC_DRBG generate call per
	// SP800-90A; larger Next requests are served in chunks.
	sp800MaxBytesPerRequest = 1 << 16

	// sp800ReseedInterval is the request count after which SP800-90A demands a
	// reseed. No reseed is implemented, so reaching it renders the instance
	// permanently exhausted.
	sp800ReseedInterval = 1 << 48
)

// FixedEntropySource serves a caller-supplied seed in successive fixed-size
// chunks and then fails permanently. It is single-use: it may feed exactly one
// DRBG instantiation, and attaching it a second time fails with
// ErrEntropySourceReused.
type FixedEntropySource struct {
	buf      []byte
	off      int
	attached bool
}

// NewFixedEntropySource wraps seed as a single-use entropy source.
func NewFixedEntropySource(seed []byte) *FixedEntropySource {
	buf := make([]byte, len(seed))
	copy(buf, seed)
	return &FixedEntropySource{buf: buf}
}

// attach reserves the source for one consumer.
func (s *FixedEntropySource) attach() error {
	if s.attached {
		return ErrEntropySourceReused
	}
	s.attached = true
	return nil
}

// take returns the next fixed-size chunk, or ErrEntropyExhausted when the
// remaining seed material cannot fill one.
func (s *FixedEntropySource) take() ([]byte, error) {
	if s.off+sp800ChunkLen > len(s.buf) {
		return nil, ErrEntropyExhausted
	}
	chunk := s.buf[s.off : s.off+sp800ChunkLen]
	s.off += sp800ChunkLen
	return chunk, nil
}

// SP800Generator is an HMAC_DRBG per NIST SP800-90A (HMAC-SHA-256), driven by
// a single-use FixedEntropySource and offering no reseed. It is deterministic
// for a fixed seed and salt.
type SP800Generator struct {
	k, v          []byte
	reseedCounter uint64
}

var _ ByteGenerator = (*SP800Generator)(nil)

// NewSP800Generator instantiates the DRBG from src, using salt as the
// personalization string. The source must hold at least MinSeedLenSP800 bytes
// of seed material and must not have fed another instance.
func NewSP800Generator(src *FixedEntropySource, salt []byte) (*SP800Generator, error) {
	if err := src.attach(); err != nil {
		return nil, err
	}
	if len(src.buf) < MinSeedLenSP800 {
		return nil, ErrSeedTooWeak
	}

	entropy, err := src.take()
	if err != nil {
		return nil, err
	}

	// SP800-90A 10.1.2.3: seed_material = entropy_input || personalization.
	personalization := saltOrDefault(salt)
	seedMaterial := make([]byte, 0, len(entropy)+len(personalization))
	seedMaterial = append(seedMaterial, entropy...)
	seedMaterial = append(seedMaterial, personalization...)

	g := &SP800Generator{
		k:             make([]byte, sha256.Size),
		v:             make([]byte, sha256.Size),
		reseedCounter: 1,
	}
	for i := range g.v {
		g.v[i] = 0x01
	}
	g.update(seedMaterial)
	return g, nil
}

// Next generates n bytes, splitting oversized requests into SP800-90A
// conformant generate calls.
func (g *SP800Generator) Next(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrInvalidRequest
	}

	out := make([]byte, 0, n)
	for remaining := n; remaining > 0; {
		sz := remaining
		if sz > sp800MaxBytesPerRequest {
			sz = sp800MaxBytesPerRequest
		}
		chunk, err := g.generate(sz)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		remaining -= sz
	}
	return out, nil
}

// generate implements SP800-90A 10.1.2.5 without additional input.
func (g *SP800Generator) generate(n int) ([]byte, error) {
	if g.reseedCounter > sp800ReseedInterval {
		return nil, ErrEntropyExhausted
	}

	temp := make([]byte, 0, ((n+sha256.Size-1)/sha256.Size)*sha256.Size)
	for len(temp) < n {
		g.v = hmacSum(g.k, g.v)
		temp = append(temp, g.v...)
	}

	g.update(nil)
	g.reseedCounter++
	return temp[:n], nil
}

// update implements the HMAC_DRBG update function, SP800-90A 10.1.2.2.
func (g *SP800Generator) update(providedData []byte) {
	g.k = hmacSum(g.k, g.v, []byte{0x00}, providedData)
	g.v = hmacSum(g.k, g.v)
	if len(providedData) == 0 {
		return
	}
	g.k = hmacSum(g.k, g.v, []byte{0x01}, providedData)
	g.v = hmacSum(g.k, g.v)
}

func hmacSum(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, p := range parts {
		if len(p) > 0 {
			mac.Write(p)
		}
	}
	return mac.Sum(nil)
}
