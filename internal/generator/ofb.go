package generator

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// StreamCipherGenerator turns AES-256 in output-feedback mode into a
// deterministic byte stream. The seed is hashed down to the cipher key size
// and the salt to the IV size, so any valid (seed, salt) pair maps to exactly
// one keystream.
//
// OFB keystreams are exactly catenable: Next(a) followed by Next(b) equals a
// single Next(a+b). This is the property that distinguishes this backend from
// the hash DRBG, which re-keys between requests.
type StreamCipherGenerator struct {
	stream cipher.Stream
}

var _ ByteGenerator = (*StreamCipherGenerator)(nil)

// NewStreamCipherGenerator derives an AES-256 key from seed and an IV from
// salt. Seed must be at least MinSeedLen bytes; a nil salt selects
// DefaultSalt.
func NewStreamCipherGenerator(seed, salt []byte) (*StreamCipherGenerator, error) {
	if len(seed) < MinSeedLen {
		return nil, ErrSeedTooWeak
	}

	key := blake2b.Sum256(seed)
	ivDigest := blake2b.Sum256(saltOrDefault(salt))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("new aes cipher: %w", err)
	}

	//nolint:staticcheck // OFB is used as a keystream source, not as a
	// transport encryption mode.
	return &StreamCipherGenerator{stream: cipher.NewOFB(block, ivDigest[:aes.BlockSize])}, nil
}

// Next produces the next n keystream bytes.
func (g *StreamCipherGenerator) Next(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrInvalidRequest
	}

	out := make([]byte, n)
	g.stream.XORKeyStream(out, out)
	return out, nil
}
