package generator

import (
	"crypto/rand"
	"fmt"
)

// SystemGenerator delegates to the platform's secure RNG. It is the only
// non-deterministic backend and the default for production passphrase
// generation. Reads may block while the system gathers entropy; that is an
// accepted bounded-latency point, not an error.
type SystemGenerator struct{}

var _ ByteGenerator = SystemGenerator{}

// NewSystemGenerator returns a generator over crypto/rand.
func NewSystemGenerator() SystemGenerator { return SystemGenerator{} }

// Next reads n bytes from the platform RNG.
func (SystemGenerator) Next(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrInvalidRequest
	}

	out := make([]byte, n)
	if _, err := rand.Read(out); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return out, nil
}
