package generator

// HashDRBG is a deterministic generator built from ExtendedHash. It maintains
// a rolling (K, V) register pair of the primitive's digest size and re-keys
// itself on every request, so no two requests ever observe overlapping output.
//
// A single instance is single-use for its whole output lifetime: there is no
// reseed. Callers needing fresh entropy construct a new instance. Note that
// because of the re-keying between requests, Next(n1) followed by Next(n2) is
// NOT the concatenation of a single Next(n1+n2); only the stream-cipher
// backend is catenable that way.
type HashDRBG struct {
	h      KeyedHash
	k, v   []byte
	closed bool
}

var _ ByteGenerator = (*HashDRBG)(nil)

// NewHashDRBG seeds a HashDRBG from seed and salt:
//
//	K = MAC(salt, 0x00 || seed)
//	V = MAC(K,    0x01 || salt)
//
// Seed must be at least MinSeedLen bytes. A nil salt selects DefaultSalt.
func NewHashDRBG(h KeyedHash, seed, salt []byte) (*HashDRBG, error) {
	if len(seed) < MinSeedLen {
		return nil, ErrSeedTooWeak
	}
	salt = saltOrDefault(salt)

	k := h.MAC(CompressKey(h, salt), prepend(0x00, seed))
	v := h.MAC(k, prepend(0x01, salt))
	return &HashDRBG{h: h, k: k, v: v}, nil
}

// Next generates n bytes and advances (K, V). The expansion produces n plus
// one digest of output; the first n bytes go to the caller and the digest-size
// tail becomes the next V, which is then folded into the next K:
//
//	out || newV = ExtendedHash(K, 0x00 || V, n + size)
//	K = MAC(K, 0x01 || newV)
//	V = newV
func (g *HashDRBG) Next(n int) ([]byte, error) {
	if g.closed {
		return nil, ErrClosed
	}
	if n < 1 {
		return nil, ErrInvalidRequest
	}

	d := g.h.Size()
	stream, err := ExtendedHash(g.h, g.k, prepend(0x00, g.v), n+d)
	if err != nil {
		return nil, err
	}

	out, newV := stream[:n:n], stream[n:]
	g.k = g.h.MAC(g.k, prepend(0x01, newV))
	g.v = newV
	return out, nil
}

// Close discards the register pair. Any further Next fails with ErrClosed.
func (g *HashDRBG) Close() {
	zero(g.k)
	zero(g.v)
	g.k, g.v = nil, nil
	g.closed = true
}

func zero(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
