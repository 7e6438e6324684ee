package generator

// ExtendedHash expands a keyed hash of fixed digest size into output of any
// requested length by chaining the primitive over the digest:
//
//	H0 = MAC(key, 0x00 || msg)
//	Hi = MAC(key, 0x00 || H(i-1))
//
// The blocks are concatenated and truncated to length. Oversized keys are
// first compressed to the primitive's native capacity (CompressKey), the same
// rule applied by every keyed backend.
func ExtendedHash(h KeyedHash, key, msg []byte, length int) ([]byte, error) {
	if length < 1 {
		return nil, ErrInvalidRequest
	}

	key = CompressKey(h, key)
	d := h.Size()
	blocks := (length + d - 1) / d

	out := make([]byte, 0, blocks*d)
	block := h.MAC(key, prepend(0x00, msg))
	out = append(out, block...)
	for i := 1; i < blocks; i++ {
		block = h.MAC(key, prepend(0x00, block))
		out = append(out, block...)
	}
	return out[:length], nil
}

// prepend returns b || p without mutating p.
func prepend(b byte, p []byte) []byte {
	buf := make([]byte, 1+len(p))
	buf[0] = b
	copy(buf[1:], p)
	return buf
}
