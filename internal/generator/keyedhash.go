package generator

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
)

// KeyedHash wraps one concrete keyed hash or MAC function family. It reports
// its native digest size and maximum key capacity, which drive block sizing
// and key derivation in the constructions built on top of it.
type KeyedHash interface {
	// Name identifies the function family.
	Name() string
	// Size is the native digest size in bytes.
	Size() int
	// KeySize is the maximum key capacity in bytes.
	KeySize() int
	// MAC computes the keyed digest of msg. A nil key selects the unkeyed
	// variant of the function.
	MAC(key, msg []byte) []byte
}

// CompressKey reduces an oversized key to the primitive's native key capacity
// by hashing it down with the unkeyed variant, recursively. Keys within
// capacity pass through unchanged. Every keyed construction in this package
// applies this same rule so that backends never diverge on long seeds.
func CompressKey(h KeyedHash, key []byte) []byte {
	for len(key) > h.KeySize() {
		key = h.MAC(nil, key)
	}
	return key
}

type blake2b256 struct{}

// Blake2b256 returns the default keyed-hash primitive: BLAKE2b with a 32-byte
// digest and the full 64-byte BLAKE2b key capacity.
func Blake2b256() KeyedHash { return blake2b256{} }

func (blake2b256) Name() string { return "blake2b-256" }
func (blake2b256) Size() int    { return blake2b.Size256 }
func (blake2b256) KeySize() int { return 64 }

func (blake2b256) MAC(key, msg []byte) []byte {
	h, err := blake2b.New256(key)
	if err != nil {
		// Only an oversized key can fail here and CompressKey prevents that.
		panic("generator: blake2b key: " + err.Error())
	}
	h.Write(msg)
	return h.Sum(nil)
}

type hmacSHA256 struct{}

// HMACSHA256 returns an HMAC-SHA-256 keyed-hash primitive with the SHA-256
// block size as its key capacity.
func HMACSHA256() KeyedHash { return hmacSHA256{} }

func (hmacSHA256) Name() string { return "hmac-sha256" }
func (hmacSHA256) Size() int    { return sha256.Size }
func (hmacSHA256) KeySize() int { return sha256.BlockSize }

func (hmacSHA256) MAC(key, msg []byte) []byte {
	if key == nil {
		sum := sha256.Sum256(msg)
		return sum[:]
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
