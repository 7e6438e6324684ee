// Package generator provides stateful sources of cryptographic pseudo-random
// bytes behind a single ByteGenerator contract, with interchangeable backends:
// the platform secure RNG, an AES-OFB stream cipher, three extendable-output
// functions (BLAKE2Xs, BLAKE3, KMAC), a keyed-hash DRBG, and an SP800-90A
// HMAC_DRBG over a single-use entropy source.
//
// Hash-based and cipher-based backends are fully deterministic for a fixed
// (seed, salt) pair. The system backend is not and must never be used where
// reproducibility matters.
package generator

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ByteGenerator produces sequential pseudo-random byte blocks on demand.
//
// A generator owns its internal secret material exclusively. Every call to
// Next advances that state irreversibly; there is no peek or rewind. One
// instance must only ever serve one caller at a time (see Serialized for a
// channel-guarded wrapper).
type ByteGenerator interface {
	// Next returns exactly n fresh bytes, n >= 1. No two calls on the same
	// instance observe overlapping output.
	Next(n int) ([]byte, error)
}

var (
	// ErrInvalidRequest is returned when a non-positive output length is requested.
	ErrInvalidRequest = errors.New("generator: requested length must be positive")
	// ErrSeedTooWeak is returned when a seed is shorter than the backend minimum.
	ErrSeedTooWeak = errors.New("generator: seed is shorter than the backend minimum")
	// ErrEntropyExhausted is returned when a fixed-entropy backend cannot
	// satisfy the request.
	ErrEntropyExhausted = errors.New("generator: entropy exhausted")
	// ErrEntropySourceReused is returned when a single-use entropy source is
	// attached to a second consumer.
	ErrEntropySourceReused = errors.New("generator: entropy source already used")
	// ErrClosed is returned by operations on a terminated generator.
	ErrClosed = errors.New("generator: closed")
	// ErrUnknownBackend is returned by New for an unrecognized backend name.
	ErrUnknownBackend = errors.New("generator: unknown backend")
)

// DefaultSalt is substituted when no salt is supplied so that deterministic
// output is still well-defined. It is public by design; the salt provides
// domain separation, not secrecy.
var DefaultSalt = []byte("entropykit.v1")

// MinSeedLen is the minimum seed length accepted by the deterministic
// backends. The SP800 backend requires MinSeedLenSP800.
const (
	MinSeedLen      = 16
	MinSeedLenSP800 = 32
)

// Backend names a ByteGenerator construction.
type Backend string

const (
	BackendSystem       Backend = "system"
	BackendStreamCipher Backend = "stream-cipher"
	BackendBlake2Xs     Backend = "xof-blake2xs"
	BackendBlake3       Backend = "xof-blake3"
	BackendKMAC         Backend = "xof-kmac"
	BackendSP800        Backend = "sp800-drbg"
	BackendHashDRBG     Backend = "hash-drbg"
)

// Backends lists every supported backend name.
func Backends() []Backend {
	return []Backend{
		BackendSystem,
		BackendStreamCipher,
		BackendBlake2Xs,
		BackendBlake3,
		BackendKMAC,
		BackendSP800,
		BackendHashDRBG,
	}
}

// New constructs the named backend. Seed is ignored by the system backend and
// required by every other one; a nil or empty salt selects DefaultSalt.
func New(backend Backend, seed, salt []byte) (ByteGenerator, error) {
	switch backend {
	case BackendSystem:
		return NewSystemGenerator(), nil
	case BackendStreamCipher:
		return NewStreamCipherGenerator(seed, salt)
	case BackendBlake2Xs:
		return NewBlake2XsGenerator(seed, salt)
	case BackendBlake3:
		return NewBlake3Generator(seed, salt)
	case BackendKMAC:
		return NewKMACGenerator(seed, salt)
	case BackendSP800:
		return NewSP800Generator(NewFixedEntropySource(seed), salt)
	case BackendHashDRBG:
		return NewHashDRBG(Blake2b256(), seed, salt)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// NewFromHex builds the named backend from hex-encoded seed and salt strings,
// as received from API payloads and CLI flags.
func NewFromHex(backend Backend, seedHex, saltHex string) (ByteGenerator, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("generator: decode seed: %w", err)
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return nil, fmt.Errorf("generator: decode salt: %w", err)
	}
	return New(backend, seed, salt)
}

func saltOrDefault(salt []byte) []byte {
	if len(salt) == 0 {
		return DefaultSalt
	}
	return salt
}
