// Package sampler derives unbiased bounded integers and uniform collection
// samples from any generator.ByteGenerator by rejection sampling. Out-of-range
// candidates are discarded and redrawn rather than reduced modulo the bound,
// which would bias small values.
package sampler

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/ferdiebergado/entropykit/internal/generator"
)

var (
	// ErrInvalidBound is returned when a bound is not positive.
	ErrInvalidBound = errors.New("sampler: bound must be positive")
	// ErrInvalidRange is returned when a range has hi < lo.
	ErrInvalidRange = errors.New("sampler: range upper bound is below lower bound")
	// ErrEmptyCollection is returned when sampling from an empty collection.
	ErrEmptyCollection = errors.New("sampler: collection is empty")
)

// Bits draws ceil(nbits/8) bytes from gen and masks the high-order bits of
// the first byte so exactly nbits significant bits remain, big-endian.
func Bits(gen generator.ByteGenerator, nbits int) ([]byte, error) {
	if nbits < 1 {
		return nil, generator.ErrInvalidRequest
	}

	buf, err := gen.Next((nbits + 7) / 8)
	if err != nil {
		return nil, fmt.Errorf("draw %d bits: %w", nbits, err)
	}

	if rem := nbits % 8; rem != 0 {
		buf[0] &= byte(1<<rem) - 1
	}
	return buf, nil
}

// BoundedInt returns a uniformly distributed integer in [0, maxInclusive].
//
// The inclusive upper bound is deliberate and differs from the max-exclusive
// convention common elsewhere; InRange and Element build on it consistently.
// Candidates are drawn at the minimal bit width covering the bound, so the
// expected number of draws is below two for any bound.
func BoundedInt(gen generator.ByteGenerator, maxInclusive int64) (int64, error) {
	if maxInclusive <= 0 {
		return 0, ErrInvalidBound
	}

	nbits := bits.Len64(uint64(maxInclusive))
	for {
		buf, err := Bits(gen, nbits)
		if err != nil {
			return 0, err
		}

		var v uint64
		for _, b := range buf {
			v = v<<8 | uint64(b)
		}
		if v <= uint64(maxInclusive) {
			return int64(v), nil
		}
	}
}

// InRange returns a uniformly distributed integer in [lo, hi]. When lo == hi
// there is nothing to draw and lo is returned without consuming the generator.
func InRange(gen generator.ByteGenerator, lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, ErrInvalidRange
	}
	if hi == lo {
		return lo, nil
	}

	v, err := BoundedInt(gen, hi-lo)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// Element returns a uniformly chosen element of items.
func Element[T any](gen generator.ByteGenerator, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}
	if len(items) == 1 {
		return items[0], nil
	}

	i, err := BoundedInt(gen, int64(len(items)-1))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
