package generator_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ferdiebergado/entropykit/internal/generator"
)

var xofConstructors = []struct {
	name string
	ctor func(seed, salt []byte) (generator.ByteGenerator, error)
}{
	{"blake2xs", generator.NewBlake2XsGenerator},
	{"blake3", generator.NewBlake3Generator},
	{"kmac", generator.NewKMACGenerator},
}

func TestXOFGenerators_Deterministic(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x5A}, 32)

	for _, tc := range xofConstructors {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			one, err := tc.ctor(seed, nil)
			if err != nil {
				t.Fatal(err)
			}
			two, err := tc.ctor(seed, nil)
			if err != nil {
				t.Fatal(err)
			}

			a, err := one.Next(64)
			if err != nil {
				t.Fatal(err)
			}
			b, err := two.Next(64)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Error("identically seeded xof instances diverged")
			}

			// Successive requests must keep advancing the absorbed state.
			c, err := one.Next(64)
			if err != nil {
				t.Fatal(err)
			}
			if bytes.Equal(a, c) {
				t.Error("successive requests returned identical output")
			}
		})
	}
}

func TestXOFGenerators_DomainSeparation(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x5A}, 32)

	outputs := make(map[string][]byte, len(xofConstructors))
	for _, tc := range xofConstructors {
		g, err := tc.ctor(seed, nil)
		if err != nil {
			t.Fatal(err)
		}
		out, err := g.Next(32)
		if err != nil {
			t.Fatal(err)
		}
		outputs[tc.name] = out
	}

	for _, a := range xofConstructors {
		for _, b := range xofConstructors {
			if a.name < b.name && bytes.Equal(outputs[a.name], outputs[b.name]) {
				t.Errorf("%s and %s produced identical output for the same seed", a.name, b.name)
			}
		}
	}
}

func TestXOFGenerators_SeedTooWeak(t *testing.T) {
	t.Parallel()
	for _, tc := range xofConstructors {
		if _, err := tc.ctor([]byte("short"), nil); !errors.Is(err, generator.ErrSeedTooWeak) {
			t.Errorf("%s short seed error = %v, want: %v", tc.name, err, generator.ErrSeedTooWeak)
		}
	}
}

func TestXOFGenerators_InvalidRequest(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x5A}, 32)
	for _, tc := range xofConstructors {
		g, err := tc.ctor(seed, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := g.Next(0); !errors.Is(err, generator.ErrInvalidRequest) {
			t.Errorf("%s Next(0) error = %v, want: %v", tc.name, err, generator.ErrInvalidRequest)
		}
	}
}

// BLAKE2Xs with unknown output length has a hard 65535-byte output limit.
func TestBlake2XsGenerator_EntropyExhausted(t *testing.T) {
	t.Parallel()
	g, err := generator.NewBlake2XsGenerator(bytes.Repeat([]byte{0x5A}, 32), nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := g.Next(65536); !errors.Is(err, generator.ErrEntropyExhausted) {
		t.Errorf("oversized read error = %v, want: %v", err, generator.ErrEntropyExhausted)
	}
}

func TestXOFGenerators_LongSeedCompression(t *testing.T) {
	t.Parallel()
	longSeed := bytes.Repeat([]byte{0xC3}, 200)

	for _, tc := range xofConstructors {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			one, err := tc.ctor(longSeed, nil)
			if err != nil {
				t.Fatalf("long seed rejected: %v", err)
			}
			two, err := tc.ctor(longSeed, nil)
			if err != nil {
				t.Fatal(err)
			}

			a, err := one.Next(32)
			if err != nil {
				t.Fatal(err)
			}
			b, err := two.Next(32)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Error("long-seed output is not deterministic")
			}
		})
	}
}
