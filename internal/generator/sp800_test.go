package generator_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ferdiebergado/entropykit/internal/generator"
)

func TestSP800Generator_Deterministic(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x11}, 32)

	one, err := generator.NewSP800Generator(generator.NewFixedEntropySource(seed), nil)
	if err != nil {
		t.Fatal(err)
	}
	two, err := generator.NewSP800Generator(generator.NewFixedEntropySource(seed), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{1, 32, 33, 100} {
		a, err := one.Next(n)
		if err != nil {
			t.Fatal(err)
		}
		b, err := two.Next(n)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("Next(%d) diverged between identically seeded instances", n)
		}
	}
}

func TestSP800Generator_EntropySourceReused(t *testing.T) {
	t.Parallel()
	src := generator.NewFixedEntropySource(bytes.Repeat([]byte{0x11}, 64))

	if _, err := generator.NewSP800Generator(src, nil); err != nil {
		t.Fatalf("first construction: %v", err)
	}
	if _, err := generator.NewSP800Generator(src, nil); !errors.Is(err, generator.ErrEntropySourceReused) {
		t.Errorf("second construction error = %v, want: %v", err, generator.ErrEntropySourceReused)
	}
}

func TestSP800Generator_SeedTooWeak(t *testing.T) {
	t.Parallel()
	src := generator.NewFixedEntropySource(bytes.Repeat([]byte{0x11}, 16))
	if _, err := generator.NewSP800Generator(src, nil); !errors.Is(err, generator.ErrSeedTooWeak) {
		t.Errorf("error = %v, want: %v", err, generator.ErrSeedTooWeak)
	}
}

func TestSP800Generator_SaltSeparation(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x11}, 32)

	def, err := generator.NewSP800Generator(generator.NewFixedEntropySource(seed), nil)
	if err != nil {
		t.Fatal(err)
	}
	salted, err := generator.NewSP800Generator(generator.NewFixedEntropySource(seed), []byte("personalized"))
	if err != nil {
		t.Fatal(err)
	}

	a, err := def.Next(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := salted.Next(32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("different personalization strings produced identical output")
	}
}

func TestSP800Generator_InvalidRequest(t *testing.T) {
	t.Parallel()
	g, err := generator.NewSP800Generator(generator.NewFixedEntropySource(bytes.Repeat([]byte{0x11}, 32)), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{0, -1} {
		if _, err := g.Next(n); !errors.Is(err, generator.ErrInvalidRequest) {
			t.Errorf("Next(%d) error = %v, want: %v", n, err, generator.ErrInvalidRequest)
		}
	}
}

func TestSP800Generator_LargeRequestChunked(t *testing.T) {
	t.Parallel()
	g, err := generator.NewSP800Generator(generator.NewFixedEntropySource(bytes.Repeat([]byte{0x11}, 32)), nil)
	if err != nil {
		t.Fatal(err)
	}

	const n = 1<<16 + 100 // crosses the per-request generate cap
	out, err := g.Next(n)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != n {
		t.Errorf("len(out) = %d, want: %d", len(out), n)
	}
}
