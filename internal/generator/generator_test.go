package generator_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ferdiebergado/entropykit/internal/generator"
)

func TestNew_AllBackends(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x99}, 32)

	for _, backend := range generator.Backends() {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()
			g, err := generator.New(backend, seed, nil)
			if err != nil {
				t.Fatalf("New(%q): %v", backend, err)
			}

			out, err := g.Next(24)
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != 24 {
				t.Errorf("len(out) = %d, want: 24", len(out))
			}
		})
	}
}

func TestNew_DeterministicBackendsReproduce(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x99}, 32)
	deterministic := []generator.Backend{
		generator.BackendStreamCipher,
		generator.BackendBlake2Xs,
		generator.BackendBlake3,
		generator.BackendKMAC,
		generator.BackendSP800,
		generator.BackendHashDRBG,
	}

	for _, backend := range deterministic {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()
			one, err := generator.New(backend, seed, nil)
			if err != nil {
				t.Fatal(err)
			}
			two, err := generator.New(backend, seed, nil)
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
				t.Error("identically seeded backends diverged")
			}
		})
	}
}

func TestNew_NilSaltMeansDefaultSalt(t *testing.T) {
	t.Parallel()
	seed := bytes.Repeat([]byte{0x99}, 32)

	implicit, err := generator.New(generator.BackendHashDRBG, seed, nil)
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := generator.New(generator.BackendHashDRBG, seed, generator.DefaultSalt)
	if err != nil {
		t.Fatal(err)
	}

	a, err := implicit.Next(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := explicit.Next(32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("nil salt and explicit default salt disagree")
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	t.Parallel()
	if _, err := generator.New("mersenne-twister", nil, nil); !errors.Is(err, generator.ErrUnknownBackend) {
		t.Errorf("New() error = %v, want: %v", err, generator.ErrUnknownBackend)
	}
}

func TestSystemGenerator(t *testing.T) {
	t.Parallel()
	g := generator.NewSystemGenerator()

	a, err := g.Next(32)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 32 {
		t.Errorf("len(out) = %d, want: 32", len(a))
	}

	b, err := g.Next(32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("two system draws returned identical output")
	}

	if _, err := g.Next(0); !errors.Is(err, generator.ErrInvalidRequest) {
		t.Errorf("Next(0) error = %v, want: %v", err, generator.ErrInvalidRequest)
	}
	if _, err := g.Next(-1); !errors.Is(err, generator.ErrInvalidRequest) {
		t.Errorf("Next(-1) error = %v, want: %v", err, generator.ErrInvalidRequest)
	}
}
