package generator_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/ferdiebergado/entropykit/internal/generator"
)

func TestSerialized_ConcurrentCallers(t *testing.T) {
	t.Parallel()
	drbg, err := generator.NewHashDRBG(generator.Blake2b256(), bytes.Repeat([]byte{0x42}, 32), nil)
	if err != nil {
		t.Fatal(err)
	}
	s := generator.Serve(drbg)
	defer s.Close()

	const callers = 8
	const perCaller = 50

	var wg sync.WaitGroup
	results := make([][][]byte, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perCaller {
				out, err := s.Next(16)
				if err != nil {
					t.Errorf("Next: %v", err)
					return
				}
				results[i] = append(results[i], out)
			}
		}()
	}
	wg.Wait()

	// The service loop serializes requests, so every response is distinct.
	seen := make(map[string]bool, callers*perCaller)
	for _, outs := range results {
		for _, out := range outs {
			if len(out) != 16 {
				t.Fatalf("len(out) = %d, want: 16", len(out))
			}
			key := string(out)
			if seen[key] {
				t.Fatal("two requests returned identical output")
			}
			seen[key] = true
		}
	}
}

func TestSerialized_Close(t *testing.T) {
	t.Parallel()
	drbg, err := generator.NewHashDRBG(generator.Blake2b256(), bytes.Repeat([]byte{0x42}, 32), nil)
	if err != nil {
		t.Fatal(err)
	}
	s := generator.Serve(drbg)

	if _, err := s.Next(8); err != nil {
		t.Fatal(err)
	}

	s.Close()
	s.Close() // closing twice is a no-op

	if _, err := s.Next(8); !errors.Is(err, generator.ErrClosed) {
		t.Errorf("Next after Close error = %v, want: %v", err, generator.ErrClosed)
	}
}

func TestSerialized_ForwardsErrors(t *testing.T) {
	t.Parallel()
	s := generator.Serve(generator.NewSystemGenerator())
	defer s.Close()

	if _, err := s.Next(0); !errors.Is(err, generator.ErrInvalidRequest) {
		t.Errorf("Next(0) error = %v, want: %v", err, generator.ErrInvalidRequest)
	}
}
