package generator_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ferdiebergado/entropykit/internal/generator"
)

func TestExtendedHash_Length(t *testing.T) {
	t.Parallel()
	h := generator.Blake2b256()
	key := []byte("extended hash test key")
	msg := []byte("message")

	lengths := []int{1, 31, 32, 33, 64, 100, 1000}
	for _, length := range lengths {
		out, err := generator.ExtendedHash(h, key, msg, length)
		if err != nil {
			t.Fatalf("ExtendedHash length %d: %v", length, err)
		}
		if len(out) != length {
			t.Errorf("len(out) = %d, want: %d", len(out), length)
		}
	}
}

func TestExtendedHash_PrefixConsistency(t *testing.T) {
	t.Parallel()
	h := generator.Blake2b256()
	key := []byte("extended hash test key")
	msg := []byte("message")

	short, err := generator.ExtendedHash(h, key, msg, 40)
	if err != nil {
		t.Fatal(err)
	}
	long, err := generator.ExtendedHash(h, key, msg, 120)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(short, long[:40]) {
		t.Error("shorter output is not a prefix of the longer one")
	}
}

func TestExtendedHash_InvalidLength(t *testing.T) {
	t.Parallel()
	h := generator.Blake2b256()
	for _, length := range []int{0, -1} {
		if _, err := generator.ExtendedHash(h, []byte("k"), []byte("m"), length); !errors.Is(err, generator.ErrInvalidRequest) {
			t.Errorf("ExtendedHash(%d) error = %v, want: %v", length, err, generator.ErrInvalidRequest)
		}
	}
}

func TestExtendedHash_OversizedKeyCompression(t *testing.T) {
	t.Parallel()
	h := generator.Blake2b256()
	longKey := bytes.Repeat([]byte{0xAB}, 3*h.KeySize())
	compressed := generator.CompressKey(h, longKey)

	if len(compressed) > h.KeySize() {
		t.Fatalf("len(compressed) = %d, want at most: %d", len(compressed), h.KeySize())
	}

	fromLong, err := generator.ExtendedHash(h, longKey, []byte("m"), 64)
	if err != nil {
		t.Fatal(err)
	}
	fromCompressed, err := generator.ExtendedHash(h, compressed, []byte("m"), 64)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(fromLong, fromCompressed) {
		t.Error("oversized key and its compressed form produced different output")
	}
}

func TestKeyedHash_Primitives(t *testing.T) {
	t.Parallel()
	tests := []struct {
		h        generator.KeyedHash
		wantSize int
	}{
		{generator.Blake2b256(), 32},
		{generator.HMACSHA256(), 32},
	}

	for _, tc := range tests {
		t.Run(tc.h.Name(), func(t *testing.T) {
			t.Parallel()
			if got := tc.h.Size(); got != tc.wantSize {
				t.Errorf("Size() = %d, want: %d", got, tc.wantSize)
			}

			one := tc.h.MAC([]byte("key"), []byte("msg"))
			two := tc.h.MAC([]byte("key"), []byte("msg"))
			if !bytes.Equal(one, two) {
				t.Error("MAC is not deterministic")
			}
			if len(one) != tc.wantSize {
				t.Errorf("len(MAC) = %d, want: %d", len(one), tc.wantSize)
			}

			other := tc.h.MAC([]byte("other key"), []byte("msg"))
			if bytes.Equal(one, other) {
				t.Error("different keys produced identical MACs")
			}
		})
	}
}
