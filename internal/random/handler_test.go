package random_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/pkg/web"
	"github.com/ferdiebergado/entropykit/internal/random"
)

func doInt(t *testing.T, payload random.IntRequest) *http.Response {
	t.Helper()

	h := random.NewHandler(&config.Generator{Backend: "system"})

	req := httptest.NewRequest(http.MethodPost, "/api/random/int", http.NoBody)
	req = req.WithContext(web.NewContextWithParams(req.Context(), payload))
	rec := httptest.NewRecorder()

	h.Int(rec, req)

	res := rec.Result()
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestHandler_Int(t *testing.T) {
	t.Parallel()

	res := doInt(t, random.IntRequest{Min: 1, Max: 6, Count: 10})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
	}
	web.AssertContentType(t, res)

	var okRes web.OKResponse[*random.IntResponse]
	if err := json.NewDecoder(res.Body).Decode(&okRes); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got := len(okRes.Data.Values); got != 10 {
		t.Fatalf("len(data.Values) = %d, want: 10", got)
	}
	for _, v := range okRes.Data.Values {
		if v < 1 || v > 6 {
			t.Errorf("value %d outside [1, 6]", v)
		}
	}
}

func TestHandler_Int_Deterministic(t *testing.T) {
	t.Parallel()

	payload := random.IntRequest{
		Min:     0,
		Max:     100,
		Count:   20,
		Backend: "stream-cipher",
		Seed:    strings.Repeat("ef", 32),
	}

	draw := func() []int64 {
		res := doInt(t, payload)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
		}

		var okRes web.OKResponse[*random.IntResponse]
		if err := json.NewDecoder(res.Body).Decode(&okRes); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return okRes.Data.Values
	}

	if first, second := draw(), draw(); !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different draws: %v vs %v", first, second)
	}
}

func TestHandler_Int_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		payload        random.IntRequest
		wantStatusCode int
	}{
		{"inverted range", random.IntRequest{Min: 10, Max: 1}, http.StatusBadRequest},
		{"weak seed", random.IntRequest{Min: 0, Max: 10, Backend: "hash-drbg", Seed: "abcd"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := doInt(t, tt.payload)
			if res.StatusCode != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatusCode)
			}
		})
	}
}
