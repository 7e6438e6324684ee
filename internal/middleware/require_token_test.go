package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/middleware"
	"github.com/ferdiebergado/entropykit/internal/platform/jwt"
	timex "github.com/ferdiebergado/entropykit/internal/pkg/time"
)

func testSigner(key string) jwt.Signer {
	return jwt.NewGolangJWTSigner(&config.JWT{
		JTILength: 16,
		Issuer:    "test",
		TTL:       timex.Duration{Duration: time.Minute},
	}, key)
}

func TestMiddleware_RequireToken(t *testing.T) {
	t.Parallel()

	signer := testSigner("test-key")
	token, err := signer.Sign("admin")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	otherToken, err := testSigner("other-key").Sign("admin")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	tests := []struct {
		name, header string
		wantCode     int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"missing prefix", token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"wrong key", "Bearer " + otherToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPut, "/test", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			middleware.RequireToken(signer)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}
		})
	}
}
