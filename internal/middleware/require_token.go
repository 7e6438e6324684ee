package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ferdiebergado/entropykit/internal/pkg/message"
	"github.com/ferdiebergado/entropykit/internal/pkg/web"
	"github.com/ferdiebergado/entropykit/internal/platform/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

// RequireToken guards mutating routes with a bearer token verified by the
// signer.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearerToken(r)
			if err != nil {
				web.Fail(w, http.StatusUnauthorized, err, message.InvalidToken, nil)
				return
			}

			if _, err := signer.Verify(token); err != nil {
				web.Fail(w, http.StatusUnauthorized, ErrInvalidToken, message.InvalidToken, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("missing Bearer prefix")
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
