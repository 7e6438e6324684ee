package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ferdiebergado/entropykit/internal/pkg/message"
	"github.com/ferdiebergado/entropykit/internal/pkg/web"
)

var errUnsupportedContentType = errors.New("unsupported content type")

// CheckContentType rejects payload-bearing requests that are not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get(web.HeaderContentType)
			if !strings.HasPrefix(contentType, web.MimeJSON) {
				web.Fail(w, http.StatusUnsupportedMediaType, errUnsupportedContentType, message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
