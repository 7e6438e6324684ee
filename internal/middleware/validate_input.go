package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/entropykit/internal/pkg/message"
	"github.com/ferdiebergado/entropykit/internal/pkg/web"
	"github.com/ferdiebergado/entropykit/internal/platform/validation"
)

var errInvalidInput = errors.New("invalid input")

// ValidateInput validates the decoded payload of type T stored in the request
// context by DecodePayload.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.Fail(w, http.StatusBadRequest, errInvalidInput, message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
