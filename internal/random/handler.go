// Package random exposes the rejection sampler over HTTP for callers that
// need unbiased integers rather than passphrases.
package random

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/generator"
	"github.com/ferdiebergado/entropykit/internal/pkg/message"
	"github.com/ferdiebergado/entropykit/internal/pkg/web"
	"github.com/ferdiebergado/entropykit/internal/sampler"
)

// IntRequest is the payload for POST /api/random/int. The bounds are
// inclusive on both ends.
type IntRequest struct {
	Min     int64  `json:"min"`
	Max     int64  `json:"max" validate:"required"`
	Count   int    `json:"count,omitempty" validate:"omitempty,gte=1,lte=1024"`
	Backend string `json:"backend,omitempty" validate:"omitempty,oneof=system stream-cipher xof-blake2xs xof-blake3 xof-kmac sp800-drbg hash-drbg"`
	Seed    string `json:"seed,omitempty" validate:"omitempty,hexadecimal"`
	Salt    string `json:"salt,omitempty" validate:"omitempty,hexadecimal"`
}

type IntResponse struct {
	Values []int64 `json:"values"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
}

type Handler struct {
	cfg *config.Generator
}

func NewHandler(cfg *config.Generator) *Handler {
	return &Handler{cfg: cfg}
}

// Int draws one or more uniform integers in [min, max].
func (h *Handler) Int(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[IntRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	backend := req.Backend
	if backend == "" {
		backend = h.cfg.Backend
	}
	gen, err := generator.NewFromHex(generator.Backend(backend), req.Seed, req.Salt)
	if err != nil {
		msg := message.InvalidInput
		if errors.Is(err, generator.ErrUnknownBackend) {
			msg = message.UnknownBackend
		}
		web.Fail(w, http.StatusBadRequest, err, msg, nil)
		return
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	values := make([]int64, 0, count)
	for range count {
		v, err := sampler.InRange(gen, req.Min, req.Max)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, sampler.ErrInvalidRange) || errors.Is(err, sampler.ErrInvalidBound) ||
				errors.Is(err, generator.ErrEntropyExhausted) {
				status = http.StatusBadRequest
			}
			web.Fail(w, status, err, message.InvalidInput, nil)
			return
		}
		values = append(values, v)
	}

	payload := &IntResponse{Values: values, Min: req.Min, Max: req.Max}
	web.OK(w, http.StatusOK, nil, payload)
}
