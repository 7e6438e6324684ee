package passphrase

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/generator"
	"github.com/ferdiebergado/entropykit/internal/pkg/message"
	"github.com/ferdiebergado/entropykit/internal/pkg/web"
)

// GenerateRequest is the payload for POST /api/passphrase. Backend, seed, and
// salt select a deterministic generator; all are optional and default to the
// configured backend (normally the system RNG).
type GenerateRequest struct {
	Words     int    `json:"words,omitempty" validate:"omitempty,gte=1,lte=64"`
	Separator string `json:"separator,omitempty" validate:"omitempty,max=8"`
	List      string `json:"list,omitempty" validate:"omitempty,max=64"`
	Backend   string `json:"backend,omitempty" validate:"omitempty,oneof=system stream-cipher xof-blake2xs xof-blake3 xof-kmac sp800-drbg hash-drbg"`
	Seed      string `json:"seed,omitempty" validate:"omitempty,hexadecimal"`
	Salt      string `json:"salt,omitempty" validate:"omitempty,hexadecimal"`
}

type GenerateResponse struct {
	Passphrase string  `json:"passphrase"`
	Words      int     `json:"words"`
	List       string  `json:"list"`
	Entropy    float64 `json:"entropy_bits"`
}

// ReplaceListRequest is the payload for PUT /api/wordlists/{name}.
type ReplaceListRequest struct {
	Words []string `json:"words" validate:"required,min=2,dive,required"`
}

type ListInfoResponse struct {
	Name      string `json:"name"`
	WordCount int    `json:"word_count"`
}

type Handler struct {
	svc *Service
	cfg *config.Generator
}

func NewHandler(svc *Service, cfg *config.Generator) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// Generate assembles a passphrase from the requested backend and wordlist.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[GenerateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	gen, err := h.newGenerator(req.Backend, req.Seed, req.Salt)
	if err != nil {
		status, msg := http.StatusBadRequest, message.InvalidInput
		switch {
		case errors.Is(err, generator.ErrUnknownBackend):
			msg = message.UnknownBackend
		case !isGeneratorParamError(err):
			status = http.StatusInternalServerError
		}
		web.Fail(w, status, err, msg, nil)
		return
	}

	result, err := h.svc.Generate(r.Context(), gen, GenerateParams{
		Words:     req.Words,
		Separator: req.Separator,
		List:      req.List,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := &GenerateResponse{
		Passphrase: result.Phrase,
		Words:      result.Words,
		List:       result.List,
		Entropy:    result.Entropy,
	}
	web.OK(w, http.StatusOK, nil, payload)
}

// ListInfo reports the word count of a stored list.
func (h *Handler) ListInfo(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	info, err := h.svc.Info(r.Context(), name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := &ListInfoResponse{Name: info.Name, WordCount: info.WordCount}
	web.OK(w, http.StatusOK, nil, payload)
}

// ReplaceList swaps the words of a stored list.
func (h *Handler) ReplaceList(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ReplaceListRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	name := r.PathValue("name")
	if err := h.svc.ReplaceList(r.Context(), name, req.Words); err != nil {
		respondServiceError(w, err)
		return
	}

	msg := message.ListReplaced
	web.OK[struct{}](w, http.StatusOK, &msg, nil)
}

func (h *Handler) newGenerator(backend, seedHex, saltHex string) (generator.ByteGenerator, error) {
	if backend == "" {
		backend = h.cfg.Backend
	}
	return generator.NewFromHex(generator.Backend(backend), seedHex, saltHex)
}

func isGeneratorParamError(err error) bool {
	return errors.Is(err, generator.ErrSeedTooWeak) ||
		errors.Is(err, generator.ErrEntropySourceReused) ||
		errors.Is(err, generator.ErrInvalidRequest)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrListNotFound):
		web.Fail(w, http.StatusNotFound, err, message.ListNotFound, nil)
	case errors.Is(err, ErrListTooSmall), errors.Is(err, ErrWordCount):
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
	case errors.Is(err, generator.ErrSeedTooWeak), errors.Is(err, generator.ErrEntropyExhausted):
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
	default:
		web.Fail(w, http.StatusInternalServerError, err, message.ServerError, nil)
	}
}
