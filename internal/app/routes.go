package app

import (
	"net/http"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/middleware"
	"github.com/ferdiebergado/entropykit/internal/passphrase"
	"github.com/ferdiebergado/entropykit/internal/pkg/web"
	"github.com/ferdiebergado/entropykit/internal/random"
	"github.com/ferdiebergado/entropykit/internal/platform/router"
)

func mountRoutes(r router.Router, passphraseHandler *passphrase.Handler, randomHandler *random.Handler, providers *Providers, cfg *config.Config) {
	maxBodySize := cfg.Server.MaxBodyBytes
	validator := providers.Validator
	signer := providers.Signer

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		web.OK[struct{}](w, http.StatusOK, nil, nil)
	})

	r.Group("/api", func(gr router.Router) {
		gr.Post("/passphrase", passphraseHandler.Generate,
			middleware.DecodePayload[passphrase.GenerateRequest](maxBodySize),
			middleware.ValidateInput[passphrase.GenerateRequest](validator))
		gr.Post("/random/int", randomHandler.Int,
			middleware.DecodePayload[random.IntRequest](maxBodySize),
			middleware.ValidateInput[random.IntRequest](validator))
		gr.Get("/wordlists/{name}", passphraseHandler.ListInfo)
		gr.Put("/wordlists/{name}", passphraseHandler.ReplaceList,
			middleware.RequireToken(signer),
			middleware.DecodePayload[passphrase.ReplaceListRequest](maxBodySize),
			middleware.ValidateInput[passphrase.ReplaceListRequest](validator))
	})
}
