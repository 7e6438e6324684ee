package passphrase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/generator"
	"github.com/ferdiebergado/entropykit/internal/sampler"
)

// GenerateParams selects how a passphrase is assembled. Zero values fall back
// to the configured defaults.
type GenerateParams struct {
	Words     int
	Separator string
	List      string
}

// Passphrase is an assembled passphrase with its entropy estimate in bits,
// computed as words * log2(list size).
type Passphrase struct {
	Phrase  string
	Words   int
	List    string
	Entropy float64
}

type Service struct {
	repo Repository
	cfg  *config.Passphrase
}

func NewService(repo Repository, cfg *config.Passphrase) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Generate draws params.Words uniform samples from the wordlist and joins
// them. The generator is consumed; deterministic backends reproduce the same
// passphrase for the same seed, salt, and params.
func (s *Service) Generate(ctx context.Context, gen generator.ByteGenerator, params GenerateParams) (Passphrase, error) {
	params = s.withDefaults(params)
	if params.Words < 1 || params.Words > s.cfg.MaxWords {
		return Passphrase{}, fmt.Errorf("%w: %d outside [1, %d]", ErrWordCount, params.Words, s.cfg.MaxWords)
	}

	words, err := s.repo.Words(ctx, params.List)
	if err != nil {
		return Passphrase{}, fmt.Errorf("load wordlist %q: %w", params.List, err)
	}
	if len(words) < minListSize {
		return Passphrase{}, ErrListTooSmall
	}

	picked := make([]string, 0, params.Words)
	for range params.Words {
		w, err := sampler.Element(gen, words)
		if err != nil {
			return Passphrase{}, fmt.Errorf("sample word: %w", err)
		}
		picked = append(picked, w)
	}

	return Passphrase{
		Phrase:  strings.Join(picked, params.Separator),
		Words:   params.Words,
		List:    params.List,
		Entropy: float64(params.Words) * math.Log2(float64(len(words))),
	}, nil
}

// ReplaceList swaps the stored words of a list, rejecting lists too small to
// sample from.
func (s *Service) ReplaceList(ctx context.Context, list string, words []string) error {
	if len(words) < minListSize {
		return ErrListTooSmall
	}
	if err := s.repo.ReplaceList(ctx, list, words); err != nil {
		return fmt.Errorf("replace wordlist %q: %w", list, err)
	}
	return nil
}

// Info reports the stored metadata of a list.
func (s *Service) Info(ctx context.Context, list string) (ListInfo, error) {
	info, err := s.repo.Info(ctx, list)
	if err != nil {
		return ListInfo{}, fmt.Errorf("wordlist info %q: %w", list, err)
	}
	return info, nil
}

func (s *Service) withDefaults(params GenerateParams) GenerateParams {
	if params.Words == 0 {
		params.Words = s.cfg.DefaultWords
	}
	if params.Separator == "" {
		params.Separator = s.cfg.DefaultSeparator
	}
	if params.List == "" {
		params.List = s.cfg.DefaultList
	}
	return params
}
