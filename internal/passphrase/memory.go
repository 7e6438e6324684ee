package passphrase

import (
	"context"
	_ "embed"
	"strings"
	"sync"
)

//go:embed wordlist.txt
var defaultWordlist string

// DefaultListName is the embedded wordlist shipped with the binary, used when
// no database is configured.
const DefaultListName = "default"

// MemoryRepository keeps wordlists in memory, pre-loaded with the embedded
// default list. It backs the CLI and database-less deployments.
type MemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]string
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		lists: map[string][]string{DefaultListName: DefaultWords()},
	}
}

// DefaultWords returns the embedded wordlist.
func DefaultWords() []string {
	return strings.Fields(defaultWordlist)
}

func (r *MemoryRepository) Words(_ context.Context, list string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	words, ok := r.lists[list]
	if !ok {
		return nil, ErrListNotFound
	}
	out := make([]string, len(words))
	copy(out, words)
	return out, nil
}

func (r *MemoryRepository) ReplaceList(_ context.Context, list string, words []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]string, len(words))
	copy(stored, words)
	r.lists[list] = stored
	return nil
}

func (r *MemoryRepository) Info(_ context.Context, list string) (ListInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	words, ok := r.lists[list]
	if !ok {
		return ListInfo{}, ErrListNotFound
	}
	return ListInfo{Name: list, WordCount: len(words)}, nil
}
