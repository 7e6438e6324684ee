// Package passphrase assembles diceware-style passphrases by drawing words
// uniformly from a wordlist through the rejection sampler, over any
// generator backend.
package passphrase

import (
	"context"
	"errors"
)

var (
	ErrListNotFound = errors.New("passphrase: wordlist not found")
	ErrListTooSmall = errors.New("passphrase: wordlist has too few words")
	ErrWordCount    = errors.New("passphrase: word count out of range")
	ErrQueryFailed  = errors.New("passphrase: query failed")
)

// minListSize guards against lists too small to give a passphrase any
// meaningful entropy.
const minListSize = 2

// ListInfo describes a stored wordlist.
type ListInfo struct {
	Name      string
	WordCount int
}

// Repository stores named wordlists.
type Repository interface {
	Words(ctx context.Context, list string) ([]string, error)
	ReplaceList(ctx context.Context, list string, words []string) error
	Info(ctx context.Context, list string) (ListInfo, error)
}
