// Command passgen generates passphrases from the terminal. With the default
// system backend every run is fresh; with a deterministic backend and a fixed
// seed it reproduces the same passphrase on every platform.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/generator"
	"github.com/ferdiebergado/entropykit/internal/passphrase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "passgen:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		words     = flag.Int("words", 6, "number of words")
		separator = flag.String("separator", "-", "word separator")
		backend   = flag.String("backend", string(generator.BackendSystem), "generator backend: "+backendNames())
		seedHex   = flag.String("seed", "", "hex seed for deterministic backends")
		saltHex   = flag.String("salt", "", "hex salt (optional)")
		listFile  = flag.String("wordlist", "", "path to a wordlist file, one word per line (default: embedded list)")
		entropy   = flag.Bool("entropy", false, "print the entropy estimate")
	)
	flag.Parse()

	gen, err := generator.NewFromHex(generator.Backend(*backend), *seedHex, *saltHex)
	if err != nil {
		return err
	}

	repo := passphrase.NewMemoryRepository()
	list := passphrase.DefaultListName
	if *listFile != "" {
		fileWords, err := readWordlist(*listFile)
		if err != nil {
			return err
		}
		list = "custom"
		if err := repo.ReplaceList(context.Background(), list, fileWords); err != nil {
			return err
		}
	}

	svc := passphrase.NewService(repo, &config.Passphrase{
		DefaultList:      list,
		DefaultWords:     *words,
		MaxWords:         256,
		DefaultSeparator: *separator,
	})

	result, err := svc.Generate(context.Background(), gen, passphrase.GenerateParams{
		Words:     *words,
		Separator: *separator,
		List:      list,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Phrase)
	if *entropy {
		fmt.Fprintf(os.Stderr, "entropy: %.1f bits\n", result.Entropy)
	}
	return nil
}

func readWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return words, nil
}

func backendNames() string {
	names := make([]string, 0, len(generator.Backends()))
	for _, b := range generator.Backends() {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}
