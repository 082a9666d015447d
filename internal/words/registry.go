// Package words supplies random start and target words and the letter
// helpers shared by the rest of the ladder.
package words

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Registry holds candidate words grouped by length.
type Registry struct {
	byLength map[int][]string
	total    int
}

// NewRegistry creates a registry from a word list. Entries that are not
// made of letters are skipped; the rest are upper-cased.
func NewRegistry(list []string) *Registry {
	r := &Registry{byLength: make(map[int][]string)}
	for _, w := range list {
		w = strings.TrimSpace(w)
		if !IsLetters(w) {
			continue
		}
		r.byLength[len(w)] = append(r.byLength[len(w)], Normalize(w))
		r.total++
	}
	return r
}

// LoadRegistry creates a registry from the embedded word list.
func LoadRegistry() (*Registry, error) {
	r := NewRegistry(strings.Split(wordList, "\n"))
	if r.Count() == 0 {
		return nil, errors.New("no words loaded from wordlist.txt")
	}
	return r, nil
}

// MustLoadRegistry loads the embedded registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Random picks a word of the given length uniformly, or returns false when
// the registry has none.
func (r *Registry) Random(rng *rand.Rand, length int) (string, bool) {
	candidates := r.byLength[length]
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// Count returns the number of words in the registry.
func (r *Registry) Count() int {
	return r.total
}

// Supplier produces a random word of a requested length.
type Supplier interface {
	Word(length int) (string, error)
}

// RandomSupplier draws words from a Registry with its own generator.
type RandomSupplier struct {
	registry *Registry
	rng      *rand.Rand
}

// NewSupplier binds registry to rng.
func NewSupplier(registry *Registry, rng *rand.Rand) *RandomSupplier {
	return &RandomSupplier{registry: registry, rng: rng}
}

// Word implements Supplier.
func (s *RandomSupplier) Word(length int) (string, error) {
	w, ok := s.registry.Random(s.rng, length)
	if !ok {
		return "", fmt.Errorf("no %d-letter words available", length)
	}
	return w, nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
