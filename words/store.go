// Package words holds the vocabulary of a puzzle: the possible secrets
// followed by the extra words that are only allowed as guesses.
package words

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/bent101/wordle-turns/hint"
)

var (
	ErrEmpty      = errors.New("words: no secrets")
	ErrWordLength = errors.New("words: wrong word length")
	ErrNotLetters = errors.New("words: word must be lowercase a-z")
	ErrTooMany    = errors.New("words: vocabulary too large")
)

// Index identifies a word within a Store.
type Index uint16

// MaxWords is the largest vocabulary an Index can address.
const MaxWords = math.MaxUint16

// Store is an immutable, ordered vocabulary. Indices [0, SecretCount) are
// secrets; every index in [0, Len) is a legal guess.
type Store struct {
	words       []string
	secretCount int
	lookup      map[string]Index
}

// NewStore builds a Store from the secret list and the guess list. Secrets
// come first, and guesses that are not secrets follow in input order.
// Duplicates keep their first position.
func NewStore(secrets, guesses []string) (*Store, error) {
	secrets = lo.Uniq(lo.Map(secrets, normalize))
	guesses = lo.Map(guesses, normalize)

	if len(secrets) == 0 {
		return nil, ErrEmpty
	}

	all := lo.Uniq(append(append([]string{}, secrets...), guesses...))
	if len(all) > MaxWords {
		return nil, fmt.Errorf("%w: %d words", ErrTooMany, len(all))
	}

	s := &Store{
		words:       all,
		secretCount: len(secrets),
		lookup:      make(map[string]Index, len(all)),
	}
	for i, w := range all {
		if err := validate(w); err != nil {
			return nil, err
		}
		s.lookup[w] = Index(i)
	}
	return s, nil
}

func normalize(w string, _ int) string {
	return strings.ToLower(strings.TrimSpace(w))
}

func validate(w string) error {
	if len(w) != hint.Length {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrWordLength, w, len(w), hint.Length)
	}
	for i := range len(w) {
		if w[i] < 'a' || w[i] > 'z' {
			return fmt.Errorf("%w: %q", ErrNotLetters, w)
		}
	}
	return nil
}

// Len is the number of legal guesses.
func (s *Store) Len() int {
	return len(s.words)
}

// SecretCount is the number of possible secrets.
func (s *Store) SecretCount() int {
	return s.secretCount
}

// Word returns the word at idx. It panics if idx is out of range.
func (s *Store) Word(idx Index) string {
	return s.words[idx]
}

func (s *Store) Lookup(word string) (Index, bool) {
	idx, ok := s.lookup[normalize(word, 0)]
	return idx, ok
}

// IsSecret reports whether idx is a possible secret.
func (s *Store) IsSecret(idx Index) bool {
	return int(idx) < s.secretCount
}

// Less orders indices by their words. Every tie-break uses it.
func (s *Store) Less(a, b Index) bool {
	return s.words[a] < s.words[b]
}

// Compare is Less as a three-way comparison for slices.SortFunc.
func (s *Store) Compare(a, b Index) int {
	return strings.Compare(s.words[a], s.words[b])
}

// Words returns the given indices as strings.
func (s *Store) Words(idxs []Index) []string {
	return lo.Map(idxs, func(idx Index, _ int) string {
		return s.words[idx]
	})
}
