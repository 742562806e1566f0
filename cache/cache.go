// Package cache precomputes, for every guess and secret in a vocabulary, the
// hint the pair produces and the set of secrets sharing each hint.
//
// A Cache is immutable once Build returns and is safe for concurrent use.
package cache

import (
	"errors"
	"fmt"
	"iter"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/hint"
	"github.com/bent101/wordle-turns/words"
)

// ErrNoCandidates means no secret is consistent with the observed feedback.
var ErrNoCandidates = errors.New("cache: no secret matches the feedback")

type Options struct {
	// Parallelism bounds the number of guesses processed at once. Zero means
	// GOMAXPROCS.
	Parallelism int
	// Progress shows a progress bar per pass.
	Progress bool
}

type Cache struct {
	store *words.Store
	all   *bitvec.Bitvec

	// [guess][secret]
	hints [][]hint.Hint
	// [guess][hint], nil for hints no secret produces
	solutions [][hint.Count]*bitvec.Bitvec
	// [guess][secret], shares the vectors in solutions
	bySecret [][]*bitvec.Bitvec
}

// Build computes all three tables. Each pass fans out by guess, and every
// worker writes only its own guess's row.
func Build(store *words.Store, opts Options) *Cache {
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}

	numGuesses := store.Len()
	numSecrets := store.SecretCount()

	c := &Cache{
		store:     store,
		all:       bitvec.Full(numSecrets),
		hints:     make([][]hint.Hint, numGuesses),
		solutions: make([][hint.Count]*bitvec.Bitvec, numGuesses),
		bySecret:  make([][]*bitvec.Bitvec, numGuesses),
	}

	start := time.Now()

	c.forEachGuess(opts, "hints", func(g int) {
		guess := store.Word(words.Index(g))
		row := make([]hint.Hint, numSecrets)
		for s := range numSecrets {
			row[s] = hint.Compute(guess, store.Word(words.Index(s)))
		}
		c.hints[g] = row
	})

	c.forEachGuess(opts, "buckets", func(g int) {
		buckets := &c.solutions[g]
		for s, h := range c.hints[g] {
			if buckets[h] == nil {
				buckets[h] = bitvec.New(numSecrets)
			}
			buckets[h].Set(s)
		}
	})

	c.forEachGuess(opts, "lookup", func(g int) {
		row := make([]*bitvec.Bitvec, numSecrets)
		for s, h := range c.hints[g] {
			row[s] = c.solutions[g][h]
		}
		c.bySecret[g] = row
	})

	log.Info().
		Int("guesses", numGuesses).
		Int("secrets", numSecrets).
		Dur("elapsed", time.Since(start)).
		Msg("cache-built")

	return c
}

func (c *Cache) forEachGuess(opts Options, pass string, fn func(g int)) {
	n := c.store.Len()
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(n), pass)
	} else {
		bar = progressbar.DefaultSilent(int64(n), pass)
	}

	passStart := time.Now()

	var eg errgroup.Group
	eg.SetLimit(opts.Parallelism)
	for g := range n {
		eg.Go(func() error {
			fn(g)
			bar.Add(1)
			return nil
		})
	}
	eg.Wait()
	bar.Finish()

	log.Debug().Str("pass", pass).Dur("elapsed", time.Since(passStart)).Msg("cache-pass")
}

func (c *Cache) Store() *words.Store {
	return c.store
}

// All is the set of every secret. Callers must not modify it.
func (c *Cache) All() *bitvec.Bitvec {
	return c.all
}

// Hint is the hint guess g produces against secret s.
func (c *Cache) Hint(g, s words.Index) hint.Hint {
	return c.hints[g][s]
}

// Solutions is the set of secrets producing h against g, or nil when there are
// none.
func (c *Cache) Solutions(g words.Index, h hint.Hint) *bitvec.Bitvec {
	if h >= hint.Count {
		return nil
	}
	return c.solutions[g][h]
}

// SolutionsFor is Solutions(g, Hint(g, s)) without the second lookup.
func (c *Cache) SolutionsFor(g, s words.Index) *bitvec.Bitvec {
	return c.bySecret[g][s]
}

// Buckets iterates the non-empty hint buckets of g in hint order.
func (c *Cache) Buckets(g words.Index) iter.Seq2[hint.Hint, *bitvec.Bitvec] {
	return func(yield func(hint.Hint, *bitvec.Bitvec) bool) {
		row := &c.solutions[g]
		for h, bv := range row {
			if bv == nil {
				continue
			}
			if !yield(hint.Hint(h), bv) {
				return
			}
		}
	}
}

// Narrow keeps the candidates that would have produced observed against g.
func (c *Cache) Narrow(cands *bitvec.Bitvec, g words.Index, observed hint.Hint) (*bitvec.Bitvec, error) {
	if observed >= hint.Count {
		return nil, fmt.Errorf("%w: %d", hint.ErrInvalid, observed)
	}
	bucket := c.solutions[g][observed]
	if bucket == nil {
		return nil, fmt.Errorf("%w: %s on %s", ErrNoCandidates, observed, c.store.Word(g))
	}
	next := cands.And(bucket)
	if next.Count == 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrNoCandidates, observed, c.store.Word(g))
	}
	return next, nil
}
