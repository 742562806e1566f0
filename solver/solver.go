// Package solver chooses guesses using a precomputed cache.
//
// Three pieces cooperate. Rank scores every legal guess by how many candidates
// it leaves on average. MinimizeTurns searches the game tree below the best
// ranked guesses for the lowest expected number of turns. A Chain of Pickers
// decides which of them, or which cheaper heuristic, names the guess for a
// turn.
package solver

import (
	"errors"
	"slices"

	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/cache"
	"github.com/bent101/wordle-turns/words"
)

// ErrEmptyCandidates is returned when asked to choose among no candidates.
var ErrEmptyCandidates = errors.New("solver: empty candidate set")

type Solver struct {
	cache *cache.Cache
	store *words.Store
	cfg   Config
	chain Chain
}

// New returns a Solver using DefaultChain.
func New(c *cache.Cache, cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = DefaultConfig().Parallelism
	}
	return &Solver{
		cache: c,
		store: c.Store(),
		cfg:   cfg,
		chain: DefaultChain(),
	}, nil
}

// WithChain returns a copy of s that picks guesses with chain.
func (s *Solver) WithChain(chain Chain) *Solver {
	cp := *s
	cp.chain = chain
	return &cp
}

func (s *Solver) Cache() *cache.Cache {
	return s.cache
}

func (s *Solver) Config() Config {
	return s.cfg
}

// BestGuess is the guess the chain recommends for this state.
func (s *Solver) BestGuess(cands *bitvec.Bitvec, history []words.Index) (words.Index, error) {
	if cands.Count == 0 {
		return 0, ErrEmptyCandidates
	}
	return s.chain.Pick(s, State{Candidates: cands, History: history}), nil
}

// legalGuesses is every word not already guessed, in index order.
func (s *Solver) legalGuesses(history []words.Index) []words.Index {
	out := make([]words.Index, 0, s.store.Len())
	for i := range s.store.Len() {
		if !slices.Contains(history, words.Index(i)) {
			out = append(out, words.Index(i))
		}
	}
	return out
}

// sortedCandidates lists the candidates in word order.
func (s *Solver) sortedCandidates(cands *bitvec.Bitvec) []words.Index {
	out := make([]words.Index, 0, cands.Count)
	for i := range cands.All() {
		out = append(out, words.Index(i))
	}
	slices.SortFunc(out, s.store.Compare)
	return out
}
