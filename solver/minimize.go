package solver

import (
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/hint"
	"github.com/bent101/wordle-turns/words"
)

// Unsolvable is the turn sum of a line of play that runs out of attempts.
const Unsolvable = math.MaxInt32

// NoGuess stands in for the guess when no guess is possible.
const NoGuess words.Index = words.MaxWords

// TurnSum is the total, over every candidate, of the turn on which the game
// ends if the candidate is the secret and Guess is played now.
type TurnSum struct {
	Guess words.Index
	Sum   int
}

// Expected is the mean number of turns over n candidates.
func (t TurnSum) Expected(n int) float64 {
	if t.Sum >= Unsolvable {
		return math.Inf(1)
	}
	return float64(t.Sum) / float64(n)
}

// MinimizeTurns ranks guesses by their turn sum from this state, best first.
//
// The search is not exhaustive: at every level only the TopK guesses by the
// Mean score are expanded, so the result is the best among those lines and
// not a proven optimum. When history already holds MaxAttempts guesses the
// result is a single entry with NoGuess and Unsolvable.
func (s *Solver) MinimizeTurns(cands *bitvec.Bitvec, history []words.Index) ([]TurnSum, error) {
	if cands.Count == 0 {
		return nil, ErrEmptyCandidates
	}

	start := time.Now()
	ranked := s.minimize(cands, history)
	log.Debug().
		Int("candidates", cands.Count).
		Int("turn", len(history)+1).
		Int("best", ranked[0].Sum).
		Dur("elapsed", time.Since(start)).
		Msg("minimize-turns")
	return ranked, nil
}

func (s *Solver) minimize(cands *bitvec.Bitvec, history []words.Index) []TurnSum {
	turn := len(history) + 1

	if len(history) >= s.cfg.MaxAttempts {
		return []TurnSum{{Guess: NoGuess, Sum: Unsolvable}}
	}

	switch cands.Count {
	case 1:
		only, _ := cands.First()
		return []TurnSum{{Guess: words.Index(only), Sum: turn}}
	case 2:
		// win now or on the next turn
		pair := s.sortedCandidates(cands)
		sum := turn + (turn + 1)
		if turn+1 > s.cfg.MaxAttempts {
			sum = Unsolvable
		}
		return []TurnSum{{Guess: pair[0], Sum: sum}, {Guess: pair[1], Sum: sum}}
	}

	ranked := s.rank(cands, history, Mean)
	if len(ranked) == 0 {
		return []TurnSum{{Guess: NoGuess, Sum: Unsolvable}}
	}
	top := ranked[:min(s.cfg.TopK, len(ranked))]

	results := make([]TurnSum, len(top))
	var eg errgroup.Group
	for i, sc := range top {
		eg.Go(func() error {
			results[i] = TurnSum{Guess: sc.Guess, Sum: s.turnSum(cands, history, sc.Guess)}
			return nil
		})
	}
	eg.Wait()

	slices.SortFunc(results, func(a, b TurnSum) int {
		if a.Sum != b.Sum {
			if a.Sum < b.Sum {
				return -1
			}
			return 1
		}
		return s.store.Compare(a.Guess, b.Guess)
	})
	return results
}

// turnSum plays g now and adds up the best continuation of every hint bucket.
func (s *Solver) turnSum(cands *bitvec.Bitvec, history []words.Index, g words.Index) int {
	turn := len(history) + 1
	next := append(slices.Clone(history), g)

	type part struct {
		h    hint.Hint
		cand *bitvec.Bitvec
	}
	var parts []part
	for h, bucket := range s.cache.Buckets(g) {
		sub := bucket.And(cands)
		if sub.Count > 0 {
			parts = append(parts, part{h, sub})
		}
	}

	costs := make([]int, len(parts))
	var eg errgroup.Group
	for i, p := range parts {
		if p.h == hint.AllCorrect {
			costs[i] = turn
			continue
		}
		eg.Go(func() error {
			// sizes 1 and 2 come back from the closed forms without a search
			costs[i] = s.minimize(p.cand, next)[0].Sum
			return nil
		})
	}
	eg.Wait()

	total := 0
	for _, c := range costs {
		total = addTurns(total, c)
	}
	return total
}

func addTurns(a, b int) int {
	if a >= Unsolvable || b >= Unsolvable || a+b >= Unsolvable {
		return Unsolvable
	}
	return a + b
}
