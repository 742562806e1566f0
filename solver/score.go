package solver

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/hint"
	"github.com/bent101/wordle-turns/words"
)

// Metric is how a guess's hint buckets are reduced to a score. Lower is better.
type Metric int

const (
	// Mean is the average number of candidates left after the guess.
	Mean Metric = iota
	// WorstCase is the size of the largest bucket.
	WorstCase
	// Variance is the variance of the number of candidates left. It is kept
	// for comparison and no Picker uses it.
	Variance
)

func (m Metric) String() string {
	switch m {
	case Mean:
		return "mean"
	case WorstCase:
		return "worst-case"
	case Variance:
		return "variance"
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// Scored is one guess's score against a candidate set.
type Scored struct {
	Guess words.Index
	// Sum is, for Mean and Variance, the total over candidates of the number
	// of candidates still left; for WorstCase it is the largest bucket. A
	// candidate equal to the guess leaves nothing.
	Sum int
	// Count is the number of candidates.
	Count int
	Value float64
}

// Rank scores every guess not in history and sorts them best first. Ties are
// broken by word order.
func (s *Solver) Rank(cands *bitvec.Bitvec, history []words.Index, metric Metric) ([]Scored, error) {
	if cands.Count == 0 {
		return nil, ErrEmptyCandidates
	}
	return s.rank(cands, history, metric), nil
}

// Score is a single guess's score.
func (s *Solver) Score(g words.Index, cands *bitvec.Bitvec, metric Metric) (Scored, error) {
	if cands.Count == 0 {
		return Scored{}, ErrEmptyCandidates
	}
	return s.score(g, cands, metric), nil
}

func (s *Solver) rank(cands *bitvec.Bitvec, history []words.Index, metric Metric) []Scored {
	guesses := s.legalGuesses(history)
	scores := make([]Scored, len(guesses))

	workers := min(s.cfg.Parallelism, len(guesses))
	var eg errgroup.Group
	for w := range workers {
		eg.Go(func() error {
			for i := w; i < len(guesses); i += workers {
				scores[i] = s.score(guesses[i], cands, metric)
			}
			return nil
		})
	}
	eg.Wait()

	slices.SortFunc(scores, func(a, b Scored) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return s.store.Compare(a.Guess, b.Guess)
	})
	return scores
}

func (s *Solver) score(g words.Index, cands *bitvec.Bitvec, metric Metric) Scored {
	// Every candidate is in some bucket, so the full secret set can use the
	// bucket sizes as they are.
	full := cands.Count == s.store.SecretCount()

	sizes := make([]int, 0, 32)
	for h, bucket := range s.cache.Buckets(g) {
		if h == hint.AllCorrect {
			continue
		}
		k := bucket.Count
		if !full {
			k = bucket.AndCount(cands)
		}
		if k > 0 {
			sizes = append(sizes, k)
		}
	}

	n := cands.Count
	out := Scored{Guess: g, Count: n}
	switch metric {
	case WorstCase:
		for _, k := range sizes {
			out.Sum = max(out.Sum, k)
		}
		out.Value = float64(out.Sum)
	case Variance:
		for _, k := range sizes {
			out.Sum += k * k
		}
		mean := float64(out.Sum) / float64(n)
		var sq float64
		rest := n
		for _, k := range sizes {
			d := float64(k) - mean
			sq += float64(k) * d * d
			rest -= k
		}
		// the guess itself, if it is a candidate, leaves zero
		sq += float64(rest) * mean * mean
		out.Value = sq / float64(n)
	default:
		for _, k := range sizes {
			out.Sum += k * k
		}
		out.Value = float64(out.Sum) / float64(n)
	}
	return out
}
