package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"lukechampine.com/frand"

	"github.com/bent101/wordle-turns/cache"
	"github.com/bent101/wordle-turns/hint"
	"github.com/bent101/wordle-turns/solver"
	"github.com/bent101/wordle-turns/words"
)

func printBest(w io.Writer, s *solver.Solver, n int) error {
	all := s.Cache().All()
	store := s.Cache().Store()

	best, err := s.BestGuess(all, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "best first guess: %s\n", store.Word(best))

	ranked, err := s.Rank(all, nil, solver.Mean)
	if err != nil {
		return err
	}
	for _, sc := range ranked[:min(n, len(ranked))] {
		fmt.Fprintf(w, "%s  %.3f\n", store.Word(sc.Guess), sc.Value)
	}
	return nil
}

// play reads one line of feedback per turn until the secret is found or the
// input ends. Bad lines are reported and asked for again.
func play(r io.Reader, w io.Writer, s *solver.Solver) error {
	store := s.Cache().Store()
	ss := s.NewSession()
	scanner := bufio.NewScanner(r)

	for !ss.Solved() {
		suggestion, err := ss.Suggest()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "turn %d, %d left, try %s\n> ", ss.Turn(), ss.Candidates.Count, store.Word(suggestion))

		if !scanner.Scan() {
			return scanner.Err()
		}
		guess, observed, err := parseTurn(store, suggestion, scanner.Text())
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		if err := ss.Apply(guess, observed); err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintln(w, observed.ColoredWord(store.Word(guess)))
		if n := ss.Candidates.Count; n <= 10 {
			fmt.Fprintln(w, strings.Join(ss.Remaining(), " "))
		}
	}

	fmt.Fprintf(w, "solved in %d\n", len(ss.History))
	return nil
}

func parseTurn(store *words.Store, suggestion words.Index, line string) (words.Index, hint.Hint, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		h, err := hint.Parse(fields[0])
		return suggestion, h, err
	case 2:
		guess, err := lookup(store, fields[0])
		if err != nil {
			return 0, 0, err
		}
		h, err := hint.Parse(fields[1])
		return guess, h, err
	}
	return 0, 0, fmt.Errorf("enter feedback, or a guess and its feedback")
}

func simulate(w io.Writer, s *solver.Solver, secretWord string) error {
	store := s.Cache().Store()

	var secret words.Index
	if secretWord == "" {
		secret = words.Index(frand.Intn(store.SecretCount()))
	} else {
		var err error
		if secret, err = lookup(store, secretWord); err != nil {
			return err
		}
		if !store.IsSecret(secret) {
			return fmt.Errorf("%q is not a possible secret", secretWord)
		}
	}

	ss := s.NewSession()
	for !ss.Solved() {
		if len(ss.History) >= s.Config().MaxAttempts {
			fmt.Fprintf(w, "failed, the secret was %s\n", store.Word(secret))
			return nil
		}
		g, err := ss.Suggest()
		if err != nil {
			return err
		}
		observed := s.Cache().Hint(g, secret)
		if err := ss.Apply(g, observed); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  %d left\n", observed.ColoredWord(store.Word(g)), ss.Candidates.Count)
	}
	fmt.Fprintf(w, "solved in %d\n", len(ss.History))
	return nil
}

func printWordHints(w io.Writer, c *cache.Cache, word string) error {
	g, err := lookup(c.Store(), word)
	if err != nil {
		return err
	}

	type hintCount struct {
		hint  hint.Hint
		count int
	}
	var hintCounts []hintCount
	for h, bucket := range c.Buckets(g) {
		hintCounts = append(hintCounts, hintCount{h, bucket.Count})
	}

	// largest bucket first
	slices.SortFunc(hintCounts, func(a, b hintCount) int {
		return cmp.Or(cmp.Compare(b.count, a.count), cmp.Compare(a.hint, b.hint))
	})

	for _, hc := range hintCounts {
		fmt.Fprintln(w, hc.hint.ColoredWord(word), hc.count)
	}
	return nil
}
