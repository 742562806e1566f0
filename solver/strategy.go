package solver

import (
	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/words"
)

// State is what a Picker sees: the candidates still consistent with the
// feedback and the guesses already played.
type State struct {
	Candidates *bitvec.Bitvec
	History    []words.Index
}

// Picker proposes a guess or abstains.
type Picker interface {
	Pick(s *Solver, st State) (words.Index, bool)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(s *Solver, st State) (words.Index, bool)

func (f PickerFunc) Pick(s *Solver, st State) (words.Index, bool) {
	return f(s, st)
}

// Chain asks each Picker in order and returns the first proposal. If all
// abstain it returns the first candidate in word order.
type Chain []Picker

func (c Chain) Pick(s *Solver, st State) words.Index {
	for _, p := range c {
		if g, ok := p.Pick(s, st); ok {
			return g
		}
	}
	return s.sortedCandidates(st.Candidates)[0]
}

func DefaultChain() Chain {
	return Chain{
		FewCandidates{},
		NewLetters{},
		Scoring{Metric: Mean},
		Minimizer{},
	}
}

// FewCandidates guesses a candidate outright when at most two remain.
type FewCandidates struct{}

func (FewCandidates) Pick(s *Solver, st State) (words.Index, bool) {
	if st.Candidates.Count > 2 {
		return 0, false
	}
	return s.sortedCandidates(st.Candidates)[0], true
}

// NewLetters prefers the guess whose untried letters occur in the most
// candidates. Only letters that tell candidates apart count: a letter in every
// candidate or in none says nothing. It abstains once the candidate set is
// small enough for Minimizer or when no guess covers such a letter.
type NewLetters struct{}

func (NewLetters) Pick(s *Solver, st State) (words.Index, bool) {
	n := st.Candidates.Count
	if n <= s.cfg.ExactThreshold {
		return 0, false
	}

	var tried [26]bool
	for _, g := range st.History {
		for _, c := range []byte(s.store.Word(g)) {
			tried[c-'a'] = true
		}
	}

	var freq [26]int
	for i := range st.Candidates.All() {
		for _, c := range distinctLetters(s.store.Word(words.Index(i))) {
			freq[c]++
		}
	}
	useful := false
	for c := range freq {
		if tried[c] || freq[c] == n {
			freq[c] = 0
		}
		useful = useful || freq[c] > 0
	}
	if !useful {
		return 0, false
	}

	best, coverage, ok := minBy(s.legalGuesses(st.History), func(g words.Index) int {
		total := 0
		for _, c := range distinctLetters(s.store.Word(g)) {
			total += freq[c]
		}
		return -total
	}, s.store.Less)
	if !ok || coverage == 0 {
		return 0, false
	}
	return best, true
}

func distinctLetters(w string) []byte {
	var seen [26]bool
	out := make([]byte, 0, len(w))
	for i := range len(w) {
		c := w[i] - 'a'
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Scoring picks the guess with the best Metric score. It abstains once the
// candidate set is small enough for Minimizer.
type Scoring struct {
	Metric Metric
}

func (p Scoring) Pick(s *Solver, st State) (words.Index, bool) {
	if st.Candidates.Count <= s.cfg.ExactThreshold {
		return 0, false
	}
	ranked := s.rank(st.Candidates, st.History, p.Metric)
	if len(ranked) == 0 {
		return 0, false
	}
	return ranked[0].Guess, true
}

// Minimizer picks the guess with the lowest turn sum. It abstains above the
// exact threshold and when the attempt budget is spent.
type Minimizer struct{}

func (Minimizer) Pick(s *Solver, st State) (words.Index, bool) {
	if st.Candidates.Count > s.cfg.ExactThreshold {
		return 0, false
	}
	ranked := s.minimize(st.Candidates, st.History)
	if ranked[0].Guess == NoGuess {
		return 0, false
	}
	return ranked[0].Guess, true
}
