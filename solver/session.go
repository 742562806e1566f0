package solver

import (
	"fmt"

	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/hint"
	"github.com/bent101/wordle-turns/words"
)

// Session tracks one game. It is not safe for concurrent use.
type Session struct {
	solver     *Solver
	Candidates *bitvec.Bitvec
	History    []words.Index
}

func (s *Solver) NewSession() *Session {
	ss := &Session{solver: s}
	ss.Reset()
	return ss
}

// Reset starts over with every secret as a candidate.
func (ss *Session) Reset() {
	ss.Candidates = ss.solver.cache.All().Clone()
	ss.History = nil
}

func (ss *Session) Turn() int {
	return len(ss.History) + 1
}

// Suggest is the solver's guess for the current turn.
func (ss *Session) Suggest() (words.Index, error) {
	return ss.solver.BestGuess(ss.Candidates, ss.History)
}

// Apply records guess and the feedback it got. On error the session is left
// as it was.
func (ss *Session) Apply(guess words.Index, observed hint.Hint) error {
	next, err := ss.solver.cache.Narrow(ss.Candidates, guess, observed)
	if err != nil {
		return fmt.Errorf("turn %d: %w", ss.Turn(), err)
	}
	ss.Candidates = next
	ss.History = append(ss.History, guess)
	return nil
}

// Solved reports whether the last feedback was all correct.
func (ss *Session) Solved() bool {
	if len(ss.History) == 0 || ss.Candidates.Count != 1 {
		return false
	}
	last := ss.History[len(ss.History)-1]
	return ss.solver.store.IsSecret(last) && ss.Candidates.Get(int(last))
}

// Remaining lists the candidates in word order.
func (ss *Session) Remaining() []string {
	return ss.solver.store.Words(ss.solver.sortedCandidates(ss.Candidates))
}
