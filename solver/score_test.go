package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/hint"
	"github.com/bent101/wordle-turns/words"
)

func TestRankExample(t *testing.T) {
	s := newTestSolver(t, nil)
	ranked, err := s.Rank(s.cache.All(), nil, Mean)
	require.NoError(t, err)

	type row struct {
		Word string
		Sum  int
	}
	var got []row
	for _, sc := range ranked {
		assert.Equal(t, 5, sc.Count)
		got = append(got, row{s.store.Word(sc.Guess), sc.Sum})
	}
	want := []row{
		// a secret guessed outright leaves nothing for itself
		{"augur", 6}, {"briar", 6}, {"friar", 6}, {"lunar", 6}, {"sugar", 6},
		{"fubar", 7}, {"rural", 7}, {"urial", 7},
		{"aurar", 9}, {"goier", 9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreExactValues(t *testing.T) {
	s := newTestSolver(t, nil)
	for w, want := range map[string]float64{
		"fubar": 7.0 / 5,
		"rural": 7.0 / 5,
		"urial": 7.0 / 5,
		"aurar": 9.0 / 5,
		"goier": 9.0 / 5,
	} {
		sc, err := s.Score(idx(t, s, w), s.cache.All(), Mean)
		require.NoError(t, err)
		assert.Equal(t, want, sc.Value, w)
	}
}

func TestScoreFirstTurnShortcut(t *testing.T) {
	s := newTestSolver(t, nil)
	// the same set, but not recognizably the full one
	all := s.cache.All()
	for g := range s.store.Len() {
		full := s.score(words.Index(g), all, Mean)
		var slow Scored
		for h, bucket := range s.cache.Buckets(words.Index(g)) {
			if h == hint.AllCorrect {
				continue
			}
			k := bucket.AndCount(all)
			slow.Sum += k * k
		}
		assert.Equal(t, slow.Sum, full.Sum, s.store.Word(words.Index(g)))
	}
}

func TestScoreSingleCandidate(t *testing.T) {
	s := newTestSolver(t, nil)
	for _, w := range testSecrets {
		g := idx(t, s, w)
		only := bitvec.Of(s.store.SecretCount(), int(g))
		for _, m := range []Metric{Mean, WorstCase, Variance} {
			sc, err := s.Score(g, only, m)
			require.NoError(t, err)
			assert.Zero(t, sc.Value, "%s %s", w, m)
		}
	}
}

func TestScoreNarrowedSet(t *testing.T) {
	s := newTestSolver(t, nil)
	cands := candidates(t, s, "briar", "friar", "lunar")

	// rural cannot split briar from friar
	sc, err := s.Score(idx(t, s, "rural"), cands, Mean)
	require.NoError(t, err)
	assert.Equal(t, 5, sc.Sum)

	sc, err = s.Score(idx(t, s, "briar"), cands, Mean)
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Sum)
}

func TestWorstCaseAndVariance(t *testing.T) {
	s := newTestSolver(t, nil)
	fubar := idx(t, s, "fubar")

	worst, err := s.Score(fubar, s.cache.All(), WorstCase)
	require.NoError(t, err)
	assert.Equal(t, 2, worst.Sum)
	assert.Equal(t, 2.0, worst.Value)

	// left counts per secret: 1 1 1 2 2
	v, err := s.Score(fubar, s.cache.All(), Variance)
	require.NoError(t, err)
	assert.InDelta(t, 0.24, v.Value, 1e-9)

	// augur leaves 0 for itself: 0 2 2 1 1
	v, err = s.Score(idx(t, s, "augur"), s.cache.All(), Variance)
	require.NoError(t, err)
	assert.InDelta(t, 0.56, v.Value, 1e-9)
}

func TestRankSkipsHistory(t *testing.T) {
	s := newTestSolver(t, nil)
	history := []words.Index{idx(t, s, "augur"), idx(t, s, "fubar")}
	ranked, err := s.Rank(s.cache.All(), history, Mean)
	require.NoError(t, err)

	assert.Len(t, ranked, s.store.Len()-2)
	for _, sc := range ranked {
		assert.NotContains(t, history, sc.Guess)
	}
	assert.Equal(t, "briar", s.store.Word(ranked[0].Guess))
}

func TestRankEmpty(t *testing.T) {
	s := newTestSolver(t, nil)
	_, err := s.Rank(bitvec.New(s.store.SecretCount()), nil, Mean)
	assert.ErrorIs(t, err, ErrEmptyCandidates)

	_, err = s.Score(0, bitvec.New(s.store.SecretCount()), Mean)
	assert.ErrorIs(t, err, ErrEmptyCandidates)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "mean", Mean.String())
	assert.Equal(t, "worst-case", WorstCase.String())
	assert.Equal(t, "variance", Variance.String())
	assert.Equal(t, "metric(7)", Metric(7).String())
}
