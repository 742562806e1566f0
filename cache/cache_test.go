package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-turns/bitvec"
	"github.com/bent101/wordle-turns/hint"
	"github.com/bent101/wordle-turns/words"
)

var (
	testSecrets = []string{"augur", "briar", "friar", "lunar", "sugar", "geese", "eject", "truss", "beret"}
	testGuesses = []string{"fubar", "rural", "aurar", "goier", "urial", "three", "guest"}
)

func newTestCache(t testing.TB) *Cache {
	t.Helper()
	store, err := words.NewStore(testSecrets, testGuesses)
	require.NoError(t, err)
	return Build(store, Options{Parallelism: 3})
}

func TestHintsMatchCodec(t *testing.T) {
	c := newTestCache(t)
	store := c.Store()
	for g := range store.Len() {
		for s := range store.SecretCount() {
			gi, si := words.Index(g), words.Index(s)
			assert.Equal(t, hint.Compute(store.Word(gi), store.Word(si)), c.Hint(gi, si))
		}
	}
}

func TestCacheConsistency(t *testing.T) {
	c := newTestCache(t)
	store := c.Store()
	for g := range store.Len() {
		for s := range store.SecretCount() {
			gi, si := words.Index(g), words.Index(s)
			bucket := c.Solutions(gi, c.Hint(gi, si))
			require.NotNil(t, bucket)
			assert.True(t, bucket.Get(s), "%s missing from its own bucket for %s", store.Word(si), store.Word(gi))
			assert.Same(t, bucket, c.SolutionsFor(gi, si))
		}
	}
}

func TestPartitionCompleteness(t *testing.T) {
	c := newTestCache(t)
	store := c.Store()
	for g := range store.Len() {
		union := bitvec.New(store.SecretCount())
		total := 0
		for h, bucket := range c.Buckets(words.Index(g)) {
			assert.Positive(t, bucket.Count, "empty bucket %v", h)
			assert.Zero(t, union.AndCount(bucket), "buckets overlap")
			for s := range bucket.All() {
				union.Set(s)
				assert.Equal(t, h, c.Hint(words.Index(g), words.Index(s)))
			}
			total += bucket.Count
		}
		assert.Equal(t, store.SecretCount(), total)
		assert.True(t, union.Equal(c.All()))
	}
}

func TestSolutionsEmptyBucket(t *testing.T) {
	c := newTestCache(t)
	fubar, _ := c.Store().Lookup("fubar")
	assert.Nil(t, c.Solutions(fubar, hint.AllCorrect))
	assert.Nil(t, c.Solutions(fubar, hint.Hint(250)))
}

func TestNarrow(t *testing.T) {
	c := newTestCache(t)
	store := c.Store()
	fubar, _ := store.Lookup("fubar")
	lunar, _ := store.Lookup("lunar")
	sugar, _ := store.Lookup("sugar")

	next, err := c.Narrow(c.All(), fubar, c.Hint(fubar, lunar))
	require.NoError(t, err)
	assert.Equal(t, []int{int(lunar), int(sugar)}, next.Indices())

	// full set untouched
	assert.Equal(t, store.SecretCount(), c.All().Count)
}

func TestNarrowSingletonIsIdempotent(t *testing.T) {
	c := newTestCache(t)
	for s := range c.Store().SecretCount() {
		si := words.Index(s)
		single := bitvec.Of(c.Store().SecretCount(), s)
		next, err := c.Narrow(single, si, c.Hint(si, si))
		require.NoError(t, err)
		assert.True(t, single.Equal(next))
	}
}

func TestNarrowContradiction(t *testing.T) {
	c := newTestCache(t)
	store := c.Store()
	fubar, _ := store.Lookup("fubar")
	lunar, _ := store.Lookup("lunar")
	augur, _ := store.Lookup("augur")

	single := bitvec.Of(store.SecretCount(), int(augur))
	_, err := c.Narrow(single, fubar, c.Hint(fubar, lunar))
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = c.Narrow(c.All(), fubar, hint.AllCorrect)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = c.Narrow(c.All(), fubar, hint.Hint(243))
	assert.ErrorIs(t, err, hint.ErrInvalid)
}

func BenchmarkBuild(b *testing.B) {
	store, err := words.NewStore(testSecrets, testGuesses)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build(store, Options{})
	}
}
