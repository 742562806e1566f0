package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	bv := New(130)
	bv.Set(0)
	bv.Set(64)
	bv.Set(129)
	bv.Set(64)

	assert.Equal(t, 3, bv.Count)
	assert.True(t, bv.Get(64))
	assert.False(t, bv.Get(63))
	assert.Equal(t, []int{0, 64, 129}, bv.Indices())
	assert.Equal(t, "{0 64 129}", bv.String())
	assert.Equal(t, 130, bv.Size())
}

func TestFull(t *testing.T) {
	bv := Full(70)
	assert.Equal(t, 70, bv.Count)
	assert.True(t, bv.Get(69))

	first, ok := bv.First()
	require.True(t, ok)
	assert.Equal(t, 0, first)

	_, ok = New(70).First()
	assert.False(t, ok)
}

func TestAnd(t *testing.T) {
	a := Of(100, 1, 2, 3, 70, 99)
	b := Of(100, 2, 3, 4, 99)

	c := a.And(b)
	assert.Equal(t, 3, c.Count)
	assert.Equal(t, []int{2, 3, 99}, c.Indices())
	assert.Equal(t, 3, a.AndCount(b))

	// operands untouched
	assert.Equal(t, 5, a.Count)
	assert.Equal(t, 4, b.Count)
}

func TestEqualClone(t *testing.T) {
	a := Of(10, 1, 5)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Set(6)
	assert.False(t, a.Equal(b))
	assert.Equal(t, 2, a.Count)
}

func TestAllStopsEarly(t *testing.T) {
	seen := 0
	for range Of(10, 1, 2, 3).All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func BenchmarkAndCount(b *testing.B) {
	x, y := Full(2315), New(2315)
	for i := 0; i < 2315; i += 3 {
		y.Set(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.AndCount(y)
	}
}
