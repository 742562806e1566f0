// Package bitvec is a fixed-size set of small integers with a cached
// population count.
package bitvec

import (
	"iter"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

type Bitvec struct {
	set   *bitset.BitSet
	Count int
}

func New(size int) *Bitvec {
	return &Bitvec{set: bitset.New(uint(size))}
}

// Full returns a vector with every index in [0, size) set.
func Full(size int) *Bitvec {
	set := bitset.New(uint(size))
	if size > 0 {
		set.FlipRange(0, uint(size))
	}
	return &Bitvec{set: set, Count: size}
}

// Of returns a vector of the given size with idxs set.
func Of(size int, idxs ...int) *Bitvec {
	bv := New(size)
	for _, i := range idxs {
		bv.Set(i)
	}
	return bv
}

func (bv *Bitvec) Size() int {
	return int(bv.set.Len())
}

func (bv *Bitvec) Set(index int) {
	if !bv.set.Test(uint(index)) {
		bv.set.Set(uint(index))
		bv.Count++
	}
}

func (bv *Bitvec) Get(index int) bool {
	return bv.set.Test(uint(index))
}

// And returns the intersection as a new vector.
func (bv *Bitvec) And(other *Bitvec) *Bitvec {
	result := bv.set.Intersection(other.set)
	return &Bitvec{set: result, Count: int(result.Count())}
}

// AndCount is the size of the intersection without building it.
func (bv *Bitvec) AndCount(other *Bitvec) int {
	return int(bv.set.IntersectionCardinality(other.set))
}

func (bv *Bitvec) Equal(other *Bitvec) bool {
	return bv.Count == other.Count && bv.set.Equal(other.set)
}

func (bv *Bitvec) Clone() *Bitvec {
	return &Bitvec{set: bv.set.Clone(), Count: bv.Count}
}

// First returns the lowest set index.
func (bv *Bitvec) First() (int, bool) {
	i, ok := bv.set.NextSet(0)
	return int(i), ok
}

// All iterates the set indices in increasing order.
func (bv *Bitvec) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := bv.set.NextSet(0); ok; i, ok = bv.set.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

func (bv *Bitvec) Indices() []int {
	out := make([]int, 0, bv.Count)
	for i := range bv.All() {
		out = append(out, i)
	}
	return out
}

func (bv *Bitvec) String() string {
	parts := make([]string, 0, bv.Count)
	for i := range bv.All() {
		parts = append(parts, strconv.Itoa(i))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
