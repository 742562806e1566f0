package solver

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// minBy finds the element with the smallest key, evaluating keys in parallel.
// Equal keys are resolved by tie, which must be a strict order, so the result
// does not depend on scheduling.
func minBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K, tie func(a, b T) bool) (T, K, bool) {
	if len(slice) == 0 {
		var zero T
		var zeroKey K
		return zero, zeroKey, false
	}

	minItem := slice[0]
	minVal := keyFunc(minItem)

	mu := sync.Mutex{}
	wg := sync.WaitGroup{}

	for _, item := range slice[1:] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val := keyFunc(item)
			mu.Lock()
			if val < minVal || (val == minVal && tie(item, minItem)) {
				minVal = val
				minItem = item
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	return minItem, minVal, true
}
