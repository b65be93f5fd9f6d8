package evaluator

import "iter"

// combinations yields every k-element subset of [0,n) as a slice of
// indices in strictly increasing order, itself enumerated in
// lexicographic order. It is the enumeration primitive the sub-table and
// jump-table builders (C3, C5) use to walk rank combinations and card
// combinations deterministically.
//
// Each yielded slice is freshly allocated; callers may retain it.
func combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		c := make([]int, k)
		for i := range c {
			c[i] = i
		}
		for {
			out := make([]int, k)
			copy(out, c)
			if !yield(out) {
				return
			}
			i := k - 1
			for i >= 0 && c[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			c[i]++
			for j := i + 1; j < k; j++ {
				c[j] = c[i] + (j - i)
			}
		}
	}
}

// subsetsOf yields every k-element subset of items, preserving items'
// relative order within each subset.
func subsetsOf[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for idx := range combinations(len(items), k) {
			out := make([]T, k)
			for i, j := range idx {
				out[i] = items[j]
			}
			if !yield(out) {
				return
			}
		}
	}
}
