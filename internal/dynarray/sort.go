package dynarray

import "cmp"

// Ordering is implemented by element types with an intrinsic total order.
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equal, and a positive number otherwise.
type Ordering[T any] interface {
	Compare(other T) int
}

// Sort sorts a in ascending natural order of its elements.
func Sort[T Ordering[T]](a *Array[T]) {
	a.SortFunc(func(x, y T) int { return x.Compare(y) })
}

// SortOrdered sorts a in ascending order of a built-in ordered type.
func SortOrdered[T cmp.Ordered](a *Array[T]) {
	a.SortFunc(cmp.Compare[T])
}

// SortFunc sorts the elements in place using compare, which returns a
// negative, zero or positive number as its first argument sorts before,
// equal to, or after its second.
func (a *Array[T]) SortFunc(compare func(x, y T) int) {
	if a.size < 2 {
		return
	}
	quickSort(a.data[:a.size], 0, a.size-1, compare)
}

// quickSort recurses into the smaller partition and loops over the larger
// one, so stack depth stays logarithmic.
func quickSort[T any](data []T, low, high int, compare func(x, y T) int) {
	for low < high {
		p := partition(data, low, high, compare)
		if p-low < high-p {
			quickSort(data, low, p, compare)
			low = p + 1
		} else {
			quickSort(data, p+1, high, compare)
			high = p
		}
	}
}

// partition is the Hoare scheme: the pivot value is taken once from the
// midpoint, scans use strict comparisons, and the high cursor is the split.
func partition[T any](data []T, low, high int, compare func(x, y T) int) int {
	pivot := data[low+(high-low)/2]
	i, j := low, high
	for {
		for compare(data[i], pivot) < 0 {
			i++
		}
		for compare(data[j], pivot) > 0 {
			j--
		}
		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
}
