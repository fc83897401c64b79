// Package dynarray provides a growable array container with indexed access,
// insertion, removal and in-place sorting.
//
//   - [Array]: contiguous backing store with separate size and capacity
//   - [Sort]: natural-order sort for element types implementing [Ordering]
//   - [SortOrdered]: natural-order sort for built-in ordered types
//   - [Array.SortFunc]: sort with a caller-supplied comparison function
//
// # Growth
//
// A new array starts with [DefaultCapacity] slots. When an append or insert
// finds the array full, capacity grows by [GrowthFactor] and live elements are
// copied into the new block. Capacity never shrinks on removal; [Array.Clear]
// resets it to [DefaultCapacity].
//
// # Sorting
//
// All sort entry points share one Hoare-partition quicksort with a midpoint
// pivot. The sort is not stable.
//
// # Example
//
//	a := dynarray.New[int]()
//	a.Add(3)
//	a.Add(1)
//	_ = a.Insert(0, 2)
//	dynarray.SortOrdered(a)
//	fmt.Println(a) // [ 1 2 3 ]
//
// # Thread Safety
//
// Array instances are NOT safe for concurrent use. Callers mutating an array
// from several goroutines must synchronize access themselves.
package dynarray
