package dynarray

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
)

type ranked struct {
	value int
}

func (r ranked) Compare(other ranked) int {
	return r.value - other.value
}

type tagged struct {
	key int
	tag string
}

func byKey(a, b tagged) int { return a.key - b.key }

func isSortedFunc[T any](data []T, compare func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if compare(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

func TestSortComparable(t *testing.T) {
	a, _ := WithCapacity[ranked](2)
	for _, v := range []int{12, 7, 3} {
		a.Add(ranked{v})
	}

	Sort(a)

	for i, want := range []int{3, 7, 12} {
		got, _ := a.Get(i)
		if got.value != want {
			t.Errorf("index %d: expected %d, got %d", i, want, got.value)
		}
	}
}

func TestSortFunc(t *testing.T) {
	a, _ := WithCapacity[tagged](2)
	for _, v := range []int{12, 7, 3} {
		a.Add(tagged{key: v})
	}

	a.SortFunc(byKey)

	for i, want := range []int{3, 7, 12} {
		got, _ := a.Get(i)
		if got.key != want {
			t.Errorf("index %d: expected %d, got %d", i, want, got.key)
		}
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	empty := New[ranked]()
	Sort(empty)
	empty.SortFunc(func(a, b ranked) int { return a.Compare(b) })
	if empty.Len() != 0 {
		t.Errorf("expected empty array, got size %d", empty.Len())
	}

	single := New[int]()
	single.Add(42)
	SortOrdered(single)
	if got, _ := single.Get(0); got != 42 || single.Len() != 1 {
		t.Errorf("expected [ 42 ], got %s", single)
	}
}

func TestSortOrdered(t *testing.T) {
	tests := []struct {
		name string
		data []int
	}{
		{"reference", referenceValues},
		{"sorted", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"reverse", []int{8, 7, 6, 5, 4, 3, 2, 1}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"all same", []int{5, 5, 5, 5, 5, 5}},
		{"two", []int{2, 1}},
		{"negatives", []int{-3, 10, -7, 0, 4, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int]()
			for _, v := range tt.data {
				a.Add(v)
			}

			SortOrdered(a)

			want := slices.Clone(tt.data)
			slices.Sort(want)
			if got := contents(t, a); !equalInts(got, want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestSortStrings(t *testing.T) {
	a := New[string]()
	for _, s := range strings.Fields("pear apple fig banana apple") {
		a.Add(s)
	}
	SortOrdered(a)
	if got := a.String(); got != "[ apple apple banana fig pear ]" {
		t.Errorf("unexpected order: %s", got)
	}
}

func TestSortDescending(t *testing.T) {
	a := newReference(t)
	a.SortFunc(func(x, y int) int { return y - x })
	if got := a.String(); got != "[ 87 45 11 9 9 7 6 4 3 2 1 ]" {
		t.Errorf("unexpected order: %s", got)
	}
}

func TestSortEqualKeysFollowHoarePartition(t *testing.T) {
	a := New[tagged]()
	a.Add(tagged{1, "a"})
	a.Add(tagged{0, "b"})
	a.Add(tagged{1, "c"})

	a.SortFunc(byKey)

	var tags []string
	for i := 0; i < a.Len(); i++ {
		v, _ := a.Get(i)
		tags = append(tags, v.tag)
	}
	if got := strings.Join(tags, ""); got != "bca" {
		t.Errorf("expected tag order bca, got %s", got)
	}
}

func TestSortIgnoresSpareCapacity(t *testing.T) {
	a, _ := WithCapacity[int](100)
	for _, v := range []int{3, 2, 1} {
		a.Add(v)
	}
	SortOrdered(a)
	if a.String() != "[ 1 2 3 ]" {
		t.Errorf("unexpected order: %s", a)
	}
	if a.Cap() != 100 {
		t.Errorf("sort changed capacity to %d", a.Cap())
	}
}

func TestSortRandomIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{10, 100, 1000, 5000} {
		a := New[int]()
		for i := 0; i < n; i++ {
			a.Add(rng.Intn(n / 2))
		}

		SortOrdered(a)
		first := contents(t, a)
		if !isSortedFunc(first, func(x, y int) int { return x - y }) {
			t.Fatalf("n=%d: result not sorted", n)
		}

		SortOrdered(a)
		if !equalInts(first, contents(t, a)) {
			t.Errorf("n=%d: second sort changed order", n)
		}
	}
}
