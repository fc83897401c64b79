package dynarray

import (
	"fmt"
	"strings"
)

const (
	// DefaultCapacity is the capacity of a new or cleared array.
	DefaultCapacity = 10

	// GrowthFactor scales capacity when an array is full.
	GrowthFactor = 1.5
)

// Array is a growable array of T.
type Array[T any] struct {
	data []T
	size int
}

// New returns an empty array with DefaultCapacity.
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, DefaultCapacity)}
}

// WithCapacity returns an empty array with the given capacity.
// Zero is allowed; a negative capacity returns ErrNegativeCapacity.
func WithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	return &Array[T]{data: make([]T, capacity)}, nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.data) }

// Add appends v, growing the array first if it is full.
func (a *Array[T]) Add(v T) {
	if a.full() {
		a.grow()
	}
	a.data[a.size] = v
	a.size++
}

// Insert places v at index i and shifts [i, Len()) one slot right.
// i == Len() appends.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.size {
		return &IndexError{Op: "insert", Index: i, Size: a.size}
	}
	if a.full() {
		a.grow()
	}
	copy(a.data[i+1:a.size+1], a.data[i:a.size])
	a.data[i] = v
	a.size++
	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex("get", i); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex("set", i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Remove deletes the element at index i and shifts the tail left.
// The vacated slot is zeroed so the array drops its reference.
func (a *Array[T]) Remove(i int) error {
	if err := a.checkIndex("remove", i); err != nil {
		return err
	}
	copy(a.data[i:], a.data[i+1:a.size])
	a.size--
	var zero T
	a.data[a.size] = zero
	return nil
}

// Clear discards all elements and resets capacity to DefaultCapacity,
// whatever the capacity was before.
func (a *Array[T]) Clear() {
	a.data = make([]T, DefaultCapacity)
	a.size = 0
}

// String renders the elements as "[ e1 e2 ... en ]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < a.size; i++ {
		sb.WriteString(fmt.Sprint(a.data[i]))
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array[T]) full() bool {
	return a.size == len(a.data)
}

func (a *Array[T]) grow() {
	old := len(a.data)
	capacity := int(float64(old) * GrowthFactor)
	if capacity <= old {
		capacity = old + 1
	}
	data := make([]T, capacity)
	copy(data, a.data[:a.size])
	a.data = data
}

func (a *Array[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= a.size {
		return &IndexError{Op: op, Index: i, Size: a.size}
	}
	return nil
}
