package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index outside the valid range of an operation.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrNegativeCapacity indicates a negative initial capacity.
	ErrNegativeCapacity = errors.New("dynarray: negative capacity")
)

// IndexError wraps ErrIndexOutOfRange with the failing operation.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %s index %d (size %d)", ErrIndexOutOfRange, e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
