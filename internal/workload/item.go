package workload

import "strconv"

// Item is the element type replayed by scenarios. It orders naturally by value.
type Item int

func (i Item) Compare(other Item) int {
	switch {
	case i < other:
		return -1
	case i > other:
		return 1
	}
	return 0
}

func (i Item) String() string {
	return strconv.Itoa(int(i))
}
