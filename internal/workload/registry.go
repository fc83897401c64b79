package workload

import (
	"fmt"
	"sort"

	"github.com/san-kum/dynarray/internal/dynarray"
)

// Sorter sorts an array in some order.
type Sorter func(a *dynarray.Array[Item])

type Registry struct {
	orders map[string]Sorter
}

func NewRegistry() *Registry {
	r := &Registry{
		orders: make(map[string]Sorter),
	}

	r.orders["natural"] = func(a *dynarray.Array[Item]) { dynarray.Sort(a) }
	r.orders["asc"] = func(a *dynarray.Array[Item]) { a.SortFunc(func(x, y Item) int { return x.Compare(y) }) }
	r.orders["desc"] = func(a *dynarray.Array[Item]) { a.SortFunc(func(x, y Item) int { return y.Compare(x) }) }
	r.orders["abs"] = func(a *dynarray.Array[Item]) {
		a.SortFunc(func(x, y Item) int { return abs(x).Compare(abs(y)) })
	}

	return r
}

// Register adds or replaces a named order.
func (r *Registry) Register(name string, s Sorter) {
	r.orders[name] = s
}

func (r *Registry) GetOrder(name string) (Sorter, error) {
	s, ok := r.orders[name]
	if !ok {
		return nil, fmt.Errorf("unknown order: %s", name)
	}
	return s, nil
}

func (r *Registry) ListOrders() []string {
	names := make([]string, 0, len(r.orders))
	for name := range r.orders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func abs(i Item) Item {
	if i < 0 {
		return -i
	}
	return i
}
