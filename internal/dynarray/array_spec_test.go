package dynarray_test

import (
	"github.com/san-kum/dynarray/internal/dynarray"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type wrapped struct{ n int }

func (w wrapped) Compare(other wrapped) int { return w.n - other.n }

func elements[T any](a *dynarray.Array[T]) []T {
	out := make([]T, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		v, err := a.Get(i)
		Expect(err).NotTo(HaveOccurred())
		out = append(out, v)
	}
	return out
}

var _ = Describe("Array", func() {
	var (
		list   *dynarray.Array[int]
		values []int
	)

	BeforeEach(func() {
		list = dynarray.New[int]()
		values = []int{2, 6, 3, 7, 9, 11, 45, 87, 9, 4, 1}
		for _, v := range values {
			list.Add(v)
		}
	})

	AfterEach(func() {
		list.Clear()
	})

	It("renders its elements", func() {
		Expect(list.String()).To(Equal("[ 2 6 3 7 9 11 45 87 9 4 1 ]"))
	})

	It("counts every add", func() {
		for _, v := range values {
			list.Add(v)
			Expect(list.Insert(0, v)).To(Succeed())
		}
		Expect(list.Len()).To(Equal(3 * len(values)))
	})

	It("returns what was set", func() {
		for i, v := range []int{100, 200, 300} {
			Expect(list.Set(i, v)).To(Succeed())
			Expect(list.Get(i)).To(Equal(v))
		}
		Expect(list.Len()).To(Equal(len(values)))
	})

	It("shifts the tail right on insert", func() {
		Expect(list.Insert(3, 99)).To(Succeed())
		Expect(elements(list)).To(Equal([]int{2, 6, 3, 99, 7, 9, 11, 45, 87, 9, 4, 1}))
	})

	It("shifts the tail left on remove", func() {
		Expect(list.Remove(0)).To(Succeed())
		Expect(list.Len()).To(Equal(len(values) - 1))
		Expect(elements(list)).To(Equal(values[1:]))
	})

	DescribeTable("rejects out-of-range indexes without mutating",
		func(call func(a *dynarray.Array[int]) error) {
			before := list.String()
			Expect(call(list)).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(list.String()).To(Equal(before))
		},
		Entry("remove(-1)", func(a *dynarray.Array[int]) error { return a.Remove(-1) }),
		Entry("remove(11)", func(a *dynarray.Array[int]) error { return a.Remove(11) }),
		Entry("insert(-1)", func(a *dynarray.Array[int]) error { return a.Insert(-1, 0) }),
		Entry("insert(12)", func(a *dynarray.Array[int]) error { return a.Insert(12, 0) }),
		Entry("set(11)", func(a *dynarray.Array[int]) error { return a.Set(11, 0) }),
		Entry("get(-1)", func(a *dynarray.Array[int]) error { _, err := a.Get(-1); return err }),
	)

	Context("when cleared", func() {
		It("is empty with default capacity", func() {
			list.Clear()
			Expect(list.Len()).To(BeZero())
			Expect(list.Cap()).To(Equal(dynarray.DefaultCapacity))
			Expect(list.String()).To(Equal("[ ]"))
		})
	})

	Context("when sorted", func() {
		It("orders by natural order", func() {
			dynarray.SortOrdered(list)
			Expect(elements(list)).To(Equal([]int{1, 2, 3, 4, 6, 7, 9, 9, 11, 45, 87}))
		})

		It("is idempotent", func() {
			list.SortFunc(func(a, b int) int { return b - a })
			once := elements(list)
			list.SortFunc(func(a, b int) int { return b - a })
			Expect(elements(list)).To(Equal(once))
		})
	})
})

var _ = Describe("Sort", func() {
	It("sorts wrapped values through their Compare method", func() {
		a, err := dynarray.WithCapacity[wrapped](2)
		Expect(err).NotTo(HaveOccurred())
		a.Add(wrapped{12})
		a.Add(wrapped{7})
		a.Add(wrapped{3})

		dynarray.Sort(a)

		Expect(elements(a)).To(Equal([]wrapped{{3}, {7}, {12}}))
	})

	It("leaves empty arrays alone", func() {
		a := dynarray.New[wrapped]()
		dynarray.Sort(a)
		a.SortFunc(func(x, y wrapped) int { return x.n - y.n })
		Expect(a.Len()).To(BeZero())
	})
})

var _ = Describe("WithCapacity", func() {
	It("rejects negative capacities", func() {
		_, err := dynarray.WithCapacity[int](-5)
		Expect(err).To(MatchError(dynarray.ErrNegativeCapacity))
	})
})
