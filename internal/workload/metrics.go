package workload

import "github.com/san-kum/dynarray/internal/config"

// Metric reduces the steps of a replay to one number.
type Metric interface {
	Name() string
	Observe(s Step)
	Value() float64
	Reset()
}

// Growths counts reallocations of the backing store.
type Growths struct {
	count int
}

func NewGrowths() *Growths { return &Growths{} }

func (g *Growths) Name() string { return "growths" }

func (g *Growths) Observe(s Step) {
	if s.Grew {
		g.count++
	}
}

func (g *Growths) Value() float64 { return float64(g.count) }
func (g *Growths) Reset()         { g.count = 0 }

// PeakCapacity tracks the largest capacity seen.
type PeakCapacity struct {
	peak int
}

func NewPeakCapacity() *PeakCapacity { return &PeakCapacity{} }

func (p *PeakCapacity) Name() string { return "peak_capacity" }

func (p *PeakCapacity) Observe(s Step) {
	if s.Capacity > p.peak {
		p.peak = s.Capacity
	}
}

func (p *PeakCapacity) Value() float64 { return float64(p.peak) }
func (p *PeakCapacity) Reset()         { p.peak = 0 }

// Errors counts failed ops.
type Errors struct {
	count int
}

func NewErrors() *Errors { return &Errors{} }

func (e *Errors) Name() string { return "errors" }

func (e *Errors) Observe(s Step) {
	if s.Err != "" {
		e.count++
	}
}

func (e *Errors) Value() float64 { return float64(e.count) }
func (e *Errors) Reset()         { e.count = 0 }

// Sorts counts sort steps that succeeded.
type Sorts struct {
	count int
}

func NewSorts() *Sorts { return &Sorts{} }

func (s *Sorts) Name() string { return "sorts" }

func (s *Sorts) Observe(st Step) {
	if st.Op == config.OpSort && st.Err == "" {
		s.count++
	}
}

func (s *Sorts) Value() float64 { return float64(s.count) }
func (s *Sorts) Reset()         { s.count = 0 }

// Fill is the mean size/capacity ratio over all steps.
type Fill struct {
	sum     float64
	samples int
}

func NewFill() *Fill { return &Fill{} }

func (f *Fill) Name() string { return "fill" }

func (f *Fill) Observe(s Step) {
	f.samples++
	if s.Capacity > 0 {
		f.sum += float64(s.Size) / float64(s.Capacity)
	}
}

func (f *Fill) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.sum / float64(f.samples)
}

func (f *Fill) Reset() {
	f.sum = 0
	f.samples = 0
}

// DefaultMetrics returns a fresh set of the standard metrics.
func DefaultMetrics() []Metric {
	return []Metric{NewGrowths(), NewPeakCapacity(), NewErrors(), NewSorts(), NewFill()}
}
