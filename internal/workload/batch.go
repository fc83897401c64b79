package workload

import (
	"context"
	"sync"

	"github.com/san-kum/dynarray/internal/config"
)

// Batch replays several scenarios concurrently. Every replay gets its own
// runner, metrics and array.
type Batch struct {
	registry *Registry
	metrics  func() []Metric
}

// NewBatch returns a Batch using metrics to build a metric set per replay.
// A nil metrics func means DefaultMetrics.
func NewBatch(registry *Registry, metrics func() []Metric) *Batch {
	if metrics == nil {
		metrics = DefaultMetrics
	}
	return &Batch{registry: registry, metrics: metrics}
}

// Run returns results in the order of cfgs. The first error encountered in
// that order is returned alongside all results.
func (b *Batch) Run(ctx context.Context, cfgs []*config.Config) ([]*Result, error) {
	results := make([]*Result, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	for i := range cfgs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			r := NewRunner(b.registry)
			for _, m := range b.metrics() {
				r.AddMetric(m)
			}

			results[idx], errs[idx] = r.Run(ctx, cfgs[idx])
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
