package workload

import (
	"context"
	"fmt"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
)

// Step records one applied op and the array state after it.
type Step struct {
	Index    int    `json:"index"`
	Op       string `json:"op"`
	Arg      int    `json:"arg"`
	Value    int    `json:"value"`
	Order    string `json:"order,omitempty"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Grew     bool   `json:"grew"`
	Err      string `json:"error,omitempty"`
	Snapshot string `json:"snapshot"`
}

type Result struct {
	Name     string
	Steps    []Step
	Final    string
	Size     int
	Capacity int
	Metrics  map[string]float64
}

// Observer is notified after every step, e.g. to drive a live view.
type Observer interface {
	OnStep(s Step)
}

type Runner struct {
	registry  *Registry
	metrics   []Metric
	observers []Observer
}

func NewRunner(registry *Registry) *Runner {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Runner{
		registry:  registry,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// NewArray builds the initial, empty array for cfg.
func NewArray(cfg *config.Config) (*dynarray.Array[Item], error) {
	if c, ok := cfg.Capacity(); ok {
		return dynarray.WithCapacity[Item](c)
	}
	return dynarray.New[Item](), nil
}

// Plan expands cfg into the ops actually replayed: one add per initial
// value followed by the configured ops, with every sort order resolved.
func Plan(cfg *config.Config) []config.OpConfig {
	ops := make([]config.OpConfig, 0, len(cfg.Values)+len(cfg.Ops))
	for _, v := range cfg.Values {
		ops = append(ops, config.OpConfig{Op: config.OpAdd, Value: v})
	}
	for _, op := range cfg.Ops {
		if op.Op == config.OpSort {
			op.Order = cfg.SortOrder(op)
		}
		ops = append(ops, op)
	}
	return ops
}

// Run replays cfg against a fresh array. Index errors are recorded on the
// step and replay continues, unless cfg.StopOnError is set, in which case
// the partial result is returned with a *StepError.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := NewArray(cfg)
	if err != nil {
		return nil, err
	}

	ops := Plan(cfg)
	result := &Result{
		Name:    cfg.Name,
		Steps:   make([]Step, 0, len(ops)),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i, op := range ops {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		step, opErr := r.Apply(a, op)
		step.Index = i

		for _, m := range r.metrics {
			m.Observe(step)
		}
		for _, obs := range r.observers {
			obs.OnStep(step)
		}
		result.Steps = append(result.Steps, step)

		if opErr != nil && cfg.StopOnError {
			r.finish(result, a)
			return result, &StepError{Step: i, Op: op.Op, Wrapped: opErr}
		}
	}

	r.finish(result, a)
	return result, nil
}

// Apply performs a single op on a and describes the outcome. Index errors
// are returned and also recorded on the step; an unknown sort order is
// returned as an error as well.
func (r *Runner) Apply(a *dynarray.Array[Item], op config.OpConfig) (Step, error) {
	before := a.Cap()
	step := Step{Op: op.Op}

	var err error
	switch op.Op {
	case config.OpAdd:
		step.Value = op.Value
		a.Add(Item(op.Value))
	case config.OpInsert:
		step.Arg, step.Value = op.Index, op.Value
		err = a.Insert(op.Index, Item(op.Value))
	case config.OpGet:
		step.Arg = op.Index
		var v Item
		v, err = a.Get(op.Index)
		step.Value = int(v)
	case config.OpSet:
		step.Arg, step.Value = op.Index, op.Value
		err = a.Set(op.Index, Item(op.Value))
	case config.OpRemove:
		step.Arg = op.Index
		err = a.Remove(op.Index)
	case config.OpClear:
		a.Clear()
	case config.OpSort:
		step.Order = config.OrderOf(op)
		var sorter Sorter
		sorter, err = r.registry.GetOrder(step.Order)
		if err == nil {
			sorter(a)
		}
	default:
		err = fmt.Errorf("unknown op: %s", op.Op)
	}

	if err != nil {
		step.Err = err.Error()
	}
	step.Size = a.Len()
	step.Capacity = a.Cap()
	// clear can raise capacity back to the default; that is a reset, not growth.
	step.Grew = (op.Op == config.OpAdd || op.Op == config.OpInsert) && step.Capacity > before
	step.Snapshot = a.String()
	return step, err
}

func (r *Runner) finish(result *Result, a *dynarray.Array[Item]) {
	result.Final = a.String()
	result.Size = a.Len()
	result.Capacity = a.Cap()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
