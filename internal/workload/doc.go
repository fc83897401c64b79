// Package workload replays scenarios against a [dynarray.Array].
//
//   - [Runner]: applies a scenario op by op and records a [Step] per op
//   - [Registry]: named sort orders usable from scenario files
//   - [Metric]: observes steps and reduces them to a single value
//   - [Batch]: replays several scenarios concurrently
//
// Each replay owns its array, so a Runner may be shared between goroutines
// as long as its metrics are not.
package workload
