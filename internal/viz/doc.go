// Package viz provides terminal visualization for array scenarios.
//
// The package implements an interactive stepper using the Bubble Tea framework:
//
//   - [Model]: replays a scenario op by op, drawing live and spare slots
//   - [RenderSlots]: one-line rendering of an array's backing store
//   - [CapacityChart]: asciigraph plot of size and capacity over time
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume replay
//	N     - Apply the next op (pauses)
//	R     - Restart the scenario
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
