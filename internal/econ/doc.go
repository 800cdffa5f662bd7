// Package econ provides core simulation primitives for discrete-time
// growth models.
//
// The package defines the fundamental interfaces and types for forward
// simulation of scalar recurrences (k[t+1] = f(k[t])):
//
//   - [Path]: ordered sequence of per-period capital values
//   - [Model]: interface for one-period transition maps
//   - [Metric]: per-period observation aggregated over a run
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	m := models.NewSolow()
//	s := econ.New(m)
//	result, _ := s.Run(ctx, 2.0, econ.Config{Horizon: 150})
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe, but each Run call touches
// only its own path, so distinct Simulator values may run concurrently.
package econ
