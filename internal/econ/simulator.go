package econ

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	model     Model
	metrics   []Metric
	observers []Observer
}

func New(model Model) *Simulator {
	return &Simulator{
		model:     model,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run generates the capital path of length cfg.Horizon starting from k0.
// Element 0 is k0 exactly; element t is the model step applied to element
// t-1. The horizon is validated eagerly: a non-positive value returns
// ErrInvalidHorizon before any work is done.
func (s *Simulator) Run(ctx context.Context, k0 float64, cfg Config) (*Result, error) {
	if cfg.Horizon < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, cfg.Horizon)
	}

	path := make(Path, cfg.Horizon)
	path[0] = k0

	for _, m := range s.metrics {
		m.Reset()
	}
	s.observe(k0, 0)

	for t := 1; t < cfg.Horizon; t++ {
		select {
		case <-ctx.Done():
			result := &Result{Path: path[:t], Metrics: s.collect()}
			return result, ctx.Err()
		default:
		}

		k := s.model.Step(path[t-1])

		if cfg.ValidatePath && (math.IsNaN(k) || math.IsInf(k, 0)) {
			return nil, &PathError{Period: t, Capital: k, Wrapped: ErrInvalidPath}
		}

		path[t] = k
		s.observe(k, t)
	}

	return &Result{Path: path, Metrics: s.collect()}, nil
}

// RunWithCallback is the lazy counterpart of Run: capital values are
// produced on demand and handed to callback instead of being collected.
// Returning false from the callback stops the run early.
func (s *Simulator) RunWithCallback(ctx context.Context, k0 float64, cfg Config, callback func(k float64, t int) bool) error {
	if cfg.Horizon < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, cfg.Horizon)
	}

	k := k0
	if !callback(k, 0) {
		return nil
	}

	for t := 1; t < cfg.Horizon; t++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		k = s.model.Step(k)

		if cfg.ValidatePath && (math.IsNaN(k) || math.IsInf(k, 0)) {
			return &PathError{Period: t, Capital: k, Wrapped: ErrInvalidPath}
		}

		if !callback(k, t) {
			return nil
		}
	}

	return nil
}

func (s *Simulator) observe(k float64, t int) {
	for _, m := range s.metrics {
		m.Observe(k, t)
	}
	for _, obs := range s.observers {
		obs.OnPeriod(k, t)
	}
}

func (s *Simulator) collect() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Simulate is a convenience wrapper for callers that only need the path.
func Simulate(m Model, k0 float64, horizon int) (Path, error) {
	result, err := New(m).Run(context.Background(), k0, Config{Horizon: horizon, ValidatePath: true})
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}
