// Package sweep runs the simulation over grids of economic parameters,
// reporting the final and steady-state capital per grid point.
package sweep

import (
	"context"
	"fmt"

	"github.com/san-kum/growthsim/internal/analysis"
	"github.com/san-kum/growthsim/internal/econ"
	"github.com/san-kum/growthsim/internal/models"
)

// Point is the outcome of one simulation in a sweep.
type Point struct {
	Params       map[string]float64
	FinalCapital float64
	SteadyState  float64
	Converged    bool
	ConvergedAt  int
}

// Range generates n evenly spaced values in [from, to].
func Range(from, to float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{from}
	}
	values := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range values {
		values[i] = from + float64(i)*step
	}
	return values
}

type Sweep struct {
	base    *models.Solow
	k0      float64
	horizon int
	tol     float64
}

func New(base *models.Solow, k0 float64, horizon int, tol float64) *Sweep {
	return &Sweep{base: base, k0: k0, horizon: horizon, tol: tol}
}

// Run sweeps a single parameter over the given values.
func (s *Sweep) Run(ctx context.Context, param string, values []float64) ([]Point, error) {
	points := make([]Point, 0, len(values))
	for _, v := range values {
		select {
		case <-ctx.Done():
			return points, ctx.Err()
		default:
		}

		p, err := s.runOne(ctx, map[string]float64{param: v})
		if err != nil {
			return points, fmt.Errorf("sweep %s=%v: %w", param, v, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// RunGrid sweeps two parameters; the result is row-major over paramA.
func (s *Sweep) RunGrid(ctx context.Context, paramA string, valuesA []float64, paramB string, valuesB []float64) ([][]Point, error) {
	grid := make([][]Point, 0, len(valuesA))
	for _, a := range valuesA {
		row := make([]Point, 0, len(valuesB))
		for _, b := range valuesB {
			select {
			case <-ctx.Done():
				return grid, ctx.Err()
			default:
			}

			p, err := s.runOne(ctx, map[string]float64{paramA: a, paramB: b})
			if err != nil {
				return grid, fmt.Errorf("sweep %s=%v %s=%v: %w", paramA, a, paramB, b, err)
			}
			row = append(row, p)
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func (s *Sweep) runOne(ctx context.Context, overrides map[string]float64) (Point, error) {
	m := s.base.Clone()
	for name, v := range overrides {
		if err := m.SetParam(name, v); err != nil {
			return Point{}, err
		}
	}

	result, err := econ.New(m).Run(ctx, s.k0, econ.Config{Horizon: s.horizon, ValidatePath: true})
	if err != nil {
		return Point{}, err
	}

	summary := analysis.Measure(result.Path, m.SteadyState(), s.tol)

	return Point{
		Params:       overrides,
		FinalCapital: result.Path.Last(),
		SteadyState:  m.SteadyState(),
		Converged:    summary.Converged,
		ConvergedAt:  summary.ConvergedAt,
	}, nil
}
