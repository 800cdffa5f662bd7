package analysis

import (
	"math"

	"github.com/san-kum/growthsim/internal/econ"
)

// Summary captures how a capital path approached its steady state.
type Summary struct {
	Converged   bool    `json:"converged"`
	ConvergedAt int     `json:"convergedAt"` // first period with |delta k| < tol, -1 if never
	FinalDelta  float64 `json:"finalDelta"`  // |k[T-1] - k[T-2]|
	FinalGap    float64 `json:"finalGap"`    // |k[T-1] - k*|
	HalfLife    int     `json:"halfLife"`    // first period with gap <= half the initial gap, -1 if never
}

// Measure scans a path for convergence toward steady state kstar.
// A path is considered converged once successive differences stay
// below tol from some period onward.
func Measure(path econ.Path, kstar, tol float64) Summary {
	s := Summary{ConvergedAt: -1, HalfLife: -1}
	if len(path) == 0 {
		return s
	}

	s.FinalGap = math.Abs(path.Last() - kstar)

	initialGap := math.Abs(path[0] - kstar)
	for t, k := range path {
		if s.HalfLife == -1 && math.Abs(k-kstar) <= initialGap/2 {
			s.HalfLife = t
		}
	}

	if len(path) < 2 {
		return s
	}

	s.FinalDelta = math.Abs(path[len(path)-1] - path[len(path)-2])

	// Walk backwards so a transient early dip below tol does not count.
	firstStable := -1
	for t := len(path) - 1; t >= 1; t-- {
		if math.Abs(path[t]-path[t-1]) >= tol {
			break
		}
		firstStable = t
	}

	if firstStable != -1 {
		s.Converged = true
		s.ConvergedAt = firstStable
	}
	return s
}
