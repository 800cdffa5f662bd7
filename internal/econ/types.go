package econ

import "math"

// Path is an ordered sequence of capital values, one per period.
// Index 0 holds the initial capital.
type Path []float64

func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

func (p Path) IsValid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Last returns the final capital value, or 0 for an empty path.
func (p Path) Last() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Deltas returns the successive differences k[t+1]-k[t].
func (p Path) Deltas() []float64 {
	if len(p) < 2 {
		return nil
	}
	d := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = p[i] - p[i-1]
	}
	return d
}

// Model is a one-period transition map for a scalar state.
type Model interface {
	Step(k float64) float64
	Name() string
}

// Configurable models expose runtime-adjustable parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

type Metric interface {
	Name() string
	Observe(k float64, t int)
	Value() float64
	Reset()
}

type Observer interface {
	OnPeriod(k float64, t int)
}

type Config struct {
	// Horizon is the number of periods simulated, i.e. the path length.
	Horizon int
	// ValidatePath aborts the run when a NaN or Inf value is produced.
	ValidatePath bool
}

func DefaultConfig() Config {
	return Config{
		Horizon:      150,
		ValidatePath: true,
	}
}

type Result struct {
	Path    Path
	Metrics map[string]float64
}
