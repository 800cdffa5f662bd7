package analysis

import (
	"github.com/san-kum/growthsim/internal/econ"
	"github.com/san-kum/growthsim/internal/models"
)

// Flows holds the per-period series derived from a capital path.
type Flows struct {
	Output       []float64
	Investment   []float64
	Depreciation []float64
	Consumption  []float64
}

// ComputeFlows evaluates the model's flow accounting at every period
// of the path. Investment + Consumption = Output holds pointwise.
func ComputeFlows(m *models.Solow, path econ.Path) Flows {
	f := Flows{
		Output:       make([]float64, len(path)),
		Investment:   make([]float64, len(path)),
		Depreciation: make([]float64, len(path)),
		Consumption:  make([]float64, len(path)),
	}
	for t, k := range path {
		f.Output[t] = m.Output(k)
		f.Investment[t] = m.Investment(k)
		f.Depreciation[t] = m.Depreciation(k)
		f.Consumption[t] = m.Consumption(k)
	}
	return f
}
