package models

import (
	"fmt"
	"math"
)

// Solow is the discrete-time Solow growth model with production k^alpha.
// One period of capital accumulation is
//
//	k' = k + s*k^alpha - delta*k
//
// i.e. reinvested output minus depreciation.
type Solow struct {
	// Alpha is the output elasticity of capital (economically 0 < Alpha < 1).
	Alpha float64
	// Delta is the per-period depreciation rate (economically 0 <= Delta < 1).
	Delta float64
	// Savings is the fraction of output reinvested (economically 0 <= Savings <= 1).
	Savings float64
}

func NewSolow() *Solow {
	return &Solow{
		Alpha:   0.3,
		Delta:   0.1,
		Savings: 0.3,
	}
}

func (m *Solow) Name() string {
	return "solow"
}

// Step returns next-period capital. For k < 0 with a fractional Alpha the
// production term math.Pow(k, Alpha) is NaN per IEEE 754; the simulator's
// path guard turns that into an error rather than trusting the value.
func (m *Solow) Step(k float64) float64 {
	return k + m.Savings*math.Pow(k, m.Alpha) - m.Delta*k
}

// Output is per-period production k^alpha.
func (m *Solow) Output(k float64) float64 {
	return math.Pow(k, m.Alpha)
}

// Investment is the reinvested share of output, s*k^alpha.
func (m *Solow) Investment(k float64) float64 {
	return m.Savings * m.Output(k)
}

// Depreciation is the capital lost in one period, delta*k.
func (m *Solow) Depreciation(k float64) float64 {
	return m.Delta * k
}

// Consumption is the non-reinvested share of output, (1-s)*k^alpha.
func (m *Solow) Consumption(k float64) float64 {
	return (1 - m.Savings) * m.Output(k)
}

// SteadyState returns the capital level k* at which savings exactly offset
// depreciation, s*k^alpha = delta*k, in closed form: (s/delta)^(1/(1-alpha)).
// Delta = 0 with positive savings has no finite steady state (+Inf);
// zero savings decay to 0.
func (m *Solow) SteadyState() float64 {
	if m.Savings == 0 {
		return 0
	}
	if m.Delta == 0 {
		return math.Inf(1)
	}
	return math.Pow(m.Savings/m.Delta, 1/(1-m.Alpha))
}

// GoldenRuleSavings is the savings rate maximizing steady-state
// consumption, which for Cobb-Douglas production equals alpha.
func (m *Solow) GoldenRuleSavings() float64 {
	return m.Alpha
}

// Validate reports parameter values outside the economically sensible
// ranges. The simulation core never calls this: ranges are deliberately
// unenforced there, and out-of-range values are the caller's choice.
func (m *Solow) Validate() error {
	if m.Alpha <= 0 || m.Alpha >= 1 {
		return fmt.Errorf("alpha must be in (0, 1), got %v", m.Alpha)
	}
	if m.Delta < 0 || m.Delta >= 1 {
		return fmt.Errorf("delta must be in [0, 1), got %v", m.Delta)
	}
	if m.Savings < 0 || m.Savings > 1 {
		return fmt.Errorf("savings must be in [0, 1], got %v", m.Savings)
	}
	return nil
}

func (m *Solow) GetParams() map[string]float64 {
	return map[string]float64{
		"alpha":   m.Alpha,
		"delta":   m.Delta,
		"savings": m.Savings,
	}
}

func (m *Solow) SetParam(name string, value float64) error {
	switch name {
	case "alpha":
		m.Alpha = value
	case "delta":
		m.Delta = value
	case "savings":
		m.Savings = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Clone returns an independent copy, for sweeps that mutate parameters.
func (m *Solow) Clone() *Solow {
	c := *m
	return &c
}
