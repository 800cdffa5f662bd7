package metrics

import "math"

// Residual tracks the absolute change in capital over the most recent
// period. At a steady state it approaches zero.
type Residual struct {
	prev    float64
	hasPrev bool
	value   float64
}

func NewResidual() *Residual {
	return &Residual{}
}

func (r *Residual) Name() string {
	return "residual"
}

func (r *Residual) Observe(k float64, t int) {
	if r.hasPrev {
		r.value = math.Abs(k - r.prev)
	}
	r.prev = k
	r.hasPrev = true
}

func (r *Residual) Value() float64 {
	return r.value
}

func (r *Residual) Reset() {
	r.prev = 0
	r.hasPrev = false
	r.value = 0
}
