package metrics

// MeanGrowth averages the per-period growth rate k[t]/k[t-1] - 1.
// Periods with zero previous capital are skipped.
type MeanGrowth struct {
	prev    float64
	hasPrev bool
	sum     float64
	samples int
}

func NewMeanGrowth() *MeanGrowth {
	return &MeanGrowth{}
}

func (g *MeanGrowth) Name() string {
	return "mean_growth"
}

func (g *MeanGrowth) Observe(k float64, t int) {
	if g.hasPrev && g.prev != 0 {
		g.sum += k/g.prev - 1
		g.samples++
	}
	g.prev = k
	g.hasPrev = true
}

func (g *MeanGrowth) Value() float64 {
	if g.samples == 0 {
		return 0
	}
	return g.sum / float64(g.samples)
}

func (g *MeanGrowth) Reset() {
	g.prev = 0
	g.hasPrev = false
	g.sum = 0
	g.samples = 0
}
