package econ_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/growthsim/internal/econ"
	"github.com/san-kum/growthsim/internal/models"
)

var _ = Describe("Solow capital path", func() {
	var m *models.Solow

	BeforeEach(func() {
		m = models.NewSolow() // alpha=0.3, delta=0.1, savings=0.3
	})

	Describe("path shape", func() {
		It("has exactly the requested number of periods", func() {
			for _, horizon := range []int{1, 2, 17, 150} {
				path, err := econ.Simulate(m, 2.0, horizon)
				Expect(err).NotTo(HaveOccurred())
				Expect(path).To(HaveLen(horizon))
				Expect(path[0]).To(Equal(2.0))
			}
		})

		It("yields only the initial capital for a one-period horizon", func() {
			path, err := econ.Simulate(m, 7.25, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(econ.Path{7.25}))
		})
	})

	Describe("convergence from below the steady state", func() {
		It("is non-decreasing and bounded above by k*", func() {
			kstar := m.SteadyState()
			path, err := econ.Simulate(m, 2.0, 150)
			Expect(err).NotTo(HaveOccurred())

			for t := 1; t < len(path); t++ {
				Expect(path[t]).To(BeNumerically(">=", path[t-1]-1e-12))
				Expect(path[t]).To(BeNumerically("<=", kstar+1e-9))
			}
		})

		It("starts at 2, rises strictly early, and settles near k*", func() {
			path, err := econ.Simulate(m, 2.0, 150)
			Expect(err).NotTo(HaveOccurred())
			Expect(path[0]).To(Equal(2.0))

			for t := 1; t < 20; t++ {
				Expect(path[t]).To(BeNumerically(">", path[t-1]))
			}

			deltas := path.Deltas()
			final := math.Abs(deltas[len(deltas)-1])
			Expect(final).To(BeNumerically("<", 1e-3))
			Expect(final).To(BeNumerically("<", math.Abs(deltas[0])))
		})

		It("reaches the point where savings offset depreciation", func() {
			path, err := econ.Simulate(m, 2.0, 600)
			Expect(err).NotTo(HaveOccurred())

			Expect(math.Abs(path[len(path)-1] - path[len(path)-2])).To(BeNumerically("<", 1e-6))

			limit := path.Last()
			Expect(m.Savings * math.Pow(limit, m.Alpha)).To(BeNumerically("~", m.Delta*limit, 1e-6))
			Expect(limit).To(BeNumerically("~", m.SteadyState(), 1e-4))
		})
	})

	Describe("convergence from above the steady state", func() {
		It("is non-increasing and bounded below by k*", func() {
			kstar := m.SteadyState()
			path, err := econ.Simulate(m, kstar*2, 300)
			Expect(err).NotTo(HaveOccurred())

			for t := 1; t < len(path); t++ {
				Expect(path[t]).To(BeNumerically("<=", path[t-1]+1e-12))
				Expect(path[t]).To(BeNumerically(">=", kstar-1e-9))
			}
		})
	})

	Describe("the steady state", func() {
		It("is a fixed point of the step", func() {
			kstar := m.SteadyState()
			Expect(m.Step(kstar)).To(BeNumerically("~", kstar, 1e-9))
		})

		It("produces a constant path when used as initial capital", func() {
			kstar := m.SteadyState()
			path, err := econ.Simulate(m, kstar, 200)
			Expect(err).NotTo(HaveOccurred())

			for _, k := range path {
				Expect(k).To(BeNumerically("~", kstar, 1e-9))
			}
		})
	})

	Describe("degenerate inputs", func() {
		It("stays at zero with zero initial capital", func() {
			path, err := econ.Simulate(m, 0, 50)
			Expect(err).NotTo(HaveOccurred())
			for _, k := range path {
				Expect(k).To(BeZero())
			}
		})

		It("fails fast on a non-positive horizon", func() {
			_, err := econ.Simulate(m, 2.0, 0)
			Expect(err).To(MatchError(econ.ErrInvalidHorizon))

			_, err = econ.Simulate(m, 2.0, -5)
			Expect(err).To(MatchError(econ.ErrInvalidHorizon))
		})

		It("surfaces NaN from negative capital as a path error", func() {
			_, err := econ.Simulate(m, -1.0, 10)
			Expect(err).To(MatchError(econ.ErrInvalidPath))
		})
	})
})
