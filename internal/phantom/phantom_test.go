package phantom_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinmotion/internal/motion"
	"github.com/san-kum/spinmotion/internal/phantom"
)

var _ = Describe("Phantom", func() {
	Describe("construction", func() {
		It("rejects coordinate vectors of differing lengths", func() {
			_, err := phantom.New("bad", []float64{1, 2}, []float64{1}, []float64{1, 2}, nil)
			Expect(err).To(HaveOccurred())
		})

		It("defaults a nil model to NoMotion", func() {
			p, err := phantom.New("still", []float64{1}, []float64{2}, []float64{3}, nil)
			Expect(err).NotTo(HaveOccurred())

			xt, yt, zt, err := p.Coords(motion.SharedTimes([]float64{0, 1}))
			Expect(err).NotTo(HaveOccurred())
			Expect(xt[0]).To(Equal([]float64{1, 1}))
			Expect(yt[0]).To(Equal([]float64{2, 2}))
			Expect(zt[0]).To(Equal([]float64{3, 3}))
		})
	})

	Describe("Coords", func() {
		It("applies the attached motion model", func() {
			ml, err := motion.New(motion.Motion{
				Action: motion.Translate{DX: 1},
				Time:   motion.TimeRange{Start: 0, End: 1},
				Spins:  motion.AllSpins(),
			})
			Expect(err).NotTo(HaveOccurred())

			p, err := phantom.New("drifting", []float64{0, 0}, []float64{0, 0}, []float64{0, 0}, ml)
			Expect(err).NotTo(HaveOccurred())

			xt, _, _, err := p.Coords(motion.SharedTimes([]float64{0.5, 1}))
			Expect(err).NotTo(HaveOccurred())
			Expect(xt[0]).To(Equal([]float64{0.5, 1}))
			Expect(xt[1]).To(Equal([]float64{0.5, 1}))
		})
	})

	Describe("SubSelect", func() {
		It("restricts coordinates and motion together", func() {
			ml, err := motion.New(motion.Motion{
				Action: motion.Translate{DY: 2},
				Time:   motion.TimeRange{Start: 0, End: 1},
				Spins:  motion.SpinIndices(1),
			})
			Expect(err).NotTo(HaveOccurred())

			p, err := phantom.New("pair", []float64{10, 20}, []float64{0, 0}, []float64{0, 0}, ml)
			Expect(err).NotTo(HaveOccurred())

			sub, err := p.SubSelect([]int{1})
			Expect(err).NotTo(HaveOccurred())
			Expect(sub.SpinCount()).To(Equal(1))
			Expect(sub.X).To(Equal([]float64{20}))

			_, yt, _, err := sub.Coords(motion.SharedTimes([]float64{1}))
			Expect(err).NotTo(HaveOccurred())
			Expect(yt[0][0]).To(BeNumerically("~", 2, 1e-12))
		})

		It("degrades to the motionless sentinel when no motion survives", func() {
			ml, err := motion.New(motion.Motion{
				Action: motion.Translate{DX: 1},
				Time:   motion.TimeRange{Start: 0, End: 1},
				Spins:  motion.SpinIndices(0),
			})
			Expect(err).NotTo(HaveOccurred())

			p, err := phantom.New("pair", []float64{1, 2}, []float64{0, 0}, []float64{0, 0}, ml)
			Expect(err).NotTo(HaveOccurred())

			sub, err := p.SubSelect([]int{1})
			Expect(err).NotTo(HaveOccurred())
			Expect(sub.Motion).To(BeAssignableToTypeOf(motion.NoMotion{}))
		})

		It("rejects out-of-range indices", func() {
			p, err := phantom.New("one", []float64{1}, []float64{1}, []float64{1}, nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = p.SubSelect([]int{3})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Vcat", func() {
		It("concatenates populations and re-bases the second motion model", func() {
			mlB, err := motion.New(motion.Motion{
				Action: motion.Translate{DZ: 1},
				Time:   motion.TimeRange{Start: 0, End: 1},
				Spins:  motion.AllSpins(),
			})
			Expect(err).NotTo(HaveOccurred())

			a, _ := phantom.New("a", []float64{1, 2}, []float64{0, 0}, []float64{0, 0}, nil)
			b, _ := phantom.New("b", []float64{3}, []float64{0}, []float64{0}, mlB)

			c := phantom.Vcat(a, b)
			Expect(c.SpinCount()).To(Equal(3))
			Expect(c.X).To(Equal([]float64{1, 2, 3}))

			_, _, zt, err := c.Coords(motion.SharedTimes([]float64{1}))
			Expect(err).NotTo(HaveOccurred())
			Expect(zt[0][0]).To(BeZero())
			Expect(zt[1][0]).To(BeZero())
			Expect(zt[2][0]).To(BeNumerically("~", 1, 1e-12))
		})
	})

	Describe("presets", func() {
		It("builds every named scenario", func() {
			for _, name := range phantom.ScenarioNames() {
				m, err := phantom.Scenario(name, 8)
				Expect(err).NotTo(HaveOccurred(), "scenario %s", name)
				Expect(m).NotTo(BeNil())
			}
		})

		It("rejects unknown scenarios", func() {
			_, err := phantom.Scenario("teleport", 8)
			Expect(err).To(HaveOccurred())
		})

		It("evaluates the cardiac scenario on a ring", func() {
			x, y, z := phantom.Ring(8, 1.0)
			m, err := phantom.Scenario("cardiac", 8)
			Expect(err).NotTo(HaveOccurred())

			p, err := phantom.New("heart", x, y, z, m)
			Expect(err).NotTo(HaveOccurred())

			// Peak contraction at the top of the triangle wave.
			xt, yt, _, err := p.Coords(motion.SharedTimes([]float64{0.3}))
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 8; i++ {
				r := xt[i][0]*xt[i][0] + yt[i][0]*yt[i][0]
				Expect(r).To(BeNumerically("<", 1.0))
			}
		})

		It("sizes grids as nx*ny", func() {
			x, y, z := phantom.Grid(3, 4, 0.1)
			Expect(x).To(HaveLen(12))
			Expect(y).To(HaveLen(12))
			Expect(z).To(HaveLen(12))
		})
	})
})
