// Package metrics summarizes evaluated spin trajectories.
package metrics

import "math"

// Metric observes one trajectory sample at a time. Samples arrive per spin
// in time order; the first observation of a spin is its initial position.
type Metric interface {
	Name() string
	Observe(spin int, t, x, y, z float64)
	Value() float64
	Reset()
}

// Evaluate walks the coordinate matrices through every metric and returns
// their final values by name.
func Evaluate(ms []Metric, ts []float64, xt, yt, zt [][]float64) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := range xt {
		for j, t := range ts {
			for _, m := range ms {
				m.Observe(i, t, xt[i][j], yt[i][j], zt[i][j])
			}
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

type point struct{ x, y, z float64 }

// MaxDisplacement tracks the largest distance any spin reaches from its
// initial position.
type MaxDisplacement struct {
	initial map[int]point
	max     float64
}

func NewMaxDisplacement() *MaxDisplacement {
	return &MaxDisplacement{initial: make(map[int]point)}
}

func (m *MaxDisplacement) Name() string { return "max_displacement" }

func (m *MaxDisplacement) Observe(spin int, _, x, y, z float64) {
	p0, ok := m.initial[spin]
	if !ok {
		m.initial[spin] = point{x, y, z}
		return
	}
	d := dist(p0, point{x, y, z})
	if d > m.max {
		m.max = d
	}
}

func (m *MaxDisplacement) Value() float64 { return m.max }

func (m *MaxDisplacement) Reset() {
	m.initial = make(map[int]point)
	m.max = 0
}

// PathLength accumulates the mean distance traveled per spin.
type PathLength struct {
	prev  map[int]point
	total float64
}

func NewPathLength() *PathLength {
	return &PathLength{prev: make(map[int]point)}
}

func (m *PathLength) Name() string { return "mean_path_length" }

func (m *PathLength) Observe(spin int, _, x, y, z float64) {
	p := point{x, y, z}
	if prev, ok := m.prev[spin]; ok {
		m.total += dist(prev, p)
	}
	m.prev[spin] = p
}

func (m *PathLength) Value() float64 {
	if len(m.prev) == 0 {
		return 0
	}
	return m.total / float64(len(m.prev))
}

func (m *PathLength) Reset() {
	m.prev = make(map[int]point)
	m.total = 0
}

// BoundingRadius tracks the largest distance any spin reaches from the
// origin at any instant.
type BoundingRadius struct {
	max float64
}

func NewBoundingRadius() *BoundingRadius { return &BoundingRadius{} }

func (m *BoundingRadius) Name() string { return "bounding_radius" }

func (m *BoundingRadius) Observe(_ int, _, x, y, z float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	if r > m.max {
		m.max = r
	}
}

func (m *BoundingRadius) Value() float64 { return m.max }
func (m *BoundingRadius) Reset()         { m.max = 0 }

func dist(a, b point) float64 {
	dx := a.x - b.x
	dy := a.y - b.y
	dz := a.z - b.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
