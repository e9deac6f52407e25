// Package phantom models the spin population whose trajectories the motion
// engine evaluates: per-spin initial coordinates plus an attached motion
// model.
package phantom

import (
	"fmt"

	"github.com/san-kum/spinmotion/internal/motion"
)

// Phantom is a named spin population. The coordinate vectors hold one value
// per spin; Motion describes how the population moves over time.
type Phantom struct {
	Name   string
	X      []float64
	Y      []float64
	Z      []float64
	Motion motion.Model
}

// New validates and builds a phantom. A nil motion model means motionless.
func New(name string, x, y, z []float64, m motion.Model) (*Phantom, error) {
	if len(y) != len(x) || len(z) != len(x) {
		return nil, fmt.Errorf("phantom: coordinate lengths differ: x=%d y=%d z=%d",
			len(x), len(y), len(z))
	}
	if m == nil {
		m = motion.NoMotion{}
	}
	return &Phantom{Name: name, X: x, Y: y, Z: z, Motion: m}, nil
}

// SpinCount returns the number of spins.
func (p *Phantom) SpinCount() int { return len(p.X) }

// Coords evaluates every spin's position at the given time samples.
func (p *Phantom) Coords(t motion.TimeSamples) (xt, yt, zt [][]float64, err error) {
	return p.Motion.SpinCoords(p.X, p.Y, p.Z, t)
}

// SubSelect returns an independent phantom restricted to the ascending index
// subset idx, with the motion model narrowed accordingly.
func (p *Phantom) SubSelect(idx []int) (*Phantom, error) {
	return p.restrict(idx, false)
}

// View is SubSelect sharing per-spin motion state with the original.
func (p *Phantom) View(idx []int) (*Phantom, error) {
	return p.restrict(idx, true)
}

func (p *Phantom) restrict(idx []int, share bool) (*Phantom, error) {
	n := p.SpinCount()
	x := make([]float64, len(idx))
	y := make([]float64, len(idx))
	z := make([]float64, len(idx))
	for j, i := range idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("phantom: index %d out of range for %d spins", i, n)
		}
		x[j], y[j], z[j] = p.X[i], p.Y[i], p.Z[i]
	}

	var m motion.Model
	if share {
		m = p.Motion.View(idx)
	} else {
		m = p.Motion.SubSelect(idx)
	}

	return &Phantom{Name: p.Name, X: x, Y: y, Z: z, Motion: m}, nil
}

// Vcat concatenates two phantoms into one population, re-basing the second
// phantom's motion indices past the first population.
func Vcat(a, b *Phantom) *Phantom {
	join := func(u, v []float64) []float64 {
		out := make([]float64, 0, len(u)+len(v))
		out = append(out, u...)
		return append(out, v...)
	}

	return &Phantom{
		Name:   a.Name + "+" + b.Name,
		X:      join(a.X, b.X),
		Y:      join(a.Y, b.Y),
		Z:      join(a.Z, b.Z),
		Motion: motion.Vcat(a.Motion, b.Motion, a.SpinCount(), b.SpinCount()),
	}
}
