package phantom

import (
	"fmt"
	"math"

	"github.com/san-kum/spinmotion/internal/motion"
)

// Ring places n spins evenly on a circle of the given radius in the z=0
// plane.
func Ring(n int, radius float64) (x, y, z []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		x[i] = radius * math.Cos(angle)
		y[i] = radius * math.Sin(angle)
	}
	return x, y, z
}

// Grid places nx*ny spins on a regular lattice centered on the origin.
func Grid(nx, ny int, spacing float64) (x, y, z []float64) {
	n := nx * ny
	x = make([]float64, 0, n)
	y = make([]float64, 0, n)
	z = make([]float64, 0, n)
	ox := -spacing * float64(nx-1) / 2
	oy := -spacing * float64(ny-1) / 2
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x = append(x, ox+spacing*float64(i))
			y = append(y, oy+spacing*float64(j))
			z = append(z, 0)
		}
	}
	return x, y, z
}

// Scenario returns a preset motion model for a population of n spins.
func Scenario(name string, n int) (motion.Model, error) {
	switch name {
	case "static":
		return motion.NoMotion{}, nil

	case "drift":
		return motion.New(motion.Motion{
			Action: motion.Translate{DX: 0.01},
			Time:   motion.TimeRange{Start: 0, End: 1},
			Spins:  motion.AllSpins(),
		})

	case "cardiac":
		return motion.New(
			motion.Motion{
				Action: motion.HeartBeat{RadialStrain: -0.3, LongStrain: 0.1},
				Time:   motion.Periodic{Period: 1, Asymmetry: 0.3},
				Spins:  motion.AllSpins(),
			},
			motion.Motion{
				Action: motion.Rotate{Yaw: 5},
				Time:   motion.Periodic{Period: 1, Asymmetry: 0.3},
				Spins:  motion.AllSpins(),
			},
		)

	case "flow":
		dx := make([][]float64, n)
		dy := make([][]float64, n)
		dz := make([][]float64, n)
		for i := range dx {
			// Parabolic profile: center spins travel farthest.
			v := 0.02 * (1 - math.Pow(2*float64(i)/float64(max(n-1, 1))-1, 2))
			dx[i] = []float64{0, v, 2 * v}
			dy[i] = []float64{0, 0, 0}
			dz[i] = []float64{0, 0, 0}
		}
		return motion.New(motion.Motion{
			Action: motion.Path{DX: dx, DY: dy, DZ: dz},
			Time:   motion.TimeRange{Start: 0, End: 1},
			Spins:  motion.AllSpins(),
		})

	default:
		return nil, fmt.Errorf("phantom: unknown scenario %q", name)
	}
}

// ScenarioNames lists the available motion scenario presets.
func ScenarioNames() []string {
	return []string{"static", "drift", "cardiac", "flow"}
}
