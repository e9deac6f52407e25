// Package timegrid builds time sampling grids for trajectory evaluation.
// Motion breakpoints mark the instants where a motion's effective value
// changes; a sufficient grid hits every breakpoint and never exceeds a
// maximum sample spacing in between.
package timegrid

import (
	"fmt"
	"math"
	"sort"
)

// Uniform returns instants 0, dt, 2dt, ... covering [0, duration]. The
// final instant is always duration itself.
func Uniform(duration, dt float64) ([]float64, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("timegrid: dt must be positive, got %f", dt)
	}
	if duration < 0 {
		return nil, fmt.Errorf("timegrid: duration must be non-negative, got %f", duration)
	}

	steps := int(math.Ceil(duration / dt))
	grid := make([]float64, 0, steps+1)
	for i := 0; i < steps; i++ {
		grid = append(grid, float64(i)*dt)
	}
	return append(grid, duration), nil
}

// FromBreakpoints returns a grid containing every breakpoint, with the gap
// between adjacent breakpoints subdivided evenly so no two samples are more
// than dt apart. Breakpoints may arrive unsorted or duplicated.
func FromBreakpoints(bps []float64, dt float64) ([]float64, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("timegrid: dt must be positive, got %f", dt)
	}
	if len(bps) == 0 {
		return []float64{0}, nil
	}

	sorted := make([]float64, len(bps))
	copy(sorted, bps)
	sort.Float64s(sorted)

	grid := []float64{sorted[0]}
	for _, b := range sorted[1:] {
		prev := grid[len(grid)-1]
		if b == prev {
			continue
		}
		steps := int(math.Ceil((b - prev) / dt))
		for k := 1; k < steps; k++ {
			grid = append(grid, prev+(b-prev)*float64(k)/float64(steps))
		}
		grid = append(grid, b)
	}
	return grid, nil
}

// Extend stretches a grid beyond its last breakpoint up to duration, keeping
// the dt spacing. Grids from FromBreakpoints cover only the motion's active
// window; trajectories are usually sampled past it.
func Extend(grid []float64, duration, dt float64) ([]float64, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("timegrid: dt must be positive, got %f", dt)
	}
	if len(grid) == 0 {
		return Uniform(duration, dt)
	}

	out := make([]float64, len(grid))
	copy(out, grid)
	for t := out[len(out)-1] + dt; t < duration; t += dt {
		out = append(out, t)
	}
	if out[len(out)-1] < duration {
		out = append(out, duration)
	}
	return out, nil
}
