package motion

import (
	"fmt"
	"sort"
)

// TimeSamples carries the time instants coordinates are evaluated at:
// either one shared row broadcast to every spin, or one row per spin for
// spin-dependent timing.
type TimeSamples struct {
	shared []float64
	rows   [][]float64
}

// SharedTimes broadcasts one instant row to all spins.
func SharedTimes(ts []float64) TimeSamples {
	return TimeSamples{shared: ts}
}

// PerSpinTimes gives each spin its own instant row. All rows must have the
// same length and the row count must match the spin count.
func PerSpinTimes(rows [][]float64) TimeSamples {
	return TimeSamples{rows: rows}
}

// Cols returns the number of time samples per spin.
func (t TimeSamples) Cols() int {
	if t.shared != nil {
		return len(t.shared)
	}
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// Row returns the instant row for spin i.
func (t TimeSamples) Row(i int) []float64 {
	if t.shared != nil {
		return t.shared
	}
	return t.rows[i]
}

func (t TimeSamples) validate(n int) error {
	if t.shared != nil {
		return nil
	}
	if len(t.rows) != n {
		return fmt.Errorf("%w: %d rows for %d spins", ErrTimeRows, len(t.rows), n)
	}
	cols := t.Cols()
	for i, r := range t.rows {
		if len(r) != cols {
			return fmt.Errorf("%w: row %d has %d samples, want %d", ErrTimeRows, i, len(r), cols)
		}
	}
	return nil
}

// SpinCoords for the motionless sentinel broadcasts the initial coordinates
// across every time sample.
func (NoMotion) SpinCoords(x, y, z []float64, t TimeSamples) ([][]float64, [][]float64, [][]float64, error) {
	if err := validateInputs(len(x), y, z, t); err != nil {
		return nil, nil, nil, err
	}
	m := t.Cols()
	return broadcast(x, m), broadcast(y, m), broadcast(z, m), nil
}

// SpinCoords evaluates every spin's position at every time sample. The
// composable motions run as a strictly ordered fold in declaration order,
// each reading the coordinates displaced by its predecessors; the additive
// motions then accumulate their displacements onto the composed state,
// concurrently when their selectors are pairwise disjoint.
func (ml *MotionList) SpinCoords(x, y, z []float64, t TimeSamples) ([][]float64, [][]float64, [][]float64, error) {
	n := len(x)
	if err := validateInputs(n, y, z, t); err != nil {
		return nil, nil, nil, err
	}
	if err := ml.validateSelectors(n); err != nil {
		return nil, nil, nil, err
	}

	m := t.Cols()
	xt := broadcast(x, m)
	yt := broadcast(y, m)
	zt := broadcast(z, m)

	var composable, additive []Motion
	for _, mo := range ml.motions {
		if mo.Action.Composable() {
			composable = append(composable, mo)
		} else {
			additive = append(additive, mo)
		}
	}

	// The fold follows declaration order even after SortMotions has
	// reordered the list for canonical comparison.
	sort.SliceStable(composable, func(i, j int) bool {
		return composable[i].declared < composable[j].declared
	})

	for _, mo := range composable {
		applyMotion(mo, xt, yt, zt, t, n, true)
	}

	if len(additive) > 1 && disjointSelectors(additive, n) {
		ParallelMotions(additive, func(mo Motion) {
			applyMotion(mo, xt, yt, zt, t, n, false)
		})
	} else {
		for _, mo := range additive {
			applyMotion(mo, xt, yt, zt, t, n, true)
		}
	}

	return xt, yt, zt, nil
}

// applyMotion adds one motion's displacement in place to the rows its
// selector addresses. With parallelRows, disjoint row chunks are split
// across workers; a single motion's rows never depend on each other.
func applyMotion(mo Motion, xt, yt, zt [][]float64, t TimeSamples, n int, parallelRows bool) {
	rows := mo.Spins.Resolve(n)
	if len(rows) == 0 {
		return
	}

	work := func(start, end int) {
		for ri := start; ri < end; ri++ {
			i := rows[ri]
			xr, yr, zr := xt[i], yt[i], zt[i]
			for j, tv := range t.Row(i) {
				lt := mo.Time.LocalTime(tv)
				dx, dy, dz := mo.Action.DisplacementAt(ri, xr[j], yr[j], zr[j], lt)
				xr[j] += dx
				yr[j] += dy
				zr[j] += dz
			}
		}
	}

	if parallelRows {
		ParallelFor(len(rows), minRowChunk, work)
	} else {
		work(0, len(rows))
	}
}

// disjointSelectors reports whether no spin is addressed by two motions.
// Overlapping additive selectors fall back to sequential accumulation:
// summation commutes, but unsynchronized read-modify-write on shared rows
// does not.
func disjointSelectors(motions []Motion, n int) bool {
	seen := make([]bool, n)
	for _, mo := range motions {
		for _, i := range mo.Spins.Resolve(n) {
			if seen[i] {
				return false
			}
			seen[i] = true
		}
	}
	return true
}

func (ml *MotionList) validateSelectors(n int) error {
	for k, mo := range ml.motions {
		rows := mo.Spins.Resolve(n)
		for _, i := range rows {
			if i < 0 || i >= n {
				return fmt.Errorf("%w: motion %d selects spin %d of %d", ErrIndexRange, k, i, n)
			}
		}
		if ps, ok := mo.Action.(perSpinAction); ok && ps.Rows() != len(rows) {
			return fmt.Errorf("%w: motion %d has %d action rows for %d selected spins",
				ErrShapeMismatch, k, ps.Rows(), len(rows))
		}
	}
	return nil
}

func validateInputs(n int, y, z []float64, t TimeSamples) error {
	if len(y) != n || len(z) != n {
		return fmt.Errorf("%w: x=%d y=%d z=%d", ErrShapeMismatch, n, len(y), len(z))
	}
	return t.validate(n)
}

func broadcast(v []float64, m int) [][]float64 {
	out := make([][]float64, len(v))
	for i, val := range v {
		row := make([]float64, m)
		for j := range row {
			row[j] = val
		}
		out[i] = row
	}
	return out
}
