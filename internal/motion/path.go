package motion

// Path displaces each selected spin along its own sampled trajectory. Each
// row holds K key-frame displacements spaced uniformly over local time
// [0, 1] and interpolated linearly in between; with a single key frame the
// displacement ramps linearly toward it. Rows follow the selector's
// ascending index order.
type Path struct {
	DX [][]float64
	DY [][]float64
	DZ [][]float64
}

func (a Path) Composable() bool { return false }

// Rows returns the per-spin row count, which must match the motion's
// selector at evaluation time.
func (a Path) Rows() int { return len(a.DX) }

func (a Path) DisplacementAt(i int, _, _, _, lt float64) (float64, float64, float64) {
	return sampleRow(a.DX[i], lt), sampleRow(a.DY[i], lt), sampleRow(a.DZ[i], lt)
}

func sampleRow(row []float64, lt float64) float64 {
	k := len(row)
	if k == 0 {
		return 0
	}
	if k == 1 {
		return lt * row[0]
	}
	pos := lt * float64(k-1)
	lo := int(pos)
	if lo >= k-1 {
		return row[k-1]
	}
	frac := pos - float64(lo)
	return row[lo]*(1-frac) + row[lo+1]*frac
}

func (a Path) EqualAction(other Action, tol float64) bool {
	o, ok := other.(Path)
	if !ok {
		return false
	}
	return equalMatrix(a.DX, o.DX, tol) &&
		equalMatrix(a.DY, o.DY, tol) &&
		equalMatrix(a.DZ, o.DZ, tol)
}

func equalMatrix(a, b [][]float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !near(a[i][j], b[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// restrictRows narrows the per-spin state to the given original row numbers.
// With share=true the returned action references the same row storage, so
// writes through the restriction remain visible to the original.
func (a Path) restrictRows(rows []int, share bool) Action {
	pick := func(m [][]float64) [][]float64 {
		out := make([][]float64, len(rows))
		for i, r := range rows {
			if share {
				out[i] = m[r]
			} else {
				c := make([]float64, len(m[r]))
				copy(c, m[r])
				out[i] = c
			}
		}
		return out
	}
	return Path{DX: pick(a.DX), DY: pick(a.DY), DZ: pick(a.DZ)}
}

func (a Path) cloneAction() Action {
	rows := make([]int, len(a.DX))
	for i := range rows {
		rows[i] = i
	}
	return a.restrictRows(rows, false)
}
