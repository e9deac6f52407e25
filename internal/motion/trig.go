package motion

import "math"

// trigTable holds precomputed sin/cos samples with linear interpolation
// between entries. Bulk action evaluation over N spins times M instants
// calls sin/cos once per sample, so the table pays off quickly.
type trigTable struct {
	sin []float64
	cos []float64
	n   int
}

// 4096 entries keeps interpolation error below ~3e-7 rad.
var defaultTrig = newTrigTable(4096)

func newTrigTable(n int) *trigTable {
	t := &trigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}
	return t
}

// SinCos returns interpolated sin and cos of x.
func (t *trigTable) SinCos(x float64) (sin, cos float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	frac := idx - float64(i)

	i0 := i % t.n
	i1 := (i + 1) % t.n

	sin = t.sin[i0]*(1-frac) + t.sin[i1]*frac
	cos = t.cos[i0]*(1-frac) + t.cos[i1]*frac
	return
}

func fastSinCos(x float64) (float64, float64) {
	return defaultTrig.SinCos(x)
}
