package motion

import "math"

// TimeSpan maps a global time instant to the normalized local time an
// Action is parametrized by.
type TimeSpan interface {
	// LocalTime returns the local time in [0, 1] for a global instant.
	LocalTime(t float64) float64

	// Times returns the ordered breakpoint instants at which the span's
	// effective value changes.
	Times() []float64

	// EqualSpan reports whether two spans are equal within tol.
	EqualSpan(other TimeSpan, tol float64) bool
}

// TimeRange is a one-shot interval. Local time is zero before Start, ramps
// linearly to one at End and clamps to one afterwards.
type TimeRange struct {
	Start float64
	End   float64
}

func (r TimeRange) LocalTime(t float64) float64 {
	if t <= r.Start {
		return 0
	}
	if t >= r.End {
		return 1
	}
	return (t - r.Start) / (r.End - r.Start)
}

func (r TimeRange) Times() []float64 {
	return []float64{r.Start, r.End}
}

func (r TimeRange) EqualSpan(other TimeSpan, tol float64) bool {
	o, ok := other.(TimeRange)
	if !ok {
		return false
	}
	return near(r.Start, o.Start, tol) && near(r.End, o.End, tol)
}

// Periodic is a repeating interval. Local time is a phase-wrapped triangle
// wave: it rises over the first Asymmetry fraction of each period and falls
// back over the remainder.
type Periodic struct {
	Period    float64
	Asymmetry float64
}

func (p Periodic) LocalTime(t float64) float64 {
	phase := math.Mod(t, p.Period)
	if phase < 0 {
		phase += p.Period
	}
	rise := p.Asymmetry * p.Period
	if phase < rise {
		return phase / rise
	}
	return (p.Period - phase) / (p.Period - rise)
}

func (p Periodic) Times() []float64 {
	return []float64{0, p.Asymmetry * p.Period, p.Period}
}

func (p Periodic) EqualSpan(other TimeSpan, tol float64) bool {
	o, ok := other.(Periodic)
	if !ok {
		return false
	}
	return near(p.Period, o.Period, tol) && near(p.Asymmetry, o.Asymmetry, tol)
}

func near(a, b, tol float64) bool {
	if tol == 0 {
		return a == b
	}
	return math.Abs(a-b) <= tol
}
