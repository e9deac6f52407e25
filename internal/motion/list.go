package motion

import (
	"sort"
)

// Model is the two-case motion description attached to a spin population:
// either [NoMotion] or a non-empty [*MotionList]. An empty list never stands
// in for "no motion".
type Model interface {
	// SpinCoords evaluates per-spin coordinates at every time sample.
	SpinCoords(x, y, z []float64, t TimeSamples) (xt, yt, zt [][]float64, err error)

	// Times returns the aggregated breakpoint instants, deduplicated,
	// ascending and starting with zero.
	Times() []float64

	// SubSelect restricts the model to the ascending index subset p,
	// deep-copying per-spin numeric state.
	SubSelect(p []int) Model

	// View is SubSelect sharing per-spin numeric state with the original,
	// so mutations through the restriction remain visible.
	View(p []int) Model
}

// NoMotion is the motionless sentinel: spins hold their initial coordinates
// at every instant.
type NoMotion struct{}

func (NoMotion) Times() []float64       { return []float64{0} }
func (NoMotion) SubSelect(_ []int) Model { return NoMotion{} }
func (NoMotion) View(_ []int) Model      { return NoMotion{} }

// MotionList is an ordered, non-empty collection of motions owning the
// composition algorithm. Construct it with [New].
type MotionList struct {
	motions []Motion
}

// New builds a MotionList from one or more motions, copying them in
// declaration order. Zero motions is an error: use [NoMotion] instead.
func New(motions ...Motion) (*MotionList, error) {
	if len(motions) == 0 {
		return nil, ErrNoMotions
	}
	owned := make([]Motion, len(motions))
	for i, m := range motions {
		owned[i] = m.clone()
	}
	return newList(owned), nil
}

// newList takes ownership of motions and stamps their declaration order,
// which composable evaluation follows regardless of later sorting.
func newList(motions []Motion) *MotionList {
	for i := range motions {
		motions[i].declared = i
	}
	return &MotionList{motions: motions}
}

// Len returns the motion count.
func (ml *MotionList) Len() int { return len(ml.motions) }

// Motion returns the i-th motion in current list order.
func (ml *MotionList) Motion(i int) Motion { return ml.motions[i] }

// SortMotions stably reorders the list ascending by each motion's earliest
// breakpoint. Sorting only canonicalizes the order for equality comparison:
// each motion remembers its construction position and composable evaluation
// folds by that, so sorted and unsorted lists produce identical coordinates.
func (ml *MotionList) SortMotions() {
	sort.SliceStable(ml.motions, func(i, j int) bool {
		return ml.motions[i].firstTime() < ml.motions[j].firstTime()
	})
}

// Equal reports exact equality. Both operands are sorted in place first so
// the comparison is invariant to declaration order; a length mismatch
// returns false without sorting.
func (ml *MotionList) Equal(other *MotionList) bool {
	return ml.ApproxEqual(other, 0)
}

// ApproxEqual is Equal with tolerance-based comparison of floating-point
// motion parameters. Like Equal, it sorts both operands in place.
func (ml *MotionList) ApproxEqual(other *MotionList, tol float64) bool {
	if ml.Len() != other.Len() {
		return false
	}
	ml.SortMotions()
	other.SortMotions()
	for i := range ml.motions {
		if !ml.motions[i].ApproxEqual(other.motions[i], tol) {
			return false
		}
	}
	return true
}

// Instants closer than this collapse to one breakpoint; spans constructed
// independently can carry float jitter on the same physical instant.
const timesTol = 1e-12

// Times aggregates every motion's breakpoints with a leading zero,
// deduplicated and ascending.
func (ml *MotionList) Times() []float64 {
	ts := []float64{0}
	for _, m := range ml.motions {
		ts = append(ts, m.Times()...)
	}
	sort.Float64s(ts)

	out := ts[:1]
	for _, t := range ts[1:] {
		if t-out[len(out)-1] > timesTol {
			out = append(out, t)
		}
	}
	return out
}

// SubSelect restricts every motion to the ascending index subset p, dropping
// motions with no surviving spins. An empty survivor set degrades to
// NoMotion, never to an empty list.
func (ml *MotionList) SubSelect(p []int) Model {
	return ml.restrict(p, false)
}

// View is SubSelect without copying per-spin action state.
func (ml *MotionList) View(p []int) Model {
	return ml.restrict(p, true)
}

func (ml *MotionList) restrict(p []int, share bool) Model {
	var kept []Motion
	for _, m := range ml.motions {
		if r, ok := m.Restrict(p, share); ok {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return NoMotion{}
	}
	return newList(kept)
}

// Vcat combines two models defined against populations of ns1 and ns2 spins
// into one model over the concatenated population. First-list motions are
// expanded over their ns1-sized domain; second-list motions are expanded
// over ns2 and re-based by +ns1. NoMotion operands contribute nothing.
func Vcat(a, b Model, ns1, ns2 int) Model {
	var out []Motion

	if la, ok := a.(*MotionList); ok {
		for _, m := range la.motions {
			c := m.clone()
			c.Spins = c.Spins.Expand(ns1)
			out = append(out, c)
		}
	}
	if lb, ok := b.(*MotionList); ok {
		for _, m := range lb.motions {
			c := m.clone()
			c.Spins = c.Spins.Expand(ns2).Shift(ns1)
			out = append(out, c)
		}
	}

	if len(out) == 0 {
		return NoMotion{}
	}
	return newList(out)
}
