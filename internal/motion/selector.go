package motion

import "slices"

// SpinSelector identifies the spins a motion applies to, either the whole
// population or an explicit ascending index set. It is a value type: every
// operation returns a fresh selector and never mutates shared index storage.
type SpinSelector struct {
	all     bool
	indices []int
}

// AllSpins selects every spin of whatever population the motion is
// evaluated against.
func AllSpins() SpinSelector {
	return SpinSelector{all: true}
}

// SpinRange selects the half-open index range [lo, hi).
func SpinRange(lo, hi int) SpinSelector {
	idx := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		idx = append(idx, i)
	}
	return SpinSelector{indices: idx}
}

// SpinIndices selects an explicit index set. Indices are copied, sorted and
// deduplicated.
func SpinIndices(idx ...int) SpinSelector {
	c := slices.Clone(idx)
	slices.Sort(c)
	c = slices.Compact(c)
	return SpinSelector{indices: c}
}

// Resolve returns the selected indices within a population of n spins.
func (s SpinSelector) Resolve(n int) []int {
	if s.all {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	return slices.Clone(s.indices)
}

// Restrict narrows the selector to a subset p of the population, given as
// ascending global indices. The returned selector addresses positions within
// p. ok is false when no selected spin survives.
func (s SpinSelector) Restrict(p []int) (SpinSelector, bool) {
	if s.all {
		return AllSpins(), len(p) > 0
	}
	member := make(map[int]struct{}, len(s.indices))
	for _, i := range s.indices {
		member[i] = struct{}{}
	}
	var kept []int
	for j, g := range p {
		if _, ok := member[g]; ok {
			kept = append(kept, j)
		}
	}
	if len(kept) == 0 {
		return SpinSelector{}, false
	}
	return SpinSelector{indices: kept}, true
}

// Expand enumerates the selector explicitly over a domain of n spins, so a
// later Shift cannot miss implicitly-selected indices.
func (s SpinSelector) Expand(n int) SpinSelector {
	if s.all {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return SpinSelector{indices: idx}
	}
	return SpinSelector{indices: slices.Clone(s.indices)}
}

// Shift re-bases every index by off. The selector must be explicit
// (post-Expand); an all-spins selector is returned unchanged.
func (s SpinSelector) Shift(off int) SpinSelector {
	if s.all {
		return s
	}
	idx := make([]int, len(s.indices))
	for i, v := range s.indices {
		idx[i] = v + off
	}
	return SpinSelector{indices: idx}
}

// Equal reports whether two selectors cover the same index set.
func (s SpinSelector) Equal(other SpinSelector) bool {
	if s.all != other.all {
		return false
	}
	if s.all {
		return true
	}
	return slices.Equal(s.indices, other.indices)
}

func (s SpinSelector) clone() SpinSelector {
	if s.all {
		return s
	}
	return SpinSelector{indices: slices.Clone(s.indices)}
}
