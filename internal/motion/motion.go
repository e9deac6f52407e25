package motion

// Motion is one scoped displacement rule: an action applied to a spin
// subset during a time span. It is a value type; structural list operations
// copy it so index re-basing never corrupts a shared original.
type Motion struct {
	Action Action
	Time   TimeSpan
	Spins  SpinSelector

	// declared is the motion's position at list construction. Composable
	// evaluation folds in this order no matter how the list is later
	// sorted; equality ignores it.
	declared int
}

// perSpinAction is implemented by actions carrying per-spin numeric state
// that must be narrowed alongside the selector.
type perSpinAction interface {
	Rows() int
	restrictRows(rows []int, share bool) Action
}

type cloneableAction interface {
	cloneAction() Action
}

// Times returns the motion's ordered breakpoint instants.
func (m Motion) Times() []float64 {
	return m.Time.Times()
}

func (m Motion) firstTime() float64 {
	return m.Times()[0]
}

// Restrict narrows the motion to the subset p of the population, given as
// ascending global indices. ok is false when no affected spin survives.
// With share=true, per-spin action state is aliased instead of copied.
func (m Motion) Restrict(p []int, share bool) (Motion, bool) {
	sel, ok := m.Spins.Restrict(p)
	if !ok {
		return Motion{}, false
	}

	act := m.Action
	if ps, isPS := act.(perSpinAction); isPS {
		act = ps.restrictRows(m.survivingRows(p), share)
	}

	return Motion{Action: act, Time: m.Time, Spins: sel, declared: m.declared}, true
}

// survivingRows maps the spins of p covered by the selector back to the
// motion's per-spin row numbers (the selector's ascending resolution order).
func (m Motion) survivingRows(p []int) []int {
	if m.Spins.all {
		return p
	}
	rank := make(map[int]int, len(m.Spins.indices))
	for r, g := range m.Spins.indices {
		rank[g] = r
	}
	var rows []int
	for _, g := range p {
		if r, ok := rank[g]; ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// ApproxEqual reports whether two motions are equal within tol on their
// floating-point parameters. Selectors compare exactly.
func (m Motion) ApproxEqual(other Motion, tol float64) bool {
	return m.Action.EqualAction(other.Action, tol) &&
		m.Time.EqualSpan(other.Time, tol) &&
		m.Spins.Equal(other.Spins)
}

// Equal reports exact equality.
func (m Motion) Equal(other Motion) bool {
	return m.ApproxEqual(other, 0)
}

func (m Motion) clone() Motion {
	act := m.Action
	if ca, ok := act.(cloneableAction); ok {
		act = ca.cloneAction()
	}
	return Motion{Action: act, Time: m.Time, Spins: m.Spins.clone(), declared: m.declared}
}
