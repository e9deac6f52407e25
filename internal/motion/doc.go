// Package motion provides the motion composition engine for spin phantoms.
//
// A phantom's dynamics are described as a list of scoped displacement rules:
//
//   - [Action]: a pure displacement function family (translate, rotate, ...)
//   - [TimeSpan]: maps global time instants to normalized local time
//   - [SpinSelector]: the subset of spins a rule applies to
//   - [Motion]: one scoped rule combining the three
//   - [MotionList]: an ordered collection owning the composition algorithm
//
// Composition distinguishes two kinds of actions. Composable actions read
// the already-displaced coordinates produced by earlier composable actions
// and must therefore run as a strictly ordered fold. Additive actions depend
// only on the coordinate state left behind by the composable phase and
// accumulate independently of each other.
//
// # Example
//
//	m := motion.Motion{
//	    Action: motion.Translate{DX: 0.01},
//	    Time:   motion.TimeRange{Start: 0, End: 1},
//	    Spins:  motion.AllSpins(),
//	}
//	ml, _ := motion.New(m)
//	xt, yt, zt, _ := ml.SpinCoords(x, y, z, motion.SharedTimes(ts))
//
// # Thread Safety
//
// A MotionList is safe for concurrent evaluation: SpinCoords never mutates
// the list, only the output matrices it allocates for the call. Structural
// operations (SortMotions, Equal, ApproxEqual) mutate the list in place and
// must not race with other uses.
package motion
