package motion

import "math"

// Action is a pure displacement function family. Implementations are closed
// variants dispatched through this interface rather than open runtime type
// switching.
type Action interface {
	// Composable reports whether the action must see the already-displaced
	// coordinates of earlier composable actions. Non-composable (additive)
	// actions accumulate independently of each other.
	Composable() bool

	// DisplacementAt returns the axis-wise displacement for one sample.
	// i is the row index local to the motion's selector ordering; x, y, z
	// are the current coordinates and lt the normalized local time.
	DisplacementAt(i int, x, y, z, lt float64) (dx, dy, dz float64)

	// EqualAction reports whether two actions are equal within tol.
	EqualAction(other Action, tol float64) bool
}

// Translate is a rigid translation reaching (DX, DY, DZ) at local time one.
type Translate struct {
	DX float64
	DY float64
	DZ float64
}

func (a Translate) Composable() bool { return false }

func (a Translate) DisplacementAt(_ int, _, _, _, lt float64) (float64, float64, float64) {
	return lt * a.DX, lt * a.DY, lt * a.DZ
}

func (a Translate) EqualAction(other Action, tol float64) bool {
	o, ok := other.(Translate)
	if !ok {
		return false
	}
	return near(a.DX, o.DX, tol) && near(a.DY, o.DY, tol) && near(a.DZ, o.DZ, tol)
}

// Rotate rotates spins about the origin, reaching the full Euler angles
// (degrees) at local time one. Rotation reads the current, possibly already
// displaced coordinates, so it composes sequentially with earlier actions.
type Rotate struct {
	Yaw   float64 // about z
	Pitch float64 // about y
	Roll  float64 // about x
}

func (a Rotate) Composable() bool { return true }

func (a Rotate) DisplacementAt(_ int, x, y, z, lt float64) (float64, float64, float64) {
	sa, ca := math.Sincos(lt * a.Yaw * math.Pi / 180)
	sb, cb := math.Sincos(lt * a.Pitch * math.Pi / 180)
	sg, cg := math.Sincos(lt * a.Roll * math.Pi / 180)

	// R = Rz(yaw) * Ry(pitch) * Rx(roll)
	nx := ca*cb*x + (ca*sb*sg-sa*cg)*y + (ca*sb*cg+sa*sg)*z
	ny := sa*cb*x + (sa*sb*sg+ca*cg)*y + (sa*sb*cg-ca*sg)*z
	nz := -sb*x + cb*sg*y + cb*cg*z

	return nx - x, ny - y, nz - z
}

func (a Rotate) EqualAction(other Action, tol float64) bool {
	o, ok := other.(Rotate)
	if !ok {
		return false
	}
	return near(a.Yaw, o.Yaw, tol) && near(a.Pitch, o.Pitch, tol) && near(a.Roll, o.Roll, tol)
}
