package motion

import "math"

// HeartBeat contracts spins toward the z axis like a beating ventricle wall.
// At local time one a spin at cylinder radius r has moved RadialStrain*r
// radially, rotated CircStrain radians circumferentially and stretched
// LongStrain*z along z. Negative strains contract. It reads the current
// coordinates, so it composes sequentially with earlier actions.
type HeartBeat struct {
	RadialStrain float64
	CircStrain   float64 // radians
	LongStrain   float64
}

func (a HeartBeat) Composable() bool { return true }

func (a HeartBeat) DisplacementAt(_ int, x, y, z, lt float64) (float64, float64, float64) {
	r := math.Hypot(x, y)
	theta := math.Atan2(y, x)

	nr := r * (1 + lt*a.RadialStrain)
	if nr < 0 {
		nr = 0
	}
	sin, cos := fastSinCos(theta + lt*a.CircStrain)

	return nr*cos - x, nr*sin - y, lt * a.LongStrain * z
}

func (a HeartBeat) EqualAction(other Action, tol float64) bool {
	o, ok := other.(HeartBeat)
	if !ok {
		return false
	}
	return near(a.RadialStrain, o.RadialStrain, tol) &&
		near(a.CircStrain, o.CircStrain, tol) &&
		near(a.LongStrain, o.LongStrain, tol)
}
