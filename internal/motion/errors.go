package motion

import "errors"

// Domain errors for motion list construction and evaluation.
var (
	// ErrNoMotions indicates a MotionList was constructed with zero motions.
	// Callers describing a motionless phantom must use [NoMotion] instead.
	ErrNoMotions = errors.New("motion: motion list needs at least one motion")

	// ErrShapeMismatch indicates coordinate vectors of differing lengths or
	// per-spin action state sized for a different spin count.
	ErrShapeMismatch = errors.New("motion: coordinate shape mismatch")

	// ErrIndexRange indicates a spin selector referencing indices outside
	// the coordinate arrays it is evaluated against.
	ErrIndexRange = errors.New("motion: spin index out of range")

	// ErrTimeRows indicates per-spin time samples whose row count does not
	// match the spin count.
	ErrTimeRows = errors.New("motion: time sample rows must match spin count")
)
