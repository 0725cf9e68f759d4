package transfinite

import "errors"

var (
	// ErrNotReady is returned by Eval before SetupLoop has completed, or after
	// a mutation invalidated the cached setup.
	ErrNotReady = errors.New("surface is not ready for evaluation")

	ErrSideIndex     = errors.New("side index out of range")
	ErrSideCount     = errors.New("at least 3 sides are required")
	ErrDegree        = errors.New("degree must be at least 1")
	ErrControlPoint  = errors.New("invalid control point address")
	ErrIncompleteNet = errors.New("control net has unset points")
	ErrDomain        = errors.New("invalid domain")
	ErrNotFinite     = errors.New("surface evaluated to a non-finite point")
)
