package shape

import "errors"

var (
	// ErrInvalidTransform is returned when a transform would have a zero
	// rotation-scale factor and so no defined direction.
	ErrInvalidTransform = errors.New("invalid transform")

	// ErrInvalidGeometry is returned for non-positive lengths and radii,
	// out-of-range angles and degenerate shapes.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnsupportedShape is returned when a value that is not a Polygon,
	// Circle or Collection reaches a transform or a serializer.
	ErrUnsupportedShape = errors.New("unsupported shape kind")
)
