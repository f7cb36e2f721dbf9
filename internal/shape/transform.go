package shape

import (
	"fmt"
	"math/cmplx"
)

// Transform maps a point p to p*Rotation + Translation. The rotation factor
// may have any non-zero magnitude, in which case it also scales. The zero
// Transform is the identity.
type Transform struct {
	rotation    Point
	translation Point
}

// Identity leaves every point where it is.
var Identity = Transform{rotation: 1}

// NewTransform builds a transform. A zero or non-finite rotation has no
// direction and is rejected with ErrInvalidTransform.
func NewTransform(rotation, translation Point) (Transform, error) {
	if rotation == 0 || !isFinite(rotation) {
		return Transform{}, fmt.Errorf("%w: rotation factor %v", ErrInvalidTransform, rotation)
	}
	if !isFinite(translation) {
		return Transform{}, fmt.Errorf("%w: translation %v", ErrInvalidTransform, translation)
	}
	return Transform{rotation: rotation, translation: translation}, nil
}

// Translation returns the pure translation by offset.
func Translation(offset Point) Transform {
	return Transform{rotation: 1, translation: offset}
}

// Rotation is the rotation factor, 1 for the zero Transform.
func (t Transform) Rotation() Point {
	if t.rotation == 0 {
		return 1
	}
	return t.rotation
}

func (t Transform) Translation() Point { return t.translation }

// Scale is the magnitude of the rotation factor.
func (t Transform) Scale() float64 {
	return cmplx.Abs(t.Rotation())
}

// Apply transforms a single point.
func (t Transform) Apply(p Point) Point {
	return p*t.Rotation() + t.translation
}

// TranslateBy returns t followed by a translation by offset. The rotation
// is unchanged.
func (t Transform) TranslateBy(offset Point) Transform {
	return Transform{rotation: t.rotation, translation: t.translation + offset}
}

// Apply transforms any shape, recursing into collections. Values that are not
// a Polygon, Circle or Collection fail with ErrUnsupportedShape.
func Apply(t Transform, s Shape) (Shape, error) {
	switch s := s.(type) {
	case Polygon:
		return s.Transformed(t), nil
	case Circle:
		return s.Transformed(t), nil
	case Collection:
		return s.Transformed(t)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
}

// Translated moves s by offset without rotating it.
func Translated(s Shape, offset Point) (Shape, error) {
	return Apply(Translation(offset), s)
}

// RotatedScaled rotates and scales s about the origin by factor.
func RotatedScaled(s Shape, factor Point) (Shape, error) {
	t, err := NewTransform(factor, 0)
	if err != nil {
		return nil, err
	}
	return Apply(t, s)
}
