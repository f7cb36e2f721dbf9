package shape

import (
	"math"
	"math/cmplx"

	"github.com/jbeda/geom"
)

// Point is a planar coordinate held as a complex number, X in the real part
// and Y in the imaginary part. Adding points translates, multiplying by a
// Point rotates and scales about the origin.
type Point = complex128

func Pt(x, y float64) Point {
	return complex(x, y)
}

// Heading returns the unit rotation factor for an angle in degrees.
func Heading(degrees float64) Point {
	return cmplx.Rect(1, DegToRads(degrees))
}

func DegToRads(d float64) float64 {
	return d * math.Pi / 180.0
}

// Coord converts p to the geom package's coordinate type.
func Coord(p Point) geom.Coord {
	return geom.Coord{X: real(p), Y: imag(p)}
}

////////////////////////////////////////////////////////////////////////////
// Float comparison

// Good enough for millimetre geometry, not for the general case.
const FLOAT_EQUAL_THRESH = 0.00000001

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FLOAT_EQUAL_THRESH
}

func AlmostEqualsPoint(a, b Point) bool {
	return FloatAlmostEqual(real(a), real(b)) && FloatAlmostEqual(imag(a), imag(b))
}

func isFinite(p Point) bool {
	return !cmplx.IsNaN(p) && !cmplx.IsInf(p)
}
