// Package shape holds the planar primitives and the affine transforms that
// move them.
package shape

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Shape is anything that can be placed on the canvas: a Polygon, a Circle or
// a Collection of them. Shapes are values and never change once built.
type Shape interface {
	Bounds() geom.Rect
}

// +++ Polygon

// Polygon is a filled closed outline. Vertex order is drawing order.
type Polygon struct {
	Points []Point
	Color  string
}

// NewPolygon copies points into a new polygon. Fewer than three vertices,
// or any non-finite vertex, is ErrInvalidGeometry.
func NewPolygon(color string, points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidGeometry, len(points))
	}
	for _, p := range points {
		if !isFinite(p) {
			return Polygon{}, fmt.Errorf("%w: polygon vertex %v", ErrInvalidGeometry, p)
		}
	}
	return Polygon{Points: append([]Point(nil), points...), Color: color}, nil
}

// Rectangle is the axis-aligned polygon with corners (x1,y1) and (x2,y2),
// wound (x1,y1) (x2,y1) (x2,y2) (x1,y2).
func Rectangle(color string, x1, y1, x2, y2 float64) Polygon {
	return Polygon{
		Points: []Point{Pt(x1, y1), Pt(x2, y1), Pt(x2, y2), Pt(x1, y2)},
		Color:  color,
	}
}

func (me Polygon) Transformed(t Transform) Polygon {
	points := make([]Point, len(me.Points))
	for i, p := range me.Points {
		points[i] = t.Apply(p)
	}
	return Polygon{Points: points, Color: me.Color}
}

func (me Polygon) Bounds() geom.Rect {
	if len(me.Points) == 0 {
		return geom.Rect{}
	}
	c := Coord(me.Points[0])
	r := geom.Rect{Min: c, Max: c}
	for _, p := range me.Points[1:] {
		r.ExpandToContainCoord(Coord(p))
	}
	return r
}

// +++ Circle

type Circle struct {
	Center Point
	Radius float64
	Color  string
}

func NewCircle(color string, center Point, radius float64) (Circle, error) {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Circle{}, fmt.Errorf("%w: circle radius %v", ErrInvalidGeometry, radius)
	}
	if !isFinite(center) {
		return Circle{}, fmt.Errorf("%w: circle center %v", ErrInvalidGeometry, center)
	}
	return Circle{Center: center, Radius: radius, Color: color}, nil
}

// Transformed moves the center and scales the radius by the magnitude of
// the rotation factor.
func (me Circle) Transformed(t Transform) Circle {
	return Circle{
		Center: t.Apply(me.Center),
		Radius: me.Radius * t.Scale(),
		Color:  me.Color,
	}
}

func (me Circle) Bounds() geom.Rect {
	r := Pt(me.Radius, me.Radius)
	return geom.Rect{Min: Coord(me.Center - r), Max: Coord(me.Center + r)}
}

// +++ Collection

// Collection is an ordered group of shapes moved as a unit. Later members
// paint over earlier ones.
type Collection []Shape

// Transformed applies t to every member, keeping order.
func (me Collection) Transformed(t Transform) (Collection, error) {
	r := make(Collection, 0, len(me))
	for i, s := range me {
		ts, err := Apply(t, s)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		r = append(r, ts)
	}
	return r, nil
}

// Translated is Transformed by a pure translation.
func (me Collection) Translated(offset Point) (Collection, error) {
	return me.Transformed(Translation(offset))
}

// RotatedScaled is Transformed by a rotation about the origin.
func (me Collection) RotatedScaled(factor Point) (Collection, error) {
	t, err := NewTransform(factor, 0)
	if err != nil {
		return nil, err
	}
	return me.Transformed(t)
}

// Bounds is the union of the members' bounds, or the zero Rect when empty.
// Nested collections with nothing drawable in them do not contribute.
func (me Collection) Bounds() geom.Rect {
	var r geom.Rect
	found := false
	for _, s := range me {
		if c, ok := s.(Collection); ok && c.empty() {
			continue
		}
		if !found {
			r = s.Bounds()
			found = true
			continue
		}
		r.ExpandToContainRect(s.Bounds())
	}
	return r
}

func (me Collection) empty() bool {
	for _, s := range me {
		if c, ok := s.(Collection); !ok || !c.empty() {
			return false
		}
	}
	return true
}

// Clone copies the collection down to the vertex slices, so nothing written
// to the copy shows up in me.
func (me Collection) Clone() Collection {
	if me == nil {
		return nil
	}
	r := make(Collection, len(me))
	for i, s := range me {
		switch s := s.(type) {
		case Polygon:
			r[i] = Polygon{Points: append([]Point(nil), s.Points...), Color: s.Color}
		case Collection:
			r[i] = s.Clone()
		default:
			r[i] = s
		}
	}
	return r
}

// Flatten returns the Polygons and Circles of a possibly nested collection
// in drawing order.
func (me Collection) Flatten() (Collection, error) {
	r := make(Collection, 0, len(me))
	for _, s := range me {
		switch s := s.(type) {
		case Polygon, Circle:
			r = append(r, s)
		case Collection:
			inner, err := s.Flatten()
			if err != nil {
				return nil, err
			}
			r = append(r, inner...)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
		}
	}
	return r, nil
}
