package track

import (
	"fmt"
	"math"
	"math/cmplx"

	"woodtrack/internal/shape"
)

// Arc generates a left-hand curve of the given centerline radius sweeping
// degrees counter-clockwise. The center of curvature is at (0, radius).
//
// Curves are drawn as polygons with floor(radius*angle) segments, so the
// chord error stays about the same whatever the radius.
func (b *Builder) Arc(radius, degrees float64, opts ...Option) (shape.Collection, error) {
	if err := checkArc(radius, degrees); err != nil {
		return nil, err
	}
	angle := shape.DegToRads(degrees)
	o := b.options(opts)
	p := b.params

	var r shape.Collection
	if o.base {
		rail, err := ring(RAIL_COLOR, radius, radius+0.5*p.TrackWidth, radius-0.5*p.TrackWidth, 0, angle)
		if err != nil {
			return nil, err
		}
		r = append(r, rail)
		r = append(r, o.start.Clone()...)
		end, err := flipToEnd(o.end, arcEnd(radius, angle), -cmplx.Rect(1, angle))
		if err != nil {
			return nil, err
		}
		r = append(r, end...)
	}

	if o.groove {
		overhang := p.GrooveOverhang / radius
		half := 0.5 * p.CenterWidth
		for _, edges := range [][2]float64{
			{radius + half + p.GrooveWidth, radius + half},
			{radius - half, radius - half - p.GrooveWidth},
		} {
			groove, err := ring(GROOVE_COLOR, radius, edges[0], edges[1], -overhang, angle+overhang)
			if err != nil {
				return nil, err
			}
			r = append(r, groove)
		}
	}
	return r, nil
}

func checkArc(radius, degrees float64) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fmt.Errorf("%w: arc radius must be positive and finite, got %v", shape.ErrInvalidGeometry, radius)
	}
	if !(degrees > 0 && degrees < 360) {
		return fmt.Errorf("%w: arc angle must be in (0, 360) degrees, got %v", shape.ErrInvalidGeometry, degrees)
	}
	_, err := arcSteps(radius, shape.DegToRads(degrees))
	return err
}

// MAX_ARC_STEPS bounds the segments of one curved outline, which is a
// centerline of about a kilometre at one segment per millimetre.
const MAX_ARC_STEPS = 1 << 20

// arcSteps is floor(radius*angle), counted in floats so that huge radii are
// caught before any conversion or allocation.
func arcSteps(radius, angle float64) (int, error) {
	steps := math.Floor(radius * angle)
	if !(steps >= 1) {
		return 0, fmt.Errorf("%w: arc of radius %v over %v radians is too short to draw",
			shape.ErrInvalidGeometry, radius, angle)
	}
	if steps > MAX_ARC_STEPS {
		return 0, fmt.Errorf("%w: arc of radius %v over %v radians needs more than %d segments",
			shape.ErrInvalidGeometry, radius, angle, MAX_ARC_STEPS)
	}
	return int(steps), nil
}

// arcEnd is where the centerline of an arc from the origin finishes.
func arcEnd(radius, angle float64) shape.Point {
	return shape.Pt(radius*math.Sin(angle), radius*(1-math.Cos(angle)))
}

// arcPoint is the point at distance rr from the center (0, radius), a radians
// along the sweep.
func arcPoint(radius, rr, a float64) shape.Point {
	return shape.Pt(rr*math.Sin(a), radius-rr*math.Cos(a))
}

// ring is the band between outer and inner around the center (0, radius)
// from a0 to a1: the outer edge forwards, then the inner edge backwards.
func ring(color string, radius, outer, inner, a0, a1 float64) (shape.Polygon, error) {
	steps, err := arcSteps(radius, a1-a0)
	if err != nil {
		return shape.Polygon{}, err
	}
	dp := (a1 - a0) / float64(steps)

	points := make([]shape.Point, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		points = append(points, arcPoint(radius, outer, a0+float64(i)*dp))
	}
	for i := steps; i >= 0; i-- {
		points = append(points, arcPoint(radius, inner, a0+float64(i)*dp))
	}
	return shape.NewPolygon(color, points...)
}
