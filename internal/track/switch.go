package track

import (
	"fmt"
	"math"
	"math/cmplx"

	"woodtrack/internal/shape"
)

// DoubleSwitch generates a crossover: two opposed arcs of the given radius
// and angle joined by the straight A-B along the x axis and the diagonal C-D.
// Past 180 degrees the arcs loop back and B lies on the -x side of A.
//
// The four parts carry no decorations. All rails are emitted before all
// grooves so either layer can be switched off on its own.
func (b *Builder) DoubleSwitch(radius, degrees float64, opts ...Option) (shape.Collection, error) {
	a, bb, c, d, err := switchAnchors(radius, degrees)
	if err != nil {
		return nil, err
	}
	o := b.options(opts)
	length := cmplx.Abs(bb - a)
	forward := (bb - a) / complex(length, 0)
	diagonal := (d - c) / complex(length, 0)

	var r shape.Collection
	for _, layer := range []struct{ base, groove bool }{
		{base: true},
		{groove: true},
	} {
		if (layer.base && !o.base) || (layer.groove && !o.groove) {
			continue
		}
		lo := []Option{WithoutDecorations(), WithBase(layer.base), WithGroove(layer.groove)}

		first, err := b.Arc(radius, degrees, lo...)
		if err != nil {
			return nil, err
		}
		second, err := b.Arc(radius, degrees, lo...)
		if err != nil {
			return nil, err
		}
		if second, err = flipToEnd(second, bb, -1); err != nil {
			return nil, err
		}
		along, err := b.Straight(length, lo...)
		if err != nil {
			return nil, err
		}
		if along, err = flipToEnd(along, a, forward); err != nil {
			return nil, err
		}
		across, err := b.Straight(length, lo...)
		if err != nil {
			return nil, err
		}
		if across, err = flipToEnd(across, c, diagonal); err != nil {
			return nil, err
		}

		r = append(r, first...)
		r = append(r, second...)
		r = append(r, along...)
		r = append(r, across...)
	}
	return r, nil
}

// switchAnchors returns the four ends of a double switch. A is the origin and
// B = (2L, 0) with L = radius*tan(angle/2), the tangent length of the arc,
// which is negative past 180 degrees. The arc leaving A ends at
// D = L(1+e^(i*angle)); the opposed arc leaving B ends at C = L(1-e^(i*angle)).
// At exactly 180 degrees the tangents are parallel and there is no B.
func switchAnchors(radius, degrees float64) (a, b, c, d shape.Point, err error) {
	if err = checkArc(radius, degrees); err != nil {
		return
	}
	angle := shape.DegToRads(degrees)
	l := radius * math.Tan(angle/2)
	if degrees == 180 || l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		err = fmt.Errorf("%w: double switch angle must not be 180 degrees, got %v", shape.ErrInvalidGeometry, degrees)
		return
	}
	turn := cmplx.Rect(1, angle)
	a = 0
	b = shape.Pt(2*l, 0)
	c = complex(l, 0) * (1 - turn)
	d = complex(l, 0) * (1 + turn)
	return
}
