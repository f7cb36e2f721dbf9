package track

import (
	"fmt"
	"math"

	"woodtrack/internal/shape"
)

// Straight generates a straight piece from the origin to (length, 0).
//
// With the base layer on it emits the rail rectangle, the start decoration
// as given and the end decoration turned half way round and moved to the far
// end. With the groove layer on it emits two grooves that overhang both ends.
func (b *Builder) Straight(length float64, opts ...Option) (shape.Collection, error) {
	if !(length > 0) || math.IsInf(length, 1) {
		return nil, fmt.Errorf("%w: straight length must be positive and finite, got %v", shape.ErrInvalidGeometry, length)
	}
	o := b.options(opts)
	p := b.params

	var r shape.Collection
	if o.base {
		r = append(r, shape.Rectangle(RAIL_COLOR, 0.0, 0.5*p.TrackWidth, length, -0.5*p.TrackWidth))
		r = append(r, o.start.Clone()...)
		end, err := flipToEnd(o.end, shape.Pt(length, 0), -1)
		if err != nil {
			return nil, err
		}
		r = append(r, end...)
	}

	if o.groove {
		for _, sign := range []float64{1.0, -1.0} {
			r = append(r, shape.Rectangle(GROOVE_COLOR,
				-p.GrooveOverhang, sign*p.CenterWidth*0.5,
				length+p.GrooveOverhang, sign*(p.CenterWidth*0.5+p.GrooveWidth)))
		}
	}
	return r, nil
}

// flipToEnd turns a decoration by factor about the origin and then moves it
// to end.
func flipToEnd(deco shape.Collection, end, factor shape.Point) (shape.Collection, error) {
	if len(deco) == 0 {
		return nil, nil
	}
	turned, err := deco.RotatedScaled(factor)
	if err != nil {
		return nil, err
	}
	return turned.Translated(end)
}
