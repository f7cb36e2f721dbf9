package track

import (
	"fmt"

	"woodtrack/internal/shape"
)

// Connector describes one half of the peg-and-socket joint between pieces.
type Connector struct {
	Diam       float64 `toml:"diam" yaml:"diam"`
	ShaftWidth float64 `toml:"shaft_width" yaml:"shaft_width"`
	Length     float64 `toml:"length" yaml:"length"`
	Overhang   float64 `toml:"overhang" yaml:"overhang"`
}

// Params holds every dimension the generators need, in millimetres.
type Params struct {
	TrackWidth     float64   `toml:"track_width" yaml:"track_width"`
	GrooveWidth    float64   `toml:"groove_width" yaml:"groove_width"`
	CenterWidth    float64   `toml:"center_width" yaml:"center_width"`
	GrooveOverhang float64   `toml:"groove_overhang" yaml:"groove_overhang"`
	Male           Connector `toml:"male" yaml:"male"`
	Female         Connector `toml:"female" yaml:"female"`
}

// DefaultParams matches common wooden railway track.
func DefaultParams() Params {
	return Params{
		TrackWidth:     40.0,
		GrooveWidth:    6.0,
		CenterWidth:    20.0,
		GrooveOverhang: 1.0,
		Male: Connector{
			Diam:       11.0,
			ShaftWidth: 5.5,
			Length:     18.0,
			Overhang:   1.0,
		},
		Female: Connector{
			Diam:       12.0,
			ShaftWidth: 6.5,
			Length:     18.5,
			Overhang:   1.0,
		},
	}
}

func (p Params) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"track_width", p.TrackWidth},
		{"groove_width", p.GrooveWidth},
		{"center_width", p.CenterWidth},
		{"male.diam", p.Male.Diam},
		{"male.shaft_width", p.Male.ShaftWidth},
		{"male.length", p.Male.Length},
		{"female.diam", p.Female.Diam},
		{"female.shaft_width", p.Female.ShaftWidth},
		{"female.length", p.Female.Length},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", shape.ErrInvalidGeometry, f.name, f.v)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"groove_overhang", p.GrooveOverhang},
		{"male.overhang", p.Male.Overhang},
		{"female.overhang", p.Female.Overhang},
	} {
		if !(f.v >= 0) {
			return fmt.Errorf("%w: %s must not be negative, got %v", shape.ErrInvalidGeometry, f.name, f.v)
		}
	}
	if p.CenterWidth+2*p.GrooveWidth > p.TrackWidth {
		return fmt.Errorf("%w: center rail and grooves (%v) wider than track (%v)",
			shape.ErrInvalidGeometry, p.CenterWidth+2*p.GrooveWidth, p.TrackWidth)
	}
	return nil
}
