// Package track generates the outlines of wooden railway pieces. Every
// generator works in a local frame with the piece starting at the origin and
// heading along +x; Place moves the result into the world.
package track

import (
	"fmt"

	"woodtrack/internal/shape"
)

// Fill colors
const (
	RAIL_COLOR   = "black"
	GROOVE_COLOR = "grey"
	MALE_COLOR   = "black"
	FEMALE_COLOR = "white"
)

// Builder generates pieces for one set of Params. The decoration kits are
// built once and never handed out: callers and generated pieces get copies.
type Builder struct {
	params Params
	male   shape.Collection
	female shape.Collection
}

func NewBuilder(p Params) (*Builder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		params: p,
		male:   maleBase(p.Male),
		female: femaleBase(p.Female),
	}, nil
}

// MaleBase is the peg drawn at a piece's end. It points along -x from the
// origin so that a half turn makes it stick out of the far end.
func (b *Builder) MaleBase() shape.Collection { return b.male.Clone() }

// FemaleBase is the socket cut into a piece's start, reaching along +x.
func (b *Builder) FemaleBase() shape.Collection { return b.female.Clone() }

func maleBase(c Connector) shape.Collection {
	return shape.Collection{
		shape.Rectangle(MALE_COLOR, c.Overhang, 0.5*c.ShaftWidth, -c.Length+0.5*c.Diam, -0.5*c.ShaftWidth),
		shape.Circle{Center: shape.Pt(-c.Length+0.5*c.Diam, 0), Radius: 0.5 * c.Diam, Color: MALE_COLOR},
	}
}

func femaleBase(c Connector) shape.Collection {
	return shape.Collection{
		shape.Rectangle(FEMALE_COLOR, -c.Overhang, 0.5*c.ShaftWidth, c.Length-0.5*c.Diam, -0.5*c.ShaftWidth),
		shape.Circle{Center: shape.Pt(c.Length-0.5*c.Diam, 0), Radius: 0.5 * c.Diam, Color: FEMALE_COLOR},
	}
}

// Decoration names a connector kit in layouts.
type Decoration string

const (
	DecorationNone   Decoration = "none"
	DecorationMale   Decoration = "male"
	DecorationFemale Decoration = "female"
)

// Decoration looks up a kit by name. The empty name means none.
func (b *Builder) Decoration(d Decoration) (shape.Collection, error) {
	switch d {
	case DecorationNone, "":
		return nil, nil
	case DecorationMale:
		return b.MaleBase(), nil
	case DecorationFemale:
		return b.FemaleBase(), nil
	}
	return nil, fmt.Errorf("unknown decoration %q", d)
}

// +++ Options

type options struct {
	start, end shape.Collection
	base       bool
	groove     bool
}

type Option func(*options)

// WithDecorations replaces the default female start and male end. A nil
// collection leaves that end bare.
func WithDecorations(start, end shape.Collection) Option {
	return func(o *options) {
		o.start, o.end = start, end
	}
}

func WithoutDecorations() Option {
	return WithDecorations(nil, nil)
}

// WithBase toggles the rail outline and its decorations.
func WithBase(on bool) Option {
	return func(o *options) { o.base = on }
}

// WithGroove toggles the two grey guide grooves.
func WithGroove(on bool) Option {
	return func(o *options) { o.groove = on }
}

func (b *Builder) options(opts []Option) options {
	o := options{start: b.female, end: b.male, base: true, groove: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
