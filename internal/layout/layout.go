// Package layout describes a drawing as a canvas, a set of track
// dimensions and an ordered list of placed pieces, read from TOML or YAML.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"woodtrack/internal/svg"
	"woodtrack/internal/track"
)

type Kind string

const (
	KindStraight     Kind = "straight"
	KindArc          Kind = "arc"
	KindDoubleSwitch Kind = "double_switch"
)

// Piece is one track piece placed at (X, Y) heading Heading degrees.
// Length applies to straights, Radius and Angle (degrees) to arcs and
// switches. Unset Start and End give a female start and a male end; unset
// Base and Groove are on.
type Piece struct {
	Kind    Kind    `toml:"kind" yaml:"kind"`
	X       float64 `toml:"x" yaml:"x"`
	Y       float64 `toml:"y" yaml:"y"`
	Heading float64 `toml:"heading" yaml:"heading"`

	Length float64 `toml:"length,omitempty" yaml:"length,omitempty"`
	Radius float64 `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Angle  float64 `toml:"angle,omitempty" yaml:"angle,omitempty"`

	Start  *track.Decoration `toml:"start,omitempty" yaml:"start,omitempty"`
	End    *track.Decoration `toml:"end,omitempty" yaml:"end,omitempty"`
	Base   *bool             `toml:"base,omitempty" yaml:"base,omitempty"`
	Groove *bool             `toml:"groove,omitempty" yaml:"groove,omitempty"`
}

type Layout struct {
	Canvas svg.Canvas   `toml:"canvas" yaml:"canvas"`
	Params track.Params `toml:"params" yaml:"params"`
	Pieces []Piece      `toml:"pieces" yaml:"pieces"`
}

// New returns an empty layout with the default canvas and dimensions.
func New() *Layout {
	return &Layout{
		Canvas: svg.DefaultCanvas(),
		Params: track.DefaultParams(),
	}
}

// Default is the reference drawing: a straight running down the page next
// to an eighth of a large curve.
func Default() *Layout {
	l := New()
	l.Pieces = []Piece{
		{Kind: KindStraight, X: 30, Y: 10, Heading: 90, Length: 140},
		{Kind: KindArc, X: 130, Y: 10, Heading: 90, Radius: 192, Angle: 45},
	}
	return l
}

func (l *Layout) Validate() error {
	if err := l.Canvas.Validate(); err != nil {
		return err
	}
	if err := l.Params.Validate(); err != nil {
		return fmt.Errorf("params: %w", err)
	}
	for i, p := range l.Pieces {
		switch p.Kind {
		case KindStraight, KindArc, KindDoubleSwitch:
		default:
			return fmt.Errorf("piece %d: unknown kind %q", i, p.Kind)
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////
// Loading

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("layout %s: unknown file type, want .toml, .yaml or .yml", path)
}

// Decode reads a layout over the defaults, so anything the document leaves
// out keeps its default value. Unknown keys are an error.
func Decode(r io.Reader, format Format) (*Layout, error) {
	l := New()
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(l); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(l); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown layout format %q", format)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func Load(path string) (*Layout, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}
