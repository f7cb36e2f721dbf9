// Package svg writes shapes as an SVG document measured in millimetres,
// one user unit per millimetre.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jbeda/geom"

	"woodtrack/internal/shape"
)

const (
	GRID_STEP  = 10.0
	GRID_STYLE = `fill="none" stroke="lightgrey" stroke-width="0.2"`
)

////////////////////////////////////////////////////////////////////////////
// Canvas

// Canvas is the physical drawing area.
type Canvas struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Grid   bool    `toml:"grid" yaml:"grid"`
}

func DefaultCanvas() Canvas {
	return Canvas{Width: 300.0, Height: 300.0, Grid: true}
}

func (c Canvas) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: canvas must have a positive size, got %vx%v", shape.ErrInvalidGeometry, c.Width, c.Height)
	}
	return nil
}

// Rect is the canvas in user units with its origin in the top left corner.
func (c Canvas) Rect() geom.Rect {
	return geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: c.Width, Y: c.Height}}
}

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper

type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

// printf remembers the first write error and drops everything after it.
func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

// num prints plain decimals, shortest form, never "-0".
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func (svg *SVG) Start(viewBox geom.Rect) {
	svg.printf(`<?xml version="1.0" standalone="yes"?>
<svg
    width="%smm"
    height="%smm"
    viewBox="%s %s %s %s"
    xmlns="http://www.w3.org/2000/svg">
`, num(viewBox.Width()), num(viewBox.Height()),
		num(viewBox.Min.X), num(viewBox.Min.Y), num(viewBox.Width()), num(viewBox.Height()))
}

// Grid fills area with a square grid of thin lines.
func (svg *SVG) Grid(area geom.Rect, step float64) {
	s := num(step)
	svg.printf(`<defs>
<pattern id="grid" width="%s" height="%s" patternUnits="userSpaceOnUse">
<path d="M %s 0 L 0 0 0 %s" %s/>
</pattern>
</defs>
<rect x="%s" y="%s" width="%s" height="%s" fill="url(#grid)"/>
`, s, s, s, s, GRID_STYLE,
		num(area.Min.X), num(area.Min.Y), num(area.Width()), num(area.Height()))
}

func (svg *SVG) End() error {
	svg.printf("</svg>\n")
	return svg.err
}

func (svg *SVG) Polygon(p shape.Polygon) {
	var sb strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(real(pt)))
		sb.WriteByte(',')
		sb.WriteString(num(imag(pt)))
	}
	svg.printf("<polygon points=\"%s\" fill=\"%s\"/>\n", sb.String(), attrEscaper.Replace(p.Color))
}

func (svg *SVG) Circle(c shape.Circle) {
	svg.printf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
		num(real(c.Center)), num(imag(c.Center)), num(c.Radius), attrEscaper.Replace(c.Color))
}

// Shape writes one drawing primitive per polygon or circle, descending into
// collections in order.
func (svg *SVG) Shape(s shape.Shape) error {
	switch s := s.(type) {
	case shape.Polygon:
		svg.Polygon(s)
	case shape.Circle:
		svg.Circle(s)
	case shape.Collection:
		for _, m := range s {
			if err := svg.Shape(m); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("svg: %w: %T", shape.ErrUnsupportedShape, s)
	}
	return svg.err
}

////////////////////////////////////////////////////////////////////////////
// Documents

// Encode renders a whole document in memory.
func Encode(canvas Canvas, shapes shape.Collection) ([]byte, error) {
	if err := canvas.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	s := NewSVG(&buf)
	s.Start(canvas.Rect())
	if canvas.Grid {
		s.Grid(canvas.Rect(), GRID_STEP)
	}
	if err := s.Shape(shapes); err != nil {
		return nil, err
	}
	if err := s.End(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes the document to w only once it has been fully built, so a
// bad shape never leaves a partial document behind.
func Render(w io.Writer, canvas Canvas, shapes shape.Collection) error {
	doc, err := Encode(canvas, shapes)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}
