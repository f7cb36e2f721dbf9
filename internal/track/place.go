package track

import "woodtrack/internal/shape"

// Place moves a piece from its local frame into the world so that it starts
// at (x, y) heading the given number of degrees. The input is not modified.
// SVG's y axis points down the page, so positive headings turn clockwise
// on paper.
func Place(piece shape.Collection, x, y, heading float64) (shape.Collection, error) {
	t, err := shape.NewTransform(shape.Heading(heading), shape.Pt(x, y))
	if err != nil {
		return nil, err
	}
	return piece.Transformed(t)
}
