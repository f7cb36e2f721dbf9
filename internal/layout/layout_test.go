package layout

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woodtrack/internal/shape"
	"woodtrack/internal/svg"
	"woodtrack/internal/track"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const tomlLayout = `
[canvas]
width = 400.0
height = 250.0

[params]
groove_overhang = 2.0

[params.male]
diam = 10.0

[[pieces]]
kind = "straight"
x = 30.0
y = 10.0
heading = 90.0
length = 140.0
start = "none"

[[pieces]]
kind = "arc"
x = 130.0
y = 10.0
heading = 90.0
radius = 192.0
angle = 45.0
groove = false

[[pieces]]
kind = "double_switch"
x = 200.0
y = 100.0
radius = 100.0
angle = 30.0
`

const yamlLayout = `
canvas:
  width: 400
  height: 250
params:
  groove_overhang: 2.0
  male:
    diam: 10.0
pieces:
  - kind: straight
    x: 30
    y: 10
    heading: 90
    length: 140
    start: none
  - kind: arc
    x: 130
    y: 10
    heading: 90
    radius: 192
    angle: 45
    groove: false
  - kind: double_switch
    x: 200
    y: 100
    radius: 100
    angle: 30
`

func TestDecodeFormatsAgree(t *testing.T) {
	fromTOML, err := Decode(strings.NewReader(tomlLayout), FormatTOML)
	require.NoError(t, err)
	fromYAML, err := Decode(strings.NewReader(yamlLayout), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, fromTOML, fromYAML)

	l := fromTOML
	assert.Equal(t, 400.0, l.Canvas.Width)
	assert.True(t, l.Canvas.Grid, "grid keeps its default")
	assert.Equal(t, 2.0, l.Params.GrooveOverhang)
	assert.Equal(t, 10.0, l.Params.Male.Diam)
	assert.Equal(t, 18.0, l.Params.Male.Length, "unset connector field keeps its default")
	assert.Equal(t, track.DefaultParams().TrackWidth, l.Params.TrackWidth)

	require.Len(t, l.Pieces, 3)
	require.NotNil(t, l.Pieces[0].Start)
	assert.Equal(t, track.DecorationNone, *l.Pieces[0].Start)
	assert.Nil(t, l.Pieces[0].End)
	require.NotNil(t, l.Pieces[1].Groove)
	assert.False(t, *l.Pieces[1].Groove)
	assert.Equal(t, KindDoubleSwitch, l.Pieces[2].Kind)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{"unknown toml key", "[canvas]\ncolour = 'red'\n", FormatTOML},
		{"unknown yaml key", "canvas:\n  colour: red\n", FormatYAML},
		{"unknown kind", "[[pieces]]\nkind = 'turntable'\n", FormatTOML},
		{"bad canvas", "canvas:\n  width: 0\n", FormatYAML},
		{"bad params", "[params]\ntrack_width = -1.0\n", FormatTOML},
		{"bad format", "", Format("json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	l, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, New(), l)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlLayout), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, l.Pieces, 3)

	_, err = Load(filepath.Join(dir, "scene.json"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestBuildDefault(t *testing.T) {
	l := Default()
	shapes, err := l.Build(1, quiet())
	require.NoError(t, err)

	b, err := track.NewBuilder(l.Params)
	require.NoError(t, err)
	straight, err := b.Straight(140)
	require.NoError(t, err)
	arc, err := b.Arc(192, 45)
	require.NoError(t, err)
	require.Len(t, shapes, len(straight)+len(arc))

	rail := shapes[0].(shape.Polygon)
	assert.InDelta(t, 30.0, real(rail.Points[0]+rail.Points[3])/2, 1e-9)
	assert.InDelta(t, 10.0, imag(rail.Points[0]+rail.Points[3])/2, 1e-9)

	assert.True(t, l.CheckBounds(shapes, quiet()))
}

func TestBuildOrderIndependentOfWorkers(t *testing.T) {
	l := New()
	for i := 0; i < 24; i++ {
		l.Pieces = append(l.Pieces, Piece{
			Kind: KindArc, X: float64(10 * i), Y: 50, Heading: float64(15 * i),
			Radius: 60 + float64(i), Angle: 30,
		})
	}
	sequential, err := l.Build(1, quiet())
	require.NoError(t, err)
	parallel, err := l.Build(8, quiet())
	require.NoError(t, err)
	assert.Equal(t, sequential, parallel)

	first, err := svg.Encode(l.Canvas, sequential)
	require.NoError(t, err)
	second, err := svg.Encode(l.Canvas, parallel)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildPieceOptions(t *testing.T) {
	none := track.DecorationNone
	off := false
	l := New()
	l.Pieces = []Piece{
		{Kind: KindStraight, Length: 50, Start: &none, Groove: &off},
		{Kind: KindStraight, Length: 50, Base: &off},
	}
	shapes, err := l.Build(0, quiet())
	require.NoError(t, err)
	// rail and male end, then two grooves
	assert.Len(t, shapes, 3+2)
}

func TestBuildFailsOnBadPiece(t *testing.T) {
	l := Default()
	l.Pieces = append(l.Pieces, Piece{Kind: KindArc, Radius: 100, Angle: 400})
	_, err := l.Build(4, quiet())
	assert.ErrorIs(t, err, shape.ErrInvalidGeometry)
	assert.Contains(t, err.Error(), "piece 2 (arc)")

	bad := track.Decoration("hook")
	l = Default()
	l.Pieces[0].End = &bad
	_, err = l.Build(1, quiet())
	assert.Error(t, err)
}

func TestNilLoggerDiscards(t *testing.T) {
	l := Default()
	shapes, err := l.Build(2, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, shapes)
	assert.True(t, l.CheckBounds(shapes, nil))
}

func TestCheckBoundsWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	l := New()
	l.Pieces = []Piece{{Kind: KindStraight, X: 280, Y: 150, Length: 100}}
	shapes, err := l.Build(1, quiet())
	require.NoError(t, err)
	assert.False(t, l.CheckBounds(shapes, logger))
	assert.Contains(t, buf.String(), "does not fit")
}
