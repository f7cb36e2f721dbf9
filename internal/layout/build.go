package layout

import (
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"woodtrack/internal/shape"
	"woodtrack/internal/track"
)

// Generate builds one piece in its local frame and places it in the world.
func (p Piece) Generate(b *track.Builder) (shape.Collection, error) {
	opts, err := p.options(b)
	if err != nil {
		return nil, err
	}

	var local shape.Collection
	switch p.Kind {
	case KindStraight:
		local, err = b.Straight(p.Length, opts...)
	case KindArc:
		local, err = b.Arc(p.Radius, p.Angle, opts...)
	case KindDoubleSwitch:
		local, err = b.DoubleSwitch(p.Radius, p.Angle, opts...)
	default:
		err = fmt.Errorf("unknown kind %q", p.Kind)
	}
	if err != nil {
		return nil, err
	}
	return track.Place(local, p.X, p.Y, p.Heading)
}

func (p Piece) options(b *track.Builder) ([]track.Option, error) {
	var opts []track.Option
	if p.Start != nil || p.End != nil {
		start, end := b.FemaleBase(), b.MaleBase()
		var err error
		if p.Start != nil {
			if start, err = b.Decoration(*p.Start); err != nil {
				return nil, err
			}
		}
		if p.End != nil {
			if end, err = b.Decoration(*p.End); err != nil {
				return nil, err
			}
		}
		opts = append(opts, track.WithDecorations(start, end))
	}
	if p.Base != nil {
		opts = append(opts, track.WithBase(*p.Base))
	}
	if p.Groove != nil {
		opts = append(opts, track.WithGroove(*p.Groove))
	}
	return opts, nil
}

// Build generates every piece and concatenates them in layout order. Up to
// workers pieces are generated at once; workers < 1 means one per CPU. The
// result is the same for any worker count. The first failing piece aborts
// the build. A nil logger discards.
func (l *Layout) Build(workers int, logger *slog.Logger) (shape.Collection, error) {
	logger = orDiscard(logger)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	b, err := track.NewBuilder(l.Params)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	pieces := make([]shape.Collection, len(l.Pieces))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range l.Pieces {
		g.Go(func() error {
			c, err := p.Generate(b)
			if err != nil {
				return fmt.Errorf("piece %d (%s): %w", i, p.Kind, err)
			}
			logger.Debug("generated piece", "index", i, "kind", p.Kind, "shapes", len(c))
			pieces[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var r shape.Collection
	for _, c := range pieces {
		r = append(r, c...)
	}
	logger.Info("generated layout", "pieces", len(pieces), "shapes", len(r))
	return r, nil
}

// CheckBounds warns when the drawing spills over the edge of the canvas and
// reports whether it fits.
func (l *Layout) CheckBounds(shapes shape.Collection, logger *slog.Logger) bool {
	logger = orDiscard(logger)
	if len(shapes) == 0 {
		return true
	}
	canvas := l.Canvas.Rect()
	bounds := shapes.Bounds()
	logger.Info("drawing bounds",
		"min_x", bounds.Min.X, "min_y", bounds.Min.Y,
		"max_x", bounds.Max.X, "max_y", bounds.Max.Y)
	if !canvas.ContainsRect(bounds) {
		logger.Warn("drawing does not fit on the canvas",
			"canvas_width", l.Canvas.Width, "canvas_height", l.Canvas.Height)
		return false
	}
	return true
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
