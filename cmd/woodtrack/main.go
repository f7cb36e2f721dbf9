// Command woodtrack draws wooden railway pieces to an SVG file that can be
// printed at 1:1 or sent to a laser cutter.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"woodtrack/internal/layout"
	"woodtrack/internal/shape"
	"woodtrack/internal/svg"
)

type config struct {
	layout  string
	out     string
	width   float64
	height  float64
	grid    bool
	workers int
	verbose bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:           "woodtrack",
		Short:         "Draw wooden railway track pieces as SVG",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, cfg, stdout, stderr)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.layout, "layout", "l", "", "layout file (.toml, .yaml, .yml); the reference drawing if empty")
	pf.IntVarP(&cfg.workers, "workers", "j", 0, "pieces generated at once, 0 for one per CPU")
	pf.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every piece")
	addCanvasFlags(root.Flags(), cfg)
	addOutputFlag(root.Flags(), cfg)

	render := &cobra.Command{
		Use:   "render",
		Short: "Write the SVG document (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, cfg, stdout, stderr)
		},
	}
	addCanvasFlags(render.Flags(), cfg)
	addOutputFlag(render.Flags(), cfg)

	check := &cobra.Command{
		Use:   "check",
		Short: "Generate the layout and report its size without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, cfg.verbose)
			l, shapes, err := generate(cmd, cfg, logger)
			if err != nil {
				logger.Error("check failed", "err", err)
				return err
			}
			if !l.CheckBounds(shapes, logger) {
				return fmt.Errorf("drawing does not fit on a %vx%v canvas", l.Canvas.Width, l.Canvas.Height)
			}
			fmt.Fprintf(stdout, "%d pieces, %d shapes\n", len(l.Pieces), len(shapes))
			return nil
		},
	}
	addCanvasFlags(check.Flags(), cfg)

	root.AddCommand(render, check)
	return root
}

func addOutputFlag(fs *pflag.FlagSet, cfg *config) {
	fs.StringVarP(&cfg.out, "out", "o", "woodtrack.svg", "output file, - for stdout")
}

// addCanvasFlags overrides the layout's canvas, but only for flags that are
// set explicitly.
func addCanvasFlags(fs *pflag.FlagSet, cfg *config) {
	def := svg.DefaultCanvas()
	fs.Float64Var(&cfg.width, "width", def.Width, "canvas width in mm")
	fs.Float64Var(&cfg.height, "height", def.Height, "canvas height in mm")
	fs.BoolVar(&cfg.grid, "grid", def.Grid, "draw a 10mm grid behind the track")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// generate loads the layout, applies any canvas flags given on the command
// line and builds the world-frame shapes.
func generate(cmd *cobra.Command, cfg *config, logger *slog.Logger) (*layout.Layout, shape.Collection, error) {
	l := layout.Default()
	if cfg.layout != "" {
		var err error
		if l, err = layout.Load(cfg.layout); err != nil {
			return nil, nil, err
		}
		logger.Debug("loaded layout", "path", cfg.layout, "pieces", len(l.Pieces))
	}

	fs := cmd.Flags()
	if fs.Changed("width") {
		l.Canvas.Width = cfg.width
	}
	if fs.Changed("height") {
		l.Canvas.Height = cfg.height
	}
	if fs.Changed("grid") {
		l.Canvas.Grid = cfg.grid
	}

	shapes, err := l.Build(cfg.workers, logger)
	if err != nil {
		return nil, nil, err
	}
	return l, shapes, nil
}

func runRender(cmd *cobra.Command, cfg *config, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, cfg.verbose)
	l, shapes, err := generate(cmd, cfg, logger)
	if err != nil {
		logger.Error("generation failed", "err", err)
		return err
	}
	l.CheckBounds(shapes, logger)

	doc, err := svg.Encode(l.Canvas, shapes)
	if err != nil {
		logger.Error("rendering failed", "err", err)
		return err
	}

	if cfg.out == "-" {
		_, err = stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(cfg.out, doc, 0o644); err != nil {
		logger.Error("writing failed", "path", cfg.out, "err", err)
		return err
	}
	logger.Info("wrote drawing", "path", cfg.out, "bytes", len(doc))
	return nil
}
