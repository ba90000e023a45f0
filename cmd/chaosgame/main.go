// Command chaosgame plays the Chaos Game on a regular polygon and saves the
// resulting point cloud as a PNG image.
//
// Usage:
//
//	chaosgame [flags] <sides> <fraction>
//
// Example:
//
//	chaosgame -points 100000 -seed 1 -output sierpinski.png 3 0.5
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/chaosgame"
	"github.com/gogpu/chaosgame/internal/cliargs"
	"github.com/gogpu/gg"
	"golang.org/x/sync/errgroup"
)

// config holds the flag values.
type config struct {
	width, height int
	points        int
	seed          uint64
	output        string
	frames        int
	caption       bool
	maxAttempts   int
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "image width")
	flag.IntVar(&cfg.height, "height", 800, "image height")
	flag.IntVar(&cfg.points, "points", 50_000, "number of points to generate")
	flag.Uint64Var(&cfg.seed, "seed", 0, "random seed (0 seeds from the clock)")
	flag.StringVar(&cfg.output, "output", "chaos.png", "output file")
	flag.IntVar(&cfg.frames, "frames", 0, "also write this many progress frames next to the output")
	flag.BoolVar(&cfg.caption, "caption", false, "print sides, fraction and point count on the image")
	flag.IntVar(&cfg.maxAttempts, "max-attempts", 0, "cap on first-point sampling attempts (0 is unbounded)")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <sides> <fraction>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	args, err := cliargs.Parse(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, line := range cliargs.Help(err) {
			fmt.Fprintln(os.Stderr, line)
		}
		os.Exit(1)
	}

	logger := newLogger(cfg.verbose)
	slog.SetDefault(logger)
	chaosgame.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(context.Background(), args, cfg); err != nil {
		logger.Error("chaosgame failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// run generates cfg.points points and writes the final image plus any
// progress frames. Frames are encoded concurrently while generation goes on.
func run(ctx context.Context, args cliargs.Args, cfg config) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", cfg.width, cfg.height)
	}
	if cfg.points < 0 {
		return fmt.Errorf("invalid point count %d", cfg.points)
	}

	opts := []chaosgame.Option{chaosgame.WithMaxSampleAttempts(cfg.maxAttempts)}
	if cfg.seed != 0 {
		opts = append(opts, chaosgame.WithSeed(cfg.seed))
	}
	e := chaosgame.New(args.Sides, args.Fraction, opts...)
	e.Layout(cfg.width, cfg.height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, target := range checkpoints(cfg.points, cfg.frames) {
		if ctx.Err() != nil {
			break
		}
		e.AdvanceN(target - e.Len())
		f := e.Render(cfg.width, cfg.height)
		path := framePath(cfg.output, i+1)
		g.Go(func() error {
			return writePNG(path, f, args, cfg)
		})
	}

	e.AdvanceN(cfg.points - e.Len())
	final := e.Render(cfg.width, cfg.height)
	g.Go(func() error {
		return writePNG(cfg.output, final, args, cfg)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("chaosgame: image saved",
		"path", cfg.output,
		"size", fmt.Sprintf("%dx%d", cfg.width, cfg.height),
		"points", len(final.Points))
	return nil
}

// checkpoints returns the point counts at which progress frames are taken,
// evenly spaced up to and including points.
func checkpoints(points, frames int) []int {
	if frames <= 0 {
		return nil
	}
	out := make([]int, frames)
	for i := range out {
		out[i] = points * (i + 1) / frames
	}
	return out
}

// framePath derives the n-th frame name from the output path:
// "out.png" becomes "out-0001.png".
func framePath(output string, n int) string {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s-%04d%s", base, n, ext)
}

func writePNG(path string, f chaosgame.Frame, args cliargs.Args, cfg config) error {
	dc := gg.NewContext(cfg.width, cfg.height)
	defer dc.Close()

	style := chaosgame.DefaultStyle()
	if err := chaosgame.Draw(dc, f, style); err != nil {
		return fmt.Errorf("draw %s: %w", path, err)
	}
	if cfg.caption {
		face, err := chaosgame.NewCaptionFace(14)
		if err != nil {
			return err
		}
		chaosgame.DrawCaption(dc, face, chaosgame.Caption(args.Sides, args.Fraction, len(f.Points)), style)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	slog.Debug("chaosgame: frame written", "path", path, "points", len(f.Points))
	return nil
}
