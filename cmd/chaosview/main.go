// Command chaosview shows the Chaos Game growing live in a window.
//
// A Driver adds ten points every ten milliseconds on its own goroutine while
// gogpu redraws the window through a ggcanvas.Canvas.
//
// Architecture:
//
//	Driver (goroutine) → Engine ← Render (draw thread) → gg.Context → ggcanvas.Canvas → Window
//
// Usage:
//
//	chaosview [flags] <sides> <fraction>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/chaosgame"
	"github.com/gogpu/chaosgame/internal/cliargs"
	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		width     = flag.Int("width", 800, "window width")
		height    = flag.Int("height", 800, "window height")
		seed      = flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
		interval  = flag.Duration("interval", chaosgame.DefaultInterval, "time between batches")
		batch     = flag.Int("batch", chaosgame.DefaultBatch, "points added per batch")
		maxPoints = flag.Int("max-points", 0, "stop adding points after this many (0 runs forever)")
		caption   = flag.Bool("caption", true, "show sides, fraction and point count")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
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

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	chaosgame.SetLogger(logger)
	gg.SetLogger(logger)

	var opts []chaosgame.Option
	if *seed != 0 {
		opts = append(opts, chaosgame.WithSeed(*seed))
	}
	engine := chaosgame.New(args.Sides, args.Fraction, opts...)

	var face text.Face
	if *caption {
		if face, err = chaosgame.NewCaptionFace(16); err != nil {
			logger.Warn("caption disabled", "err", err)
		}
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(fmt.Sprintf("Chaos Game: %d sides, fraction %g", args.Sides, args.Fraction)).
		WithSize(*width, *height))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d := &chaosgame.Driver{
			Engine:    engine,
			Interval:  *interval,
			Batch:     *batch,
			MaxPoints: *maxPoints,
		}
		if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	v := &view{engine: engine, face: face, style: chaosgame.DefaultStyle(), log: logger}
	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if v.canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			if err := v.open(provider, w, h); err != nil {
				logger.Error("canvas creation failed", "err", err)
				app.Quit()
				return
			}
		}
		if err := v.draw(w, h); err != nil {
			logger.Warn("draw failed", "err", err)
			return
		}
		if err := v.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			logger.Warn("present failed", "err", err)
		}
	})

	app.OnClose(func() {
		cancel()
		// Drain the GPU queue while the device is still alive.
		if a := gg.Accelerator(); a != nil {
			a.Close()
		}
	})

	if err := app.Run(); err != nil {
		logger.Error("window failed", "err", err)
		os.Exit(1)
	}
	cancel()
	if err := g.Wait(); err != nil {
		logger.Error("driver failed", "err", err)
		os.Exit(1)
	}
}

// view owns the draw-thread state. It is only touched from OnDraw.
type view struct {
	engine *chaosgame.Engine
	canvas *ggcanvas.Canvas
	face   text.Face
	style  chaosgame.Style
	log    *slog.Logger
}

func (v *view) open(provider gpucontext.DeviceProvider, w, h int) error {
	canvas, err := ggcanvas.New(provider, w, h)
	if err != nil {
		return err
	}
	v.canvas = canvas
	v.log.Debug("canvas created", "width", w, "height", h)
	return nil
}

// draw paints the current engine snapshot. The polygon keeps the size of the
// first frame; resizing only grows or shrinks the canvas around it.
func (v *view) draw(w, h int) error {
	if cw, ch := v.canvas.Size(); cw != w || ch != h {
		if err := v.canvas.Resize(w, h); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
	}

	frame := v.engine.Render(w, h)
	var drawErr error
	err := v.canvas.Draw(func(cc *gg.Context) {
		drawErr = chaosgame.Draw(cc, frame, v.style)
		if v.face != nil {
			chaosgame.DrawCaption(cc, v.face, chaosgame.Caption(v.engine.Sides(), v.engine.Fraction(), len(frame.Points)), v.style)
		}
	})
	return errors.Join(err, drawErr)
}
