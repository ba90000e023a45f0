package chaosgame

import (
	"cmp"
	"context"
	"time"
)

// Default pacing for a Driver: ten points every ten milliseconds.
const (
	DefaultInterval = 10 * time.Millisecond
	DefaultBatch    = 10
)

// Driver advances an Engine on a fixed interval so a window can show the
// point cloud growing.
//
// Example:
//
//	d := &chaosgame.Driver{Engine: e, MaxPoints: 100_000}
//	go d.Run(ctx)
type Driver struct {
	// Engine to advance. Required.
	Engine *Engine

	// Interval between batches. Zero means DefaultInterval.
	Interval time.Duration

	// Batch is the number of points added per tick. Zero means DefaultBatch.
	Batch int

	// MaxPoints stops the driver once the engine holds this many points.
	// Zero means run until the context is cancelled.
	MaxPoints int

	// OnTick, if set, is called after every batch from the Run goroutine.
	OnTick func()
}

// Run advances the engine until ctx is done or MaxPoints is reached.
// It returns ctx.Err() on cancellation and nil when MaxPoints was reached.
//
// Ticks before the engine's polygon is laid out add nothing.
func (d *Driver) Run(ctx context.Context) error {
	interval := cmp.Or(d.Interval, DefaultInterval)
	batch := cmp.Or(d.Batch, DefaultBatch)

	log := Logger()
	log.Debug("chaosgame: driver started", "interval", interval, "batch", batch, "max", d.MaxPoints)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
		if err := ctx.Err(); err != nil {
			log.Debug("chaosgame: driver stopped", "points", d.Engine.Len())
			return err
		}

		n := batch
		if d.MaxPoints > 0 {
			remaining := d.MaxPoints - d.Engine.Len()
			if remaining <= 0 {
				log.Debug("chaosgame: driver reached max points", "points", d.MaxPoints)
				return nil
			}
			n = min(n, remaining)
		}
		d.Engine.AdvanceN(n)

		if d.OnTick != nil {
			d.OnTick()
		}
	}
}
