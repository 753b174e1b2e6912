// Package runner simulates whole frames on a fresh platform.
//
// Each call assembles its own engine, driver and device, so frames never
// share simulator state and can run on separate goroutines:
//
//	res, err := runner.Run(cfg, pixels)
//	results, err := runner.RunFrames(ctx, cfg, frames, runtime.NumCPU())
package runner

import (
	"context"
	"fmt"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/streamconv/api"
	"github.com/sarchlab/streamconv/axis"
	"github.com/sarchlab/streamconv/config"
	"github.com/sarchlab/streamconv/conv"
	"github.com/sarchlab/streamconv/core"
)

// Result is what one simulated frame produced.
type Result struct {
	Output  []axis.Beat
	Stats   core.Stats
	EndTime sim.VTimeInSec
}

type options struct {
	freq          sim.Freq
	hooks         []sim.Hook
	monitor       *monitoring.Monitor
	inBuf, outBuf int
}

// An Option customizes the platform a frame runs on.
type Option func(*options)

// WithFreq sets the clock of the driver and the device.
func WithFreq(freq sim.Freq) Option {
	return func(o *options) { o.freq = freq }
}

// WithHook attaches a hook to the device.
func WithHook(h sim.Hook) Option {
	return func(o *options) { o.hooks = append(o.hooks, h) }
}

// WithMonitor registers the engine and components with a monitor.
func WithMonitor(m *monitoring.Monitor) Option {
	return func(o *options) { o.monitor = m }
}

// WithPortBufferSize sets the depth of the device port buffers.
func WithPortBufferSize(in, out int) Option {
	return func(o *options) {
		o.inBuf = in
		o.outBuf = out
	}
}

// Run streams one frame through a new device. When the simulation itself
// went wrong the partial result is still returned next to the error.
func Run(cfg conv.Config, pixels []uint8, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	if len(pixels) != cfg.StreamLength() {
		return nil, fmt.Errorf("runner: got %d pixels for a %dx%d frame: %w",
			len(pixels), cfg.Width, cfg.Height, axis.ErrFrameLength)
	}

	o := options{freq: 1 * sim.GHz}
	for _, opt := range opts {
		opt(&o)
	}

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(o.freq).
		Build("Driver")

	unit := config.DeviceBuilder{}.
		WithEngine(engine).
		WithFreq(o.freq).
		WithPipeline(cfg).
		WithPortBufferSize(o.inBuf, o.outBuf).
		WithMonitor(o.monitor).
		BuildUnit("Device")

	if o.monitor != nil {
		o.monitor.RegisterEngine(engine)
		o.monitor.RegisterComponent(driver)
	}

	for _, h := range o.hooks {
		unit.AcceptHook(h)
	}

	driver.RegisterDevice(unit)

	res := &Result{Output: make([]axis.Beat, cfg.StreamLength())}
	driver.FeedIn(axis.FrameFromPixels(pixels))
	driver.Collect(res.Output)

	err := driver.Run()

	res.Stats = unit.Stats()
	res.EndTime = engine.CurrentTime()

	core.Trace("FrameDone",
		"Width", cfg.Width,
		"Height", cfg.Height,
		"Steps", res.Stats.Steps,
		"Stalls", res.Stats.StallTicks,
		"EndTime", float64(res.EndTime),
	)

	if err != nil {
		return res, fmt.Errorf("runner: %w", err)
	}

	return res, nil
}

// RunFrames simulates independent frames with at most limit of them in
// flight. A limit below one means no limit. Results keep the order of the
// frames. The first failure cancels the frames that have not started yet.
func RunFrames(
	ctx context.Context,
	cfg conv.Config,
	frames [][]uint8,
	limit int,
	opts ...Option,
) ([]*Result, error) {
	results := make([]*Result, len(frames))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, frame := range frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := Run(cfg, frame, opts...)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
