package conv

import (
	"errors"
	"fmt"

	"github.com/sarchlab/streamconv/axis"
)

// ErrPipelineDone is returned when a finished pipeline is stepped again.
var ErrPipelineDone = errors.New("conv: pipeline already drained")

// Result is what one step produced.
type Result struct {
	Step  int
	Value uint8
	Emit  bool
	Last  bool
}

// Beat turns an emitted result into an output beat.
func (r Result) Beat() axis.Beat {
	return axis.NewBeat(r.Value, r.Last)
}

// Snapshot is a copy of the pipeline state taken between two steps.
type Snapshot struct {
	Step   int
	Window Window
	Lines  [][]uint8
}

// Pipeline sequences the steps of one frame. It is not safe for concurrent
// use; one pipeline serves exactly one frame.
type Pipeline struct {
	cfg    Config
	step   int
	window *WindowManager
}

// NewPipeline validates the configuration and creates a pipeline with empty
// buffers.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new pipeline: %w", err)
	}

	return &Pipeline{
		cfg:    cfg,
		window: NewWindowManager(cfg.LineLength()),
	}, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// CurrentStep returns the index of the next step to run.
func (p *Pipeline) CurrentStep() int {
	return p.step
}

// Consuming tells whether the next step reads an input sample.
func (p *Pipeline) Consuming() bool {
	return p.step < p.cfg.StreamLength()
}

// Done tells whether every step has run.
func (p *Pipeline) Done() bool {
	return p.step >= p.cfg.Steps()
}

// Step runs one step. sample is only used while the pipeline is consuming;
// during the drain it is ignored.
func (p *Pipeline) Step(sample uint8) (Result, error) {
	if p.Done() {
		return Result{}, ErrPipelineDone
	}

	z := p.step
	p.window.Advance(z, sample, p.Consuming())

	res := Result{
		Step:  z,
		Value: MAC(p.window.Window(), p.cfg.Kernel, p.cfg.Shift),
		Emit:  z >= p.cfg.Delay(),
		Last:  z == p.cfg.Steps()-1,
	}
	p.step++

	return res, nil
}

// Upcoming returns the sample window row will load on the next step.
func (p *Pipeline) Upcoming(row int) uint8 {
	return p.window.Upcoming(row, p.step)
}

// Snapshot copies the current state.
func (p *Pipeline) Snapshot() Snapshot {
	return Snapshot{
		Step:   p.step,
		Window: p.window.Window(),
		Lines:  p.window.Lines(),
	}
}

// Run pushes a whole frame through the pipeline and returns the output
// frame. The frame is checked at the boundary before any step runs.
func (p *Pipeline) Run(frame []axis.Beat) ([]axis.Beat, error) {
	if p.step != 0 {
		return nil, fmt.Errorf("run at step %d: %w", p.step, ErrPipelineDone)
	}

	if err := axis.ValidateFrame(frame, p.cfg.StreamLength()); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	out := make([]axis.Beat, 0, p.cfg.StreamLength())
	for !p.Done() {
		var sample uint8
		if p.Consuming() {
			sample = frame[p.step].Data
		}

		res, err := p.Step(sample)
		if err != nil {
			return out, err
		}

		if res.Emit {
			out = append(out, res.Beat())
		}
	}

	return out, nil
}

// Convolve is a shortcut that streams pixels through a fresh pipeline.
func Convolve(cfg Config, pixels []uint8) ([]axis.Beat, error) {
	p, err := NewPipeline(cfg)
	if err != nil {
		return nil, err
	}

	return p.Run(axis.FrameFromPixels(pixels))
}
