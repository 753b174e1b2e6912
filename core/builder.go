package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/streamconv/axis"
	"github.com/sarchlab/streamconv/conv"
)

// Builder can create new units.
type Builder struct {
	engine     sim.Engine
	freq       sim.Freq
	cfg        conv.Config
	inBufSize  int
	outBufSize int
}

// NewBuilder returns a builder with single-entry port buffers, which is what
// an AXI-Stream register slice holds.
func NewBuilder() Builder {
	return Builder{
		freq:       1 * sim.GHz,
		inBufSize:  1,
		outBufSize: 1,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the unit.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithPipeline sets the geometry, kernel and shift of the datapath.
func (b Builder) WithPipeline(cfg conv.Config) Builder {
	b.cfg = cfg
	return b
}

// WithPortBufferSize sets how many beats each stream port can queue.
func (b Builder) WithPortBufferSize(in, out int) Builder {
	if in < 1 || out < 1 {
		panic("port buffers need at least one entry")
	}
	b.inBufSize = in
	b.outBufSize = out
	return b
}

// Build creates a unit.
func (b Builder) Build(name string) *Unit {
	pipeline, err := conv.NewPipeline(b.cfg)
	if err != nil {
		panic(fmt.Sprintf("unit %s: %v", name, err))
	}

	u := &Unit{pipeline: pipeline}
	u.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, u)

	in := sim.NewPort(u, b.inBufSize, 1, name+"."+axis.In.Name())
	out := sim.NewPort(u, 1, b.outBufSize, name+"."+axis.Out.Name())
	u.AddPort(axis.In.Name(), in)
	u.AddPort(axis.Out.Name(), out)
	u.in = in
	u.out = out

	return u
}
