package api

import "github.com/sarchlab/akita/v4/sim"

type defaultPortFactory struct {
	bufSize int
}

func (f defaultPortFactory) make(c sim.Component, name string) sim.Port {
	return sim.NewPort(c, f.bufSize, f.bufSize, name)
}

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine  sim.Engine
	freq    sim.Freq
	bufSize int
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithBufferSize sets how many beats the host-side ports can queue.
func (b DriverBuilder) WithBufferSize(size int) DriverBuilder {
	b.bufSize = size
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	bufSize := b.bufSize
	if bufSize <= 0 {
		bufSize = 4
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	d := &driverImpl{
		portFactory: defaultPortFactory{bufSize: bufSize},
		freq:        freq,
	}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, freq, d)

	return d
}
