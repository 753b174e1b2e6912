// Package config assembles a streaming convolution platform and reads the
// pipeline configuration file.
package config

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/streamconv/axis"
	"github.com/sarchlab/streamconv/conv"
	"github.com/sarchlab/streamconv/core"
)

// DeviceBuilder can build convolution devices.
type DeviceBuilder struct {
	engine     sim.Engine
	freq       sim.Freq
	cfg        conv.Config
	monitor    *monitoring.Monitor
	inBufSize  int
	outBufSize int
}

// WithEngine sets the engine that drives the device simulation.
func (d DeviceBuilder) WithEngine(engine sim.Engine) DeviceBuilder {
	d.engine = engine
	return d
}

// WithFreq sets the frequency of the device.
func (d DeviceBuilder) WithFreq(freq sim.Freq) DeviceBuilder {
	d.freq = freq
	return d
}

// WithPipeline sets the frame geometry, kernel and shift.
func (d DeviceBuilder) WithPipeline(cfg conv.Config) DeviceBuilder {
	d.cfg = cfg
	return d
}

// WithMonitor sets the monitor that monitors the device.
func (d DeviceBuilder) WithMonitor(monitor *monitoring.Monitor) DeviceBuilder {
	d.monitor = monitor
	return d
}

// WithPortBufferSize sets how many beats the device ports can queue.
func (d DeviceBuilder) WithPortBufferSize(in, out int) DeviceBuilder {
	d.inBufSize = in
	d.outBufSize = out
	return d
}

// Build creates a convolution device.
func (d DeviceBuilder) Build(name string) axis.Device {
	return d.BuildUnit(name)
}

// BuildUnit is Build without hiding the unit behind the device interface.
func (d DeviceBuilder) BuildUnit(name string) *core.Unit {
	b := core.NewBuilder().
		WithEngine(d.engine).
		WithPipeline(d.cfg)

	if d.freq != 0 {
		b = b.WithFreq(d.freq)
	}

	if d.inBufSize > 0 && d.outBufSize > 0 {
		b = b.WithPortBufferSize(d.inBufSize, d.outBufSize)
	}

	unit := b.Build(name)

	if d.monitor != nil {
		d.monitor.RegisterComponent(unit)
	}

	return unit
}
