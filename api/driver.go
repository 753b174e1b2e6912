// Package api defines the host driver of a streaming accelerator.
package api

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"
	"github.com/sarchlab/streamconv/axis"
)

// Driver provides the interface to control an accelerator.
type Driver interface {
	sim.Component

	// RegisterDevice registers a device to the driver. The driver will
	// establish connections to the device.
	RegisterDevice(device axis.Device)

	// FeedIn queues a frame to be streamed into the device, one beat per
	// cycle as long as the device accepts it.
	FeedIn(frame []axis.Beat)

	// Collect queues a buffer to be filled, in order, with the beats the
	// device produces.
	Collect(frame []axis.Beat)

	// Run will run all the tasks that have been added to the driver. It
	// fails if the device rejected the stream or if the simulation ran out
	// of events before every task finished.
	Run() error
}

type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

// hostPort is the part of a sim.Port the driver drives.
type hostPort interface {
	AsRemote() sim.RemotePort
	CanSend() bool
	Send(msg sim.Msg) *sim.SendError
	PeekIncoming() sim.Msg
	RetrieveIncoming() sim.Msg
}

type driverImpl struct {
	*sim.TickingComponent

	device      axis.Device
	portFactory portFactory
	freq        sim.Freq

	toDevice   hostPort
	fromDevice hostPort
	deviceIn   sim.RemotePort

	feedInTasks  []*feedInTask
	collectTasks []*collectTask
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.doFeedIn() || madeProgress
	madeProgress = d.doCollect() || madeProgress

	return madeProgress
}

type feedInTask struct {
	data  []axis.Beat
	round int
}

func (t *feedInTask) isFinished() bool {
	return t.round >= len(t.data)
}

type collectTask struct {
	data  []axis.Beat
	round int
}

func (t *collectTask) isFinished() bool {
	return t.round >= len(t.data)
}

// The stream is ordered, so only the oldest task of each kind is served.
func (d *driverImpl) doFeedIn() bool {
	if len(d.feedInTasks) == 0 {
		return false
	}

	task := d.feedInTasks[0]
	if !d.toDevice.CanSend() {
		return false
	}

	msg := axis.BeatMsgBuilder{}.
		WithSrc(d.toDevice.AsRemote()).
		WithDst(d.deviceIn).
		WithBeat(task.data[task.round]).
		Build()
	if err := d.toDevice.Send(msg); err != nil {
		panic("device cannot handle the data rate")
	}

	task.round++
	if task.isFinished() {
		d.feedInTasks = d.feedInTasks[1:]
	}

	return true
}

func (d *driverImpl) doCollect() bool {
	if len(d.collectTasks) == 0 {
		return false
	}

	item := d.fromDevice.PeekIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*axis.BeatMsg)
	if !ok {
		panic(fmt.Sprintf("driver cannot handle msg of type %T", item))
	}

	task := d.collectTasks[0]
	task.data[task.round] = msg.Beat
	task.round++
	d.fromDevice.RetrieveIncoming()

	if task.isFinished() {
		d.collectTasks = d.collectTasks[1:]
	}

	return true
}

// RegisterDevice registers a device to the driver. The driver will
// establish connections to the device.
func (d *driverImpl) RegisterDevice(device axis.Device) {
	d.device = device

	toDevice := d.portFactory.make(d, d.Name()+".ToDevice")
	fromDevice := d.portFactory.make(d, d.Name()+".FromDevice")
	d.AddPort("ToDevice", toDevice)
	d.AddPort("FromDevice", fromDevice)

	devIn := device.GetPort(axis.In)
	devOut := device.GetPort(axis.Out)

	conn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.freq).
		Build(d.Name() + "." + device.Name())
	conn.PlugIn(toDevice)
	conn.PlugIn(fromDevice)
	conn.PlugIn(devIn)
	conn.PlugIn(devOut)

	d.attach(toDevice, fromDevice, devIn.AsRemote())
}

func (d *driverImpl) attach(toDevice, fromDevice hostPort, deviceIn sim.RemotePort) {
	d.toDevice = toDevice
	d.fromDevice = fromDevice
	d.deviceIn = deviceIn
	d.device.SetRemotePort(axis.Out, fromDevice.AsRemote())
}

func (d *driverImpl) FeedIn(frame []axis.Beat) {
	if len(frame) == 0 {
		return
	}

	d.feedInTasks = append(d.feedInTasks, &feedInTask{data: frame})
}

func (d *driverImpl) Collect(frame []axis.Beat) {
	if len(frame) == 0 {
		return
	}

	d.collectTasks = append(d.collectTasks, &collectTask{data: frame})
}

// Run runs all the tasks in the driver.
func (d *driverImpl) Run() error {
	if d.device == nil {
		panic("no device registered")
	}

	d.TickNow()
	if err := d.Engine.Run(); err != nil {
		return fmt.Errorf("driver: %w", err)
	}

	if err := d.device.Err(); err != nil {
		return err
	}

	if n := d.pendingBeats(); n > 0 {
		return fmt.Errorf("driver: simulation stopped with %d beats outstanding", n)
	}

	return nil
}

func (d *driverImpl) pendingBeats() int {
	n := 0
	for _, t := range d.feedInTasks {
		n += len(t.data) - t.round
	}
	for _, t := range d.collectTasks {
		n += len(t.data) - t.round
	}

	return n
}
