// Package core models the convolution datapath as a cycle-level hardware
// component. A Unit runs at most one pipeline step per tick, consumes beats
// from its In port and emits beats on its Out port.
package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/streamconv/axis"
	"github.com/sarchlab/streamconv/conv"
)

// streamPort is the part of a sim.Port the unit drives.
type streamPort interface {
	AsRemote() sim.RemotePort
	Send(msg sim.Msg) *sim.SendError
	PeekIncoming() sim.Msg
	RetrieveIncoming() sim.Msg
}

// Stats counts what a unit has done so far.
type Stats struct {
	Steps      int
	BeatsIn    int
	BeatsOut   int
	StallTicks int
}

// Unit is the streaming convolution accelerator.
type Unit struct {
	*sim.TickingComponent

	in, out   streamPort
	outRemote sim.RemotePort

	pipeline *conv.Pipeline
	pending  *axis.BeatMsg
	err      error
	stats    Stats
}

// GetPort returns the stream port of the given direction.
func (u *Unit) GetPort(dir axis.Direction) sim.Port {
	return u.GetPortByName(dir.Name())
}

// SetRemotePort sets where the unit sends output beats to. The input side
// needs no remote because the unit never sends on it.
func (u *Unit) SetRemotePort(dir axis.Direction, remote sim.RemotePort) {
	if dir == axis.Out {
		u.outRemote = remote
	}
}

// StreamLength returns the number of beats per frame.
func (u *Unit) StreamLength() int {
	return u.pipeline.Config().StreamLength()
}

// Err returns the boundary violation that stopped the unit, if any.
func (u *Unit) Err() error {
	return u.err
}

// Stats returns a copy of the counters.
func (u *Unit) Stats() Stats {
	return u.stats
}

// Snapshot copies the window and line buffers.
func (u *Unit) Snapshot() conv.Snapshot {
	return u.pipeline.Snapshot()
}

// Finished tells whether every step has run and every beat has left.
func (u *Unit) Finished() bool {
	return u.pipeline.Done() && u.pending == nil
}

// Tick runs the unit for one cycle.
func (u *Unit) Tick() (madeProgress bool) {
	if u.err != nil || u.Finished() {
		return false
	}

	// Flush the beat held back by the previous cycle before stepping, so
	// that a full output port stalls the whole pipeline.
	madeProgress = u.doSend() || madeProgress
	madeProgress = u.doStep() || madeProgress

	if !madeProgress {
		u.stats.StallTicks++
	}

	return madeProgress
}

func (u *Unit) doSend() bool {
	if u.pending == nil {
		return false
	}

	if err := u.out.Send(u.pending); err != nil {
		Trace("Backpressure",
			"Unit", u.Name(),
			"Type", "SendFailed",
			"Time", u.now(),
			"Data", u.pending.Beat.Data,
		)

		return false
	}

	Trace("DataFlow",
		"Behavior", "Send",
		"Unit", u.Name(),
		"Time", u.now(),
		"Data", u.pending.Beat.Data,
		"Last", u.pending.Beat.Last,
		"To", u.pending.Dst,
	)

	u.pending = nil
	u.stats.BeatsOut++

	return true
}

func (u *Unit) doStep() bool {
	if u.pending != nil || u.pipeline.Done() {
		return false
	}

	var sample uint8
	if u.pipeline.Consuming() {
		beat, ok := u.receive()
		if !ok {
			return false
		}
		sample = beat.Data
	}

	res, err := u.pipeline.Step(sample)
	if err != nil {
		panic(err)
	}
	u.stats.Steps++

	if res.Emit {
		u.pending = axis.BeatMsgBuilder{}.
			WithSrc(u.out.AsRemote()).
			WithDst(u.outRemote).
			WithBeat(res.Beat()).
			Build()
		u.doSend()
	}

	u.InvokeHook(sim.HookCtx{
		Domain: u,
		Pos:    HookPosStep,
		Item:   StepRecord{Result: res, Time: u.Engine.CurrentTime()},
	})

	return true
}

// receive takes the next input beat if one has arrived and it respects the
// framing of the stream.
func (u *Unit) receive() (axis.Beat, bool) {
	item := u.in.PeekIncoming()
	if item == nil {
		return axis.Beat{}, false
	}

	msg, ok := item.(*axis.BeatMsg)
	if !ok {
		panic(fmt.Sprintf("unit %s cannot handle msg of type %T", u.Name(), item))
	}

	step := u.pipeline.CurrentStep()
	if err := axis.CheckBeat(msg.Beat, step, u.StreamLength()); err != nil {
		u.reject(msg, err)
		return axis.Beat{}, false
	}

	u.in.RetrieveIncoming()
	u.stats.BeatsIn++

	Trace("DataFlow",
		"Behavior", "Recv",
		"Unit", u.Name(),
		"Time", u.now(),
		"Data", msg.Beat.Data,
		"Last", msg.Beat.Last,
		"From", msg.Src,
	)

	return msg.Beat, true
}

func (u *Unit) reject(msg *axis.BeatMsg, err error) {
	u.err = fmt.Errorf("%s: %w", u.Name(), err)

	Trace("Reject",
		"Unit", u.Name(),
		"Time", u.now(),
		"Step", u.pipeline.CurrentStep(),
		"Error", err.Error(),
	)

	u.InvokeHook(sim.HookCtx{
		Domain: u,
		Pos:    HookPosReject,
		Item:   msg,
		Detail: err,
	})

	LogState(u)
}

func (u *Unit) now() float64 {
	return float64(u.Engine.CurrentTime() * 1e9)
}
