package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/streamconv/conv"
)

// HookPosStep marks the end of a pipeline step.
var HookPosStep = &sim.HookPos{Name: "Conv Step"}

// HookPosReject marks an input beat that broke the framing of the stream.
var HookPosReject = &sim.HookPos{Name: "Conv Reject"}

// StepRecord is the hook item of HookPosStep.
type StepRecord struct {
	conv.Result
	Time     sim.VTimeInSec
	Snapshot *conv.Snapshot
}

// StepTracer is a hook that records every step of the units it is attached
// to.
type StepTracer struct {
	// WithSnapshots makes the tracer copy the window and line buffers after
	// each step.
	WithSnapshots bool

	Records  []StepRecord
	Rejected []error
}

// Func implements sim.Hook.
func (t *StepTracer) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case HookPosStep:
		rec := ctx.Item.(StepRecord)
		if t.WithSnapshots {
			if u, ok := ctx.Domain.(*Unit); ok {
				s := u.Snapshot()
				rec.Snapshot = &s
			}
		}
		t.Records = append(t.Records, rec)
	case HookPosReject:
		if err, ok := ctx.Detail.(error); ok {
			t.Rejected = append(t.Rejected, err)
		}
	}
}

// Emitted returns the records of the steps that produced an output beat.
func (t *StepTracer) Emitted() []StepRecord {
	var out []StepRecord
	for _, r := range t.Records {
		if r.Emit {
			out = append(out, r)
		}
	}

	return out
}
