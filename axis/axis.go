package axis

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Direction tells whether a stream port consumes or produces beats.
type Direction int

const (
	In Direction = iota
	Out
)

// Name returns the name of the direction.
func (d Direction) Name() string {
	switch d {
	case In:
		return "In"
	case Out:
		return "Out"
	default:
		panic("invalid direction")
	}
}

// A Device is a streaming accelerator with one input and one output stream.
type Device interface {
	Name() string

	// GetPort returns the device port of the given direction.
	GetPort(dir Direction) sim.Port

	// SetRemotePort tells the device where the stream of the given
	// direction is connected to on the host side.
	SetRemotePort(dir Direction, port sim.RemotePort)

	// StreamLength is the number of beats per frame in both directions.
	StreamLength() int

	// Err reports the first boundary violation the device detected.
	Err() error
}
