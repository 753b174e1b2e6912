// Package axis defines the stream vocabulary shared by the convolution unit
// and the host driver: beats, frames, the message that carries a beat
// through the simulator and the device interface the driver talks to.
package axis

import (
	"errors"
	"fmt"
)

// KeepLane0 is the keep mask of a beat whose single byte lane is occupied.
const KeepLane0 uint8 = 0x1

var (
	// ErrFrameLength is returned when a frame does not carry exactly the
	// number of beats the geometry requires.
	ErrFrameLength = errors.New("axis: frame length mismatch")

	// ErrEarlyLast is returned when the end-of-frame flag shows up before
	// the final beat.
	ErrEarlyLast = errors.New("axis: end of frame before the last beat")

	// ErrMissingLast is returned when the final beat does not carry the
	// end-of-frame flag.
	ErrMissingLast = errors.New("axis: last beat without end of frame")

	// ErrBadKeep is returned when a beat does not mark exactly lane 0 valid.
	ErrBadKeep = errors.New("axis: keep mask must select lane 0")
)

// Beat is one transfer unit of an 8-bit stream.
type Beat struct {
	Data uint8
	Keep uint8
	Last bool
}

// NewBeat creates a beat with lane 0 marked valid.
func NewBeat(data uint8, last bool) Beat {
	return Beat{Data: data, Keep: KeepLane0, Last: last}
}

// String prints the beat in a compact form.
func (b Beat) String() string {
	if b.Last {
		return fmt.Sprintf("%d|last", b.Data)
	}

	return fmt.Sprintf("%d", b.Data)
}

// FrameFromPixels turns a row-major pixel slice into a frame. Only the final
// beat carries the end-of-frame flag.
func FrameFromPixels(pixels []uint8) []Beat {
	frame := make([]Beat, len(pixels))
	for i, p := range pixels {
		frame[i] = NewBeat(p, i == len(pixels)-1)
	}

	return frame
}

// Pixels extracts the payload of every beat.
func Pixels(frame []Beat) []uint8 {
	pixels := make([]uint8, len(frame))
	for i, b := range frame {
		pixels[i] = b.Data
	}

	return pixels
}

// CheckBeat validates beat i of a frame that is length beats long.
func CheckBeat(b Beat, i, length int) error {
	if b.Keep != KeepLane0 {
		return fmt.Errorf("beat %d: keep 0x%x: %w", i, b.Keep, ErrBadKeep)
	}

	isFinal := i == length-1
	switch {
	case b.Last && !isFinal:
		return fmt.Errorf("beat %d of %d: %w", i, length, ErrEarlyLast)
	case !b.Last && isFinal:
		return fmt.Errorf("beat %d of %d: %w", i, length, ErrMissingLast)
	}

	return nil
}

// ValidateFrame checks that the frame has exactly length beats, that each
// beat marks lane 0 valid and that only the final beat ends the frame.
func ValidateFrame(frame []Beat, length int) error {
	if len(frame) != length {
		return fmt.Errorf("got %d beats, want %d: %w",
			len(frame), length, ErrFrameLength)
	}

	for i, b := range frame {
		if err := CheckBeat(b, i, length); err != nil {
			return err
		}
	}

	return nil
}
