package conv

// LineBuffer is a fixed-capacity ring that stands in for the part of a
// scanline that is not inside the window. Slot step%Cap is read and then
// overwritten once per step, so a sample written at step z comes back out at
// step z+Cap.
type LineBuffer struct {
	slots []uint8
}

// NewLineBuffer creates a zeroed line buffer.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity <= 0 {
		panic("line buffer capacity must be positive")
	}

	return &LineBuffer{slots: make([]uint8, capacity)}
}

// Cap returns the number of slots.
func (b *LineBuffer) Cap() int {
	return len(b.slots)
}

// Peek returns the sample the given step will read.
func (b *LineBuffer) Peek(step int) uint8 {
	return b.slots[step%len(b.slots)]
}

// Exchange reads the slot of the given step and stores in at its place.
func (b *LineBuffer) Exchange(step int, in uint8) (out uint8) {
	i := step % len(b.slots)
	out = b.slots[i]
	b.slots[i] = in

	return out
}

// Contents copies the raw slots, slot 0 first.
func (b *LineBuffer) Contents() []uint8 {
	out := make([]uint8, len(b.slots))
	copy(out, b.slots)

	return out
}
