package conv

// Window is the K×K neighborhood currently being convolved. Row K-1 is the
// newest row; column K-1 is the newest column.
type Window [K][K]uint8

// WindowManager rebuilds the neighborhood for each step from the input
// stream and K-1 line buffers.
//
// Pixels travel bottom row -> line buffer K-2 -> row K-2 -> ... -> row 0.
// Each hop through a window row plus its line buffer is exactly Width steps
// long, so row i always lags row i+1 by one scanline.
type WindowManager struct {
	win   Window
	lines [K - 1]*LineBuffer
}

// NewWindowManager creates a manager whose line buffers hold lineLength
// samples each.
func NewWindowManager(lineLength int) *WindowManager {
	m := &WindowManager{}
	for i := range m.lines {
		m.lines[i] = NewLineBuffer(lineLength)
	}

	return m
}

// Advance performs the update of one step. All reads observe the window as
// it was before the step, so the order rows are visited in does not matter.
// sample enters the bottom-right cell only if load is set.
func (m *WindowManager) Advance(step int, sample uint8, load bool) {
	prev := m.win

	for i := 0; i < K-1; i++ {
		copy(m.win[i][:K-1], prev[i][1:])
		m.win[i][K-1] = m.lines[i].Exchange(step, prev[i+1][0])
	}

	copy(m.win[K-1][:K-1], prev[K-1][1:])
	if load {
		m.win[K-1][K-1] = sample
	}
}

// Window returns a copy of the current window.
func (m *WindowManager) Window() Window {
	return m.win
}

// Upcoming returns the sample that row will load at the given step.
func (m *WindowManager) Upcoming(row, step int) uint8 {
	return m.lines[row].Peek(step)
}

// Lines copies the raw contents of every line buffer.
func (m *WindowManager) Lines() [][]uint8 {
	out := make([][]uint8, len(m.lines))
	for i, l := range m.lines {
		out[i] = l.Contents()
	}

	return out
}
