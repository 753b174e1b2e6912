// Package conv implements a streaming 3x3 convolution datapath.
//
// A frame enters as a row-major stream of 8-bit samples, one per step. A
// K×K window plus K-1 line buffers of length W-K rebuild every neighborhood
// without ever holding the whole frame. Each step the window is combined with
// a fixed kernel, shifted right and saturated to [0, 255]. The result of the
// neighborhood whose top-left pixel is p arrives Delay steps after p entered
// the pipeline, so the output stream lines up with the input stream.
//
// Only outputs at interior coordinates (row <= H-K, col <= W-K) are genuine
// convolution results. The rest are whatever the window held at that step.
package conv

import (
	"errors"
	"fmt"
)

// K is the kernel dimension.
const K = 3

var (
	// ErrBadGeometry is returned for frames that cannot hold a window.
	ErrBadGeometry = errors.New("conv: invalid frame geometry")

	// ErrBadShift is returned when the shift exceeds the accumulator width.
	ErrBadShift = errors.New("conv: shift out of range")
)

// Kernel holds K×K signed coefficients, row-major.
type Kernel [K][K]int8

var (
	// EdgeKernel is the Laplacian-style edge detector.
	EdgeKernel = Kernel{
		{1, 1, 1},
		{1, -8, 1},
		{1, 1, 1},
	}

	// IdentityKernel copies the center pixel.
	IdentityKernel = Kernel{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}

	// BoxKernel sums the neighborhood. Use a shift of 3 for a cheap average.
	BoxKernel = Kernel{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}

	// SharpenKernel boosts the center against its 4-neighbors.
	SharpenKernel = Kernel{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}
)

// NamedKernels lists the built-in kernels by name.
var NamedKernels = map[string]Kernel{
	"edge":     EdgeKernel,
	"identity": IdentityKernel,
	"box":      BoxKernel,
	"sharpen":  SharpenKernel,
}

// KernelFromSlice builds a kernel from K*K row-major coefficients.
func KernelFromSlice(coeffs []int8) (Kernel, error) {
	var k Kernel
	if len(coeffs) != K*K {
		return k, fmt.Errorf("conv: kernel needs %d coefficients, got %d",
			K*K, len(coeffs))
	}

	for i := 0; i < K; i++ {
		for j := 0; j < K; j++ {
			k[i][j] = coeffs[i*K+j]
		}
	}

	return k, nil
}

// Config fixes everything a pipeline instance needs to know up front.
type Config struct {
	Width  int
	Height int
	Kernel Kernel
	Shift  uint
}

// Validate checks that the geometry leaves room for a window and a non-empty
// line buffer, and that the shift fits the accumulator.
func (c Config) Validate() error {
	if c.Width <= K {
		return fmt.Errorf("width %d must exceed %d: %w",
			c.Width, K, ErrBadGeometry)
	}

	if c.Height < K {
		return fmt.Errorf("height %d must be at least %d: %w",
			c.Height, K, ErrBadGeometry)
	}

	if c.Shift > 31 {
		return fmt.Errorf("shift %d: %w", c.Shift, ErrBadShift)
	}

	return nil
}

// StreamLength is the number of beats in one frame.
func (c Config) StreamLength() int {
	return c.Width * c.Height
}

// Delay is the number of warm-up steps before the first output. The window
// is complete for the neighborhood of pixel p once the pixel K-1 rows and
// K-1 columns after p has entered.
func (c Config) Delay() int {
	return (K-1)*c.Width + (K - 1)
}

// Steps is the total number of steps of one run, drain included.
func (c Config) Steps() int {
	return c.StreamLength() + c.Delay()
}

// LineLength is the capacity of each line buffer.
func (c Config) LineLength() int {
	return c.Width - K
}

// Coord maps an output stream index to the image coordinate whose
// neighborhood it carries. interior is false for positions that carry no
// genuine convolution result.
func (c Config) Coord(index int) (row, col int, interior bool) {
	row = index / c.Width
	col = index % c.Width
	interior = row <= c.Height-K && col <= c.Width-K

	return row, col, interior
}
