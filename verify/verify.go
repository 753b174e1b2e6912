// Package verify checks the streaming convolution against a plain
// full-frame convolution.
//
// The reference convolver (Convolve) walks the materialized image with
// nested loops. It has no windowing problem to solve and serves only as an
// oracle: Compare lines the streamed output up with it at every interior
// coordinate and also checks the framing of the output stream.
//
// # Usage Example
//
//	cfg := conv.Config{Width: 64, Height: 48, Kernel: conv.EdgeKernel}
//	out, _ := conv.Convolve(cfg, pixels)
//
//	report := verify.Compare(cfg, pixels, out)
//	report.WriteReport(os.Stdout)
//	if !report.OK() {
//	    os.Exit(1)
//	}
package verify

import (
	"fmt"

	"github.com/sarchlab/streamconv/conv"
)

// Convolve runs the reference convolution of src into dst. Only interior
// positions of dst are written; the border keeps whatever the caller put
// there.
func Convolve(cfg conv.Config, src, dst []uint8) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	n := cfg.StreamLength()
	if len(src) != n || len(dst) != n {
		return fmt.Errorf("verify: buffers hold %d and %d samples, want %d",
			len(src), len(dst), n)
	}

	w := cfg.Width
	for i := 0; i <= cfg.Height-conv.K; i++ {
		for j := 0; j <= cfg.Width-conv.K; j++ {
			var res int32
			for k := 0; k < conv.K*conv.K; k++ {
				px := src[w*(i+k/conv.K)+(j+k%conv.K)]
				res += int32(px) * int32(cfg.Kernel[k/conv.K][k%conv.K])
			}

			dst[i*w+j] = conv.Saturate(res >> cfg.Shift)
		}
	}

	return nil
}

// Reference allocates a zeroed output image and convolves src into it.
func Reference(cfg conv.Config, src []uint8) ([]uint8, error) {
	dst := make([]uint8, cfg.StreamLength())
	if err := Convolve(cfg, src, dst); err != nil {
		return nil, err
	}

	return dst, nil
}
