package conv_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/streamconv/conv"
)

var _ = Describe("Config", func() {
	It("should derive the stream geometry", func() {
		cfg := conv.Config{Width: 6, Height: 5, Kernel: conv.EdgeKernel}

		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.StreamLength()).To(Equal(30))
		Expect(cfg.Delay()).To(Equal(14))
		Expect(cfg.Steps()).To(Equal(44))
		Expect(cfg.LineLength()).To(Equal(3))
	})

	DescribeTable("should reject bad configurations",
		func(cfg conv.Config, want error) {
			Expect(cfg.Validate()).To(MatchError(want))
		},
		Entry("too narrow", conv.Config{Width: 3, Height: 8},
			conv.ErrBadGeometry),
		Entry("too short", conv.Config{Width: 8, Height: 2},
			conv.ErrBadGeometry),
		Entry("shift too wide", conv.Config{Width: 8, Height: 8, Shift: 32},
			conv.ErrBadShift),
	)

	It("should map output indices to image coordinates", func() {
		cfg := conv.Config{Width: 6, Height: 5}

		row, col, interior := cfg.Coord(0)
		Expect([]int{row, col}).To(Equal([]int{0, 0}))
		Expect(interior).To(BeTrue())

		row, col, interior = cfg.Coord(2*6 + 3)
		Expect([]int{row, col}).To(Equal([]int{2, 3}))
		Expect(interior).To(BeTrue())

		_, _, interior = cfg.Coord(2*6 + 4)
		Expect(interior).To(BeFalse())

		_, _, interior = cfg.Coord(3 * 6)
		Expect(interior).To(BeFalse())
	})

	It("should build kernels from flat coefficients", func() {
		k, err := conv.KernelFromSlice([]int8{1, 1, 1, 1, -8, 1, 1, 1, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(k).To(Equal(conv.EdgeKernel))

		_, err = conv.KernelFromSlice([]int8{1, 2})
		Expect(err).To(HaveOccurred())
	})
})
