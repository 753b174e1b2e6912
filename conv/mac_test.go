package conv_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/streamconv/conv"
)

func uniformWindow(v uint8) conv.Window {
	var w conv.Window
	for i := range w {
		for j := range w[i] {
			w[i][j] = v
		}
	}

	return w
}

var _ = Describe("Saturate", func() {
	DescribeTable("clamps into a byte",
		func(v int32, want uint8) {
			Expect(conv.Saturate(v)).To(Equal(want))
		},
		Entry("large negative", int32(-100000), uint8(0)),
		Entry("minus one", int32(-1), uint8(0)),
		Entry("zero", int32(0), uint8(0)),
		Entry("mid", int32(128), uint8(128)),
		Entry("max", int32(255), uint8(255)),
		Entry("just above", int32(256), uint8(255)),
		Entry("large positive", int32(1<<30), uint8(255)),
	)
})

var _ = Describe("MAC", func() {
	It("should return zero for the edge kernel on a flat region", func() {
		Expect(conv.MAC(uniformWindow(200), conv.EdgeKernel, 0)).
			To(Equal(uint8(0)))
	})

	It("should clamp a negative sum to zero", func() {
		w := uniformWindow(10)
		w[1][1] = 200

		Expect(conv.MAC(w, conv.EdgeKernel, 0)).To(Equal(uint8(0)))
	})

	It("should clamp a large sum to 255", func() {
		w := uniformWindow(200)
		w[1][1] = 10

		Expect(conv.MAC(w, conv.EdgeKernel, 0)).To(Equal(uint8(255)))
	})

	It("should return the center for the identity kernel", func() {
		w := uniformWindow(3)
		w[1][1] = 77

		Expect(conv.MAC(w, conv.IdentityKernel, 0)).To(Equal(uint8(77)))
	})

	It("should shift before saturating", func() {
		Expect(conv.MAC(uniformWindow(100), conv.BoxKernel, 3)).
			To(Equal(uint8(900 >> 3)))
	})

	It("should shift negative sums arithmetically", func() {
		w := uniformWindow(0)
		w[0][1] = 1
		k := conv.Kernel{{0, -9, 0}, {0, 0, 0}, {0, 0, 0}}

		Expect(conv.MAC(w, k, 1)).To(Equal(uint8(0)))
	})

	It("should not overflow with extreme coefficients", func() {
		k := conv.Kernel{
			{127, 127, 127},
			{127, 127, 127},
			{127, 127, 127},
		}

		Expect(conv.MAC(uniformWindow(255), k, 10)).To(Equal(uint8(255)))
	})
})
