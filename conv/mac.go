package conv

// MAC multiplies the window with the kernel, accumulates into 32 bits,
// shifts the sum right arithmetically and saturates it to a sample.
func MAC(w Window, k Kernel, shift uint) uint8 {
	var acc int32

	for i := 0; i < K; i++ {
		for j := 0; j < K; j++ {
			acc += int32(w[i][j]) * int32(k[i][j])
		}
	}

	return Saturate(acc >> shift)
}

// Saturate clamps v into [0, 255].
func Saturate(v int32) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xFF:
		return 0xFF
	default:
		return uint8(v)
	}
}
