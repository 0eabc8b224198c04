package dsp

// Buffer utilities for the fixed-point boundary. None of them allocate.

// Float32ToQ31 converts a sample in [-1, 1] to Q31. Out of range input saturates
// and NaN maps to zero.
func Float32ToQ31(f float32) int32 {
	if f != f {
		return 0
	}
	v := float64(f) * Q31Max
	if v >= Q31Max {
		return Q31Max
	}
	if v <= Q31Min {
		return Q31Min
	}
	return int32(v)
}

// Q31ToFloat32 converts a Q31 sample back to float
func Q31ToFloat32(q int32) float32 {
	return float32(float64(q) / Q31Max)
}

// Q31ToFloat32Buffer converts src into dst, up to the shorter length
func Q31ToFloat32Buffer(dst []float32, src []int32) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = Q31ToFloat32(src[i])
	}
}

// Float32ToInt16 converts a sample to 16-bit PCM with saturation
func Float32ToInt16(f float32) int16 {
	if f != f {
		return 0
	}
	v := f * 32767
	if v >= 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32768
	}
	return int16(v)
}

// Peak returns the largest absolute sample value in the buffer
func Peak(buffer []float32) float32 {
	var peak float32
	for _, s := range buffer {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
