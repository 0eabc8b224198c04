// Package analysis provides offline analysis tools for rendered audio.
//
// FFT and Spectral Analysis:
//   - Radix-2 FFT with rectangular, Hann and Blackman-Harris windows
//   - Magnitude spectrum
//   - Peak picking with parabolic bin interpolation
//
// Level Metering:
//   - Block peak and RMS
//   - Windowed RMS envelope for tracking decays over time
//
// Example usage:
//
//	fft := analysis.NewFFT(8192, analysis.HannWindow)
//	fft.Forward(samples)
//	for _, p := range fft.Peaks(48000, -60, 16) {
//	    fmt.Printf("%.1f Hz %.1f dB\n", p.Frequency, p.MagnitudeDB)
//	}
package analysis
