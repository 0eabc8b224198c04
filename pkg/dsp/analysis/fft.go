package analysis

import (
	"errors"
	"math"
	"sort"
)

// ErrInvalidSize is returned for FFT sizes that are not a power of two.
var ErrInvalidSize = errors.New("analysis: FFT size must be a power of two >= 2")

// FFT performs a Fast Fourier Transform on the input data
type FFT struct {
	size       int
	window     WindowFunc
	windowData []float64
	windowSum  float64
	real       []float64
	imag       []float64
	magnitude  []float64
}

// WindowFunc represents a window function type
type WindowFunc int

const (
	RectangularWindow WindowFunc = iota
	HannWindow
	BlackmanHarrisWindow
)

// String returns the window name.
func (w WindowFunc) String() string {
	switch w {
	case RectangularWindow:
		return "rectangular"
	case HannWindow:
		return "hann"
	case BlackmanHarrisWindow:
		return "blackman-harris"
	default:
		return "unknown"
	}
}

// ParseWindow maps a window name to a WindowFunc.
func ParseWindow(name string) (WindowFunc, bool) {
	for _, w := range []WindowFunc{RectangularWindow, HannWindow, BlackmanHarrisWindow} {
		if w.String() == name {
			return w, true
		}
	}
	return HannWindow, false
}

// IsPowerOfTwo reports whether n is a power of two >= 2.
func IsPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// NewFFT creates a new FFT processor with the specified size and window
// function. It panics if size is not a power of two; use NewFFTChecked for
// user supplied sizes.
func NewFFT(size int, window WindowFunc) *FFT {
	f, err := NewFFTChecked(size, window)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFFTChecked is like NewFFT but returns an error for invalid sizes.
func NewFFTChecked(size int, window WindowFunc) (*FFT, error) {
	if !IsPowerOfTwo(size) {
		return nil, ErrInvalidSize
	}
	f := &FFT{
		size:       size,
		window:     window,
		windowData: make([]float64, size),
		real:       make([]float64, size),
		imag:       make([]float64, size),
		magnitude:  make([]float64, size/2+1),
	}
	f.calculateWindow()
	return f, nil
}

// Size returns the transform length.
func (f *FFT) Size() int {
	return f.size
}

func (f *FFT) calculateWindow() {
	n := float64(f.size)

	switch f.window {
	case HannWindow:
		for i := range f.windowData {
			f.windowData[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/(n-1.0)))
		}

	case BlackmanHarrisWindow:
		a0, a1, a2, a3 := 0.35875, 0.48829, 0.14128, 0.01168
		for i := range f.windowData {
			x := 2.0 * math.Pi * float64(i) / (n - 1.0)
			f.windowData[i] = a0 - a1*math.Cos(x) + a2*math.Cos(2*x) - a3*math.Cos(3*x)
		}

	default:
		for i := range f.windowData {
			f.windowData[i] = 1.0
		}
	}

	f.windowSum = 0
	for _, w := range f.windowData {
		f.windowSum += w
	}
}

// Forward windows the input, transforms it and returns the magnitude
// spectrum (size/2+1 bins). Magnitudes are scaled so that a full-scale
// sine centered on a bin reads 1.0. Short input is zero padded.
func (f *FFT) Forward(input []float32) []float64 {
	for i := 0; i < f.size; i++ {
		if i < len(input) {
			f.real[i] = float64(input[i]) * f.windowData[i]
		} else {
			f.real[i] = 0
		}
		f.imag[i] = 0
	}

	f.fft(f.real, f.imag)

	scale := 2.0 / f.windowSum
	for i := range f.magnitude {
		f.magnitude[i] = math.Hypot(f.real[i], f.imag[i]) * scale
	}
	return f.magnitude
}

// fft performs the actual FFT using Cooley-Tukey algorithm
func (f *FFT) fft(real, imag []float64) {
	n := f.size

	// Bit reversal
	j := 0
	for i := 0; i < n; i++ {
		if i < j {
			real[i], real[j] = real[j], real[i]
			imag[i], imag[j] = imag[j], imag[i]
		}
		m := n >> 1
		for m >= 1 && j >= m {
			j -= m
			m >>= 1
		}
		j += m
	}

	for stage := 2; stage <= n; stage <<= 1 {
		theta := -2.0 * math.Pi / float64(stage)
		wReal := math.Cos(theta)
		wImag := math.Sin(theta)
		half := stage / 2

		for k := 0; k < n; k += stage {
			tr, ti := 1.0, 0.0
			for j := 0; j < half; j++ {
				i1 := k + j
				i2 := i1 + half

				xr := tr*real[i2] - ti*imag[i2]
				xi := tr*imag[i2] + ti*real[i2]

				real[i2] = real[i1] - xr
				imag[i2] = imag[i1] - xi
				real[i1] += xr
				imag[i1] += xi

				tr, ti = tr*wReal-ti*wImag, tr*wImag+ti*wReal
			}
		}
	}
}

// Peak is a spectral peak.
type Peak struct {
	Bin         int
	Frequency   float64
	Magnitude   float64
	MagnitudeDB float64
}

// Peaks returns up to max local maxima of the last magnitude spectrum that
// lie above floorDB, loudest first. Frequencies are refined with parabolic
// interpolation over the neighbouring bins.
func (f *FFT) Peaks(sampleRate, floorDB float64, max int) []Peak {
	var peaks []Peak
	mag := f.magnitude

	for i := 1; i < len(mag)-1; i++ {
		if mag[i] <= mag[i-1] || mag[i] < mag[i+1] {
			continue
		}
		db := toDB(mag[i])
		if db < floorDB {
			continue
		}

		offset := 0.0
		a, b, c := toDB(mag[i-1]), db, toDB(mag[i+1])
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}

		peaks = append(peaks, Peak{
			Bin:         i,
			Frequency:   (float64(i) + offset) * sampleRate / float64(f.size),
			Magnitude:   mag[i],
			MagnitudeDB: db,
		})
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Magnitude > peaks[j].Magnitude
	})
	if max > 0 && len(peaks) > max {
		peaks = peaks[:max]
	}
	return peaks
}

func toDB(mag float64) float64 {
	if mag <= 1e-6 {
		return -120.0
	}
	return 20.0 * math.Log10(mag)
}
