package analysis

import "math"

// Levels holds the peak and RMS of a block of samples.
type Levels struct {
	Peak float64
	RMS  float64
}

// PeakDB returns the peak level in dB.
func (l Levels) PeakDB() float64 { return toDB(l.Peak) }

// RMSDB returns the RMS level in dB.
func (l Levels) RMSDB() float64 { return toDB(l.RMS) }

// Measure computes the peak and RMS of samples.
func Measure(samples []float32) Levels {
	var l Levels
	if len(samples) == 0 {
		return l
	}
	sum := 0.0
	for _, s := range samples {
		v := float64(s)
		if a := math.Abs(v); a > l.Peak {
			l.Peak = a
		}
		sum += v * v
	}
	l.RMS = math.Sqrt(sum / float64(len(samples)))
	return l
}

// RMSEnvelope splits samples into consecutive windows and returns the RMS
// of each. A trailing partial window is included.
func RMSEnvelope(samples []float32, window int) []float64 {
	if window <= 0 || len(samples) == 0 {
		return nil
	}
	out := make([]float64, 0, (len(samples)+window-1)/window)
	for start := 0; start < len(samples); start += window {
		end := start + window
		if end > len(samples) {
			end = len(samples)
		}
		out = append(out, Measure(samples[start:end]).RMS)
	}
	return out
}
