package debug

import (
	"fmt"
	"math"
)

// AnalysisResult summarizes an audio buffer.
type AnalysisResult struct {
	Peak           float32
	RMS            float32
	DC             float32
	ClippedSamples int
	NaNCount       int
	InfCount       int
	ZeroCrossings  int
}

// Clipping reports whether any sample reached the clip threshold.
func (r AnalysisResult) Clipping() bool {
	return r.ClippedSamples > 0
}

// Finite reports whether every sample was a finite number.
func (r AnalysisResult) Finite() bool {
	return r.NaNCount == 0 && r.InfCount == 0
}

// ClipThreshold is the absolute level counted as clipping.
const ClipThreshold = 0.999

// SilenceThreshold is the RMS below which a buffer counts as silent.
const SilenceThreshold = 1e-4

// AnalyzeBuffer computes peak, RMS, DC and error counts for a buffer.
// Non-finite samples are counted and excluded from the statistics.
func AnalyzeBuffer(buffer []float32) AnalysisResult {
	var result AnalysisResult
	if len(buffer) == 0 {
		return result
	}

	var sum, sumSquares float64
	var last float32
	n := 0

	for _, sample := range buffer {
		s := float64(sample)
		if math.IsNaN(s) {
			result.NaNCount++
			continue
		}
		if math.IsInf(s, 0) {
			result.InfCount++
			continue
		}

		abs := float32(math.Abs(s))
		if abs > result.Peak {
			result.Peak = abs
		}
		if abs >= ClipThreshold {
			result.ClippedSamples++
		}

		sum += s
		sumSquares += s * s

		if n > 0 && (last < 0) != (sample < 0) {
			result.ZeroCrossings++
		}
		last = sample
		n++
	}

	if n > 0 {
		result.RMS = float32(math.Sqrt(sumSquares / float64(n)))
		result.DC = float32(sum / float64(n))
	}

	return result
}

// CheckBuffer returns a list of problems found in the buffer.
func CheckBuffer(buffer []float32, name string) []string {
	var issues []string
	r := AnalyzeBuffer(buffer)

	if r.NaNCount > 0 {
		issues = append(issues, fmt.Sprintf("%s: %d NaN samples", name, r.NaNCount))
	}
	if r.InfCount > 0 {
		issues = append(issues, fmt.Sprintf("%s: %d infinite samples", name, r.InfCount))
	}
	if r.Clipping() {
		issues = append(issues, fmt.Sprintf("%s: %d clipped samples (peak %.3f)", name, r.ClippedSamples, r.Peak))
	}
	if math.Abs(float64(r.DC)) > 0.05 {
		issues = append(issues, fmt.Sprintf("%s: DC offset %.3f", name, r.DC))
	}

	return issues
}

// LogBufferStats logs buffer statistics at debug level.
func LogBufferStats(buffer []float32, name string) {
	r := AnalyzeBuffer(buffer)
	Debug("%s: peak=%.4f rms=%.4f dc=%.4f zc=%d", name, r.Peak, r.RMS, r.DC, r.ZeroCrossings)
	for _, issue := range CheckBuffer(buffer, name) {
		Warn("%s", issue)
	}
}
