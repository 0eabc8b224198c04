package debug

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// BlockProfiler times buffer renders against their real-time deadline.
// A block of n frames at rate sr must finish within n/sr seconds.
type BlockProfiler struct {
	mu         sync.Mutex
	sampleRate float64

	count     uint64
	frames    uint64
	total     time.Duration
	min, max  time.Duration
	overruns  uint64
	worstLoad float64
}

// NewBlockProfiler creates a profiler for the given sample rate.
func NewBlockProfiler(sampleRate float64) *BlockProfiler {
	return &BlockProfiler{sampleRate: sampleRate}
}

// Deadline returns the time budget of a block of frames.
func (p *BlockProfiler) Deadline(frames int) time.Duration {
	if p.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(frames) / p.sampleRate * float64(time.Second))
}

// Start begins timing a block of frames. Call the returned function when the
// block is done.
func (p *BlockProfiler) Start(frames int) func() {
	start := time.Now()
	return func() {
		p.Record(frames, time.Since(start))
	}
}

// Record stores one block measurement.
func (p *BlockProfiler) Record(frames int, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.count == 0 || elapsed < p.min {
		p.min = elapsed
	}
	if elapsed > p.max {
		p.max = elapsed
	}
	p.count++
	p.frames += uint64(frames)
	p.total += elapsed

	if deadline := p.Deadline(frames); deadline > 0 {
		load := float64(elapsed) / float64(deadline)
		if load > p.worstLoad {
			p.worstLoad = load
		}
		if elapsed > deadline {
			p.overruns++
		}
	}
}

// BlockStats is a snapshot of the profiler.
type BlockStats struct {
	Blocks    uint64
	Frames    uint64
	Total     time.Duration
	Min, Max  time.Duration
	Overruns  uint64
	WorstLoad float64 // elapsed / deadline of the slowest block
}

// Average returns the mean block time.
func (s BlockStats) Average() time.Duration {
	if s.Blocks == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Blocks)
}

// Stats returns a snapshot of the measurements.
func (p *BlockProfiler) Stats() BlockStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return BlockStats{
		Blocks:    p.count,
		Frames:    p.frames,
		Total:     p.total,
		Min:       p.min,
		Max:       p.max,
		Overruns:  p.overruns,
		WorstLoad: p.worstLoad,
	}
}

// Reset clears all measurements.
func (p *BlockProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.count, p.frames, p.overruns = 0, 0, 0
	p.total, p.min, p.max = 0, 0, 0
	p.worstLoad = 0
}

// RealTimeFactor returns rendered audio time divided by compute time.
func (p *BlockProfiler) RealTimeFactor() float64 {
	s := p.Stats()
	if s.Total <= 0 || p.sampleRate <= 0 {
		return 0
	}
	audio := float64(s.Frames) / p.sampleRate
	return audio / s.Total.Seconds()
}

// Report generates a performance report.
func (p *BlockProfiler) Report() string {
	s := p.Stats()
	if s.Blocks == 0 {
		return "No measurements recorded"
	}

	var sb strings.Builder
	sb.WriteString("Render Report:\n")
	fmt.Fprintf(&sb, "  Blocks:     %d (%d frames)\n", s.Blocks, s.Frames)
	fmt.Fprintf(&sb, "  Average:    %v\n", s.Average())
	fmt.Fprintf(&sb, "  Min/Max:    %v / %v\n", s.Min, s.Max)
	fmt.Fprintf(&sb, "  Worst load: %.2f%%\n", s.WorstLoad*100)
	fmt.Fprintf(&sb, "  Overruns:   %d\n", s.Overruns)
	fmt.Fprintf(&sb, "  Realtime:   %.1fx\n", p.RealTimeFactor())
	return sb.String()
}
