// Package buffer provides a lock-free ring buffer between a render goroutine
// and an audio device callback.
package buffer

import (
	"math"
	"sync/atomic"
	"time"
)

// Ring is a single-producer single-consumer float32 ring buffer. One
// goroutine writes rendered blocks, another reads whatever the device asks
// for; neither blocks. Reads that find too little data are padded with
// silence and counted as underruns.
type Ring struct {
	data []float32
	mask uint64

	readPos  atomic.Uint64
	writePos atomic.Uint64

	underruns atomic.Uint64
	overruns  atomic.Uint64
}

// Stats provides health monitoring information
type Stats struct {
	Underruns uint64
	Overruns  uint64
	// Fill is the readable share of the capacity, 0-1
	Fill float32
}

// NewRing creates a ring holding at least size samples. The capacity is
// rounded up to a power of two.
func NewRing(size int) *Ring {
	if size < 2 {
		size = 2
	}
	n := nextPowerOf2(uint64(size))
	return &Ring{
		data: make([]float32, n),
		mask: n - 1,
	}
}

// NewRingForLatency sizes a ring for four times the given latency, and never
// for fewer than two blocks of the producer's block size.
func NewRingForLatency(sampleRate float64, latency time.Duration, block int) *Ring {
	samples := int(math.Ceil(sampleRate*latency.Seconds())) * 4
	if samples < 2*block {
		samples = 2 * block
	}
	return NewRing(samples)
}

// Capacity returns the number of samples the ring can hold
func (r *Ring) Capacity() int {
	return len(r.data)
}

// Available returns the number of samples ready to read
func (r *Ring) Available() int {
	return int(r.writePos.Load() - r.readPos.Load())
}

// Free returns the number of samples that can be written
func (r *Ring) Free() int {
	return len(r.data) - r.Available()
}

// Write appends as many samples as fit and returns how many were written.
// A short write is counted as an overrun. Only one goroutine may write.
func (r *Ring) Write(samples []float32) int {
	w := r.writePos.Load()
	free := len(r.data) - int(w-r.readPos.Load())

	n := len(samples)
	if n > free {
		n = free
		r.overruns.Add(1)
	}

	for i := 0; i < n; {
		idx := (w + uint64(i)) & r.mask
		// Copy up to the end of the backing slice, then wrap
		c := copy(r.data[idx:], samples[i:n])
		i += c
	}

	r.writePos.Store(w + uint64(n))
	return n
}

// Read fills out with buffered samples and returns how many were real. The
// rest of out is zeroed and a short read is counted as an underrun. Only one
// goroutine may read.
func (r *Ring) Read(out []float32) int {
	rp := r.readPos.Load()
	avail := int(r.writePos.Load() - rp)

	n := len(out)
	if n > avail {
		n = avail
		r.underruns.Add(1)
	}

	for i := 0; i < n; {
		idx := (rp + uint64(i)) & r.mask
		c := copy(out[i:n], r.data[idx:])
		i += c
	}
	for i := n; i < len(out); i++ {
		out[i] = 0
	}

	r.readPos.Store(rp + uint64(n))
	return n
}

// Stats returns current buffer statistics
func (r *Ring) Stats() Stats {
	return Stats{
		Underruns: r.underruns.Load(),
		Overruns:  r.overruns.Load(),
		Fill:      float32(r.Available()) / float32(len(r.data)),
	}
}

// nextPowerOf2 rounds up to the next power of 2
func nextPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}
