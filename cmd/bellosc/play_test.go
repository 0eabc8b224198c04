package main

import (
	"context"
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/justyntemme/bellosc/pkg/bell"
	"github.com/justyntemme/bellosc/pkg/dsp"
)

func TestBellStream(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		block int
	}{
		{"default", 48000, bell.DefaultConfig().MaxBlockSize},
		{"block longer than latency", 48000, dsp.MaxBufferSize},
		{"low sample rate", 8000, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := bell.DefaultConfig()
			cfg.SampleRate = tt.rate
			cfg.MaxBlockSize = tt.block
			eng, err := bell.New(cfg)
			if err != nil {
				t.Fatal(err)
			}

			s := newBellStream(eng, 69)
			if s.ring.Capacity() < 2*tt.block {
				t.Fatalf("ring capacity %d below two blocks of %d", s.ring.Capacity(), tt.block)
			}
			s.Strike(69)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				s.Run(ctx)
				close(done)
			}()

			frames := tt.block
			deadline := time.Now().Add(2 * time.Second)
			for s.ring.Available() < frames {
				if time.Now().After(deadline) {
					cancel()
					<-done
					t.Fatal("render goroutine did not fill the ring")
				}
				time.Sleep(time.Millisecond)
			}

			p := make([]byte, frames*4)
			n, err := s.Read(p)
			cancel()
			<-done

			if err != nil || n != len(p) {
				t.Fatalf("Read = %d, %v", n, err)
			}
			if u := s.ring.Stats().Underruns; u != 0 {
				t.Errorf("underruns = %d", u)
			}
			if v := eng.Volume(); v < 0.1 {
				t.Errorf("strike was not applied, volume %v", v)
			}
			nonzero := false
			for i := 0; i < frames; i++ {
				v := math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
				if math.IsNaN(float64(v)) || v > 1 || v < -1 {
					t.Fatalf("sample %d = %v", i, v)
				}
				if v != 0 {
					nonzero = true
				}
			}
			if !nonzero {
				t.Error("stream is silent")
			}
		})
	}
}
