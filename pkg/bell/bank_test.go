package bell

import (
	"math"
	"testing"
)

func TestBankTune(t *testing.T) {
	b := newBank()
	b.tune(100, 48000)

	for i, p := range b.partials {
		want := (p.Ratio*100 + p.Detune) / 48000
		if got := b.phases[i].Increment(); math.Abs(float64(got-want)) > 1e-9 {
			t.Errorf("partial %d increment = %v, want %v", i, got, want)
		}
	}
}

func TestBankPhasesStayInRange(t *testing.T) {
	b := newBank()
	// High enough that the top partials advance more than a cycle per sample
	b.tune(20000, 48000)

	for n := 0; n < 100000; n++ {
		b.next(1)
		for i := range b.phases {
			if v := b.phases[i].Value(); v < 0 || v >= 1 {
				t.Fatalf("sample %d: partial %d phase %v outside [0, 1)", n, i, v)
			}
		}
	}
}

func TestBankNext(t *testing.T) {
	b := newBank()
	b.tune(440, 48000)

	sig, sum := b.next(1)
	// All phases start at zero
	if sig != 0 {
		t.Errorf("first sample = %v, want 0", sig)
	}
	if math.Abs(float64(sum)-1) > 1e-4 {
		t.Errorf("sum = %v, want 1", sum)
	}

	var peak float32
	for i := 0; i < 4800; i++ {
		s, sum := b.next(1)
		if math.Abs(float64(s)) > float64(sum)+1e-5 {
			t.Fatalf("sample %v exceeds amplitude sum %v", s, sum)
		}
		if s > peak {
			peak = s
		}
	}
	if peak < 0.1 {
		t.Errorf("peak = %v, expected audible output", peak)
	}

	_, sum = b.next(0)
	if sum != 0 {
		t.Errorf("sum at zero volume = %v", sum)
	}
}

func BenchmarkBankNext(b *testing.B) {
	bk := newBank()
	bk.tune(440, 48000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bk.next(0.8)
	}
}
