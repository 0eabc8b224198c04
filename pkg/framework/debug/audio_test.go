package debug

import (
	"math"
	"strings"
	"testing"
)

func TestAnalyzeBuffer(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		r := AnalyzeBuffer(nil)
		if r.Peak != 0 || r.RMS != 0 {
			t.Errorf("expected zero result, got %+v", r)
		}
	})

	t.Run("Square", func(t *testing.T) {
		buf := []float32{0.5, -0.5, 0.5, -0.5}
		r := AnalyzeBuffer(buf)
		if r.Peak != 0.5 {
			t.Errorf("peak = %v, want 0.5", r.Peak)
		}
		if math.Abs(float64(r.RMS)-0.5) > 1e-6 {
			t.Errorf("rms = %v, want 0.5", r.RMS)
		}
		if r.DC != 0 {
			t.Errorf("dc = %v, want 0", r.DC)
		}
		if r.ZeroCrossings != 3 {
			t.Errorf("zero crossings = %d, want 3", r.ZeroCrossings)
		}
		if r.Clipping() || !r.Finite() {
			t.Errorf("unexpected flags: %+v", r)
		}
	})

	t.Run("NonFinite", func(t *testing.T) {
		nan := float32(math.NaN())
		inf := float32(math.Inf(1))
		r := AnalyzeBuffer([]float32{nan, inf, 0.25})
		if r.NaNCount != 1 || r.InfCount != 1 {
			t.Errorf("counts = %d/%d, want 1/1", r.NaNCount, r.InfCount)
		}
		if r.Peak != 0.25 {
			t.Errorf("peak = %v, want 0.25", r.Peak)
		}
		if r.Finite() {
			t.Error("expected non-finite result")
		}
	})
}

func TestCheckBuffer(t *testing.T) {
	if issues := CheckBuffer([]float32{0.1, -0.1}, "ok"); len(issues) != 0 {
		t.Errorf("unexpected issues: %v", issues)
	}

	issues := CheckBuffer([]float32{1, 1, float32(math.NaN())}, "bad")
	joined := strings.Join(issues, "\n")
	for _, want := range []string{"NaN", "clipped", "DC offset"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in %v", want, issues)
		}
	}
}
