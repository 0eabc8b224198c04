package param

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestParameterValue(t *testing.T) {
	p := New(1, "Hold").Range(0, 100).Default(25).Steps(100).Build()

	if got := p.GetValue(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("default normalized = %f, want 0.25", got)
	}
	if got := p.GetPlainValue(); math.Abs(got-25) > 1e-9 {
		t.Errorf("default plain = %f, want 25", got)
	}

	p.SetPlainValue(80)
	if got := p.GetValue(); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("normalized = %f, want 0.8", got)
	}

	p.Reset()
	if got := p.GetPlainValue(); math.Abs(got-25) > 1e-9 {
		t.Errorf("plain after Reset = %f, want 25", got)
	}
}

func TestParameterClamping(t *testing.T) {
	p := New(1, "Shape").Range(0, 1023).Build()

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"Below range", -0.5, 0},
		{"Above range", 1.5, 1},
		{"NaN", math.NaN(), 0},
		{"Positive infinity", math.Inf(1), 1},
		{"Negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetValue(tt.value)
			if got := p.GetValue(); got != tt.want {
				t.Errorf("SetValue(%f) stored %f, want %f", tt.value, got, tt.want)
			}
		})
	}

	p.SetPlainValue(5000)
	if got := p.GetPlainValue(); got != 1023 {
		t.Errorf("plain above range stored %f", got)
	}
}

func TestParameterFormatting(t *testing.T) {
	pct := New(1, "Comp").Range(0, 100).Formatter(PercentFormatter, PercentParser).Build()
	if got := pct.FormatValue(0.5); got != "50%" {
		t.Errorf("FormatValue = %q, want 50%%", got)
	}
	norm, err := pct.ParseValue("75 %")
	if err != nil || math.Abs(norm-0.75) > 1e-12 {
		t.Errorf("ParseValue = %f, %v", norm, err)
	}

	steps := New(2, "Code").Range(0, 1023).Steps(1023).Build()
	if got := steps.FormatValue(1); got != "1023" {
		t.Errorf("FormatValue = %q, want 1023", got)
	}

	plain := New(3, "Plain").Build()
	if got := plain.FormatValue(0.5); got != "0.50" {
		t.Errorf("FormatValue = %q, want 0.50", got)
	}
	if _, err := plain.ParseValue("abc"); err == nil {
		t.Error("expected parse error")
	}

	full := New(4, "Shape").Range(0, 1023).Formatter(FullScaleFormatter(1023), FullScaleParser(1023)).Build()
	if got := full.FormatValue(1); got != "100.0%" {
		t.Errorf("FormatValue = %q, want 100.0%%", got)
	}
	norm, err = full.ParseValue("50%")
	if err != nil || math.Abs(norm-0.5) > 1e-12 {
		t.Errorf("ParseValue = %f, %v", norm, err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := New(10, "Hold").ShortName("hold").Build()
	b := New(20, "Shape").Build()

	if err := r.Add(a, b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(New(10, "Other").Build()); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}

	if r.Count() != 2 {
		t.Errorf("Count = %d", r.Count())
	}
	if r.Get(20) != b || r.Get(10) != a || r.Get(5) != nil || r.All()[0] != a {
		t.Error("lookup mismatch")
	}
	if r.Lookup("hold") != a || r.Lookup("Shape") != b || r.Lookup("nope") != nil {
		t.Error("Lookup mismatch")
	}

	all := r.All()
	if len(all) != 2 || all[0] != a || all[1] != b {
		t.Error("All order mismatch")
	}

	if err := r.SetPlain(99, 1); !errors.Is(err, ErrUnknownID) {
		t.Errorf("expected ErrUnknownID, got %v", err)
	}
	if err := r.SetPlain(20, 0.5); err != nil || b.GetValue() != 0.5 {
		t.Errorf("SetPlain: %v, value %f", err, b.GetValue())
	}

	r.ResetAll()
	if b.GetValue() != 0 {
		t.Errorf("ResetAll left %f", b.GetValue())
	}
}

func TestConcurrentValueAccess(t *testing.T) {
	p := New(1, "Shape").Build()
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			p.SetValue(float64(i%2) * 0.5)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			if v := p.GetValue(); v != 0 && v != 0.5 {
				t.Errorf("torn read %f", v)
				return
			}
		}
	}()
	wg.Wait()
}

func TestPollChange(t *testing.T) {
	p := New(1, "Hold").Range(0, 100).Default(50).Build()

	// Build writes the default
	if v, ok := p.PollChange(); !ok || v != 0.5 {
		t.Fatalf("PollChange after Build = %v, %v", v, ok)
	}
	if _, ok := p.PollChange(); ok {
		t.Fatal("second poll should report no change")
	}

	p.SetPlainValue(25)
	if v, ok := p.PollChange(); !ok || v != 0.25 {
		t.Errorf("PollChange = %v, %v; want 0.25, true", v, ok)
	}

	// Writing the same value still counts as a change
	p.SetPlainValue(25)
	if _, ok := p.PollChange(); !ok {
		t.Error("rewrite of equal value not reported")
	}
}
