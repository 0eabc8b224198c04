package plugin

import (
	"errors"
	"testing"

	"github.com/justyntemme/bellosc/pkg/framework/param"
)

func TestUIDGeneration(t *testing.T) {
	a := Info{ID: "com.bellosc.risset"}
	b := Info{ID: "com.bellosc.other"}

	if a.UID() != a.UID() {
		t.Error("UID generation is not deterministic")
	}
	if a.UID() == b.UID() {
		t.Error("different IDs produced the same UID")
	}
	if a.UID() == [16]byte{} {
		t.Error("UID should not be zero")
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Name: "Bell", Version: "1.0.0", Vendor: "bellosc"}, "Bell 1.0.0 (bellosc)"},
		{Info{Name: "Bell"}, "Bell"},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBaseProcessor(t *testing.T) {
	b := NewBaseProcessor(nil)
	if b.GetParameters() == nil {
		t.Fatal("nil registry")
	}

	var gotRate float64
	b.OnInitialize(func(sampleRate float64, maxBlockSize int32) error {
		gotRate = sampleRate
		return nil
	})
	if err := b.Initialize(44100, 128); err != nil {
		t.Fatal(err)
	}
	if gotRate != 44100 || b.SampleRate() != 44100 {
		t.Errorf("sample rate not propagated: %f", gotRate)
	}

	errStop := errors.New("stop")
	b.OnSetActive(func(active bool) error {
		if !active {
			return errStop
		}
		return nil
	})
	if err := b.SetActive(true); err != nil || !b.IsActive() {
		t.Errorf("SetActive(true) = %v", err)
	}
	if err := b.SetActive(false); !errors.Is(err, errStop) {
		t.Errorf("SetActive(false) = %v", err)
	}

	if b.GetLatencySamples() != 0 || b.GetTailSamples() != 0 {
		t.Error("expected zero latency and tail")
	}

	reg := param.NewRegistry()
	if NewBaseProcessor(reg).GetParameters() != reg {
		t.Error("registry not kept")
	}
}
