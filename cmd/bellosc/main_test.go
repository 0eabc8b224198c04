package main

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justyntemme/bellosc/pkg/bell"
	"github.com/justyntemme/bellosc/pkg/dsp"
)

func TestCheckPitch(t *testing.T) {
	tests := []struct {
		note, fine int
		wantErr    bool
	}{
		{60, 0, false},
		{151, 255, false},
		{-1, 0, true},
		{152, 0, true},
		{60, 256, true},
		{60, -1, true},
	}
	for _, tt := range tests {
		_, _, err := checkPitch(tt.note, tt.fine)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkPitch(%d, %d) error = %v, wantErr %v", tt.note, tt.fine, err, tt.wantErr)
		}
	}
}

func TestRenderWritesWav(t *testing.T) {
	renderOutput = filepath.Join(t.TempDir(), "bell.wav")
	renderNote = 69
	renderFine = 0
	renderDuration = 0.25
	renderStrike = 0.1
	renderProfile = true
	sampleRate = dsp.SampleRate48k
	blockSize = dsp.DefaultBufferSize

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	if err := runRender(renderCmd, nil); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if !strings.Contains(out.String(), "Render Report") {
		t.Errorf("missing profile report:\n%s", out.String())
	}

	samples, rate, err := readWav(renderOutput)
	if err != nil {
		t.Fatalf("readWav: %v", err)
	}
	if rate != dsp.SampleRate48k {
		t.Errorf("rate = %v", rate)
	}
	if len(samples) != 12000 {
		t.Errorf("len = %d, want 12000", len(samples))
	}
	if p := dsp.Peak(samples); p < 0.01 || p > 1 {
		t.Errorf("peak = %v", p)
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	renderOutput = filepath.Join(t.TempDir(), "x.wav")
	renderDuration = 1
	renderNote = 200
	if err := runRender(renderCmd, nil); err == nil {
		t.Error("expected error for note 200")
	}
	renderNote = 60
	renderDuration = 0
	if err := runRender(renderCmd, nil); err == nil {
		t.Error("expected error for zero duration")
	}
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	tableCmd.SetOut(&out)
	tableNote = 69
	if err := runTable(tableCmd, nil); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{"A4", "normalization", "523.60", "shape", "Risset Bell", "Compensation", "5 parameters"} {
		if !strings.Contains(s, want) {
			t.Errorf("table output missing %q:\n%s", want, s)
		}
	}
}

func TestSpectrum(t *testing.T) {
	var out bytes.Buffer
	spectrumCmd.SetOut(&out)
	spectrumInput = ""
	spectrumNote = 69
	spectrumSize = 4096
	spectrumOffset = 0.05
	spectrumPeaks = 5
	spectrumWindow = "hann"
	spectrumLevels = 0.01
	sampleRate = dsp.SampleRate48k
	blockSize = dsp.DefaultBufferSize

	if err := runSpectrum(spectrumCmd, nil); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "ratio") || !strings.Contains(s, "hann window of 4096") {
		t.Errorf("unexpected output:\n%s", s)
	}

	spectrumSize = 1000
	if err := runSpectrum(spectrumCmd, nil); err == nil {
		t.Error("expected error for non power of two size")
	}
	spectrumSize = 4096
}

func TestApplyParamValues(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		param   string
		want    float64
		wantErr bool
	}{
		{"percent knob", []string{"hold=40%"}, "hold", 40, false},
		{"full name", []string{"Compensation=25"}, "comp", 25, false},
		{"ten bit knob", []string{"shape=100%"}, "shape", bell.TenBitScale, false},
		{"later pair wins", []string{"decay=0%", " decay = 50% "}, "decay", bell.TenBitScale / 2, false},
		{"unknown name", []string{"nope=1"}, "", 0, true},
		{"missing value", []string{"hold"}, "", 0, true},
		{"bad number", []string{"hold=abc"}, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := bell.New(bell.DefaultConfig())
			if err != nil {
				t.Fatal(err)
			}
			err = applyParamValues(eng, tt.pairs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyParamValues(%q) error = %v, wantErr %v", tt.pairs, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got := eng.Registry().Lookup(tt.param).GetPlainValue()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%s = %v, want %v", tt.param, got, tt.want)
			}
		})
	}
}

func TestNearestNote(t *testing.T) {
	tests := []struct {
		hz   float64
		want string
	}{
		{440, "A4+0"},
		{880, "A5+0"},
		{440 * math.Pow(2, 25.0/1200), "A4+25"},
		{440 * math.Pow(2, -30.0/1200), "A4-30"},
		{0, "-"},
		{-10, "-"},
	}
	for _, tt := range tests {
		if got := nearestNote(tt.hz); got != tt.want {
			t.Errorf("nearestNote(%v) = %q, want %q", tt.hz, got, tt.want)
		}
	}
}
