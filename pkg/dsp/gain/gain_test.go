package gain

import (
	"math"
	"testing"
)

func TestCompensation(t *testing.T) {
	tests := []struct {
		name   string
		sum    float32
		amount float32
		want   float32
	}{
		{"Unity sum", 1.0, 1.0, 1.0},
		{"Loud sum attenuates", 2.0, 1.0, 0.5},
		{"Quiet sum is capped at unity", 0.2, 1.0, 1.0},
		{"Silent sum uses floor", 0, 0.05, 0.5},
		{"Zero amount", 1.0, 0, 0},
		{"Negative amount", 1.0, -1, 0},
		{"NaN amount", 1.0, float32(math.NaN()), 0},
		{"NaN sum uses floor", float32(math.NaN()), 0.05, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compensation(tt.sum, tt.amount)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Compensation(%f, %f) = %f, want %f", tt.sum, tt.amount, got, tt.want)
			}
		})
	}
}

func TestCompensationBounds(t *testing.T) {
	for sum := float32(0); sum <= 4; sum += 0.01 {
		for amount := float32(0); amount <= 4; amount += 0.05 {
			g := Compensation(sum, amount)
			if g < 0 || g > 1 {
				t.Fatalf("Compensation(%f, %f) = %f out of [0, 1]", sum, amount, g)
			}
		}
	}
}

func TestDbConversion(t *testing.T) {
	tests := []struct {
		name    string
		linear  float64
		db      float64
		epsilon float64
	}{
		{"Unity gain", 1.0, 0.0, 0.001},
		{"Half amplitude", 0.5, -6.02, 0.01},
		{"Quarter amplitude", 0.25, -12.04, 0.01},
		{"Zero amplitude", 0.0, MinDB, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDb := LinearToDb(tt.linear)
			if math.Abs(gotDb-tt.db) > tt.epsilon {
				t.Errorf("LinearToDb(%f) = %f, want %f", tt.linear, gotDb, tt.db)
			}
		})
	}
}

func TestApply(t *testing.T) {
	if got := Apply(0.5, 2.0); got != 1.0 {
		t.Errorf("Apply(0.5, 2) = %f", got)
	}
	if got := Apply(-0.5, Compensation(0.05, 1)); got != -0.5 {
		t.Errorf("Apply with floored compensation = %f, want -0.5", got)
	}
}
