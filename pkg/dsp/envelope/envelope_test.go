package envelope

import (
	"math"
	"testing"
)

func TestBellAttack(t *testing.T) {
	env := New()
	env.SetRates(0.001, 0, 0)
	env.Trigger()

	prev := env.Volume()
	for i := 0; i < 1000000; i++ {
		v := env.Next()
		if !env.IsAttacking() {
			if v != 1.0 {
				t.Fatalf("volume at transition = %f, want exactly 1", v)
			}
			if env.Stage() != StageHold {
				t.Fatalf("stage after attack = %v", env.Stage())
			}
			return
		}
		if v <= prev {
			t.Fatalf("attack not strictly increasing at sample %d: %f -> %f", i, prev, v)
		}
		prev = v
	}
	t.Fatal("attack never completed")
}

func TestBellAttackFromZero(t *testing.T) {
	env := New()
	env.volume = 0
	env.SetAttack(0.01)
	env.Trigger()

	if v := env.Next(); v <= 0 {
		t.Errorf("attack stalled at zero volume: %f", v)
	}
}

func TestBellDecayHold(t *testing.T) {
	tests := []struct {
		name  string
		decay float32
		hold  float32
	}{
		{"Slow decay", 0.00004, 0.3},
		{"Fast decay", 0.01, 0.5},
		{"Decay to silence", 0.001, 0},
		{"Step larger than gap", 0.3, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := New()
			env.volume = 1.0
			env.SetRates(0, tt.decay, tt.hold)

			prev := env.Volume()
			for i := 0; i < 100000; i++ {
				v := env.Next()
				if v > prev {
					t.Fatalf("volume increased during decay at sample %d: %f -> %f", i, prev, v)
				}
				if v < tt.hold {
					t.Fatalf("volume %f dropped below hold %f", v, tt.hold)
				}
				prev = v
			}
			if math.Abs(float64(prev-tt.hold)) > 1e-6 {
				t.Errorf("volume did not settle on hold: %f", prev)
			}
		})
	}
}

func TestBellHoldSnapsUp(t *testing.T) {
	env := New()
	env.SetRates(0, 0.001, 0.6)

	if v := env.Next(); v != 0.6 {
		t.Errorf("expected volume to snap to hold level, got %f", v)
	}
}

func TestBellRetriggerKeepsVolume(t *testing.T) {
	env := New()
	env.volume = 0.5
	env.SetRates(0.001, 0.0001, 0)
	env.Trigger()

	if v := env.Next(); v < 0.5 {
		t.Errorf("retrigger restarted from below the current level: %f", v)
	}
}

func TestBellReset(t *testing.T) {
	env := New()
	env.volume = 0.7
	env.Trigger()
	env.Reset()

	if env.Volume() != Floor {
		t.Errorf("Reset volume = %f, want %f", env.Volume(), Floor)
	}
	if env.IsAttacking() {
		t.Error("Reset should leave the attack stage")
	}
}

func TestBellSanitizesRates(t *testing.T) {
	env := New()
	env.SetRates(float32(math.NaN()), -1, 2)

	if env.attack != 0 || env.decay != 0 {
		t.Errorf("rates not sanitized: attack=%f decay=%f", env.attack, env.decay)
	}
	if env.hold != 1 {
		t.Errorf("hold not clamped: %f", env.hold)
	}
}

func TestBellReachesFullVolume(t *testing.T) {
	env := New()
	env.SetRates(0.1, 0, 0)
	env.Trigger()

	var v float32
	for i := 0; i < 256; i++ {
		v = env.Next()
	}
	if v != 1.0 {
		t.Errorf("expected the envelope to reach full volume, got %f", v)
	}
}

func TestStageString(t *testing.T) {
	if StageAttack.String() != "Attack" || StageHold.String() != "Hold" {
		t.Error("unexpected stage names")
	}
}
