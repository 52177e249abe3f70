package component

import (
	"math"
	"testing"
)

func TestStaminaTryUse(t *testing.T) {
	s := NewStamina(100, 10, 1)
	if !s.TryUse(30) || s.Current != 70 {
		t.Fatalf("TryUse(30) left %v, want 70", s.Current)
	}
	if s.TryUse(80) {
		t.Error("TryUse should refuse more than is left")
	}
	if s.Current != 70 {
		t.Errorf("refused TryUse changed Current to %v", s.Current)
	}
}

func TestStaminaRegenWaitsForDelay(t *testing.T) {
	s := NewStamina(100, 10, 1)
	s.TryUse(50)

	s.Update(0.5)
	if s.Current != 50 {
		t.Errorf("regenerated before the delay: %v", s.Current)
	}
	s.Update(0.5)
	if math.Abs(s.Current-55) > 1e-9 {
		t.Errorf("Current = %v, want 55 once the delay has passed", s.Current)
	}
	for i := 0; i < 100; i++ {
		s.Update(1)
	}
	if s.Current != s.Max {
		t.Errorf("Current = %v, want capped at %v", s.Current, s.Max)
	}
}

func TestStaminaSetMax(t *testing.T) {
	s := NewStamina(100, 10, 1)
	s.TryUse(90)
	s.SetMax(40, false)
	if s.Max != 40 || s.Current != 10 {
		t.Errorf("SetMax(40, false) = %v/%v, want 10/40", s.Current, s.Max)
	}
	s.SetMax(-5, true)
	if s.Max != MinMaxStamina || s.Current != MinMaxStamina {
		t.Errorf("SetMax(-5, true) = %v/%v, want floor %v", s.Current, s.Max, MinMaxStamina)
	}
}
