package component

import "math"

// MinMaxStamina — нижняя граница запаса сил.
const MinMaxStamina = 1.0

// Stamina — запас сил для спринта. Восстанавливается через RegenDelay
// секунд после последнего расхода.
type Stamina struct {
	Current    float64
	Max        float64
	RegenRate  float64
	RegenDelay float64
	sinceUse   float64
}

// NewStamina returns a full stamina pool.
func NewStamina(max, regenRate, regenDelay float64) Stamina {
	s := Stamina{RegenRate: regenRate, RegenDelay: regenDelay}
	s.sinceUse = regenDelay
	s.SetMax(max, true)
	return s
}

// Update advances the regen clock by deltaTime seconds.
func (s *Stamina) Update(deltaTime float64) {
	s.sinceUse += deltaTime
	if s.Current < s.Max && s.sinceUse >= s.RegenDelay {
		s.Current = math.Min(s.Max, s.Current+s.RegenRate*deltaTime)
	}
}

// TryUse spends amount if there is enough; otherwise nothing changes.
func (s *Stamina) TryUse(amount float64) bool {
	if s.Current < amount {
		return false
	}
	s.Current -= amount
	s.sinceUse = 0
	return true
}

// SetMax sets the pool size (at least MinMaxStamina), optionally refilling it.
func (s *Stamina) SetMax(value float64, refill bool) {
	s.Max = math.Max(MinMaxStamina, value)
	if refill {
		s.Current = s.Max
	}
	s.Current = math.Max(0, math.Min(s.Current, s.Max))
}
