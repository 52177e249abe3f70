package component

import (
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/types"
)

// MinDifficulty is the lowest difficulty scalar an enemy can carry.
const MinDifficulty = 0.5

// Enemy — переиспользуемый экземпляр врага. Пул знает только Type и Active;
// остальные поля принадлежат вызывающему коду и сбрасываются при возврате в пул.
type Enemy struct {
	Type       defs.EnemyType
	Active     bool
	ID         types.EntityID // назначается вызывающим кодом
	Position   Position
	Difficulty float64
	SpawnWave  int

	Health    float64
	MaxHealth float64
	Speed     float64
	Radius    float64
	Damage    float64
	// AttackTimer — время до следующего контактного удара
	AttackTimer float64
	Flash       DamageFlash
}

// SetDifficulty stores max(MinDifficulty, mult).
func (e *Enemy) SetDifficulty(mult float64) {
	if mult < MinDifficulty {
		mult = MinDifficulty
	}
	e.Difficulty = mult
}

// Reset clears everything except the type tag.
func (e *Enemy) Reset() {
	*e = Enemy{Type: e.Type}
}

func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}
