// internal/interfaces/game_context.go
package interfaces

import (
	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/defs"
)

// PositionProvider reports where the player currently is.
type PositionProvider interface {
	PlayerPosition() component.Position
}

// VisibilityChecker answers whether a world point is inside the visible
// frustum, margin included.
type VisibilityChecker interface {
	IsVisible(pos component.Position) bool
}

// PauseGate is checked at the top of every tick-driven update.
type PauseGate interface {
	IsPaused() bool
}

// WaveAdvancer owns the wave counter.
type WaveAdvancer interface {
	CurrentWave() int
	NextWave()
}

// EnemySource hands out pooled enemies.
type EnemySource interface {
	Get(t defs.EnemyType, pos component.Position, difficulty float64) *component.Enemy
}

// PlayerStatsProvider exposes the player's current derived stats.
type PlayerStatsProvider interface {
	MoveSpeed() float64
	RunSpeed() float64
	Damage() float64
	AttackCooldown() float64
	AttackRange() float64
}
