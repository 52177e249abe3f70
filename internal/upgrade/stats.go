package upgrade

import (
	"math"

	"go.uber.org/zap"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/logger"
)

const (
	// MinCooldownMultiplier caps how far cooldown upgrades can stack.
	MinCooldownMultiplier = 0.1
	MinMaxHealth          = 1.0
	MinMoveSpeed          = 0.0
)

// PoolResizer is the projectile pool as seen by the stats.
type PoolResizer interface {
	RecalculateSize(cooldown, lifetime float64)
}

// PlayerStats держит производные характеристики игрока, которые меняют апгрейды.
type PlayerStats struct {
	player   *component.Player
	base     config.PlayerConfig
	lifetime float64
	pool     PoolResizer
	log      *zap.Logger

	moveSpeed          float64
	runSpeed           float64
	damage             float64
	cooldownMultiplier float64
}

func NewPlayerStats(player *component.Player, base config.PlayerConfig, projectileLifetime float64, pool PoolResizer, log *zap.Logger) *PlayerStats {
	s := &PlayerStats{
		player:   player,
		base:     base,
		lifetime: projectileLifetime,
		pool:     pool,
		log:      logger.OrNop(log),
	}
	s.Reset()
	return s
}

// Reset restores base stats and a full-health player.
func (s *PlayerStats) Reset() {
	s.moveSpeed = s.base.MoveSpeed
	s.runSpeed = s.base.RunSpeed
	s.damage = s.base.Damage
	s.cooldownMultiplier = 1
	s.setMaxHealth(s.base.MaxHealth)
	s.player.Stamina = component.NewStamina(s.base.MaxStamina, s.base.StaminaRegen, s.base.StaminaRegenDelay)
	s.recalculatePool()
}

// Apply applies every non-zero effect. Max health and max stamina changes
// refill the pool; speed effects move walk and run speed together.
func (s *PlayerStats) Apply(e defs.UpgradeEffects) {
	if e.AddMaxHealth != 0 {
		s.setMaxHealth(s.player.MaxHealth + e.AddMaxHealth)
	}
	if e.AddMaxHealthPercent != 0 {
		s.setMaxHealth(s.player.MaxHealth * (1 + e.AddMaxHealthPercent))
	}
	if e.AddMaxStamina != 0 {
		s.player.Stamina.SetMax(s.player.Stamina.Max+e.AddMaxStamina, true)
	}
	if e.AddMaxStaminaPercent != 0 {
		s.player.Stamina.SetMax(s.player.Stamina.Max*(1+e.AddMaxStaminaPercent), true)
	}
	if e.AddMoveSpeed != 0 {
		s.moveSpeed = math.Max(MinMoveSpeed, s.moveSpeed+e.AddMoveSpeed)
		s.runSpeed = math.Max(MinMoveSpeed, s.runSpeed+e.AddMoveSpeed)
	}
	if e.AddMoveSpeedPercent != 0 {
		s.moveSpeed = math.Max(MinMoveSpeed, s.moveSpeed*(1+e.AddMoveSpeedPercent))
		s.runSpeed = math.Max(MinMoveSpeed, s.runSpeed*(1+e.AddMoveSpeedPercent))
	}
	if e.AddDamage != 0 {
		s.damage = math.Max(0, s.damage+e.AddDamage)
	}
	if e.AddDamagePercent != 0 {
		s.damage = math.Max(0, s.damage*(1+e.AddDamagePercent))
	}
	if e.AttackCooldownPercent != 0 {
		s.cooldownMultiplier = math.Max(MinCooldownMultiplier, s.cooldownMultiplier*(1+e.AttackCooldownPercent))
		s.recalculatePool()
	}
	s.log.Debug("stats updated",
		zap.Float64("max_health", s.player.MaxHealth),
		zap.Float64("damage", s.damage),
		zap.Float64("move_speed", s.moveSpeed),
		zap.Float64("max_stamina", s.player.Stamina.Max),
		zap.Float64("cooldown", s.AttackCooldown()))
}

func (s *PlayerStats) setMaxHealth(value float64) {
	s.player.MaxHealth = math.Max(MinMaxHealth, value)
	s.player.Health = s.player.MaxHealth
}

func (s *PlayerStats) recalculatePool() {
	if s.pool != nil {
		s.pool.RecalculateSize(s.AttackCooldown(), s.lifetime)
	}
}

func (s *PlayerStats) MoveSpeed() float64          { return s.moveSpeed }
func (s *PlayerStats) RunSpeed() float64           { return s.runSpeed }
func (s *PlayerStats) Damage() float64             { return s.damage }
func (s *PlayerStats) AttackRange() float64        { return s.base.AttackRange }
func (s *PlayerStats) CooldownMultiplier() float64 { return s.cooldownMultiplier }

// AttackCooldown is the base cooldown scaled by the upgrade multiplier.
func (s *PlayerStats) AttackCooldown() float64 {
	return s.base.AttackCooldown * s.cooldownMultiplier
}
