// internal/system/combat.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/entity"
	"go-wave-survivors/internal/interfaces"
	"go-wave-survivors/internal/logger"
	"go-wave-survivors/internal/pool"
)

// ContactInterval — пауза между контактными ударами одного врага, сек.
const ContactInterval = 1.0

// CombatSystem управляет автоатакой игрока и контактным уроном врагов
type CombatSystem struct {
	reg           *entity.Registry
	projectiles   *pool.ProjectilePool
	stats         interfaces.PlayerStatsProvider
	projCfg       config.ProjectilesConfig
	onPlayerDeath func()
	playerDown    bool
	log           *zap.Logger
}

func NewCombatSystem(
	reg *entity.Registry,
	projectiles *pool.ProjectilePool,
	stats interfaces.PlayerStatsProvider,
	projCfg config.ProjectilesConfig,
	onPlayerDeath func(),
	log *zap.Logger,
) *CombatSystem {
	return &CombatSystem{
		reg:           reg,
		projectiles:   projectiles,
		stats:         stats,
		projCfg:       projCfg,
		onPlayerDeath: onPlayerDeath,
		log:           logger.OrNop(log),
	}
}

// Reset снимает флаг смерти игрока перед новым забегом.
func (s *CombatSystem) Reset() {
	s.playerDown = false
}

func (s *CombatSystem) Update(deltaTime float64) {
	player := s.reg.Player
	if s.playerDown {
		return
	}

	player.FireTimer -= deltaTime
	if player.FireTimer <= 0 {
		if target := s.findNearestEnemyInRange(player.Position, s.stats.AttackRange()); target != nil {
			s.fire(player, target)
			player.FireTimer = s.stats.AttackCooldown()
		}
	}

	for _, e := range s.reg.Enemies {
		if !e.Active {
			continue
		}
		if e.AttackTimer > 0 {
			e.AttackTimer -= deltaTime
		}
		if e.AttackTimer > 0 || e.Position.Dist(player.Position) > e.Radius+config.PlayerRadius {
			continue
		}
		player.Health -= e.Damage
		e.AttackTimer = ContactInterval
	}

	if player.IsDead() {
		s.playerDown = true
		s.log.Info("player died", zap.Float64("game_time", s.reg.GameTime))
		if s.onPlayerDeath != nil {
			s.onPlayerDeath()
		}
	}
}

func (s *CombatSystem) fire(player *component.Player, target *component.Enemy) {
	proj := s.projectiles.Get()
	dir := target.Position.Sub(player.Position).Normalized()
	proj.Position = player.Position
	proj.Direction = dir
	proj.Speed = s.projCfg.Speed
	proj.Damage = s.stats.Damage()
	proj.Lifetime = s.projCfg.Lifetime
	s.reg.AddProjectile(proj)
	player.Facing = dir
}

func (s *CombatSystem) findNearestEnemyInRange(from component.Position, rangeRadius float64) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.MaxFloat64
	for _, e := range s.reg.Enemies {
		if !e.Active {
			continue
		}
		distance := e.Position.Dist(from)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = e
		}
	}
	return nearest
}
