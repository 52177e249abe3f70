// internal/system/projectile.go
package system

import (
	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/entity"
	"go-wave-survivors/internal/pool"
	"go-wave-survivors/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	reg         *entity.Registry
	projectiles *pool.ProjectilePool
	hitRadius   float64
	// onKill вызывается один раз для врага, чье здоровье упало до нуля
	onKill func(e *component.Enemy)
}

func NewProjectileSystem(reg *entity.Registry, projectiles *pool.ProjectilePool, cfg config.ProjectilesConfig, onKill func(e *component.Enemy)) *ProjectileSystem {
	return &ProjectileSystem{
		reg:         reg,
		projectiles: projectiles,
		hitRadius:   cfg.HitRadius,
		onKill:      onKill,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.reg.Projectiles {
		proj.Lifetime -= deltaTime
		if proj.Lifetime <= 0 {
			s.removeProjectile(id)
			continue
		}
		proj.Position = proj.Position.Add(proj.Direction.Scale(proj.Speed * deltaTime))

		if target := s.findHit(proj); target != nil {
			s.hitTarget(id, proj, target)
		}
	}
}

func (s *ProjectileSystem) findHit(proj *component.Projectile) *component.Enemy {
	for _, e := range s.reg.Enemies {
		if e.Active && e.Position.Dist(proj.Position) <= s.hitRadius+e.Radius {
			return e
		}
	}
	return nil
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	if proj, ok := s.reg.RemoveProjectile(id); ok {
		s.projectiles.Release(proj)
	}
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, target *component.Enemy) {
	target.Health -= proj.Damage
	target.Flash.Start(config.DamageFlashDuration)
	s.removeProjectile(projectileID)

	if target.IsDead() && s.onKill != nil {
		s.onKill(target)
	}
}
