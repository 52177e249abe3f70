package system

import (
	"math"
	"testing"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/entity"
	"go-wave-survivors/internal/pool"
)

type fakeStats struct {
	speed, run, damage, cooldown, attackRange float64
}

func (f fakeStats) MoveSpeed() float64      { return f.speed }
func (f fakeStats) RunSpeed() float64       { return f.run }
func (f fakeStats) Damage() float64         { return f.damage }
func (f fakeStats) AttackCooldown() float64 { return f.cooldown }
func (f fakeStats) AttackRange() float64    { return f.attackRange }

func defaultStats() fakeStats {
	return fakeStats{speed: 5, run: 10, damage: 30, cooldown: 0.5, attackRange: 10}
}

func addEnemy(reg *entity.Registry, t defs.EnemyType, pos component.Position) *component.Enemy {
	e := &component.Enemy{Type: t, Active: true, Position: pos, Health: 50, MaxHealth: 50, Speed: 2, Radius: 0.5, Damage: 10}
	reg.AddEnemy(e)
	return e
}

func TestPlayerMovesWithInput(t *testing.T) {
	reg := entity.NewRegistry()
	s := NewMovementSystem(reg, defaultStats(), config.PlayerConfig{})
	s.SetInput(component.Position{X: 3, Y: 0})
	s.Update(1)
	if reg.Player.Position != (component.Position{X: 5, Y: 0}) {
		t.Errorf("Player position = %+v, want {5 0}", reg.Player.Position)
	}
	s.SetInput(component.Position{})
	s.Update(1)
	if reg.Player.Position.X != 5 {
		t.Errorf("Player moved without input")
	}
}

func TestPlayerClampedToBoundary(t *testing.T) {
	reg := entity.NewRegistry()
	s := NewMovementSystem(reg, defaultStats(), config.PlayerConfig{BoundaryRadius: 15})
	s.SetInput(component.Position{X: 1})
	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60)
	}
	if d := reg.Player.Position.Len(); d > 15+1e-9 {
		t.Fatalf("player left the play area: dist=%v", d)
	}
	if math.Abs(reg.Player.Position.X-15) > 1e-9 {
		t.Errorf("Player position = %+v, want pressed against the edge at X=15", reg.Player.Position)
	}

	// вдоль границы игрок скользит, но не выходит
	s.SetInput(component.Position{X: 1, Y: 1})
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	if d := reg.Player.Position.Len(); d > 15+1e-9 {
		t.Errorf("player left the play area diagonally: dist=%v", d)
	}
	if reg.Player.Position.Y <= 0 {
		t.Errorf("player should slide along the edge, got %+v", reg.Player.Position)
	}
}

func TestClampToBoundaryDisabled(t *testing.T) {
	far := component.Position{X: 100, Y: -40}
	if got := ClampToBoundary(far, 0); got != far {
		t.Errorf("ClampToBoundary with radius 0 = %+v, want unchanged", got)
	}
	inside := component.Position{X: 3, Y: 4}
	if got := ClampToBoundary(inside, 10); got != inside {
		t.Errorf("ClampToBoundary moved a point inside the area: %+v", got)
	}
}

func TestSprintSpendsStamina(t *testing.T) {
	reg := entity.NewRegistry()
	reg.Player.Stamina = component.NewStamina(100, 10, 1)
	s := NewMovementSystem(reg, defaultStats(), config.PlayerConfig{SprintCost: 20})
	s.SetInput(component.Position{X: 1})
	s.SetSprint(true)

	s.Update(1)
	if reg.Player.Position.X != 10 || !reg.Player.Running {
		t.Errorf("sprint moved to %+v running=%v, want X=10 running", reg.Player.Position, reg.Player.Running)
	}
	if reg.Player.Stamina.Current != 80 {
		t.Errorf("Stamina = %v, want 80", reg.Player.Stamina.Current)
	}

	reg.Player.Stamina.Current = 5
	s.Update(1)
	if reg.Player.Position.X != 15 || reg.Player.Running {
		t.Errorf("exhausted sprint moved to %+v running=%v, want walk to X=15", reg.Player.Position, reg.Player.Running)
	}
}

func TestSprintWithoutInputKeepsStamina(t *testing.T) {
	reg := entity.NewRegistry()
	reg.Player.Stamina = component.NewStamina(100, 10, 1)
	s := NewMovementSystem(reg, defaultStats(), config.PlayerConfig{SprintCost: 20})
	s.SetSprint(true)
	s.Update(1)
	if reg.Player.Stamina.Current != 100 || reg.Player.Running {
		t.Errorf("standing sprint spent stamina: %v running=%v", reg.Player.Stamina.Current, reg.Player.Running)
	}
}

func TestChaserClosesDistance(t *testing.T) {
	reg := entity.NewRegistry()
	e := addEnemy(reg, defs.EnemyChaser, component.Position{X: 10, Y: 0})
	s := NewMovementSystem(reg, defaultStats(), config.PlayerConfig{})
	s.Update(1)
	if math.Abs(e.Position.X-8) > 1e-9 || e.Position.Y != 0 {
		t.Errorf("Chaser position = %+v, want {8 0}", e.Position)
	}
	s.Update(10)
	if e.Position != reg.Player.Position {
		t.Errorf("Chaser should stop on the player, got %+v", e.Position)
	}
}

func TestOrbiterStaysNearRing(t *testing.T) {
	reg := entity.NewRegistry()
	e := addEnemy(reg, defs.EnemyOrbiter, component.Position{X: 20, Y: 0})
	s := NewMovementSystem(reg, defaultStats(), config.PlayerConfig{})
	for i := 0; i < 200; i++ {
		s.Update(0.05)
	}
	if d := e.Position.Len(); math.Abs(d-OrbitRadius) > 0.2 {
		t.Errorf("Orbiter distance = %v, want about %v", d, OrbitRadius)
	}
}

func TestCombatFiresAtNearestEnemy(t *testing.T) {
	reg := entity.NewRegistry()
	projectiles := pool.NewProjectilePool(4, nil)
	far := addEnemy(reg, defs.EnemyChaser, component.Position{X: 8, Y: 0})
	near := addEnemy(reg, defs.EnemyChaser, component.Position{X: 0, Y: 4})
	_ = far
	cfg := config.ProjectilesConfig{Speed: 10, Lifetime: 2, HitRadius: 0.5}
	s := NewCombatSystem(reg, projectiles, defaultStats(), cfg, nil, nil)

	s.Update(0.1)
	if len(reg.Projectiles) != 1 {
		t.Fatalf("Expected one projectile, got %d", len(reg.Projectiles))
	}
	for _, p := range reg.Projectiles {
		if p.Direction != (component.Position{X: 0, Y: 1}) {
			t.Errorf("Projectile aimed at %+v, want towards %+v", p.Direction, near.Position)
		}
		if p.Damage != 30 || p.Speed != 10 || p.Lifetime != 2 {
			t.Errorf("Projectile stats = %+v", p)
		}
	}
	if reg.Player.FireTimer != 0.5 {
		t.Errorf("FireTimer = %v, want cooldown 0.5", reg.Player.FireTimer)
	}

	s.Update(0.1)
	if len(reg.Projectiles) != 1 {
		t.Errorf("Fired again during cooldown")
	}
}

func TestCombatIgnoresEnemiesOutOfRange(t *testing.T) {
	reg := entity.NewRegistry()
	addEnemy(reg, defs.EnemyChaser, component.Position{X: 50, Y: 0})
	s := NewCombatSystem(reg, pool.NewProjectilePool(1, nil), defaultStats(), config.ProjectilesConfig{Speed: 1, Lifetime: 1}, nil, nil)
	s.Update(0.1)
	if len(reg.Projectiles) != 0 {
		t.Errorf("Fired at an enemy out of range")
	}
}

func TestContactDamageKillsPlayerOnce(t *testing.T) {
	reg := entity.NewRegistry()
	reg.Player.Health, reg.Player.MaxHealth = 15, 15
	addEnemy(reg, defs.EnemyChaser, component.Position{X: 0.3, Y: 0})
	deaths := 0
	stats := defaultStats()
	stats.attackRange = 0
	s := NewCombatSystem(reg, pool.NewProjectilePool(1, nil), stats, config.ProjectilesConfig{}, func() { deaths++ }, nil)

	s.Update(0.1)
	if reg.Player.Health != 5 {
		t.Fatalf("Player health = %v, want 5", reg.Player.Health)
	}
	s.Update(0.5)
	if reg.Player.Health != 5 {
		t.Errorf("Contact damage ignored its interval, health %v", reg.Player.Health)
	}
	s.Update(0.5)
	s.Update(0.5)
	if deaths != 1 {
		t.Errorf("onPlayerDeath called %d times, want 1", deaths)
	}
}

func TestProjectileHitAndKill(t *testing.T) {
	reg := entity.NewRegistry()
	projectiles := pool.NewProjectilePool(2, nil)
	target := addEnemy(reg, defs.EnemyChaser, component.Position{X: 2, Y: 0})
	target.Health = 20

	var killed []*component.Enemy
	s := NewProjectileSystem(reg, projectiles, config.ProjectilesConfig{HitRadius: 0.5}, func(e *component.Enemy) {
		killed = append(killed, e)
		reg.RemoveEnemy(e.ID)
	})

	proj := projectiles.Get()
	proj.Direction = component.Position{X: 1}
	proj.Speed = 10
	proj.Damage = 25
	proj.Lifetime = 1
	reg.AddProjectile(proj)

	s.Update(0.15)
	if len(killed) != 1 || killed[0] != target {
		t.Fatalf("Expected the target to be killed once, got %d", len(killed))
	}
	if len(reg.Projectiles) != 0 {
		t.Errorf("Projectile should be removed on hit")
	}
	if projectiles.Available() != 2 {
		t.Errorf("Projectile not returned to the pool, available %d", projectiles.Available())
	}
}

func TestProjectileExpires(t *testing.T) {
	reg := entity.NewRegistry()
	projectiles := pool.NewProjectilePool(1, nil)
	s := NewProjectileSystem(reg, projectiles, config.ProjectilesConfig{HitRadius: 0.5}, nil)
	proj := projectiles.Get()
	proj.Direction = component.Position{X: 1}
	proj.Speed = 1
	proj.Lifetime = 0.3
	reg.AddProjectile(proj)

	s.Update(0.2)
	if len(reg.Projectiles) != 1 {
		t.Fatalf("Projectile expired early")
	}
	s.Update(0.2)
	if len(reg.Projectiles) != 0 || projectiles.Available() != 1 {
		t.Errorf("Expired projectile not released")
	}
}

func TestHitStartsDamageFlash(t *testing.T) {
	reg := entity.NewRegistry()
	projectiles := pool.NewProjectilePool(1, nil)
	target := addEnemy(reg, defs.EnemyChaser, component.Position{X: 1, Y: 0})
	s := NewProjectileSystem(reg, projectiles, config.ProjectilesConfig{HitRadius: 0.5}, nil)
	effects := NewVisualEffectSystem(reg)

	proj := projectiles.Get()
	proj.Direction = component.Position{X: 1}
	proj.Speed = 1
	proj.Damage = 1
	proj.Lifetime = 1
	reg.AddProjectile(proj)

	s.Update(0.1)
	if !target.Flash.Active() || target.Flash.Intensity() != 1 {
		t.Fatalf("Hit should start a full flash, got %+v", target.Flash)
	}
	effects.Update(config.DamageFlashDuration)
	if target.Flash.Active() {
		t.Errorf("Flash should expire after its duration, timer %v", target.Flash.Timer)
	}
}
