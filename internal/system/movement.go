// internal/system/movement.go
package system

import (
	"math"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/entity"
	"go-wave-survivors/internal/interfaces"
)

// OrbitRadius — дистанция, на которой орбитальные враги кружат вокруг игрока.
const OrbitRadius = 6.0

// MovementSystem обновляет позиции игрока и врагов
type MovementSystem struct {
	reg        *entity.Registry
	stats      interfaces.PlayerStatsProvider
	sprintCost float64
	boundary   float64
	input      component.Position
	sprint     bool
}

func NewMovementSystem(reg *entity.Registry, stats interfaces.PlayerStatsProvider, cfg config.PlayerConfig) *MovementSystem {
	return &MovementSystem{
		reg:        reg,
		stats:      stats,
		sprintCost: cfg.SprintCost,
		boundary:   cfg.BoundaryRadius,
	}
}

// SetInput задает направление движения игрока; нулевой вектор — стоять.
func (s *MovementSystem) SetInput(dir component.Position) {
	s.input = dir
}

// SetSprint включает бег, пока хватает выносливости.
func (s *MovementSystem) SetSprint(on bool) {
	s.sprint = on
}

func (s *MovementSystem) Update(deltaTime float64) {
	player := s.reg.Player
	player.Stamina.Update(deltaTime)
	player.Running = false
	if dir := s.input.Normalized(); dir.Len() > 0 {
		speed := s.stats.MoveSpeed()
		if s.sprint && player.Stamina.TryUse(s.sprintCost*deltaTime) {
			speed = s.stats.RunSpeed()
			player.Running = true
		}
		player.Position = player.Position.Add(dir.Scale(speed * deltaTime))
		player.Facing = dir
	}
	player.Position = ClampToBoundary(player.Position, s.boundary)

	for _, e := range s.reg.Enemies {
		if !e.Active {
			continue
		}
		switch e.Type {
		case defs.EnemyOrbiter:
			s.orbit(e, player.Position, deltaTime)
		default:
			moveTowards(e, player.Position, e.Speed*deltaTime)
		}
	}
}

// orbit подводит врага к кольцу OrbitRadius и ведет по нему против часовой стрелки.
func (s *MovementSystem) orbit(e *component.Enemy, center component.Position, deltaTime float64) {
	step := e.Speed * deltaTime
	offset := e.Position.Sub(center)
	if offset.Len() > OrbitRadius+step {
		moveTowards(e, center, step)
		return
	}
	angle := math.Atan2(offset.Y, offset.X) + step/OrbitRadius
	target := center.Add(component.FromAngle(angle, OrbitRadius))
	moveTowards(e, target, step)
}

// ClampToBoundary keeps pos within radius of the origin; radius <= 0 means
// no boundary.
func ClampToBoundary(pos component.Position, radius float64) component.Position {
	if radius <= 0 || pos.Len() <= radius {
		return pos
	}
	return pos.Normalized().Scale(radius)
}

func moveTowards(e *component.Enemy, target component.Position, step float64) {
	delta := target.Sub(e.Position)
	dist := delta.Len()
	if dist <= step {
		e.Position = target
		return
	}
	e.Position = e.Position.Add(delta.Scale(step / dist))
}
