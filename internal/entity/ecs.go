// internal/entity/ecs.go
package entity

import (
	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/types"
)

// Registry — сторона вызывающего кода: активные экземпляры из пулов,
// проиндексированные собственными ID. Пулы сюда не заглядывают.
type Registry struct {
	GameTime    float64
	NextID      types.EntityID
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Player      *component.Player
}

func NewRegistry() *Registry {
	return &Registry{
		NextID:      1,
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Player:      &component.Player{},
	}
}

func (r *Registry) NewEntity() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// AddEnemy assigns an ID to a freshly pooled enemy and tracks it.
func (r *Registry) AddEnemy(e *component.Enemy) types.EntityID {
	e.ID = r.NewEntity()
	r.Enemies[e.ID] = e
	return e.ID
}

// RemoveEnemy stops tracking id and returns the handle, if it was tracked.
func (r *Registry) RemoveEnemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := r.Enemies[id]
	if ok {
		delete(r.Enemies, id)
	}
	return e, ok
}

func (r *Registry) AddProjectile(p *component.Projectile) types.EntityID {
	p.ID = r.NewEntity()
	r.Projectiles[p.ID] = p
	return p.ID
}

func (r *Registry) RemoveProjectile(id types.EntityID) (*component.Projectile, bool) {
	p, ok := r.Projectiles[id]
	if ok {
		delete(r.Projectiles, id)
	}
	return p, ok
}
