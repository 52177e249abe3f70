// Package pool keeps reusable enemy and projectile instances so the wave
// loop does not allocate per spawn.
package pool

import (
	"go.uber.org/zap"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/logger"
)

// EnemyFactory creates a fresh inactive instance of the given type.
type EnemyFactory func(t defs.EnemyType) *component.Enemy

// EnemyPool is a per-type FIFO of free enemies. It only ever looks at an
// instance's Type and Active flag.
type EnemyPool struct {
	queues  map[defs.EnemyType]*queue[*component.Enemy]
	factory EnemyFactory
	created map[defs.EnemyType]int
	log     *zap.Logger
}

// NewEnemyPool pre-warms one queue per configured type to its PoolSize.
// Types absent from cfgs have no queue and Get returns nil for them.
func NewEnemyPool(cfgs []defs.EnemyTypeConfig, factory EnemyFactory, log *zap.Logger) *EnemyPool {
	p := &EnemyPool{
		queues:  make(map[defs.EnemyType]*queue[*component.Enemy], len(cfgs)),
		factory: factory,
		created: make(map[defs.EnemyType]int, len(cfgs)),
		log:     logger.OrNop(log),
	}
	for _, cfg := range cfgs {
		q := &queue[*component.Enemy]{}
		p.queues[cfg.Type] = q
		for i := 0; i < cfg.PoolSize; i++ {
			inst := p.create(cfg.Type)
			if inst == nil {
				break
			}
			q.push(inst)
		}
	}
	return p
}

func (p *EnemyPool) create(t defs.EnemyType) *component.Enemy {
	if p.factory == nil {
		return nil
	}
	inst := p.factory(t)
	if inst == nil {
		return nil
	}
	inst.Reset()
	inst.Type = t
	p.created[t]++
	return inst
}

// Get hands out a free instance of t, creating one when the queue is empty.
// Returns nil when t has no queue or nothing can be created.
func (p *EnemyPool) Get(t defs.EnemyType, pos component.Position, difficulty float64) *component.Enemy {
	q, ok := p.queues[t]
	if !ok {
		p.log.Warn("no pool configured for enemy type", zap.Stringer("type", t))
		return nil
	}
	inst, ok := q.pop()
	if !ok {
		inst = p.create(t)
		if inst == nil {
			p.log.Warn("enemy factory unavailable", zap.Stringer("type", t))
			return nil
		}
		p.log.Debug("pool grew", zap.Stringer("type", t), zap.Int("created", p.created[t]))
	}
	inst.Position = pos
	inst.SetDifficulty(difficulty)
	inst.Active = true
	return inst
}

// Release deactivates inst, clears its caller state and queues it under its
// own type. Each handle must be released exactly once.
func (p *EnemyPool) Release(inst *component.Enemy) {
	if inst == nil {
		return
	}
	inst.Reset()
	q, ok := p.queues[inst.Type]
	if !ok {
		return
	}
	q.push(inst)
}

// Available returns the number of free instances of t.
func (p *EnemyPool) Available(t defs.EnemyType) int {
	if q, ok := p.queues[t]; ok {
		return q.len()
	}
	return 0
}

// Created returns how many instances of t were ever allocated.
func (p *EnemyPool) Created(t defs.EnemyType) int {
	return p.created[t]
}
