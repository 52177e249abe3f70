package pool

import (
	"math"

	"go.uber.org/zap"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/logger"
)

const (
	// minTiming clamps cooldown and lifetime before sizing.
	minTiming      = 0.01
	sizingHeadroom = 1.1
)

// ProjectilePool is a single-type pool whose capacity follows the fire rate.
type ProjectilePool struct {
	free     queue[*component.Projectile]
	capacity int
	log      *zap.Logger
}

func NewProjectilePool(size int, log *zap.Logger) *ProjectilePool {
	p := &ProjectilePool{log: logger.OrNop(log)}
	p.grow(size)
	return p
}

func (p *ProjectilePool) grow(n int) {
	for i := 0; i < n; i++ {
		p.free.push(&component.Projectile{})
	}
	if n > 0 {
		p.capacity += n
	}
}

// Get returns a free projectile, allocating when none is left.
func (p *ProjectilePool) Get() *component.Projectile {
	inst, ok := p.free.pop()
	if !ok {
		inst = &component.Projectile{}
	}
	inst.Active = true
	return inst
}

func (p *ProjectilePool) Release(inst *component.Projectile) {
	if inst == nil {
		return
	}
	inst.Reset()
	p.free.push(inst)
}

// TargetSize is ceil(ceil(lifetime/cooldown) * 1.1), the number of
// projectiles that can be in flight at once plus headroom.
func TargetSize(cooldown, lifetime float64) int {
	cooldown = math.Max(minTiming, cooldown)
	lifetime = math.Max(minTiming, lifetime)
	maxConcurrent := math.Ceil(1 / cooldown * lifetime)
	return int(math.Ceil(maxConcurrent * sizingHeadroom))
}

// RecalculateSize grows the pool to TargetSize. It never shrinks, so
// handles already in flight stay valid.
func (p *ProjectilePool) RecalculateSize(cooldown, lifetime float64) {
	target := TargetSize(cooldown, lifetime)
	if target <= p.capacity {
		return
	}
	toAdd := target - p.capacity
	p.grow(toAdd)
	p.log.Debug("projectile pool resized", zap.Int("capacity", p.capacity), zap.Int("added", toAdd))
}

func (p *ProjectilePool) Capacity() int  { return p.capacity }
func (p *ProjectilePool) Available() int { return p.free.len() }
