// internal/component/projectile.go
package component

import "go-wave-survivors/internal/types"

// Projectile — снаряд игрока; экземпляры живут в ProjectilePool.
type Projectile struct {
	Active    bool
	ID        types.EntityID
	Position  Position
	Direction Position // единичный вектор
	Speed     float64
	Damage    float64
	Lifetime  float64 // оставшееся время жизни, сек
}

func (p *Projectile) Reset() {
	*p = Projectile{}
}
