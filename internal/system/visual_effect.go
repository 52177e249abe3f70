// internal/system/visual_effect.go
package system

import (
	"go-wave-survivors/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	reg *entity.Registry
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(reg *entity.Registry) *VisualEffectSystem {
	return &VisualEffectSystem{reg: reg}
}

// Update обновляет таймеры вспышек урона.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, e := range s.reg.Enemies {
		if e.Flash.Active() {
			e.Flash.Timer -= deltaTime
		}
	}
}
