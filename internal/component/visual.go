// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}

func (f *DamageFlash) Start(duration float64) {
	f.Timer = duration
	f.Duration = duration
}

func (f *DamageFlash) Active() bool {
	return f.Timer > 0
}

// Intensity is 1 right after the hit and fades to 0.
func (f *DamageFlash) Intensity() float64 {
	if f.Duration <= 0 || f.Timer <= 0 {
		return 0
	}
	return f.Timer / f.Duration
}
