// pkg/render/viewport.go
package render

import "go-wave-survivors/internal/component"

// Viewport — камера, центрированная на игроке. Видимая область задается
// в мировых единицах и растягивается на весь экран.
type Viewport struct {
	Center       component.Position
	WorldWidth   float64
	WorldHeight  float64
	ScreenWidth  int
	ScreenHeight int
	// Margin — запас в долях экрана по каждой стороне
	Margin float64
}

func NewViewport(worldWidth, worldHeight float64, screenWidth, screenHeight int, margin float64) *Viewport {
	return &Viewport{
		WorldWidth:   worldWidth,
		WorldHeight:  worldHeight,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Margin:       margin,
	}
}

func (v *Viewport) Follow(pos component.Position) {
	v.Center = pos
}

// ToViewport projects a world point into [0,1]² with (0,0) at the top-left
// corner of the screen. Y grows downwards in both spaces.
func (v *Viewport) ToViewport(pos component.Position) (float64, float64) {
	u := (pos.X-v.Center.X)/v.WorldWidth + 0.5
	w := (pos.Y-v.Center.Y)/v.WorldHeight + 0.5
	return u, w
}

// IsVisible reports whether pos lies strictly inside the viewport grown by
// Margin on every side.
func (v *Viewport) IsVisible(pos component.Position) bool {
	u, w := v.ToViewport(pos)
	m := v.Margin
	return u > -m && u < 1+m && w > -m && w < 1+m
}

// WorldToScreen converts a world point to pixel coordinates.
func (v *Viewport) WorldToScreen(pos component.Position) (float32, float32) {
	u, w := v.ToViewport(pos)
	return float32(u * float64(v.ScreenWidth)), float32(w * float64(v.ScreenHeight))
}

// Scale is the number of pixels per world unit along X.
func (v *Viewport) Scale() float32 {
	return float32(float64(v.ScreenWidth) / v.WorldWidth)
}
