package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/entity"
	"go-wave-survivors/pkg/render"
)

const gridStep = 4.0 // мировых единиц между линиями сетки

var flashColor = color.RGBA{255, 255, 255, 255}

// WorldRenderer рисует сетку, врагов, снаряды и игрока относительно камеры.
type WorldRenderer struct {
	Viewport       *render.Viewport
	BoundaryRadius float64 // 0 — граница не рисуется
}

func NewWorldRenderer(vp *render.Viewport, boundaryRadius float64) *WorldRenderer {
	return &WorldRenderer{Viewport: vp, BoundaryRadius: boundaryRadius}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, reg *entity.Registry) {
	screen.Fill(config.BackgroundColor)
	r.drawGrid(screen)

	scale := r.Viewport.Scale()
	if r.BoundaryRadius > 0 {
		cx, cy := r.Viewport.WorldToScreen(component.Position{})
		vector.StrokeCircle(screen, cx, cy, float32(r.BoundaryRadius)*scale, 2, config.BoundaryColor, true)
	}
	for _, e := range reg.Enemies {
		if !e.Active || !r.Viewport.IsVisible(e.Position) {
			continue
		}
		x, y := r.Viewport.WorldToScreen(e.Position)
		clr, ok := config.EnemyColors[e.Type.String()]
		if !ok {
			clr = config.EnemyColors["chaser"]
		}
		// тускнеет по мере потери здоровья
		fill := render.LerpColor(render.DarkenColor(clr), clr, float32(ratio(e.Health, e.MaxHealth)))
		if e.Flash.Active() {
			fill = render.LerpColor(fill, flashColor, float32(e.Flash.Intensity()))
		}
		radius := float32(e.Radius) * scale
		vector.DrawFilledCircle(screen, x, y, radius, fill, true)
		vector.StrokeCircle(screen, x, y, radius, 1, clr, true)
	}

	for _, p := range reg.Projectiles {
		x, y := r.Viewport.WorldToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, float32(config.ProjectileRadius)*scale, config.ProjectileColor, true)
	}

	player := reg.Player
	px, py := r.Viewport.WorldToScreen(player.Position)
	pr := float32(config.PlayerRadius) * scale
	vector.DrawFilledCircle(screen, px, py, pr, config.PlayerColor, true)
	if player.Facing.Len() > 0 {
		tip := player.Position.Add(player.Facing.Scale(config.PlayerRadius * 1.6))
		tx, ty := r.Viewport.WorldToScreen(tip)
		vector.StrokeLine(screen, px, py, tx, ty, 2, config.TextLightColor, true)
	}
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image) {
	vp := r.Viewport
	left := vp.Center.X - vp.WorldWidth/2
	top := vp.Center.Y - vp.WorldHeight/2
	scale := float64(vp.Scale())

	for gx := math.Floor(left/gridStep) * gridStep; gx <= left+vp.WorldWidth; gx += gridStep {
		x := float32((gx - left) * scale)
		vector.StrokeLine(screen, x, 0, x, config.ScreenHeight, 1, config.GridColor, false)
	}
	yScale := float64(vp.ScreenHeight) / vp.WorldHeight
	for gy := math.Floor(top/gridStep) * gridStep; gy <= top+vp.WorldHeight; gy += gridStep {
		y := float32((gy - top) * yScale)
		vector.StrokeLine(screen, 0, y, config.ScreenWidth, y, 1, config.GridColor, false)
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
