// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/utils"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
	Face font.Face
}

const (
	xpBarWidth  = 240
	xpBarHeight = 12
	borderWidth = 1

	healthBarWidth  = 240
	healthBarHeight = 10

	staminaBarHeight = 6
)

var (
	xpBarColorFill     = color.RGBA{70, 100, 120, 220}
	healthBarColorFill = color.RGBA{200, 50, 50, 220}
	staminaColorFill   = color.RGBA{220, 200, 60, 220}
	runningColorFill   = color.RGBA{255, 240, 120, 240}
	borderColor        = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, face font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, Face: face}
}

// Draw отрисовывает полосу опыта, номер уровня, здоровье и выносливость под ними.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int, player *component.Player) {
	health, maxHealth := player.Health, player.MaxHealth
	drawBar(screen, i.X, i.Y, xpBarWidth, xpBarHeight, ratio(float64(currentXP), float64(xpToNext)), xpBarColorFill)

	label := fmt.Sprintf("LV %d  %d/%d", level, currentXP, xpToNext)
	text.Draw(screen, label, i.Face, int(i.X+xpBarWidth+10), int(i.Y+xpBarHeight-1), config.TextLightColor)

	hpY := i.Y + xpBarHeight + 8
	drawBar(screen, i.X, hpY, healthBarWidth, healthBarHeight, ratio(health, maxHealth), healthBarColorFill)
	text.Draw(screen, fmt.Sprintf("HP %.0f/%.0f", health, maxHealth), i.Face, int(i.X+healthBarWidth+10), int(hpY+healthBarHeight-1), config.TextLightColor)

	staminaFill := staminaColorFill
	if player.Running {
		staminaFill = runningColorFill
	}
	spY := hpY + healthBarHeight + 6
	drawBar(screen, i.X, spY, healthBarWidth, staminaBarHeight, ratio(player.Stamina.Current, player.Stamina.Max), staminaFill)
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return utils.Clamp01(v / max)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, fill float64, clr color.Color) {
	vector.StrokeRect(screen, x, y, w, h, borderWidth, borderColor, true)
	fillWidth := float32(float64(w-borderWidth*2) * fill)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, x+borderWidth, y+borderWidth, fillWidth, h-borderWidth*2, clr, true)
	}
}
