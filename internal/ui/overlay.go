package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/state"
)

// StateOverlay затемняет экран и подписывает неигровые состояния.
type StateOverlay struct {
	Face font.Face
}

func NewStateOverlay(face font.Face) *StateOverlay {
	return &StateOverlay{Face: face}
}

func (o *StateOverlay) Draw(screen *ebiten.Image, s state.GameState, wave, level int) {
	var title, hint string
	switch s {
	case state.MainMenu:
		title, hint = "WAVE SURVIVORS", "SPACE to start"
	case state.Paused:
		title, hint = "PAUSED", "P / ESC to resume, TAB for settings"
	case state.Settings:
		title, hint = "SETTINGS", "TAB to close"
	case state.GameOver:
		title, hint = "GAME OVER", "R to restart, M for menu"
	default:
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	cy := config.ScreenHeight / 2
	drawOutlined(screen, title, o.Face, config.ScreenWidth/2-len(title)*7/2, cy-20, 1, config.TextLightColor, config.BackgroundColor)
	drawCentered(screen, hint, o.Face, config.ScreenWidth/2, cy+10, config.TextLightColor)
	if s == state.GameOver {
		drawCentered(screen, "reached wave "+toRoman(wave)+", level "+itoa(level), o.Face, config.ScreenWidth/2, cy+40, config.TextLightColor)
	}
}
