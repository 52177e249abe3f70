package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/event"
	"go-wave-survivors/pkg/render"
)

// UpgradeMenu показывает карточки выбора апгрейда. Содержимое приходит
// событиями ShowChoices и HideChoices.
type UpgradeMenu struct {
	Face    font.Face
	choices []defs.UpgradeDefinition
	level   int
}

func NewUpgradeMenu(face font.Face) *UpgradeMenu {
	return &UpgradeMenu{Face: face}
}

func (m *UpgradeMenu) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShowChoices:
		if data, ok := e.Data.(event.ShowChoicesData); ok {
			m.choices = data.Choices
			m.level = data.Level
		}
	case event.HideChoices:
		m.choices = nil
	}
}

func (m *UpgradeMenu) Visible() bool { return len(m.choices) > 0 }

// cardRect returns the top-left corner of card i.
func (m *UpgradeMenu) cardRect(i int) (float32, float32) {
	n := len(m.choices)
	total := n*config.ChoiceCardWidth + (n-1)*config.ChoiceCardSpacing
	x := (config.ScreenWidth-total)/2 + i*(config.ChoiceCardWidth+config.ChoiceCardSpacing)
	y := (config.ScreenHeight - config.ChoiceCardHeight) / 2
	return float32(x), float32(y)
}

// CardAt returns the index of the card under the cursor, or -1.
func (m *UpgradeMenu) CardAt(cx, cy int) int {
	for i := range m.choices {
		x, y := m.cardRect(i)
		if float32(cx) >= x && float32(cx) <= x+config.ChoiceCardWidth &&
			float32(cy) >= y && float32(cy) <= y+config.ChoiceCardHeight {
			return i
		}
	}
	return -1
}

func (m *UpgradeMenu) Draw(screen *ebiten.Image) {
	if !m.Visible() {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	_, top := m.cardRect(0)
	drawCentered(screen, fmt.Sprintf("LEVEL %d - choose an upgrade", m.level), m.Face, config.ScreenWidth/2, int(top)-30, config.TextLightColor)

	for i, u := range m.choices {
		x, y := m.cardRect(i)
		rarity := rarityColor(u.Rarity)
		vector.DrawFilledRect(screen, x, y, config.ChoiceCardWidth, config.ChoiceCardHeight, render.DarkenColor(render.WithAlpha(rarity, 230)), false)
		vector.StrokeRect(screen, x, y, config.ChoiceCardWidth, config.ChoiceCardHeight, 2, rarity, false)

		tx := int(x) + 12
		text.Draw(screen, fmt.Sprintf("[%d] %s", i+1, u.Name), m.Face, tx, int(y)+24, config.TextLightColor)
		text.Draw(screen, u.Rarity.String(), m.Face, tx, int(y)+44, rarity)
		text.Draw(screen, u.Description, m.Face, tx, int(y)+72, config.TextLightColor)
	}
}

func rarityColor(r defs.Rarity) color.RGBA {
	if int(r) >= 0 && int(r) < len(config.RarityColors) {
		return config.RarityColors[r]
	}
	return config.RarityColors[0]
}
