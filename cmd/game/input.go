package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/state"
)

var choiceKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// handleInput переводит нажатия клавиш в переходы Flow и управление игроком.
func (a *AppGame) handleInput() {
	g := a.game
	flow := g.Flow
	g.SetMoveInput(component.Position{})
	g.SetSprint(false)

	switch g.StateMachine.Current() {
	case state.MainMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.StartGame()
		}
	case state.Playing:
		if pausePressed() {
			flow.PauseGame()
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			flow.OpenSettings()
			return
		}
		g.SetMoveInput(moveDirection())
		g.SetSprint(ebiten.IsKeyPressed(ebiten.KeyShift))
	case state.Paused:
		switch {
		case pausePressed():
			flow.ResumeGame()
		case inpututil.IsKeyJustPressed(ebiten.KeyTab):
			flow.OpenSettings()
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			flow.ReturnToMainMenu()
		}
	case state.Settings:
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			flow.CloseSettings()
		}
	case state.Upgrade:
		for i, key := range choiceKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.Upgrades.ChooseIndex(i)
				return
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if i := a.upgradeMenu.CardAt(ebiten.CursorPosition()); i >= 0 {
				g.Upgrades.ChooseIndex(i)
			}
		}
	case state.GameOver:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.Restart()
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			flow.ReturnToMainMenu()
		}
	}
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func moveDirection() component.Position {
	var dir component.Position
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	return dir
}
