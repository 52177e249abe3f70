// cmd/game/main.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-wave-survivors/internal/app"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/event"
	"go-wave-survivors/internal/logger"
	"go-wave-survivors/internal/state"
	"go-wave-survivors/internal/ui"
)

const startFromGame = false // true — начинать сразу с игры, false — с меню

type AppGame struct {
	game           *app.Game
	world          *ui.WorldRenderer
	waveIndicator  *ui.WaveIndicator
	levelIndicator *ui.PlayerLevelIndicator
	upgradeMenu    *ui.UpgradeMenu
	overlay        *ui.StateOverlay
	subs           event.Subscriptions
	lastUpdateTime time.Time
}

func newAppGame(game *app.Game) *AppGame {
	a := &AppGame{
		game:           game,
		world:          ui.NewWorldRenderer(game.Viewport, game.Config.Player.BoundaryRadius),
		waveIndicator:  ui.NewWaveIndicator(config.ScreenWidth/2, 40, ui.DefaultFace),
		levelIndicator: ui.NewPlayerLevelIndicator(config.IndicatorOffsetX, config.XPBarOffsetY, ui.DefaultFace),
		upgradeMenu:    ui.NewUpgradeMenu(ui.DefaultFace),
		overlay:        ui.NewStateOverlay(ui.DefaultFace),
		lastUpdateTime: time.Now(),
	}
	a.subs.Add(game.EventDispatcher.Subscribe(event.ShowChoices, a.upgradeMenu))
	a.subs.Add(game.EventDispatcher.Subscribe(event.HideChoices, a.upgradeMenu))
	return a
}

// Close releases the HUD subscriptions and tears the game down.
func (a *AppGame) Close() {
	a.subs.UnsubscribeAll()
	a.game.Close()
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleInput()
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	g := a.game
	a.world.Draw(screen, g.Registry)

	current := g.StateMachine.Current()
	if current != state.MainMenu {
		a.levelIndicator.Draw(screen, g.Experience.Level(), g.Experience.CurrentXP(), g.Experience.XPToNext(), g.Registry.Player)
		_, bossPhase := g.WaveDirector.BossQuota()
		a.waveIndicator.Draw(screen, g.CurrentWave(), bossPhase)
	}
	a.upgradeMenu.Draw(screen)
	a.overlay.Draw(screen, current, g.CurrentWave(), g.Experience.Level())
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/game.toml"
	if p := os.Getenv("WAVES_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Stderr().Warn("config file not found, using defaults", zap.String("path", cfgPath))
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	catalog, err := defs.LoadCatalog(cfg.Data.Enemies, cfg.Data.Upgrades)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.Int("enemy_types", len(catalog.Enemies)),
		zap.Int("upgrades", len(catalog.Upgrades)))

	game := app.NewGame(cfg, catalog, log)
	if startFromGame {
		game.StartGame()
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Survivors")
	host := newAppGame(game)
	defer host.Close()
	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
