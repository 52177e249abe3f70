// internal/app/game.go
package app

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/difficulty"
	"go-wave-survivors/internal/entity"
	"go-wave-survivors/internal/event"
	"go-wave-survivors/internal/logger"
	"go-wave-survivors/internal/pool"
	"go-wave-survivors/internal/state"
	"go-wave-survivors/internal/system"
	"go-wave-survivors/internal/upgrade"
	"go-wave-survivors/internal/utils"
	"go-wave-survivors/pkg/render"
)

// Game holds the main game state and logic.
type Game struct {
	Config          *config.Config
	Catalog         *defs.Catalog
	Registry        *entity.Registry
	EventDispatcher *event.Dispatcher
	StateMachine    *state.StateMachine
	Flow            *state.Flow
	Difficulty      difficulty.Model
	Viewport        *render.Viewport
	Rng             *utils.PRNGService

	EnemyPool        *pool.EnemyPool
	ProjectilePool   *pool.ProjectilePool
	WaveDirector     *system.WaveDirector
	Experience       *system.ExperienceSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	VisualEffects    *system.VisualEffectSystem
	Stats            *upgrade.PlayerStats
	UpgradeCatalog   *upgrade.Catalog
	Upgrades         *upgrade.Manager

	// RunID меняется при каждом StartGame и попадает во все логи забега
	RunID uuid.UUID

	subs             event.Subscriptions
	wave             int
	globalDifficulty float64
	baseLog          *zap.Logger
	log              *zap.Logger
}

// NewGame wires one instance of every component. The game starts in the
// main menu; call StartGame to begin a run.
func NewGame(cfg *config.Config, catalog *defs.Catalog, log *zap.Logger) *Game {
	log = logger.OrNop(log)
	dispatcher := event.NewDispatcher()
	machine := state.NewStateMachine(state.MainMenu, dispatcher, log.Named("state"))
	reg := entity.NewRegistry()

	g := &Game{
		Config:          cfg,
		Catalog:         catalog,
		Registry:        reg,
		EventDispatcher: dispatcher,
		StateMachine:    machine,
		Flow:            state.NewFlow(machine),
		Difficulty:      difficulty.NewModel(cfg.Wave.WaveIncrement),
		Viewport:        render.NewViewport(cfg.View.WorldWidth, cfg.View.WorldHeight, config.ScreenWidth, config.ScreenHeight, cfg.Wave.VisibilityMargin),
		Rng:             utils.NewPRNGService(cfg.RNG.Seed),
		baseLog:         log,
		log:             log,
	}

	g.EnemyPool = pool.NewEnemyPool(catalog.Enemies, newEnemy, log.Named("pool"))
	g.ProjectilePool = pool.NewProjectilePool(cfg.Projectiles.PoolSize, log.Named("pool"))
	g.Stats = upgrade.NewPlayerStats(reg.Player, cfg.Player, cfg.Projectiles.Lifetime, g.ProjectilePool, log.Named("upgrade"))

	g.WaveDirector = system.NewWaveDirector(system.WaveDirectorDeps{
		Enemies:  catalog.Enemies,
		Source:   g.EnemyPool,
		Player:   g,
		View:     g.Viewport,
		Gate:     g.Flow,
		Waves:    g,
		RNG:      g.Rng,
		Settings: system.SpawnSettingsFromConfig(cfg.Wave),
		OnSpawn:  g.onEnemySpawned,
		Log:      log.Named("wave"),
	})
	g.WaveDirector.Attach(dispatcher)

	g.Experience = system.NewExperienceSystem(cfg.Experience, dispatcher, log.Named("xp"))
	g.Experience.Attach(g.XPReward)

	g.MovementSystem = system.NewMovementSystem(reg, g.Stats, cfg.Player)
	g.CombatSystem = system.NewCombatSystem(reg, g.ProjectilePool, g.Stats, cfg.Projectiles, g.Flow.TriggerGameOver, log.Named("combat"))
	g.ProjectileSystem = system.NewProjectileSystem(reg, g.ProjectilePool, cfg.Projectiles, g.KillEnemy)
	g.VisualEffects = system.NewVisualEffectSystem(reg)

	g.UpgradeCatalog = upgrade.NewCatalog(catalog.Upgrades, catalog.RarityWeights, g.Rng, log.Named("upgrade"))
	g.Upgrades = upgrade.NewManager(g.UpgradeCatalog, g.Stats, g.Flow, dispatcher, cfg.Upgrades.ChoicesCount, log.Named("upgrade"))
	g.Upgrades.Attach()

	g.subs.Add(dispatcher.SubscribeFunc(event.StateChanged, func(e event.Event) {
		if data, ok := e.Data.(event.StateChangedData); ok && state.GameState(data.State) == state.Playing {
			g.Upgrades.ResumePending()
		}
	}))

	return g
}

// Close drops every subscription the game made on its dispatcher.
func (g *Game) Close() {
	g.WaveDirector.Detach()
	g.Experience.Detach()
	g.Upgrades.Detach()
	g.subs.UnsubscribeAll()
}

func newEnemy(t defs.EnemyType) *component.Enemy {
	return &component.Enemy{Type: t}
}

// StartGame begins a fresh run from the starting wave.
func (g *Game) StartGame() {
	g.resetRun()
	g.RunID = uuid.New()
	g.log = g.baseLog.With(zap.String("run_id", g.RunID.String()))
	g.log.Info("run started", zap.Int("starting_wave", g.Config.Wave.StartingWave))
	g.Flow.StartGame()
	g.setWave(g.Config.Wave.StartingWave)
}

// Restart drops the current run and starts a new one.
func (g *Game) Restart() {
	g.log.Info("run restarted", zap.Int("wave", g.wave), zap.Int("level", g.Experience.Level()))
	g.StartGame()
}

// resetRun returns every pooled instance and resets per-run state.
func (g *Game) resetRun() {
	for id, e := range g.Registry.Enemies {
		g.Registry.RemoveEnemy(id)
		g.EnemyPool.Release(e)
	}
	for id := range g.Registry.Projectiles {
		if p, ok := g.Registry.RemoveProjectile(id); ok {
			g.ProjectilePool.Release(p)
		}
	}
	g.Registry.GameTime = 0
	g.Registry.Player.Position = component.Position{}
	g.Registry.Player.FireTimer = 0
	g.Viewport.Follow(g.Registry.Player.Position)
	g.MovementSystem.SetInput(component.Position{})
	g.MovementSystem.SetSprint(false)

	g.WaveDirector.Reset()
	g.Experience.Reset()
	g.Stats.Reset()
	g.Upgrades.Reset()
	g.CombatSystem.Reset()
	g.wave = 0
}

// Update progresses the game state by one frame. Nothing moves unless the
// game is Playing.
func (g *Game) Update(deltaTime float64) {
	if g.Flow.IsPaused() {
		return
	}
	g.Registry.GameTime += deltaTime

	g.MovementSystem.Update(deltaTime)
	g.Viewport.Follow(g.Registry.Player.Position)
	g.WaveDirector.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.VisualEffects.Update(deltaTime)
}

// CurrentWave implements interfaces.WaveAdvancer.
func (g *Game) CurrentWave() int {
	return g.wave
}

// NextWave advances the wave counter and notifies listeners.
func (g *Game) NextWave() {
	g.setWave(g.wave + 1)
}

func (g *Game) setWave(wave int) {
	g.wave = wave
	g.globalDifficulty = g.Difficulty.Global(wave)
	g.log.Info("wave changed", zap.Int("wave", wave), zap.Float64("difficulty", g.globalDifficulty))
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveChanged,
		Data: event.WaveChangedData{Wave: wave, Difficulty: g.globalDifficulty},
	})
}

// GlobalDifficulty is WaveIncrement^(wave-1) for the current wave.
func (g *Game) GlobalDifficulty() float64 {
	return g.globalDifficulty
}

// PlayerPosition implements interfaces.PositionProvider.
func (g *Game) PlayerPosition() component.Position {
	return g.Registry.Player.Position
}

// SetMoveInput forwards the host's movement direction.
func (g *Game) SetMoveInput(dir component.Position) {
	g.MovementSystem.SetInput(dir)
}

// SetSprint forwards the host's sprint key.
func (g *Game) SetSprint(on bool) {
	g.MovementSystem.SetSprint(on)
}

// XPReward grants experience for an enemy by the wave it spawned in.
func (g *Game) XPReward(t defs.EnemyType, spawnWave int) int {
	cfg, ok := g.Catalog.Enemy(t)
	if !ok {
		g.log.Warn("xp reward for unknown enemy type", zap.Stringer("type", t))
		return 0
	}
	return difficulty.XPReward(cfg, spawnWave)
}

func (g *Game) onEnemySpawned(e *component.Enemy) {
	cfg, ok := g.Catalog.Enemy(e.Type)
	if ok {
		e.MaxHealth = cfg.Health * e.Difficulty
		e.Health = e.MaxHealth
		e.Speed = cfg.Speed
		e.Radius = cfg.Radius
		e.Damage = cfg.ContactDamage * e.Difficulty
	}
	e.AttackTimer = 0
	g.Registry.AddEnemy(e)
}

// KillEnemy stops tracking e, returns it to the pool and dispatches
// EnemyDied. Unknown handles are ignored.
func (g *Game) KillEnemy(e *component.Enemy) {
	if _, ok := g.Registry.RemoveEnemy(e.ID); !ok {
		return
	}
	data := event.EnemyDiedData{ID: e.ID, Type: e.Type, SpawnWave: e.SpawnWave}
	g.EnemyPool.Release(e)
	g.log.Debug("enemy died", zap.Stringer("type", data.Type), zap.Int("spawn_wave", data.SpawnWave))
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyDied, Data: data})
}
