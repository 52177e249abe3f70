// internal/system/wave.go
package system

import (
	"go.uber.org/zap"

	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/difficulty"
	"go-wave-survivors/internal/event"
	"go-wave-survivors/internal/interfaces"
	"go-wave-survivors/internal/logger"
	"go-wave-survivors/internal/utils"
)

// SpawnSettings — тайминги и геометрия спавна
type SpawnSettings struct {
	InitialDelay     float64
	SpawnInterval    float64
	MinSpawnDistance float64
	MaxSpawnDistance float64
	MaxSpawnAttempts int
}

func SpawnSettingsFromConfig(cfg config.WaveConfig) SpawnSettings {
	return SpawnSettings{
		InitialDelay:     cfg.InitialDelay,
		SpawnInterval:    cfg.SpawnInterval,
		MinSpawnDistance: cfg.MinSpawnDistance,
		MaxSpawnDistance: cfg.MaxSpawnDistance,
		MaxSpawnAttempts: cfg.MaxSpawnAttempts,
	}
}

// WaveDirectorDeps are the collaborators a director is built from.
type WaveDirectorDeps struct {
	Enemies  []defs.EnemyTypeConfig // spawn order
	Source   interfaces.EnemySource
	Player   interfaces.PositionProvider
	View     interfaces.VisibilityChecker
	Gate     interfaces.PauseGate
	Waves    interfaces.WaveAdvancer
	RNG      *utils.PRNGService
	Settings SpawnSettings
	// OnSpawn is called with every instance the director brings into play.
	OnSpawn func(e *component.Enemy)
	Log     *zap.Logger
}

// WaveDirector drives one wave at a time: normal quotas first, then the
// boss quota, then asks the wave owner for the next wave. Counts only go
// down through OnEnemyDied.
type WaveDirector struct {
	enemies  []defs.EnemyTypeConfig
	source   interfaces.EnemySource
	player   interfaces.PositionProvider
	view     interfaces.VisibilityChecker
	gate     interfaces.PauseGate
	waves    interfaces.WaveAdvancer
	rng      *utils.PRNGService
	settings SpawnSettings
	onSpawn  func(e *component.Enemy)
	log      *zap.Logger

	phase      component.WavePhase
	wave       int
	timer      float64
	quotas     []*component.SpawnQuota
	boss       *component.SpawnQuota
	live       int
	liveNormal int
	anchor     component.Position
	subs       event.Subscriptions
}

func NewWaveDirector(deps WaveDirectorDeps) *WaveDirector {
	rng := deps.RNG
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	d := &WaveDirector{
		enemies:  deps.Enemies,
		source:   deps.Source,
		player:   deps.Player,
		view:     deps.View,
		gate:     deps.Gate,
		waves:    deps.Waves,
		rng:      rng,
		settings: deps.Settings,
		onSpawn:  deps.OnSpawn,
		log:      logger.OrNop(deps.Log),
	}
	d.Reset()
	return d
}

// Attach subscribes the director to WaveChanged and EnemyDied.
func (d *WaveDirector) Attach(dispatcher *event.Dispatcher) {
	d.subs.Add(dispatcher.Subscribe(event.WaveChanged, d))
	d.subs.Add(dispatcher.Subscribe(event.EnemyDied, d))
}

// Detach drops the subscriptions made by Attach.
func (d *WaveDirector) Detach() {
	d.subs.UnsubscribeAll()
}

func (d *WaveDirector) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveChanged:
		if data, ok := e.Data.(event.WaveChangedData); ok {
			d.StartWave(data.Wave)
		}
	case event.EnemyDied:
		if data, ok := e.Data.(event.EnemyDiedData); ok {
			d.OnEnemyDied(data.Type)
		}
	}
}

// Reset returns to Idle with the initial spawn delay armed.
func (d *WaveDirector) Reset() {
	d.phase = component.PhaseIdle
	d.wave = 0
	d.timer = -d.settings.InitialDelay
	d.quotas = nil
	d.boss = nil
	d.live = 0
	d.liveNormal = 0
}

// StartWave computes normal quotas for every non-boss type unlocked at
// wave and caches the player position as the spawn anchor.
func (d *WaveDirector) StartWave(wave int) {
	d.wave = wave
	d.phase = component.PhaseSpawningNormal
	d.quotas = d.quotas[:0]
	d.boss = nil
	d.live = 0
	d.liveNormal = 0

	total := 0
	for _, cfg := range d.enemies {
		if cfg.Type.IsBoss() || wave < cfg.IntroducedAtWave {
			continue
		}
		q := &component.SpawnQuota{Type: cfg.Type, Target: difficulty.Quota(cfg, wave)}
		d.quotas = append(d.quotas, q)
		total += q.Target
	}
	if d.player != nil {
		d.anchor = d.player.PlayerPosition()
	}
	d.log.Info("wave started", zap.Int("wave", wave), zap.Int("types", len(d.quotas)), zap.Int("enemies", total))
}

// Update advances timers by dt seconds. No-op while the gate is paused.
func (d *WaveDirector) Update(deltaTime float64) {
	if d.gate != nil && d.gate.IsPaused() {
		return
	}
	if d.phase == component.PhaseIdle || d.phase == component.PhaseWaveComplete {
		return
	}
	d.timer += deltaTime

	switch d.phase {
	case component.PhaseSpawningNormal:
		if d.timer >= d.settings.SpawnInterval {
			d.timer = 0
			d.trySpawnNormal()
		}
		if d.allNormalSpawned() && d.liveNormal == 0 {
			d.completeNormal()
		}
	case component.PhaseSpawningBoss:
		if d.timer >= d.settings.SpawnInterval {
			d.timer = 0
			d.trySpawnBoss()
		}
		if d.boss.Done() && d.live == 0 {
			d.completeWave()
		}
	}
}

// OnEnemyDied is the only way live counts decrease.
func (d *WaveDirector) OnEnemyDied(t defs.EnemyType) {
	if d.live > 0 {
		d.live--
	}
	if !t.IsBoss() && d.liveNormal > 0 {
		d.liveNormal--
	}
}

func (d *WaveDirector) trySpawnNormal() bool {
	for _, q := range d.quotas {
		if q.Done() {
			continue
		}
		cfg, ok := d.config(q.Type)
		if !ok {
			continue
		}
		if d.spawn(cfg) {
			q.Spawned++
			d.live++
			d.liveNormal++
			return true
		}
	}
	return false
}

func (d *WaveDirector) trySpawnBoss() bool {
	if d.boss == nil || d.boss.Done() {
		return false
	}
	cfg, ok := d.config(d.boss.Type)
	if !ok {
		return false
	}
	if !d.spawn(cfg) {
		return false
	}
	d.boss.Spawned++
	d.live++
	return true
}

func (d *WaveDirector) spawn(cfg defs.EnemyTypeConfig) bool {
	if d.source == nil {
		return false
	}
	pos := FindSpawnPosition(d.anchor, d.settings.MinSpawnDistance, d.settings.MaxSpawnDistance, d.settings.MaxSpawnAttempts, d.view, d.rng)
	mult := difficulty.EnemyMultiplier(cfg, d.wave)
	enemy := d.source.Get(cfg.Type, pos, mult)
	if enemy == nil {
		d.log.Warn("spawn skipped, no instance", zap.Stringer("type", cfg.Type), zap.Int("wave", d.wave))
		return false
	}
	enemy.SpawnWave = d.wave
	if d.onSpawn != nil {
		d.onSpawn(enemy)
	}
	d.log.Debug("enemy spawned",
		zap.Stringer("type", cfg.Type),
		zap.Float64("x", pos.X), zap.Float64("y", pos.Y),
		zap.Float64("difficulty", mult))
	return true
}

func (d *WaveDirector) allNormalSpawned() bool {
	for _, q := range d.quotas {
		if !q.Done() {
			return false
		}
	}
	return true
}

func (d *WaveDirector) completeNormal() {
	d.phase = component.PhaseNormalComplete
	for _, cfg := range d.enemies {
		if !cfg.Type.IsBoss() || d.wave < cfg.IntroducedAtWave {
			continue
		}
		d.boss = &component.SpawnQuota{Type: cfg.Type, Target: difficulty.Quota(cfg, d.wave)}
		d.phase = component.PhaseSpawningBoss
		d.log.Info("boss phase", zap.Int("wave", d.wave), zap.Int("bosses", d.boss.Target))
		return
	}
	d.completeWave()
}

func (d *WaveDirector) completeWave() {
	d.phase = component.PhaseWaveComplete
	d.log.Info("wave complete", zap.Int("wave", d.wave))
	if d.waves != nil {
		d.waves.NextWave()
	}
}

func (d *WaveDirector) config(t defs.EnemyType) (defs.EnemyTypeConfig, bool) {
	for _, cfg := range d.enemies {
		if cfg.Type == t {
			return cfg, true
		}
	}
	return defs.EnemyTypeConfig{}, false
}

func (d *WaveDirector) Phase() component.WavePhase { return d.phase }
func (d *WaveDirector) Wave() int                  { return d.wave }
func (d *WaveDirector) LiveEnemies() int           { return d.live }
func (d *WaveDirector) LiveNormalEnemies() int     { return d.liveNormal }
func (d *WaveDirector) Anchor() component.Position { return d.anchor }

// Quotas returns a copy of the normal quotas in spawn order.
func (d *WaveDirector) Quotas() []component.SpawnQuota {
	out := make([]component.SpawnQuota, len(d.quotas))
	for i, q := range d.quotas {
		out[i] = *q
	}
	return out
}

// BossQuota returns the boss quota once the boss phase has begun.
func (d *WaveDirector) BossQuota() (component.SpawnQuota, bool) {
	if d.boss == nil {
		return component.SpawnQuota{}, false
	}
	return *d.boss, true
}
