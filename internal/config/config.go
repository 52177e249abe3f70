// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	DamageFlashDuration = 0.12

	PlayerRadius      = 0.6
	ProjectileRadius  = 0.2
	IndicatorOffsetX  = 30
	XPBarOffsetY      = 20
	ChoiceCardWidth   = 300
	ChoiceCardHeight  = 140
	ChoiceCardSpacing = 30

	// MinTiming — нижняя граница для интервалов и времен жизни, чтобы не делить на ноль
	MinTiming = 0.01
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{40, 40, 55, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	WaveTextColor   = color.RGBA{70, 130, 180, 255}
	BossWaveColor   = color.RGBA{220, 60, 60, 255}
	BoundaryColor   = color.RGBA{200, 180, 60, 255}
	EnemyColors     = map[string]color.RGBA{
		"chaser":  {220, 60, 60, 255},
		"orbiter": {180, 50, 230, 255},
		"boss":    {255, 140, 0, 255},
	}
	RarityColors = []color.RGBA{
		{200, 200, 200, 255}, // Common
		{50, 205, 50, 255},   // Uncommon
		{50, 100, 255, 255},  // Rare
		{180, 50, 230, 255},  // Epic
		{255, 165, 0, 255},   // Legendary
	}
)

type Config struct {
	Wave        WaveConfig        `toml:"wave"`
	Experience  ExperienceConfig  `toml:"experience"`
	Upgrades    UpgradesConfig    `toml:"upgrades"`
	Player      PlayerConfig      `toml:"player"`
	Projectiles ProjectilesConfig `toml:"projectiles"`
	View        ViewConfig        `toml:"view"`
	Data        DataConfig        `toml:"data"`
	Logging     LoggingConfig     `toml:"logging"`
	RNG         RNGConfig         `toml:"rng"`
}

type WaveConfig struct {
	StartingWave     int     `toml:"starting_wave"`
	WaveIncrement    float64 `toml:"wave_increment"`    // global difficulty base per wave
	InitialDelay     float64 `toml:"initial_delay"`     // seconds before the first spawn
	SpawnInterval    float64 `toml:"spawn_interval"`    // seconds between spawn attempts
	MinSpawnDistance float64 `toml:"min_spawn_distance"` // world units from the anchor
	MaxSpawnDistance float64 `toml:"max_spawn_distance"`
	MaxSpawnAttempts int     `toml:"max_spawn_attempts"`
	VisibilityMargin float64 `toml:"visibility_margin"` // viewport fraction
}

type ExperienceConfig struct {
	BaseXPToLevel int     `toml:"base_xp_to_level"`
	LevelGrowth   float64 `toml:"level_growth"`
}

type UpgradesConfig struct {
	ChoicesCount int `toml:"choices_count"`
}

type PlayerConfig struct {
	MaxHealth         float64 `toml:"max_health"`
	MoveSpeed         float64 `toml:"move_speed"` // walking speed
	RunSpeed          float64 `toml:"run_speed"`  // speed while sprinting
	Damage            float64 `toml:"damage"`
	AttackCooldown    float64 `toml:"attack_cooldown"`
	AttackRange       float64 `toml:"attack_range"`
	MaxStamina        float64 `toml:"max_stamina"`
	StaminaRegen      float64 `toml:"stamina_regen"`       // per second
	StaminaRegenDelay float64 `toml:"stamina_regen_delay"` // seconds after the last use
	SprintCost        float64 `toml:"sprint_cost"`         // stamina per second of sprint
	BoundaryRadius    float64 `toml:"boundary_radius"`     // play area around the origin, 0 = unbounded
}

type ProjectilesConfig struct {
	PoolSize  int     `toml:"pool_size"`
	Speed     float64 `toml:"speed"`
	Lifetime  float64 `toml:"lifetime"`
	HitRadius float64 `toml:"hit_radius"`
}

// ViewConfig is the visible world area around the camera, in world units.
type ViewConfig struct {
	WorldWidth  float64 `toml:"world_width"`
	WorldHeight float64 `toml:"world_height"`
}

type DataConfig struct {
	Enemies  string `toml:"enemies"`
	Upgrades string `toml:"upgrades"`
}

type LoggingConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"` // "json" or "console"
	File       string `toml:"file"`   // empty disables the file sink
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type RNGConfig struct {
	Seed int64 `toml:"seed"` // 0 = time based
}

// Load reads a TOML tuning file on top of the defaults; missing keys keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Default returns the built-in tuning used when no file is supplied.
func Default() *Config {
	return &Config{
		Wave: WaveConfig{
			StartingWave:     1,
			WaveIncrement:    1.2,
			InitialDelay:     0.5,
			SpawnInterval:    0.3,
			MinSpawnDistance: 12,
			MaxSpawnDistance: 25,
			MaxSpawnAttempts: 10,
			VisibilityMargin: 0.05,
		},
		Experience: ExperienceConfig{
			BaseXPToLevel: 10,
			LevelGrowth:   1.5,
		},
		Upgrades: UpgradesConfig{
			ChoicesCount: 3,
		},
		Player: PlayerConfig{
			MaxHealth:         100,
			MoveSpeed:         8,
			RunSpeed:          13,
			Damage:            25,
			AttackCooldown:    0.2,
			AttackRange:       14,
			MaxStamina:        100,
			StaminaRegen:      10,
			StaminaRegenDelay: 1,
			SprintCost:        20,
			BoundaryRadius:    15,
		},
		Projectiles: ProjectilesConfig{
			PoolSize:  50,
			Speed:     18,
			Lifetime:  3,
			HitRadius: 0.8,
		},
		View: ViewConfig{
			WorldWidth:  40,
			WorldHeight: 30,
		},
		Data: DataConfig{
			Enemies:  "data/enemies.yaml",
			Upgrades: "data/upgrades.yaml",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

func (c *Config) normalize() {
	if c.Wave.StartingWave < 1 {
		c.Wave.StartingWave = 1
	}
	if c.Wave.MaxSpawnAttempts < 1 {
		c.Wave.MaxSpawnAttempts = 1
	}
	if c.Wave.SpawnInterval < MinTiming {
		c.Wave.SpawnInterval = MinTiming
	}
	c.Wave.InitialDelay = math.Max(0, c.Wave.InitialDelay)
	if c.Wave.WaveIncrement <= 0 {
		c.Wave.WaveIncrement = 1
	}
	if c.Wave.MaxSpawnDistance < c.Wave.MinSpawnDistance {
		c.Wave.MinSpawnDistance, c.Wave.MaxSpawnDistance = c.Wave.MaxSpawnDistance, c.Wave.MinSpawnDistance
	}
	c.Wave.MinSpawnDistance = math.Max(0, c.Wave.MinSpawnDistance)
	c.Wave.MaxSpawnDistance = math.Max(c.Wave.MinSpawnDistance, c.Wave.MaxSpawnDistance)

	if c.Experience.BaseXPToLevel < 1 {
		c.Experience.BaseXPToLevel = 1
	}
	// рост должен быть положительным; 1 — порог не растет
	if c.Experience.LevelGrowth <= 0 {
		c.Experience.LevelGrowth = 1
	}

	c.Player.AttackCooldown = math.Max(MinTiming, c.Player.AttackCooldown)
	c.Player.RunSpeed = math.Max(c.Player.MoveSpeed, c.Player.RunSpeed)
	c.Player.MaxStamina = math.Max(1, c.Player.MaxStamina)
	c.Player.StaminaRegen = math.Max(0, c.Player.StaminaRegen)
	c.Player.StaminaRegenDelay = math.Max(0, c.Player.StaminaRegenDelay)
	c.Player.SprintCost = math.Max(0, c.Player.SprintCost)
	c.Player.BoundaryRadius = math.Max(0, c.Player.BoundaryRadius)
	c.Projectiles.Lifetime = math.Max(MinTiming, c.Projectiles.Lifetime)
	if c.Upgrades.ChoicesCount < 0 {
		c.Upgrades.ChoicesCount = 0
	}
}
