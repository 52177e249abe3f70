// internal/defs/enemies.go
package defs

import (
	"fmt"
	"strings"
)

// EnemyType is the identity tag of an enemy variant. Movement and visuals
// of each variant live outside the wave core; only the tag travels here.
type EnemyType int

const (
	EnemyChaser EnemyType = iota
	EnemyOrbiter
	EnemyBoss
)

var enemyTypeNames = map[EnemyType]string{
	EnemyChaser:  "chaser",
	EnemyOrbiter: "orbiter",
	EnemyBoss:    "boss",
}

func (t EnemyType) String() string {
	if name, ok := enemyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("enemy(%d)", int(t))
}

// IsBoss reports whether the type takes part in the boss phase of a wave.
func (t EnemyType) IsBoss() bool {
	return t == EnemyBoss
}

// ParseEnemyType converts a catalog name into an EnemyType.
func ParseEnemyType(name string) (EnemyType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range enemyTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy type %q", name)
}

func (t *EnemyType) UnmarshalText(text []byte) error {
	parsed, err := ParseEnemyType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// EnemyTypeConfig holds the static data for one enemy type.
type EnemyTypeConfig struct {
	Type             EnemyType `yaml:"type"`
	IntroducedAtWave int       `yaml:"introduced_at_wave"`
	DifficultyGrowth float64   `yaml:"difficulty_growth"` // per wave since introduction
	PoolSize         int       `yaml:"pool_size"`
	BaseXPReward     int       `yaml:"base_xp_reward"`
	XPGrowthPerWave  float64   `yaml:"xp_growth_per_wave"`

	// Actor stats, consumed only by the movement/combat glue.
	Health        float64 `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	Radius        float64 `yaml:"radius"`
	ContactDamage float64 `yaml:"contact_damage"`
}

func (c *EnemyTypeConfig) applyDefaults() {
	if c.IntroducedAtWave < 1 {
		c.IntroducedAtWave = 1
	}
	if c.DifficultyGrowth <= 0 {
		c.DifficultyGrowth = 1.2
	}
	if c.PoolSize < 0 {
		c.PoolSize = 0
	}
	if c.XPGrowthPerWave <= 0 {
		c.XPGrowthPerWave = 1.15
	}
	if c.Health <= 0 {
		c.Health = 50
	}
	if c.Radius <= 0 {
		c.Radius = 0.5
	}
}
