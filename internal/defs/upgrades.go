// internal/defs/upgrades.go
package defs

import (
	"fmt"
	"strings"
)

// Rarity is the coarse tier used by the first stage of upgrade sampling.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = []string{"common", "uncommon", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if r >= 0 && int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

func ParseRarity(name string) (Rarity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rarity %q", name)
}

func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

const (
	MinWeight            = 1
	MaxWeight            = 100
	DefaultUpgradeWeight = 50
)

// ClampWeight keeps a configured weight inside [MinWeight, MaxWeight].
func ClampWeight(w int) int {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

// RarityWeight is one entry of the rarity roll table.
type RarityWeight struct {
	Rarity Rarity `yaml:"rarity"`
	Weight int    `yaml:"weight"`
}

// DefaultRarityWeights is used when the catalog does not define its own table.
func DefaultRarityWeights() []RarityWeight {
	return []RarityWeight{
		{Rarity: RarityCommon, Weight: 60},
		{Rarity: RarityUncommon, Weight: 25},
		{Rarity: RarityRare, Weight: 10},
		{Rarity: RarityEpic, Weight: 4},
		{Rarity: RarityLegendary, Weight: 1},
	}
}

// UpgradeEffects are additive/percent stat changes applied when an upgrade is chosen.
// Percent values are fractions: 0.1 means +10%.
type UpgradeEffects struct {
	AddMaxHealth          float64 `yaml:"add_max_health"`
	AddMaxHealthPercent   float64 `yaml:"add_max_health_percent"`
	AddDamage             float64 `yaml:"add_damage"`
	AddDamagePercent      float64 `yaml:"add_damage_percent"`
	AddMoveSpeed          float64 `yaml:"add_move_speed"`
	AddMoveSpeedPercent   float64 `yaml:"add_move_speed_percent"`
	AddMaxStamina         float64 `yaml:"add_max_stamina"`
	AddMaxStaminaPercent  float64 `yaml:"add_max_stamina_percent"`
	AttackCooldownPercent float64 `yaml:"attack_cooldown_percent"`
}

// UpgradeDefinition is one offerable reward. Read-only at runtime.
type UpgradeDefinition struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	Description     string         `yaml:"description"`
	Rarity          Rarity         `yaml:"rarity"`
	Weight          int            `yaml:"weight"`
	UnlockedAtLevel int            `yaml:"unlocked_at_level"`
	Effects         UpgradeEffects `yaml:"effects"`
}
