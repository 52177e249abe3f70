// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type enemyListFile struct {
	Enemies []EnemyTypeConfig `yaml:"enemies"`
}

type upgradeListFile struct {
	RarityWeights []RarityWeight      `yaml:"rarity_weights"`
	Upgrades      []UpgradeDefinition `yaml:"upgrades"`
}

// Catalog is the configuration source for the wave core: enemy types in
// their stable spawn order, offerable upgrades and the rarity table.
type Catalog struct {
	Enemies       []EnemyTypeConfig
	Upgrades      []UpgradeDefinition
	RarityWeights []RarityWeight
}

// Enemy returns the config for t.
func (c *Catalog) Enemy(t EnemyType) (EnemyTypeConfig, bool) {
	for _, e := range c.Enemies {
		if e.Type == t {
			return e, true
		}
	}
	return EnemyTypeConfig{}, false
}

// LoadCatalog reads the enemy and upgrade YAML files.
func LoadCatalog(enemiesPath, upgradesPath string) (*Catalog, error) {
	enemies, err := LoadEnemyDefinitions(enemiesPath)
	if err != nil {
		return nil, err
	}
	upgrades, weights, err := LoadUpgradeDefinitions(upgradesPath)
	if err != nil {
		return nil, err
	}
	return &Catalog{Enemies: enemies, Upgrades: upgrades, RarityWeights: weights}, nil
}

// LoadEnemyDefinitions reads the enemy list. File order is the spawn order.
func LoadEnemyDefinitions(path string) ([]EnemyTypeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enemy definitions %s: %w", path, err)
	}
	var f enemyListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse enemy definitions %s: %w", path, err)
	}
	seen := make(map[EnemyType]bool, len(f.Enemies))
	for i := range f.Enemies {
		cfg := &f.Enemies[i]
		if seen[cfg.Type] {
			return nil, fmt.Errorf("parse enemy definitions %s: duplicate type %s", path, cfg.Type)
		}
		seen[cfg.Type] = true
		cfg.applyDefaults()
	}
	return f.Enemies, nil
}

// LoadUpgradeDefinitions reads upgrades and the rarity table. Weights are
// clamped to [MinWeight, MaxWeight]; a missing table falls back to the defaults.
func LoadUpgradeDefinitions(path string) ([]UpgradeDefinition, []RarityWeight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read upgrade definitions %s: %w", path, err)
	}
	var f upgradeListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse upgrade definitions %s: %w", path, err)
	}
	ids := make(map[string]bool, len(f.Upgrades))
	for i := range f.Upgrades {
		u := &f.Upgrades[i]
		if u.ID == "" {
			return nil, nil, fmt.Errorf("parse upgrade definitions %s: upgrade #%d has no id", path, i)
		}
		if ids[u.ID] {
			return nil, nil, fmt.Errorf("parse upgrade definitions %s: duplicate id %q", path, u.ID)
		}
		ids[u.ID] = true
		if u.Weight == 0 {
			u.Weight = DefaultUpgradeWeight
		}
		u.Weight = ClampWeight(u.Weight)
		if u.UnlockedAtLevel < 1 {
			u.UnlockedAtLevel = 1
		}
	}
	weights := f.RarityWeights
	if len(weights) == 0 {
		weights = DefaultRarityWeights()
	}
	for i := range weights {
		weights[i].Weight = ClampWeight(weights[i].Weight)
	}
	return f.Upgrades, weights, nil
}
