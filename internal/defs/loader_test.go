package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadEnemyDefinitions(t *testing.T) {
	path := writeFile(t, "enemies.yaml", `enemies:
  - type: chaser
    introduced_at_wave: 1
    difficulty_growth: 1.2
    pool_size: 20
    base_xp_reward: 10
    xp_growth_per_wave: 1.15
  - type: orbiter
    introduced_at_wave: 3
  - type: boss
    introduced_at_wave: 1
    pool_size: 2
`)

	enemies, err := LoadEnemyDefinitions(path)
	if err != nil {
		t.Fatalf("LoadEnemyDefinitions returned error: %v", err)
	}
	if len(enemies) != 3 {
		t.Fatalf("Expected 3 enemies, got %d", len(enemies))
	}
	if enemies[0].Type != EnemyChaser || enemies[1].Type != EnemyOrbiter || enemies[2].Type != EnemyBoss {
		t.Errorf("Order not preserved: %v %v %v", enemies[0].Type, enemies[1].Type, enemies[2].Type)
	}
	if enemies[0].PoolSize != 20 || enemies[0].BaseXPReward != 10 {
		t.Errorf("Chaser fields not decoded: %+v", enemies[0])
	}
	if enemies[1].DifficultyGrowth != 1.2 || enemies[1].XPGrowthPerWave != 1.15 {
		t.Errorf("Orbiter defaults not applied: %+v", enemies[1])
	}
	if !enemies[2].Type.IsBoss() {
		t.Error("boss type should report IsBoss")
	}
}

func TestLoadEnemyDefinitionsRejectsUnknownType(t *testing.T) {
	path := writeFile(t, "enemies.yaml", `enemies:
  - type: dragon
`)
	if _, err := LoadEnemyDefinitions(path); err == nil {
		t.Error("Expected error for unknown enemy type")
	}
}

func TestLoadEnemyDefinitionsRejectsDuplicates(t *testing.T) {
	path := writeFile(t, "enemies.yaml", `enemies:
  - type: chaser
  - type: chaser
`)
	if _, err := LoadEnemyDefinitions(path); err == nil {
		t.Error("Expected error for duplicate enemy type")
	}
}

func TestLoadUpgradeDefinitions(t *testing.T) {
	path := writeFile(t, "upgrades.yaml", `upgrades:
  - id: vitality
    name: Vitality
    rarity: common
    weight: 500
    unlocked_at_level: 1
    effects:
      add_max_health: 20
  - id: frenzy
    rarity: epic
    weight: 0
    unlocked_at_level: 0
    effects:
      attack_cooldown_percent: -0.25
`)

	upgrades, weights, err := LoadUpgradeDefinitions(path)
	if err != nil {
		t.Fatalf("LoadUpgradeDefinitions returned error: %v", err)
	}
	if len(upgrades) != 2 {
		t.Fatalf("Expected 2 upgrades, got %d", len(upgrades))
	}
	if upgrades[0].Weight != MaxWeight {
		t.Errorf("Weight should be clamped to %d, got %d", MaxWeight, upgrades[0].Weight)
	}
	if upgrades[0].Effects.AddMaxHealth != 20 {
		t.Errorf("Effects not decoded: %+v", upgrades[0].Effects)
	}
	if upgrades[1].Weight != DefaultUpgradeWeight {
		t.Errorf("Missing weight should default to %d, got %d", DefaultUpgradeWeight, upgrades[1].Weight)
	}
	if upgrades[1].UnlockedAtLevel != 1 {
		t.Errorf("UnlockedAtLevel should be raised to 1, got %d", upgrades[1].UnlockedAtLevel)
	}
	if upgrades[1].Rarity != RarityEpic {
		t.Errorf("Rarity = %v, want epic", upgrades[1].Rarity)
	}
	if len(weights) != len(DefaultRarityWeights()) {
		t.Errorf("Expected default rarity table, got %d entries", len(weights))
	}
}

func TestLoadUpgradeDefinitionsRejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "upgrades.yaml", `upgrades:
  - id: a
  - id: a
`)
	if _, _, err := LoadUpgradeDefinitions(path); err == nil {
		t.Error("Expected error for duplicate id")
	}
}

func TestLoadCatalogShippedData(t *testing.T) {
	catalog, err := LoadCatalog("../../data/enemies.yaml", "../../data/upgrades.yaml")
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if _, ok := catalog.Enemy(EnemyBoss); !ok {
		t.Error("shipped catalog should define a boss")
	}
	if len(catalog.Upgrades) == 0 {
		t.Error("shipped catalog should define upgrades")
	}
	if len(catalog.RarityWeights) != 5 {
		t.Errorf("Expected 5 rarity weights, got %d", len(catalog.RarityWeights))
	}
}

func TestRarityRoundTrip(t *testing.T) {
	for r := RarityCommon; r <= RarityLegendary; r++ {
		parsed, err := ParseRarity(r.String())
		if err != nil || parsed != r {
			t.Errorf("ParseRarity(%q) = %v, %v", r.String(), parsed, err)
		}
	}
}
