// internal/event/types.go
package event

import (
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/types"
)

const (
	WaveChanged    EventType = "WaveChanged"    // Data: WaveChangedData
	StateChanged   EventType = "StateChanged"   // Data: StateChangedData
	EnemyDied      EventType = "EnemyDied"      // Data: EnemyDiedData
	LevelUp        EventType = "LevelUp"        // Data: LevelUpData
	XPChanged      EventType = "XPChanged"      // Data: XPChangedData
	ShowChoices    EventType = "ShowChoices"    // Data: ShowChoicesData
	HideChoices    EventType = "HideChoices"    // Data: nil
	UpgradeApplied EventType = "UpgradeApplied" // Data: defs.UpgradeDefinition
)

type WaveChangedData struct {
	Wave       int
	Difficulty float64
}

// StateChangedData carries the state as an int so event does not import state.
type StateChangedData struct {
	State int
}

type EnemyDiedData struct {
	ID        types.EntityID
	Type      defs.EnemyType
	SpawnWave int
}

type LevelUpData struct {
	Level int
}

type XPChangedData struct {
	Level     int
	CurrentXP int
	XPToNext  int
}

type ShowChoicesData struct {
	Level   int
	Choices []defs.UpgradeDefinition
}
