package system

import (
	"math"
	"testing"

	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/event"
)

func newLedger(dispatcher *event.Dispatcher) *ExperienceSystem {
	return NewExperienceSystem(config.ExperienceConfig{BaseXPToLevel: 10, LevelGrowth: 1.5}, dispatcher, nil)
}

func TestAddXPMultipleLevels(t *testing.T) {
	dispatcher := event.NewDispatcher()
	var levels []int
	var xpEvents []event.XPChangedData
	dispatcher.SubscribeFunc(event.LevelUp, func(e event.Event) {
		levels = append(levels, e.Data.(event.LevelUpData).Level)
	})
	dispatcher.SubscribeFunc(event.XPChanged, func(e event.Event) {
		xpEvents = append(xpEvents, e.Data.(event.XPChangedData))
	})

	s := newLedger(dispatcher)
	if gained := s.AddXP(25); gained != 2 {
		t.Errorf("AddXP(25) gained %d levels, want 2", gained)
	}
	if s.TotalXP() != 25 {
		t.Errorf("TotalXP = %d, want 25", s.TotalXP())
	}
	if s.Level() != 3 || s.CurrentXP() != 0 || s.XPToNext() != 23 {
		t.Errorf("state = level %d xp %d next %d, want 3/0/23", s.Level(), s.CurrentXP(), s.XPToNext())
	}
	if len(levels) != 2 || levels[0] != 2 || levels[1] != 3 {
		t.Errorf("LevelUp events = %v, want [2 3]", levels)
	}
	if len(xpEvents) != 1 {
		t.Fatalf("Expected a single XPChanged event, got %d", len(xpEvents))
	}
	if xpEvents[0] != (event.XPChangedData{Level: 3, CurrentXP: 0, XPToNext: 23}) {
		t.Errorf("XPChanged = %+v", xpEvents[0])
	}
}

func TestAddXPBelowThreshold(t *testing.T) {
	s := newLedger(nil)
	if gained := s.AddXP(9); gained != 0 {
		t.Errorf("gained %d levels, want 0", gained)
	}
	if s.Level() != 1 || s.CurrentXP() != 9 {
		t.Errorf("level %d xp %d, want 1/9", s.Level(), s.CurrentXP())
	}
	s.AddXP(1)
	if s.Level() != 2 || s.CurrentXP() != 0 || s.XPToNext() != 15 {
		t.Errorf("level %d xp %d next %d, want 2/0/15", s.Level(), s.CurrentXP(), s.XPToNext())
	}
}

func TestAddXPNegativeIsIgnored(t *testing.T) {
	s := newLedger(nil)
	s.AddXP(4)
	s.AddXP(-100)
	if s.CurrentXP() != 4 || s.TotalXP() != 4 {
		t.Errorf("CurrentXP = %d TotalXP = %d, want 4/4", s.CurrentXP(), s.TotalXP())
	}
}

func TestAddXPSaturatesAtMaxInt(t *testing.T) {
	s := newLedger(nil)
	s.AddXP(math.MaxInt)
	s.AddXP(math.MaxInt)
	if s.TotalXP() != math.MaxInt {
		t.Errorf("TotalXP = %d, want saturated at math.MaxInt", s.TotalXP())
	}
	if s.CurrentXP() < 0 || s.CurrentXP() >= s.XPToNext() {
		t.Errorf("CurrentXP = %d out of [0, %d)", s.CurrentXP(), s.XPToNext())
	}
	if s.XPToNext() < 1 {
		t.Errorf("XPToNext = %d, want positive", s.XPToNext())
	}
	if s.Level() < 2 {
		t.Errorf("Level = %d, want several levels gained", s.Level())
	}

	before := s.TotalXP()
	s.AddXP(1)
	if s.TotalXP() < before {
		t.Errorf("TotalXP decreased from %d to %d", before, s.TotalXP())
	}
}

func TestNextThresholdCapsAtMaxInt(t *testing.T) {
	if got := nextThreshold(math.MaxInt/2+1, 3); got != math.MaxInt {
		t.Errorf("nextThreshold overflow = %d, want math.MaxInt", got)
	}
	if got := nextThreshold(1, 0.1); got != 1 {
		t.Errorf("nextThreshold floor = %d, want 1", got)
	}
}

func TestThresholdUsesIterativeRounding(t *testing.T) {
	want := []int{10, 15, 23, 35, 53}
	for i, w := range want {
		if got := ThresholdAt(10, 1.5, i+1); got != w {
			t.Errorf("ThresholdAt(level %d) = %d, want %d", i+1, got, w)
		}
	}
	// closed form gives 10*1.5^4 = 50.6 -> 51, the iterative chain gives 53
	closed := int(math.Round(10 * math.Pow(1.5, 4)))
	if closed == ThresholdAt(10, 1.5, 5) {
		t.Errorf("iterative and closed form unexpectedly agree at level 5")
	}
}

func TestLedgerMatchesThresholdAt(t *testing.T) {
	s := newLedger(nil)
	for lvl := 1; lvl <= 8; lvl++ {
		if s.XPToNext() != ThresholdAt(10, 1.5, lvl) {
			t.Fatalf("level %d: XPToNext %d, ThresholdAt %d", lvl, s.XPToNext(), ThresholdAt(10, 1.5, lvl))
		}
		s.AddXP(s.XPToNext())
	}
}

func TestExperienceFromEnemyDeaths(t *testing.T) {
	dispatcher := event.NewDispatcher()
	s := newLedger(dispatcher)
	s.Attach(func(typ defs.EnemyType, wave int) int {
		if typ.IsBoss() {
			return 100
		}
		return wave
	})

	dispatcher.Dispatch(event.Event{Type: event.EnemyDied, Data: event.EnemyDiedData{Type: defs.EnemyChaser, SpawnWave: 4}})
	if s.CurrentXP() != 4 {
		t.Errorf("CurrentXP = %d, want 4", s.CurrentXP())
	}

	s.Detach()
	dispatcher.Dispatch(event.Event{Type: event.EnemyDied, Data: event.EnemyDiedData{Type: defs.EnemyBoss, SpawnWave: 1}})
	if s.CurrentXP() != 4 {
		t.Errorf("Detached ledger still gained XP: %d", s.CurrentXP())
	}
}

func TestResetRestoresLevelOne(t *testing.T) {
	s := newLedger(nil)
	s.AddXP(100)
	s.Reset()
	if s.Level() != 1 || s.CurrentXP() != 0 || s.XPToNext() != 10 {
		t.Errorf("after Reset: %d/%d/%d", s.Level(), s.CurrentXP(), s.XPToNext())
	}
}
