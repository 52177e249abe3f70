package state

import (
	"testing"

	"go-wave-survivors/internal/event"
)

func recordStates(d *event.Dispatcher) *[]GameState {
	var seen []GameState
	d.SubscribeFunc(event.StateChanged, func(e event.Event) {
		seen = append(seen, GameState(e.Data.(event.StateChangedData).State))
	})
	return &seen
}

func TestSetStateFiresOnlyOnChange(t *testing.T) {
	d := event.NewDispatcher()
	seen := recordStates(d)
	sm := NewStateMachine(MainMenu, d, nil)

	sm.SetState(MainMenu)
	sm.SetState(Playing)
	sm.SetState(Playing)
	sm.SetState(Paused)

	if len(*seen) != 2 || (*seen)[0] != Playing || (*seen)[1] != Paused {
		t.Errorf("Expected [Playing Paused], got %v", *seen)
	}
}

func TestPauseGate(t *testing.T) {
	sm := NewStateMachine(MainMenu, nil, nil)
	for _, s := range []GameState{MainMenu, Paused, Upgrade, Settings, GameOver} {
		sm.SetState(s)
		if !sm.IsPaused() || sm.IsPlaying() {
			t.Errorf("%v: IsPaused=%v IsPlaying=%v", s, sm.IsPaused(), sm.IsPlaying())
		}
	}
	sm.SetState(Playing)
	if sm.IsPaused() || !sm.IsPlaying() {
		t.Error("Playing should not be paused")
	}
}

func TestFlowInvalidTransitionsAreNoOps(t *testing.T) {
	f := NewFlow(NewStateMachine(MainMenu, nil, nil))

	f.ResumeGame()
	if f.Machine().Current() != MainMenu {
		t.Errorf("Resume from MainMenu should be ignored, got %v", f.Machine().Current())
	}
	f.PauseGame()
	if f.Machine().Current() != MainMenu {
		t.Errorf("Pause from MainMenu should be ignored, got %v", f.Machine().Current())
	}
	f.OpenUpgradeMenu()
	if f.Machine().Current() != MainMenu {
		t.Errorf("OpenUpgradeMenu from MainMenu should be ignored, got %v", f.Machine().Current())
	}
	f.CloseUpgradeMenu()
	if f.Machine().Current() != MainMenu {
		t.Errorf("CloseUpgradeMenu outside Upgrade should be ignored, got %v", f.Machine().Current())
	}
}

func TestFlowPauseResumeAndUpgrade(t *testing.T) {
	f := NewFlow(NewStateMachine(MainMenu, nil, nil))
	f.StartGame()

	f.TogglePause()
	if f.Machine().Current() != Paused {
		t.Fatalf("Expected Paused, got %v", f.Machine().Current())
	}
	f.TogglePause()
	if f.Machine().Current() != Playing {
		t.Fatalf("Expected Playing, got %v", f.Machine().Current())
	}

	f.OpenUpgradeMenu()
	if f.Machine().Current() != Upgrade {
		t.Fatalf("Expected Upgrade, got %v", f.Machine().Current())
	}
	f.ResumeGame()
	if f.Machine().Current() != Upgrade {
		t.Errorf("Resume should not leave Upgrade, got %v", f.Machine().Current())
	}
	f.CloseUpgradeMenu()
	if f.Machine().Current() != Playing {
		t.Errorf("Expected Playing, got %v", f.Machine().Current())
	}
}

func TestFlowSettingsReturnsToPreviousState(t *testing.T) {
	f := NewFlow(NewStateMachine(MainMenu, nil, nil))

	f.OpenSettings()
	f.CloseSettings()
	if f.Machine().Current() != MainMenu {
		t.Errorf("Expected MainMenu after settings, got %v", f.Machine().Current())
	}

	f.StartGame()
	f.PauseGame()
	f.OpenSettings()
	f.CloseSettings()
	if f.Machine().Current() != Paused {
		t.Errorf("Expected Paused after settings, got %v", f.Machine().Current())
	}
}

func TestFlowGameOverAndMenuAreLeaveable(t *testing.T) {
	f := NewFlow(NewStateMachine(Playing, nil, nil))
	f.TriggerGameOver()
	if f.Machine().Current() != GameOver {
		t.Fatalf("Expected GameOver, got %v", f.Machine().Current())
	}
	f.StartGame()
	if f.Machine().Current() != Playing {
		t.Errorf("Expected Playing after restart, got %v", f.Machine().Current())
	}
	f.ReturnToMainMenu()
	if f.Machine().Current() != MainMenu {
		t.Errorf("Expected MainMenu, got %v", f.Machine().Current())
	}
}
