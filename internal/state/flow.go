package state

// Flow wraps the machine with the transitions the game exposes. Requests
// that do not make sense from the current state are ignored.
type Flow struct {
	sm            *StateMachine
	previousState GameState
}

func NewFlow(sm *StateMachine) *Flow {
	return &Flow{sm: sm, previousState: sm.Current()}
}

func (f *Flow) Machine() *StateMachine { return f.sm }

func (f *Flow) IsPaused() bool  { return f.sm.IsPaused() }
func (f *Flow) IsPlaying() bool { return f.sm.IsPlaying() }

// StartGame enters Playing from anywhere (new run or restart).
func (f *Flow) StartGame() {
	f.sm.SetState(Playing)
}

func (f *Flow) PauseGame() {
	if f.sm.Current() == Playing {
		f.previousState = Playing
		f.sm.SetState(Paused)
	}
}

func (f *Flow) ResumeGame() {
	if cur := f.sm.Current(); cur == Paused || cur == Settings {
		f.sm.SetState(Playing)
	}
}

// TogglePause pauses while playing and resumes while paused.
func (f *Flow) TogglePause() {
	switch f.sm.Current() {
	case Playing:
		f.PauseGame()
	case Paused:
		f.ResumeGame()
	}
}

func (f *Flow) OpenUpgradeMenu() {
	if f.sm.Current() == Playing {
		f.previousState = Playing
		f.sm.SetState(Upgrade)
	}
}

func (f *Flow) CloseUpgradeMenu() {
	if f.sm.Current() == Upgrade {
		f.sm.SetState(Playing)
	}
}

// OpenSettings remembers where it was opened from; CloseSettings returns there.
func (f *Flow) OpenSettings() {
	if f.sm.Current() == Settings {
		return
	}
	f.previousState = f.sm.Current()
	f.sm.SetState(Settings)
}

func (f *Flow) CloseSettings() {
	if f.sm.Current() == Settings {
		f.sm.SetState(f.previousState)
	}
}

func (f *Flow) TriggerGameOver() {
	f.sm.SetState(GameOver)
}

func (f *Flow) ReturnToMainMenu() {
	f.sm.SetState(MainMenu)
}
