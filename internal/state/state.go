// internal/state/state.go
package state

import (
	"fmt"

	"go.uber.org/zap"

	"go-wave-survivors/internal/event"
	"go-wave-survivors/internal/logger"
)

// GameState — глобальное состояние игры
type GameState int

const (
	MainMenu GameState = iota
	Playing
	Paused
	Upgrade
	Settings
	GameOver
)

var stateNames = []string{"MainMenu", "Playing", "Paused", "Upgrade", "Settings", "GameOver"}

func (s GameState) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// StateMachine — хранит текущее состояние и рассылает StateChanged
// только при реальной смене состояния.
type StateMachine struct {
	current    GameState
	dispatcher *event.Dispatcher
	log        *zap.Logger
}

// NewStateMachine создаёт машину в начальном состоянии без события.
func NewStateMachine(initial GameState, dispatcher *event.Dispatcher, log *zap.Logger) *StateMachine {
	return &StateMachine{
		current:    initial,
		dispatcher: dispatcher,
		log:        logger.OrNop(log),
	}
}

// SetState устанавливает новое состояние. Переход в то же состояние не генерирует событие.
func (sm *StateMachine) SetState(newState GameState) {
	if sm.current == newState {
		return
	}
	prev := sm.current
	sm.current = newState
	sm.log.Info("state changed", zap.Stringer("from", prev), zap.Stringer("to", newState))
	if sm.dispatcher != nil {
		sm.dispatcher.Dispatch(event.Event{Type: event.StateChanged, Data: event.StateChangedData{State: int(newState)}})
	}
}

func (sm *StateMachine) Current() GameState {
	return sm.current
}

// IsPaused is the tick gate: true for every state except Playing.
func (sm *StateMachine) IsPaused() bool {
	return sm.current != Playing
}

func (sm *StateMachine) IsPlaying() bool {
	return sm.current == Playing
}
