package upgrade

import (
	"go.uber.org/zap"

	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/event"
	"go-wave-survivors/internal/logger"
	"go-wave-survivors/internal/state"
)

// Manager превращает повышения уровня в выбор апгрейдов. Пока открыт
// один выбор, новые повышения уровня ждут в очереди.
type Manager struct {
	catalog      *Catalog
	stats        *PlayerStats
	flow         *state.Flow
	dispatcher   *event.Dispatcher
	choicesCount int
	log          *zap.Logger

	choices     []defs.UpgradeDefinition
	choiceLevel int
	pending     []int
	sub         *event.Subscription
}

func NewManager(catalog *Catalog, stats *PlayerStats, flow *state.Flow, dispatcher *event.Dispatcher, choicesCount int, log *zap.Logger) *Manager {
	return &Manager{
		catalog:      catalog,
		stats:        stats,
		flow:         flow,
		dispatcher:   dispatcher,
		choicesCount: choicesCount,
		log:          logger.OrNop(log),
	}
}

// Attach subscribes to LevelUp.
func (m *Manager) Attach() {
	m.sub = m.dispatcher.Subscribe(event.LevelUp, m)
}

func (m *Manager) Detach() {
	if m.sub != nil {
		m.sub.Unsubscribe()
		m.sub = nil
	}
}

func (m *Manager) OnEvent(e event.Event) {
	if e.Type != event.LevelUp {
		return
	}
	data, ok := e.Data.(event.LevelUpData)
	if !ok {
		return
	}
	if m.IsChoosing() || !m.flow.IsPlaying() {
		m.pending = append(m.pending, data.Level)
		return
	}
	m.ShowChoices(data.Level)
}

// ShowChoices picks a batch for level, opens the upgrade menu and
// dispatches ShowChoices. Returns false when nothing could be offered.
func (m *Manager) ShowChoices(level int) bool {
	picks := m.catalog.PickRandom(level, m.choicesCount, nil)
	if len(picks) == 0 {
		return false
	}
	m.choices = picks
	m.choiceLevel = level
	m.flow.OpenUpgradeMenu()
	m.log.Info("upgrade choices", zap.Int("level", level), zap.Strings("ids", ids(picks)))
	m.dispatcher.Dispatch(event.Event{Type: event.ShowChoices, Data: event.ShowChoicesData{Level: level, Choices: picks}})
	return true
}

// Choose applies the offered upgrade with the given id. Unknown ids and
// calls without an open choice are ignored.
func (m *Manager) Choose(id string) bool {
	for _, u := range m.choices {
		if u.ID == id {
			m.apply(u)
			return true
		}
	}
	return false
}

// ChooseIndex applies the i-th offered upgrade.
func (m *Manager) ChooseIndex(i int) bool {
	if i < 0 || i >= len(m.choices) {
		return false
	}
	m.apply(m.choices[i])
	return true
}

func (m *Manager) apply(u defs.UpgradeDefinition) {
	if m.stats != nil {
		m.stats.Apply(u.Effects)
	}
	m.log.Info("upgrade applied", zap.String("id", u.ID), zap.Stringer("rarity", u.Rarity))
	m.choices = nil
	m.dispatcher.Dispatch(event.Event{Type: event.UpgradeApplied, Data: u})
	m.dispatcher.Dispatch(event.Event{Type: event.HideChoices})
	m.flow.CloseUpgradeMenu()
	m.showPending()
}

// ResumePending offers queued level-ups once the game is back in Playing.
func (m *Manager) ResumePending() {
	if !m.IsChoosing() && m.flow.IsPlaying() {
		m.showPending()
	}
}

func (m *Manager) showPending() {
	for len(m.pending) > 0 && !m.IsChoosing() {
		level := m.pending[0]
		m.pending = m.pending[1:]
		if m.ShowChoices(level) {
			return
		}
	}
}

// Reset drops the open choice and the queue.
func (m *Manager) Reset() {
	m.choices = nil
	m.choiceLevel = 0
	m.pending = nil
}

func (m *Manager) IsChoosing() bool { return len(m.choices) > 0 }
func (m *Manager) Pending() int     { return len(m.pending) }
func (m *Manager) Level() int       { return m.choiceLevel }

// Choices returns the open offer.
func (m *Manager) Choices() []defs.UpgradeDefinition {
	return m.choices
}

func ids(us []defs.UpgradeDefinition) []string {
	out := make([]string, len(us))
	for i, u := range us {
		out[i] = u.ID
	}
	return out
}
