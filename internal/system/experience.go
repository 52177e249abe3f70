// internal/system/experience.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-wave-survivors/internal/config"
	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/event"
	"go-wave-survivors/internal/logger"
)

// RewardFunc переводит смерть врага в опыт.
type RewardFunc func(t defs.EnemyType, spawnWave int) int

// ExperienceSystem — счетчик опыта и уровней игрока.
type ExperienceSystem struct {
	baseXP int
	growth float64

	level     int
	currentXP int
	totalXP   int
	xpToNext  int

	dispatcher *event.Dispatcher
	reward     RewardFunc
	sub        *event.Subscription
	log        *zap.Logger
}

func NewExperienceSystem(cfg config.ExperienceConfig, dispatcher *event.Dispatcher, log *zap.Logger) *ExperienceSystem {
	s := &ExperienceSystem{
		baseXP:     cfg.BaseXPToLevel,
		growth:     cfg.LevelGrowth,
		dispatcher: dispatcher,
		log:        logger.OrNop(log),
	}
	s.Reset()
	return s
}

// Reset returns to level 1 with no XP.
func (s *ExperienceSystem) Reset() {
	s.level = 1
	s.currentXP = 0
	s.totalXP = 0
	s.xpToNext = s.baseXP
	if s.xpToNext < 1 {
		s.xpToNext = 1
	}
}

// Attach grants reward(type, spawnWave) for every EnemyDied event.
func (s *ExperienceSystem) Attach(reward RewardFunc) {
	if s.dispatcher == nil || reward == nil {
		return
	}
	s.reward = reward
	s.sub = s.dispatcher.Subscribe(event.EnemyDied, s)
}

func (s *ExperienceSystem) Detach() {
	if s.sub != nil {
		s.sub.Unsubscribe()
		s.sub = nil
	}
}

// OnEvent обрабатывает EnemyDied.
func (s *ExperienceSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDied || s.reward == nil {
		return
	}
	data, ok := e.Data.(event.EnemyDiedData)
	if !ok {
		return
	}
	s.AddXP(s.reward(data.Type, data.SpawnWave))
}

// AddXP adds a non-negative amount and levels up as many times as the
// total allows. Each crossed threshold dispatches LevelUp in order; one
// XPChanged follows. Returns the number of levels gained.
func (s *ExperienceSystem) AddXP(amount int) int {
	if amount < 0 {
		amount = 0
	}
	s.currentXP = addSaturated(s.currentXP, amount)
	s.totalXP = addSaturated(s.totalXP, amount)

	gained := 0
	for s.currentXP >= s.xpToNext {
		s.currentXP -= s.xpToNext
		s.level++
		gained++
		s.xpToNext = nextThreshold(s.xpToNext, s.growth)
		s.log.Info("level up", zap.Int("level", s.level), zap.Int("xp_to_next", s.xpToNext))
		s.dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: s.level}})
	}
	s.dispatch(event.Event{Type: event.XPChanged, Data: event.XPChangedData{
		Level:     s.level,
		CurrentXP: s.currentXP,
		XPToNext:  s.xpToNext,
	}})
	return gained
}

func (s *ExperienceSystem) dispatch(e event.Event) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(e)
	}
}

func (s *ExperienceSystem) Level() int     { return s.level }
func (s *ExperienceSystem) CurrentXP() int { return s.currentXP }
func (s *ExperienceSystem) XPToNext() int  { return s.xpToNext }
func (s *ExperienceSystem) TotalXP() int   { return s.totalXP }

// Progress is currentXP/xpToNext in [0, 1).
func (s *ExperienceSystem) Progress() float64 {
	return float64(s.currentXP) / float64(s.xpToNext)
}

// addSaturated складывает неотрицательные a и b, упираясь в math.MaxInt.
func addSaturated(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

// nextThreshold rounds half away from zero and stays within [1, math.MaxInt].
func nextThreshold(current int, growth float64) int {
	next := math.Round(float64(current) * growth)
	if next >= math.MaxInt {
		return math.MaxInt
	}
	if next < 1 {
		return 1
	}
	return int(next)
}

// ThresholdAt returns the XP needed to leave level by applying the rounded
// step level-1 times. It drifts from base*growth^(level-1) on purpose.
func ThresholdAt(baseXP int, growth float64, level int) int {
	t := baseXP
	if t < 1 {
		t = 1
	}
	for l := 1; l < level; l++ {
		t = nextThreshold(t, growth)
	}
	return t
}
