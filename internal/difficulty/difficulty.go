// Package difficulty holds the pure scaling formulas of the wave game:
// per-type multipliers, XP rewards, global difficulty and spawn quotas.
package difficulty

import (
	"math"

	"go-wave-survivors/internal/defs"
)

// Model carries the only global knob, the per-wave increment.
type Model struct {
	WaveIncrement float64
}

func NewModel(waveIncrement float64) Model {
	return Model{WaveIncrement: waveIncrement}
}

// Global returns WaveIncrement^(wave-1).
func (m Model) Global(wave int) float64 {
	return math.Pow(m.WaveIncrement, float64(wave-1))
}

// WavesSinceIntroduced is max(0, wave - introducedAt).
func WavesSinceIntroduced(cfg defs.EnemyTypeConfig, wave int) int {
	if d := wave - cfg.IntroducedAtWave; d > 0 {
		return d
	}
	return 0
}

// EnemyMultiplier returns growth^max(0, wave-introducedAt).
func EnemyMultiplier(cfg defs.EnemyTypeConfig, wave int) float64 {
	return math.Pow(cfg.DifficultyGrowth, float64(WavesSinceIntroduced(cfg, wave)))
}

// XPReward returns round(baseXP * xpGrowth^max(0, wave-introducedAt)).
func XPReward(cfg defs.EnemyTypeConfig, wave int) int {
	return int(math.Round(float64(cfg.BaseXPReward) * math.Pow(cfg.XPGrowthPerWave, float64(WavesSinceIntroduced(cfg, wave)))))
}

// QuotaIndex is the recurrence index for a type at a wave: wave - introducedAt + 1.
func QuotaIndex(cfg defs.EnemyTypeConfig, wave int) int {
	return wave - cfg.IntroducedAtWave + 1
}

// Seeds of the two recurrences. Balance depends on these exact values.
var (
	normalSeeds = []int{5, 5, 8}       // n<=0, 1, 2
	bossSeeds   = []int{1, 1, 2, 3, 5} // n<=0, 1, 2, 3, 4
)

// NormalQuota is 5, 5, 8, 13, 21, ... for n = 0, 1, 2, 3, 4.
func NormalQuota(n int) int {
	return fib(n, normalSeeds)
}

// BossQuota is 1, 1, 2, 3, 5, 8, ... for n = 0, 1, 2, 3, 4, 5.
func BossQuota(n int) int {
	return fib(n, bossSeeds)
}

// Quota picks the boss or normal recurrence by type.
func Quota(cfg defs.EnemyTypeConfig, wave int) int {
	n := QuotaIndex(cfg, wave)
	if cfg.Type.IsBoss() {
		return BossQuota(n)
	}
	return NormalQuota(n)
}

func fib(n int, seeds []int) int {
	if n <= 0 {
		return seeds[0]
	}
	if n < len(seeds) {
		return seeds[n]
	}
	a, b := seeds[len(seeds)-2], seeds[len(seeds)-1]
	for i := len(seeds); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}
