package component

import "go-wave-survivors/internal/defs"

// WavePhase — фаза волны в WaveDirector
type WavePhase int

const (
	PhaseIdle WavePhase = iota
	PhaseSpawningNormal
	PhaseNormalComplete
	PhaseSpawningBoss
	PhaseWaveComplete
)

var phaseNames = []string{"Idle", "SpawningNormal", "NormalComplete", "SpawningBoss", "WaveComplete"}

func (p WavePhase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// SpawnQuota — сколько врагов типа нужно выпустить в текущей волне и сколько уже вышло.
type SpawnQuota struct {
	Type    defs.EnemyType
	Target  int
	Spawned int
}

func (q *SpawnQuota) Done() bool {
	return q.Spawned >= q.Target
}
