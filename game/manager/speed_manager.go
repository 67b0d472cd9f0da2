package manager

import (
	"time"

	"snake-arcade/game/types"
)

// SpeedManager tracks the speed level and the tick interval derived from it.
type SpeedManager struct {
	baseMs         int
	stepMs         int
	minMs          int
	pointsPerLevel int

	level    int
	interval time.Duration
}

func NewSpeedManager(cfg types.Config) *SpeedManager {
	sm := &SpeedManager{
		baseMs:         cfg.BaseTickMs,
		stepMs:         cfg.SpeedStepMs,
		minMs:          cfg.MinTickMs,
		pointsPerLevel: cfg.PointsPerLevel,
	}
	sm.Reset()
	return sm
}

// Reset returns to level 1 at the base interval.
func (sm *SpeedManager) Reset() {
	sm.level = 1
	sm.interval = time.Duration(sm.baseMs) * time.Millisecond
}

// OnScore bumps the level when score is a positive multiple of the points
// per level and reports whether it did.
func (sm *SpeedManager) OnScore(score int) bool {
	if score <= 0 || score%sm.pointsPerLevel != 0 {
		return false
	}
	sm.level++
	sm.interval = IntervalFor(sm.level, sm.baseMs, sm.stepMs, sm.minMs)
	return true
}

func (sm *SpeedManager) Level() int {
	return sm.level
}

func (sm *SpeedManager) Interval() time.Duration {
	return sm.interval
}

// IntervalFor is max(minMs, baseMs - level*stepMs) as a duration.
func IntervalFor(level, baseMs, stepMs, minMs int) time.Duration {
	ms := max(minMs, baseMs-level*stepMs)
	return time.Duration(ms) * time.Millisecond
}
