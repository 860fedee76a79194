package config

import (
	"math"
	"time"
)

// DifficultyManager derives fall speed, level and spawn rate from elapsed
// play time and score.
type DifficultyManager struct {
	cfg ProgressionConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg ProgressionConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// FallSpeed returns the base meteor fall speed after elapsed play time.
// The result never leaves [BaseSpeed, MaxSpeed] and never decreases as
// elapsed grows.
func (d *DifficultyManager) FallSpeed(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	speed := d.cfg.BaseSpeed + elapsed.Seconds()*d.cfg.Acceleration
	return clampF(speed, d.cfg.BaseSpeed, d.cfg.MaxSpeed)
}

// LevelForScore returns floor(score / PointsPerLevel) + 1.
func (d *DifficultyManager) LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	per := d.cfg.PointsPerLevel
	if per <= 0 {
		per = 500
	}
	return score/per + 1
}

// SpawnChance returns N for a "1 in N" meteor spawn roll at the given level.
func (d *DifficultyManager) SpawnChance(level int) int {
	n := d.cfg.SpawnChanceBase - level*d.cfg.SpawnChancePerLevel
	return max(n, d.cfg.SpawnChanceMin, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
