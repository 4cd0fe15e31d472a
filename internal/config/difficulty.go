package config

import (
	"errors"
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the built-in difficulty keys in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Profile defines spawn cadence, fall speed, scoring and the win target for
// one difficulty. Profiles are passed by value and never modified after load.
type Profile struct {
	Name            string  `yaml:"name" toml:"name"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	FallMinSecs     float64 `yaml:"fall_min_secs" toml:"fall_min_secs"`
	FallMaxSecs     float64 `yaml:"fall_max_secs" toml:"fall_max_secs"`
	BadProbability  float64 `yaml:"bad_probability" toml:"bad_probability"` // 0.0 = never, 1.0 = always
	TargetScore     int     `yaml:"target_score" toml:"target_score"`
	GoodDelta       int     `yaml:"good_delta" toml:"good_delta"`
	BadDelta        int     `yaml:"bad_delta" toml:"bad_delta"`
}

// SpawnInterval returns the spawn cadence as a duration.
func (p Profile) SpawnInterval() time.Duration {
	return time.Duration(p.SpawnIntervalMs) * time.Millisecond
}

// Validate checks that the profile is playable.
func (p Profile) Validate() error {
	var errs []error
	if p.SpawnIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval_ms must be positive, got %d", p.SpawnIntervalMs))
	}
	if p.FallMinSecs <= 0 {
		errs = append(errs, fmt.Errorf("fall_min_secs must be positive, got %g", p.FallMinSecs))
	}
	if p.FallMinSecs > p.FallMaxSecs {
		errs = append(errs, fmt.Errorf("fall_min_secs %g exceeds fall_max_secs %g", p.FallMinSecs, p.FallMaxSecs))
	}
	if p.BadProbability < 0 || p.BadProbability > 1 {
		errs = append(errs, fmt.Errorf("bad_probability must be in [0, 1], got %g", p.BadProbability))
	}
	if p.TargetScore <= 0 {
		errs = append(errs, fmt.Errorf("target_score must be positive, got %d", p.TargetScore))
	}
	return errors.Join(errs...)
}

// ClampProbability restricts a probability to [0, 1].
func ClampProbability(p float64) float64 {
	return clampF(p, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
