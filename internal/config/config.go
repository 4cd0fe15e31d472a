// Package config provides YAML/TOML configuration loading and difficulty
// profiles for the drops game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunable settings of the game.
type GameConfig struct {
	Session      SessionConfig      `yaml:"session" toml:"session"`
	Difficulties map[string]Profile `yaml:"difficulties" toml:"difficulties"`
	Milestones   []MilestoneConfig  `yaml:"milestones" toml:"milestones"`
	Messages     MessagesConfig     `yaml:"messages" toml:"messages"`
}

// SessionConfig defines round timing and feedback thresholds.
type SessionConfig struct {
	DurationSecs     int `yaml:"duration_secs" toml:"duration_secs"`           // Round length
	TimerWarningSecs int `yaml:"timer_warning_secs" toml:"timer_warning_secs"` // Warn when this many seconds remain
	StreakThreshold  int `yaml:"streak_threshold" toml:"streak_threshold"`     // Streak visual turns on at this count
	ToastMs          int `yaml:"toast_ms" toml:"toast_ms"`                     // Milestone toast and announcer lifetime
}

// MilestoneConfig is a score threshold with its feedback message.
type MilestoneConfig struct {
	Score   int    `yaml:"score" toml:"score"`
	Message string `yaml:"message" toml:"message"`
}

// MessagesConfig holds the end-of-round message pools.
type MessagesConfig struct {
	Win  []string `yaml:"win" toml:"win"`
	Lose []string `yaml:"lose" toml:"lose"`
}

// Toast returns the milestone toast lifetime as a duration.
func (s SessionConfig) Toast() time.Duration {
	return time.Duration(s.ToastMs) * time.Millisecond
}

// Validate checks the whole configuration.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Session.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_secs must be positive, got %d", c.Session.DurationSecs))
	}
	if c.Session.TimerWarningSecs < 0 {
		errs = append(errs, fmt.Errorf("session.timer_warning_secs must not be negative, got %d", c.Session.TimerWarningSecs))
	}
	if c.Session.ToastMs <= 0 {
		errs = append(errs, fmt.Errorf("session.toast_ms must be positive, got %d", c.Session.ToastMs))
	}

	if len(c.Difficulties) == 0 {
		errs = append(errs, errors.New("at least one difficulty is required"))
	}
	for key, p := range c.Difficulties {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("difficulty %q: %w", key, err))
		}
	}

	for i, m := range c.Milestones {
		if m.Score <= 0 {
			errs = append(errs, fmt.Errorf("milestone %d: score must be positive, got %d", i, m.Score))
		}
		if m.Message == "" {
			errs = append(errs, fmt.Errorf("milestone %d: message is empty", i))
		}
	}

	if len(c.Messages.Win) == 0 {
		errs = append(errs, errors.New("messages.win must not be empty"))
	}
	if len(c.Messages.Lose) == 0 {
		errs = append(errs, errors.New("messages.lose must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
