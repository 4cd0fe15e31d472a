package config

import (
	_ "embed"
)

//go:embed defaults/drops.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/drops.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Session: SessionConfig{
			DurationSecs:     30,
			TimerWarningSecs: 5,
			StreakThreshold:  3,
			ToastMs:          2500,
		},
		Difficulties: map[string]Profile{
			string(DifficultyEasy): {
				Name:            "Easy",
				SpawnIntervalMs: 1100,
				FallMinSecs:     4.0,
				FallMaxSecs:     6.0,
				BadProbability:  0.1,
				TargetScore:     15,
				GoodDelta:       1,
				BadDelta:        -1,
			},
			string(DifficultyNormal): {
				Name:            "Normal",
				SpawnIntervalMs: 900,
				FallMinSecs:     3.0,
				FallMaxSecs:     5.0,
				BadProbability:  0.2,
				TargetScore:     20,
				GoodDelta:       1,
				BadDelta:        -2,
			},
			string(DifficultyHard): {
				Name:            "Hard",
				SpawnIntervalMs: 700,
				FallMinSecs:     2.0,
				FallMaxSecs:     3.5,
				BadProbability:  0.3,
				TargetScore:     28,
				GoodDelta:       1,
				BadDelta:        -3,
			},
		},
		Milestones: []MilestoneConfig{
			{Score: 10, Message: "Halfway to a full bucket!"},
			{Score: 20, Message: "20 drops! The well is filling up!"},
			{Score: 30, Message: "30 drops! A whole village has water!"},
		},
		Messages: MessagesConfig{
			Win: []string{
				"Amazing! You're a true Water Hero!",
				"You helped bring clean water to many!",
				"Incredible! The world is better with you!",
			},
			Lose: []string{
				"So close! Try again to help more people!",
				"Keep going! Every drop counts!",
				"Don't give up! Clean water needs you!",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
