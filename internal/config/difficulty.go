package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value into a preset. An empty string
// selects DifficultyNormal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables ball speed modifiers.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched. Presets narrow the paddle
// size levels rather than move the base width, so every reachable width
// stays on the configured grid.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.BaseSpeed *= 0.8
		cfg.Paddle.MinSizeLevel = min(cfg.Paddle.MinSizeLevel+1, 0)
		cfg.Bonus.DropChance = clampF(cfg.Bonus.DropChance*1.5, 0, 1)
	case DifficultyHard:
		cfg.Ball.BaseSpeed *= 1.15
		cfg.Paddle.MaxSizeLevel = max(cfg.Paddle.MaxSizeLevel-1, 0)
		cfg.Bonus.DropChance = clampF(cfg.Bonus.DropChance*0.7, 0, 1)
	case DifficultyFixed:
		cfg.Ball.MinSpeedLevel = 0
		cfg.Ball.MaxSpeedLevel = 0
	}
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
