// Package config provides YAML-based rules configuration and difficulty
// presets for the dalek game.
package config

// RulesConfig contains the tunable rules of a Dalek session.
type RulesConfig struct {
	Movement MovementConfig `yaml:"movement"`
	Teleport TeleportConfig `yaml:"teleport"`
	Scrap    ScrapConfig    `yaml:"scrap"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// MovementConfig defines how Daleks chase the Doctor.
type MovementConfig struct {
	// DiagonalDaleks lets a Dalek close distance on both axes in one
	// turn. Orthogonal-only Daleks are noticeably easier to herd.
	DiagonalDaleks bool `yaml:"diagonal_daleks"`
}

// TeleportConfig defines the emergency teleport rules.
type TeleportConfig struct {
	// Allowed is the teleport budget per game. 0 means unlimited.
	Allowed int `yaml:"allowed"`
}

// ScrapConfig defines scrap pile behavior.
type ScrapConfig struct {
	// Enabled controls whether Dalek crashes leave lethal scrap piles.
	// With scrap disabled crashed Daleks simply vanish.
	Enabled bool `yaml:"enabled"`
}

// ScoringConfig defines score weights.
type ScoringConfig struct {
	PerDalek int `yaml:"per_dalek"` // points per destroyed Dalek
	PerRound int `yaml:"per_round"` // points per survived round
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset overlays a difficulty preset on top of a loaded config.
// Unknown preset names leave the config untouched.
func ApplyPreset(cfg RulesConfig, preset DifficultyPreset) RulesConfig {
	switch preset {
	case DifficultyEasy:
		cfg.Movement.DiagonalDaleks = false
		cfg.Teleport.Allowed = 0
	case DifficultyNormal:
		cfg.Movement.DiagonalDaleks = true
		cfg.Teleport.Allowed = 0
	case DifficultyHard:
		cfg.Movement.DiagonalDaleks = true
		cfg.Teleport.Allowed = 3
	}
	return cfg
}
