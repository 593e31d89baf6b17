package config

import (
	_ "embed"
)

//go:embed defaults/dalek.yaml
var defaultRulesYAML []byte

// DefaultRules returns the hardcoded default rules, used as the last
// fallback when even the embedded YAML cannot be parsed.
func DefaultRules() RulesConfig {
	return RulesConfig{
		Movement: MovementConfig{
			DiagonalDaleks: true,
		},
		Teleport: TeleportConfig{
			Allowed: 0,
		},
		Scrap: ScrapConfig{
			Enabled: true,
		},
		Scoring: ScoringConfig{
			PerDalek: 10,
			PerRound: 1,
		},
	}
}
