package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRules loads the game rules configuration.
// Search order: customPath -> ~/.dalek/rules.yaml -> ./configs/rules.yaml
// -> embedded default. Only an explicitly requested custom path surfaces
// read/parse errors; the fallback chain is best-effort.
func LoadRules(customPath string) (RulesConfig, error) {
	var cfg RulesConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("rules.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "rules.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRulesYAML, &cfg); err != nil {
		return DefaultRules(), nil
	}
	return cfg, nil
}

// userConfigPath returns ~/.dalek/<name>, or "" if the home directory
// cannot be resolved.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dalek", name)
}
