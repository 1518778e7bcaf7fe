package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.whack/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
//
// Files are decoded on top of the variant's defaults, so a file only needs
// the keys it changes. A custom path that cannot be read, parsed or validated
// is an error; the other locations are skipped when unusable.
func Load(variant, customPath string) (WhackConfig, error) {
	base, ok := hardcodedDefaults[variant]
	if !ok {
		base = baseConfig
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WhackConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := base()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return WhackConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return WhackConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryFile(path, base); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	data, ok := embeddedDefaults[variant]
	if !ok {
		return WhackConfig{}, fmt.Errorf("config: no configuration found for variant %q", variant)
	}
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile reads a config from path, reporting false if it is missing or unusable.
func tryFile(path string, base func() WhackConfig) (WhackConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WhackConfig{}, false
	}
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WhackConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return WhackConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".whack", "configs", filename)
}
