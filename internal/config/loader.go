package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/glyphsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Unit:   20,
			Width:  800,
			Height: 400,
		},
		Speed: SpeedConfig{
			Enabled:           true,
			Initial:           150 * time.Millisecond,
			Floor:             50 * time.Millisecond,
			Step:              10 * time.Millisecond,
			Every:             5,
			CarryAcrossResets: true,
		},
		Grace: GraceConfig{
			Duration: 3 * time.Second,
		},
		Obstacles: ObstacleConfig{
			PasswayDensity: 0.2,
			FontSize:       200,
			LetterSpacing:  50,
		},
		Placement: PlacementConfig{
			MaxAttempts: 100,
		},
		Storage: StorageConfig{
			HighScoreKey: "highScore",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load loads the game configuration.
// Search order: customPath -> ~/.glyphsnake/config.yaml -> ./configs/glyphsnake.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what
// it names. The result is validated.
func Load(customPath string) (GameConfig, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "glyphsnake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := Default()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glyphsnake", filename)
}
