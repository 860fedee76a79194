package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const shooterConfigFile = "shooter.yaml"

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.ascent/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Every file is decoded over the built-in defaults, so partial files only
// override the keys they set.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultShooterConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseShooter(data)
		if err != nil {
			return DefaultShooterConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(shooterConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseShooter(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", shooterConfigFile)); err == nil {
		if cfg, err := parseShooter(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports configuration values the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must have a positive size, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Progression.BaseSpeed > c.Progression.MaxSpeed:
		return fmt.Errorf("config: base_speed %v exceeds max_speed %v", c.Progression.BaseSpeed, c.Progression.MaxSpeed)
	case c.Progression.PointsPerLevel <= 0:
		return fmt.Errorf("config: points_per_level must be positive, got %d", c.Progression.PointsPerLevel)
	case c.Progression.SpawnChanceMin <= 0:
		return fmt.Errorf("config: spawn_chance_min must be positive, got %d", c.Progression.SpawnChanceMin)
	case c.Ammo.Max <= 0:
		return fmt.Errorf("config: ammo max must be positive, got %d", c.Ammo.Max)
	case len(c.Ships.UnlockScores) != ShipSlots:
		return fmt.Errorf("config: unlock_scores needs %d entries, got %d", ShipSlots, len(c.Ships.UnlockScores))
	case c.Abilities.TeleportCell <= 0:
		return fmt.Errorf("config: teleport_cell must be positive, got %v", c.Abilities.TeleportCell)
	}
	return nil
}

// ShipSlots is the number of selectable ships.
const ShipSlots = 9

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ascent", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartHealth = cfg.Player.MaxHealth
		cfg.Progression.MaxSpeed = max(cfg.Progression.BaseSpeed, cfg.Progression.MaxSpeed-2)
		cfg.Progression.Acceleration /= 2
	case DifficultyHard:
		cfg.Player.StartHealth = max(1, cfg.Player.StartHealth-1)
		cfg.Progression.Acceleration *= 2
		cfg.Progression.SpawnChanceMin = max(1, cfg.Progression.SpawnChanceMin-2)
	case DifficultyFixed:
		cfg.Progression.Acceleration = 0
	}
}
