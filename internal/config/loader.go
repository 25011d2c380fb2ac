package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory for file discovery. This
// is the testable entry point — Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first
// config file that exists. Empty string means defaults-only mode.
func discoverConfigPath(dir string) (string, error) {
	// 1. ./d20roll.yaml
	local := filepath.Join(dir, "d20roll.yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	// 2. ~/.config/d20roll/config.yaml
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "d20roll", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge applies override onto base. Scalar fields override when non-zero;
// pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	if override.UI.ShowTimestamps != nil {
		base.UI.ShowTimestamps = override.UI.ShowTimestamps
	}
	if override.UI.FlashSeconds != 0 {
		base.UI.FlashSeconds = override.UI.FlashSeconds
	}

	if override.Dice.MaxDice != 0 {
		base.Dice.MaxDice = override.Dice.MaxDice
	}
	if override.Dice.MaxSides != 0 {
		base.Dice.MaxSides = override.Dice.MaxSides
	}
	if override.Dice.Seed != 0 {
		base.Dice.Seed = override.Dice.Seed
	}
}

// applyEnvOverrides applies D20ROLL_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("D20ROLL_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Dice.Seed = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: D20ROLL_SEED=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("D20ROLL_MAX_DICE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dice.MaxDice = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: D20ROLL_MAX_DICE=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("D20ROLL_MAX_SIDES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dice.MaxSides = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: D20ROLL_MAX_SIDES=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("D20ROLL_FLASH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.FlashSeconds = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: D20ROLL_FLASH_SECONDS=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("D20ROLL_SHOW_TIMESTAMPS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.ShowTimestamps = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: D20ROLL_SHOW_TIMESTAMPS=%q is not a valid boolean, ignoring\n", v)
		}
	}
}
