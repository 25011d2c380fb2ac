package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency. All checks run —
// errors are collected, not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	if cfg.UI.FlashSeconds <= 0 {
		errs = append(errs, "ui.flash_seconds must be positive")
	}
	if cfg.Dice.MaxDice <= 0 {
		errs = append(errs, "dice.max_dice must be positive")
	}
	if cfg.Dice.MaxSides < 2 {
		errs = append(errs, "dice.max_sides must be at least 2")
	}
	if cfg.Dice.Seed < 0 {
		errs = append(errs, "dice.seed must not be negative")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
