package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			ShowTimestamps: boolPtr(true),
			FlashSeconds:   3,
		},
		Dice: DiceConfig{
			MaxDice:  100,
			MaxSides: 1000,
			// Seed 0 means "seed from the clock" — the interactive default.
			Seed: 0,
		},
	}
}
