package config

type Config struct {
	UI   UIConfig   `yaml:"ui"`
	Dice DiceConfig `yaml:"dice"`
}

type UIConfig struct {
	ShowTimestamps *bool `yaml:"show_timestamps"`
	FlashSeconds   int   `yaml:"flash_seconds"`
}

type DiceConfig struct {
	MaxDice  int   `yaml:"max_dice"`
	MaxSides int   `yaml:"max_sides"`
	Seed     int64 `yaml:"seed"`
}
