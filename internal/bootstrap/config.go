package bootstrap

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	DefaultBoardSize   int     `mapstructure:"DEFAULT_BOARD_SIZE"`
	Komi               float64 `mapstructure:"KOMI"`
	ScoreCaptures      bool    `mapstructure:"SCORE_CAPTURES"`
	DefaultDifficulty  string  `mapstructure:"DEFAULT_DIFFICULTY"`
	AIEasyRandomChance float64 `mapstructure:"AI_EASY_RANDOM_CHANCE"`
	AIEasyJitter       float64 `mapstructure:"AI_EASY_JITTER"`
	AIMediumJitter     float64 `mapstructure:"AI_MEDIUM_JITTER"`
	AIHardJitter       float64 `mapstructure:"AI_HARD_JITTER"`
	AIHardDepth        int     `mapstructure:"AI_HARD_DEPTH"`
	AIHardMaxNodes     int     `mapstructure:"AI_HARD_MAX_NODES"`
	AISeed             int64   `mapstructure:"AI_SEED"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	viper.SetDefault("DEFAULT_BOARD_SIZE", 19)
	viper.SetDefault("KOMI", 6.5)
	viper.SetDefault("SCORE_CAPTURES", true)
	viper.SetDefault("DEFAULT_DIFFICULTY", "medium")
	viper.SetDefault("AI_EASY_RANDOM_CHANCE", 0.3)
	viper.SetDefault("AI_EASY_JITTER", 5.0)
	viper.SetDefault("AI_MEDIUM_JITTER", 3.0)
	viper.SetDefault("AI_HARD_JITTER", 0.5)
	viper.SetDefault("AI_HARD_DEPTH", 1)
	viper.SetDefault("AI_HARD_MAX_NODES", 2500)
	viper.SetDefault("AI_SEED", 0)

	// A missing config file is fine, the defaults above describe a playable game.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
