package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players   []string      `yaml:"players" env:"GOOSE_PLAYERS" env-separator:"," env-default:"P1,P2"`
	Seed      int64         `yaml:"seed" env:"GOOSE_SEED" env-default:"0"`
	TurnDelay time.Duration `yaml:"turn-delay" env:"GOOSE_TURN_DELAY" env-default:"0s"`
	MaxTurns  int           `yaml:"max-turns" env:"GOOSE_MAX_TURNS" env-default:"0"`
	NoColor   bool          `yaml:"no-color" env:"GOOSE_NO_COLOR" env-default:"false"`
	Redis     Redis         `yaml:"redis"`
}

// Redis configures the optional results ledger.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load reads the YAML file at path, then applies environment overrides and
// defaults. A missing file falls back to environment and defaults only.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
