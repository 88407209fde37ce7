package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Cache    Cache  `yaml:"cache"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	// BoardSize of 0 asks the player for the size.
	BoardSize    int  `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"0"`
	MaxDepth     int  `yaml:"max-depth" env:"GAME_MAX_DEPTH" env-default:"6"`
	MaxBoardSize int  `yaml:"max-board-size" env:"GAME_MAX_BOARD_SIZE" env-default:"7"`
	Parallel     bool `yaml:"parallel" env:"GAME_PARALLEL" env-default:"false"`
}

type Cache struct {
	Driver string `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// Load reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
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

func (that *Config) Validate() error {
	if that.Game.MaxDepth < 1 {
		return fmt.Errorf("%w: max-depth must be at least 1, got %d", ErrInvalidConfig, that.Game.MaxDepth)
	}

	if that.Game.MaxBoardSize < 1 {
		return fmt.Errorf("%w: max-board-size must be at least 1, got %d", ErrInvalidConfig, that.Game.MaxBoardSize)
	}

	if that.Game.BoardSize < 0 || that.Game.BoardSize > that.Game.MaxBoardSize {
		return fmt.Errorf("%w: board-size must be within 0..%d, got %d", ErrInvalidConfig, that.Game.MaxBoardSize, that.Game.BoardSize)
	}

	switch that.Cache.Driver {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("%w: unknown cache driver %q", ErrInvalidConfig, that.Cache.Driver)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
