package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Board    Board  `yaml:"board"`
	Redis    Redis  `yaml:"redis"`
}

// Board - size of one cell on the terminal, in character cells.
type Board struct {
	CellWidth  int `yaml:"cell-width" env:"CELL_WIDTH" env-default:"7"`
	CellHeight int `yaml:"cell-height" env:"CELL_HEIGHT" env-default:"3"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB      int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

var ErrInvalidCellSize = errors.New("cell size must be at least 3x3")

// MustLoad - loads config.yml when it exists, otherwise the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if config.Board.CellWidth < 3 || config.Board.CellHeight < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidCellSize, config.Board.CellWidth, config.Board.CellHeight)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
