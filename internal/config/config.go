package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverNone   = "none"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"

	FormatJSON = "json"
	FormatText = "text"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string      `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Board     Board       `yaml:"board"`
	Storage   Storage     `yaml:"storage"`
	Redis     Redis       `yaml:"redis"`
	Tables    []TablePair `yaml:"tables"`
}

type Board struct {
	Size         int    `yaml:"size" env:"BOARD_SIZE" env-default:"3"`
	WinningLen   int    `yaml:"winning-len" env:"BOARD_WINNING_LEN" env-default:"3"`
	StartingMark string `yaml:"starting-mark" env:"BOARD_STARTING_MARK" env-default:"X"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"none"`
	SQLitePath string `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:"./data/patterns.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// TablePair is a (size, winning length) table to keep precomputed.
type TablePair struct {
	Size       int `yaml:"size"`
	WinningLen int `yaml:"winning-len"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path with environment overrides. A missing file
// leaves the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogFormat {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, that.LogFormat)
	}

	switch that.Storage.Driver {
	case DriverNone, DriverRedis, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, that.Storage.Driver)
	}

	if err := that.Board.Validate(); err != nil {
		return err
	}

	for _, pair := range that.Tables {
		if err := validatePair(pair.Size, pair.WinningLen); err != nil {
			return err
		}
	}

	return nil
}

func (that *Board) Validate() error {
	if err := validatePair(that.Size, that.WinningLen); err != nil {
		return err
	}

	if that.StartingMark != "X" && that.StartingMark != "O" {
		return fmt.Errorf("%w: starting mark must be X or O, got %q", ErrInvalidConfig, that.StartingMark)
	}

	return nil
}

// TablePairs returns the configured tables, or just the board's when none are listed.
func (that *Config) TablePairs() []TablePair {
	if len(that.Tables) == 0 {
		return []TablePair{{Size: that.Board.Size, WinningLen: that.Board.WinningLen}}
	}

	return that.Tables
}

func validatePair(size, winningLen int) error {
	if size <= 0 || winningLen <= 0 || winningLen > size {
		return fmt.Errorf("%w: board %dx%d cannot have a winning length of %d", ErrInvalidConfig, size, size, winningLen)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
