package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files, flags and environment variables.
type Config struct {
	Env         string `mapstructure:"env"`          // current application environment (local, dev, production etc)
	LogLevel    string `mapstructure:"log_level"`    // minimum log level: debug, info, warn, error
	CatalogPath string `mapstructure:"catalog_path"` // optional YAML/JSON catalog; empty selects the built-in one
	Seed        int64  `mapstructure:"seed"`         // random seed; zero means seeded from the clock
	Quiz        Quiz   `mapstructure:"quiz"`         // quiz configuration section
}

// Quiz contains shopping list generation parameters.
type Quiz struct {
	MinQuantity int `mapstructure:"min_quantity"` // smallest random quantity per entry
	MaxQuantity int `mapstructure:"max_quantity"` // largest random quantity per entry
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("quiz", pflag.ContinueOnError)
	fs.String("env", "local", "application environment")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("catalog", "", "path to a YAML or JSON item catalog")
	fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
	return fs
}

// Load reads configuration from config files, .env, environment variables
// and flags, in increasing order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// A missing .env file is fine: variables may come from the real environment.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog_path", "")
	v.SetDefault("seed", 0)
	v.SetDefault("quiz.min_quantity", 1)
	v.SetDefault("quiz.max_quantity", 9)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")

	// Flags override everything else when set.
	if fs != nil {
		for key, flag := range map[string]string{
			"env":          "env",
			"log_level":    "log-level",
			"catalog_path": "catalog",
			"seed":         "seed",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", flag, err)
				}
			}
		}
	}

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Quiz.MinQuantity < 1 || cfg.Quiz.MaxQuantity < cfg.Quiz.MinQuantity {
		return nil, fmt.Errorf("%w: quantity range [%d, %d]", ErrInvalidConfig, cfg.Quiz.MinQuantity, cfg.Quiz.MaxQuantity)
	}

	return &cfg, nil
}
