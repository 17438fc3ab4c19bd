package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every runtime knob. DataDir defaults to the working
// directory so the data file survives restarts during local development;
// hosted deployments point it at a writable temp directory and accept
// that the contents vanish with the instance.
type Config struct {
	Port       string `env:"PORT"`
	DataDir    string `env:"DATA_DIR"`
	BcryptCost int    `env:"BCRYPT_COST"`
}

// Load reads configuration from the environment, pulling in a .env file
// first when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Port == "" {
		cfg.Port = "4000"
	}

	if cfg.DataDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		cfg.DataDir = wd
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = 10
	}

	return &cfg, nil
}
