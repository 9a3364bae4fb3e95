package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"marketplace/internal/domain"
)

// Prefix is prepended to every environment key, e.g. MARKET_DATA_DIR.
const Prefix = "market"

type Config struct {
	DataDir        string `envconfig:"DATA_DIR" default:"data"`
	Backend        string `envconfig:"BACKEND" default:"csv"`
	DBDSN          string `envconfig:"DB_DSN" default:"marketplace.db"`
	LogFile        string `envconfig:"LOG_FILE" default:"marketplace.log"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	PasswordScheme string `envconfig:"PASSWORD_SCHEME" default:"plain"`
}

// Load reads envFile when it exists and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	var cfg Config
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return cfg, errors.Wrapf(domain.ErrValidation, "read %s: %v", envFile, err)
		}
	}
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return cfg, errors.Wrapf(domain.ErrValidation, "environment: %v", err)
	}
	return cfg, nil
}
