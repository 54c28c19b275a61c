package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds process configuration loaded from environment variables.
// The schedule itself comes from the file given on the command line.
type Config struct {
	GalaxyURL    string        `envconfig:"GALAXY_URL" default:"https://usegalaxy.ca"`
	GalaxyAPIKey string        `envconfig:"GALAXY_ADMIN_API_KEY"`
	TrainingRole string        `envconfig:"TRAINING_ROLE" default:"training"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// Load reads environment variables into Config. requireKey is set when the
// run will talk to Galaxy; dry runs work without an API key.
func Load(requireKey bool) (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if requireKey && cfg.GalaxyAPIKey == "" {
		return cfg, errors.New("GALAXY_ADMIN_API_KEY not set")
	}
	return cfg, nil
}
