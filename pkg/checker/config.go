package checker

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries environment-driven defaults for batch checks. Hosts that
// prefer configuration over code can parse it once at startup and convert it
// with Options.
type Config struct {
	StopOnFirstFailure bool `env:"CHECKER_STOP_ON_FIRST_FAILURE" envDefault:"false"` // stop the batch after the first broken rule
	Parallel           bool `env:"CHECKER_PARALLEL" envDefault:"false"`              // evaluate async batches concurrently
}

// LoadConfig parses the checker configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrConfigParse, err)
	}
	return cfg, nil
}

// LoadConfigFromFiles loads the given dotenv files into the environment and
// then parses the configuration. Variables already present in the
// environment take precedence over file values, and among the files the
// first occurrence of a key wins.
func LoadConfigFromFiles(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		return Config{}, errors.Join(ErrConfigLoad, err)
	}
	return LoadConfig()
}

// Options converts the configuration into checker options.
func (c Config) Options() []Option {
	var opts []Option
	if c.StopOnFirstFailure {
		opts = append(opts, WithStopOnFirstFailure())
	}
	if c.Parallel {
		opts = append(opts, WithParallel())
	}
	return opts
}
