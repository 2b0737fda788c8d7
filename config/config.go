package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bcdannyboy/gbmc/positions"
	"github.com/bcdannyboy/gbmc/probability"
	"github.com/joho/godotenv"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	S0             float64 // Initial stock price
	Strike         float64
	Rate           float64 // Risk-free interest rate
	Sigma          float64 // Volatility of the stock
	Maturity       float64 // Time to maturity in years
	NumSimulations int

	// Seed is used only when HasSeed is set; otherwise the generator is
	// seeded from the system entropy source.
	Seed    uint64
	HasSeed bool

	Output   string
	Progress bool
	LogLevel slog.Level
}

// Default returns the parameters the pricer runs with when nothing is
// configured.
func Default() *Config {
	return &Config{
		S0:             100.0,
		Strike:         100.0,
		Rate:           0.05,
		Sigma:          0.2,
		Maturity:       1,
		NumSimulations: 100000,
		Output:         OutputText,
		LogLevel:       slog.LevelWarn,
	}
}

// Load reads .env from the working directory when present and applies
// environment overrides on top of Default.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

func LoadFiles(filenames ...string) (*Config, error) {
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	floats := []struct {
		key string
		dst *float64
	}{
		{"MC_S0", &c.S0},
		{"MC_STRIKE", &c.Strike},
		{"MC_RATE", &c.Rate},
		{"MC_SIGMA", &c.Sigma},
		{"MC_MATURITY", &c.Maturity},
	}
	for _, f := range floats {
		if *f.dst, err = getEnvFloat(f.key, *f.dst); err != nil {
			return err
		}
	}

	if c.NumSimulations, err = getEnvInt("MC_SIMULATIONS", c.NumSimulations); err != nil {
		return err
	}

	if v, ok := lookupEnv("MC_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MC_SEED %q: %w", v, err)
		}
		c.Seed, c.HasSeed = seed, true
	}

	if v, ok := lookupEnv("MC_OUTPUT"); ok {
		c.Output = strings.ToLower(v)
	}

	if c.Progress, err = getEnvBool("MC_PROGRESS", c.Progress); err != nil {
		return err
	}

	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	return nil
}

// Validate checks the output mode and the pricing parameters for both option
// kinds.
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("unsupported output %q, want %q or %q", c.Output, OutputText, OutputJSON)
	}
	return c.Params(positions.Call).Validate()
}

func (c *Config) Params(kind positions.OptionKind) probability.Params {
	return probability.Params{
		S0:             c.S0,
		K:              c.Strike,
		R:              c.Rate,
		Sigma:          c.Sigma,
		T:              c.Maturity,
		NumSimulations: c.NumSimulations,
		Kind:           kind,
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	v, ok := lookupEnv(key)
	if !ok {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v, ok := lookupEnv(key)
	if !ok {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return i, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	v, ok := lookupEnv(key)
	if !ok {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
