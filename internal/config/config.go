package config

import (
	"encoding/json"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"rngbias/internal/errors"
)

// Config holds the recognized evaluation options. Precedence, lowest to
// highest: built-in defaults, config file, RNGBIAS_* environment variables,
// CLI flags (applied by the command layer).
type Config struct {
	Variables   int       `yaml:"variables"`
	Objectives  [][]int   `yaml:"objectives"`
	Constraints []int     `yaml:"constraints"`
	LowerBounds []float64 `yaml:"lower_bounds"`
	UpperBounds []float64 `yaml:"upper_bounds"`
	Alpha       []float64 `yaml:"alpha"`
	Beta        []float64 `yaml:"beta"`
	Gamma       []float64 `yaml:"gamma"`
}

// Default returns the stock configuration: all fifteen features in one
// objective, dimensional tests 1-12 with the 10%/90% acceptance quantiles.
func Default() Config {
	objective := make([]int, 15)
	constraints := make([]int, 12)
	lower := make([]float64, 12)
	upper := make([]float64, 12)
	for i := range objective {
		objective[i] = i + 1
	}
	for i := range constraints {
		constraints[i] = i + 1
		lower[i] = 0.1
		upper[i] = 0.9
	}
	return Config{
		Variables:   50,
		Objectives:  [][]int{objective},
		Constraints: constraints,
		LowerBounds: lower,
		UpperBounds: upper,
		Alpha:       []float64{2, 2, 2, 2, 2, 27, 5, 0, 0, 1, 0, 0, 1, 0, 0},
		Beta:        []float64{5, 5, 5, 5, 5, 30, 8, 1, 0, 3, 0, 1, 2, 0, 0},
		Gamma:       []float64{3, 3, 3, 3, 3, 1, 1, 3, 10, 4, 4, 4, 4, 4, 4},
	}
}

// Load builds the configuration from defaults, an optional YAML config file
// and RNGBIAS_* environment variables. A missing config file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if cfg.Variables < 1 {
		return Config{}, errors.ConfigInvalid("variables must be at least 1")
	}
	return cfg, nil
}

// fileConfig uses pointer fields so absent keys leave defaults untouched.
type fileConfig struct {
	Variables   *int       `yaml:"variables"`
	Objectives  *[][]int   `yaml:"objectives"`
	Constraints *[]int     `yaml:"constraints"`
	LowerBounds *[]float64 `yaml:"lower_bounds"`
	UpperBounds *[]float64 `yaml:"upper_bounds"`
	Alpha       *[]float64 `yaml:"alpha"`
	Beta        *[]float64 `yaml:"beta"`
	Gamma       *[]float64 `yaml:"gamma"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}

	if fc.Variables != nil {
		c.Variables = *fc.Variables
	}
	if fc.Objectives != nil {
		c.Objectives = *fc.Objectives
	}
	if fc.Constraints != nil {
		c.Constraints = *fc.Constraints
	}
	if fc.LowerBounds != nil {
		c.LowerBounds = *fc.LowerBounds
	}
	if fc.UpperBounds != nil {
		c.UpperBounds = *fc.UpperBounds
	}
	if fc.Alpha != nil {
		c.Alpha = *fc.Alpha
	}
	if fc.Beta != nil {
		c.Beta = *fc.Beta
	}
	if fc.Gamma != nil {
		c.Gamma = *fc.Gamma
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error
	c.Variables, err = getEnvIntOrDefault("RNGBIAS_VARIABLES", c.Variables)
	if err != nil {
		return err
	}
	if err := getEnvJSON("RNGBIAS_OBJECTIVES", &c.Objectives); err != nil {
		return err
	}
	if err := getEnvJSON("RNGBIAS_CONSTRAINTS", &c.Constraints); err != nil {
		return err
	}
	if err := getEnvJSON("RNGBIAS_LOWER_BOUNDS", &c.LowerBounds); err != nil {
		return err
	}
	if err := getEnvJSON("RNGBIAS_UPPER_BOUNDS", &c.UpperBounds); err != nil {
		return err
	}
	if err := getEnvJSON("RNGBIAS_ALPHA", &c.Alpha); err != nil {
		return err
	}
	if err := getEnvJSON("RNGBIAS_BETA", &c.Beta); err != nil {
		return err
	}
	if err := getEnvJSON("RNGBIAS_GAMMA", &c.Gamma); err != nil {
		return err
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}

// getEnvJSON decodes a JSON-encoded list from the environment into dst,
// leaving dst untouched when the variable is unset.
func getEnvJSON(key string, dst interface{}) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return errors.Wrapf(err, "%s is not a valid JSON list", key)
	}
	return nil
}
