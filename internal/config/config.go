// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-simulator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-simulator.
type Configuration struct {
	Scenarios []Scenario    `yaml:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// Scenario holds the loan parameters for one simulation. InterestRate is a
// percentage as typed by a user (2.3 for 2.3%).
type Scenario struct {
	Name          string  `yaml:"name"`
	Active        bool    `yaml:"active"`
	Principal     float64 `yaml:"principal"`
	InterestRate  float64 `yaml:"interestRate"`
	TermYears     int     `yaml:"termYears"`
	MonthlyBudget float64 `yaml:"monthlyBudget,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Values may be overridden from the environment, e.g.
// MORTGAGE_LOGGING_LEVEL=debug. A missing file yields an error wrapping
// fs.ErrNotExist.
func LoadConfiguration(configPath string) (*Configuration, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	defer file.Close()

	return LoadConfigurationFromReader(file)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

// LoadEnvironment builds a configuration with no file, from environment
// overrides alone. It has no scenarios.
func LoadEnvironment() (*Configuration, error) {
	return decode(newViper())
}

// Default returns a configuration with a single active scenario using the
// built-in loan defaults.
func Default() *Configuration {
	return &Configuration{
		Scenarios: []Scenario{{
			Name:         "default",
			Active:       true,
			Principal:    constants.DefaultPrincipal,
			InterestRate: constants.DefaultInterestRate,
			TermYears:    constants.DefaultTermYears,
		}},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys must be known to viper for environment overrides to apply.
	for _, key := range []string{"logging.level", "logging.format", "logging.outputFile", "output.format"} {
		v.SetDefault(key, "")
	}
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ActiveScenarios returns the scenarios flagged as active, in file order.
func (c *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}
