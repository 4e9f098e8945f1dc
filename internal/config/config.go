// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/iwvelando/loan-amortizer/pkg/constants"
	"github.com/iwvelando/loan-amortizer/pkg/datetime"
	"github.com/iwvelando/loan-amortizer/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for loan-amortizer.
type Configuration struct {
	Loan          Loan
	ExtraPayments []ExtraPayment `yaml:"extraPayments,omitempty"`
	Logging       LoggingConfig  `yaml:"logging,omitempty"`
	Output        OutputConfig   `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, xlsx
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// TermMonths returns the loan term converted to monthly payments.
func (conf *Configuration) TermMonths() (int, error) {
	return amortization.TermToMonths(conf.Loan.Term, conf.Loan.TermUnit)
}

// HasExtraPayments reports whether any extra payment event is configured.
func (conf *Configuration) HasExtraPayments() bool {
	return len(conf.ExtraPayments) > 0
}

// Validate checks the parts of the configuration that cannot be handled by the
// calculator itself: the term unit, the start date and the extra payments.
func (conf *Configuration) Validate() error {
	if _, err := conf.TermMonths(); err != nil {
		return err
	}
	if conf.Loan.StartDate != "" {
		if err := datetime.ValidateDate(conf.Loan.StartDate); err != nil {
			return fmt.Errorf("loan start date: %w", err)
		}
	}
	for _, event := range conf.ExtraPayments {
		if err := event.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	termMonths, err := conf.TermMonths()
	if err != nil {
		return warnings
	}

	if conf.HasExtraPayments() {
		if warning := validation.RateWarning(conf.Loan.AnnualRate); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	for _, event := range conf.ExtraPayments {
		if event.StartPayment > termMonths {
			warnings = append(warnings, fmt.Sprintf("Extra payment '%s' starts at payment %d after the %d payment term",
				event.Name, event.StartPayment, termMonths))
		}
	}

	return warnings
}
