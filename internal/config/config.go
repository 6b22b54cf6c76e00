//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-bankgen.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pgEdge/pgedge-bankgen/internal/bank"
	"github.com/pgEdge/pgedge-bankgen/internal/profiles"
)

// DateLayout is the format of every date in the configuration.
const DateLayout = time.DateOnly

// Config holds all configuration for pgedge-bankgen.
type Config struct {
	// Connection is the PostgreSQL connection string used by load.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Generate holds the dataset parameters.
	Generate GenerateConfig `mapstructure:"generate"`

	// Output holds configuration for CSV output.
	Output OutputConfig `mapstructure:"output"`

	// Load holds configuration for the load subcommand.
	Load LoadConfig `mapstructure:"load"`

	// Upload holds configuration for publishing CSV files to object storage.
	Upload UploadConfig `mapstructure:"upload"`
}

// GenerateConfig holds the parameters of a generated dataset.
type GenerateConfig struct {
	// Seed fixes every random value of the dataset.
	Seed int64 `mapstructure:"seed"`

	// CustomerCount is the number of customers to generate.
	CustomerCount int `mapstructure:"customer_count" validate:"gte=0"`

	// TransactionYears is the length of the transaction window, used when
	// StartDate is not set.
	TransactionYears int `mapstructure:"transaction_years" validate:"gte=1,lte=100"`

	// StartDate is the first day of the transaction window (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date" validate:"omitempty,datetime=2006-01-02"`

	// EndDate is the last day of the transaction window (YYYY-MM-DD).
	EndDate string `mapstructure:"end_date" validate:"required,datetime=2006-01-02"`

	// AsOf is the date treated as today. Defaults to EndDate.
	AsOf string `mapstructure:"as_of" validate:"omitempty,datetime=2006-01-02"`

	// ClampToWindow starts transaction histories no earlier than StartDate.
	ClampToWindow bool `mapstructure:"clamp_to_window"`

	// Chronological applies transactions to balances in timestamp order.
	Chronological bool `mapstructure:"chronological"`

	// HourlyProfile names the time-of-day profile for transaction hours.
	HourlyProfile string `mapstructure:"hourly_profile" validate:"required"`

	// Timezone is the timezone the hourly profile is evaluated in.
	Timezone string `mapstructure:"timezone"`

	// DayOfWeek weights transaction days by the hourly profile's activity
	// on each day of the week. Off spreads transactions evenly over days.
	DayOfWeek bool `mapstructure:"day_of_week"`
}

// OutputConfig holds configuration for CSV output.
type OutputConfig struct {
	// Dir is the directory CSV files are written to.
	Dir string `mapstructure:"dir" validate:"required"`
}

// LoadConfig holds configuration for loading into PostgreSQL.
type LoadConfig struct {
	// DropExisting drops existing dataset tables before loading.
	DropExisting bool `mapstructure:"drop_existing"`
}

// UploadConfig holds configuration for an S3 compatible object store.
type UploadConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// uploadRules are checked only when uploading.
type uploadRules struct {
	Endpoint string `validate:"required,hostname_port"`
	Bucket   string `validate:"required,min=3,max=63"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Seed:             42,
			CustomerCount:    10000,
			TransactionYears: 5,
			EndDate:          "2025-12-31",
			HourlyProfile:    profiles.DefaultProfile,
			Timezone:         "UTC",
		},
		Output: OutputConfig{
			Dir: "banking_data",
		},
		Upload: UploadConfig{
			UseSSL: true,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-bankgen.yaml
// 3. ~/.config/pgedge-bankgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-bankgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-bankgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// validationError turns validator output into a single readable error.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", field, fe.Tag(), fe.Value()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Validate checks the generation settings shared by every command.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError(err)
	}

	if _, _, _, err := c.Generate.Window(); err != nil {
		return err
	}

	if _, err := profiles.Get(c.Generate.HourlyProfile, c.Generate.Timezone); err != nil {
		return fmt.Errorf("invalid hourly profile: %w", err)
	}

	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateUpload checks configuration required to upload CSV files.
func (c *Config) ValidateUpload() error {
	if err := c.Validate(); err != nil {
		return err
	}
	rules := uploadRules{Endpoint: c.Upload.Endpoint, Bucket: c.Upload.Bucket}
	if err := validate.Struct(rules); err != nil {
		return validationError(err)
	}
	return nil
}

// Window returns the transaction window and the as-of date. Without an
// explicit start date the window covers TransactionYears calendar years
// ending with the end date's year.
func (g GenerateConfig) Window() (start, end, asOf time.Time, err error) {
	end, err = time.Parse(DateLayout, g.EndDate)
	if err != nil {
		return start, end, asOf, fmt.Errorf("invalid end_date: %w", err)
	}

	if g.StartDate != "" {
		start, err = time.Parse(DateLayout, g.StartDate)
		if err != nil {
			return start, end, asOf, fmt.Errorf("invalid start_date: %w", err)
		}
	} else {
		start = time.Date(end.Year()-g.TransactionYears+1, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	if end.Before(start) {
		return start, end, asOf, fmt.Errorf("end_date %s is before start_date %s",
			end.Format(DateLayout), start.Format(DateLayout))
	}

	asOf = end
	if g.AsOf != "" {
		asOf, err = time.Parse(DateLayout, g.AsOf)
		if err != nil {
			return start, end, asOf, fmt.Errorf("invalid as_of: %w", err)
		}
	}

	return start, end, asOf, nil
}

// BankOptions converts the generation settings into generator options.
func (g GenerateConfig) BankOptions() (bank.Options, error) {
	start, end, asOf, err := g.Window()
	if err != nil {
		return bank.Options{}, err
	}

	p, err := profiles.Get(g.HourlyProfile, g.Timezone)
	if err != nil {
		return bank.Options{}, fmt.Errorf("invalid hourly profile: %w", err)
	}

	opts := bank.Options{
		CustomerCount: g.CustomerCount,
		StartDate:     start,
		EndDate:       end,
		AsOf:          asOf,
		ClampToWindow: g.ClampToWindow,
		Chronological: g.Chronological,
		HourWeights:   profiles.HourWeights(p),
	}
	if g.DayOfWeek {
		opts.DayWeights = profiles.DayWeights(p)
	}
	return opts, nil
}
