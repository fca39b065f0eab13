// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibflexconfig provides configuration parsing and validation for ibflex.
//
// Configuration is stored at ibflex.yaml within the base directory (--dir flag).
package ibflexconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bufdev/ibflex/internal/ibflex/ibflexpath"
	"github.com/bufdev/ibflex/internal/pkg/backoff"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflexquery"
	"github.com/bufdev/ibflex/internal/standard/xos"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDateTimeSeparator is the separator between the date and time parts
	// of Flex date-times when parse.date_time_separator is not set.
	DefaultDateTimeSeparator = ";"
	// DefaultTimeZone is the time zone used when parse.time_zone is not set.
	DefaultTimeZone = "UTC"
)

// ErrConfigNotFound is returned by ReadConfig if the base directory has no config file.
var ErrConfigNotFound = errors.New("configuration file not found")

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# IBKR Flex Query configuration.
#
# Required. Create Flex Queries at https://www.interactivebrokers.com
# under Performance & Reports > Flex Queries, with XML output format.
#
# The Flex Web Service token is read from the IBKR_TOKEN environment variable,
# or from env_file if the environment does not set it.
ibkr:
  # The Activity Flex Query ID (visible next to your query name in the IBKR portal).
  #
  # Required.
  activity_query_id: ""
  # The Trade Confirmation Flex Query ID.
  #
  # Optional. If set, "ibflex download" also downloads trade confirmations.
  # trade_confirmation_query_id: ""
  # A dotenv file containing IBKR_TOKEN.
  #
  # Optional. A leading ~ is expanded to the home directory.
  # env_file: ~/.config/ibflex/.env
# Flex Web Service download configuration.
#
# Optional. The values below are the defaults.
# download:
#   max_attempts: 10
#   initial_retry_delay: 2s
#   max_retry_delay: 30s
#   requests_per_minute: 10
# Statement parsing configuration.
#
# Optional. The values below are the defaults.
# parse:
#   # The separator between date and time in date-times, as configured
#   # in the Flex Query delivery settings. Date-times with no separator
#   # (YYYYMMDDHHMMSS) are accepted with any value.
#   date_time_separator: ";"
#   # The IANA time zone that Flex date-times are interpreted in.
#   time_zone: UTC
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// IBKR holds the Interactive Brokers Flex Query configuration.
	IBKR ExternalIBKRConfig `yaml:"ibkr"`
	// Download holds the Flex Web Service download configuration.
	Download ExternalDownloadConfig `yaml:"download"`
	// Parse holds the statement parsing configuration.
	Parse ExternalParseConfig `yaml:"parse"`
}

// ExternalIBKRConfig holds IBKR-specific configuration.
type ExternalIBKRConfig struct {
	// ActivityQueryID is the Activity Flex Query ID.
	ActivityQueryID string `yaml:"activity_query_id"`
	// TradeConfirmationQueryID is the optional Trade Confirmation Flex Query ID.
	TradeConfirmationQueryID string `yaml:"trade_confirmation_query_id"`
	// EnvFile is an optional dotenv file that supplies IBKR_TOKEN.
	EnvFile string `yaml:"env_file"`
}

// ExternalDownloadConfig holds download retry and pacing configuration.
type ExternalDownloadConfig struct {
	MaxAttempts       int    `yaml:"max_attempts"`
	InitialRetryDelay string `yaml:"initial_retry_delay"`
	MaxRetryDelay     string `yaml:"max_retry_delay"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

// ExternalParseConfig holds statement parsing configuration.
type ExternalParseConfig struct {
	DateTimeSeparator string `yaml:"date_time_separator"`
	TimeZone          string `yaml:"time_zone"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// DirPath is the base directory containing ibflex.yaml.
	DirPath string
	// ActivityQueryID is the Activity Flex Query ID.
	ActivityQueryID string
	// TradeConfirmationQueryID is the Trade Confirmation Flex Query ID, or empty.
	TradeConfirmationQueryID string
	// EnvFilePath is the home-expanded dotenv file path, or empty.
	EnvFilePath string
	// RetryPolicy is the retry policy for each Flex Web Service call.
	RetryPolicy backoff.Policy
	// RequestsPerMinute paces Flex Web Service requests.
	RequestsPerMinute int
	// DateTimeSeparator is the separator between date and time in Flex date-times.
	DateTimeSeparator string
	// Location is the time zone Flex date-times are interpreted in.
	Location *time.Location
}

// ParseOptions returns the ibkrflex parse options for the config.
func (c *Config) ParseOptions() []ibkrflex.ParseOption {
	return []ibkrflex.ParseOption{
		ibkrflex.WithDateTimeSeparator(c.DateTimeSeparator),
		ibkrflex.WithLocation(c.Location),
	}
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
//
// The dirPath is the base directory the config was read from.
func NewConfig(dirPath string, externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	if externalConfig.IBKR.ActivityQueryID == "" {
		return nil, errors.New("ibkr.activity_query_id is required")
	}
	var envFilePath string
	if externalConfig.IBKR.EnvFile != "" {
		var err error
		envFilePath, err = xos.ExpandHome(externalConfig.IBKR.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("ibkr.env_file: %w", err)
		}
	}
	retryPolicy, err := newRetryPolicy(externalConfig.Download)
	if err != nil {
		return nil, err
	}
	requestsPerMinute := externalConfig.Download.RequestsPerMinute
	switch {
	case requestsPerMinute < 0:
		return nil, fmt.Errorf("download.requests_per_minute must not be negative, got %d", requestsPerMinute)
	case requestsPerMinute == 0:
		requestsPerMinute = ibkrflexquery.DefaultRequestsPerMinute
	}
	dateTimeSeparator := externalConfig.Parse.DateTimeSeparator
	if dateTimeSeparator == "" {
		dateTimeSeparator = DefaultDateTimeSeparator
	}
	timeZone := externalConfig.Parse.TimeZone
	if timeZone == "" {
		timeZone = DefaultTimeZone
	}
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("parse.time_zone %q: %w", timeZone, err)
	}
	return &Config{
		DirPath:                  dirPath,
		ActivityQueryID:          externalConfig.IBKR.ActivityQueryID,
		TradeConfirmationQueryID: externalConfig.IBKR.TradeConfirmationQueryID,
		EnvFilePath:              envFilePath,
		RetryPolicy:              retryPolicy,
		RequestsPerMinute:        requestsPerMinute,
		DateTimeSeparator:        dateTimeSeparator,
		Location:                 location,
	}, nil
}

// ReadConfig reads and validates the configuration file from the given base directory.
// Returns a clear error message directing users to run "ibflex config init" if the file is missing.
func ReadConfig(dirPath string) (*Config, error) {
	filePath := ibflexpath.ConfigFilePath(dirPath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s, run \"ibflex config init\" to create one", ErrConfigNotFound, filePath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return NewConfig(dirPath, externalConfig)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the base directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(dirPath string) (string, error) {
	filePath := ibflexpath.ConfigFilePath(dirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfig reads and validates the configuration file from the given base directory.
func ValidateConfig(dirPath string) error {
	_, err := ReadConfig(dirPath)
	return err
}

// *** PRIVATE ***

func newRetryPolicy(externalDownloadConfig ExternalDownloadConfig) (backoff.Policy, error) {
	policy := ibkrflexquery.DefaultRetryPolicy
	if externalDownloadConfig.MaxAttempts != 0 {
		policy.MaxAttempts = externalDownloadConfig.MaxAttempts
	}
	if externalDownloadConfig.InitialRetryDelay != "" {
		delay, err := time.ParseDuration(externalDownloadConfig.InitialRetryDelay)
		if err != nil {
			return backoff.Policy{}, fmt.Errorf("download.initial_retry_delay: %w", err)
		}
		policy.InitialDelay = delay
	}
	if externalDownloadConfig.MaxRetryDelay != "" {
		delay, err := time.ParseDuration(externalDownloadConfig.MaxRetryDelay)
		if err != nil {
			return backoff.Policy{}, fmt.Errorf("download.max_retry_delay: %w", err)
		}
		policy.MaxDelay = delay
	}
	if err := policy.Validate(); err != nil {
		return backoff.Policy{}, fmt.Errorf("download: %w", err)
	}
	return policy, nil
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
