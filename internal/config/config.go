// =============================================================================
// Ventas POS - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Settings come from, in
// increasing order of precedence:
//   1. Built-in defaults
//   2. The YAML config file (config.yaml by default; optional)
//   3. Environment variables, optionally loaded from a .env file
//
// ENVIRONMENT VARIABLES:
//   POS_STATE_DIR    - directory of the persisted state
//   POS_EXPORT_DIR   - directory where exported workbooks are written
//   POS_LOG_LEVEL    - debug, info, warn, error
//   POS_LISTEN_ADDR  - address of the HTTP surface
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// StateDir holds the persisted catalog, cart and ticket info.
	// Default: "./state"
	StateDir string `yaml:"state_dir"`

	// ExportDir is where stock and sale workbooks are written.
	// Default: "./exports"
	ExportDir string `yaml:"export_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// SALE SETTINGS
	// =========================================================================

	// DefaultCustomer is the customer printed on tickets when none is set.
	// Default: "Consumidor Final"
	DefaultCustomer string `yaml:"default_customer"`

	// =========================================================================
	// HTTP SETTINGS
	// =========================================================================

	// ListenAddr is the address used by the serve command.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// =========================================================================
	// IMPORT SETTINGS
	// =========================================================================

	// CSVSettings applies to catalog imports from .csv files.
	CSVSettings CSVSettings `yaml:"csv_settings"`
}

// CSVSettings contains settings for reading CSV catalogs.
type CSVSettings struct {
	// Delimiter separates fields.
	// Common values: "," (comma), ";" (semicolon), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyMainConfigDefaults(cfg)
	return cfg
}

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. A missing file is not
//     an error; defaults and environment variables are used instead.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be parsed or the directories cannot be
//     created.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	// Keys missing from the file keep their defaults; keys set to an empty
	// value get them back in applyMainConfigDefaults.
	config := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Run on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(config)
	applyMainConfigDefaults(config)

	if err := validateMainConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadEnvFile loads variables from a .env file into the process
// environment. Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides copies non-empty environment variables over the file values.
func applyEnvOverrides(config *MainConfig) {
	overrides := map[string]*string{
		"POS_STATE_DIR":   &config.StateDir,
		"POS_EXPORT_DIR":  &config.ExportDir,
		"POS_LOG_LEVEL":   &config.LogLevel,
		"POS_LISTEN_ADDR": &config.ListenAddr,
	}
	for key, field := range overrides {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*field = value
		}
	}
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.StateDir == "" {
		config.StateDir = "./state"
	}
	if config.ExportDir == "" {
		config.ExportDir = "./exports"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.DefaultCustomer == "" {
		config.DefaultCustomer = "Consumidor Final"
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.CSVSettings.Delimiter == "" {
		config.CSVSettings.Delimiter = ","
	}
}

// validateMainConfig validates the configuration and creates missing directories.
func validateMainConfig(config *MainConfig) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", config.LogLevel)
	}

	for _, dir := range []string{config.StateDir, config.ExportDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
