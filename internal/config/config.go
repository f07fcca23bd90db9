// Package config resolves lbghost settings from flags, LBGHOST_* environment
// variables, an optional YAML config file and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys. Flags, environment variables and config file entries
// share these names; environment variables use the LBGHOST_ prefix with
// dashes replaced by underscores.
const (
	KeyConfigFile            = "config"
	KeySnapshot              = "snapshot"
	KeyCompartments          = "compartments"
	KeyCSVPath               = "csv-path"
	KeyHTMLPath              = "html-path"
	KeyMetricsFile           = "metrics-file"
	KeyLogLevel              = "log-level"
	KeyVerbose               = "verbose"
	KeyUnknownBackendOffline = "unknown-backend-offline"
	KeyScoreCap              = "score-cap"
	KeyNoSpinner             = "no-spinner"
)

const (
	envPrefix       = "LBGHOST"
	appName         = "lbghost"
	fileTimestamp   = "20060102_150405"
	defaultLogLevel = "info"
)

// Disabled is the path value that turns off a report export.
const Disabled = "-"

// Config is the fully resolved runtime configuration.
type Config struct {
	SnapshotPath          string
	Compartments          []string
	CSVPath               string
	HTMLPath              string
	MetricsFile           string
	LogLevel              string
	Verbose               bool
	UnknownBackendOffline bool
	ScoreCap              int
	NoSpinner             bool
}

// CSVEnabled reports whether the CSV export should be written.
func (c Config) CSVEnabled() bool {
	return c.CSVPath != "" && c.CSVPath != Disabled
}

// HTMLEnabled reports whether the HTML report should be written.
func (c Config) HTMLEnabled() bool {
	return c.HTMLPath != "" && c.HTMLPath != Disabled
}

// EffectiveLogLevel returns debug when verbose output is requested.
func (c Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}

// SetDefaults registers default values on v. Report paths embed the
// timestamp of now.
func SetDefaults(v *viper.Viper, now time.Time) {
	stamp := now.Format(fileTimestamp)
	v.SetDefault(KeyCSVPath, fmt.Sprintf("oci_ghost_loadbalancers_%s.csv", stamp))
	v.SetDefault(KeyHTMLPath, fmt.Sprintf("oci_ghost_loadbalancers_report_%s.html", stamp))
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyUnknownBackendOffline, true)
	v.SetDefault(KeyScoreCap, 0)
	v.SetDefault(KeyNoSpinner, false)
}

// Load resolves the configuration held by v. A .env file in the working
// directory is applied first when present; variables already set in the
// environment take precedence over it.
func Load(v *viper.Viper, now time.Time) (Config, error) {
	if err := loadDotEnvIfPresent(".env"); err != nil {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v, now)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	cfg := Config{
		SnapshotPath:          strings.TrimSpace(v.GetString(KeySnapshot)),
		Compartments:          splitList(v.GetStringSlice(KeyCompartments)),
		CSVPath:               strings.TrimSpace(v.GetString(KeyCSVPath)),
		HTMLPath:              strings.TrimSpace(v.GetString(KeyHTMLPath)),
		MetricsFile:           strings.TrimSpace(v.GetString(KeyMetricsFile)),
		LogLevel:              v.GetString(KeyLogLevel),
		Verbose:               v.GetBool(KeyVerbose),
		UnknownBackendOffline: v.GetBool(KeyUnknownBackendOffline),
		ScoreCap:              v.GetInt(KeyScoreCap),
		NoSpinner:             v.GetBool(KeyNoSpinner),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SnapshotPath == "" {
		return errors.New("snapshot path is required (--snapshot or LBGHOST_SNAPSHOT)")
	}
	if c.ScoreCap < 0 {
		return fmt.Errorf("score-cap must be zero or positive, got %d", c.ScoreCap)
	}
	return nil
}

// readConfigFile reads an explicit --config file, or the default file under
// the user config directory when it exists.
func readConfigFile(v *viper.Viper) error {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	dir, err := DefaultConfigDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/lbghost, falling back to
// ~/.config/lbghost.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// splitList accepts both repeated values and comma separated entries.
func splitList(values []string) []string {
	var result []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func loadDotEnvIfPresent(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return nil
	}

	return err
}
