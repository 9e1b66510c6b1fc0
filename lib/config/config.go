// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "FLAGKIT_CONFIG"

// Config is the flagkit configuration.
type Config struct {
	// Flag locates and decodes the flag artifact.
	Flag FlagConfig `yaml:"flag" json:"flag"`

	// Log configures the stderr logger.
	Log LogConfig `yaml:"log" json:"log"`
}

// FlagConfig locates and decodes the flag artifact.
type FlagConfig struct {
	// Path is the flag file, relative to the working directory of the
	// exercise binary unless absolute.
	// Default: flag.txt
	Path string `yaml:"path" json:"path"`

	// Encoding is the compression applied to the flag. Empty means
	// "none".
	// Values: "none", "auto" (by extension), "zstd", "lz4"
	// Default: none
	Encoding string `yaml:"encoding" json:"encoding"`

	// IdentityFile is an age identity file. When set, the flag is
	// treated as sealed. Keep it readable only by the exercise user.
	IdentityFile string `yaml:"identity_file" json:"identity_file"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	// Level is the minimum level logged.
	// Values: "debug", "info", "warn", "error"
	// Default: warn
	Level string `yaml:"level" json:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Flag: FlagConfig{
			Path:     "flag.txt",
			Encoding: "none",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the file named by FLAGKIT_CONFIG, or
// returns Default when the variable is unset or empty.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		cfg := Default()
		cfg.expandVariables("")
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path on top of Default. Fields the
// file leaves out keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables(filepath.Dir(path))

	return cfg, nil
}

// loadFile decodes path into c, choosing the format by extension.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// path fields. root is the directory of the config file, or "" when
// there is none.
func (c *Config) expandVariables(root string) {
	vars := map[string]string{
		"FLAGKIT_ROOT": root,
		"HOME":         os.Getenv("HOME"),
	}

	c.Flag.Path = expandVars(c.Flag.Path, vars)
	c.Flag.IdentityFile = expandVars(c.Flag.IdentityFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Provided vars first, then the environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Flag.Path == "" {
		errs = append(errs, fmt.Errorf("flag.path is required"))
	}

	encodings := []string{"none", "auto", "zstd", "lz4"}
	if c.Flag.Encoding != "" && !contains(encodings, c.Flag.Encoding) {
		errs = append(errs, fmt.Errorf("flag.encoding must be one of: %v", encodings))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level must be one of: [debug info warn error]")
	}
	return level, nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
