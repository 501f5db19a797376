// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading and persistence for
// Keyselect. It uses Viper for file/env/flag parsing and goccy/go-yaml to
// write the default configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Multiple bool           `mapstructure:"multiple" yaml:"multiple"`
	Language string         `mapstructure:"language" yaml:"language"`
	Output   string         `mapstructure:"output" yaml:"output"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Options  []OptionConfig `mapstructure:"options" yaml:"options"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// OptionConfig is one selectable entry as written in the config file.
type OptionConfig struct {
	Label string      `mapstructure:"label" yaml:"label"`
	Value OptionValue `mapstructure:"value" yaml:"value"`
}

// Defaults returns the default key/value set used by LoadConfig.
func Defaults() map[string]any {
	return map[string]any{
		"multiple":  true,
		"language":  "en",
		"output":    "text",
		"log.level": "info",
		"log.file":  "",
		"options": []map[string]any{
			{"label": "First", "value": 1},
			{"label": "Second", "value": 2},
			{"label": "Third", "value": 3},
			{"label": "Fourth", "value": 4},
		},
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keyselect")
		default: // Linux, macOS, etc.
			configDir = "/etc/keyselect"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keyselect")
	}

	return filepath.Join(configDir, "keyselect.yaml"), nil
}

// LoadConfig merges defaults, the config file, KEYSELECT_* environment
// variables and the command's flags into T. A missing config file is
// reported as viper.ConfigFileNotFoundError together with the decoded
// defaults so callers can decide to write one.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additional_config_file_path *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("keyselect")
	v.SetConfigType("yaml")

	// 3. Explicit --config path has the highest precedence for files.
	if additional_config_file_path != nil {
		v.SetConfigFile(*additional_config_file_path)
	}

	// 4. Standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	// 6. Environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("keyselect")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Flags
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	// parse config
	if err := v.Unmarshal(&c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		OptionValueHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFileTo writes c as yaml to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
