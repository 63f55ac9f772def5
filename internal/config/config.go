// Package config loads runtime settings for the command dispatcher from a
// YAML config file and environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/quocvuong92/excavator/internal/constants"
	"github.com/quocvuong92/excavator/internal/settings"
)

// Environment variable names
const (
	// EnvDebug enables error traces at the top-level error handler
	EnvDebug = "EXCAVATOR_DEBUG"

	// Logging settings
	EnvLogLevel  = "EXCAVATOR_LOG_LEVEL"
	EnvLogFormat = "EXCAVATOR_LOG_FORMAT"

	// Presentation settings
	EnvRender  = "EXCAVATOR_RENDER"
	EnvProgram = "EXCAVATOR_PROGRAM"
)

// Defaults - re-exported from constants for convenience
const (
	DefaultLogLevel  = constants.DefaultLogLevel
	DefaultLogFormat = constants.DefaultLogFormat
	DefaultPrompt    = "> "
)

// Config holds the application configuration
type Config struct {
	// ProgramName is shown in the command listing title
	ProgramName string

	// Debug adds error chains and stack traces to top-level error output
	Debug bool

	// Logging settings
	LogLevel  string
	LogFormat string

	// Render command descriptions as markdown in the shell
	Render bool

	// Prompt is the interactive shell prefix
	Prompt string

	// Permissions restrict which command paths may be dispatched
	Permissions settings.Permissions
}

// NewConfig creates a new Config with defaults
func NewConfig() *Config {
	return &Config{
		ProgramName: filepath.Base(os.Args[0]),
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		Prompt:      DefaultPrompt,
	}
}

// Load applies the config file (lowest priority) and then environment
// variables. A malformed config file is skipped and reported; a missing one
// is not an error. Environment variables apply either way.
func (c *Config) Load() error {
	fileConfig, err := LoadConfigFile()
	if err == nil {
		c.ApplyFileConfig(fileConfig)
	}
	c.ApplyEnv()
	return err
}

// ApplyEnv overrides settings from environment variables
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvDebug); ok {
		c.Debug = IsTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvRender); ok {
		c.Render = IsTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvProgram)); v != "" {
		c.ProgramName = v
	}
}

// IsTruthy reports whether an environment value enables a setting
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
