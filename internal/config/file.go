package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quocvuong92/excavator/internal/constants"
	"github.com/quocvuong92/excavator/internal/settings"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// FileConfig represents the configuration file structure
type FileConfig struct {
	Program  string                `yaml:"program,omitempty"`
	Debug    bool                  `yaml:"debug,omitempty"`
	Log      *LogConfig            `yaml:"log,omitempty"`
	Shell    *ShellConfig          `yaml:"shell,omitempty"`
	Commands *settings.Permissions `yaml:"commands,omitempty"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error, none
	Format string `yaml:"format,omitempty"` // text or json
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt string `yaml:"prompt,omitempty"`
	Render bool   `yaml:"render,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority)
func GetConfigPaths() []string {
	var paths []string

	// 1. Current directory
	paths = append(paths, filepath.Join(".", constants.ConfigDir, ConfigFileName))

	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constants.AppName, ConfigFileName))
	}

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constants.AppName, ConfigFileName))
	}

	return paths
}

// LoadConfigFile loads the first config file found, or an empty config
func LoadConfigFile() (*FileConfig, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return loadConfigFromPath(path)
		}
	}
	return &FileConfig{}, nil
}

func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyFileConfig applies file configuration to the main Config.
// Only values present in the file are applied.
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil {
		return
	}

	if fc.Program != "" {
		c.ProgramName = fc.Program
	}
	if fc.Debug {
		c.Debug = true
	}

	if fc.Log != nil {
		if fc.Log.Level != "" {
			c.LogLevel = fc.Log.Level
		}
		if fc.Log.Format != "" {
			c.LogFormat = fc.Log.Format
		}
	}

	if fc.Shell != nil {
		if fc.Shell.Prompt != "" {
			c.Prompt = fc.Shell.Prompt
		}
		if fc.Shell.Render {
			c.Render = true
		}
	}

	if fc.Commands != nil {
		c.Permissions = *fc.Commands
	}
}
