package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTempConfigFile creates a config file under dir/.excavator
func createTempConfigFile(t *testing.T, dir, content string) string {
	t.Helper()

	configDir := filepath.Join(dir, ".excavator")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	return configPath
}

func TestLoadConfigFromPath_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `
program: dig
debug: true

log:
  level: debug
  format: json

shell:
  prompt: "dig> "
  render: true
`
	configPath := createTempConfigFile(t, tmpDir, configContent)

	fc, err := loadConfigFromPath(configPath)
	if err != nil {
		t.Fatalf("loadConfigFromPath() error = %v", err)
	}

	if fc.Program != "dig" {
		t.Errorf("Program = %q, want dig", fc.Program)
	}
	if !fc.Debug {
		t.Error("Debug should be true")
	}
	if fc.Log == nil || fc.Log.Level != "debug" || fc.Log.Format != "json" {
		t.Errorf("Log = %+v, want level debug format json", fc.Log)
	}
	if fc.Shell == nil || fc.Shell.Prompt != "dig> " || !fc.Shell.Render {
		t.Errorf("Shell = %+v, want prompt and render", fc.Shell)
	}
}

func TestLoadConfigFromPath_Missing(t *testing.T) {
	_, err := loadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %v, want read failure", err)
	}
}

func TestGetConfigPaths_ProjectFirst(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) == 0 {
		t.Fatal("GetConfigPaths() returned nothing")
	}
	want := filepath.Join(".", ".excavator", ConfigFileName)
	if paths[0] != want {
		t.Errorf("paths[0] = %q, want %q", paths[0], want)
	}
}

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name  string
		fc    *FileConfig
		check func(t *testing.T, c *Config)
	}{
		{
			name: "nil leaves defaults",
			fc:   nil,
			check: func(t *testing.T, c *Config) {
				if c.LogLevel != DefaultLogLevel {
					t.Errorf("LogLevel = %q", c.LogLevel)
				}
			},
		},
		{
			name: "empty sections leave defaults",
			fc:   &FileConfig{Log: &LogConfig{}, Shell: &ShellConfig{}},
			check: func(t *testing.T, c *Config) {
				if c.LogFormat != DefaultLogFormat || c.Prompt != DefaultPrompt {
					t.Errorf("config = %+v", c)
				}
			},
		},
		{
			name: "values applied",
			fc: &FileConfig{
				Program: "dig",
				Log:     &LogConfig{Level: "warn"},
				Shell:   &ShellConfig{Prompt: "$ ", Render: true},
			},
			check: func(t *testing.T, c *Config) {
				if c.ProgramName != "dig" || c.LogLevel != "warn" || c.Prompt != "$ " || !c.Render {
					t.Errorf("config = %+v", c)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.ApplyFileConfig(tt.fc)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigFromPath_Commands(t *testing.T) {
	configPath := createTempConfigFile(t, t.TempDir(), `
commands:
  allow:
    - servers:*
    - greet
  deny:
    - servers:destroy
`)

	fc, err := loadConfigFromPath(configPath)
	if err != nil {
		t.Fatalf("loadConfigFromPath() error = %v", err)
	}
	if fc.Commands == nil || len(fc.Commands.Allow) != 2 || len(fc.Commands.Deny) != 1 {
		t.Fatalf("Commands = %+v", fc.Commands)
	}

	cfg := NewConfig()
	cfg.ApplyFileConfig(fc)
	if got := cfg.Permissions.Deny[0].Pattern; got != "servers:destroy" {
		t.Errorf("Permissions.Deny[0] = %q, want servers:destroy", got)
	}
}
