// File: config_test.go
// Title: Unit Tests for Configuration Loading
// Description: Tests for TOML and YAML parsing, format auto-detection,
//              defaults, file loading, and logger construction from the
//              logging section.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	kiterror "github.com/msto63/textkit/core/error"
	kitlog "github.com/msto63/textkit/core/log"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" {
		t.Errorf("default level = %q; want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("default format = %q; want text", cfg.Log.Format)
	}
	if cfg.Log.Output != "stderr" {
		t.Errorf("default output = %q; want stderr", cfg.Log.Output)
	}
	if cfg.Log.Name != "textkit" {
		t.Errorf("default name = %q; want textkit", cfg.Log.Name)
	}
}

func TestLoadFromStringTOML(t *testing.T) {
	content := `
[log]
level = "debug"
format = "json"
output = "stdout"
name = "mytool"
`
	cfg, err := LoadFromString(content, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" ||
		cfg.Log.Output != "stdout" || cfg.Log.Name != "mytool" {
		t.Errorf("parsed config = %+v", cfg.Log)
	}
}

func TestLoadFromStringYAML(t *testing.T) {
	content := `
log:
  level: warn
  format: console
`
	cfg, err := LoadFromString(content, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" {
		t.Errorf("parsed config = %+v", cfg.Log)
	}
	// untouched keys keep their defaults
	if cfg.Log.Output != "stderr" {
		t.Errorf("output = %q; want default stderr", cfg.Log.Output)
	}
}

func TestLoadFromStringAutoDefaultsToTOML(t *testing.T) {
	cfg, err := LoadFromString(`[log]`+"\n"+`level = "error"`, FormatAuto)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("level = %q; want error", cfg.Log.Level)
	}
}

func TestLoadFromStringInvalidContent(t *testing.T) {
	_, err := LoadFromString("not [valid toml", FormatTOML)
	if !kiterror.HasCode(err, kiterror.CodeInvalidConfig) {
		t.Errorf("TOML parse error code = %v; want INVALID_CONFIG", kiterror.GetCode(err))
	}

	_, err = LoadFromString("\t: broken", FormatYAML)
	if !kiterror.HasCode(err, kiterror.CodeInvalidConfig) {
		t.Errorf("YAML parse error code = %v; want INVALID_CONFIG", kiterror.GetCode(err))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml file", func(t *testing.T) {
		path := filepath.Join(dir, "textkit.toml")
		content := "[log]\nlevel = \"trace\"\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Log.Level != "trace" {
			t.Errorf("level = %q; want trace", cfg.Log.Level)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "textkit.yml")
		content := "log:\n  level: fatal\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Log.Level != "fatal" {
			t.Errorf("level = %q; want fatal", cfg.Log.Level)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.toml"))
		if !kiterror.HasCode(err, kiterror.CodeNotFound) {
			t.Errorf("error code = %v; want NOT_FOUND", kiterror.GetCode(err))
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("   ")
		if !kiterror.HasCode(err, kiterror.CodeValidationFailed) {
			t.Errorf("error code = %v; want VALIDATION_FAILED", kiterror.GetCode(err))
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"app.toml", FormatTOML},
		{"app.yaml", FormatYAML},
		{"app.yml", FormatYAML},
		{"app.YAML", FormatYAML},
		{"app.conf", FormatTOML},
		{"app", FormatTOML},
	}

	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.expected {
			t.Errorf("detectFormat(%q) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestLoggerFromConfig(t *testing.T) {
	cfg := Default()
	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("Logger failed for default config: %v", err)
	}
	if logger.GetLevel() != kitlog.LevelInfo {
		t.Errorf("logger level = %v; want LevelInfo", logger.GetLevel())
	}
}

func TestLoggerFromConfigInvalid(t *testing.T) {
	t.Run("bad level", func(t *testing.T) {
		cfg := Default()
		cfg.Log.Level = "shout"
		if _, err := cfg.Logger(); !kiterror.HasCode(err, kiterror.CodeInvalidConfig) {
			t.Errorf("error code = %v; want INVALID_CONFIG", kiterror.GetCode(err))
		}
	})

	t.Run("bad format", func(t *testing.T) {
		cfg := Default()
		cfg.Log.Format = "xml"
		if _, err := cfg.Logger(); !kiterror.HasCode(err, kiterror.CodeInvalidConfig) {
			t.Errorf("error code = %v; want INVALID_CONFIG", kiterror.GetCode(err))
		}
	})
}

func TestLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textkit.log")

	cfg := Default()
	cfg.Log.Output = path
	cfg.Log.Format = "text"

	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("Logger failed: %v", err)
	}
	logger.Info("written to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
