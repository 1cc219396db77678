// File: logger_test.go
// Title: Unit Tests for Core Logger
// Description: Tests for logger construction, level filtering, immutable
//              With variants, field propagation, and severity-driven
//              error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	kiterror "github.com/msto63/textkit/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: &buf,
		Name:   "test",
	})
	return logger, &buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("messages below minimum were written: %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn message missing from output: %q", buf.String())
	}
}

func TestFieldsReachOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.Info("request handled", Fields{"path": "/pad", "status": 200})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["path"] != "/pad" {
		t.Errorf("path = %v", decoded["path"])
	}
	if decoded["status"] != float64(200) {
		t.Errorf("status = %v", decoded["status"])
	}
}

func TestWithFieldIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	derived := base.WithField("component", "padding")

	derived.Info("from derived")
	if !strings.Contains(buf.String(), "padding") {
		t.Errorf("derived logger lost its field: %q", buf.String())
	}

	buf.Reset()
	base.Info("from base")
	if strings.Contains(buf.String(), "padding") {
		t.Errorf("field leaked into base logger: %q", buf.String())
	}
}

func TestWithLevelIsImmutable(t *testing.T) {
	base, _ := newBufferLogger(LevelInfo)
	derived := base.WithLevel(LevelError)

	if base.GetLevel() != LevelInfo {
		t.Errorf("base level changed to %v", base.GetLevel())
	}
	if derived.GetLevel() != LevelError {
		t.Errorf("derived level = %v; want LevelError", derived.GetLevel())
	}
}

func TestSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelError)

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug message missing after SetLevel: %q", buf.String())
	}
	if !logger.IsLevelEnabled(LevelDebug) {
		t.Error("IsLevelEnabled(LevelDebug) = false after SetLevel")
	}
}

func TestWarnWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.WarnWithErr("conversion suppressed", kiterror.New("boom"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["message"] != "conversion suppressed" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["error"] != "boom" {
		t.Errorf("error = %v", decoded["error"])
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name          string
		severity      kiterror.Severity
		expectedLevel string
	}{
		{"low maps to info", kiterror.SeverityLow, "info"},
		{"medium maps to warn", kiterror.SeverityMedium, "warn"},
		{"high maps to error", kiterror.SeverityHigh, "error"},
		{"critical maps to error", kiterror.SeverityCritical, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)

			logger.LogError(kiterror.New("failed").
				WithSeverity(tt.severity).
				WithDetail("input", "x"))

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if decoded["level"] != tt.expectedLevel {
				t.Errorf("level = %v; want %v", decoded["level"], tt.expectedLevel)
			}
			if decoded["error_input"] != "x" {
				t.Errorf("error detail missing: %v", decoded)
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote output: %q", buf.String())
	}
}

func TestDefaultLoggerSwap(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	replacement, buf := newBufferLogger(LevelInfo)
	SetDefault(replacement)

	Info("through package function")
	if !strings.Contains(buf.String(), "through package function") {
		t.Errorf("package-level Info did not reach the swapped default: %q", buf.String())
	}
}
