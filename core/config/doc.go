// Package config provides configuration loading for textkit tools.
//
// Package: config
// Title: textkit Configuration Management
// Description: This package loads textkit configuration from TOML and YAML
//              files with extension-based format auto-detection. Today the
//              configuration carries the logging section (level, format,
//              output, name) consumed by the textkit CLI to build the
//              logging sink for the library.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   import "github.com/msto63/textkit/core/config"
//
//   cfg, err := config.Load("textkit.toml")
//   if err != nil {
//     // missing file, unreadable file, or parse failure
//   }
//   logger, err := cfg.Logger()
package config
