// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigEnv names the environment variable holding the path of a TOML
// configuration file read by contexts created through the C ABI.
const ConfigEnv = "GLHAL_CONFIG"

// Config is the file form of the context options.
//
//	width = 1280
//	height = 720
//	error_stack_depth = 16
//	bind_group_cache_size = 256
//	debug_output = true
//	log_level = "debug"
//	translator_library = "/usr/lib/libglsl2wgsl.so"
//	translator_symbol = "glsl_to_wgsl"
type Config struct {
	Width              int    `toml:"width"`
	Height             int    `toml:"height"`
	ErrorStackDepth    int    `toml:"error_stack_depth"`
	BindGroupCacheSize int    `toml:"bind_group_cache_size"`
	DebugOutput        bool   `toml:"debug_output"`
	LogLevel           string `toml:"log_level"`
	TranslatorLibrary  string `toml:"translator_library"`
	TranslatorSymbol   string `toml:"translator_symbol"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		ErrorStackDepth:    DefaultErrorStackDepth,
		BindGroupCacheSize: 256,
	}
}

// LoadConfig reads a TOML configuration file. Keys absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("glhal: read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Logger().Warn("glhal: unknown config keys", "path", path, "keys", fmt.Sprint(undecoded))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("glhal: config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv loads the file named by $GLHAL_CONFIG, or returns the
// default configuration when the variable is unset.
func ConfigFromEnv() (Config, error) {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Encode writes cfg in TOML form.
func (cfg Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Level parses LogLevel. An empty level means logging stays as configured.
func (cfg Config) Level() (slog.Level, bool, error) {
	if cfg.LogLevel == "" {
		return 0, false, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, false, err
	}
	return l, true, nil
}

var errBadConfig = errors.New("invalid value")

func (cfg Config) validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: framebuffer size %dx%d", errBadConfig, cfg.Width, cfg.Height)
	case cfg.ErrorStackDepth <= 0:
		return fmt.Errorf("%w: error_stack_depth %d", errBadConfig, cfg.ErrorStackDepth)
	case cfg.TranslatorSymbol != "" && cfg.TranslatorLibrary == "":
		return fmt.Errorf("%w: translator_symbol without translator_library", errBadConfig)
	}
	if _, _, err := cfg.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %v", errBadConfig, err)
	}
	return nil
}
