// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/glenum"
)

func TestNewContextNilDevice(t *testing.T) {
	if _, err := NewContext(nil, nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewContext(nil) error = %v, want ErrNilDevice", err)
	}
	if _, err := NewContextFromProvider(nil); !errors.Is(err, ErrNilProvider) {
		t.Errorf("NewContextFromProvider(nil) error = %v, want ErrNilProvider", err)
	}
}

func TestNewNoopContextDefaults(t *testing.T) {
	ctx, err := NewNoopContext()
	if err != nil {
		t.Fatalf("NewNoopContext: %v", err)
	}
	defer ctx.Close()

	v := make([]int32, 4)
	ctx.GetIntegerv(glenum.Viewport, v)
	if v[2] != DefaultWidth || v[3] != DefaultHeight {
		t.Errorf("viewport = %v, want %dx%d", v, DefaultWidth, DefaultHeight)
	}
	color, ds := ctx.DefaultFramebuffer()
	if color == nil || ds == nil {
		t.Error("default framebuffer has no textures")
	}
	if ctx.IsLost() {
		t.Error("new context is lost")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	ctx, err := NewNoopContext()
	if err != nil {
		t.Fatalf("NewNoopContext: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestWithDefaultFramebufferSizeIgnoresInvalid(t *testing.T) {
	o := defaultOptions()
	WithDefaultFramebufferSize(0, 100)(&o)
	WithDefaultFramebufferSize(-5, -5)(&o)
	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", o.width, o.height)
	}
	WithDefaultFramebufferSize(10, 20)(&o)
	if o.width != 10 || o.height != 20 {
		t.Errorf("size = %dx%d, want 10x20", o.width, o.height)
	}
}

func TestWithErrorStackDepth(t *testing.T) {
	ctx := newTestContext(t, WithErrorStackDepth(2))
	for range 5 {
		ctx.RecordError(glenum.InvalidValue)
	}
	ctx.RecordError(glenum.InvalidEnum)
	expectError(t, ctx, glenum.InvalidValue)
	expectError(t, ctx, glenum.InvalidValue)
	expectError(t, ctx, glenum.NoError)
}

func TestErrorOrderIsOldestFirst(t *testing.T) {
	ctx := newTestContext(t)
	ctx.RecordError(glenum.InvalidEnum)
	ctx.RecordError(glenum.InvalidOperation)
	ctx.RecordError(glenum.NoError)
	expectError(t, ctx, glenum.InvalidEnum)
	expectError(t, ctx, glenum.InvalidOperation)
	expectError(t, ctx, glenum.NoError)
}

func TestWithDebugCallback(t *testing.T) {
	var got []string
	cb := func(_ glenum.DebugSource, _ glenum.DebugType, _ uint32, _ glenum.DebugSeverity, msg string) {
		got = append(got, msg)
	}
	ctx := newTestContext(t, WithDebugCallback(cb), WithDebugOutput(true))
	ctx.Clear(glenum.ClearMask(0x1))
	if len(got) != 1 || !strings.Contains(got[0], "Clear") {
		t.Errorf("debug messages = %q", got)
	}

	quiet := newTestContext(t, WithDebugCallback(cb))
	got = nil
	quiet.Clear(glenum.ClearMask(0x1))
	if len(got) != 0 {
		t.Errorf("messages delivered with DEBUG_OUTPUT off: %q", got)
	}
}

func TestWithAdapterInfo(t *testing.T) {
	ctx := newTestContext(t, WithAdapterInfo(gputypes.AdapterInfo{Name: "Test Adapter"}))
	if got := ctx.GetString(glenum.Renderer); got != "glhal on Test Adapter" {
		t.Errorf("RENDERER = %q", got)
	}
}

func TestWithLimits(t *testing.T) {
	limits := gputypes.DefaultLimits()
	limits.MaxTextureDimension2D = 1024
	ctx := newTestContext(t, WithLimits(limits))
	v := make([]int32, 1)
	ctx.GetIntegerv(glenum.MaxTextureSize, v)
	if v[0] != 1024 {
		t.Errorf("MAX_TEXTURE_SIZE = %d, want 1024", v[0])
	}
	expectNoError(t, ctx)
}

func TestWithConfigPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 50
	cfg.ErrorStackDepth = 3
	cfg.DebugOutput = true

	o := defaultOptions()
	WithConfig(cfg)(&o)
	WithDefaultFramebufferSize(32, 32)(&o)
	if o.width != 32 || o.height != 32 {
		t.Errorf("later option lost: %dx%d", o.width, o.height)
	}
	if o.errorStackDepth != 3 || !o.debugOutput {
		t.Errorf("config not applied: depth %d debug %v", o.errorStackDepth, o.debugOutput)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glhal.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
width = 1280
height = 720
debug_output = true
log_level = "debug"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 1280 || cfg.Height != 720 || !cfg.DebugOutput {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ErrorStackDepth != DefaultErrorStackDepth {
		t.Errorf("absent key lost its default: %d", cfg.ErrorStackDepth)
	}
	l, ok, err := cfg.Level()
	if err != nil || !ok || l != slog.LevelDebug {
		t.Errorf("Level() = %v %v %v", l, ok, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "width = "},
		{"size", "width = 0"},
		{"depth", "error_stack_depth = -1"},
		{"symbol without library", `translator_symbol = "f"`},
		{"level", `log_level = "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadConfig succeeded")
			}
		})
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	cfg, err := ConfigFromEnv()
	if err != nil || cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, %v; want defaults", cfg, err)
	}

	t.Setenv(ConfigEnv, writeConfig(t, "height = 99"))
	cfg, err = ConfigFromEnv()
	if err != nil || cfg.Height != 99 {
		t.Errorf("ConfigFromEnv() = %+v, %v", cfg, err)
	}
}

func TestConfigEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(data), `log_level = "warn"`) {
		t.Errorf("encoded config lacks log_level:\n%s", data)
	}
	got, err := LoadConfig(writeConfig(t, string(data)))
	if err != nil || got != cfg {
		t.Errorf("reloaded config = %+v, %v; want %+v", got, err, cfg)
	}
}
