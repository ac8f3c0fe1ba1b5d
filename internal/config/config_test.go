//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/notes.db",
			expected: filepath.Join(home, "notes.db"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.local/state/sukinote.log",
			expected: filepath.Join(home, ".local", "state", "sukinote.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/sukinote/notes.db",
			expected: "/var/lib/sukinote/notes.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/notes.db",
			expected: "data/notes.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "sukinote", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestGetDialConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	d := cfg.GetDialConfig()

	if d.ItemWidth != 13 {
		t.Errorf("ItemWidth = %d, want 13", d.ItemWidth)
	}
	if d.ItemHeight != 3 {
		t.Errorf("ItemHeight = %d, want 3", d.ItemHeight)
	}
	if d.SpacingCells() != 1 {
		t.Errorf("Spacing = %d, want 1", d.SpacingCells())
	}
	if d.SettleDelay() != time.Second {
		t.Errorf("SettleDelay = %v, want 1s", d.SettleDelay())
	}
	if d.CollapseDelay() != 1500*time.Millisecond {
		t.Errorf("CollapseDelay = %v, want 1.5s", d.CollapseDelay())
	}
	if d.SnapDuration() != 300*time.Millisecond {
		t.Errorf("SnapDuration = %v, want 300ms", d.SnapDuration())
	}
	if d.HighlightDuration() != 220*time.Millisecond || d.WidthDuration() != 300*time.Millisecond {
		t.Errorf("transition durations = %v/%v, want 220ms/300ms", d.HighlightDuration(), d.WidthDuration())
	}
	if !d.CompactEnabled() || !d.HapticsEnabled() {
		t.Error("compact and haptics should default to true")
	}
	if d.CompactWidth != 41 {
		t.Errorf("CompactWidth = %d, want 41", d.CompactWidth)
	}
}

func TestGetDialConfig_CustomValues(t *testing.T) {
	off := false
	zero := 0
	cfg := &Config{Dial: DialConfig{
		ItemWidth:           9,
		ItemHeight:          1,
		Spacing:             &zero,
		SettleDelayMs:       900,
		CollapseDelayMs:     2000,
		SnapDurationMs:      150,
		HighlightDurationMs: 100,
		WidthDurationMs:     200,
		CompactWidth:        20,
		Compact:             &off,
		Haptics:             &off,
	}}
	d := cfg.GetDialConfig()

	if d.ItemWidth != 9 || d.ItemHeight != 1 || d.SpacingCells() != 0 {
		t.Errorf("sizes not preserved: %+v", d)
	}
	if d.SettleDelay() != 900*time.Millisecond {
		t.Errorf("SettleDelay = %v", d.SettleDelay())
	}
	if d.CollapseDelay() != 2*time.Second {
		t.Errorf("CollapseDelay = %v", d.CollapseDelay())
	}
	if d.SnapDuration() != 150*time.Millisecond || d.HighlightDuration() != 100*time.Millisecond ||
		d.WidthDuration() != 200*time.Millisecond {
		t.Errorf("durations not preserved: %+v", d)
	}
	if d.CompactEnabled() || d.HapticsEnabled() {
		t.Error("explicit false flags should be kept")
	}
}

func TestGetDialConfig_SettleDelayClamped(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  time.Duration
	}{
		{"below range", 100, 800 * time.Millisecond},
		{"above range", 5000, 1200 * time.Millisecond},
		{"in range", 1100, 1100 * time.Millisecond},
		{"unset", 0, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Dial: DialConfig{SettleDelayMs: tt.input}}
			if got := cfg.GetDialConfig().SettleDelay(); got != tt.want {
				t.Errorf("SettleDelay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := (LogConfig{Level: tt.level}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSamplesEnabled(t *testing.T) {
	on := true
	if (StoreConfig{}).SamplesEnabled() {
		t.Error("samples should default to off")
	}
	if !(StoreConfig{Samples: &on}).SamplesEnabled() {
		t.Error("samples = true should enable samples")
	}
}

func TestAnniversariesEnabled(t *testing.T) {
	off := false
	if !(NotifyConfig{}).AnniversariesEnabled() {
		t.Error("anniversary reminders should default to on")
	}
	if (NotifyConfig{Anniversaries: &off}).AnniversariesEnabled() {
		t.Error("anniversaries = false should disable reminders")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestLoad_EmptyConfig(t *testing.T) {
	cfg, err := loadFrom([]string{writeConfig(t, "")})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("loadFrom() returned nil config")
	}
	if cfg.HasLogFile() {
		t.Error("empty config should not enable logging")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
[dial]
item_width = 11
settle_delay_ms = 1200
compact = false

[store]
path = "~/notes/sukinote.db"
samples = true

[log]
file = "/tmp/sukinote.log"
level = " DEBUG "

[notify]
anniversaries = false
`)

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Dial.ItemWidth != 11 {
		t.Errorf("ItemWidth = %d, want 11", cfg.Dial.ItemWidth)
	}
	if cfg.GetDialConfig().SettleDelay() != 1200*time.Millisecond {
		t.Errorf("SettleDelay = %v", cfg.GetDialConfig().SettleDelay())
	}
	if cfg.Dial.Compact == nil || *cfg.Dial.Compact {
		t.Error("compact = false should be loaded")
	}
	if !cfg.Store.SamplesEnabled() {
		t.Error("samples = true should be loaded")
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "notes", "sukinote.db"); cfg.Store.Path != want {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, want)
	}
	if cfg.Notify.AnniversariesEnabled() {
		t.Error("anniversaries = false should be loaded")
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_LaterFileWins(t *testing.T) {
	first := writeConfig(t, "[dial]\nitem_width = 9\nitem_height = 2\n")
	second := writeConfig(t, "[dial]\nitem_width = 15\n")

	cfg, err := loadFrom([]string{first, second, filepath.Join(t.TempDir(), "missing.toml")})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg.Dial.ItemWidth != 15 {
		t.Errorf("ItemWidth = %d, want 15 from the later file", cfg.Dial.ItemWidth)
	}
	if cfg.Dial.ItemHeight != 2 {
		t.Errorf("ItemHeight = %d, want 2 merged from the earlier file", cfg.Dial.ItemHeight)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	if _, err := loadFrom([]string{writeConfig(t, "invalid = [[[")}); err == nil {
		t.Error("loadFrom() expected error for invalid TOML, got nil")
	}
}
