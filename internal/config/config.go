package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Dial behaviour shared by every dial in the app
	Dial DialConfig `koanf:"dial"`

	// Note storage
	Store StoreConfig `koanf:"store"`

	// Diagnostic log (the terminal belongs to the UI)
	Log LogConfig `koanf:"log"`

	// Desktop reminders
	Notify NotifyConfig `koanf:"notify"`
}

// DialConfig holds dial layout and timing. Sizes are terminal cells.
type DialConfig struct {
	ItemWidth           int   `koanf:"item_width"`            // cells per item (default: 13)
	ItemHeight          int   `koanf:"item_height"`           // rows per item (default: 3)
	Spacing             *int  `koanf:"spacing"`               // cells between items (default: 1)
	SettleDelayMs       int   `koanf:"settle_delay_ms"`       // debounce before scroll end (800-1200, default: 1000)
	CollapseDelayMs     int   `koanf:"collapse_delay_ms"`     // compact again after a tap (default: 1500)
	SnapDurationMs      int   `koanf:"snap_duration_ms"`      // tap/scroll animation (default: 300)
	HighlightDurationMs int   `koanf:"highlight_duration_ms"` // selection restyle (default: 220)
	WidthDurationMs     int   `koanf:"width_duration_ms"`     // compact/expand animation (default: 300)
	CompactWidth        int   `koanf:"compact_width"`         // visible cells when compact (default: 41)
	Compact             *bool `koanf:"compact"`               // shrink the category dial when idle (default: true)
	Haptics             *bool `koanf:"haptics"`               // flash on each selection change (default: true)
}

// StoreConfig holds note storage settings.
type StoreConfig struct {
	Path    string `koanf:"path"`    // database file (default: XDG data dir)
	Samples *bool  `koanf:"samples"` // add sample notes when the store is empty (default: false)
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	File  string `koanf:"file"`  // log file path; empty disables logging
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

// NotifyConfig holds desktop notification settings.
type NotifyConfig struct {
	Anniversaries *bool `koanf:"anniversaries"` // remind of anniversaries falling today (default: true)
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	cfg.Store.Path = expandPath(cfg.Store.Path)
	cfg.Log.File = expandPath(cfg.Log.File)

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/sukinote/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sukinote", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDialConfig returns the dial configuration with defaults applied.
func (c *Config) GetDialConfig() DialConfig {
	cfg := c.Dial

	// Apply defaults
	if cfg.ItemWidth <= 0 {
		cfg.ItemWidth = 13
	}
	if cfg.ItemHeight <= 0 {
		cfg.ItemHeight = 3
	}
	if cfg.Spacing == nil || *cfg.Spacing < 0 {
		cfg.Spacing = intPtr(1)
	}
	if cfg.SettleDelayMs <= 0 {
		cfg.SettleDelayMs = 1000
	}
	cfg.SettleDelayMs = min(max(cfg.SettleDelayMs, 800), 1200)
	if cfg.CollapseDelayMs <= 0 {
		cfg.CollapseDelayMs = 1500
	}
	if cfg.SnapDurationMs <= 0 {
		cfg.SnapDurationMs = 300
	}
	if cfg.HighlightDurationMs <= 0 {
		cfg.HighlightDurationMs = 220
	}
	if cfg.WidthDurationMs <= 0 {
		cfg.WidthDurationMs = 300
	}
	if cfg.CompactWidth <= 0 {
		cfg.CompactWidth = 41
	}
	if cfg.Compact == nil {
		cfg.Compact = boolPtr(true)
	}
	if cfg.Haptics == nil {
		cfg.Haptics = boolPtr(true)
	}

	return cfg
}

// SettleDelay and the other helpers convert the millisecond settings.
func (d DialConfig) SettleDelay() time.Duration { return ms(d.SettleDelayMs) }

func (d DialConfig) CollapseDelay() time.Duration { return ms(d.CollapseDelayMs) }

func (d DialConfig) SnapDuration() time.Duration { return ms(d.SnapDurationMs) }

func (d DialConfig) HighlightDuration() time.Duration { return ms(d.HighlightDurationMs) }

func (d DialConfig) WidthDuration() time.Duration { return ms(d.WidthDurationMs) }

// CompactEnabled reports the compact flag; nil means the default (true).
func (d DialConfig) CompactEnabled() bool { return d.Compact == nil || *d.Compact }

// HapticsEnabled reports the haptics flag; nil means the default (true).
func (d DialConfig) HapticsEnabled() bool { return d.Haptics == nil || *d.Haptics }

// SamplesEnabled reports whether sample notes should be added to an empty store.
func (s StoreConfig) SamplesEnabled() bool { return s.Samples != nil && *s.Samples }

// AnniversariesEnabled reports the reminder flag; nil means the default (true).
func (n NotifyConfig) AnniversariesEnabled() bool { return n.Anniversaries == nil || *n.Anniversaries }

// HasLogFile returns true if diagnostic logging is configured.
func (c *Config) HasLogFile() bool {
	return c.Log.File != ""
}

// SlogLevel maps the configured level name, defaulting to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func boolPtr(b bool) *bool { return &b }

func intPtr(v int) *int { return &v }

// SpacingCells returns the spacing, 1 when unset.
func (d DialConfig) SpacingCells() int {
	if d.Spacing == nil {
		return 1
	}
	return *d.Spacing
}
