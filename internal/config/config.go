package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the tunables for the calendar views.
type Config struct {
	WeekStart     time.Weekday
	WindowRadius  int
	SettleDwell   time.Duration
	CellHeight    int
	CrossfadeBand float64
	HeaderHeight  float64
	TopInset      float64
	FrameRate     int
	TraceLog      string
}

const (
	defaultConfigPath    = "~/.config/sheetcal/config.toml"
	defaultTraceLog      = "~/.local/state/sheetcal/trace.log"
	defaultWindowRadius  = 1
	maxWindowRadius      = 3
	defaultSettleDwell   = 120 * time.Millisecond
	defaultCellHeight    = 1
	maxCellHeight        = 3
	defaultCrossfadeBand = 1.0
	defaultFrameRate     = 60
	maxFrameRate         = 240
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		WeekStart:     time.Sunday,
		WindowRadius:  defaultWindowRadius,
		SettleDwell:   defaultSettleDwell,
		CellHeight:    defaultCellHeight,
		CrossfadeBand: defaultCrossfadeBand,
		FrameRate:     defaultFrameRate,
		TraceLog:      mustExpand(defaultTraceLog),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// Out-of-range values are replaced by their defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		WeekStart     string   `toml:"week_start"`
		WindowRadius  *int     `toml:"window_radius"`
		SettleDwellMS *int     `toml:"settle_dwell_ms"`
		CellHeight    *int     `toml:"cell_height"`
		CrossfadeBand *float64 `toml:"crossfade_band"`
		HeaderHeight  *float64 `toml:"header_height"`
		TopInset      *float64 `toml:"top_inset"`
		FrameRate     *int     `toml:"frame_rate"`
		TraceLog      *string  `toml:"trace_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if day, ok := parseWeekday(raw.WeekStart); ok {
		cfg.WeekStart = day
	}
	if raw.WindowRadius != nil && *raw.WindowRadius >= 1 && *raw.WindowRadius <= maxWindowRadius {
		cfg.WindowRadius = *raw.WindowRadius
	}
	if raw.SettleDwellMS != nil && *raw.SettleDwellMS >= 0 {
		cfg.SettleDwell = time.Duration(*raw.SettleDwellMS) * time.Millisecond
	}
	if raw.CellHeight != nil && *raw.CellHeight >= 1 && *raw.CellHeight <= maxCellHeight {
		cfg.CellHeight = *raw.CellHeight
	}
	if raw.CrossfadeBand != nil && *raw.CrossfadeBand >= 0 {
		cfg.CrossfadeBand = *raw.CrossfadeBand
	}
	if raw.HeaderHeight != nil {
		cfg.HeaderHeight = *raw.HeaderHeight
	}
	if raw.TopInset != nil && *raw.TopInset >= 0 {
		cfg.TopInset = *raw.TopInset
	}
	if raw.FrameRate != nil && *raw.FrameRate > 0 && *raw.FrameRate <= maxFrameRate {
		cfg.FrameRate = *raw.FrameRate
	}
	if raw.TraceLog != nil {
		cfg.TraceLog = strings.TrimSpace(*raw.TraceLog)
		if cfg.TraceLog != "" {
			cfg.TraceLog = mustExpand(cfg.TraceLog)
		}
	}

	return cfg, nil
}

// FrameInterval is the time between animation frames.
func (c Config) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = defaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// TraceEnabled reports whether trace logging is configured.
func (c Config) TraceEnabled() bool {
	return strings.TrimSpace(c.TraceLog) != ""
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func parseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, true
		}
	}
	return 0, false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
