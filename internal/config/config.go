package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Supported setting values.
var (
	LogLevels = []string{"debug", "info", "warn", "error"}
	Themes    = []string{"dark", "light"}
)

// Config holds every trainer setting.
type Config struct {
	// LessonsDir is a directory of lesson files replacing the built-in
	// curriculum. Empty means built-in.
	LessonsDir string `toml:"lessons_dir"`

	// WatchLessons reloads LessonsDir when its files change.
	WatchLessons bool `toml:"watch_lessons"`

	Log LogConfig `toml:"log"`
	UI  UIConfig  `toml:"ui"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// File is the log destination. Empty disables logging.
	File  string `toml:"file"`
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	Theme string `toml:"theme"`

	// ShowPending displays keys typed for the current task.
	ShowPending bool `toml:"show_pending"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WatchLessons: true,
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Theme:       "dark",
			ShowPending: true,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" if the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vex", "config.toml")
}

// Validate checks that enumerated settings hold supported values.
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log level %q (want one of %s)", ErrValidationFailed, c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if !slices.Contains(Themes, strings.ToLower(c.UI.Theme)) {
		return fmt.Errorf("%w: theme %q (want one of %s)", ErrValidationFailed, c.UI.Theme, strings.Join(Themes, ", "))
	}
	return nil
}

// ExpandPaths replaces a leading "~" in path settings with the home
// directory.
func (c *Config) ExpandPaths() {
	c.LessonsDir = expandHome(c.LessonsDir)
	c.Log.File = expandHome(c.Log.File)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
