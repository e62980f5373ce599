package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected default theme, got %q", cfg.UI.Theme)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
lessons_dir = "/srv/lessons"

[log]
level = "debug"

[ui]
theme = "light"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	want.LessonsDir = "/srv/lessons"
	want.Log.Level = "debug"
	want.UI.Theme = "light"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[ui]\ntheme = \"light\"\n")
	t.Setenv("VEX_THEME", "dark")
	t.Setenv("VEX_LOG_JSON", "true")
	t.Setenv("VEX_WATCH_LESSONS", "0")
	t.Setenv("VEX_LOG_FILE", "/tmp/vex.log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.UI.Theme != "dark" {
		t.Errorf("env should override file theme, got %q", cfg.UI.Theme)
	}
	if !cfg.Log.JSON || cfg.WatchLessons {
		t.Errorf("bool env vars not applied: %+v", cfg)
	}
	if cfg.Log.File != "/tmp/vex.log" {
		t.Errorf("log file = %q", cfg.Log.File)
	}
}

func TestLoadInvalidEnvBool(t *testing.T) {
	t.Setenv("VEX_LOG_JSON", "sometimes")

	_, err := Load("")
	if !errors.Is(err, ErrInvalidEnv) {
		t.Errorf("expected ErrInvalidEnv, got %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine bool
	}{
		{"syntax", "[ui\ntheme = 1\n", true},
		{"unknown key", "colour = \"red\"\n", false},
		{"wrong type", "watch_lessons = \"yes\"\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Path != path {
				t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
			}
			if tt.wantLine && perr.Line == 0 {
				t.Errorf("expected a line number in %v", perr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidationFailed) {
				t.Errorf("expected ErrValidationFailed, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestExpandPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg := Config{LessonsDir: "~/lessons", Log: LogConfig{File: "/abs/vex.log"}}
	cfg.ExpandPaths()

	if want := filepath.Join(home, "lessons"); cfg.LessonsDir != want {
		t.Errorf("LessonsDir = %q, want %q", cfg.LessonsDir, want)
	}
	if cfg.Log.File != "/abs/vex.log" {
		t.Errorf("absolute path changed: %q", cfg.Log.File)
	}
}
