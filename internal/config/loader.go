package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "VEX_"

// Load resolves defaults, the TOML file at path, and VEX_* environment
// variables, then validates the result. An empty path or a missing file
// leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	cfg.ExpandPaths()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode overlays TOML data onto cfg. Keys absent from data keep their
// current value.
func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// applyEnv overlays VEX_* variables. lookup has the signature of
// os.LookupEnv.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvPrefix + "LESSONS_DIR": &cfg.LessonsDir,
		EnvPrefix + "LOG_FILE":    &cfg.Log.File,
		EnvPrefix + "LOG_LEVEL":   &cfg.Log.Level,
		EnvPrefix + "THEME":       &cfg.UI.Theme,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		EnvPrefix + "LOG_JSON":      &cfg.Log.JSON,
		EnvPrefix + "WATCH_LESSONS": &cfg.WatchLessons,
		EnvPrefix + "SHOW_PENDING":  &cfg.UI.ShowPending,
	}
	for name, dst := range bools {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidEnv, name, v, err)
		}
		*dst = b
	}
	return nil
}
