package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/vex/internal/config"
	"github.com/dshills/vex/internal/learning"
	"github.com/dshills/vex/internal/logging"
	"github.com/dshills/vex/internal/session"
)

// bootstrapper handles initialization with cleanup on failure.
type bootstrapper struct {
	app *Application
}

func newBootstrapper(a *Application) *bootstrapper {
	return &bootstrapper{app: a}
}

// bootstrap initializes components in dependency order.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initConfig,
		b.initLogging,
		b.initCatalog,
		b.initSession,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.app.Shutdown()
			return err
		}
	}
	return nil
}

// initConfig loads the config file and environment, then applies the
// command line overrides.
func (b *bootstrapper) initConfig() error {
	opts := b.app.opts

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return &ComponentError{Component: "config", Action: "load", Err: err}
	}

	if opts.LessonsDir != "" {
		cfg.LessonsDir = opts.LessonsDir
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogJSON {
		cfg.Log.JSON = true
	}
	if opts.Theme != "" {
		cfg.UI.Theme = opts.Theme
	}
	if opts.NoWatch {
		cfg.WatchLessons = false
	}

	cfg.ExpandPaths()
	if err := cfg.Validate(); err != nil {
		return &ComponentError{Component: "config", Action: "validate", Err: err}
	}

	b.app.cfg = cfg
	return nil
}

// initLogging opens the log file and fans records out to it and to the
// in-memory warnings sink.
func (b *bootstrapper) initLogging() error {
	cfg := b.app.cfg.Log
	level, _ := logging.ParseLevel(cfg.Level)

	sinks := []logging.Sink{{Writer: &b.app.warnings, MinLevel: logging.LevelWarn}}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return &ComponentError{Component: "logging", Action: "create log directory", Err: err}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return &ComponentError{Component: "logging", Action: "open log file", Err: err}
		}
		b.app.closers = append(b.app.closers, f)
		sinks = append(sinks, logging.Sink{Writer: f, JSON: cfg.JSON})
	}

	b.app.log = logging.New(logging.Config{Level: level, Sinks: sinks})
	return nil
}

// initCatalog loads the lesson directory, or the built-in lessons when
// none is configured.
func (b *bootstrapper) initCatalog() error {
	dir := b.app.cfg.LessonsDir

	var (
		c   *learning.Catalog
		err error
	)
	if dir == "" {
		c, err = learning.DefaultCatalog()
	} else {
		c, err = learning.LoadCatalog(os.DirFS(dir), ".")
	}
	if err != nil {
		return &ComponentError{Component: "catalog", Action: fmt.Sprintf("load %q", dir), Err: err}
	}

	b.app.catalog = c
	b.app.log.Debug("loaded %d lessons", c.Len())
	return nil
}

func (b *bootstrapper) initSession() error {
	b.app.session = session.New(b.app.catalog, session.WithLogger(b.app.log))
	return nil
}
