// Package app wires configuration, logging, the lesson catalog, and the
// terminal front end into one trainer run.
package app

import (
	"bytes"
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vex/internal/config"
	"github.com/dshills/vex/internal/learning"
	"github.com/dshills/vex/internal/logging"
	"github.com/dshills/vex/internal/session"
	"github.com/dshills/vex/internal/ui"
	"github.com/dshills/vex/internal/watcher"
)

// Options are the command line settings. Empty strings and false leave
// the configured value in place.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LessonsDir overrides the lesson directory.
	LessonsDir string

	// LogFile and LogLevel override the log settings.
	LogFile  string
	LogLevel string

	// LogJSON switches the log file to JSON records.
	LogJSON bool

	// Theme overrides the color theme.
	Theme string

	// NoWatch disables lesson directory watching.
	NoWatch bool
}

// Application holds everything one trainer run needs.
type Application struct {
	opts Options
	cfg  config.Config
	log  *logging.Logger

	// warnings collects warn and error records to report after the
	// screen is released.
	warnings bytes.Buffer
	closers  []io.Closer

	catalog *learning.Catalog
	session *session.Session

	running   atomic.Bool
	closeOnce sync.Once
}

// New loads settings and lessons. Call Shutdown when done.
func New(opts Options) (*Application, error) {
	a := &Application{opts: opts, log: logging.Nop()}
	if err := newBootstrapper(a).bootstrap(); err != nil {
		return nil, err
	}
	return a, nil
}

// Config returns the resolved settings.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Session returns the trainer session.
func (a *Application) Session() *session.Session {
	return a.session
}

// Logger returns the application logger.
func (a *Application) Logger() *logging.Logger {
	return a.log
}

// Warnings returns warnings logged so far.
func (a *Application) Warnings() string {
	return a.warnings.String()
}

// Run drives the session on screen until the learner quits or ctx is
// done. The screen must already be initialized.
func (a *Application) Run(ctx context.Context, screen tcell.Screen) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	theme, _ := ui.ThemeByName(a.cfg.UI.Theme)
	renderer := ui.NewRenderer(screen, theme, a.cfg.UI.ShowPending)
	front := ui.NewApp(screen, a.session, renderer, a.log)

	if a.cfg.LessonsDir != "" && a.cfg.WatchLessons {
		w, err := watcher.New(a.cfg.LessonsDir, front.PostCatalog, watcher.WithLogger(a.log))
		if err != nil {
			a.log.Warn("not watching lessons: %v", err)
		} else {
			defer w.Close()
		}
	}

	a.log.Info("session %s started with %d lessons", a.session.ID(), a.catalog.Len())
	err := front.Run(ctx)
	a.log.Info("session %s ended", a.session.ID())
	return err
}

// Shutdown releases log files. It is safe to call more than once.
func (a *Application) Shutdown() {
	a.closeOnce.Do(func() {
		for i := len(a.closers) - 1; i >= 0; i-- {
			_ = a.closers[i].Close()
		}
		a.closers = nil
	})
}
