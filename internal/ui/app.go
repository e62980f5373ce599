package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vex/internal/learning"
	"github.com/dshills/vex/internal/logging"
	"github.com/dshills/vex/internal/session"
)

// App runs the event loop for one session on one screen.
type App struct {
	screen   tcell.Screen
	session  *session.Session
	renderer *Renderer
	log      *logging.Logger
}

// catalogEvent carries a reloaded catalog onto the event loop.
type catalogEvent struct {
	tcell.EventTime
	catalog *learning.Catalog
}

// NewApp creates an App. The screen must already be initialized.
func NewApp(screen tcell.Screen, sess *session.Session, renderer *Renderer, log *logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		screen:   screen,
		session:  sess,
		renderer: renderer,
		log:      log.WithComponent("ui"),
	}
}

// PostCatalog hands a reloaded catalog to the event loop. It is safe to
// call from any goroutine.
func (a *App) PostCatalog(c *learning.Catalog) {
	ev := &catalogEvent{catalog: c}
	ev.SetEventNow()
	if err := a.screen.PostEvent(ev); err != nil {
		a.log.Warn("dropping catalog reload: %v", err)
	}
}

// Run draws and handles events until the session stops or ctx is done.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	a.renderer.Draw(a.session.View())

	for a.session.Running() {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if k, ok := convertKey(ev); ok {
				a.session.HandleKey(k)
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case *catalogEvent:
			a.session.ReplaceCatalog(ev.catalog)
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				a.log.Info("interrupted: %v", context.Cause(ctx))
				return nil
			}
		}

		if a.session.Running() {
			a.renderer.Draw(a.session.View())
		}
	}
	return nil
}
