// Package main is the entry point for the VEX Vim movement trainer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vex/internal/app"
	"github.com/dshills/vex/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, done := parseFlags(os.Args[1:])
	if done {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := application.Run(ctx, screen)
	screen.Fini()

	if w := application.Warnings(); w != "" {
		fmt.Fprint(os.Stderr, w)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

// parseFlags parses args. done reports that the process should exit
// with code without starting the trainer.
func parseFlags(args []string) (opts app.Options, code int, done bool) {
	fs := flag.NewFlagSet("vex", flag.ContinueOnError)
	var showVersion, showHelp bool

	fs.StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LessonsDir, "lessons", "", "Directory of lesson files (default: built-in lessons)")
	fs.StringVar(&opts.LessonsDir, "l", "", "Directory of lesson files (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level ("+strings.Join(config.LogLevels, ", ")+")")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.LogJSON, "log-json", false, "Write logs as JSON")
	fs.StringVar(&opts.Theme, "theme", "", "Color theme ("+strings.Join(config.Themes, ", ")+")")
	fs.BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload the lesson directory on change")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "VEX - Vim movement trainer\n\n")
		fmt.Fprintf(out, "Usage: vex [options]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  vex                         Start with the built-in lessons\n")
		fmt.Fprintf(out, "  vex -l ./lessons            Practice custom lessons\n")
		fmt.Fprintf(out, "  vex -log-file /tmp/vex.log -log-level debug\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showHelp {
		fs.Usage()
		return opts, 0, true
	}

	if showVersion {
		fmt.Printf("VEX %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, 0, true
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return opts, 2, true
	}

	return opts, 0, false
}
