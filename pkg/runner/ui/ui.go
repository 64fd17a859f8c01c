// Package ui starts the interactive calendar.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"tableflip.dev/todocal/pkg/calendar"
	"tableflip.dev/todocal/pkg/nav"
	"tableflip.dev/todocal/pkg/store"
	"tableflip.dev/todocal/pkg/tui/app"
)

// UI opens the terminal calendar on today's date.
type UI struct {
	Persistence store.Persistence
	RollYear    bool
	// LogFile receives diagnostic logs; empty disables logging.
	LogFile string
	Now     func() time.Time
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("todocal: no persistence configured")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("todocal: the calendar needs an interactive terminal")
	}

	logger, closeLog, err := u.logger()
	if err != nil {
		return err
	}
	defer closeLog()

	tasks, err := u.Persistence.Load()
	if err != nil {
		return err
	}
	now := time.Now
	if u.Now != nil {
		now = u.Now
	}
	session := nav.New(calendar.Today(now()), tasks)
	session.RollYear = u.RollYear

	logger.Info("starting", "file", u.Persistence.Path(), "tasks", tasks.Len(), "cursor", session.Cursor.String())
	if err := app.Run(session, u.Persistence, app.WithLogger(logger)); err != nil {
		return fmt.Errorf("todocal: ui: %w", err)
	}
	logger.Info("quit")
	return nil
}

func (u *UI) logger() (*log.Logger, func(), error) {
	if u.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(u.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("todocal: open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "todocal",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
