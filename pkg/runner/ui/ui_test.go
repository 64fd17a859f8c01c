package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-isatty"

	"tableflip.dev/todocal/pkg/store"
)

func TestDoNeedsPersistence(t *testing.T) {
	u := &UI{}
	if err := u.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without persistence")
	}
}

func TestDoRefusesNonTerminal(t *testing.T) {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		t.Skip("stdout is a terminal")
	}
	dir := t.TempDir()
	u := &UI{
		Persistence: store.Open(filepath.Join(dir, store.DefaultFile)),
		LogFile:     filepath.Join(dir, "todocal.log"),
	}
	err := u.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("Do() = %v, want terminal error", err)
	}
	if _, err := os.Stat(u.LogFile); !os.IsNotExist(err) {
		t.Fatalf("log file should not be created before the terminal check: %v", err)
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todocal.log")
	u := &UI{LogFile: path}
	logger, closeLog, err := u.logger()
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	logger.Info("saved", "day", 10)
	closeLog()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := string(b); !strings.Contains(got, "saved") || !strings.Contains(got, "day=10") {
		t.Fatalf("log = %q", got)
	}
}

func TestLoggerDiscardsWithoutFile(t *testing.T) {
	u := &UI{}
	logger, closeLog, err := u.logger()
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestLoggerBadPath(t *testing.T) {
	u := &UI{LogFile: filepath.Join(t.TempDir(), "missing", "todocal.log")}
	if _, _, err := u.logger(); err == nil {
		t.Fatalf("expected an error for an unwritable log path")
	}
}
