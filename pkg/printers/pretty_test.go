package printers

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestTasks(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.TitleWithCount("10/01/2024", 2)
	pp.Tasks("Buy milk", "Call Bob")
	pp.Tasks()

	want := "10/01/2024 - 2 tasks\n 1. Buy milk\n 2. Call Bob\n\n none\n\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
