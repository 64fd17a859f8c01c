// Package key prints the keyboard legend of the interactive calendar.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todocal/pkg/tui/keys"
)

// Key prints the browsing key bindings.
type Key struct {
	Out io.Writer
}

// Do renders the key legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Keys"), bold.Sprint("Action"))
	for _, group := range keys.Default().FullHelp() {
		for _, b := range group {
			h := b.Help()
			tbl.AddRow(h.Key, h.Desc)
		}
	}
	tbl.AddRow("", "")
	tbl.AddRow(bold.Sprint("Editing"), "")
	tbl.AddRow("enter", "add the typed task")
	tbl.AddRow("blank line", "finish and save")
	tbl.AddRow("esc", "finish and save")
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(out, tbl)
	return err
}
