// Package todolist renders the task pane, both while browsing and while a
// day is being edited.
package todolist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todocal/pkg/calendar"
	"tableflip.dev/todocal/pkg/nav"
)

// EditPrompt introduces the input lines while editing.
const EditPrompt = "New task (leave blank to finish):"

// Options controls task pane styling. Width, when positive, truncates lines.
type Options struct {
	TitleStyle  lipgloss.Style
	ItemStyle   lipgloss.Style
	PromptStyle lipgloss.Style
	Width       int
}

// DefaultOptions returns the styling used for the task pane.
func DefaultOptions() Options {
	return Options{
		TitleStyle:  lipgloss.NewStyle().Bold(true),
		ItemStyle:   lipgloss.NewStyle(),
		PromptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Render lists tasks for the cursor's day, numbered from 1.
func Render(cursor calendar.Date, tasks []string, opts Options) string {
	lines := []string{opts.TitleStyle.Render(fit(fmt.Sprintf(" Todo List for %s ", cursor), opts.Width))}
	for i, task := range tasks {
		if task == "" {
			break
		}
		lines = append(lines, opts.ItemStyle.Render(fit(fmt.Sprintf("%d. %s", i+1, task), opts.Width)))
	}
	return strings.Join(lines, "\n")
}

// RenderEditor echoes the day being edited: the tasks it already had, the
// ones entered so far and the input line for the next slot. input is the
// already rendered text field.
func RenderEditor(e *nav.Editor, input string, opts Options) string {
	lines := []string{opts.TitleStyle.Render(fit(fmt.Sprintf("Edit Todo List for %s:", e.Date), opts.Width))}
	for i, task := range e.Existing {
		lines = append(lines, opts.ItemStyle.Render(fit(fmt.Sprintf("%d. %s", i+1, task), opts.Width)))
	}
	lines = append(lines, opts.PromptStyle.Render(fit(EditPrompt, opts.Width)))
	n := len(e.Existing)
	for i, task := range e.Added {
		lines = append(lines, opts.ItemStyle.Render(fit(fmt.Sprintf("%d: %s", n+i+1, task), opts.Width)))
	}
	if !e.Done() {
		lines = append(lines, fmt.Sprintf("%d: %s", e.Next(), input))
	}
	return strings.Join(lines, "\n")
}

func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
