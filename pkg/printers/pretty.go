package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrettyPrint writes task lists for people, in color when Out is a terminal.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Tasks prints a numbered list, or a faint "none" when there is nothing.
func (pp *PrettyPrint) Tasks(tasks ...string) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	n := color.New(color.FgHiYellow, color.Faint)
	t := color.New()
	for i, task := range tasks {
		_, _ = n.Fprintf(pp.out(), "%2d. ", i+1)
		_, _ = t.Fprintln(pp.out(), task)
	}
	_, _ = t.Fprintln(pp.out(), "")
}
