// Package add appends a task to a day from the command line.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/todocal/pkg/calendar"
	"tableflip.dev/todocal/pkg/printers"
	"tableflip.dev/todocal/pkg/store"
)

type Add struct {
	// Day defaults to today's day of the month.
	Day     int
	Message string

	Persistence store.Persistence
	Now         func() time.Time
	Out         io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if err := store.ValidateTask(n.Message); err != nil {
		return err
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	today := calendar.Today(now())
	if n.Day == 0 {
		n.Day = today.Day
	}
	if n.Day < 1 || n.Day > store.MaxDays {
		return fmt.Errorf("todocal: day %d out of range 1..%d", n.Day, store.MaxDays)
	}

	tasks, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}
	if !tasks.Add(n.Day, n.Message) {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(out, "day %d already has %d tasks, nothing added\n", n.Day, store.MaxTasks)
		return nil
	}
	if err := n.Persistence.Save(tasks, today.Month+1, today.Year); err != nil {
		return err
	}

	list := tasks.TasksFor(n.Day)
	pp.TitleWithCount(fmt.Sprintf("Day %d", n.Day), len(list))
	pp.Tasks(list...)
	return nil
}
