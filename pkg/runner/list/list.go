// Package list prints the stored tasks without opening the UI.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todocal/pkg/printers"
	"tableflip.dev/todocal/pkg/store"
)

// List prints every day that has tasks, or only Day when it is set.
type List struct {
	Persistence store.Persistence
	Day         int
	JSON        bool
	Out         io.Writer
}

type dayJSON struct {
	Day   int      `json:"day"`
	Tasks []string `json:"tasks"`
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	if l.Day < 0 || l.Day > store.MaxDays {
		return fmt.Errorf("todocal: day %d out of range 1..%d", l.Day, store.MaxDays)
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}

	tasks, err := l.Persistence.Load()
	if err != nil {
		return err
	}
	days := tasks.Days()
	if l.Day > 0 {
		days = []int{l.Day}
	}

	if l.JSON {
		all := make([]dayJSON, 0, len(days))
		for _, d := range days {
			all = append(all, dayJSON{Day: d, Tasks: nonNil(tasks.TasksFor(d))})
		}
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	if l.Day > 0 {
		pp := printers.PrettyPrint{Out: out}
		list := tasks.TasksFor(l.Day)
		pp.TitleWithCount(fmt.Sprintf("Day %d", l.Day), len(list))
		pp.Tasks(list...)
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = store.MaxTaskLen
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("#"), bold.Sprint("Task"))
	for _, d := range days {
		for i, task := range tasks.TasksFor(d) {
			day := ""
			if i == 0 {
				day = strconv.Itoa(d)
			}
			tbl.AddRow(day, strconv.Itoa(i+1), task)
		}
	}
	tbl.RightAlign(0)
	_, err = fmt.Fprintln(out, tbl)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
