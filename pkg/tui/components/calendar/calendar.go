// Package calendar renders the month grid pane.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	calmath "tableflip.dev/todocal/pkg/calendar"
)

// WeekdayHeader labels the grid columns, Sunday first.
const WeekdayHeader = " Su Mo Tu We Th Fr Sa "

// Day describes a single day rendered in the calendar. The zero Day is a
// blank cell before the first of the month.
type Day struct {
	Day        int
	HasEntry   bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle(),
		EntryStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
	}
}

// Rows lays out the cursor's month seven days per row. The first row is
// padded with blank days up to the weekday of the 1st, and the last row ends
// at the last day of the month.
func Rows(cursor calmath.Date, entryDays map[int]bool) [][]Day {
	offset := calmath.FirstWeekday(cursor.Month, cursor.Year)
	daysInMonth := cursor.DaysInMonth()

	var rows [][]Day
	row := make([]Day, 0, 7)
	for i := 0; i < offset; i++ {
		row = append(row, Day{})
	}
	for day := 1; day <= daysInMonth; day++ {
		row = append(row, Day{
			Day:        day,
			HasEntry:   entryDays[day],
			IsSelected: day == cursor.Day,
		})
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]Day, 0, 7)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// Render produces the pane body: title, weekday labels and the day grid.
// Every cell is three columns wide.
func Render(cursor calmath.Date, entryDays map[int]bool, opts Options) string {
	lines := []string{
		opts.TitleStyle.Render(fmt.Sprintf(" Calendar for %s ", cursor.MonthString())),
		opts.HeaderStyle.Render(WeekdayHeader),
	}
	for _, row := range Rows(cursor, entryDays) {
		var b strings.Builder
		for _, d := range row {
			b.WriteString(renderDay(d, opts))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func renderDay(info Day, opts Options) string {
	if info.Day == 0 {
		return "   "
	}
	text := fmt.Sprintf(" %2d", info.Day)

	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}

// EntryDays turns a list of days into the lookup Render expects.
func EntryDays(days []int) map[int]bool {
	out := make(map[int]bool, len(days))
	for _, d := range days {
		out[d] = true
	}
	return out
}
