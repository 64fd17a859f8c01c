// Package nav is the browsing state machine: it owns the calendar cursor and
// the task store, and turns key actions into cursor moves and edits.
package nav

import (
	"tableflip.dev/todocal/pkg/calendar"
	"tableflip.dev/todocal/pkg/store"
)

// Action is a browsing command decoded from a key press.
type Action int

const (
	None Action = iota
	PrevDay
	NextDay
	PrevWeek
	NextWeek
	PrevMonth
	NextMonth
	Edit
	Quit
)

// Effect tells the caller what to do after an action was applied.
type Effect int

const (
	// EffectNone means only the cursor may have changed; redraw and wait.
	EffectNone Effect = iota
	// EffectEdit asks the caller to enter the editing sub-state.
	EffectEdit
	// EffectQuit ends the session.
	EffectQuit
)

// Session is the state shared by the browser, the renderers and the editor.
type Session struct {
	Cursor calendar.Date
	Tasks  *store.Tasks
	// RollYear makes n/p cross December/January into the next/previous year.
	// Off by default: paging keeps the year.
	RollYear bool
}

// New returns a session with the cursor at start.
func New(start calendar.Date, tasks *store.Tasks) *Session {
	if tasks == nil {
		tasks = store.NewTasks()
	}
	return &Session{Cursor: start.Clamp(), Tasks: tasks}
}

// Apply runs a browsing action against the cursor.
func (s *Session) Apply(a Action) Effect {
	c := s.Cursor
	last := c.DaysInMonth()
	switch a {
	case PrevDay:
		if c.Day > 1 {
			c.Day--
		}
	case NextDay:
		if c.Day < last {
			c.Day++
		}
	case NextWeek:
		c.Day = min(c.Day+7, last)
	case PrevWeek:
		c.Day = max(c.Day-7, 1)
	case NextMonth:
		c.Month++
		if c.Month == 12 {
			c.Month = 0
			if s.RollYear {
				c.Year++
			}
		}
		c.Day = 1
	case PrevMonth:
		c.Month--
		if c.Month < 0 {
			c.Month = 11
			if s.RollYear {
				c.Year--
			}
		}
		c.Day = 1
	case Edit:
		return EffectEdit
	case Quit:
		return EffectQuit
	}
	s.Cursor = c.Clamp()
	return EffectNone
}

// Stamp returns the month (1..12) and year written into saved headers.
func (s *Session) Stamp() (int, int) {
	return s.Cursor.Month + 1, s.Cursor.Year
}
