package nav

import (
	"tableflip.dev/todocal/pkg/calendar"
	"tableflip.dev/todocal/pkg/store"
)

// Editor is the editing sub-state for a single day. It keeps the tasks that
// already exist and collects new ones until a blank line or the slot cap.
type Editor struct {
	Date     calendar.Date
	Existing []string
	Added    []string
	done     bool
}

// BeginEdit opens an editor on the cursor's day.
func (s *Session) BeginEdit() *Editor {
	existing := s.Tasks.TasksFor(s.Cursor.Day)
	return &Editor{
		Date:     s.Cursor,
		Existing: existing,
		done:     len(existing) >= store.MaxTasks,
	}
}

// Next is the 1-based number of the slot the next input goes into.
func (e *Editor) Next() int {
	return len(e.Existing) + len(e.Added) + 1
}

// Done reports whether the editor stopped accepting input.
func (e *Editor) Done() bool {
	return e.done
}

// Submit takes one line of input. A blank line ends editing, as does filling
// the last free slot. It returns Done().
func (e *Editor) Submit(text string) bool {
	if e.done {
		return true
	}
	text = store.NormalizeTask(text)
	if text == "" {
		e.done = true
		return true
	}
	e.Added = append(e.Added, text)
	if len(e.Existing)+len(e.Added) >= store.MaxTasks {
		e.done = true
	}
	return e.done
}

// Tasks is the full list the day will hold once committed.
func (e *Editor) Tasks() []string {
	out := make([]string, 0, len(e.Existing)+len(e.Added))
	out = append(out, e.Existing...)
	return append(out, e.Added...)
}

// Commit replaces the edited day's slot in the session store.
func (s *Session) Commit(e *Editor) {
	s.Tasks.SetTasksFor(e.Date.Day, e.Tasks())
}
