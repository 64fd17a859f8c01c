package store

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// MaxDays is the number of day-of-month slots.
	MaxDays = 31
	// MaxTasks bounds the number of tasks kept for a single day.
	MaxTasks = 10
	// MaxTaskLen bounds the length of a task in runes.
	MaxTaskLen = 99
)

var (
	// ErrTaskTooLong rejects tasks longer than MaxTaskLen runes.
	ErrTaskTooLong = errors.New("store: task exceeds 99 characters")
	// ErrTaskNewline rejects tasks spanning more than one line.
	ErrTaskNewline = errors.New("store: task contains a line break")
)

// Tasks maps a day of the month to its ordered task list. Slots are keyed by
// day only, so day 15 holds the same list whichever month is on screen.
type Tasks struct {
	days [MaxDays][]string
}

// NewTasks returns an empty store.
func NewTasks() *Tasks {
	return &Tasks{}
}

// TasksFor returns a copy of the list for day (1..31). Out of range days have
// no tasks.
func (t *Tasks) TasksFor(day int) []string {
	if t == nil || day < 1 || day > MaxDays {
		return nil
	}
	slot := t.days[day-1]
	if len(slot) == 0 {
		return nil
	}
	out := make([]string, len(slot))
	copy(out, slot)
	return out
}

// SetTasksFor replaces the list for day. Empty entries are dropped and only
// the first MaxTasks are kept.
func (t *Tasks) SetTasksFor(day int, list []string) {
	if day < 1 || day > MaxDays {
		return
	}
	slot := make([]string, 0, min(len(list), MaxTasks))
	for _, task := range list {
		if len(slot) == MaxTasks {
			break
		}
		task = NormalizeTask(task)
		if task == "" {
			continue
		}
		slot = append(slot, task)
	}
	if len(slot) == 0 {
		slot = nil
	}
	t.days[day-1] = slot
}

// Add appends task to day. It reports false when the day is full, the day is
// out of range, or the task is empty after normalization.
func (t *Tasks) Add(day int, task string) bool {
	if day < 1 || day > MaxDays {
		return false
	}
	task = NormalizeTask(task)
	if task == "" || len(t.days[day-1]) >= MaxTasks {
		return false
	}
	t.days[day-1] = append(t.days[day-1], task)
	return true
}

// Days returns the days that hold at least one task, ascending.
func (t *Tasks) Days() []int {
	var out []int
	for i, slot := range t.days {
		if len(slot) > 0 {
			out = append(out, i+1)
		}
	}
	return out
}

// Len is the total number of tasks across all days.
func (t *Tasks) Len() int {
	n := 0
	for _, slot := range t.days {
		n += len(slot)
	}
	return n
}

// ValidateTask checks task against the single-line, bounded-length rules.
func ValidateTask(task string) error {
	if strings.ContainsAny(task, "\r\n") {
		return ErrTaskNewline
	}
	if utf8.RuneCountInString(task) > MaxTaskLen {
		return ErrTaskTooLong
	}
	return nil
}

// NormalizeTask cuts task at its first line break and truncates it to
// MaxTaskLen runes.
func NormalizeTask(task string) string {
	if i := strings.IndexAny(task, "\r\n"); i >= 0 {
		task = task[:i]
	}
	if utf8.RuneCountInString(task) <= MaxTaskLen {
		return task
	}
	runes := []rune(task)
	return string(runes[:MaxTaskLen])
}
