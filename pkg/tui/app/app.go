// Package app hosts the Bubble Tea model that browses the calendar and edits
// day task lists.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log"

	"tableflip.dev/todocal/pkg/nav"
	"tableflip.dev/todocal/pkg/store"
	"tableflip.dev/todocal/pkg/tui/components/calendar"
	"tableflip.dev/todocal/pkg/tui/components/todolist"
	"tableflip.dev/todocal/pkg/tui/keys"
	"tableflip.dev/todocal/pkg/tui/theme"
)

// Saver persists the task store. store.Persistence satisfies it.
type Saver interface {
	Save(t *store.Tasks, month, year int) error
}

// Model is the root Bubble Tea model.
type Model struct {
	session *nav.Session
	saver   Saver
	logger  *log.Logger

	keys  keys.KeyMap
	help  help.Model
	input textinput.Model
	theme theme.Theme

	calendarOpts calendar.Options
	listOpts     todolist.Options

	// editor is non-nil while a day is being edited; browsing keys are not
	// processed until it is finished.
	editor        *nav.Editor
	quitAfterEdit bool

	status   string
	err      error
	quitting bool

	termWidth  int
	termHeight int
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// New constructs the model around a session. saver may be nil, in which case
// edits stay in memory.
func New(session *nav.Session, saver Saver, opts ...Option) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Describe the task…"
	ti.CharLimit = store.MaxTaskLen
	ti.Blur()

	m := &Model{
		session:      session,
		saver:        saver,
		logger:       log.New(io.Discard),
		keys:         keys.Default(),
		help:         help.New(),
		input:        ti,
		theme:        theme.Default(),
		calendarOpts: calendar.DefaultOptions(),
		listOpts:     todolist.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run launches the UI and blocks until the user quits.
func Run(session *nav.Session, saver Saver, opts ...Option) error {
	p := tea.NewProgram(New(session, saver, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tea.KeyPressMsg:
		if m.editor != nil {
			m.handleEditKey(msg, &cmds)
		} else {
			m.handleBrowseKey(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleBrowseKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return
	}
	switch m.session.Apply(m.keys.Action(msg)) {
	case nav.EffectQuit:
		m.quitting = true
		*cmds = append(*cmds, tea.Quit)
	case nav.EffectEdit:
		m.beginEdit(cmds)
	}
}

func (m *Model) beginEdit(cmds *[]tea.Cmd) {
	m.editor = m.session.BeginEdit()
	m.err = nil
	m.logger.Debug("edit started", "date", m.editor.Date.String(), "existing", len(m.editor.Existing))
	if m.editor.Done() {
		m.setStatus(fmt.Sprintf("%s already has %d tasks", m.editor.Date, store.MaxTasks))
		m.finishEdit(cmds)
		return
	}
	m.input.Reset()
	*cmds = append(*cmds, m.input.Focus())
	m.setStatus("")
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		done := m.editor.Submit(m.input.Value())
		m.input.Reset()
		if done {
			m.finishEdit(cmds)
		}
	case "esc":
		m.editor.Submit("")
		m.finishEdit(cmds)
	case "ctrl+c":
		m.editor.Submit("")
		m.quitAfterEdit = true
		m.finishEdit(cmds)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

// finishEdit leaves the editing sub-state: the input is blurred whatever
// happens, the day's slot is committed and the store saved.
func (m *Model) finishEdit(cmds *[]tea.Cmd) {
	defer func() {
		m.input.Reset()
		m.input.Blur()
		m.editor = nil
		if m.quitAfterEdit {
			m.quitting = true
			*cmds = append(*cmds, tea.Quit)
		}
	}()

	m.session.Commit(m.editor)
	if m.saver == nil {
		return
	}
	month, year := m.session.Stamp()
	if err := m.saver.Save(m.session.Tasks, month, year); err != nil {
		m.err = err
		m.logger.Error("save failed", "err", err)
		return
	}
	added := len(m.editor.Added)
	m.logger.Info("saved", "date", m.editor.Date.String(), "added", added, "total", m.session.Tasks.Len())
	if m.status == "" {
		m.setStatus(fmt.Sprintf("Saved %d new task(s) for %s", added, m.editor.Date))
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// Editing reports whether the editing sub-state is active.
func (m *Model) Editing() bool {
	return m.editor != nil
}

// Err is the last save error, cleared when the next edit starts.
func (m *Model) Err() error {
	return m.err
}

// applySizes recalculates pane sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 {
		return
	}
	_, listWidth := m.paneWidths()
	// Frame border and padding take four columns.
	m.listOpts.Width = max(listWidth-4, 8)
	m.input.SetWidth(max(listWidth-8, 8))
}

// paneWidths splits the terminal two thirds to the calendar.
func (m *Model) paneWidths() (int, int) {
	cal := m.termWidth * 2 / 3
	return cal, m.termWidth - cal
}

// View implements tea.Model. Both panes are rebuilt on every frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	cursor := m.session.Cursor
	tasks := m.session.Tasks

	calBody := calendar.Render(cursor, calendar.EntryDays(tasks.Days()), m.calendarOpts)
	var listBody string
	if m.editor != nil {
		listBody = todolist.RenderEditor(m.editor, m.input.View(), m.listOpts)
	} else {
		listBody = todolist.Render(cursor, tasks.TasksFor(cursor.Day), m.listOpts)
	}

	calFrame, listFrame := m.theme.Panel.ActiveFrame, m.theme.Panel.Frame
	if m.editor != nil {
		calFrame, listFrame = listFrame, calFrame
	}
	if m.termWidth > 0 {
		calWidth, listWidth := m.paneWidths()
		height := max(m.termHeight-4, 1)
		calFrame = calFrame.Width(calWidth).Height(height)
		listFrame = listFrame.Width(listWidth).Height(height)
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top, calFrame.Render(calBody), listFrame.Render(listBody))
	return strings.Join([]string{panes, m.footer()}, "\n")
}

func (m *Model) footer() string {
	var status string
	switch {
	case m.err != nil:
		status = m.theme.Footer.Error.Render("ERR: " + m.err.Error())
	case m.editor != nil:
		status = m.theme.Footer.Status.Render("enter: add task · blank line or esc: finish")
	default:
		status = m.theme.Footer.Status.Render(m.status)
	}
	if m.editor != nil {
		return status
	}
	return status + "\n" + m.help.View(m.keys)
}
