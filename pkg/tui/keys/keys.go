// Package keys binds key presses to browsing actions.
package keys

import (
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/todocal/pkg/nav"
)

// KeyMap holds the browsing bindings. It satisfies help.KeyMap.
type KeyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	NextWeek  key.Binding
	PrevWeek  key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
	Edit      key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// Default returns the vi-style bindings, with arrow keys as aliases.
func Default() KeyMap {
	return KeyMap{
		PrevDay:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),
		NextWeek:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next week")),
		PrevWeek:  key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev week")),
		NextMonth: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next month")),
		PrevMonth: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev month")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit day")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// Action maps a key press to a browsing action. Unbound keys map to
// nav.None.
func (k KeyMap) Action(msg tea.KeyPressMsg) nav.Action {
	bindings := []struct {
		b key.Binding
		a nav.Action
	}{
		{k.PrevDay, nav.PrevDay},
		{k.NextDay, nav.NextDay},
		{k.NextWeek, nav.NextWeek},
		{k.PrevWeek, nav.PrevWeek},
		{k.NextMonth, nav.NextMonth},
		{k.PrevMonth, nav.PrevMonth},
		{k.Edit, nav.Edit},
		{k.Quit, nav.Quit},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.a
		}
	}
	return nav.None
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDay, k.NextWeek, k.NextMonth, k.Edit, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay},
		{k.PrevWeek, k.NextWeek},
		{k.PrevMonth, k.NextMonth},
		{k.Edit, k.Quit, k.Help},
	}
}
