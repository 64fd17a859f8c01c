package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/todocal/pkg/nav"
)

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestAction(t *testing.T) {
	km := Default()
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want nav.Action
	}{
		{"h", char('h'), nav.PrevDay},
		{"left", tea.KeyPressMsg{Code: tea.KeyLeft}, nav.PrevDay},
		{"l", char('l'), nav.NextDay},
		{"right", tea.KeyPressMsg{Code: tea.KeyRight}, nav.NextDay},
		{"j", char('j'), nav.NextWeek},
		{"down", tea.KeyPressMsg{Code: tea.KeyDown}, nav.NextWeek},
		{"k", char('k'), nav.PrevWeek},
		{"n", char('n'), nav.NextMonth},
		{"p", char('p'), nav.PrevMonth},
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}, nav.Edit},
		{"q", char('q'), nav.Quit},
		{"ctrl+c", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, nav.Quit},
		{"x", char('x'), nav.None},
		{"?", char('?'), nav.None},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
