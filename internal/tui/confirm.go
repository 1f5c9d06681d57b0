package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question. Anything but yes is a no.
type confirmModel struct {
	message   string
	confirmed bool
	answered  bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmed = true
		m.answered = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.quit):
		m.answered = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	content := "Delete \"" + m.message + "\"?\n\n"
	content += helpStyle.Render("y yes    n no")
	return boxStyle.Render(content) + "\n"
}
