package tui

import (
	"strings"

	"github.com/AvengeMedia/dankpages/internal/pages"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewNameInput(view pages.View) string {
	var b strings.Builder

	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Normal.Render(view.Name.Greeting))

	return b.String()
}

func (m Model) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)

	value := m.nameInput.Value()
	if value == m.controller.Session().Name {
		return m, cmd
	}

	next, evCmd := m.dispatch(pages.SetName{Text: value})
	return next, tea.Batch(cmd, evCmd)
}
