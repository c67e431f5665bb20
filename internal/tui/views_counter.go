package tui

import (
	"strconv"
	"strings"

	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewCounter(view pages.View) string {
	var b strings.Builder

	b.WriteString(m.styles.Button.Render("+ Increment"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.BigNumber.Render(strconv.Itoa(view.Counter.Value)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Button.Render("- Decrement"))

	return b.String()
}

func (m Model) updateCounter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Increment):
		return m.dispatch(pages.IncrementCounter{})
	case key.Matches(msg, m.keys.Decrement):
		return m.dispatch(pages.DecrementCounter{})
	}
	return m, nil
}
