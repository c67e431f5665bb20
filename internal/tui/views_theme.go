package tui

import (
	"strings"

	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewThemeSelect(view pages.View) string {
	var b strings.Builder

	for i, choice := range view.ThemeSelect.Choices {
		if choice == view.ThemeSelect.Selected {
			b.WriteString(m.styles.SelectedOption.Render("(•) " + choice.String()))
		} else {
			b.WriteString(m.styles.Normal.Render("( ) " + choice.String()))
		}
		if i < len(view.ThemeSelect.Choices)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) updateThemeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ThemeLight):
		return m.dispatch(pages.SetTheme{Theme: pages.ThemeLight})
	case key.Matches(msg, m.keys.ThemeDark):
		return m.dispatch(pages.SetTheme{Theme: pages.ThemeDark})
	}
	return m, nil
}
