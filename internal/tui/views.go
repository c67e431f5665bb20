package tui

import (
	"fmt"
	"strings"

	"github.com/AvengeMedia/dankpages/internal/pages"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	view := m.controller.CurrentPageView()

	title := m.styles.Title.Render(view.Page.String())
	b.WriteString(title)
	b.WriteString("\n")

	switch view.Page {
	case pages.PageCounter:
		b.WriteString(m.viewCounter(view))
	case pages.PageProgressBar:
		b.WriteString(m.viewProgress(view))
	case pages.PageNameInput:
		b.WriteString(m.viewNameInput(view))
	case pages.PageThemeSelect:
		b.WriteString(m.viewThemeSelect(view))
	default:
		b.WriteString(m.viewUnknown(view))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderNavigation(view))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys.forPage(view.Page)))

	return m.frame(b.String())
}

func (m Model) renderNavigation(view pages.View) string {
	prev := m.styles.Button.Render("◀ Previous Page")
	next := m.styles.HighlightButton.Render("Next Page ▶")
	status := m.styles.StatusBar.Render(fmt.Sprintf("Page %d/%d", view.Index, view.PageCount))
	return prev + "  " + status + "  " + next
}

func (m Model) viewUnknown(view pages.View) string {
	msg := fmt.Sprintf("There is nothing on page %d.", view.Index)
	return m.styles.Subtle.Render(msg)
}
