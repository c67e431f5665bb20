package tui

import (
	"fmt"
	"strings"

	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewProgress(view pages.View) string {
	var b strings.Builder

	p := view.Progress
	b.WriteString(m.progress.ViewAs(p.Ratio()))
	b.WriteString("\n\n")
	b.WriteString(m.renderSlider(*p))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("value %.2f", p.Value)))

	return b.String()
}

// renderSlider draws a text slider as wide as the progress bar with the knob at the value.
func (m Model) renderSlider(p pages.ProgressView) string {
	width := m.progress.Width
	if width < 2 {
		width = 2
	}
	knob := int(p.Ratio()*float64(width-1) + 0.5)

	left := strings.Repeat("━", knob)
	right := strings.Repeat("─", width-1-knob)

	return m.styles.Subtle.Render(fmt.Sprintf("%g ", p.Min)) +
		m.styles.SliderKnob.Render(left+"●") +
		m.styles.Slider.Render(right) +
		m.styles.Subtle.Render(fmt.Sprintf(" %g", p.Max))
}

func (m Model) updateProgress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.controller.Session().Progress

	switch {
	case key.Matches(msg, m.keys.SliderUp):
		return m.dispatch(pages.SetProgress{Value: current + m.step})
	case key.Matches(msg, m.keys.SliderDown):
		return m.dispatch(pages.SetProgress{Value: current - m.step})
	case key.Matches(msg, m.keys.FineUp):
		return m.dispatch(pages.SetProgress{Value: current + fineProgressStep})
	case key.Matches(msg, m.keys.FineDown):
		return m.dispatch(pages.SetProgress{Value: current - fineProgressStep})
	case key.Matches(msg, m.keys.SliderMin):
		return m.dispatch(pages.SetProgress{Value: pages.ProgressMin})
	case key.Matches(msg, m.keys.SliderMax):
		return m.dispatch(pages.SetProgress{Value: pages.ProgressMax})
	}
	return m, nil
}
