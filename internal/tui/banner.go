package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) renderBanner() string {
	logo := `
██████╗  █████╗ ███╗   ██╗██╗  ██╗
██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝
██║  ██║███████║██╔██╗ ██║█████╔╝ 
██║  ██║██╔══██║██║╚██╗██║██╔═██╗ 
██████╔╝██║  ██║██║ ╚████║██║  ██╗
╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝ `

	// short terminals get the plain title only
	if m.height > 0 && m.height < 24 {
		return m.styles.Title.Render(m.appName)
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.palette.Primary)).
		Bold(true).
		Align(lipgloss.Center).
		MarginBottom(1)

	banner := style.Render(logo)
	if m.version != "" {
		banner += "\n" + m.styles.Subtle.Render(m.appName+" "+m.version)
	}
	return banner
}
