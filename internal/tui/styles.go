package tui

import (
	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

type AppTheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Subtle     string
	Error      string
	Warning    string
	Success    string
	Background string
	Surface    string
	OnPrimary  string
}

// DarkTheme is the purple Material palette used by the rest of the Dank tools.
func DarkTheme() AppTheme {
	return AppTheme{
		Primary:    "#ccbeff",
		Secondary:  "#4a3e76",
		Accent:     "#e7deff",
		Text:       "#e6e1e9",
		Subtle:     "#cac4cf",
		Error:      "#ffb4ab",
		Warning:    "#eeb8ca",
		Success:    "#ccbeff",
		Background: "#141318",
		Surface:    "#201f24",
		OnPrimary:  "#33275e",
	}
}

func LightTheme() AppTheme {
	return AppTheme{
		Primary:    "#63589c",
		Secondary:  "#e7deff",
		Accent:     "#4a3e76",
		Text:       "#1c1b20",
		Subtle:     "#48454e",
		Error:      "#ba1a1a",
		Warning:    "#7d5260",
		Success:    "#63589c",
		Background: "#fdf8fd",
		Surface:    "#f3edf7",
		OnPrimary:  "#ffffff",
	}
}

func ThemeFor(t pages.Theme) AppTheme {
	if t == pages.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginLeft(1).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Bold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.OnPrimary)).
			Background(lipgloss.Color(theme.Primary)).
			Padding(0, 1),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Background(lipgloss.Color(theme.Surface)).
			Padding(0, 2),

		HighlightButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.OnPrimary)).
			Background(lipgloss.Color(theme.Primary)).
			Padding(0, 2).
			Bold(true),

		SelectedOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		BigNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Secondary)),

		Slider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Secondary)),

		SliderKnob: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true),
	}
}

type Styles struct {
	Title           lipgloss.Style
	Normal          lipgloss.Style
	Bold            lipgloss.Style
	Subtle          lipgloss.Style
	Error           lipgloss.Style
	StatusBar       lipgloss.Style
	Key             lipgloss.Style
	Button          lipgloss.Style
	HighlightButton lipgloss.Style
	SelectedOption  lipgloss.Style
	BigNumber       lipgloss.Style
	Slider          lipgloss.Style
	SliderKnob      lipgloss.Style
}

func NewThemedProgress(theme AppTheme, width int) progress.Model {
	prog := progress.New(
		progress.WithGradient(theme.Secondary, theme.Primary),
	)

	prog.Width = width
	prog.ShowPercentage = true
	prog.PercentFormat = " %.0f%%"
	prog.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Text)).
		Bold(true)

	return prog
}
