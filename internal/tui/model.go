package tui

import (
	"github.com/AvengeMedia/dankpages/internal/log"
	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultProgressWidth = 40
	fineProgressStep     = 0.01
)

type Options struct {
	AppName      string
	Version      string
	ProgressStep float64
}

// Model is the root Bubble Tea model. It owns the page controller and turns
// key presses into page events.
type Model struct {
	controller *pages.Controller
	appName    string
	version    string
	step       float64

	keys      KeyMap
	help      help.Model
	nameInput textinput.Model
	progress  progress.Model

	theme   pages.Theme
	palette AppTheme
	styles  Styles

	width  int
	height int
}

func NewModel(controller *pages.Controller, opts Options) Model {
	if opts.ProgressStep <= 0 {
		opts.ProgressStep = 1
	}

	ti := textinput.New()
	ti.Placeholder = "Enter your name..."
	ti.CharLimit = 64
	ti.Width = 32
	ti.SetValue(controller.Session().Name)

	m := Model{
		controller: controller,
		appName:    opts.AppName,
		version:    opts.Version,
		step:       opts.ProgressStep,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		nameInput:  ti,
	}
	m.applyTheme(controller.Session().Theme)
	if controller.CurrentPage() == pages.PageNameInput {
		m.nameInput.Focus()
	}
	return m
}

func (m *Model) applyTheme(t pages.Theme) {
	m.theme = t
	m.palette = ThemeFor(t)
	m.styles = NewStyles(m.palette)

	width := defaultProgressWidth
	if m.progress.Width > 0 {
		width = m.progress.Width
	}
	m.progress = NewThemedProgress(m.palette, width)

	m.help.Styles.ShortKey = m.styles.Key
	m.help.Styles.FullKey = m.styles.Key
	m.help.Styles.ShortDesc = m.styles.Subtle
	m.help.Styles.FullDesc = m.styles.Subtle
	m.help.Styles.ShortSeparator = m.styles.Subtle
	m.help.Styles.FullSeparator = m.styles.Subtle

	m.nameInput.PromptStyle = m.styles.Key
	m.nameInput.TextStyle = m.styles.Normal
	m.nameInput.PlaceholderStyle = m.styles.Subtle
}

func (m Model) Controller() *pages.Controller {
	return m.controller
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.controller.Title(m.appName))}
	if m.controller.CurrentPage() == pages.PageNameInput {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = clamp(msg.Width-16, 10, 60)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.controller.CurrentPage() == pages.PageNameInput {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.dispatch(pages.AdvancePage{})
	case key.Matches(msg, m.keys.Prev):
		return m.dispatch(pages.RetreatPage{})
	}

	page := m.controller.CurrentPage()
	if page == pages.PageNameInput {
		return m.updateNameInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch page {
	case pages.PageCounter:
		return m.updateCounter(msg)
	case pages.PageProgressBar:
		return m.updateProgress(msg)
	case pages.PageThemeSelect:
		return m.updateThemeSelect(msg)
	}
	return m, nil
}

// dispatch feeds one event to the controller and brings widget state in line
// with the page it lands on.
func (m Model) dispatch(ev pages.Event) (Model, tea.Cmd) {
	before := m.controller.CurrentPage()
	m.controller.HandleEvent(ev)
	view := m.controller.CurrentPageView()

	log.Debug("page event", "event", ev, "page", view.Page, "index", view.Index)

	cmds := []tea.Cmd{tea.SetWindowTitle(m.controller.Title(m.appName))}

	if view.Theme != m.theme {
		log.Info("theme changed", "theme", view.Theme)
		m.applyTheme(view.Theme)
	}

	if view.Page != before {
		if view.Page == pages.PageNameInput {
			m.nameInput.SetValue(m.controller.Session().Name)
			m.nameInput.CursorEnd()
			cmds = append(cmds, m.nameInput.Focus())
		} else {
			m.nameInput.Blur()
		}
	}

	return m, tea.Batch(cmds...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// frame centres the content on a themed background once the terminal size is known.
func (m Model) frame(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.palette.Background)))
}
