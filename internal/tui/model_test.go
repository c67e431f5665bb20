package tui

import (
	"testing"

	"github.com/AvengeMedia/dankpages/internal/pages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, layout pages.Layout, opts ...pages.Option) Model {
	t.Helper()
	c, err := pages.New(layout, opts...)
	require.NoError(t, err)
	return NewModel(c, Options{AppName: "Dank Pages", Version: "test", ProgressStep: 5})
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func TestTabCyclesPages(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())

	want := []pages.Page{
		pages.PageProgressBar,
		pages.PageNameInput,
		pages.PageThemeSelect,
		pages.PageCounter,
	}
	for _, p := range want {
		m = press(t, m, tab)
		assert.Equal(t, p, m.Controller().CurrentPage())
	}

	m = press(t, m, shiftTab)
	assert.Equal(t, pages.PageThemeSelect, m.Controller().CurrentPage())
}

func TestCounterKeys(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())

	m = press(t, m, runes("+"), runes("+"), tea.KeyMsg{Type: tea.KeyUp}, runes("-"))
	assert.Equal(t, 2, m.Controller().Session().Counter)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, -1, m.Controller().Session().Counter)
	assert.Contains(t, m.View(), "-1")
}

func TestSliderKeys(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())
	m = press(t, m, tab)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 10.0, m.Controller().Session().Progress)

	m = press(t, m, runes("h"))
	assert.Equal(t, 5.0, m.Controller().Session().Progress)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 100.0, m.Controller().Session().Progress)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0.0, m.Controller().Session().Progress)

	m = press(t, m, runes("L"))
	assert.InDelta(t, 0.01, m.Controller().Session().Progress, 1e-9)
	assert.Contains(t, m.View(), "value 0.01")
}

func TestNameInputTyping(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())
	m = press(t, m, tab, tab)
	require.Equal(t, pages.PageNameInput, m.Controller().CurrentPage())

	// q and ? are text here, not commands
	m = press(t, m, runes("q"), runes("?"), runes("A"))
	assert.Equal(t, "q?A", m.Controller().Session().Name)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "q?", m.Controller().Session().Name)
	assert.Contains(t, m.View(), "Hello, q?")
}

func TestNameSurvivesNavigation(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())
	m = press(t, m, tab, tab, runes("Ada"), tab, shiftTab)

	assert.Equal(t, pages.PageNameInput, m.Controller().CurrentPage())
	assert.Equal(t, "Ada", m.nameInput.Value())
	assert.True(t, m.nameInput.Focused())

	m = press(t, m, tab)
	assert.False(t, m.nameInput.Focused())
}

func TestThemeSelectionRestyles(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())
	m = press(t, m, shiftTab)
	require.Equal(t, pages.PageThemeSelect, m.Controller().CurrentPage())
	assert.Equal(t, DarkTheme(), m.palette)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, pages.ThemeLight, m.Controller().Session().Theme)
	assert.Equal(t, LightTheme(), m.palette)
	assert.Contains(t, m.View(), "(•) Light")

	m = press(t, m, runes("j"), runes("j"))
	assert.Equal(t, pages.ThemeDark, m.Controller().Session().Theme)
	assert.Equal(t, DarkTheme(), m.palette)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())
	require.False(t, m.help.ShowAll)

	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "previous page")
}

func TestViewShowsPageIndicator(t *testing.T) {
	layout, _ := pages.LayoutByName("three")
	m := newTestModel(t, layout)

	v := m.View()
	assert.Contains(t, v, "Counter")
	assert.Contains(t, v, "Page 1/3")

	m = press(t, m, shiftTab)
	assert.Contains(t, m.View(), "Page 3/3")
	assert.Contains(t, m.View(), "Name Input")
}

func TestUnknownPageView(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout(), pages.WithSession(pages.Session{CurrentPage: 7}))

	v := m.View()
	assert.Contains(t, v, "Page not found")
	assert.Contains(t, v, "nothing on page 7")

	// page keys do nothing, navigation still works
	m = press(t, m, runes("+"))
	assert.Equal(t, 0, m.Controller().Session().Counter)
	m = press(t, m, tab)
	assert.Equal(t, pages.PageCounter, m.Controller().CurrentPage())
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, pages.DefaultLayout())

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	m = updated.(Model)
	assert.Equal(t, 60, m.progress.Width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = updated.(Model)
	assert.Equal(t, 10, m.progress.Width)
	assert.Contains(t, m.View(), "Dank Pages")
}
