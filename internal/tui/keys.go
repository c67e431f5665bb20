package tui

import (
	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the TUI. Page specific bindings
// overlap; which one applies depends on the page showing.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Increment  key.Binding
	Decrement  key.Binding
	SliderUp   key.Binding
	SliderDown key.Binding
	FineUp     key.Binding
	FineDown   key.Binding
	SliderMin  key.Binding
	SliderMax  key.Binding
	ThemeLight key.Binding
	ThemeDark  key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "ctrl+n", "pgdown"),
			key.WithHelp("tab", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "ctrl+p", "pgup"),
			key.WithHelp("shift+tab", "previous page"),
		),
		Increment: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/+", "increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/-", "decrement"),
		),
		SliderUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "slide right"),
		),
		SliderDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "slide left"),
		),
		FineUp: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "nudge right"),
		),
		FineDown: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "nudge left"),
		),
		SliderMin: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "0%"),
		),
		SliderMax: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "100%"),
		),
		ThemeLight: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "light"),
		),
		ThemeDark: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "dark"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// pageHelp adapts the bindings relevant to one page to help.KeyMap.
type pageHelp struct {
	page     []key.Binding
	nav      []key.Binding
	general  []key.Binding
	nameMode bool
}

func (k KeyMap) forPage(p pages.Page) pageHelp {
	h := pageHelp{
		nav:     []key.Binding{k.Next, k.Prev},
		general: []key.Binding{k.Help, k.Quit, k.ForceQuit},
	}

	switch p {
	case pages.PageCounter:
		h.page = []key.Binding{k.Increment, k.Decrement}
	case pages.PageProgressBar:
		h.page = []key.Binding{k.SliderDown, k.SliderUp, k.FineDown, k.FineUp, k.SliderMin, k.SliderMax}
	case pages.PageThemeSelect:
		h.page = []key.Binding{k.ThemeLight, k.ThemeDark}
	case pages.PageNameInput:
		// typed characters belong to the input
		h.nameMode = true
		h.general = []key.Binding{k.ForceQuit}
	}
	return h
}

func (h pageHelp) ShortHelp() []key.Binding {
	short := append([]key.Binding{}, h.page...)
	if len(short) > 2 {
		short = short[:2]
	}
	short = append(short, h.nav...)
	if h.nameMode {
		return append(short, h.general...)
	}
	return append(short, h.general[0], h.general[1])
}

func (h pageHelp) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{}
	if len(h.page) > 0 {
		groups = append(groups, h.page)
	}
	return append(groups, h.nav, h.general)
}
