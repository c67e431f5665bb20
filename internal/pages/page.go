package pages

import (
	"sort"
	"strings"

	"github.com/AvengeMedia/dankpages/internal/errdefs"
	"golang.org/x/exp/slices"
)

// Page classifies a 1-indexed page number into the screen it shows.
type Page int

const (
	PageUnknown Page = iota
	PageCounter
	PageProgressBar
	PageNameInput
	PageThemeSelect
)

func (p Page) String() string {
	switch p {
	case PageCounter:
		return "Counter"
	case PageProgressBar:
		return "Progress Bar"
	case PageNameInput:
		return "Name Input"
	case PageThemeSelect:
		return "Theme"
	default:
		return "Page not found"
	}
}

// Key is the short lowercase identifier used in config files and on the command line.
func (p Page) Key() string {
	switch p {
	case PageCounter:
		return "counter"
	case PageProgressBar:
		return "progress"
	case PageNameInput:
		return "name"
	case PageThemeSelect:
		return "theme"
	default:
		return "unknown"
	}
}

func ParsePage(s string) (Page, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "counter":
		return PageCounter, nil
	case "progress", "progressbar", "progress_bar", "progress-bar":
		return PageProgressBar, nil
	case "name", "nameinput", "name_input", "name-input":
		return PageNameInput, nil
	case "theme", "themeselect", "theme_select", "theme-select":
		return PageThemeSelect, nil
	}
	return PageUnknown, errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidLayout, "unknown page %q", s)
}

// Layout is the ordered set of pages; position i holds page number i+1.
type Layout []Page

func (l Layout) Validate() error {
	if len(l) == 0 {
		return errdefs.NewCustomError(errdefs.ErrTypeInvalidLayout, "layout must contain at least one page")
	}
	if i := slices.Index(l, PageUnknown); i >= 0 {
		return errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidLayout, "page %d has no known kind", i+1)
	}
	return nil
}

// At maps a 1-indexed page number to its kind. Anything outside the layout is PageUnknown.
func (l Layout) At(index int) Page {
	if index < 1 || index > len(l) {
		return PageUnknown
	}
	return l[index-1]
}

func (l Layout) Contains(p Page) bool {
	return slices.Contains(l, p)
}

func (l Layout) String() string {
	names := make([]string, len(l))
	for i, p := range l {
		names[i] = p.Key()
	}
	return strings.Join(names, ",")
}

// ParseLayout accepts either a preset name or a comma separated list of page keys.
func ParseLayout(s string) (Layout, error) {
	if l, ok := LayoutByName(s); ok {
		return l, nil
	}
	var l Layout
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := ParsePage(part)
		if err != nil {
			return nil, err
		}
		l = append(l, p)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

const DefaultLayoutName = "four"

var presets = map[string]Layout{
	"two":   {PageCounter, PageProgressBar},
	"three": {PageCounter, PageProgressBar, PageNameInput},
	"four":  {PageCounter, PageProgressBar, PageNameInput, PageThemeSelect},
}

func LayoutByName(name string) (Layout, bool) {
	l, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return slices.Clone(l), true
}

// LayoutNames returns the preset names ordered by page count.
func LayoutNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return len(presets[names[i]]) < len(presets[names[j]])
	})
	return names
}

func DefaultLayout() Layout {
	l, _ := LayoutByName(DefaultLayoutName)
	return l
}
