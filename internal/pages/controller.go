// Package pages holds the page navigation state machine behind the form:
// which page is showing, how next/previous wrap around, and the per-page
// field values. It performs no I/O and is driven one event at a time.
package pages

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Controller struct {
	layout  Layout
	session Session
	page    Page
	strict  bool
}

type Option func(*Controller)

// WithSession seeds the controller state. PageCount always follows the layout.
func WithSession(s Session) Option {
	return func(c *Controller) {
		c.session = s
	}
}

// WithStrictPages limits field events to the page that owns the field.
// Without it every field event applies no matter which page is showing.
func WithStrictPages() Option {
	return func(c *Controller) {
		c.strict = true
	}
}

func New(layout Layout, opts ...Option) (*Controller, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		layout:  slices.Clone(layout),
		session: DefaultSession(len(layout)),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.session.PageCount = len(c.layout)
	if c.session.CurrentPage < 1 {
		c.session.CurrentPage = 1
	}
	c.session.Progress = clampProgress(c.session.Progress)
	c.page = c.layout.At(c.session.CurrentPage)
	return c, nil
}

func (c *Controller) HandleEvent(ev Event) {
	s := &c.session

	switch ev := ev.(type) {
	case IncrementCounter:
		if c.allowed(PageCounter) {
			s.Counter++
		}
	case DecrementCounter:
		if c.allowed(PageCounter) {
			s.Counter--
		}
	case SetProgress:
		if c.allowed(PageProgressBar) {
			s.Progress = clampProgress(ev.Value)
		}
	case SetName:
		if c.allowed(PageNameInput) {
			s.Name = ev.Text
		}
	case SetTheme:
		if c.allowed(PageThemeSelect) {
			s.Theme = ev.Theme
		}
	case AdvancePage:
		if s.CurrentPage < s.PageCount {
			s.CurrentPage++
		} else {
			s.CurrentPage = 1
		}
	case RetreatPage:
		if s.CurrentPage > 1 {
			s.CurrentPage--
		} else {
			s.CurrentPage = s.PageCount
		}
	}

	c.page = c.layout.At(s.CurrentPage)
}

func (c *Controller) allowed(owner Page) bool {
	return !c.strict || c.page == owner
}

func (c *Controller) PageAt(index int) Page {
	return c.layout.At(index)
}

func (c *Controller) CurrentPage() Page {
	return c.page
}

func (c *Controller) Session() Session {
	return c.session
}

func (c *Controller) Layout() Layout {
	return slices.Clone(c.layout)
}

func (c *Controller) Strict() bool {
	return c.strict
}

// Title is the window title for the active page.
func (c *Controller) Title(appName string) string {
	return fmt.Sprintf("%s - %s", c.page, appName)
}

func (c *Controller) CurrentPageView() View {
	s := c.session
	v := View{
		Page:      c.page,
		Index:     s.CurrentPage,
		PageCount: s.PageCount,
		Theme:     s.Theme,
	}

	switch c.page {
	case PageCounter:
		v.Counter = &CounterView{Value: s.Counter}
	case PageProgressBar:
		v.Progress = &ProgressView{Value: s.Progress, Min: ProgressMin, Max: ProgressMax}
	case PageNameInput:
		v.Name = &NameView{Text: s.Name, Greeting: "Hello, " + s.Name}
	case PageThemeSelect:
		v.ThemeSelect = &ThemeView{Selected: s.Theme, Choices: slices.Clone(Themes)}
	}
	return v
}
