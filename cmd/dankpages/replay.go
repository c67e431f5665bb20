package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AvengeMedia/dankpages/internal/config"
	"github.com/AvengeMedia/dankpages/internal/pages"
)

// replay drives a fresh controller through the textual events and prints the
// window title plus the fields of the page it ends on.
func replay(w io.Writer, cfg config.Config, args []string) error {
	events, err := pages.ParseEvents(args)
	if err != nil {
		return err
	}

	controller, err := newController(cfg)
	if err != nil {
		return err
	}

	for _, ev := range events {
		controller.HandleEvent(ev)
	}

	view := controller.CurrentPageView()
	fmt.Fprintf(w, "title: %s\n", controller.Title(cfg.AppName))
	fmt.Fprintf(w, "page: %d/%d\n", view.Index, view.PageCount)

	switch {
	case view.Counter != nil:
		fmt.Fprintf(w, "counter: %d\n", view.Counter.Value)
	case view.Progress != nil:
		fmt.Fprintf(w, "progress: %s\n", strconv.FormatFloat(view.Progress.Value, 'f', -1, 64))
	case view.Name != nil:
		fmt.Fprintf(w, "name: %q\n", view.Name.Text)
		fmt.Fprintf(w, "greeting: %s\n", view.Name.Greeting)
	case view.ThemeSelect != nil:
		fmt.Fprintf(w, "selected: %s\n", view.ThemeSelect.Selected)
	}
	fmt.Fprintf(w, "theme: %s\n", view.Theme)
	return nil
}
