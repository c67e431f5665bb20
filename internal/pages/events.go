package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AvengeMedia/dankpages/internal/errdefs"
)

// Event is one discrete user action. The set of implementations is closed.
type Event interface {
	fmt.Stringer
	event()
}

type (
	IncrementCounter struct{}
	DecrementCounter struct{}
	SetProgress      struct{ Value float64 }
	SetName          struct{ Text string }
	SetTheme         struct{ Theme Theme }
	AdvancePage      struct{}
	RetreatPage      struct{}
)

func (IncrementCounter) event() {}
func (DecrementCounter) event() {}
func (SetProgress) event()      {}
func (SetName) event()          {}
func (SetTheme) event()         {}
func (AdvancePage) event()      {}
func (RetreatPage) event()      {}

func (IncrementCounter) String() string { return "increment" }
func (DecrementCounter) String() string { return "decrement" }
func (e SetProgress) String() string {
	return "progress=" + strconv.FormatFloat(e.Value, 'f', -1, 64)
}
func (e SetName) String() string  { return "name=" + e.Text }
func (e SetTheme) String() string { return "theme=" + strings.ToLower(e.Theme.String()) }
func (AdvancePage) String() string { return "advance" }
func (RetreatPage) String() string { return "retreat" }

// ParseEvent reads the textual form used by the replay command, e.g.
// "next", "inc", "progress=37.5", "name=Ada", "theme=light".
func ParseEvent(s string) (Event, error) {
	key, value, hasValue := strings.Cut(s, "=")
	key = strings.ToLower(strings.TrimSpace(key))

	if !hasValue {
		switch key {
		case "advance", "next", "forward":
			return AdvancePage{}, nil
		case "retreat", "prev", "previous", "back":
			return RetreatPage{}, nil
		case "increment", "inc", "+":
			return IncrementCounter{}, nil
		case "decrement", "dec", "-":
			return DecrementCounter{}, nil
		}
		return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidEvent, "unknown event %q", s)
	}

	switch key {
	case "progress", "slider":
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, errdefs.Wrap(errdefs.ErrTypeInvalidEvent, err, fmt.Sprintf("bad progress value %q", value))
		}
		return SetProgress{Value: v}, nil
	case "name":
		return SetName{Text: value}, nil
	case "theme":
		t, err := ParseTheme(value)
		if err != nil {
			return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidEvent, "unknown theme %q", value)
		}
		return SetTheme{Theme: t}, nil
	}
	return nil, errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidEvent, "unknown event %q", s)
}

func ParseEvents(args []string) ([]Event, error) {
	events := make([]Event, 0, len(args))
	for _, a := range args {
		ev, err := ParseEvent(a)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
