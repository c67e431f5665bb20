package pages

import (
	"testing"

	"github.com/AvengeMedia/dankpages/internal/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{"next", AdvancePage{}},
		{"ADVANCE", AdvancePage{}},
		{"prev", RetreatPage{}},
		{"back", RetreatPage{}},
		{"inc", IncrementCounter{}},
		{"+", IncrementCounter{}},
		{"decrement", DecrementCounter{}},
		{"progress=37.5", SetProgress{Value: 37.5}},
		{"slider= 12", SetProgress{Value: 12}},
		{"name=Ada Lovelace", SetName{Text: "Ada Lovelace"}},
		{"name=", SetName{Text: ""}},
		{"name=a=b", SetName{Text: "a=b"}},
		{"theme=light", SetTheme{Theme: ThemeLight}},
		{"theme=Dark", SetTheme{Theme: ThemeDark}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEvent(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEventErrors(t *testing.T) {
	for _, in := range []string{"", "jump", "progress=lots", "theme=sepia", "counter=3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseEvent(in)
			require.Error(t, err)
			assert.Equal(t, errdefs.ErrTypeInvalidEvent, errdefs.TypeOf(err))
		})
	}
}

func TestEventStringParsesBack(t *testing.T) {
	events := []Event{
		IncrementCounter{},
		DecrementCounter{},
		SetProgress{Value: 0.01},
		SetName{Text: "Linus"},
		SetTheme{Theme: ThemeLight},
		AdvancePage{},
		RetreatPage{},
	}
	for _, ev := range events {
		got, err := ParseEvent(ev.String())
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}
}

func TestParseEventsStopsAtFirstError(t *testing.T) {
	_, err := ParseEvents([]string{"next", "bogus", "prev"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")

	evs, err := ParseEvents([]string{"next", "inc"})
	require.NoError(t, err)
	assert.Equal(t, []Event{AdvancePage{}, IncrementCounter{}}, evs)
}
