package pages

import (
	"errors"
	"testing"

	"github.com/AvengeMedia/dankpages/internal/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageString(t *testing.T) {
	assert.Equal(t, "Counter", PageCounter.String())
	assert.Equal(t, "Progress Bar", PageProgressBar.String())
	assert.Equal(t, "Name Input", PageNameInput.String())
	assert.Equal(t, "Theme", PageThemeSelect.String())
	assert.Equal(t, "Page not found", PageUnknown.String())
	assert.Equal(t, "Page not found", Page(99).String())
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"two", "three", "four"}, LayoutNames())

	for _, name := range LayoutNames() {
		l, ok := LayoutByName(name)
		require.True(t, ok)
		require.NoError(t, l.Validate())
		assert.Equal(t, PageCounter, l.At(1), "every iteration starts on the counter")
	}

	l, ok := LayoutByName(" FOUR ")
	require.True(t, ok)
	assert.Equal(t, "counter,progress,name,theme", l.String())

	_, ok = LayoutByName("five")
	assert.False(t, ok)
}

func TestPresetsNotShared(t *testing.T) {
	l, _ := LayoutByName("two")
	l[0] = PageThemeSelect

	again, _ := LayoutByName("two")
	assert.Equal(t, PageCounter, again[0])
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in      string
		want    Layout
		wantErr bool
	}{
		{in: "three", want: Layout{PageCounter, PageProgressBar, PageNameInput}},
		{in: "counter,theme", want: Layout{PageCounter, PageThemeSelect}},
		{in: "name, progress-bar ,counter", want: Layout{PageNameInput, PageProgressBar, PageCounter}},
		{in: "counter,,progress", want: Layout{PageCounter, PageProgressBar}},
		{in: "", wantErr: true},
		{in: "counter,settings", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLayout(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errdefs.ErrInvalidLayout))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutContains(t *testing.T) {
	l, _ := LayoutByName("three")
	assert.True(t, l.Contains(PageNameInput))
	assert.False(t, l.Contains(PageThemeSelect))
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("Light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, th)

	th, err = ParseTheme(" dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	_, err = ParseTheme("solarized")
	require.Error(t, err)
	assert.Equal(t, errdefs.ErrTypeInvalidConfig, errdefs.TypeOf(err))
}
