package pages

import (
	"strings"

	"github.com/AvengeMedia/dankpages/internal/errdefs"
)

type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// Themes lists the choices in the order the picker shows them.
var Themes = []Theme{ThemeLight, ThemeDark}

func (t Theme) String() string {
	if t == ThemeLight {
		return "Light"
	}
	return "Dark"
}

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeDark, errdefs.NewCustomErrorf(errdefs.ErrTypeInvalidConfig, "unknown theme %q (want light or dark)", s)
}
