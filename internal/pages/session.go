package pages

import "math"

const (
	ProgressMin = 0.0
	ProgressMax = 100.0
)

// Session is the whole form state of one running instance.
type Session struct {
	CurrentPage int
	PageCount   int
	Counter     int
	Progress    float64
	Name        string
	Theme       Theme
}

func DefaultSession(pageCount int) Session {
	return Session{
		CurrentPage: 1,
		PageCount:   pageCount,
		Theme:       ThemeDark,
	}
}

func clampProgress(v float64) float64 {
	if math.IsNaN(v) {
		return ProgressMin
	}
	if v < ProgressMin {
		return ProgressMin
	}
	if v > ProgressMax {
		return ProgressMax
	}
	return v
}
