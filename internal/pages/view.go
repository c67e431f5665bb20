package pages

// View is the read-only projection handed to the renderer. Exactly one of the
// page field pointers is set, matching Page; none is set for PageUnknown.
type View struct {
	Page      Page
	Index     int
	PageCount int
	Theme     Theme

	Counter     *CounterView
	Progress    *ProgressView
	Name        *NameView
	ThemeSelect *ThemeView
}

type CounterView struct {
	Value int
}

type ProgressView struct {
	Value float64
	Min   float64
	Max   float64
}

// Ratio is the filled fraction in [0,1].
func (p ProgressView) Ratio() float64 {
	if p.Max <= p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

type NameView struct {
	Text     string
	Greeting string
}

type ThemeView struct {
	Selected Theme
	Choices  []Theme
}
