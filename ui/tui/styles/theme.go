package styles

import "github.com/charmbracelet/lipgloss"

var (
	Brand   = lipgloss.Color("#4F46E5") // indigo
	Warning = lipgloss.Color("#F97316")
	Danger  = lipgloss.Color("#DC2626")
)

// Theme is the palette for one appearance.
type Theme struct {
	Dark bool

	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Panel  lipgloss.Color
}

var (
	light = Theme{
		Text:   lipgloss.Color("#1F2937"),
		Muted:  lipgloss.Color("#6B7280"),
		Border: lipgloss.Color("#E5E7EB"),
		Panel:  lipgloss.Color("#FFFFFF"),
	}
	dark = Theme{
		Dark:   true,
		Text:   lipgloss.Color("#F1F5F9"),
		Muted:  lipgloss.Color("#94A3B8"),
		Border: lipgloss.Color("#334155"),
		Panel:  lipgloss.Color("#1E293B"),
	}
)

// For returns the light or dark theme.
func For(darkMode bool) Theme {
	if darkMode {
		return dark
	}
	return light
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Text)
}

func (t Theme) Label() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Brand)
}

func (t Theme) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) Faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// Card is a bordered panel.
func (t Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}

// Selected is the border of the active length option.
func (t Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Brand).
		Padding(0, 1)
}

func (t Theme) Button(enabled bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 3).Foreground(lipgloss.Color("#FFFFFF"))
	if enabled {
		return s.Background(Brand)
	}
	return s.Background(lipgloss.Color("#9CA3AF"))
}

func (t Theme) Error() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Danger).
		Foreground(Danger).
		Padding(0, 2)
}
