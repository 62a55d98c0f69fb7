package views

import (
	"fmt"
	"strings"

	"scriptforge/internal/script"
	"scriptforge/ui/tui/components"
	"scriptforge/ui/tui/state"
	"scriptforge/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	minContentWidth = 40
	chartHeight     = 8
)

// ScriptView renders the finished script. It has no state of its own.
type ScriptView struct{}

func (v ScriptView) Render(s state.AppState, props ViewProps) string {
	r := s.VisibleResult()
	if r == nil {
		return ""
	}
	return RenderScript(r, s.DarkMode, props.Width)
}

// RenderScript lays out title, cast, outlines, synopsis and scenes in order.
func RenderScript(r *script.Result, dark bool, width int) string {
	theme := styles.For(dark)
	if width < minContentWidth {
		width = minContentWidth
	}
	body := theme.Body().Width(width - 4)
	heading := func(text string) string {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Brand).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.Border).
			MarginTop(1).
			Render(strings.ToUpper(text))
	}

	sections := []string{
		lipgloss.NewStyle().Bold(true).Foreground(styles.Brand).Render(r.Title),
	}

	sections = append(sections, heading("Characters"))
	for _, c := range r.Characters {
		sections = append(sections, body.Render(theme.Title().Render(c.Name)+" - "+c.Bio))
	}

	sections = append(sections,
		heading("Plot Outline"),
		body.Render(r.PlotOutline),
		heading("Plot Outline (Hindi)"),
		body.Render(r.PlotOutlineHindi),
		heading("Detailed Synopsis"),
		body.Render(r.DetailedSynopsis),
		heading("Scenes"),
	)

	for _, sc := range r.Scenes {
		sections = append(sections, renderScene(sc, theme, width))
	}

	chart := components.NewDialogueChart(r, width-8, chartHeight)
	chart.Dark = dark
	sections = append(sections, chart.View())

	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderScene(sc script.Scene, theme styles.Theme, width int) string {
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		theme.Title().Render(fmt.Sprintf("SCENE %d", sc.Number)),
		theme.Faint().Render(fmt.Sprintf("  %s · %s", strings.ToUpper(sc.Location), sc.Mood)),
	)

	lines := []string{header, theme.Body().Width(width - 8).Render(sc.Description)}
	for _, d := range sc.Dialogues {
		lines = append(lines, theme.Body().Italic(true).PaddingLeft(4).Width(width-8).Render(d))
	}

	return theme.Card().Width(width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
