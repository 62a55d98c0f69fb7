package views

import (
	"fmt"

	"scriptforge/ui/tui/state"
	"scriptforge/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// GenerateZone is the mouse zone of the generate button.
const GenerateZone = "generate"

// PromptWarnChars is where the character counter turns to a warning.
const PromptWarnChars = 500

// ComposeView is the input form plus the status area below it.
type ComposeView struct{}

func (v ComposeView) Render(s state.AppState, props ViewProps) string {
	theme := styles.For(s.DarkMode)

	hero := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title().Render("Apna idea do, ")+
			lipgloss.NewStyle().Bold(true).Foreground(styles.Brand).Render("AI poori film")+
			theme.Title().Render(" bana dega"),
		theme.Faint().Render("Transform your logline into a cinematic script with character profiles and scene breakdowns."),
	)

	counter := theme.Faint().Render(fmt.Sprintf("%d characters", props.PromptChars))
	if props.PromptChars > PromptWarnChars {
		counter = lipgloss.NewStyle().Foreground(styles.Warning).Render(fmt.Sprintf("%d characters", props.PromptChars))
	}

	label := "Generate Script"
	if s.Status == state.StatusGenerating {
		label = "Writing..."
	}
	enabled := s.CanSubmit(s.Prompt)
	button := theme.Button(enabled).Render(label)
	if props.Focus == FocusGenerate && enabled {
		button = lipgloss.NewStyle().Underline(true).Render(button)
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		counter,
		lipgloss.NewStyle().PaddingLeft(4).Render(zone.Mark(GenerateZone, button)),
	)

	form := theme.Card().Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Label().Render("YOUR STORY IDEA"),
		props.PromptView,
		"",
		theme.Label().Render("SCRIPT LENGTH"),
		props.PickerView,
		"",
		footer,
	))

	help := theme.Faint().Render("[tab] Next field • [ctrl+g] Generate • [ctrl+t] Theme • [ctrl+c] Quit")
	if s.VisibleResult() != nil {
		help = theme.Faint().Render("[ctrl+o] Open script • [tab] Next field • [ctrl+g] Generate • [ctrl+t] Theme • [ctrl+c] Quit")
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(props.Width, lipgloss.Center, hero),
		form,
		statusSection(s, props),
		help,
	))
}

// statusSection renders the loading, error or placeholder block.
func statusSection(s state.AppState, props ViewProps) string {
	theme := styles.For(s.DarkMode)

	switch s.Status {
	case state.StatusGenerating:
		return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			props.SpinnerView+" "+theme.Title().Render(s.LoadingPhrase()),
			theme.Faint().Render("This may take a minute for longer scripts."),
		))
	case state.StatusError:
		return lipgloss.NewStyle().Padding(1, 0).Render(theme.Error().Render("✗ " + s.Err))
	case state.StatusIdle:
		if s.Result == nil {
			return placeholders(theme)
		}
	}
	return ""
}

func placeholders(theme styles.Theme) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Muted).
		Padding(0, 2).
		MarginRight(1)

	return lipgloss.NewStyle().Padding(1, 0).Render(lipgloss.JoinHorizontal(lipgloss.Top,
		box.Render("🎬 CINEMATIC LOGIC"),
		box.Render("🈯 BI-LINGUAL OUTPUT"),
		box.Render("📄 STUDIO PDF READY"),
	))
}
