package components

import (
	"scriptforge/internal/script"
	"scriptforge/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DialogueChart plots the number of dialogue lines per scene.
type DialogueChart struct {
	Chart  linechart.Model
	Counts []float64
	Dark   bool
}

func NewDialogueChart(r *script.Result, width, height int) *DialogueChart {
	counts := make([]float64, 0, len(r.Scenes))
	maxY := 1.0
	for _, sc := range r.Scenes {
		n := float64(len(sc.Dialogues))
		counts = append(counts, n)
		if n > maxY {
			maxY = n
		}
	}

	maxX := float64(len(counts))
	if maxX < 2 {
		maxX = 2
	}

	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 1, maxX, 0, maxY)
	return &DialogueChart{Chart: lc, Counts: counts}
}

func (c *DialogueChart) Init() tea.Cmd {
	return nil
}

func (c *DialogueChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *DialogueChart) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.Counts)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i + 1), Y: c.Counts[i]},
			canvas.Float64Point{X: float64(i + 2), Y: c.Counts[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	theme := styles.For(c.Dark)
	return theme.Card().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			theme.Label().Render("Dialogue per scene"),
			c.Chart.View(),
		),
	)
}
