package components

import (
	"fmt"
	"math"

	"scriptforge/internal/script"
	"scriptforge/ui/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// LengthZone returns the mouse zone ID of option i.
func LengthZone(i int) string {
	return fmt.Sprintf("length_%d", i)
}

// LengthPicker selects one of script.LengthOptions. The highlight follows the
// cursor on a spring.
type LengthPicker struct {
	Cursor     int
	AnimCursor float64
	Focused    bool
	Disabled   bool
	Dark       bool

	velocity float64
	spring   harmonica.Spring
}

func NewLengthPicker(initial script.Length) *LengthPicker {
	cursor := initial.Index()
	if cursor < 0 {
		cursor = script.DefaultLength.Index()
	}
	return &LengthPicker{
		Cursor:     cursor,
		AnimCursor: float64(cursor),
		spring:     harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
	}
}

func (p *LengthPicker) Init() tea.Cmd {
	return nil
}

func (p *LengthPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.Disabled || !p.Focused {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h", "up", "k":
			p.Select(p.Cursor - 1)
		case "right", "l", "down", "j":
			p.Select(p.Cursor + 1)
		}
	}
	return p, nil
}

// Select moves the cursor to i if it is in range.
func (p *LengthPicker) Select(i int) {
	if p.Disabled || i < 0 || i >= len(script.LengthOptions) {
		return
	}
	p.Cursor = i
}

// Value returns the selected length.
func (p *LengthPicker) Value() script.Length {
	return script.LengthOptions[p.Cursor].ID
}

// Step advances the spring by one frame.
func (p *LengthPicker) Step() {
	p.AnimCursor, p.velocity = p.spring.Update(p.AnimCursor, float64(p.Cursor), p.velocity)
}

func (p *LengthPicker) View() string {
	theme := styles.For(p.Dark)

	var cells []string
	for i, opt := range script.LengthOptions {
		dist := math.Abs(float64(i) - p.AnimCursor)
		strength := 0.0
		if dist < 1.0 {
			strength = 1.0 - dist
		}

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			MarginRight(1).
			Width(22)
		if strength > 0.5 || i == p.Cursor {
			box = box.BorderForeground(styles.Brand)
		}

		mark := "  "
		label := theme.Faint().Render(opt.Label)
		if i == p.Cursor {
			mark = lipgloss.NewStyle().Foreground(styles.Brand).Render("● ")
			label = theme.Title().Render(opt.Label)
		}
		if p.Focused && i == p.Cursor {
			box = box.BorderStyle(lipgloss.ThickBorder())
		}

		cell := box.Render(lipgloss.JoinVertical(lipgloss.Left,
			mark+label,
			theme.Faint().Render(opt.Description),
		))
		cells = append(cells, zone.Mark(LengthZone(i), cell))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
