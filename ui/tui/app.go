package tui

import (
	"context"
	"log/slog"
	"time"

	"scriptforge/internal/generator"
	"scriptforge/internal/logging"
	"scriptforge/internal/script"
	"scriptforge/ui/tui/components"
	"scriptforge/ui/tui/state"
	"scriptforge/ui/tui/styles"
	"scriptforge/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// DefaultTickInterval is how long each loading phrase stays on screen.
const DefaultTickInterval = 2500 * time.Millisecond

type page int

const (
	pageCompose page = iota
	pageScript
)

// Options configures the TUI.
type Options struct {
	TickInterval time.Duration
	DarkMode     bool
	Length       script.Length // initial picker selection
	Logger       *slog.Logger
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	generator    generator.Service
	logger       *slog.Logger
	tickInterval time.Duration

	state    state.AppState
	spinner  spinner.Model
	prompt   textarea.Model
	picker   *components.LengthPicker
	viewport viewport.Model
	focus    views.Focus
	page     page

	cancel   context.CancelFunc
	quitting bool
	width    int
	height   int
}

// Messages
type AnimateMsg time.Time

// PhraseTickMsg advances the loading phrase of one generation.
type PhraseTickMsg struct {
	Generation int
}

// ScriptGeneratedMsg carries the outcome of one generation.
type ScriptGeneratedMsg struct {
	Generation int
	Result     *script.Result
	Err        error
}

func InitialModel(gen generator.Service, opts Options) MainModel {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Brand)

	ta := textarea.New()
	ta.Placeholder = "Ex: A high-stakes heist in a floating city above the clouds..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(70)
	ta.SetHeight(5)
	ta.Focus()

	st := state.New(opts.DarkMode)
	if _, ok := opts.Length.Option(); ok {
		st.Length = opts.Length
	}
	picker := components.NewLengthPicker(st.Length)
	picker.Dark = st.DarkMode

	return MainModel{
		generator:    gen,
		logger:       logging.WithComponent(opts.Logger, "tui"),
		tickInterval: opts.TickInterval,
		state:        st,
		spinner:      s,
		prompt:       ta,
		picker:       picker,
		viewport:     viewport.New(80, 20),
		focus:        views.FocusPrompt,
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		animateCmd(),
	)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func phraseTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return PhraseTickMsg{Generation: gen}
	})
}

func generateCmd(ctx context.Context, g generator.Service, gen int, prompt string, length script.Length) tea.Cmd {
	return func() tea.Msg {
		result, err := g.Generate(ctx, prompt, length)
		return ScriptGeneratedMsg{Generation: gen, Result: result, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		m.picker.Step()
		return m, animateCmd()

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case PhraseTickMsg:
		return m.handlePhraseTickMsg(msg)

	case ScriptGeneratedMsg:
		return m.handleScriptGeneratedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	if m.focus == views.FocusPrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+t":
		m.state = m.state.ToggleTheme()
		m.picker.Dark = m.state.DarkMode
		m.refreshViewport()
		return m, nil
	}

	if m.page == pageScript {
		switch msg.String() {
		case "q":
			return m.quit()
		case "esc", "b", "ctrl+o":
			m.page = pageCompose
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.state.Status == state.StatusGenerating {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+g":
		return m, m.submit()
	case "ctrl+o":
		if m.state.VisibleResult() != nil {
			m.page = pageScript
		}
		return m, nil
	case "tab":
		return m, m.setFocus((m.focus + 1) % 3)
	case "shift+tab":
		return m, m.setFocus((m.focus + 2) % 3)
	}

	switch m.focus {
	case views.FocusPrompt:
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		m.state = m.state.EditPrompt(m.prompt.Value())
		return m, cmd
	case views.FocusLength:
		if msg.String() == "enter" {
			return m, m.submit()
		}
		m.picker.Update(msg)
	case views.FocusGenerate:
		if msg.String() == "enter" || msg.String() == " " {
			return m, m.submit()
		}
	}
	return m, nil
}

// setFocus moves keyboard focus. The returned command restarts the prompt
// cursor blink when the prompt gains focus.
func (m *MainModel) setFocus(f views.Focus) tea.Cmd {
	m.focus = f
	m.picker.Focused = f == views.FocusLength
	if f == views.FocusPrompt {
		return m.prompt.Focus()
	}
	m.prompt.Blur()
	return nil
}

// submit starts a generation if the current input allows it.
func (m *MainModel) submit() tea.Cmd {
	next, ok := m.state.Submit(m.prompt.Value(), m.picker.Value())
	if !ok {
		return nil
	}
	m.state = next
	m.prompt.Blur()
	m.picker.Disabled = true

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.logger.Info("generation started",
		"generation", next.Generation,
		"length", next.Length,
		"prompt_chars", len(next.Prompt),
	)
	return tea.Batch(
		generateCmd(ctx, m.generator, next.Generation, next.Prompt, next.Length),
		phraseTickCmd(m.tickInterval, next.Generation),
	)
}

func (m *MainModel) handlePhraseTickMsg(msg PhraseTickMsg) (tea.Model, tea.Cmd) {
	next, ok := m.state.Advance(msg.Generation)
	if !ok {
		return m, nil
	}
	m.state = next
	return m, phraseTickCmd(m.tickInterval, msg.Generation)
}

func (m *MainModel) handleScriptGeneratedMsg(msg ScriptGeneratedMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil && msg.Result == nil {
		msg.Err = generator.ErrEmptyResponse
	}
	if msg.Err != nil {
		m.logger.Error("generation failed", "generation", msg.Generation, "error", msg.Err)
		m.state = m.state.Fail(msg.Generation, msg.Err)
	} else {
		m.state = m.state.Resolve(msg.Generation, msg.Result)
	}

	if m.state.Status == state.StatusGenerating {
		return m, nil // stale
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.picker.Disabled = false
	cmd := m.setFocus(m.focus)

	if m.state.VisibleResult() != nil {
		m.logger.Info("generation finished", "generation", msg.Generation, "title", msg.Result.Title)
		m.refreshViewport()
		m.viewport.GotoTop()
		m.page = pageScript
	}
	return m, cmd
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	if w := msg.Width - 8; w > 20 {
		m.prompt.SetWidth(w)
	}
	m.viewport.Width = msg.Width
	if h := msg.Height - 3; h > 5 {
		m.viewport.Height = h
	}
	m.refreshViewport()
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.page == pageScript {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionRelease || m.state.Status == state.StatusGenerating {
		return m, nil
	}

	for i := range script.LengthOptions {
		if zone.Get(components.LengthZone(i)).InBounds(msg) {
			m.picker.Select(i)
			return m, m.setFocus(views.FocusLength)
		}
	}
	if zone.Get(views.GenerateZone).InBounds(msg) {
		return m, m.submit()
	}
	return m, nil
}

func (m *MainModel) refreshViewport() {
	if m.state.VisibleResult() == nil {
		return
	}
	m.viewport.SetContent(views.RenderScriptPage(m.state, m.width, m.height))
}

func (m *MainModel) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	switch m.page {
	case pageScript:
		theme := styles.For(m.state.DarkMode)
		footer := theme.Faint().Render(
			"[↑/↓/pgup/pgdn] Scroll • [esc] Edit idea • [ctrl+t] Theme • [q] Quit")
		return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
	default:
		return views.RenderCompose(m.state, m.width, m.height,
			m.prompt.View(), m.picker.View(), m.spinner.View(),
			len([]rune(m.prompt.Value())), m.focus)
	}
}

func Start(gen generator.Service, opts Options) error {
	m := InitialModel(gen, opts)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
