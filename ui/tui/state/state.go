package state

import (
	"errors"
	"strings"

	"scriptforge/internal/generator"
	"scriptforge/internal/script"
)

// Status is the phase of the generate flow. Exactly one is active.
type Status int

const (
	StatusIdle Status = iota
	StatusGenerating
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusGenerating:
		return "generating"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// User-facing failure messages.
const (
	MsgInvalidAPIKey    = "Invalid API Key configuration."
	MsgGenerationFailed = "Script generation failed. The idea might be too complex or blocked by safety filters."
)

// LoadingPhrases rotate while a script is being generated.
var LoadingPhrases = []string{
	"Developing characters...",
	"Brainstorming plot twists...",
	"Writing dramatic dialogues...",
	"Staging the climax...",
	"Finalizing the storyboard...",
}

// AppState is the controller's record. Transitions return a new value and
// never modify the receiver.
type AppState struct {
	Status   Status
	Prompt   string
	Length   script.Length
	DarkMode bool

	// Result is kept across failures; use VisibleResult for display.
	Result *script.Result
	// Err is the user-facing message, set only in StatusError.
	Err string

	// Generation identifies the current request. Completions and ticks that
	// carry an older value are stale.
	Generation  int
	PhraseIndex int
}

// New returns the idle state.
func New(dark bool) AppState {
	return AppState{
		Status:   StatusIdle,
		Length:   script.DefaultLength,
		DarkMode: dark,
	}
}

// CanSubmit reports whether Submit would start a generation.
func (s AppState) CanSubmit(prompt string) bool {
	return s.Status != StatusGenerating && strings.TrimSpace(prompt) != ""
}

// Submit starts a generation. A blank prompt, or a request while one is
// already running, leaves the state untouched and returns false.
func (s AppState) Submit(prompt string, length script.Length) (AppState, bool) {
	if !s.CanSubmit(prompt) {
		return s, false
	}
	s.Status = StatusGenerating
	s.Prompt = prompt
	s.Length = length
	s.Err = ""
	s.Generation++
	s.PhraseIndex = 0
	return s, true
}

// Resolve stores a finished script.
func (s AppState) Resolve(gen int, r *script.Result) AppState {
	if !s.isCurrent(gen) {
		return s
	}
	s.Status = StatusSuccess
	s.Result = r
	return s
}

// Fail stores the user-facing message for err. The previous result is kept.
func (s AppState) Fail(gen int, err error) AppState {
	if !s.isCurrent(gen) {
		return s
	}
	s.Status = StatusError
	s.Err = FailureMessage(err)
	return s
}

// Advance moves the loading phrase forward. It returns false once the state
// has left the generation identified by gen, and the tick must not be renewed.
func (s AppState) Advance(gen int) (AppState, bool) {
	if !s.isCurrent(gen) {
		return s, false
	}
	s.PhraseIndex = (s.PhraseIndex + 1) % len(LoadingPhrases)
	return s, true
}

// EditPrompt records the prompt text as the user types it.
func (s AppState) EditPrompt(prompt string) AppState {
	s.Prompt = prompt
	return s
}

// ToggleTheme flips the dark mode flag.
func (s AppState) ToggleTheme() AppState {
	s.DarkMode = !s.DarkMode
	return s
}

// LoadingPhrase is the phrase shown while generating.
func (s AppState) LoadingPhrase() string {
	return LoadingPhrases[s.PhraseIndex%len(LoadingPhrases)]
}

// VisibleResult returns the script only while the state is StatusSuccess.
func (s AppState) VisibleResult() *script.Result {
	if s.Status != StatusSuccess {
		return nil
	}
	return s.Result
}

func (s AppState) isCurrent(gen int) bool {
	return s.Status == StatusGenerating && gen == s.Generation
}

// FailureMessage maps a generation error to what the user sees.
func FailureMessage(err error) string {
	if err == nil {
		return MsgGenerationFailed
	}
	if errors.Is(err, generator.ErrInvalidCredential) || strings.Contains(err.Error(), "API_KEY") {
		return MsgInvalidAPIKey
	}
	return MsgGenerationFailed
}
