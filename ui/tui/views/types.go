package views

import (
	"scriptforge/ui/tui/state"
)

// Focus identifies the input that receives keys on the compose page.
type Focus int

const (
	FocusPrompt Focus = iota
	FocusLength
	FocusGenerate
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	PromptView  string
	PickerView  string
	SpinnerView string
	PromptChars int
	Focus       Focus
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
