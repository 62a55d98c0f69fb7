package views

import (
	"scriptforge/ui/tui/state"
)

func RenderCompose(s state.AppState, width, height int, promptView, pickerView, spinnerView string, promptChars int, focus Focus) string {
	v := ComposeView{}
	return v.Render(s, ViewProps{
		Width:       width,
		Height:      height,
		PromptView:  promptView,
		PickerView:  pickerView,
		SpinnerView: spinnerView,
		PromptChars: promptChars,
		Focus:       focus,
	})
}

func RenderScriptPage(s state.AppState, width, height int) string {
	v := ScriptView{}
	return v.Render(s, ViewProps{
		Width:  width,
		Height: height,
	})
}
