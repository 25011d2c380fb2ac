package panels

// SubmitMsg is sent when the user triggers a roll of the current entry text.
// The expression itself is captured from the model by the app, not carried
// here, so the model stays the single source of truth.
type SubmitMsg struct{}

// YankMsg asks the app to copy text to the system clipboard.
type YankMsg struct {
	Text string
}

// CloseOverlayMsg signals that the help overlay should be closed.
type CloseOverlayMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}
