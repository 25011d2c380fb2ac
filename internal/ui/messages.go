package ui

import "github.com/rollwright/d20roll/internal/ui/panels"

// Type aliases to panels message types — single source of truth.

// SubmitMsg is sent when the user triggers a roll.
type SubmitMsg = panels.SubmitMsg

// YankMsg asks the app to copy text to the clipboard.
type YankMsg = panels.YankMsg

// CloseOverlayMsg signals that the help overlay should be closed.
type CloseOverlayMsg = panels.CloseOverlayMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg
