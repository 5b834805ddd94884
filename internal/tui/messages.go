package tui

import "github.com/vishnuelayi/AgriIQ-Demo/internal/flow"

// Action is a user intent raised by a screen and carried out by LoginModel.
type Action int

const (
	ActionSendCode Action = iota
	ActionVerify
	ActionResend
	ActionChangeNumber
)

// ActionMsg is emitted by a screen when the user submits or navigates.
type ActionMsg struct {
	Action Action
}

// ResultMsg carries a resolved backend request back into the update loop.
type ResultMsg struct {
	Result flow.Result
}

// RedirectMsg fires once the success screen has been shown long enough.
type RedirectMsg struct{}
