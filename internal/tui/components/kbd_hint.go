package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut hint.
type KeyBinding struct {
	Key  string
	Desc string
}

// KbdHint renders a horizontal keyboard shortcut hint bar.
type KbdHint struct {
	Bindings  []KeyBinding
	KeyStyle  lipgloss.Style
	DescStyle lipgloss.Style
}

// NewKbdHint creates a KbdHint with the given styles.
func NewKbdHint(keyStyle, descStyle lipgloss.Style, bindings []KeyBinding) KbdHint {
	return KbdHint{
		Bindings:  bindings,
		KeyStyle:  keyStyle,
		DescStyle: descStyle,
	}
}

// View renders the keyboard hints.
func (k KbdHint) View() string {
	var parts []string
	for _, b := range k.Bindings {
		part := k.KeyStyle.Render(b.Key) + " " + k.DescStyle.Render(b.Desc)
		parts = append(parts, part)
	}
	return "  " + strings.Join(parts, "    ")
}

// PhoneHints returns the hints shown while entering the mobile number.
func PhoneHints() []KeyBinding {
	return []KeyBinding{
		{Key: "0-9", Desc: "type"},
		{Key: "⏎", Desc: "send OTP"},
		{Key: "esc", Desc: "quit"},
	}
}

// OtpHints returns the hints shown while entering the passcode.
func OtpHints() []KeyBinding {
	return []KeyBinding{
		{Key: "←→", Desc: "move"},
		{Key: "⏎", Desc: "verify"},
		{Key: "ctrl+r", Desc: "resend"},
		{Key: "ctrl+b", Desc: "change number"},
		{Key: "esc", Desc: "quit"},
	}
}
