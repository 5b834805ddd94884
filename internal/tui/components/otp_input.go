package components

import (
	"github.com/charmbracelet/lipgloss"
)

// OtpInput renders a row of single-character boxes with one focused slot.
// It does not interpret keys; the owning screen decides what each slot holds.
type OtpInput struct {
	digits []string
	focus  int

	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
	DigitStyle    lipgloss.Style
	PlaceStyle    lipgloss.Style
}

// NewOtpInput creates an input with slots boxes, focus on the first.
func NewOtpInput(slots int, activeStyle, inactiveStyle, digitStyle, placeStyle lipgloss.Style) OtpInput {
	return OtpInput{
		digits:        make([]string, slots),
		ActiveStyle:   activeStyle,
		InactiveStyle: inactiveStyle,
		DigitStyle:    digitStyle,
		PlaceStyle:    placeStyle,
	}
}

// Slots returns the number of boxes.
func (o OtpInput) Slots() int {
	return len(o.digits)
}

// Focused returns the index of the focused slot.
func (o OtpInput) Focused() int {
	return o.focus
}

// Focus moves focus to slot i, clamped to the valid range.
func (o *OtpInput) Focus(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(o.digits) {
		i = len(o.digits) - 1
	}
	o.focus = i
}

// SetDigits replaces the displayed digits.
func (o *OtpInput) SetDigits(digits []string) {
	copy(o.digits, digits)
}

// Digit returns the value shown in slot i.
func (o OtpInput) Digit(i int) string {
	return o.digits[i]
}

// View renders the boxes side by side.
func (o OtpInput) View() string {
	boxes := make([]string, 0, len(o.digits))
	for i, d := range o.digits {
		content := o.PlaceStyle.Render("·")
		if d != "" {
			content = o.DigitStyle.Render(d)
		}
		style := o.InactiveStyle
		if i == o.focus {
			style = o.ActiveStyle
		}
		boxes = append(boxes, style.Padding(0, 2).Render(content))
		if i < len(o.digits)-1 {
			boxes = append(boxes, " ")
		}
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}
