package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInput is a labelled, bordered text field wrapping bubbles/textinput.
// It holds whatever is typed; owners decide what to keep via SetValue.
type TextInput struct {
	Label string
	input textinput.Model

	// Styles
	LabelStyle  lipgloss.Style
	BorderStyle lipgloss.Style
}

// NewTextInput creates a focused text field.
func NewTextInput(label, placeholder string, accentColor lipgloss.Color, labelStyle, borderStyle lipgloss.Style) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(accentColor)

	return TextInput{
		Label:       label,
		input:       ti,
		LabelStyle:  labelStyle,
		BorderStyle: borderStyle,
	}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards the message to the underlying field.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the label and the bordered field.
func (t TextInput) View(width int) string {
	var out string

	out += "\n  " + t.LabelStyle.Render(t.Label) + "\n"

	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 40 {
		inputWidth = 40
	}
	t.input.Width = inputWidth

	inputBox := t.BorderStyle.Width(inputWidth).Render(t.input.View())
	out += "  " + inputBox + "\n"
	return out
}

// Value returns the current field contents.
func (t TextInput) Value() string {
	return t.input.Value()
}

// SetValue replaces the field contents and moves the cursor to the end.
func (t *TextInput) SetValue(v string) {
	t.input.SetValue(v)
	t.input.CursorEnd()
}
