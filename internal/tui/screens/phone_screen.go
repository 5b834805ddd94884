package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui/components"
)

// PhoneEditor stores the mobile number as it is typed.
type PhoneEditor interface {
	SetPhoneNumber(raw string) error
	State() flow.State
}

// PhoneScreen collects the mobile number.
type PhoneScreen struct {
	styles      *tui.StyleSet
	editor      PhoneEditor
	countryCode string
	input       components.TextInput
	button      components.Button
	kbd         components.KbdHint
}

// NewPhoneScreen creates the mobile number screen.
func NewPhoneScreen(styles *tui.StyleSet, editor PhoneEditor, countryCode string) *PhoneScreen {
	input := components.NewTextInput(
		"MOBILE NUMBER",
		"98765 43210",
		styles.Theme.Accent,
		styles.FieldLabel,
		styles.ActiveBorder,
	)

	return &PhoneScreen{
		styles:      styles,
		editor:      editor,
		countryCode: countryCode,
		input:       input,
		button:      components.NewButton("Send OTP →", styles.Button, styles.ButtonBusy, styles.Theme.Primary),
		kbd:         components.NewKbdHint(styles.KbdKey, styles.KbdDesc, components.PhoneHints()),
	}
}

func (s *PhoneScreen) Title() string { return "Mobile Number" }

func (s *PhoneScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PhoneScreen) Update(msg tea.Msg) (tui.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if s.button.Loading() {
			return s, nil
		}
		if key.String() == "enter" {
			return s, action(tui.ActionSendCode)
		}
	}

	var btnCmd, inputCmd tea.Cmd
	s.button, btnCmd = s.button.Update(msg)
	s.input, inputCmd = s.input.Update(msg)

	if _, ok := msg.(tea.KeyMsg); ok {
		if err := s.editor.SetPhoneNumber(s.input.Value()); err == nil {
			if stored := s.editor.State().PhoneNumber; stored != s.input.Value() {
				s.input.SetValue(stored)
			}
		}
	}

	return s, tea.Batch(btnCmd, inputCmd)
}

func (s *PhoneScreen) View(width int) string {
	out := "\n  " + s.styles.Title.Render("Welcome Back") + "\n"
	out += "  " + s.styles.Subtitle.Render("Enter your mobile number to continue your preparation journey.") + "\n"
	out += s.input.View(width)
	out += "\n" + s.button.View(width) + "\n\n"
	out += "  " + s.styles.DimTxt.Render("By clicking continue, you agree to our ") +
		s.styles.Link.Render("Terms of Service") + "\n\n"
	out += s.kbd.View()
	return out
}

func (s *PhoneScreen) Summary() string {
	return s.countryCode + " " + s.editor.State().PhoneNumber
}

func (s *PhoneScreen) Sync(state flow.State) tea.Cmd {
	if s.input.Value() != state.PhoneNumber {
		s.input.SetValue(state.PhoneNumber)
	}
	return s.button.SetLoading(state.Busy && state.Step == flow.PhoneEntry)
}
