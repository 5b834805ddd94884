package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui/components"
)

// OtpEditor stores passcode digits slot by slot.
type OtpEditor interface {
	SetOtpDigit(index int, value string) (*flow.FocusAdvance, error)
	State() flow.State
}

// OtpScreen collects the passcode across flow.OtpLength single-digit slots.
type OtpScreen struct {
	styles      *tui.StyleSet
	editor      OtpEditor
	countryCode string
	slots       components.OtpInput
	button      components.Button
	kbd         components.KbdHint
}

// NewOtpScreen creates the verification screen.
func NewOtpScreen(styles *tui.StyleSet, editor OtpEditor, countryCode string) *OtpScreen {
	slots := components.NewOtpInput(
		flow.OtpLength,
		styles.ActiveBorder,
		styles.InactiveBorder,
		styles.AccentTxt.Bold(true),
		styles.DimTxt,
	)

	return &OtpScreen{
		styles:      styles,
		editor:      editor,
		countryCode: countryCode,
		slots:       slots,
		button:      components.NewButton("Verify & Login", styles.Button, styles.ButtonBusy, styles.Theme.Primary),
		kbd:         components.NewKbdHint(styles.KbdKey, styles.KbdDesc, components.OtpHints()),
	}
}

func (s *OtpScreen) Title() string { return "Verification" }

func (s *OtpScreen) Init() tea.Cmd {
	return nil
}

func (s *OtpScreen) Update(msg tea.Msg) (tui.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}

	switch key.String() {
	case "enter":
		if s.button.Loading() {
			return s, nil
		}
		return s, action(tui.ActionVerify)
	case "ctrl+r":
		if s.button.Loading() {
			return s, nil
		}
		return s, action(tui.ActionResend)
	case "ctrl+b":
		return s, action(tui.ActionChangeNumber)
	case "shift+tab":
		if s.slots.Focused() == 0 {
			return s, action(tui.ActionChangeNumber)
		}
		s.slots.Focus(s.slots.Focused() - 1)
		return s, nil
	case "left":
		s.slots.Focus(s.slots.Focused() - 1)
		return s, nil
	case "right", "tab":
		s.slots.Focus(s.slots.Focused() + 1)
		return s, nil
	case "backspace", "delete":
		s.clearSlot()
		return s, nil
	}

	if key.Type == tea.KeyRunes && len(key.Runes) > 0 {
		s.typeDigit(string(key.Runes[len(key.Runes)-1]))
	}
	return s, nil
}

// typeDigit replaces the focused slot, as a select-on-focus field would.
func (s *OtpScreen) typeDigit(value string) {
	advance, err := s.editor.SetOtpDigit(s.slots.Focused(), value)
	if err != nil {
		return
	}
	s.refresh()
	if advance != nil {
		s.slots.Focus(advance.Slot)
	}
}

// clearSlot empties the focused slot, or steps back when it is already empty.
func (s *OtpScreen) clearSlot() {
	i := s.slots.Focused()
	if s.slots.Digit(i) == "" {
		s.slots.Focus(i - 1)
		return
	}
	if _, err := s.editor.SetOtpDigit(i, ""); err == nil {
		s.refresh()
	}
}

func (s *OtpScreen) refresh() {
	digits := s.editor.State().OtpDigits
	s.slots.SetDigits(digits[:])
}

func (s *OtpScreen) View(width int) string {
	out := "\n  " + s.styles.SecondaryTxt.Render("← Change Number") + "\n\n"
	out += "  " + s.styles.Title.Render("Verification") + "\n"
	out += "  " + s.styles.Subtitle.Render(fmt.Sprintf("We sent a %d-digit code to", flow.OtpLength)) + "\n"
	out += "  " + s.styles.PrimaryTxt.Bold(true).Render(s.countryCode+" "+s.editor.State().PhoneNumber) + "\n\n"
	out += s.slots.View() + "\n\n"
	out += s.button.View(width) + "\n\n"
	out += "  " + s.styles.DimTxt.Render("Didn't receive code? ") + s.styles.Link.Render("Resend OTP") + "\n\n"
	out += s.kbd.View()
	return out
}

func (s *OtpScreen) Summary() string {
	return "code verified"
}

func (s *OtpScreen) Sync(state flow.State) tea.Cmd {
	s.slots.SetDigits(state.OtpDigits[:])
	return s.button.SetLoading(state.Busy && state.Step == flow.OtpEntry)
}

func action(a tui.Action) tea.Cmd {
	return func() tea.Msg { return tui.ActionMsg{Action: a} }
}
