package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui"
)

// SuccessScreen confirms the login while the redirect timer runs.
type SuccessScreen struct {
	styles *tui.StyleSet
}

// NewSuccessScreen creates the confirmation screen.
func NewSuccessScreen(styles *tui.StyleSet) *SuccessScreen {
	return &SuccessScreen{styles: styles}
}

func (s *SuccessScreen) Title() string { return "Login Successful" }
func (s *SuccessScreen) Init() tea.Cmd { return nil }

func (s *SuccessScreen) Update(msg tea.Msg) (tui.Screen, tea.Cmd) {
	return s, nil
}

func (s *SuccessScreen) View(width int) string {
	out := "\n  " + s.styles.SuccessBadge.Render("✓") + "\n\n"
	out += "  " + s.styles.Title.Render("Login Successful!") + "\n"
	out += "  " + s.styles.Subtitle.Render("Redirecting to dashboard...") + "\n"
	return out
}

func (s *SuccessScreen) Summary() string { return "" }

func (s *SuccessScreen) Sync(flow.State) tea.Cmd { return nil }

// All returns the screen for every step, wired to ctrl.
func All(styles *tui.StyleSet, ctrl *flow.Controller, countryCode string) map[flow.Step]tui.Screen {
	return map[flow.Step]tui.Screen{
		flow.PhoneEntry: NewPhoneScreen(styles, ctrl, countryCode),
		flow.OtpEntry:   NewOtpScreen(styles, ctrl, countryCode),
		flow.Success:    NewSuccessScreen(styles),
	}
}
