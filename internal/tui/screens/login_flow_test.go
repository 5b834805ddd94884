package screens_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui/screens"
)

func newModel(t *testing.T, delay time.Duration) tui.LoginModel {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	styles := tui.NewStyleSet(tui.DarkTheme)
	ctrl := flow.NewController(flow.NewSimulatedBackend(delay))
	return tui.NewLoginModel(ctx, styles, ctrl, screens.All(styles, ctrl, "+91"), tui.Options{
		Brand:         tui.Brand{Name: "Agri IQ", Tagline: "Learning Platform"},
		CountryCode:   "+91",
		Version:       "test",
		RedirectDelay: time.Millisecond,
	})
}

func send(t *testing.T, m tui.LoginModel, msg tea.Msg) (tui.LoginModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(tui.LoginModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return lm, cmd
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(t *testing.T, m tui.LoginModel, s string) tui.LoginModel {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// settle runs cmd and feeds every flow message it produces back into the
// model until nothing is left. Cursor blinks and spinner ticks are dropped.
func settle(t *testing.T, m tui.LoginModel, cmd tea.Cmd) tui.LoginModel {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tui.ActionMsg, tui.ResultMsg, tui.RedirectMsg:
			var next tea.Cmd
			m, next = send(t, m, msg)
			queue = append(queue, next)
		}
	}
	return m
}

func press(t *testing.T, m tui.LoginModel, k tea.KeyMsg) tui.LoginModel {
	t.Helper()
	m, cmd := send(t, m, k)
	return settle(t, m, cmd)
}

func toOtp(t *testing.T, m tui.LoginModel) tui.LoginModel {
	t.Helper()
	m = typeText(t, m, "9876543210")
	m = press(t, m, key(tea.KeyEnter))
	if m.State().Step != flow.OtpEntry {
		t.Fatalf("step = %v, want OTP", m.State().Step)
	}
	return m
}

func TestLogin_PhoneDigitsOnly(t *testing.T) {
	m := newModel(t, 0)
	m = typeText(t, m, "98a76-543 210x55")

	if got := m.State().PhoneNumber; got != "9876543210" {
		t.Errorf("PhoneNumber = %q, want 9876543210", got)
	}
	if !strings.Contains(m.View(), "9876543210") {
		t.Error("view does not show the stored number")
	}
}

func TestLogin_ShortPhoneShowsAlert(t *testing.T) {
	m := newModel(t, 0)
	m = typeText(t, m, "98765")
	m = press(t, m, key(tea.KeyEnter))

	s := m.State()
	if s.Step != flow.PhoneEntry || s.Busy {
		t.Fatalf("state = %+v, want idle PhoneEntry", s)
	}
	want := "Please enter a valid 10-digit mobile number"
	if m.Alert() != want {
		t.Errorf("Alert() = %q, want %q", m.Alert(), want)
	}
	if !strings.Contains(m.View(), want) {
		t.Error("alert not rendered")
	}

	// Typing again dismisses the alert.
	m = typeText(t, m, "4")
	if m.Alert() != "" {
		t.Errorf("alert not cleared: %q", m.Alert())
	}
}

func TestLogin_FullFlow(t *testing.T) {
	m := newModel(t, 0)
	m = toOtp(t, m)

	if !strings.Contains(m.View(), "+91 9876543210") {
		t.Error("verification screen does not show the number")
	}

	m = typeText(t, m, "123")
	if got := m.State().OtpDigits; got != [flow.OtpLength]string{"1", "2", "3", ""} {
		t.Fatalf("digits = %v", got)
	}

	m = press(t, m, key(tea.KeyEnter))
	if m.Alert() != "Please enter the complete OTP" {
		t.Errorf("Alert() = %q", m.Alert())
	}
	if m.State().Step != flow.OtpEntry {
		t.Fatalf("incomplete OTP changed step to %v", m.State().Step)
	}

	m = typeText(t, m, "4")
	m = press(t, m, key(tea.KeyEnter))

	if m.State().Step != flow.Success {
		t.Fatalf("step = %v, want SUCCESS", m.State().Step)
	}
	if m.State().Busy {
		t.Error("busy after success")
	}
	if !m.Done() {
		t.Error("redirect did not fire")
	}
	if m.SessionID() == "" {
		t.Error("no session issued")
	}
	if !strings.Contains(m.View(), "Login Successful!") {
		t.Error("success screen not rendered")
	}
}

func TestLogin_NonNumericDigitIgnored(t *testing.T) {
	m := toOtp(t, newModel(t, 0))
	m = typeText(t, m, "a")

	if got := m.State().OtpDigits; got != [flow.OtpLength]string{} {
		t.Errorf("digits = %v, want all empty", got)
	}
}

func TestLogin_BackspaceMovesBack(t *testing.T) {
	m := toOtp(t, newModel(t, 0))
	m = typeText(t, m, "1")

	// Focus advanced to slot 1, which is empty: the first backspace moves
	// back, the second clears slot 0.
	m, _ = send(t, m, key(tea.KeyBackspace))
	if m.State().OtpDigits[0] != "1" {
		t.Fatalf("first backspace cleared slot 0")
	}
	m, _ = send(t, m, key(tea.KeyBackspace))
	if m.State().OtpDigits[0] != "" {
		t.Errorf("second backspace left %q in slot 0", m.State().OtpDigits[0])
	}

	// Typing now overwrites slot 0 again.
	m = typeText(t, m, "7")
	if m.State().OtpDigits[0] != "7" {
		t.Errorf("slot 0 = %q, want 7", m.State().OtpDigits[0])
	}
}

func TestLogin_ChangeNumberKeepsInput(t *testing.T) {
	m := toOtp(t, newModel(t, 0))
	m = typeText(t, m, "12")
	m = press(t, m, key(tea.KeyCtrlB))

	s := m.State()
	if s.Step != flow.PhoneEntry {
		t.Fatalf("step = %v, want PHONE", s.Step)
	}
	if s.PhoneNumber != "9876543210" {
		t.Errorf("phone cleared: %q", s.PhoneNumber)
	}
	if s.OtpDigits != [flow.OtpLength]string{"1", "2", "", ""} {
		t.Errorf("digits cleared: %v", s.OtpDigits)
	}
	if !strings.Contains(m.View(), "9876543210") {
		t.Error("phone screen does not show retained number")
	}
}

func TestLogin_BusyBlocksResubmit(t *testing.T) {
	m := newModel(t, time.Hour)
	m = typeText(t, m, "9876543210")

	m, cmd := send(t, m, key(tea.KeyEnter))
	msg := cmd()
	if _, ok := msg.(tui.ActionMsg); !ok {
		t.Fatalf("enter produced %T, want ActionMsg", msg)
	}
	m, _ = send(t, m, msg)
	if !m.State().Busy {
		t.Fatal("expected busy after submit")
	}

	_, cmd = send(t, m, key(tea.KeyEnter))
	if cmd != nil {
		t.Error("enter while busy should not submit again")
	}
}

func TestLogin_Resend(t *testing.T) {
	m := toOtp(t, newModel(t, 0))
	m = press(t, m, key(tea.KeyCtrlR))

	if m.State().Step != flow.OtpEntry || m.State().Busy {
		t.Fatalf("state = %+v", m.State())
	}
	if !strings.Contains(m.View(), "A new code was sent to +91 9876543210") {
		t.Error("resend notice not rendered")
	}
}

func TestLogin_EscCancels(t *testing.T) {
	m := newModel(t, 0)
	m, cmd := send(t, m, key(tea.KeyEsc))

	if !errors.Is(m.Err(), tui.ErrCancelled) {
		t.Errorf("Err() = %v, want ErrCancelled", m.Err())
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if m.Done() {
		t.Error("cancelled flow reported done")
	}
}

func TestLogin_PhoneFrozenWhileSending(t *testing.T) {
	m := newModel(t, time.Hour)
	m = typeText(t, m, "9876543210")

	m, cmd := send(t, m, key(tea.KeyEnter))
	m, _ = send(t, m, cmd())
	if !m.State().Busy {
		t.Fatal("expected busy after submit")
	}

	m = typeText(t, m, "123")
	m, _ = send(t, m, key(tea.KeyBackspace))
	if got := m.State().PhoneNumber; got != "9876543210" {
		t.Errorf("PhoneNumber = %q, edited while sending", got)
	}
	if !strings.Contains(m.View(), "9876543210") {
		t.Error("view does not show the submitted number")
	}
}

// verifyWithoutRedirect submits the filled code and applies the backend
// result, leaving the redirect tick undelivered.
func verifyWithoutRedirect(t *testing.T, m tui.LoginModel) tui.LoginModel {
	t.Helper()
	m, cmd := send(t, m, key(tea.KeyEnter))
	m, cmd = send(t, m, cmd())

	var cmds []tea.Cmd
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		cmds = msg
	case tui.ResultMsg:
		m, _ = send(t, m, msg)
	}
	for _, c := range cmds {
		if c == nil {
			continue
		}
		if res, ok := c().(tui.ResultMsg); ok {
			m, _ = send(t, m, res)
		}
	}
	return m
}

func TestLogin_QuitOnSuccessKeepsLogin(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		t.Run(k.String(), func(t *testing.T) {
			m := toOtp(t, newModel(t, 0))
			m = typeText(t, m, "1234")
			m = verifyWithoutRedirect(t, m)
			if m.State().Step != flow.Success {
				t.Fatalf("step = %v, want SUCCESS", m.State().Step)
			}

			m, cmd := send(t, m, key(k))
			if m.Err() != nil {
				t.Errorf("Err() = %v, want nil", m.Err())
			}
			if !m.Done() {
				t.Error("login not reported done")
			}
			if m.SessionID() == "" {
				t.Error("session lost")
			}
			if cmd == nil {
				t.Error("expected quit command")
			}
		})
	}
}

func TestLogin_ShiftTabAtFirstSlotChangesNumber(t *testing.T) {
	m := toOtp(t, newModel(t, 0))
	m = typeText(t, m, "1")

	// Focus is on slot 1: the first shift+tab only moves back.
	m = press(t, m, key(tea.KeyShiftTab))
	if m.State().Step != flow.OtpEntry {
		t.Fatalf("step = %v, want OTP", m.State().Step)
	}

	m = press(t, m, key(tea.KeyShiftTab))
	if m.State().Step != flow.PhoneEntry {
		t.Errorf("step = %v, want PHONE", m.State().Step)
	}
	if m.State().PhoneNumber != "9876543210" {
		t.Errorf("phone cleared: %q", m.State().PhoneNumber)
	}
}
