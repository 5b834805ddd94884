package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func plain() lipgloss.Style { return lipgloss.NewStyle() }

func TestOtpInput_FocusClamp(t *testing.T) {
	o := NewOtpInput(4, plain(), plain(), plain(), plain())

	o.Focus(2)
	if o.Focused() != 2 {
		t.Errorf("Focused() = %d, want 2", o.Focused())
	}
	o.Focus(9)
	if o.Focused() != 3 {
		t.Errorf("Focused() = %d, want 3 after clamp", o.Focused())
	}
	o.Focus(-1)
	if o.Focused() != 0 {
		t.Errorf("Focused() = %d, want 0 after clamp", o.Focused())
	}
}

func TestOtpInput_View(t *testing.T) {
	o := NewOtpInput(4, plain(), plain(), plain(), plain())
	o.SetDigits([]string{"1", "2", "", ""})

	view := o.View()
	if !strings.Contains(view, "1") || !strings.Contains(view, "2") {
		t.Errorf("view missing digits: %q", view)
	}
	if strings.Count(view, "·") != 2 {
		t.Errorf("want 2 placeholders, got view %q", view)
	}
	if o.Digit(1) != "2" || o.Slots() != 4 {
		t.Errorf("Digit(1) = %q, Slots() = %d", o.Digit(1), o.Slots())
	}
}

func TestButton_Loading(t *testing.T) {
	b := NewButton("Send OTP", plain(), plain(), lipgloss.Color("#fff"))

	if cmd := b.SetLoading(false); cmd != nil {
		t.Error("no tick expected when staying idle")
	}
	if cmd := b.SetLoading(true); cmd == nil {
		t.Fatal("expected spinner tick when loading starts")
	}
	if cmd := b.SetLoading(true); cmd != nil {
		t.Error("no second tick while already loading")
	}
	if !b.Loading() {
		t.Fatal("Loading() = false")
	}

	busyView := b.View(60)
	if !strings.Contains(busyView, "Send OTP") {
		t.Errorf("busy view lost label: %q", busyView)
	}

	b.SetLoading(false)
	if b.Loading() {
		t.Error("Loading() = true after reset")
	}
}

func TestButton_IgnoresTicksWhenIdle(t *testing.T) {
	b := NewButton("Verify", plain(), plain(), lipgloss.Color("#fff"))
	_, cmd := b.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Error("idle button should not keep ticking")
	}
	_, cmd = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("button should ignore keys")
	}
}

func TestTextInput_SetValue(t *testing.T) {
	in := NewTextInput("Mobile Number", "98765 43210", lipgloss.Color("#fff"), plain(), plain())

	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("98")})
	if in.Value() != "98" {
		t.Fatalf("Value() = %q, want 98", in.Value())
	}
	in.SetValue("9876")
	if in.Value() != "9876" {
		t.Errorf("Value() = %q after SetValue", in.Value())
	}
	if !strings.Contains(in.View(60), "Mobile Number") {
		t.Error("view missing label")
	}
}

func TestKbdHint_View(t *testing.T) {
	k := NewKbdHint(plain(), plain(), OtpHints())
	view := k.View()
	for _, want := range []string{"verify", "resend", "change number"} {
		if !strings.Contains(view, want) {
			t.Errorf("hints missing %q: %q", want, view)
		}
	}
}
