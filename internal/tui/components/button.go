package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is a full-width submit button. While loading it shows a spinner and
// the owning screen must not submit.
type Button struct {
	Label   string
	loading bool
	spinner spinner.Model

	Style     lipgloss.Style
	BusyStyle lipgloss.Style
}

// NewButton creates an idle button.
func NewButton(label string, style, busyStyle lipgloss.Style, spinnerColor lipgloss.Color) Button {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(spinnerColor)

	return Button{
		Label:     label,
		spinner:   sp,
		Style:     style,
		BusyStyle: busyStyle,
	}
}

// SetLoading switches the spinner on or off. It returns the first spinner
// tick when loading starts.
func (b *Button) SetLoading(loading bool) tea.Cmd {
	started := loading && !b.loading
	b.loading = loading
	if started {
		return b.spinner.Tick
	}
	return nil
}

// Loading reports whether the button is showing its spinner.
func (b Button) Loading() bool {
	return b.loading
}

// Update advances the spinner while loading.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.loading {
		return b, nil
	}
	if _, ok := msg.(spinner.TickMsg); !ok {
		return b, nil
	}
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return b, cmd
}

// View renders the button across width columns.
func (b Button) View(width int) string {
	w := width - 8
	if w < 20 {
		w = 20
	}
	if w > 42 {
		w = 42
	}
	if b.loading {
		return "  " + b.BusyStyle.Width(w).Render(b.spinner.View()+" "+b.Label)
	}
	return "  " + b.Style.Width(w).Render(b.Label)
}
