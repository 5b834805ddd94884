package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
)

// Screen renders one flow.Step and turns key presses into ActionMsg values.
type Screen interface {
	// Title returns the screen's display title.
	Title() string
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd
	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View renders the screen content.
	View(width int) string
	// Summary returns a one-line summary for the progress rail once the step is behind us.
	Summary() string
	// Sync refreshes the screen from the controller state.
	Sync(state flow.State) tea.Cmd
}

// RenderProgress renders the step rail showing completed and active steps.
func RenderProgress(order []flow.Step, screens map[flow.Step]Screen, current flow.Step, styles *StyleSet, width int) string {
	var out string

	for _, step := range order {
		screen := screens[step]
		if screen == nil {
			continue
		}
		if step < current {
			badge := styles.StepBadgeComplete.Render(" ✓ ")
			title := styles.PrimaryTxt.Bold(true).Render(screen.Title())
			out += fmt.Sprintf("  %s  %s\n", badge, title)
			summary := styles.SecondaryTxt.Render(screen.Summary())
			out += fmt.Sprintf("       %s\n\n", summary)
			continue
		}
		if step == current {
			numStr := fmt.Sprintf(" %d ", int(step)+1)
			badge := styles.StepBadgeActive.Render(numStr)
			title := styles.PrimaryTxt.Bold(true).Render(screen.Title())
			dividerLen := width - 10 - lipgloss.Width(numStr) - lipgloss.Width(screen.Title())
			if dividerLen < 2 {
				dividerLen = 2
			}
			divider := styles.DimTxt.Render(" " + strings.Repeat("─", dividerLen))
			out += fmt.Sprintf("  %s  %s%s\n", badge, title, divider)
		}
	}

	return out
}
