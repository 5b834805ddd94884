package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand is the product name and tagline shown in the header.
type Brand struct {
	Name    string
	Tagline string
}

// RenderBanner returns the branded header for the login screens.
func RenderBanner(styles *StyleSet, brand Brand, version string, width int) string {
	if version == "" {
		version = "dev"
	}

	title := styles.Banner.Render("▣  "+brand.Name) + "  " + styles.VersionPill.Render("v"+version)
	subtitle := styles.Subtitle.Render(brand.Tagline)

	dividerWidth := width - 4
	if dividerWidth < 20 {
		dividerWidth = 20
	}
	if dividerWidth > 60 {
		dividerWidth = 60
	}
	divider := lipgloss.NewStyle().
		Foreground(styles.Theme.Border).
		Render(strings.Repeat("─", dividerWidth))

	return fmt.Sprintf("  %s\n  %s\n  %s\n\n", title, subtitle, divider)
}
