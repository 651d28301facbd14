// Package ui provides terminal styling for tittelsjekk output.
// Colors follow GitHub's Primer status palette with adaptive
// light/dark mode support, since the messages mirror what reviewers
// see in the pull request itself.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic status colors (Primer - adaptive light/dark)
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#1a7f37", // primer success fg
		Dark:  "#3fb950",
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#9a6700", // primer attention fg
		Dark:  "#d29922",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#cf222e", // primer danger fg
		Dark:  "#f85149",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#59636e", // primer muted fg
		Dark:  "#9198a1",
	}
)

// Status styles - consistent across all commands
var (
	PassStyle  = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle  = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Message markers. These are part of the output contract and are always
// printed, styled or not, so CI logs read the same as a local run.
// MarkerWarn carries a trailing space because the emoji renders
// double-width in most terminals.
const (
	MarkerFail = "❌"
	MarkerWarn = "⚠️ "
	MarkerPass = "✅"
)

// RenderPass renders text with pass (green) styling
func RenderPass(s string) string {
	return PassStyle.Render(s)
}

// RenderWarn renders text with warning (yellow) styling
func RenderWarn(s string) string {
	return WarnStyle.Render(s)
}

// RenderFail renders text with fail (red) styling
func RenderFail(s string) string {
	return FailStyle.Render(s)
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	return MutedStyle.Render(s)
}
