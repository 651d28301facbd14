package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// colorDisabled is set by DisableColor so that every color decision, lipgloss
// and glamour alike, sees the same answer.
var colorDisabled bool

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor decides whether styled output is appropriate. An explicit
// DisableColor call always wins; after that it honors the informal color
// conventions in precedence order: NO_COLOR, then CLICOLOR_FORCE (forces
// color on even without a TTY), then CLICOLOR=0, and otherwise color follows
// the TTY check.
func ShouldUseColor() bool {
	if colorDisabled {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	return IsTerminal()
}

// DisableColor turns off all styled rendering: lipgloss drops to plain ASCII
// and ShouldUseColor reports false from here on, so markdown rendering stays
// plain too. Used for --no-color, pipes and CI logs; markers are still
// printed since they carry meaning, not decoration.
func DisableColor() {
	colorDisabled = true
	lipgloss.SetColorProfile(termenv.Ascii)
}
