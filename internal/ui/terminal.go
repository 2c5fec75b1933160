// Package ui provides terminal styling for mvsform CLI output.
package ui

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ShouldUseColor decides whether CLI output gets ANSI colors. Precedence:
// NO_COLOR always wins, then CLICOLOR_FORCE=1 forces color even when piped,
// then CLICOLOR=0 disables, otherwise color requires a TTY with a capable
// profile.
func ShouldUseColor() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") == "1" {
		return true
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// ShouldUseEmoji decides whether status glyphs are emitted. MVSFORM_NO_EMOJI
// disables them for terminals with poor glyph support; otherwise they follow
// the TTY check.
func ShouldUseEmoji() bool {
	if os.Getenv("MVSFORM_NO_EMOJI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsAgentMode reports whether output should stay plain and parseable
// (MVSFORM_AGENT=1), for scripts driving mvsform.
func IsAgentMode() bool {
	return os.Getenv("MVSFORM_AGENT") == "1"
}

// TerminalWidth returns the stdout width, or fallback when stdout is not a
// terminal.
func TerminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
