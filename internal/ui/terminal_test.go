package ui

import (
	"os"
	"testing"
)

// Tests run without a TTY on stdout, so the TTY-dependent branch always
// lands on "no color" unless an env override forces it.

// clearColorEnv removes the color variables for one test, restoring any
// outer values afterwards.
func clearColorEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestShouldUseColorNoColorWins(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("CLICOLOR_FORCE", "1")
	if ShouldUseColor() {
		t.Error("NO_COLOR must win over CLICOLOR_FORCE")
	}
}

func TestShouldUseColorNoColorEmptyStillWins(t *testing.T) {
	clearColorEnv(t)
	// The NO_COLOR convention is presence, not value.
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")
	if ShouldUseColor() {
		t.Error("empty NO_COLOR still disables color")
	}
}

func TestShouldUseColorForce(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("CLICOLOR_FORCE", "1")
	if !ShouldUseColor() {
		t.Error("CLICOLOR_FORCE=1 must force color without a TTY")
	}
}

func TestShouldUseColorCliColorZero(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("CLICOLOR", "0")
	if ShouldUseColor() {
		t.Error("CLICOLOR=0 disables color")
	}
}

func TestShouldUseColorNoTTY(t *testing.T) {
	clearColorEnv(t)
	if ShouldUseColor() {
		t.Error("no TTY during tests, expected no color")
	}
}

func TestShouldUseEmojiDisabled(t *testing.T) {
	t.Setenv("MVSFORM_NO_EMOJI", "1")
	if ShouldUseEmoji() {
		t.Error("MVSFORM_NO_EMOJI must disable emoji")
	}
}

func TestShouldUseEmojiNoTTY(t *testing.T) {
	t.Setenv("MVSFORM_NO_EMOJI", "")
	os.Unsetenv("MVSFORM_NO_EMOJI")
	if ShouldUseEmoji() {
		t.Error("no TTY during tests, expected no glyphs")
	}
}

func TestIsAgentMode(t *testing.T) {
	if IsAgentMode() {
		t.Error("agent mode should be off by default")
	}
	t.Setenv("MVSFORM_AGENT", "1")
	if !IsAgentMode() {
		t.Error("MVSFORM_AGENT=1 should enable agent mode")
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	if got := TerminalWidth(72); got != 72 {
		t.Errorf("TerminalWidth fallback = %d, want 72", got)
	}
}
