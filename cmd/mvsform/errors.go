package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/rules"
)

// FatalError writes an error message to stderr and exits. Use for
// unrecoverable errors where the command cannot continue.
func FatalError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// FatalErrorWithHint writes an error message with a hint to stderr and exits.
// Use when there is an actionable suggestion to fix the error.
func FatalErrorWithHint(message, hint string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	os.Exit(1)
}

// WarnError writes a warning message to stderr and returns. Use for optional
// operations that aren't required for the command to succeed.
func WarnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// FatalClassified exits with a message and a hint picked off the error
// class. Keeps operator-facing wording consistent across commands.
func FatalClassified(err error) {
	switch {
	case errors.Is(err, roster.ErrFileAccess):
		FatalErrorWithHint(err.Error(), "Check that the file exists and is readable")
	case errors.Is(err, roster.ErrParse):
		FatalErrorWithHint(err.Error(), "The file does not look like a roster CSV export")
	case errors.Is(err, rules.ErrValidation):
		FatalErrorWithHint(err.Error(), "Fix the field value and try again")
	case errors.Is(err, roster.ErrSave):
		FatalErrorWithHint(err.Error(), "The file was not modified; retry the save")
	default:
		FatalError("%v", err)
	}
}
