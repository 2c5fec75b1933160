package roster

import "errors"

// Error classes surfaced to the operator. Wrap with fmt.Errorf("...: %w")
// and match with errors.Is; the CLI and TUI pick messages and hints off the
// class.
var (
	ErrFileAccess = errors.New("file access error")
	ErrParse      = errors.New("parse error")
	ErrSave       = errors.New("save error")
)
