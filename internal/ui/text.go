package ui

import "unicode/utf8"

// Truncate shortens s to max runes with an ellipsis. Used for table cells.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}

// PadRight pads s with spaces to width runes. Longer strings pass through.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	for n < width {
		s += " "
		n++
	}
	return s
}
