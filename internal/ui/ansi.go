package ui

import (
	"fmt"
	"strings"
)

// ANSI escape sequences used by the status display. These match what the
// receiver-side firmware emits over its serial console, so a capture of
// either looks the same in a terminal.
const (
	Reset  = "\x1b[0m"
	Yellow = "\x1b[93m"
	Green  = "\x1b[92m"
	White  = "\x1b[97m"
	Gray   = "\x1b[37m"

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[1;1H"
	clearToEOL  = "\x1b[K"
	clearBelow  = "\x1b[0J"
)

// cursorPrevLines moves the cursor to the start of the line n rows up.
func cursorPrevLines(n int) string {
	return fmt.Sprintf("\x1b[%dF", n)
}

// stripEscapes removes CSI sequences, leaving only printable text.
func stripEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			// Skip parameter bytes up to and including the final byte.
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// visibleLen is the on-screen rune count of s, ignoring escape sequences.
func visibleLen(s string) int {
	n := 0
	for range stripEscapes(s) {
		n++
	}
	return n
}
