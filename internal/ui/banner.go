package ui

import (
	"fmt"
	"io"
)

// Banner clears the screen and prints a small header above the status
// block, mirroring the splash the receiver firmware draws on its own
// console. The renderer owns everything below it.
func Banner(w io.Writer, color bool, watchPath string) error {
	head := "glltail - GPS position monitor"
	src := fmt.Sprintf("watching %s", watchPath)
	if color {
		head = Green + head + Reset
		src = Gray + src + Reset
	}
	_, err := fmt.Fprintf(w, "%s%s%s\n%s\n\n", clearScreen, cursorHome, head, src)
	return err
}
