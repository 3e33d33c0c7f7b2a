package ui

import (
	"io"
	"os"
	"strings"

	isatty "github.com/mattn/go-isatty"
)

// Renderer redraws a short status block in place. It remembers how many
// lines the previous frame used and rewinds exactly that far, so frames of
// different heights (status vs error vs raw-echo) stay aligned.
type Renderer struct {
	w     io.Writer
	color bool
	width int

	lastLines int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor forces colors on or off, overriding tty detection.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

// WithWidth overrides the detected terminal width (0 disables clamping).
func WithWidth(w int) Option {
	return func(r *Renderer) { r.width = w }
}

// NewRenderer writes frames to w. When w is the process stdout and not a
// tty, colors are dropped and the width clamp is disabled.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		r.color = true
		r.width = terminalWidth(f.Fd())
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Colors reports whether the renderer will emit color sequences.
func (r *Renderer) Colors() bool { return r.color }

// Render overwrites the previous frame with lines. Each line is cleared to
// the end of the row; anything the previous, taller frame left below is
// wiped as well.
func (r *Renderer) Render(lines []string) error {
	var b strings.Builder
	if r.lastLines > 0 {
		b.WriteString(cursorPrevLines(r.lastLines))
	}
	for _, line := range lines {
		if !r.color {
			line = stripEscapes(line)
		}
		// Lines must not wrap or the rewind arithmetic breaks.
		if r.width > 0 && visibleLen(line) > r.width {
			plain := []rune(stripEscapes(line))
			line = string(plain[:r.width])
		}
		b.WriteString(line)
		b.WriteString(clearToEOL)
		b.WriteByte('\n')
	}
	b.WriteString(clearBelow)

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return err
	}
	r.lastLines = len(lines)
	return nil
}

// LastLines is the height of the most recently rendered frame.
func (r *Renderer) LastLines() int { return r.lastLines }
