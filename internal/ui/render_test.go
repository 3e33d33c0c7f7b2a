package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderer_RewindMatchesPreviousFrameHeight(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithColor(false), WithWidth(0))

	if err := r.Render([]string{"one"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[1F") {
		t.Fatalf("first frame must not rewind: %q", buf.String())
	}
	if r.LastLines() != 1 {
		t.Fatalf("LastLines()=%d want 1", r.LastLines())
	}

	buf.Reset()
	if err := r.Render([]string{"err line", "detail"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b[1F") {
		t.Fatalf("expected 1-line rewind, got %q", buf.String())
	}
	if r.LastLines() != 2 {
		t.Fatalf("LastLines()=%d want 2", r.LastLines())
	}

	// After a two-line frame the next redraw clears two prior lines.
	buf.Reset()
	if err := r.Render([]string{"back to normal"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b[2F") {
		t.Fatalf("expected 2-line rewind, got %q", buf.String())
	}
}

func TestRenderer_ClearsEachLineAndBelow(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithColor(false), WithWidth(0))
	if err := r.Render([]string{"a", "b"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "\x1b[K"); got != 2 {
		t.Fatalf("clear-to-EOL count=%d want 2 in %q", got, out)
	}
	if !strings.HasSuffix(out, "\x1b[0J") {
		t.Fatalf("expected trailing clear-below in %q", out)
	}
}

func TestRenderer_StripsColorWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithColor(false), WithWidth(0))
	if err := r.Render([]string{Yellow + "12:00:00 " + White + "| ok"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "[93m") || strings.Contains(buf.String(), "[97m") {
		t.Fatalf("color codes leaked: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "12:00:00 | ok") {
		t.Fatalf("text mangled: %q", buf.String())
	}
}

func TestRenderer_ClampsToWidth(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithColor(true), WithWidth(5))
	if err := r.Render([]string{Green + "abcdefgh"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "abcde") || strings.Contains(buf.String(), "abcdef") {
		t.Fatalf("clamp failed: %q", buf.String())
	}
}

func TestStripEscapes(t *testing.T) {
	in := Yellow + "11:22:33 " + White + "| " + Green + "Lat: " + Gray + "48.117"
	want := "11:22:33 | Lat: 48.117"
	if got := stripEscapes(in); got != want {
		t.Fatalf("stripEscapes()=%q want %q", got, want)
	}
	if visibleLen(in) != len(want) {
		t.Fatalf("visibleLen()=%d want %d", visibleLen(in), len(want))
	}
}
