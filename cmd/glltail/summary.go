package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"glltail/internal/gll"
)

// captureSummary is the one-shot statistics view of a capture file.
type captureSummary struct {
	Lines     int // every line in the file
	Sentences int // lines starting with the GLL tag
	Fixes     int // sentences whose coordinates both convert
	FirstFix  string
	LastFix   string
}

func summarizeCapture(r io.Reader) (captureSummary, error) {
	var s captureSummary

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), 64*1024)
	for sc.Scan() {
		s.Lines++
		line := strings.TrimRight(sc.Text(), "\r")
		if !strings.HasPrefix(line, gll.Prefix) {
			continue
		}
		s.Sentences++

		sent := gll.Split(line)
		lat, _, lon, _, err := sent.Coordinates()
		if err != nil || lat == "" || lon == "" {
			continue
		}
		if _, err := gll.DecimalDegrees(lat, gll.Lat); err != nil {
			continue
		}
		if _, err := gll.DecimalDegrees(lon, gll.Lon); err != nil {
			continue
		}
		s.Fixes++
		clock := gll.FixClock(sent.TimeField(), 0)
		if s.FirstFix == "" {
			s.FirstFix = clock
		}
		s.LastFix = clock
	}
	if err := sc.Err(); err != nil {
		return captureSummary{}, err
	}
	return s, nil
}

func runSummary(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := summarizeCapture(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s:\n", path)
	fmt.Fprintf(w, "  lines:     %d\n", s.Lines)
	fmt.Fprintf(w, "  sentences: %d\n", s.Sentences)
	fmt.Fprintf(w, "  fixes:     %d\n", s.Fixes)
	if s.Fixes > 0 {
		fmt.Fprintf(w, "  first fix: %s UTC\n", s.FirstFix)
		fmt.Fprintf(w, "  last fix:  %s UTC\n", s.LastFix)
	}
	return nil
}
