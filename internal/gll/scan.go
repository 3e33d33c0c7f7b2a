package gll

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ScanLast reads the whole capture file and returns the split of the last
// line starting with Prefix. The file is opened, scanned, and closed on
// every call; rescanning beats tail-seek bookkeeping at session-log sizes.
//
// Errors are ErrFileUnavailable (open/read) or ErrNoSentence (readable file,
// no matching line).
func ScanLast(path string) (Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sentence{}, fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}
	defer f.Close()

	var (
		last  Sentence
		found bool
	)
	sc := bufio.NewScanner(f)
	// Session logs can hold long non-NMEA chatter lines; allow headroom.
	sc.Buffer(make([]byte, 0, 256), 64*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, Prefix) {
			continue
		}
		last = Split(strings.TrimRight(line, "\r"))
		found = true
	}
	if err := sc.Err(); err != nil {
		return Sentence{}, fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}
	if !found {
		return Sentence{}, ErrNoSentence
	}
	return last, nil
}
